package asset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meridianhq/meridian/lib/set"
)

// createAttempts bounds how many allocate+insert passes one create
// performs when racing writers collide on an identifier.
const createAttempts = 3

// Service is the mutation boundary of the register. It owns identifier
// allocation and audit timestamping; reads pass through to the
// repository.
type Service struct {
	repository Repository
	now        func() time.Time
}

func NewService(repository Repository) *Service {
	return &Service{
		repository: repository,
		now:        time.Now,
	}
}

// List returns the assets matching flt, in collection order.
func (s *Service) List(ctx context.Context, flt Filter) ([]Asset, error) {
	assets, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing assets: %w", err)
	}
	return flt.Apply(assets), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Asset, error) {
	if id == "" {
		return Asset{}, ErrEmptyID
	}
	return s.repository.GetByID(ctx, id)
}

// Create allocates an identifier for ast, stamps both audit timestamps
// and inserts the record. Allocation and insert form one logical
// operation: the insert is conditional on the identifier still being
// free, and a lost race triggers a fresh allocation pass, bounded by
// createAttempts.
func (s *Service) Create(ctx context.Context, ast *Asset) error {
	var lastErr error
	for i := 0; i < createAttempts; i++ {
		assets, err := s.repository.List(ctx)
		if err != nil {
			return fmt.Errorf("error listing existing ids: %w", err)
		}
		existing := set.NewStringSet()
		for _, a := range assets {
			existing.Add(a.ID)
		}

		id, err := AllocateID(existing)
		if err != nil {
			return err
		}

		// re-verify at the insertion point: the snapshot above may
		// already be stale
		taken, err := s.repository.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking id %q: %w", id, err)
		}
		if taken {
			lastErr = DuplicateIDError{AssetID: id}
			continue
		}

		now := s.now().UTC()
		ast.ID = id
		ast.CreatedAt = now
		ast.UpdatedAt = now

		err = s.repository.Insert(ctx, ast)
		if err == nil {
			return nil
		}
		if errors.As(err, new(DuplicateIDError)) {
			lastErr = err
			continue
		}
		return fmt.Errorf("error inserting asset %q: %w", id, err)
	}
	return lastErr
}

// Replace overwrites the stored record with ast, keeping the identifier
// and the original creation timestamp, and refreshes updatedAt.
func (s *Service) Replace(ctx context.Context, ast *Asset) error {
	if ast.ID == "" {
		return ErrEmptyID
	}
	ast.UpdatedAt = s.now().UTC()

	err := s.repository.Replace(ctx, ast)
	if err != nil {
		if errors.As(err, new(NotFoundError)) {
			return err
		}
		return fmt.Errorf("error replacing asset %q: %w", ast.ID, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return s.repository.Delete(ctx, id)
}
