package asset

import (
	"context"
	"time"
)

// Asset is a single geolocated record in the register.
type Asset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	Type      string    `json:"type"`
	Status    Status    `json:"status"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasCoordinates reports whether both latitude and longitude are set.
// The two are checked independently everywhere: an asset with only one
// of them present counts as not having coordinates.
func (a Asset) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// Repository is the canonical collection of assets. Implementations own
// the identifier uniqueness invariant: Insert is conditional on the id
// not existing yet and reports DuplicateIDError otherwise.
type Repository interface {
	// List returns a point-in-time snapshot of the collection in
	// creation order. Callers must not mutate the snapshot's source.
	List(ctx context.Context) ([]Asset, error)
	// GetByID returns the asset identified by id, or NotFoundError.
	GetByID(ctx context.Context, id string) (Asset, error)
	// Insert stores a new asset. Returns DuplicateIDError when the id
	// is already taken.
	Insert(ctx context.Context, ast *Asset) error
	// Replace overwrites the stored asset with ast, keeping the stored
	// creation timestamp and reflecting it back into ast. Returns
	// NotFoundError when the id is absent.
	Replace(ctx context.Context, ast *Asset) error
	// Delete removes the asset identified by id, or returns
	// NotFoundError.
	Delete(ctx context.Context, id string) error
	// Exists reports whether id is present in the collection.
	Exists(ctx context.Context, id string) (bool, error)
}
