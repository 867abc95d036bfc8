package inmemory

import (
	"context"
	"sync"

	"github.com/meridianhq/meridian/asset"
)

// AssetRepository is a map-backed implementation of asset.Repository,
// suitable for development and tests. It tracks insertion order so
// listings stay stable across calls.
type AssetRepository struct {
	mu     sync.RWMutex
	assets map[string]asset.Asset
	order  []string
}

func NewAssetRepository() *AssetRepository {
	return &AssetRepository{
		assets: map[string]asset.Asset{},
	}
}

func (repo *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	assets := make([]asset.Asset, 0, len(repo.order))
	for _, id := range repo.order {
		assets = append(assets, repo.assets[id])
	}
	return assets, nil
}

func (repo *AssetRepository) GetByID(ctx context.Context, id string) (asset.Asset, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	ast, ok := repo.assets[id]
	if !ok {
		return asset.Asset{}, asset.NotFoundError{AssetID: id}
	}
	return ast, nil
}

func (repo *AssetRepository) Insert(ctx context.Context, ast *asset.Asset) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.assets[ast.ID]; ok {
		return asset.DuplicateIDError{AssetID: ast.ID}
	}
	repo.assets[ast.ID] = *ast
	repo.order = append(repo.order, ast.ID)
	return nil
}

func (repo *AssetRepository) Replace(ctx context.Context, ast *asset.Asset) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.assets[ast.ID]
	if !ok {
		return asset.NotFoundError{AssetID: ast.ID}
	}
	ast.CreatedAt = stored.CreatedAt
	repo.assets[ast.ID] = *ast
	return nil
}

func (repo *AssetRepository) Delete(ctx context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.assets[id]; !ok {
		return asset.NotFoundError{AssetID: id}
	}
	delete(repo.assets, id)
	for i, stored := range repo.order {
		if stored == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)
			break
		}
	}
	return nil
}

func (repo *AssetRepository) Exists(ctx context.Context, id string) (bool, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	_, ok := repo.assets[id]
	return ok, nil
}
