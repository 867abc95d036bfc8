package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/identity"
)

type AssetRepository struct {
	mock.Mock
}

func (repo *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	args := repo.Called(ctx)
	return args.Get(0).([]asset.Asset), args.Error(1)
}

func (repo *AssetRepository) GetByID(ctx context.Context, id string) (asset.Asset, error) {
	args := repo.Called(ctx, id)
	return args.Get(0).(asset.Asset), args.Error(1)
}

func (repo *AssetRepository) Insert(ctx context.Context, ast *asset.Asset) error {
	args := repo.Called(ctx, ast)
	return args.Error(0)
}

func (repo *AssetRepository) Replace(ctx context.Context, ast *asset.Asset) error {
	args := repo.Called(ctx, ast)
	return args.Error(0)
}

func (repo *AssetRepository) Delete(ctx context.Context, id string) error {
	args := repo.Called(ctx, id)
	return args.Error(0)
}

func (repo *AssetRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := repo.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type Authorizer struct {
	mock.Mock
}

func (a *Authorizer) Authorize(email string) (identity.Role, error) {
	args := a.Called(email)
	return args.Get(0).(identity.Role), args.Error(1)
}
