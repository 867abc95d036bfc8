package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/store/postgres"
)

type AssetRepositoryTestSuite struct {
	suite.Suite
	ctx        context.Context
	client     *postgres.Client
	pool       *dockertest.Pool
	resource   *dockertest.Resource
	repository *postgres.AssetRepository
}

func (r *AssetRepositoryTestSuite) SetupSuite() {
	var err error

	r.client, r.pool, r.resource, err = newTestClient()
	if err != nil {
		r.T().Fatal(err)
	}

	r.ctx = context.TODO()
	r.repository, err = postgres.NewAssetRepository(r.client)
	if err != nil {
		r.T().Fatal(err)
	}
}

func (r *AssetRepositoryTestSuite) SetupTest() {
	if err := r.client.ExecQueries(r.ctx, []string{"DELETE FROM assets"}); err != nil {
		r.T().Fatal(err)
	}
}

func (r *AssetRepositoryTestSuite) TearDownSuite() {
	// Clean tests
	err := r.client.Close()
	if err != nil {
		r.T().Fatal(err)
	}
	err = purgeDocker(r.pool, r.resource)
	if err != nil {
		r.T().Fatal(err)
	}
}

func (r *AssetRepositoryTestSuite) insertedAsset(id string, offset time.Duration) *asset.Asset {
	lat, lon := 2.5, 99.0
	stamp := time.Date(2021, time.June, 1, 10, 30, 0, 0, time.UTC).Add(offset)
	ast := &asset.Asset{
		ID:        id,
		Name:      "Asset " + id,
		Region:    "North",
		Type:      "Substation",
		Status:    asset.StatusActive,
		Latitude:  &lat,
		Longitude: &lon,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
	r.Require().NoError(r.repository.Insert(r.ctx, ast))
	return ast
}

func (r *AssetRepositoryTestSuite) TestList() {
	r.Run("should return an empty slice for an empty table", func() {
		assets, err := r.repository.List(r.ctx)
		r.NoError(err)
		r.Len(assets, 0)
	})

	r.Run("should return all assets in creation order", func() {
		r.insertedAsset("A-4000", 0)
		r.insertedAsset("A-1000", time.Second)
		r.insertedAsset("A-3000", 2*time.Second)

		assets, err := r.repository.List(r.ctx)
		r.NoError(err)
		r.Require().Len(assets, 3)

		var ids []string
		for _, ast := range assets {
			ids = append(ids, ast.ID)
		}
		r.Equal([]string{"A-4000", "A-1000", "A-3000"}, ids)
	})

	r.Run("should preserve absent coordinates", func() {
		ast := &asset.Asset{
			ID:        "A-5000",
			Name:      "No Coordinates",
			Region:    "South",
			Type:      "Vault",
			Status:    asset.StatusPlanned,
			CreatedAt: time.Date(2021, time.June, 2, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2021, time.June, 2, 0, 0, 0, 0, time.UTC),
		}
		r.Require().NoError(r.repository.Insert(r.ctx, ast))

		stored, err := r.repository.GetByID(r.ctx, "A-5000")
		r.NoError(err)
		r.Nil(stored.Latitude)
		r.Nil(stored.Longitude)
	})
}

func (r *AssetRepositoryTestSuite) TestGetByID() {
	r.Run("should return NotFoundError when the id is absent", func() {
		_, err := r.repository.GetByID(r.ctx, "A-1000")
		r.ErrorAs(err, new(asset.NotFoundError))
	})

	r.Run("should return the stored asset", func() {
		inserted := r.insertedAsset("A-1000", 0)

		stored, err := r.repository.GetByID(r.ctx, "A-1000")
		r.NoError(err)
		r.Equal(inserted.Name, stored.Name)
		r.Equal(inserted.Region, stored.Region)
		r.Equal(inserted.Type, stored.Type)
		r.Equal(inserted.Status, stored.Status)
		r.Equal(*inserted.Latitude, *stored.Latitude)
		r.Equal(*inserted.Longitude, *stored.Longitude)
		r.True(stored.CreatedAt.Equal(inserted.CreatedAt))
		r.True(stored.UpdatedAt.Equal(inserted.UpdatedAt))
	})
}

func (r *AssetRepositoryTestSuite) TestInsert() {
	r.Run("should reject a taken id", func() {
		r.insertedAsset("A-1000", 0)

		err := r.repository.Insert(r.ctx, &asset.Asset{
			ID:        "A-1000",
			Name:      "Second claim",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		})
		r.ErrorAs(err, new(asset.DuplicateIDError))
	})
}

func (r *AssetRepositoryTestSuite) TestReplace() {
	r.Run("should return NotFoundError when the id is absent", func() {
		err := r.repository.Replace(r.ctx, &asset.Asset{
			ID:        "A-1000",
			UpdatedAt: time.Now().UTC(),
		})
		r.ErrorAs(err, new(asset.NotFoundError))
	})

	r.Run("should overwrite the row and keep the stored creation timestamp", func() {
		inserted := r.insertedAsset("A-1000", 0)

		replacement := &asset.Asset{
			ID:        "A-1000",
			Name:      "Renamed",
			Region:    "West",
			Type:      "Pump",
			Status:    asset.StatusInactive,
			UpdatedAt: inserted.UpdatedAt.AddDate(0, 0, 7),
		}
		r.Require().NoError(r.repository.Replace(r.ctx, replacement))
		r.True(replacement.CreatedAt.Equal(inserted.CreatedAt))

		stored, err := r.repository.GetByID(r.ctx, "A-1000")
		r.NoError(err)
		r.Equal("Renamed", stored.Name)
		r.Equal("West", stored.Region)
		r.Equal("Pump", stored.Type)
		r.Equal(asset.StatusInactive, stored.Status)
		r.Nil(stored.Latitude)
		r.Nil(stored.Longitude)
		r.True(stored.CreatedAt.Equal(inserted.CreatedAt))
		r.True(stored.UpdatedAt.Equal(inserted.UpdatedAt.AddDate(0, 0, 7)))
	})
}

func (r *AssetRepositoryTestSuite) TestDelete() {
	r.Run("should return NotFoundError when the id is absent", func() {
		err := r.repository.Delete(r.ctx, "A-1000")
		r.ErrorAs(err, new(asset.NotFoundError))
	})

	r.Run("should remove the row", func() {
		r.insertedAsset("A-1000", 0)

		r.Require().NoError(r.repository.Delete(r.ctx, "A-1000"))

		taken, err := r.repository.Exists(r.ctx, "A-1000")
		r.NoError(err)
		r.False(taken)
	})
}

func (r *AssetRepositoryTestSuite) TestExists() {
	r.insertedAsset("A-1000", 0)

	taken, err := r.repository.Exists(r.ctx, "A-1000")
	r.NoError(err)
	r.True(taken)

	taken, err = r.repository.Exists(r.ctx, "A-9999")
	r.NoError(err)
	r.False(taken)
}

func TestAssetRepository(t *testing.T) {
	suite.Run(t, &AssetRepositoryTestSuite{})
}
