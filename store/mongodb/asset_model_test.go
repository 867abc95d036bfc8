package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meridianhq/meridian/asset"
)

func TestAssetModelMapping(t *testing.T) {
	lat, lon := 2.5, 99.0
	stamp := time.Date(2021, time.June, 1, 10, 30, 0, 0, time.UTC)

	t.Run("should map every field both ways", func(t *testing.T) {
		ast := asset.Asset{
			ID:        "A-1000",
			Name:      "North Substation",
			Region:    "North",
			Type:      "Substation",
			Status:    asset.StatusActive,
			Latitude:  &lat,
			Longitude: &lon,
			CreatedAt: stamp,
			UpdatedAt: stamp,
		}

		am := newAssetModel(&ast)
		assert.Equal(t, "A-1000", am.ID)
		assert.Equal(t, "Active", am.Status)
		assert.Equal(t, ast, am.toAsset())
	})

	t.Run("should keep absent coordinates absent", func(t *testing.T) {
		ast := asset.Asset{
			ID:        "A-1001",
			Name:      "Planned Vault",
			Region:    "South",
			Type:      "Vault",
			Status:    asset.StatusPlanned,
			CreatedAt: stamp,
			UpdatedAt: stamp,
		}

		am := newAssetModel(&ast)
		assert.Nil(t, am.Latitude)
		assert.Nil(t, am.Longitude)

		restored := am.toAsset()
		assert.False(t, restored.HasCoordinates())
	})

	t.Run("should normalize stored timestamps to UTC", func(t *testing.T) {
		jakarta := time.FixedZone("Asia/Jakarta", 7*60*60)
		am := AssetModel{
			ID:        "A-1002",
			Status:    "Inactive",
			CreatedAt: stamp.In(jakarta),
			UpdatedAt: stamp.In(jakarta),
		}

		restored := am.toAsset()
		assert.Equal(t, time.UTC, restored.CreatedAt.Location())
		assert.True(t, restored.CreatedAt.Equal(stamp))
	})
}
