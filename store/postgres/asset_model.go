package postgres

import (
	"time"

	"github.com/meridianhq/meridian/asset"
)

// AssetModel is a model for an asset row in the assets table.
type AssetModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Region    string    `db:"region"`
	Type      string    `db:"type"`
	Status    string    `db:"status"`
	Latitude  *float64  `db:"latitude"`
	Longitude *float64  `db:"longitude"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func newAssetModel(ast *asset.Asset) AssetModel {
	return AssetModel{
		ID:        ast.ID,
		Name:      ast.Name,
		Region:    ast.Region,
		Type:      ast.Type,
		Status:    ast.Status.String(),
		Latitude:  ast.Latitude,
		Longitude: ast.Longitude,
		CreatedAt: ast.CreatedAt,
		UpdatedAt: ast.UpdatedAt,
	}
}

func (m AssetModel) toAsset() asset.Asset {
	return asset.Asset{
		ID:        m.ID,
		Name:      m.Name,
		Region:    m.Region,
		Type:      m.Type,
		Status:    asset.Status(m.Status),
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}
