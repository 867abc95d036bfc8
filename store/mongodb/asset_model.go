package mongodb

import (
	"time"

	"github.com/meridianhq/meridian/asset"
)

// AssetModel is a model for an asset document. The register identifier
// doubles as the document id, so the unique index on _id enforces the
// identifier invariant.
type AssetModel struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Region    string    `bson:"region"`
	Type      string    `bson:"type"`
	Status    string    `bson:"status"`
	Latitude  *float64  `bson:"latitude"`
	Longitude *float64  `bson:"longitude"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
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
