package export

import (
	"encoding/json"
	"time"

	"github.com/meridianhq/meridian/asset"
)

// FeatureCollection is the root object of the GeoJSON export.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one asset rendered as a GeoJSON point feature.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry carries the point position as [longitude, latitude].
// GeoJSON puts longitude first; the order must not be swapped.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Properties carries the non-spatial fields of an asset. The position
// lives in the geometry and is not duplicated here.
type Properties struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Region    string `json:"region"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// GeoJSON renders assets as a pretty-printed FeatureCollection. Assets
// missing either coordinate are silently left out of the feature list.
func GeoJSON(assets []asset.Asset) ([]byte, error) {
	collection := FeatureCollection{
		Type:     "FeatureCollection",
		Features: []Feature{},
	}
	for _, ast := range assets {
		if !ast.HasCoordinates() {
			continue
		}
		collection.Features = append(collection.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: [2]float64{*ast.Longitude, *ast.Latitude},
			},
			Properties: Properties{
				ID:        ast.ID,
				Name:      ast.Name,
				Region:    ast.Region,
				Type:      ast.Type,
				Status:    ast.Status.String(),
				CreatedAt: ast.CreatedAt.Format(time.RFC3339),
				UpdatedAt: ast.UpdatedAt.Format(time.RFC3339),
			},
		})
	}
	return json.MarshalIndent(collection, "", "  ")
}
