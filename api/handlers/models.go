package handlers

import (
	"github.com/meridianhq/meridian/asset"
)

// assetPayload is the caller-supplied part of an asset. Identifier and
// audit timestamps are never taken from the request.
type assetPayload struct {
	Name      string       `json:"name"`
	Region    string       `json:"region"`
	Type      string       `json:"type"`
	Status    asset.Status `json:"status"`
	Latitude  *float64     `json:"latitude"`
	Longitude *float64     `json:"longitude"`
}

func (p assetPayload) toAsset() asset.Asset {
	return asset.Asset{
		Name:      p.Name,
		Region:    p.Region,
		Type:      p.Type,
		Status:    p.Status,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}
