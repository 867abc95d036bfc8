//go:build e2e
// +build e2e

package endtoend_test

import (
	"os"

	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/internal/client"
)

// The configured identity must hold the editor role on the target
// server, otherwise every mutating call fails with 403.
var (
	serverHost          = lookupEnvOrString("MERIDIAN_HOST", "http://localhost:8080")
	identityHeaderKey   = lookupEnvOrString("MERIDIAN_IDENTITY_HEADER_KEY", "Meridian-User-Email")
	identityHeaderValue = lookupEnvOrString("MERIDIAN_IDENTITY_HEADER_VALUE", "meridianendtoendtest@meridianhq.io")
)

func lookupEnvOrString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func newClient() *client.Client {
	return client.New(client.Config{
		Host:                serverHost,
		IdentityHeaderKey:   identityHeaderKey,
		IdentityHeaderValue: identityHeaderValue,
	})
}

func generateAsset(name, region string, lat, lon *float64) asset.Asset {
	return asset.Asset{
		Name:      name,
		Region:    region,
		Type:      "substation",
		Status:    asset.StatusActive,
		Latitude:  lat,
		Longitude: lon,
	}
}

func coordinate(v float64) *float64 {
	return &v
}
