package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/identity"
)

// queryFilter builds filter criteria from the request query string.
// Dimension parameters accept comma-separated values and may repeat;
// absent or empty parameters leave their dimension unrestricted.
func queryFilter(query url.Values) asset.Filter {
	return asset.Filter{
		Search:   query.Get("search"),
		Regions:  splitCSV(query["region"]),
		Types:    splitCSV(query["type"]),
		Statuses: splitCSV(query["status"]),
	}
}

func splitCSV(values []string) []string {
	var out []string
	for _, value := range values {
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

// requireEditor writes HTTP 403 and returns false when the caller does
// not hold the editor role.
func requireEditor(w http.ResponseWriter, r *http.Request) bool {
	id := identity.FromContext(r.Context())
	if !id.CanEdit() {
		WriteJSONError(w, http.StatusForbidden, fmt.Sprintf("%q is not allowed to modify assets", id.Email))
		return false
	}
	return true
}

func bodyParserErrorMsg(err error) string {
	return fmt.Sprintf("error parsing request body: %v", err)
}

// validateStatus rejects a non-empty status outside the known set. An
// empty status is accepted; the quality inspector reports it instead.
func validateStatus(status asset.Status) error {
	if status != "" && !status.IsValid() {
		return fmt.Errorf("%w: %q", asset.ErrUnknownStatus, status)
	}
	return nil
}
