package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/meridianhq/meridian/asset"
)

// csvColumns is the fixed column order of the CSV export.
var csvColumns = []string{"id", "name", "region", "type", "status", "latitude", "longitude", "createdAt", "updatedAt"}

// CSV renders assets as comma-separated values: a header row followed
// by one row per asset, rows newline-joined without a trailing newline.
// Every field is quoted, including the header and numeric fields, and
// absent coordinates render as empty fields.
func CSV(assets []asset.Asset) string {
	rows := make([]string, 0, len(assets)+1)
	rows = append(rows, joinRow(csvColumns))
	for _, ast := range assets {
		rows = append(rows, joinRow([]string{
			ast.ID,
			ast.Name,
			ast.Region,
			ast.Type,
			ast.Status.String(),
			formatCoordinate(ast.Latitude),
			formatCoordinate(ast.Longitude),
			ast.CreatedAt.Format(time.RFC3339),
			ast.UpdatedAt.Format(time.RFC3339),
		}))
	}
	return strings.Join(rows, "\n")
}

// joinRow quotes every field unconditionally, doubling embedded quotes.
func joinRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
