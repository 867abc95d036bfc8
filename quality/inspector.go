package quality

import (
	"fmt"
	"strings"

	"github.com/meridianhq/meridian/asset"
)

// Code identifies a quality rule.
type Code string

const (
	CodeMissingCoordinates Code = "MISSING_COORDINATES"
	CodeDuplicatePoint     Code = "DUPLICATE_POINT"
	CodeMissingFields      Code = "MISSING_FIELDS"
)

// String cast Code to string.
func (c Code) String() string {
	return string(c)
}

// Issue flags one rule violation on one asset. Issues are computed
// fresh from the collection on every inspection and never persisted.
type Issue struct {
	Code    Code   `json:"code"`
	AssetID string `json:"assetId"`
	Message string `json:"message"`
}

// pointKey groups assets by exact coordinate equality. A struct key
// keeps pairs like (1, 23) and (12, 3) distinct, which a concatenated
// string representation would not.
type pointKey struct {
	lat float64
	lon float64
}

// Inspect runs every quality rule over the full collection and returns
// the violations. Assets are visited in collection order; per asset the
// rules report in a fixed order, so the output is deterministic for a
// given input list. One asset can raise more than one issue.
func Inspect(assets []asset.Asset) []Issue {
	groups := groupByPoint(assets)

	issues := []Issue{}
	for _, ast := range assets {
		if !ast.HasCoordinates() {
			issues = append(issues, Issue{
				Code:    CodeMissingCoordinates,
				AssetID: ast.ID,
				Message: "latitude or longitude is missing",
			})
		} else if others := otherMembers(groups[pointKey{*ast.Latitude, *ast.Longitude}], ast.ID); len(others) > 0 {
			issues = append(issues, Issue{
				Code:    CodeDuplicatePoint,
				AssetID: ast.ID,
				Message: fmt.Sprintf("shares exact coordinates with %s", strings.Join(others, ", ")),
			})
		}

		if empty := emptyFields(ast); len(empty) > 0 {
			issues = append(issues, Issue{
				Code:    CodeMissingFields,
				AssetID: ast.ID,
				Message: fmt.Sprintf("missing required fields: %s", strings.Join(empty, ", ")),
			})
		}
	}
	return issues
}

// groupByPoint collects asset ids per exact coordinate pair, keeping
// collection order within each group. Assets missing either coordinate
// never join a group.
func groupByPoint(assets []asset.Asset) map[pointKey][]string {
	groups := map[pointKey][]string{}
	for _, ast := range assets {
		if !ast.HasCoordinates() {
			continue
		}
		key := pointKey{lat: *ast.Latitude, lon: *ast.Longitude}
		groups[key] = append(groups[key], ast.ID)
	}
	return groups
}

// otherMembers returns every id in group except id itself, or nil when
// the group has fewer than two members.
func otherMembers(group []string, id string) []string {
	if len(group) < 2 {
		return nil
	}
	others := make([]string, 0, len(group)-1)
	for _, member := range group {
		if member != id {
			others = append(others, member)
		}
	}
	return others
}

func emptyFields(ast asset.Asset) []string {
	var empty []string
	if ast.Name == "" {
		empty = append(empty, "name")
	}
	if ast.Region == "" {
		empty = append(empty, "region")
	}
	if ast.Type == "" {
		empty = append(empty, "type")
	}
	if ast.Status == "" {
		empty = append(empty, "status")
	}
	return empty
}
