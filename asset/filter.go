package asset

import (
	"strings"

	"github.com/meridianhq/meridian/lib/set"
)

// Filter is a caller-supplied query over the register. Search is a
// case-insensitive substring matched against the name; the three
// dimension slices are case-insensitive membership sets. An empty
// search or an empty dimension means "match all" for that predicate,
// never "match none".
type Filter struct {
	Search   string
	Regions  []string
	Types    []string
	Statuses []string
}

// Apply reduces assets to the records satisfying every predicate:
// the search predicate AND each non-empty dimension's membership
// predicate. Input order is preserved and the input is not mutated.
// An empty result is valid output, not an error.
func (f Filter) Apply(assets []Asset) []Asset {
	search := strings.ToLower(f.Search)
	regions := foldValues(f.Regions)
	types := foldValues(f.Types)
	statuses := foldValues(f.Statuses)

	matched := []Asset{}
	for _, ast := range assets {
		if search != "" && !strings.Contains(strings.ToLower(ast.Name), search) {
			continue
		}
		if !memberOf(regions, ast.Region) {
			continue
		}
		if !memberOf(types, ast.Type) {
			continue
		}
		if !memberOf(statuses, ast.Status.String()) {
			continue
		}
		matched = append(matched, ast)
	}
	return matched
}

func foldValues(values []string) set.StringSet {
	folded := set.NewStringSet()
	for _, v := range values {
		folded.Add(strings.ToLower(v))
	}
	return folded
}

// memberOf is the per-dimension predicate: an empty set admits every
// value, a non-empty set admits members only. Comparison is exact
// after case-folding.
func memberOf(allowed set.StringSet, value string) bool {
	if len(allowed) == 0 {
		return true
	}
	return allowed.Has(strings.ToLower(value))
}
