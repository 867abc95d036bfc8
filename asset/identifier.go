package asset

import (
	"fmt"
	"math/rand"

	"github.com/meridianhq/meridian/lib/set"
)

const (
	idSuffixMin = 1000
	idSuffixMax = 9999

	// maxAllocateAttempts bounds the random search for a free
	// identifier so a full (or nearly full) space cannot hang a
	// create forever.
	maxAllocateAttempts = 10000
)

// AllocateID mints an identifier of the form "A-" plus a four digit
// suffix drawn uniformly at random from [1000, 9999] and not present in
// existing. The search gives up with ErrAllocationExhausted once the
// attempt bound is spent. Collision avoidance is best effort only:
// existing reflects one point in time, so callers re-verify uniqueness
// at the point of insertion.
func AllocateID(existing set.StringSet) (string, error) {
	for i := 0; i < maxAllocateAttempts; i++ {
		id := fmt.Sprintf("A-%d", idSuffixMin+rand.Intn(idSuffixMax-idSuffixMin+1))
		if !existing.Has(id) {
			return id, nil
		}
	}
	return "", ErrAllocationExhausted
}
