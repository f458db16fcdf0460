package screening

import (
	"strings"
	"sync"
)

// PassStats describes the outcome of one dedup pass over the batch.
type PassStats struct {
	Initial int
	Dropped int
	Left    int
}

// ContentDeduper tracks content fingerprints across a batch. The first
// submission with a given fingerprint wins by arrival order; later ones
// are skipped before scoring. Safe for concurrent use.
type ContentDeduper struct {
	mu   sync.Mutex
	seen map[string]bool
}

// NewContentDeduper returns an empty deduper.
func NewContentDeduper() *ContentDeduper {
	return &ContentDeduper{seen: make(map[string]bool)}
}

// CheckAndAdd reports whether the fingerprint was seen before, and
// records it. Empty fingerprints (extraction failures carry none) are
// never considered duplicates.
func (d *ContentDeduper) CheckAndAdd(fingerprint string) bool {
	if fingerprint == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen[fingerprint] {
		return true
	}
	d.seen[fingerprint] = true
	return false
}

// DedupeByName removes near-duplicate candidate identities from a list
// already sorted by fit score descending. Walking in that order, a
// result whose name fuzzy-matches (token-order-insensitive ratio >=
// threshold) an already-accepted name is dropped, so the
// highest-scoring instance of an identity survives. Empty and
// placeholder names are never matched against each other. Running the
// pass on its own output is a no-op.
func DedupeByName(results []*CandidateResult, threshold int) ([]*CandidateResult, PassStats) {
	stats := PassStats{Initial: len(results)}

	kept := make([]*CandidateResult, 0, len(results))
	var acceptedNames []string

	for _, r := range results {
		name := strings.TrimSpace(r.CandidateName)
		if name == "" || strings.EqualFold(name, UnknownName) {
			kept = append(kept, r)
			continue
		}

		duplicate := false
		for _, accepted := range acceptedNames {
			if TokenSortRatio(name, accepted) >= threshold {
				duplicate = true
				break
			}
		}
		if duplicate {
			stats.Dropped++
			continue
		}

		acceptedNames = append(acceptedNames, name)
		kept = append(kept, r)
	}

	stats.Left = len(kept)
	return kept, stats
}
