package usecase

import (
	"log"

	"github.com/shopfeed/backend/internal/domain"
)

// MergeResult is the outcome of merging a candidate batch against a
// persisted key set.
type MergeResult struct {
	// Accepted holds the rows to write, in candidate order.
	Accepted []domain.Row

	// Skipped counts variant rows rejected as duplicates.
	Skipped int
}

// MergeEngine decides which candidate rows are genuinely new. Identity is
// the VariantKey alone: price and every other field are ignored, since
// price is computed and may drift between runs without making a variant
// new.
type MergeEngine struct {
	enableDebugLogging bool
}

// NewMergeEngine creates a merge engine.
func NewMergeEngine(enableDebugLogging bool) *MergeEngine {
	return &MergeEngine{enableDebugLogging: enableDebugLogging}
}

// Merge filters candidates against the existing key set. Variant rows are
// accepted when their key is unseen; the key is then added to a working
// copy so duplicates within the batch collapse too, first occurrence wins.
// Image overflow rows carry no key of their own: each one rides along with
// the accept/reject decision of the variant row it was emitted after, so a
// skipped variant also drops its overflow images. The existing set passed
// in is never mutated.
func (m *MergeEngine) Merge(existing domain.KeySet, candidates []domain.Row) MergeResult {
	seen := make(domain.KeySet, len(existing)+len(candidates))
	for k := range existing {
		seen.Add(k)
	}

	result := MergeResult{}
	lastVariantAccepted := false

	for _, row := range candidates {
		if !row.IsVariantRow() {
			if lastVariantAccepted {
				result.Accepted = append(result.Accepted, row)
			}
			continue
		}

		key := row.Key()
		if seen.Contains(key) {
			result.Skipped++
			lastVariantAccepted = false
			if m.enableDebugLogging {
				log.Printf("[MERGE] skipping existing variant %s", key)
			}
			continue
		}

		seen.Add(key)
		result.Accepted = append(result.Accepted, row)
		lastVariantAccepted = true
	}

	return result
}
