package detection

import (
	"sort"

	"github.com/doc-assembly/fielddetect/internal/core/entity"
)

// deduplicate implements C8: stable-sort by detection_confidence
// descending, then greedily keep a candidate only if it does not
// significantly overlap (§4.8) any candidate already kept on the same
// page. Pure function, safe to call repeatedly (dedup(dedup(x)) == dedup(x)).
func deduplicate(candidates []entity.Candidate, overlapThreshold float64) []entity.Candidate {
	if len(candidates) == 0 {
		return nil
	}

	sorted := make([]entity.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DetectionConfidence > sorted[j].DetectionConfidence
	})

	kept := make([]entity.Candidate, 0, len(sorted))
	for _, candidate := range sorted {
		overlaps := false
		for _, existing := range kept {
			if existing.PageNumber != candidate.PageNumber {
				continue
			}
			if existing.Bbox.OverlapsSignificantly(candidate.Bbox, overlapThreshold) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			kept = append(kept, candidate)
		}
	}

	return kept
}
