package service

import (
	"time"

	"rider-route-engine/internal/features/routes/domain"
)

// FilterByClass keeps the candidates whose computed delivery class matches
// class at the given now. The input order is preserved and the input slice is
// never mutated. Filtering with both classes against the same now partitions
// the input with no duplicates and no omissions.
func FilterByClass(candidates []domain.StopCandidate, class domain.DeliveryClass, now time.Time) []domain.StopCandidate {
	matched := make([]domain.StopCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Class(now) == class {
			matched = append(matched, c)
		}
	}
	return matched
}

// CountByClass returns how many candidates classify into class at now.
// Used for tab badge fallbacks when no server assignment exists.
func CountByClass(candidates []domain.StopCandidate, class domain.DeliveryClass, now time.Time) int {
	count := 0
	for _, c := range candidates {
		if c.Class(now) == class {
			count++
		}
	}
	return count
}
