package service

import (
	"math"

	"rider-route-engine/internal/features/routes/domain"
)

// Sequence orders candidates into a visiting order using a greedy
// nearest-neighbor walk from origin.
//
// The algorithm minimizes immediate travel distance at each step. There is no
// global optimization pass; a rider carries single-digit to low-tens stop
// counts, so the greedy walk stays deterministic and cheap to recompute.
//
// Candidates without a usable coordinate never advance the cursor and are
// appended at the tail in their original relative order.
func Sequence(candidates []domain.StopCandidate, origin domain.GeoPoint) []domain.StopCandidate {
	if len(candidates) <= 1 {
		return candidates
	}

	ordered := make([]domain.StopCandidate, 0, len(candidates))
	remaining := make([]domain.StopCandidate, len(candidates))
	copy(remaining, candidates)

	cursor := origin

	for {
		bestIdx := -1
		bestDistance := math.MaxFloat64

		// Tie-breaker: strict less-than keeps the earliest remaining
		// candidate when distances are equal, so ordering is stable.
		for i, c := range remaining {
			if !c.HasLocation() {
				continue
			}
			d := domain.DistanceKm(cursor, *c.Geo)
			if d < bestDistance {
				bestDistance = d
				bestIdx = i
			}
		}

		if bestIdx == -1 {
			// No locatable candidate left; the rest keep their input order.
			ordered = append(ordered, remaining...)
			return ordered
		}

		best := remaining[bestIdx]
		ordered = append(ordered, best)
		cursor = *best.Geo
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		if len(remaining) == 0 {
			return ordered
		}
	}
}
