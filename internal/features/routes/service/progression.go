package service

import "rider-route-engine/internal/features/routes/domain"

// ResolveProgression walks stops in sequence order and enforces the
// single-active-stop invariant: completed seeds stay completed, the first
// non-completed stop becomes active, everything after it becomes pending.
// Returns the corrected stops and the index of the active stop, or -1 when
// the route is empty or fully completed.
//
// The pass runs regardless of what the upstream raw statuses claimed, so a
// dispatcher that marks several stops "active" still yields exactly one.
func ResolveProgression(stops []domain.Stop) ([]domain.Stop, int) {
	resolved := make([]domain.Stop, len(stops))
	copy(resolved, stops)

	activeIdx := -1

	for i := range resolved {
		if resolved[i].Progression == domain.ProgressionCompleted {
			continue
		}
		if activeIdx == -1 {
			resolved[i].Progression = domain.ProgressionActive
			activeIdx = i
			continue
		}
		resolved[i].Progression = domain.ProgressionPending
	}

	return resolved, activeIdx
}
