package service

import (
	"testing"

	"rider-route-engine/internal/features/routes/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(id string, p domain.ProgressionState) domain.Stop {
	return domain.Stop{ID: id, Progression: p}
}

// TestResolveProgression_FirstOpenBecomesActive verifies the
// delivered/pending/pending sequence resolves to completed/active/pending.
func TestResolveProgression_FirstOpenBecomesActive(t *testing.T) {
	stops := []domain.Stop{
		seeded("1", domain.ProgressionCompleted),
		seeded("2", domain.ProgressionPending),
		seeded("3", domain.ProgressionPending),
	}

	resolved, activeIdx := ResolveProgression(stops)
	require.Len(t, resolved, 3)

	assert.Equal(t, domain.ProgressionCompleted, resolved[0].Progression)
	assert.Equal(t, domain.ProgressionActive, resolved[1].Progression)
	assert.Equal(t, domain.ProgressionPending, resolved[2].Progression)
	assert.Equal(t, 1, activeIdx)
}

// TestResolveProgression_SingleActiveInvariant verifies that no matter what
// the seeds claim, exactly one stop ends up active when any stop is open.
func TestResolveProgression_SingleActiveInvariant(t *testing.T) {
	stops := []domain.Stop{
		seeded("1", domain.ProgressionActive),
		seeded("2", domain.ProgressionActive),
		seeded("3", domain.ProgressionActive),
	}

	resolved, activeIdx := ResolveProgression(stops)

	active := 0
	for _, s := range resolved {
		if s.Progression == domain.ProgressionActive {
			active++
		}
	}
	assert.Equal(t, 1, active)
	assert.Equal(t, 0, activeIdx)
	assert.Equal(t, domain.ProgressionPending, resolved[1].Progression)
	assert.Equal(t, domain.ProgressionPending, resolved[2].Progression)
}

// TestResolveProgression_AllCompleted verifies a terminal route has no
// active stop.
func TestResolveProgression_AllCompleted(t *testing.T) {
	stops := []domain.Stop{
		seeded("1", domain.ProgressionCompleted),
		seeded("2", domain.ProgressionCompleted),
	}

	resolved, activeIdx := ResolveProgression(stops)

	assert.Equal(t, -1, activeIdx)
	for _, s := range resolved {
		assert.Equal(t, domain.ProgressionCompleted, s.Progression)
	}
}

// TestResolveProgression_Empty verifies an empty stop list resolves to an
// empty list with no active index, not an error.
func TestResolveProgression_Empty(t *testing.T) {
	resolved, activeIdx := ResolveProgression(nil)

	assert.Empty(t, resolved)
	assert.Equal(t, -1, activeIdx)
}

// TestResolveProgression_CompletedAfterActive verifies a later completed
// stop stays completed while the earliest open stop is the active one.
func TestResolveProgression_CompletedAfterActive(t *testing.T) {
	stops := []domain.Stop{
		seeded("1", domain.ProgressionPending),
		seeded("2", domain.ProgressionCompleted),
		seeded("3", domain.ProgressionPending),
	}

	resolved, activeIdx := ResolveProgression(stops)

	assert.Equal(t, domain.ProgressionActive, resolved[0].Progression)
	assert.Equal(t, domain.ProgressionCompleted, resolved[1].Progression)
	assert.Equal(t, domain.ProgressionPending, resolved[2].Progression)
	assert.Equal(t, 0, activeIdx)
}

// TestResolveProgression_DoesNotMutateInput verifies the resolver returns a
// fresh slice.
func TestResolveProgression_DoesNotMutateInput(t *testing.T) {
	stops := []domain.Stop{seeded("1", domain.ProgressionPending)}

	ResolveProgression(stops)

	assert.Equal(t, domain.ProgressionPending, stops[0].Progression)
}
