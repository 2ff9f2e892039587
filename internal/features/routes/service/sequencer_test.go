package service

import (
	"fmt"
	"math/rand"
	"testing"

	"rider-route-engine/internal/features/routes/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func located(id string, lat, lng float64) domain.StopCandidate {
	return domain.StopCandidate{
		ID:  id,
		Geo: &domain.GeoPoint{Latitude: lat, Longitude: lng},
	}
}

func unlocated(id string) domain.StopCandidate {
	return domain.StopCandidate{ID: id}
}

// TestSequence_NearestFirst verifies the greedy walk picks the closest
// remaining candidate at each step.
func TestSequence_NearestFirst(t *testing.T) {
	origin := domain.GeoPoint{Latitude: 0.001, Longitude: 0.001}
	candidates := []domain.StopCandidate{
		located("far", 0, 5),
		located("near", 0, 1),
	}

	ordered := Sequence(candidates, origin)

	require.Len(t, ordered, 2)
	assert.Equal(t, "near", ordered[0].ID)
	assert.Equal(t, "far", ordered[1].ID)
}

// TestSequence_WalkAdvancesCursor verifies the cursor moves to each placed
// stop: from (0,0), (0,1) is placed first, then (0,5) from there.
func TestSequence_WalkAdvancesCursor(t *testing.T) {
	origin := domain.GeoPoint{Latitude: 0.001, Longitude: 0.001}
	candidates := []domain.StopCandidate{
		located("b", 0, 5),
		located("a", 0, 1),
	}

	ordered := Sequence(candidates, origin)

	assert.Equal(t, []string{ordered[0].ID, ordered[1].ID}, []string{"a", "b"})
}

// TestSequence_UnlocatedAppendedAtTail verifies candidates without
// coordinates go to the tail: [A(no coords), B(0,0-adjacent)] from origin
// yields [B, A].
func TestSequence_UnlocatedAppendedAtTail(t *testing.T) {
	origin := domain.GeoPoint{Latitude: 0.001, Longitude: 0.001}
	candidates := []domain.StopCandidate{
		unlocated("A"),
		located("B", 0.002, 0.002),
	}

	ordered := Sequence(candidates, origin)

	require.Len(t, ordered, 2)
	assert.Equal(t, "B", ordered[0].ID)
	assert.Equal(t, "A", ordered[1].ID)
}

// TestSequence_AllUnlocated verifies a pool with no coordinates at all keeps
// its input order untouched.
func TestSequence_AllUnlocated(t *testing.T) {
	candidates := []domain.StopCandidate{
		unlocated("x"), unlocated("y"), unlocated("z"),
	}

	ordered := Sequence(candidates, domain.GeoPoint{Latitude: 24.8607, Longitude: 67.0011})

	require.Len(t, ordered, 3)
	assert.Equal(t, "x", ordered[0].ID)
	assert.Equal(t, "y", ordered[1].ID)
	assert.Equal(t, "z", ordered[2].ID)
}

// TestSequence_Empty verifies empty and single-element inputs pass through.
func TestSequence_Empty(t *testing.T) {
	origin := domain.GeoPoint{Latitude: 24.8607, Longitude: 67.0011}

	assert.Empty(t, Sequence(nil, origin))

	one := []domain.StopCandidate{located("only", 24.9, 67.1)}
	assert.Equal(t, one, Sequence(one, origin))
}

// TestSequence_DoesNotMutateInput verifies the input slice keeps its order
// after sequencing.
func TestSequence_DoesNotMutateInput(t *testing.T) {
	origin := domain.GeoPoint{Latitude: 0.001, Longitude: 0.001}
	candidates := []domain.StopCandidate{
		located("far", 0, 5),
		located("near", 0, 1),
	}

	Sequence(candidates, origin)

	assert.Equal(t, "far", candidates[0].ID)
	assert.Equal(t, "near", candidates[1].ID)
}

// TestSequence_TailAppendProperty verifies, over randomized coordinate sets,
// that every located candidate precedes every unlocated one and that the
// unlocated candidates keep their relative input order.
func TestSequence_TailAppendProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(12)
		m := rng.Intn(6)

		candidates := make([]domain.StopCandidate, 0, n+m)
		for i := 0; i < n; i++ {
			candidates = append(candidates, located(
				fmt.Sprintf("loc-%d", i),
				rng.Float64()*120-60,
				rng.Float64()*300-150,
			))
		}
		for i := 0; i < m; i++ {
			candidates = append(candidates, unlocated(fmt.Sprintf("noloc-%d", i)))
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		var wantTail []string
		for _, c := range candidates {
			if !c.HasLocation() {
				wantTail = append(wantTail, c.ID)
			}
		}

		ordered := Sequence(candidates, domain.GeoPoint{Latitude: 24.8607, Longitude: 67.0011})
		require.Len(t, ordered, n+m)

		for i, c := range ordered[:len(ordered)-m] {
			assert.True(t, c.HasLocation(), "trial %d: unlocated candidate at head position %d", trial, i)
		}

		var gotTail []string
		for _, c := range ordered[len(ordered)-m:] {
			gotTail = append(gotTail, c.ID)
		}
		assert.Equal(t, wantTail, gotTail, "trial %d: tail order changed", trial)
	}
}
