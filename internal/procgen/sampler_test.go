package procgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// seedWithFirstDraw finds a seed whose first draw falls inside [lo, hi).
func seedWithFirstDraw(t *testing.T, lo, hi float64) int64 {
	t.Helper()
	for seed := int64(0); seed < 233280; seed++ {
		v := New(seed).Next()
		if v >= lo && v < hi {
			return seed
		}
	}
	t.Fatalf("no seed with first draw in [%v, %v)", lo, hi)
	return 0
}

func TestPick_UsesFloorOfDraw(t *testing.T) {
	outcomes := []string{"a", "b", "c", "d"}

	assert.Equal(t, "a", Pick(New(seedWithFirstDraw(t, 0, 0.25)), outcomes))
	assert.Equal(t, "b", Pick(New(seedWithFirstDraw(t, 0.25, 0.5)), outcomes))
	assert.Equal(t, "d", Pick(New(seedWithFirstDraw(t, 0.75, 1)), outcomes))
}

func TestPick_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Pick(New(1), []int{}) })
}

func TestPickWeighted_CumulativeBoundaries(t *testing.T) {
	outcomes := []string{"common", "uncommon", "rare", "ultra"}
	weights := []float64{0.5, 0.3, 0.15, 0.05}

	assert.Equal(t, "common", PickWeighted(New(seedWithFirstDraw(t, 0, 0.5)), outcomes, weights))
	assert.Equal(t, "uncommon", PickWeighted(New(seedWithFirstDraw(t, 0.5001, 0.8)), outcomes, weights))
	assert.Equal(t, "rare", PickWeighted(New(seedWithFirstDraw(t, 0.8001, 0.95)), outcomes, weights))
	assert.Equal(t, "ultra", PickWeighted(New(seedWithFirstDraw(t, 0.9501, 1)), outcomes, weights))
}

func TestPickWeighted_FallsBackToLastOutcome(t *testing.T) {
	// Weights summing below the draw must not lose the tail.
	seed := seedWithFirstDraw(t, 0.9, 1)
	got := PickWeighted(New(seed), []string{"x", "y", "z"}, []float64{0.1, 0.1, 0.1})
	assert.Equal(t, "z", got)
}

func TestPickWeighted_MismatchedTablesPanic(t *testing.T) {
	assert.Panics(t, func() { PickWeighted(New(1), []int{1, 2}, []float64{1}) })
	assert.Panics(t, func() { PickNormalized(New(1), []int{1}, []float64{0}) })
}

func TestPickNormalized_RescalesWeights(t *testing.T) {
	outcomes := []string{"low", "high"}
	// Raw weights sum to 4; normalised they are 0.25 / 0.75.
	weights := []float64{1, 3}

	assert.Equal(t, "low", PickNormalized(New(seedWithFirstDraw(t, 0, 0.25)), outcomes, weights))
	assert.Equal(t, "high", PickNormalized(New(seedWithFirstDraw(t, 0.2501, 1)), outcomes, weights))

	// Without normalisation the first outcome would swallow every draw.
	assert.Equal(t, "low", PickWeighted(New(seedWithFirstDraw(t, 0.2501, 1)), outcomes, weights))
}
