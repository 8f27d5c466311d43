package procgen

import "fmt"

// Pick selects outcomes[floor(r.Next()*len(outcomes))]. It panics on an
// empty slice; every caller passes a static table.
func Pick[T any](r *Random, outcomes []T) T {
	if len(outcomes) == 0 {
		panic("procgen: pick from empty outcome set")
	}
	return outcomes[r.Intn(len(outcomes))]
}

// PickWeighted draws once and returns the first outcome whose cumulative
// weight reaches the draw. Weights are used as given: fixed tables that sum
// to 1 keep their exact reference behaviour. If rounding leaves the draw
// above the final cumulative sum the last outcome is returned.
func PickWeighted[T any](r *Random, outcomes []T, weights []float64) T {
	mustMatch(len(outcomes), len(weights))

	draw := r.Next()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if draw <= cumulative {
			return outcomes[i]
		}
	}
	return outcomes[len(outcomes)-1]
}

// PickNormalized divides every weight by the table total before sampling.
// Use it for tables whose weights were scaled by a modifier; fixed tables go
// through PickWeighted.
func PickNormalized[T any](r *Random, outcomes []T, weights []float64) T {
	mustMatch(len(outcomes), len(weights))

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic(fmt.Sprintf("procgen: weight total must be positive, got %v", total))
	}

	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / total
	}
	return PickWeighted(r, outcomes, normalized)
}

func mustMatch(outcomes, weights int) {
	if outcomes == 0 {
		panic("procgen: pick from empty outcome set")
	}
	if outcomes != weights {
		panic(fmt.Sprintf("procgen: %d outcomes but %d weights", outcomes, weights))
	}
}
