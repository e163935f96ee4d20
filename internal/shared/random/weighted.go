// Package random provides small sampling helpers over an injected
// *rand.Rand source so callers can make generation reproducible by
// supplying a fixed seed.
package random

import "math/rand"

// Choice pairs a candidate value with its selection weight.
type Choice[T any] struct {
	Value  T
	Weight int
}

// Pick samples one value from the discrete distribution described by
// choices. Weights must be non-negative; entries with zero weight are
// never selected. When every weight is zero the first value is returned.
func Pick[T any](r *rand.Rand, choices []Choice[T]) T {
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		return choices[0].Value
	}

	n := r.Intn(total)
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		if n < c.Weight {
			return c.Value
		}
		n -= c.Weight
	}
	return choices[len(choices)-1].Value
}

// From returns a uniformly selected element of items.
func From[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// IntBetween returns a uniform integer in [min, max].
func IntBetween(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Chance reports true with probability p (0.0 to 1.0).
func Chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}
