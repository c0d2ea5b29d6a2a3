// Package weighted draws items with probability proportional to a weight.
//
// Weights are kept positionally next to their items, so two items that
// compare equal are still two separate candidates. Negative weights are not
// validated: the draw stays deterministic for a given random value but the
// distribution is undefined.
package weighted

import (
	"github.com/zeusync/spawnkit/internal/core/random"
	"github.com/zeusync/spawnkit/pkg/sequence"
)

// Item pairs a value with its weight.
type Item[T any] struct {
	Value  T
	Weight float64
}

// PickIndex draws an index from weights.
// It returns false when weights is empty or the total weight is not positive.
// Exactly one value is drawn from rng on success and none on failure.
func PickIndex(rng random.Source, weights []float64) (int, bool) {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if len(weights) == 0 || total <= 0 {
		return -1, false
	}

	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if cumulative >= r {
			return i, true
		}
	}
	// float drift only
	return len(weights) - 1, true
}

// Pick draws one item, evaluating weight once per item.
func Pick[T any](rng random.Source, items []T, weight func(T) float64) (T, bool) {
	weights := make([]float64, len(items))
	for i, item := range items {
		weights[i] = weight(item)
	}
	idx, ok := PickIndex(rng, weights)
	if !ok {
		var zero T
		return zero, false
	}
	return items[idx], true
}

// PickItem draws one of the pre-weighted items.
func PickItem[T any](rng random.Source, items []Item[T]) (Item[T], bool) {
	weights := make([]float64, len(items))
	for i, item := range items {
		weights[i] = item.Weight
	}
	idx, ok := PickIndex(rng, weights)
	if !ok {
		return Item[T]{}, false
	}
	return items[idx], true
}

// Rolls lazily draws up to maxRoll independent items.
// Every draw recomputes the weights, so draws are independent and identically
// distributed as long as weight is pure. The sequence stops at the first
// failed draw. The returned iterator is single-pass.
func Rolls[T any](rng random.Source, items []T, weight func(T) float64, maxRoll int) *sequence.Iterator[T] {
	return sequence.Once(func(yield func(T) bool) {
		for roll := 0; roll < maxRoll; roll++ {
			item, ok := Pick(rng, items, weight)
			if !ok || !yield(item) {
				return
			}
		}
	})
}
