// Package allocation spends a budget on randomly drawn candidates.
//
// Each round drops the candidates the remaining budget can no longer afford,
// draws one of the rest with probability proportional to its rank, and
// deducts its cost. The run ends when nothing affordable with a positive
// total rank is left, or after MaxRoll rounds.
package allocation

import (
	"cmp"
	"slices"

	"github.com/zeusync/spawnkit/internal/core/observability/log"
	"github.com/zeusync/spawnkit/internal/core/random"
	"github.com/zeusync/spawnkit/internal/core/weighted"
	"github.com/zeusync/spawnkit/pkg/sequence"
)

// Candidate is an item with its cost and rank evaluated once.
type Candidate[T any] struct {
	Value T
	Cost  float64
	Rank  float64
}

// Allocation describes one chosen candidate.
type Allocation[T any] struct {
	Round        int
	Value        T
	Cost         float64
	Rank         float64
	BudgetBefore float64
	BudgetAfter  float64
}

// Allocate lazily allocates budget over items, comparing values with == for
// the no-duplicate rule. Costs and ranks are evaluated here, once per item;
// the returned iterator is single-pass.
func Allocate[T comparable](rng random.Source, items []T, cost, rank func(T) float64, budget float64, opts ...Option) *sequence.Iterator[Allocation[T]] {
	return AllocateFunc(rng, items, cost, rank, func(a, b T) bool { return a == b }, budget, opts...)
}

// AllocateFunc is Allocate for values that are not comparable with ==.
func AllocateFunc[T any](rng random.Source, items []T, cost, rank func(T) float64, equal func(a, b T) bool, budget float64, opts ...Option) *sequence.Iterator[Allocation[T]] {
	o := buildOptions(opts)
	candidates := Materialize(items, cost, rank)

	return sequence.Once(func(yield func(Allocation[T]) bool) {
		remaining := budget
		weights := make([]float64, 0, len(candidates))

		for round := 0; round < o.MaxRoll; round++ {
			for len(candidates) > 0 && candidates[len(candidates)-1].Cost > remaining {
				candidates = candidates[:len(candidates)-1]
			}

			weights = weights[:0]
			for _, c := range candidates {
				weights = append(weights, c.Rank)
			}
			idx, ok := weighted.PickIndex(rng, weights)
			if !ok {
				o.Logger.Debug("allocation exhausted",
					log.Int("round", round),
					log.Int("candidates", len(candidates)),
					log.Float64("budget", remaining))
				return
			}

			chosen := candidates[idx]
			pick := Allocation[T]{
				Round:        round,
				Value:        chosen.Value,
				Cost:         chosen.Cost,
				Rank:         chosen.Rank,
				BudgetBefore: remaining,
				BudgetAfter:  remaining - chosen.Cost,
			}
			remaining = pick.BudgetAfter

			if o.NoDuplicate {
				candidates = slices.DeleteFunc(candidates, func(c Candidate[T]) bool {
					return equal(c.Value, chosen.Value)
				})
			}

			o.Logger.Debug("allocation round",
				log.Int("round", round),
				log.Float64("cost", pick.Cost),
				log.Float64("budget", remaining),
				log.Int("candidates", len(candidates)))

			if !yield(pick) {
				return
			}
		}
	})
}

// Distribute is Allocate reduced to the chosen values.
func Distribute[T comparable](rng random.Source, items []T, cost, rank func(T) float64, budget float64, opts ...Option) *sequence.Iterator[T] {
	return sequence.Map(Allocate(rng, items, cost, rank, budget, opts...), func(a Allocation[T]) T {
		return a.Value
	})
}

// Materialize evaluates cost and rank once per item and sorts the candidates
// by ascending cost. Equal costs keep their input order.
func Materialize[T any](items []T, cost, rank func(T) float64) []Candidate[T] {
	candidates := make([]Candidate[T], len(items))
	for i, item := range items {
		candidates[i] = Candidate[T]{Value: item, Cost: cost(item), Rank: rank(item)}
	}
	slices.SortStableFunc(candidates, func(a, b Candidate[T]) int {
		return cmp.Compare(a.Cost, b.Cost)
	})
	return candidates
}
