package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter(limit int, produced *int) func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for v := 0; v < limit; v++ {
			*produced++
			if !yield(v) {
				return
			}
		}
	}
}

func TestFromCollect(t *testing.T) {
	it := From([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, it.Collect())
	// plain iterators can be walked again
	assert.Equal(t, 3, it.Count())
	assert.NoError(t, it.Err())
	assert.False(t, it.Consumed())
}

func TestOnceRejectsSecondPass(t *testing.T) {
	produced := 0
	it := Once(counter(3, &produced))

	assert.Equal(t, []int{0, 1, 2}, it.Collect())
	assert.True(t, it.Consumed())
	require.NoError(t, it.Err())

	assert.Empty(t, it.Collect())
	assert.ErrorIs(t, it.Err(), ErrConsumed)
	assert.Equal(t, 3, produced)
}

func TestOnceGuardIsSharedByDerivedIterators(t *testing.T) {
	produced := 0
	it := Once(counter(10, &produced))
	doubled := Map(it.Take(2), func(v int) int { return v * 2 })

	assert.Equal(t, []int{0, 2}, doubled.Collect())
	assert.Equal(t, 2, produced, "take must stop pulling the source")

	assert.Empty(t, it.Collect())
	assert.ErrorIs(t, doubled.Err(), ErrConsumed)
}

func TestTakeZero(t *testing.T) {
	produced := 0
	assert.Empty(t, Once(counter(5, &produced)).Take(0).Collect())
	assert.Zero(t, produced)
}

func TestFilterFindFirst(t *testing.T) {
	it := From([]int{1, 2, 3, 4, 5, 6})

	assert.Equal(t, []int{2, 4, 6}, it.Filter(func(v int) bool { return v%2 == 0 }).Collect())

	v, ok := it.Find(func(v int) bool { return v > 4 })
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = it.Find(func(v int) bool { return v > 10 })
	assert.False(t, ok)

	first, ok := it.First()
	assert.True(t, ok)
	assert.Equal(t, 1, first)

	_, ok = From([]int{}).First()
	assert.False(t, ok)

	assert.True(t, it.Any(func(v int) bool { return v == 3 }))
	assert.True(t, it.All(func(v int) bool { return v > 0 }))
	assert.False(t, it.All(func(v int) bool { return v < 6 }))
}

func TestEachSortReduceGroup(t *testing.T) {
	var seen []int
	out := From([]int{3, 1, 2}).Each(func(v int) { seen = append(seen, v) }).Sort(func(a, b int) bool { return a < b }).Collect()
	assert.Equal(t, []int{3, 1, 2}, seen)
	assert.Equal(t, []int{1, 2, 3}, out)

	sum := Reduce(From([]int{1, 2, 3}), 0.5, func(acc float64, v int) float64 { return acc + float64(v) })
	assert.InDelta(t, 6.5, sum, 1e-9)

	groups := GroupBy(From([]string{"a", "bb", "c"}), func(s string) int { return len(s) })
	assert.Equal(t, []string{"a", "c"}, groups[1])
	assert.Equal(t, []string{"bb"}, groups[2])
}

func TestPull(t *testing.T) {
	next, stop := From([]int{7, 8}).Pull()
	defer stop()

	v, ok := next()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	v, ok = next()
	assert.True(t, ok)
	assert.Equal(t, 8, v)
	_, ok = next()
	assert.False(t, ok)
}
