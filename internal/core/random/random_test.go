package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
	assert.Equal(t, uint64(100), a.Draws())
	assert.Equal(t, uint64(42), a.Seed())
}

func TestNamedSeed(t *testing.T) {
	assert.Equal(t, SeedOf("wave-1"), NewNamed("wave-1").Seed())
	assert.NotEqual(t, SeedOf("wave-1"), SeedOf("wave-2"))
	assert.Equal(t, NewNamed("wave-1").Float64(), NewNamed("wave-1").Float64())
}

func TestFixedCycles(t *testing.T) {
	src := Fixed(0.1, 0.5)
	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 0.5, src.Float64())
	assert.Equal(t, 0.1, src.Float64())

	assert.Equal(t, 0.0, Fixed().Float64())
}

func TestFunc(t *testing.T) {
	var src Source = Func(func() float64 { return 0.25 })
	assert.Equal(t, 0.25, src.Float64())
}
