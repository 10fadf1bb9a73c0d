// File: internal/simulation/generator_test.go
package simulation

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureGenerator_ReplaysSequenceInOrder(t *testing.T) {
	bins := []BinState{
		{HasScheduledWaste: true},
		{IsContaminated: true},
		{HasScheduledWaste: true, IsContaminated: true},
	}
	gen := NewFixtureGenerator(bins...)

	for i, want := range bins {
		assert.Equal(t, want, gen.Generate(), "draw %d", i)
	}
	assert.PanicsWithValue(t, "simulation: fixture generator exhausted", func() {
		gen.Generate()
	})
}

func TestRandomGenerator_ReproducibleUnderSeed(t *testing.T) {
	a := NewRandomGenerator(rand.New(rand.NewSource(25)), 0.6, 0.25)
	b := NewRandomGenerator(rand.New(rand.NewSource(25)), 0.6, 0.25)

	for i := 0; i < 200; i++ {
		require.Equal(t, a.Generate(), b.Generate(), "draw %d diverged", i)
	}
}

func TestRandomGenerator_ProbabilityExtremes(t *testing.T) {
	certain := NewRandomGenerator(rand.New(rand.NewSource(1)), 1, 0)
	for i := 0; i < 50; i++ {
		assert.Equal(t, BinState{HasScheduledWaste: true}, certain.Generate())
	}

	contaminatedOnly := NewRandomGenerator(rand.New(rand.NewSource(1)), 0, 1)
	for i := 0; i < 50; i++ {
		assert.Equal(t, BinState{IsContaminated: true}, contaminatedOnly.Generate())
	}
}

// The day-relative projection reads only the serviced bin: the matching item
// type is scheduled waste, the other item type is contamination.
func TestLocationState_Serviced(t *testing.T) {
	ls := LocationState{
		GarbageBin: BinContents{Garbage: 1, Recycle: 1},
		RecycleBin: BinContents{Garbage: 1},
	}

	assert.Equal(t, BinState{HasScheduledWaste: true, IsContaminated: true}, ls.Serviced(Garbage))
	assert.Equal(t, BinState{HasScheduledWaste: false, IsContaminated: true}, ls.Serviced(Recycle))

	empty := LocationState{}
	assert.Equal(t, BinState{}, empty.Serviced(Garbage))
	assert.Equal(t, BinState{}, empty.Serviced(Recycle))
}

func TestStreetGenerator_ReproducibleUnderSeed(t *testing.T) {
	a := NewStreetGenerator(rand.New(rand.NewSource(7)), Recycle, 0.6, 0.25)
	b := NewStreetGenerator(rand.New(rand.NewSource(7)), Recycle, 0.6, 0.25)

	for i := 0; i < 200; i++ {
		require.Equal(t, a.Generate(), b.Generate(), "draw %d diverged", i)
	}
}

func TestStreetGenerator_GenerateMatchesProjection(t *testing.T) {
	viaGenerate := NewStreetGenerator(rand.New(rand.NewSource(11)), Garbage, 0.6, 0.25)
	viaProjection := NewStreetGenerator(rand.New(rand.NewSource(11)), Garbage, 0.6, 0.25)

	for i := 0; i < 100; i++ {
		want := viaProjection.NextLocation().Serviced(Garbage)
		assert.Equal(t, want, viaGenerate.Generate(), "draw %d", i)
	}
}

func TestStreetGenerator_FullBinsEveryLocation(t *testing.T) {
	gen := NewStreetGenerator(rand.New(rand.NewSource(3)), Garbage, 1, 1)
	for i := 0; i < 50; i++ {
		ls := gen.NextLocation()
		assert.Equal(t, BinContents{Garbage: 1, Recycle: 1}, ls.GarbageBin)
		assert.Equal(t, BinContents{Garbage: 1, Recycle: 1}, ls.RecycleBin)
	}
}
