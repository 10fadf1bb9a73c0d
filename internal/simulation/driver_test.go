// File: internal/simulation/driver_test.go
package simulation

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// The three scripted bins used across the scenario tests.
var (
	binNormal       = BinState{HasScheduledWaste: true}                      // collect, no fine
	binContamOnly   = BinState{IsContaminated: true}                         // skip, $200
	binContaminated = BinState{HasScheduledWaste: true, IsContaminated: true} // collect, $200
)

func TestRun_ScriptedScenarios(t *testing.T) {
	testCases := []struct {
		name       string
		day        DayType
		bin        BinState
		wantAction Action
		wantFine   int
	}{
		{"garbage day normal pickup", Garbage, binNormal, Collect, 0},
		{"recycle day contaminated empty bin", Recycle, binContamOnly, Skip, FineContamination},
		{"garbage day contaminated pickup", Garbage, binContaminated, Collect, FineContamination},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Run(tc.day, 1, NewFixtureGenerator(tc.bin))
			require.NoError(t, err)
			require.Len(t, res.Outcomes, 1)

			o := res.Outcomes[0]
			assert.Equal(t, 1, o.LocationIndex)
			assert.Equal(t, tc.wantAction, o.Action)
			assert.Equal(t, tc.wantFine, o.FineAmount)
			assert.Equal(t, tc.wantFine, res.TotalFines)
		})
	}
}

func TestRun_AccumulatesAcrossLocations(t *testing.T) {
	gen := NewFixtureGenerator(binNormal, binContamOnly, binContaminated)

	res, err := Run(Garbage, 3, gen)
	require.NoError(t, err)

	require.Len(t, res.Outcomes, 3)
	assert.Equal(t, 400, res.TotalFines)

	wantActions := []Action{Collect, Skip, Collect}
	wantFines := []int{0, FineContamination, FineContamination}
	for i, o := range res.Outcomes {
		assert.Equal(t, i+1, o.LocationIndex)
		assert.Equal(t, wantActions[i], o.Action)
		assert.Equal(t, wantFines[i], o.FineAmount)
	}
}

func TestRun_RejectsInvalidConfiguration(t *testing.T) {
	gen := NewFixtureGenerator(binNormal)

	for _, count := range []int{0, -1, -20} {
		res, err := Run(Garbage, count, gen)
		require.Error(t, err, "count %d", count)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Nil(t, res)
	}

	res, err := Run(Garbage, 5, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, res)
}

func TestRun_SingleLocationBoundary(t *testing.T) {
	res, err := Run(Recycle, 1, NewFixtureGenerator(binNormal))
	require.NoError(t, err)
	assert.Equal(t, 1, res.LocationCount)
	assert.Len(t, res.Outcomes, 1)
}

// Invariants over a realistic random street: index ordering, aggregate total,
// and per-outcome fine consistency.
func TestRun_InvariantsOverRandomStreet(t *testing.T) {
	gen := NewStreetGenerator(rand.New(rand.NewSource(25)), Garbage, 0.6, 0.25)

	res, err := Run(Garbage, 100, gen)
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 100)

	total := 0
	for k, o := range res.Outcomes {
		assert.Equal(t, k+1, o.LocationIndex)

		want := 0
		for _, r := range o.FineReasons {
			switch r {
			case ReasonUncollected:
				want += FineUncollected
			case ReasonContamination:
				want += FineContamination
			}
		}
		assert.Equal(t, want, o.FineAmount)
		total += o.FineAmount
	}
	assert.Equal(t, total, res.TotalFines)
}

// RunParallel must be observationally identical to Run for the same drawn
// bins, regardless of worker count.
func TestRunParallel_MatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	bins := make([]BinState, 0, 64)
	rng := rand.New(rand.NewSource(9))
	street := NewStreetGenerator(rng, Recycle, 0.6, 0.25)
	for i := 0; i < 64; i++ {
		bins = append(bins, street.Generate())
	}

	sequential, err := Run(Recycle, len(bins), NewFixtureGenerator(bins...))
	require.NoError(t, err)

	for _, workers := range []int{1, 4, 16} {
		parallel, err := RunParallel(context.Background(), Recycle, len(bins), NewFixtureGenerator(bins...), workers)
		require.NoError(t, err, "workers %d", workers)
		assert.Equal(t, sequential, parallel, "workers %d", workers)
	}
}

func TestRunParallel_RejectsInvalidConfiguration(t *testing.T) {
	defer goleak.VerifyNone(t)

	res, err := RunParallel(context.Background(), Garbage, 0, NewFixtureGenerator(binNormal), 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Nil(t, res)
}

func TestRunParallel_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := NewStreetGenerator(rand.New(rand.NewSource(1)), Garbage, 0.6, 0.25)
	res, err := RunParallel(ctx, Garbage, 32, gen, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}
