// File: internal/simulation/generator.go
package simulation

import "math/rand"

// Generator produces the bin found at the next location. Implementations own
// their randomness source; the driver never seeds or reorders draws, so a
// deterministic implementation yields a fully reproducible run.
type Generator interface {
	Generate() BinState
}

// RandomGenerator draws the two day-relative attributes as independent
// boolean events. The probabilities are configuration supplied by the caller;
// the policy never consults them.
type RandomGenerator struct {
	rng     *rand.Rand
	pWaste  float64
	pContam float64
}

// NewRandomGenerator builds a generator over an injected source so tests and
// the CLI can pin a seed.
func NewRandomGenerator(rng *rand.Rand, pWaste, pContam float64) *RandomGenerator {
	return &RandomGenerator{rng: rng, pWaste: pWaste, pContam: pContam}
}

func (g *RandomGenerator) Generate() BinState {
	return BinState{
		HasScheduledWaste: g.rng.Float64() < g.pWaste,
		IsContaminated:    g.rng.Float64() < g.pContam,
	}
}

// FixtureGenerator replays a fixed sequence of bins. Test-only in spirit, but
// exported so callers can feed scripted scenarios through the real driver.
type FixtureGenerator struct {
	bins []BinState
	next int
}

func NewFixtureGenerator(bins ...BinState) *FixtureGenerator {
	return &FixtureGenerator{bins: bins}
}

// Generate panics when the fixture is exhausted; a run asking for more bins
// than the fixture holds is a bug in the test, not a runtime condition.
func (g *FixtureGenerator) Generate() BinState {
	if g.next >= len(g.bins) {
		panic("simulation: fixture generator exhausted")
	}
	bin := g.bins[g.next]
	g.next++
	return bin
}
