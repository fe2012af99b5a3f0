// Package chaos implements the instability cascade of the WORM-3 engine:
// a weighted-random walk over the manifold-adjacency graph that applies
// flips with decaying probability.
//
// What
//
//   - New: seed a Cascade on a snapshot, picking the seed among flipped
//     stickers with probability proportional to max(1, FlipCount).
//   - Next: one pull-based propagation step — the first manifold neighbor
//     whose draw falls under chainStrength·BaseChance·max(1, flips)
//     receives a flip; the chain strength then decays.
//   - Run: drain to termination for non-interactive callers.
//   - Tier / DefaultTiers / LoadTiers / SaveTiers: the four intensity
//     presets, TOML-configurable.
//
// Why
//
//	Flips destabilize the manifold; the cascade models that instability
//	spreading along manifold adjacency (not Euclidean adjacency), so
//	disturbances travel across face boundaries the way the RP² topology
//	dictates.
//
// Determinism
//
//	The walk is intentionally randomized, but fully reproducible under a
//	seeded *rand.Rand: same snapshot, same seed, same chain. Structural
//	guarantees hold regardless of seed — a chain never exceeds
//	MaxSteps+1 tiles, every consecutive pair is manifold-adjacent, and a
//	DecayFactor in (0,1) forces termination.
//
// Pacing
//
//	The core contains no timers and no concurrency. Interactive
//	consumers call Next once per tick and apply the returned snapshot
//	atomically; abandoning a cascade is simply not calling Next again.
//
// Complexity
//
//	O(size³) per step, dominated by the flip's clone and map rebuild.
//
// Usage
//
//	rng := rand.New(rand.NewPCG(seed, 0))
//	cas, err := chaos.New(c, rng, chaos.WithMaxSteps(8))
//	if errors.Is(err, chaos.ErrNoSeed) { /* nothing flipped yet */ }
//	for {
//	    step, ok, err := cas.Next()
//	    if err != nil || !ok {
//	        break
//	    }
//	    apply(step.Cube) // presentation-side
//	}
package chaos
