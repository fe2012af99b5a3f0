package chaos

import (
	"math/rand/v2"

	"github.com/katalvlaran/wormcube/cube"
	"github.com/katalvlaran/wormcube/manifold"
)

// Step is one completed cascade propagation: the tile that received a
// flip and the snapshot produced by that flip. Callers apply Cube
// atomically and pace the cascade by calling Next once per tick.
type Step struct {
	Site manifold.Site
	Cube *cube.Cube
}

// Cascade is a pull-based instability walk over the manifold-adjacency
// graph. It holds the current snapshot and chain state; each Next call
// performs at most one flip. The caller abandons a cascade simply by not
// calling Next again.
type Cascade struct {
	cube     *cube.Cube
	cur      manifold.Site
	strength float64
	steps    int
	chain    []manifold.Site
	opts     Options
	rng      *rand.Rand
	done     bool
}

// New seeds a cascade on the given snapshot. The seed tile is chosen
// among all stickers with a non-zero flip tally, weighted by
// max(1, FlipCount) — the more a sticker has traversed the manifold, the
// likelier it is to destabilize further.
//
// Returns ErrNilCube / ErrNilRand on nil inputs, ErrOptionViolation for a
// bad option, and ErrNoSeed when nothing has been flipped yet.
// Complexity: O(size³) for the seed scan.
func New(c *cube.Cube, rng *rand.Rand, opts ...Option) (*Cascade, error) {
	if c == nil {
		return nil, ErrNilCube
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seed, ok := pickSeed(c, rng)
	if !ok {
		return nil, ErrNoSeed
	}
	return &Cascade{
		cube:     c,
		cur:      seed,
		strength: 1.0,
		chain:    []manifold.Site{seed},
		opts:     o,
		rng:      rng,
	}, nil
}

// pickSeed draws a sticker slot with probability proportional to
// max(1, FlipCount), considering only stickers that have flipped.
func pickSeed(c *cube.Cube, rng *rand.Rand) (manifold.Site, bool) {
	type candidate struct {
		site   manifold.Site
		weight int
	}
	var (
		cands []candidate
		total int
	)
	c.EachSticker(func(p cube.Position, d cube.Direction, s *cube.Sticker) {
		if s.FlipCount == 0 {
			return
		}
		w := s.FlipCount
		if w < 1 {
			w = 1
		}
		cands = append(cands, candidate{site: manifold.Site{Pos: p, Dir: d}, weight: w})
		total += w
	})
	if total == 0 {
		return manifold.Site{}, false
	}
	draw := rng.IntN(total)
	for _, cand := range cands {
		draw -= cand.weight
		if draw < 0 {
			return cand.site, true
		}
	}
	return cands[len(cands)-1].site, true
}

// Next attempts one propagation step. It examines the current tile's
// manifold neighbors in deterministic order; the first neighbor whose
// random draw falls under
//
//	chainStrength · BaseChance · max(1, neighborFlipCount)
//
// receives a flip and becomes the current tile. After a successful step
// the chain strength decays by DecayFactor.
//
// The boolean is false when the cascade has terminated: no neighbor
// qualified, the strength fell below MinStrength, or MaxSteps was
// reached. A non-nil error means a topology invariant was violated
// mid-flip and the cascade is dead. Complexity per call: O(size³),
// dominated by the map rebuild and clone inside the flip.
func (cs *Cascade) Next() (Step, bool, error) {
	if cs.done || cs.strength < cs.opts.MinStrength || cs.steps >= cs.opts.MaxSteps {
		cs.done = true
		return Step{}, false, nil
	}

	for _, nb := range manifold.Neighbors(cs.cur.Pos, cs.cur.Dir, cs.cube.Size()) {
		s := cs.cube.StickerAt(nb.Pos, nb.Dir)
		if s == nil {
			continue
		}
		weight := s.FlipCount
		if weight < 1 {
			weight = 1
		}
		p := cs.strength * cs.opts.BaseChance * float64(weight)
		if cs.rng.Float64() >= p {
			continue
		}

		// The neighbor qualified: flip it against a map built from the
		// current snapshot, then advance the chain.
		m := manifold.BuildMap(cs.cube)
		next, err := manifold.Flip(cs.cube, nb.Pos, nb.Dir, m)
		if err != nil {
			cs.done = true
			return Step{}, false, err
		}
		cs.cube = next
		cs.cur = nb
		cs.strength *= cs.opts.DecayFactor
		cs.steps++
		cs.chain = append(cs.chain, nb)
		return Step{Site: nb, Cube: next}, true, nil
	}

	cs.done = true
	return Step{}, false, nil
}

// Run drains the cascade to termination and returns the final snapshot.
// Interactive consumers should prefer pacing Next themselves.
func (cs *Cascade) Run() (*cube.Cube, error) {
	for {
		_, ok, err := cs.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return cs.cube, nil
		}
	}
}

// Cube returns the cascade's current snapshot.
func (cs *Cascade) Cube() *cube.Cube { return cs.cube }

// Chain returns the tiles visited so far, seed first. The slice is a
// copy; mutating it cannot affect the cascade.
func (cs *Cascade) Chain() []manifold.Site {
	out := make([]manifold.Site, len(cs.chain))
	copy(out, cs.chain)
	return out
}

// Strength returns the remaining chain strength.
func (cs *Cascade) Strength() float64 { return cs.strength }
