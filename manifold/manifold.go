package manifold

import (
	"fmt"

	"github.com/katalvlaran/wormcube/cube"
	"github.com/katalvlaran/wormcube/facegrid"
)

// BuildMap indexes every sticker currently in the cube by its manifold
// grid ID. The ID is computed from the sticker's immutable home anchors,
// so it never changes; the Location value records where that sticker sits
// right now. Complexity: O(size³).
func BuildMap(c *cube.Cube) Map {
	if c == nil {
		return nil
	}
	m := make(Map, 6*c.Size()*c.Size())
	size := c.Size()
	c.EachSticker(func(p cube.Position, d cube.Direction, s *cube.Sticker) {
		m[facegrid.StickerID(s, size)] = Location{
			Site:    Site{Pos: p, Dir: d},
			Sticker: s,
		}
	})
	return m
}

// antipodalID returns the grid ID of the sticker's antipodal partner:
// the same row/col slot on the paired face. The face formulas of
// facegrid guarantee this is exactly the point-reflection partner.
func antipodalID(s *cube.Sticker, size int) string {
	face := s.HomeDir.Color().Antipode()
	return facegrid.FormatID(face, facegrid.Index(s.HomeDir, s.HomePos, size), size)
}

// AntipodalOf resolves the current location of the sticker's antipodal
// partner through the map. The partner of a sticker on face F at slot i
// is the sticker on the paired face (1↔4, 2↔5, 3↔6) at the same slot i.
//
// Returns ErrNilMap / ErrNilSticker on nil inputs and ErrAntipodeMissing
// when the map lacks the partner — the latter is an invariant violation,
// never a normal outcome. Complexity: O(1).
func AntipodalOf(m Map, s *cube.Sticker, size int) (Location, error) {
	if m == nil {
		return Location{}, ErrNilMap
	}
	if s == nil {
		return Location{}, ErrNilSticker
	}
	id := antipodalID(s, size)
	loc, ok := m[id]
	if !ok {
		return Location{}, fmt.Errorf("%w: %s (partner of %s)", ErrAntipodeMissing, id, facegrid.StickerID(s, size))
	}
	return loc, nil
}

// Neighbors returns the manifold-adjacent sticker slots of the slot at
// (p, d): up to four same-face grid neighbors, with each step off a face
// boundary replaced by the cross-face neighbor on the adjacent face that
// shares the physical cube edge — the same cubie, keyed under the axis
// direction the step walked off along. There is no wraparound within a
// face; every slot therefore has exactly four manifold neighbors.
//
// This cross-face linkage is what differs from naive Euclidean adjacency
// and makes the six faces one connected 2-manifold. Neighbor order is
// deterministic: in-face axes ascending, negative step before positive.
// Complexity: O(1).
func Neighbors(p cube.Position, d cube.Direction, size int) []Site {
	normal := d.AxisIndex()
	out := make([]Site, 0, 4)
	for axis := 0; axis < 3; axis++ {
		if axis == normal {
			continue
		}
		for _, delta := range [2]int{-1, +1} {
			q := p.Add(axis, delta)
			if v := q.Component(axis); v >= 0 && v < size {
				out = append(out, Site{Pos: q, Dir: d})
				continue
			}
			// Walked off the face edge: cross onto the adjacent face at
			// the same cubie, facing the axis we stepped along.
			out = append(out, Site{Pos: p, Dir: cube.DirectionAlong(axis, delta > 0)})
		}
	}
	return out
}

// Flip applies the flip operator at the slot (p, d): it toggles the
// sticker there and its antipodal partner to their paired color
// identities ({1↔4, 2↔5, 3↔6} applied to each one's own current color)
// and increments both flip counts. The result is a fresh deep clone; the
// input cube and the supplied map are untouched.
//
// The map must have been built against c (or a content-identical
// snapshot). Both sub-updates of one call are resolved against that same
// pre-flip map; only a *subsequent* independent flip or rotation needs a
// rebuilt map.
//
// A slot without a sticker (an interior-facing side) is a benign no-op:
// the unchanged clone is returned. A missing antipodal partner is an
// invariant violation and surfaces as ErrAntipodeMissing.
// Complexity: O(size³) for the clone.
func Flip(c *cube.Cube, p cube.Position, d cube.Direction, m Map) (*cube.Cube, error) {
	if c == nil {
		return nil, ErrNilCube
	}
	if m == nil {
		return nil, ErrNilMap
	}
	next := c.Clone()
	s := next.StickerAt(p, d)
	if s == nil {
		return next, nil
	}
	partner, err := AntipodalOf(m, s, next.Size())
	if err != nil {
		return nil, err
	}
	ps := next.StickerAt(partner.Pos, partner.Dir)
	if ps == nil {
		return nil, fmt.Errorf("%w: no sticker at %s", ErrAntipodeMissing, partner.Site)
	}
	for _, st := range [2]*cube.Sticker{s, ps} {
		st.CurrentColor = st.CurrentColor.Antipode()
		st.FlipCount++
	}
	return next, nil
}
