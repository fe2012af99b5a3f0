package manifold_test

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wormcube/cube"
	"github.com/katalvlaran/wormcube/facegrid"
	"github.com/katalvlaran/wormcube/manifold"
	"github.com/katalvlaran/wormcube/rotation"
)

//----------------------------------------------------------------------------//
// Map and Antipodal Tests
//----------------------------------------------------------------------------//

// TestBuildMap_Complete verifies the map holds one entry per sticker with
// a unique grid ID, for several sizes.
func TestBuildMap_Complete(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		c, err := cube.New(size)
		require.NoError(t, err)
		m := manifold.BuildMap(c)
		assert.Len(t, m, 6*size*size, "size %d: one entry per sticker", size)
		for id, loc := range m {
			require.NotNil(t, loc.Sticker, "id %s resolves to nil sticker", id)
			assert.Equal(t, id, facegrid.StickerID(loc.Sticker, size), "id %s indexes a foreign sticker", id)
		}
	}
}

// TestAntipodalOf_Involution verifies antipodal(antipodal(S)) == S for
// every sticker, both on a fresh cube and after a scramble.
func TestAntipodalOf_Involution(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		c, err := cube.New(size)
		require.NoError(t, err)

		scrambled, _, err := rotation.Scramble(c, 15, rand.New(rand.NewPCG(uint64(size), 0)))
		require.NoError(t, err)

		for label, cc := range map[string]*cube.Cube{"Fresh": c, "Scrambled": scrambled} {
			m := manifold.BuildMap(cc)
			cc.EachSticker(func(p cube.Position, d cube.Direction, s *cube.Sticker) {
				partner, err := manifold.AntipodalOf(m, s, size)
				require.NoError(t, err, "%s size %d: no partner for %v %v", label, size, p, d)
				require.NotSame(t, s, partner.Sticker, "a sticker can never be its own partner")

				back, err := manifold.AntipodalOf(m, partner.Sticker, size)
				require.NoError(t, err)
				assert.Same(t, s, back.Sticker, "%s size %d: involution broken at %v %v", label, size, p, d)
				assert.Equal(t, manifold.Site{Pos: p, Dir: d}, back.Site, "%s size %d: round trip lost the location", label, size)
			})
		}
	}
}

// TestAntipodalOf_Scenario pins the scripted size-3 pairing: the front
// top-right corner sticker (2,2,2,+Z) is identified with the back
// bottom-left corner sticker (0,0,0,−Z).
func TestAntipodalOf_Scenario(t *testing.T) {
	c, _ := cube.New(3)
	m := manifold.BuildMap(c)

	s := c.StickerAt(cube.Position{X: 2, Y: 2, Z: 2}, cube.PZ)
	require.NotNil(t, s)
	partner, err := manifold.AntipodalOf(m, s, 3)
	require.NoError(t, err)

	assert.Equal(t, cube.Position{X: 0, Y: 0, Z: 0}, partner.Pos)
	assert.Equal(t, cube.NZ, partner.Dir)
	assert.Equal(t, cube.Color(4), partner.Sticker.OriginalColor)
}

// TestAntipodalOf_Errors verifies nil handling and the invariant-violation
// path for an inconsistent map.
func TestAntipodalOf_Errors(t *testing.T) {
	c, _ := cube.New(2)
	m := manifold.BuildMap(c)
	s := c.StickerAt(cube.Position{X: 0, Y: 0, Z: 0}, cube.NX)
	require.NotNil(t, s)

	_, err := manifold.AntipodalOf(nil, s, 2)
	assert.ErrorIs(t, err, manifold.ErrNilMap)
	_, err = manifold.AntipodalOf(m, nil, 2)
	assert.ErrorIs(t, err, manifold.ErrNilSticker)

	// Corrupt the map: delete the partner's entry.
	partner, err := manifold.AntipodalOf(m, s, 2)
	require.NoError(t, err)
	delete(m, facegrid.StickerID(partner.Sticker, 2))
	_, err = manifold.AntipodalOf(m, s, 2)
	assert.ErrorIs(t, err, manifold.ErrAntipodeMissing, "a hole in the map must surface, not recover")
}

//----------------------------------------------------------------------------//
// Neighbor Tests
//----------------------------------------------------------------------------//

// TestNeighbors_InteriorAndBoundary verifies the cross-face linkage: a
// face-interior slot has four same-face neighbors, a boundary slot gains
// cross-face neighbors on the adjacent faces.
func TestNeighbors_InteriorAndBoundary(t *testing.T) {
	const size = 3

	center := manifold.Neighbors(cube.Position{X: 1, Y: 1, Z: 2}, cube.PZ, size)
	require.Len(t, center, 4)
	for _, nb := range center {
		assert.Equal(t, cube.PZ, nb.Dir, "face-interior neighbor %v must stay on the face", nb)
	}

	corner := manifold.Neighbors(cube.Position{X: 2, Y: 2, Z: 2}, cube.PZ, size)
	require.Len(t, corner, 4)
	crossDirs := map[cube.Direction]bool{}
	for _, nb := range corner {
		if nb.Dir != cube.PZ {
			crossDirs[nb.Dir] = true
			assert.Equal(t, cube.Position{X: 2, Y: 2, Z: 2}, nb.Pos, "cross-face neighbor stays on the shared-edge cubie")
		}
	}
	assert.Equal(t, map[cube.Direction]bool{cube.PX: true, cube.PY: true}, crossDirs,
		"the front top-right corner borders the +X and +Y faces")

	edge := manifold.Neighbors(cube.Position{X: 0, Y: 1, Z: 2}, cube.PZ, size)
	require.Len(t, edge, 4)
	var cross int
	for _, nb := range edge {
		if nb.Dir != cube.PZ {
			cross++
			assert.Equal(t, cube.NX, nb.Dir, "the x=0 edge borders the −X face")
		}
	}
	assert.Equal(t, 1, cross, "an edge (non-corner) slot has exactly one cross-face neighbor")
}

// TestNeighbors_Symmetric verifies the manifold adjacency relation is
// symmetric over all real sticker slots.
func TestNeighbors_Symmetric(t *testing.T) {
	for _, size := range []int{2, 3} {
		c, _ := cube.New(size)
		adj := manifold.Graph(c)
		for site, nbs := range adj {
			require.Len(t, nbs, 4, "slot %v must have exactly four neighbors", site)
			for _, nb := range nbs {
				assert.Contains(t, adj, nb, "neighbor %v of %v is not a sticker slot", nb, site)
				assert.Contains(t, adj[nb], site, "adjacency %v→%v is not mutual", site, nb)
			}
		}
	}
}

// TestConnected verifies the six faces form one connected 2-manifold.
func TestConnected(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		c, _ := cube.New(size)
		assert.True(t, manifold.Connected(c), "size %d manifold must be connected", size)
	}
	assert.False(t, manifold.Connected(nil), "nil cube has no connected manifold")
}

//----------------------------------------------------------------------------//
// Flip Tests
//----------------------------------------------------------------------------//

// flipDiff counts stickers whose content differs between two cubes.
func flipDiff(a, b *cube.Cube) int {
	diff := 0
	a.EachSticker(func(p cube.Position, d cube.Direction, s *cube.Sticker) {
		o := b.StickerAt(p, d)
		if o == nil || *s != *o {
			diff++
		}
	})
	return diff
}

// TestFlip_Scenario runs the scripted size-3 flow: flip the front
// top-right corner, verify both partners toggled through the {1,4}
// pairing with FlipCount 1, then rotate the front slice and verify the
// flip tallies survive while the classic layout is disturbed.
func TestFlip_Scenario(t *testing.T) {
	c, _ := cube.New(3)
	m := manifold.BuildMap(c)
	pos := cube.Position{X: 2, Y: 2, Z: 2}

	flipped, err := manifold.Flip(c, pos, cube.PZ, m)
	require.NoError(t, err)

	s := flipped.StickerAt(pos, cube.PZ)
	assert.Equal(t, cube.Color(1), s.OriginalColor, "flip never touches OriginalColor")
	assert.Equal(t, cube.Color(4), s.CurrentColor, "front sticker toggles 1→4")
	assert.Equal(t, 1, s.FlipCount)

	ps := flipped.StickerAt(cube.Position{X: 0, Y: 0, Z: 0}, cube.NZ)
	require.NotNil(t, ps)
	assert.Equal(t, cube.Color(1), ps.CurrentColor, "back partner toggles 4→1")
	assert.Equal(t, 1, ps.FlipCount)

	assert.Equal(t, 2, flipDiff(flipped, c), "a flip touches exactly two stickers")

	// The input cube and the map it fed are untouched.
	assert.Equal(t, 0, c.StickerAt(pos, cube.PZ).FlipCount, "input snapshot mutated by flip")

	turned, err := rotation.RotateSlice(flipped, rotation.AxisZ, 2, +1)
	require.NoError(t, err)
	total := 0
	turned.EachSticker(func(_ cube.Position, _ cube.Direction, s *cube.Sticker) { total += s.FlipCount })
	assert.Equal(t, 2, total, "rotation must not change flip tallies")
}

// TestFlip_Toggling verifies the involution-with-memory property: two
// flips at the same slot restore CurrentColor on both partners but leave
// both FlipCounts at 2.
func TestFlip_Toggling(t *testing.T) {
	c, _ := cube.New(3)
	pos := cube.Position{X: 1, Y: 2, Z: 0}

	var cache manifold.Cache
	once, err := manifold.Flip(c, pos, cube.PY, cache.Map(c))
	require.NoError(t, err)
	twice, err := manifold.Flip(once, pos, cube.PY, cache.Map(once))
	require.NoError(t, err)

	s := twice.StickerAt(pos, cube.PY)
	assert.Equal(t, s.OriginalColor, s.CurrentColor, "two flips restore the color")
	assert.Equal(t, 2, s.FlipCount, "flip count is cumulative")

	partner, err := manifold.AntipodalOf(manifold.BuildMap(twice), s, 3)
	require.NoError(t, err)
	assert.Equal(t, partner.Sticker.OriginalColor, partner.Sticker.CurrentColor)
	assert.Equal(t, 2, partner.Sticker.FlipCount)
}

// TestFlip_NoOp verifies a stickerless slot flips nothing and errors
// nothing.
func TestFlip_NoOp(t *testing.T) {
	c, _ := cube.New(3)
	m := manifold.BuildMap(c)

	// Interior-facing side of a face-center cubie.
	out, err := manifold.Flip(c, cube.Position{X: 1, Y: 1, Z: 1}, cube.PZ, m)
	require.NoError(t, err)
	assert.True(t, c.Equal(out), "no-op flip must return unchanged content")

	_, err = manifold.Flip(nil, cube.Position{}, cube.PZ, m)
	assert.ErrorIs(t, err, manifold.ErrNilCube)
	_, err = manifold.Flip(c, cube.Position{}, cube.PZ, nil)
	assert.ErrorIs(t, err, manifold.ErrNilMap)
}

// TestFlip_AfterScramble verifies flips resolve partners through home
// identity even when every cubie has moved: locality still holds.
func TestFlip_AfterScramble(t *testing.T) {
	c, _ := cube.New(3)
	scrambled, _, err := rotation.Scramble(c, 30, rand.New(rand.NewPCG(5, 1)))
	require.NoError(t, err)

	m := manifold.BuildMap(scrambled)
	pos := cube.Position{X: 0, Y: 2, Z: 1}
	require.NotNil(t, scrambled.StickerAt(pos, cube.NX), "expected a surface sticker at the probe slot")

	flipped, err := manifold.Flip(scrambled, pos, cube.NX, m)
	require.NoError(t, err)
	assert.Equal(t, 2, flipDiff(flipped, scrambled), "flip locality must survive scrambling")
}

//----------------------------------------------------------------------------//
// Cache Tests
//----------------------------------------------------------------------------//

// TestCache_ReuseAndRebuild verifies version-keyed memoization.
func TestCache_ReuseAndRebuild(t *testing.T) {
	c, _ := cube.New(3)
	var cache manifold.Cache

	m1 := cache.Map(c)
	m2 := cache.Map(c)
	require.NotNil(t, m1)
	assert.Equal(t, mapPtr(m1), mapPtr(m2), "same snapshot must reuse the cached map")

	next, err := rotation.RotateSlice(c, rotation.AxisY, 0, +1)
	require.NoError(t, err)
	m3 := cache.Map(next)
	assert.NotEqual(t, mapPtr(m1), mapPtr(m3), "a new snapshot must force a rebuild")

	cache.Invalidate()
	m4 := cache.Map(next)
	assert.NotEqual(t, mapPtr(m3), mapPtr(m4), "Invalidate must drop the cached map")

	assert.Nil(t, cache.Map(nil))
}

// mapPtr returns an identity proxy for a Map (maps are not comparable,
// but their reflect pointer is).
func mapPtr(m manifold.Map) uintptr {
	return reflect.ValueOf(m).Pointer()
}
