package cube

import (
	"fmt"
	"sync/atomic"
)

// snapshotIDs allocates unique version numbers for cube snapshots. It is
// an identity allocator only; no behavior depends on its value beyond
// "different snapshot ⇒ different version".
var snapshotIDs atomic.Uint64

// Cube is an immutable-by-convention snapshot of the whole puzzle:
// a size×size×size grid of cubies. All mutating operations in the engine
// (rotation, flip) produce a new Cube and leave their input untouched;
// callers must treat the stickers they read as read-only.
type Cube struct {
	size    int
	cubies  []*Cubie // x + y*size + z*size² (x fastest)
	version uint64
}

// New builds a solved cube of the given size. Every cubie receives a
// sticker for each of its outer-boundary directions, colored by the fixed
// direction→color assignment (+Z=1, −X=2, +Y=3, −Z=4, +X=5, −Y=6), with
// FlipCount zero and home anchors set to the construction position.
//
// Returns ErrBadSize when size < 2. Complexity: O(size³).
func New(size int) (*Cube, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	c := &Cube{
		size:    size,
		cubies:  make([]*Cubie, size*size*size),
		version: snapshotIDs.Add(1),
	}
	for z := 0; z < size; z++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				cb := NewCubie()
				p := Position{X: x, Y: y, Z: z}
				for _, d := range Directions() {
					if !onBoundary(p, d, size) {
						continue
					}
					col := d.Color()
					cb.Set(d, &Sticker{
						OriginalColor: col,
						CurrentColor:  col,
						HomePos:       p,
						HomeDir:       d,
					})
				}
				c.cubies[c.index(p)] = cb
			}
		}
	}
	return c, nil
}

// onBoundary reports whether direction d is an outer face of the cubie at
// position p: x==size-1 → +X, x==0 → −X, and likewise for y and z.
func onBoundary(p Position, d Direction, size int) bool {
	if d.Positive() {
		return p.Component(d.AxisIndex()) == size-1
	}
	return p.Component(d.AxisIndex()) == 0
}

// Assemble builds a Cube snapshot directly from a prepared cubie grid,
// indexed x + y*size + z*size². It is intended for engine packages that
// derive new snapshots (e.g. slice rotation) and may share cubie pointers
// with an existing snapshot; such sharing is safe because every mutating
// operation deep-clones before writing.
//
// Returns ErrBadSize for size < 2 and ErrBadLayout when the slice length
// differs from size³ or any cell is nil. Complexity: O(size³).
func Assemble(size int, cubies []*Cubie) (*Cube, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	if len(cubies) != size*size*size {
		return nil, fmt.Errorf("%w: want %d cubies, got %d", ErrBadLayout, size*size*size, len(cubies))
	}
	for i, cb := range cubies {
		if cb == nil {
			return nil, fmt.Errorf("%w: nil cubie at index %d", ErrBadLayout, i)
		}
	}
	grid := make([]*Cubie, len(cubies))
	copy(grid, cubies)
	return &Cube{size: size, cubies: grid, version: snapshotIDs.Add(1)}, nil
}

// Size returns the edge length of the cube.
func (c *Cube) Size() int { return c.size }

// Version returns the unique snapshot identity of this cube. Two cubes
// never share a version, which makes it a suitable key for caches of
// derived data (see manifold.Cache).
func (c *Cube) Version() uint64 { return c.version }

// index returns the linear slice index for a position.
func (c *Cube) index(p Position) int {
	return p.X + p.Y*c.size + p.Z*c.size*c.size
}

// InBounds reports whether p lies inside the grid.
func (c *Cube) InBounds(p Position) bool {
	return p.X >= 0 && p.X < c.size &&
		p.Y >= 0 && p.Y < c.size &&
		p.Z >= 0 && p.Z < c.size
}

// CubieAt returns the cubie currently occupying position p, or nil when p
// is out of bounds. Complexity: O(1).
func (c *Cube) CubieAt(p Position) *Cubie {
	if !c.InBounds(p) {
		return nil
	}
	return c.cubies[c.index(p)]
}

// StickerAt returns the sticker currently stored at position p under
// direction key d, or nil when p is out of bounds or that side of the
// cubie is interior-facing. Complexity: O(1).
func (c *Cube) StickerAt(p Position, d Direction) *Sticker {
	cb := c.CubieAt(p)
	if cb == nil {
		return nil
	}
	return cb.Sticker(d)
}

// Cubies returns the backing cubie grid, indexed x + y*size + z*size².
// Callers must not mutate it; derive new snapshots via Assemble instead.
func (c *Cube) Cubies() []*Cubie { return c.cubies }

// EachSticker calls fn for every sticker in the cube in a fixed,
// deterministic order: positions by ascending linear index, directions in
// enum order. Complexity: O(size³).
func (c *Cube) EachSticker(fn func(p Position, d Direction, s *Sticker)) {
	for z := 0; z < c.size; z++ {
		for y := 0; y < c.size; y++ {
			for x := 0; x < c.size; x++ {
				p := Position{X: x, Y: y, Z: z}
				cb := c.cubies[c.index(p)]
				for _, d := range Directions() {
					if s := cb.Sticker(d); s != nil {
						fn(p, d, s)
					}
				}
			}
		}
	}
}

// StickerCount returns the total number of stickers (6·size² for any
// correctly built cube).
func (c *Cube) StickerCount() int {
	n := 0
	c.EachSticker(func(Position, Direction, *Sticker) { n++ })
	return n
}

// Clone deep-copies the cube: every cubie and every sticker is a fresh
// object, so mutating the clone can never affect the original. This is
// the immutability contract all higher operations depend on.
// Complexity: O(size³).
func (c *Cube) Clone() *Cube {
	nc := &Cube{
		size:    c.size,
		cubies:  make([]*Cubie, len(c.cubies)),
		version: snapshotIDs.Add(1),
	}
	for i, cb := range c.cubies {
		nc.cubies[i] = cb.Clone()
	}
	return nc
}

// Equal reports whether two cubes hold identical content: same size and,
// cell by cell, stickers with equal fields under equal direction keys.
// Snapshot versions are deliberately ignored. Complexity: O(size³).
func (c *Cube) Equal(other *Cube) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.size != other.size {
		return false
	}
	for i, cb := range c.cubies {
		ob := other.cubies[i]
		for _, d := range Directions() {
			s, o := cb.Sticker(d), ob.Sticker(d)
			switch {
			case s == nil && o == nil:
			case s == nil || o == nil:
				return false
			case *s != *o:
				return false
			}
		}
	}
	return true
}
