// Package cube defines core types and sentinel errors for the WORM-3
// cube state: directions, colors, positions, stickers and cubies.
package cube

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for cube construction.
var (
	// ErrBadSize indicates a cube size below the minimum of 2.
	ErrBadSize = errors.New("cube: size must be an integer ≥ 2")
	// ErrNilCube indicates a nil *Cube was passed where a cube is required.
	ErrNilCube = errors.New("cube: cube is nil")
	// ErrBadLayout indicates Assemble received a cubie slice whose length
	// or contents do not form a complete size×size×size grid.
	ErrBadLayout = errors.New("cube: cubie layout does not match size")
)

// Direction labels one of the six face normals of the cube.
// Opposite directions differ only in the lowest bit, so Opposite is O(1).
type Direction uint8

const (
	// PX faces +X (right).
	PX Direction = iota
	// NX faces −X (left).
	NX
	// PY faces +Y (top).
	PY
	// NY faces −Y (bottom).
	NY
	// PZ faces +Z (front).
	PZ
	// NZ faces −Z (back).
	NZ

	// NumDirections is the number of face directions.
	NumDirections = 6
)

// Directions returns all six face directions in enum order.
// The order is the canonical iteration order used across the engine.
func Directions() [NumDirections]Direction {
	return [NumDirections]Direction{PX, NX, PY, NY, PZ, NZ}
}

// Opposite returns the antipodal face direction (PX↔NX, PY↔NY, PZ↔NZ).
// Applying it twice is the identity. Complexity: O(1).
func (d Direction) Opposite() Direction { return d ^ 1 }

// AxisIndex returns the coordinate axis the direction lies on:
// 0 for ±X, 1 for ±Y, 2 for ±Z.
func (d Direction) AxisIndex() int { return int(d) >> 1 }

// Positive reports whether the direction points along the positive axis.
func (d Direction) Positive() bool { return d&1 == 0 }

// DirectionAlong returns the direction on the given axis (0=X, 1=Y, 2=Z)
// with the given orientation.
func DirectionAlong(axis int, positive bool) Direction {
	d := Direction(axis << 1)
	if !positive {
		d |= 1
	}
	return d
}

// dirVecs holds the unit vector of each direction, indexed by Direction.
var dirVecs = [NumDirections]mgl64.Vec3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Vec returns the unit vector of the direction as an mgl64.Vec3.
func (d Direction) Vec() mgl64.Vec3 { return dirVecs[d] }

// DirectionFromVec classifies a (possibly rotation-perturbed) unit vector
// back to a face direction by its dominant component. The boolean is false
// when no component dominates, which cannot happen for any 90°-rotated
// face normal.
func DirectionFromVec(v mgl64.Vec3) (Direction, bool) {
	for axis := 0; axis < 3; axis++ {
		switch {
		case v[axis] > 0.5:
			return DirectionAlong(axis, true), true
		case v[axis] < -0.5:
			return DirectionAlong(axis, false), true
		}
	}
	return 0, false
}

// dirColors holds the construction-time color of each face direction:
// +Z=1, −X=2, +Y=3, −Z=4, +X=5, −Y=6. Indexed by Direction.
var dirColors = [NumDirections]Color{5, 2, 3, 6, 1, 4}

// Color returns the color identity assigned to this face direction at
// puzzle construction.
func (d Direction) Color() Color { return dirColors[d] }

// dirNames holds printable labels, indexed by Direction.
var dirNames = [NumDirections]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return dirNames[d]
}

// Color is a face/color identity in [1,6].
type Color uint8

// Valid reports whether the color is in the legal range [1,6].
func (c Color) Valid() bool { return c >= 1 && c <= 6 }

// Antipode returns the paired color under the fixed face-antipodal
// involution {1↔4, 2↔5, 3↔6}. Applying it twice is the identity.
func (c Color) Antipode() Color { return (c+2)%6 + 1 }

// Position is a cubie grid coordinate, each component in [0,size).
type Position struct {
	X, Y, Z int
}

// Component returns the coordinate on the given axis (0=X, 1=Y, 2=Z).
func (p Position) Component(axis int) int {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Add returns a copy of p with the given axis component shifted by delta.
func (p Position) Add(axis, delta int) Position {
	switch axis {
	case 0:
		p.X += delta
	case 1:
		p.Y += delta
	default:
		p.Z += delta
	}
	return p
}

// Vec returns the position as an mgl64.Vec3.
func (p Position) Vec() mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X), float64(p.Y), float64(p.Z)}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Sticker is one face-sticker of one cubie.
//
// OriginalColor, HomePos and HomeDir are fixed at construction and anchor
// all manifold-identity calculations; they never change afterwards, no
// matter how many rotations move the owning cubie. CurrentColor is
// mutated only by the flip operator, never by rotation. FlipCount is the
// cumulative number of flips applied and only ever grows.
type Sticker struct {
	OriginalColor Color
	CurrentColor  Color
	FlipCount     int
	HomePos       Position
	HomeDir       Direction
}

// Clone returns an independent copy of the sticker.
func (s *Sticker) Clone() *Sticker {
	c := *s
	return &c
}

// Cubie is one unit of the size×size×size assembly. It stores at most one
// sticker per face direction; interior-facing slots are nil.
type Cubie struct {
	stickers [NumDirections]*Sticker
}

// NewCubie returns an empty cubie with no stickers attached.
func NewCubie() *Cubie { return &Cubie{} }

// Sticker returns the sticker stored under the given direction key, or
// nil when this side of the cubie is interior-facing.
func (cb *Cubie) Sticker(d Direction) *Sticker { return cb.stickers[d] }

// Set stores a sticker under the given direction key. A nil sticker
// clears the slot. Used by the rotation engine when remapping
// direction keys onto fresh cubies.
func (cb *Cubie) Set(d Direction, s *Sticker) { cb.stickers[d] = s }

// StickerCount returns how many sides of the cubie carry a sticker
// (0 for interior pieces, 1..3 on the surface of a classic cube).
func (cb *Cubie) StickerCount() int {
	n := 0
	for _, s := range cb.stickers {
		if s != nil {
			n++
		}
	}
	return n
}

// Clone deep-copies the cubie and all of its stickers.
func (cb *Cubie) Clone() *Cubie {
	nc := &Cubie{}
	for d, s := range cb.stickers {
		if s != nil {
			nc.stickers[d] = s.Clone()
		}
	}
	return nc
}
