// Package rotation defines move types, options, and sentinel errors for
// the slice-rotation engine.
package rotation

import (
	"errors"
	"fmt"
)

// Sentinel errors for rotation operations.
var (
	// ErrNilCube is returned if a nil cube pointer is passed.
	ErrNilCube = errors.New("rotation: cube is nil")
	// ErrAxis is returned for an axis outside {AxisX, AxisY, AxisZ}.
	ErrAxis = errors.New("rotation: invalid axis")
	// ErrSliceIndex is returned for a slice index outside [0,size).
	ErrSliceIndex = errors.New("rotation: slice index out of range")
	// ErrDirection is returned for a turn direction outside {+1,−1}.
	ErrDirection = errors.New("rotation: direction must be +1 or -1")
	// ErrNilRand is returned when Scramble receives a nil random source.
	ErrNilRand = errors.New("rotation: random source is nil")
	// ErrScrambleLength is returned for a negative scramble length.
	ErrScrambleLength = errors.New("rotation: scramble length must be non-negative")
)

// Axis selects the rotation axis of a slice turn.
type Axis uint8

const (
	// AxisX rotates a slice of constant x.
	AxisX Axis = iota
	// AxisY rotates a slice of constant y.
	AxisY
	// AxisZ rotates a slice of constant z.
	AxisZ
)

// axisNames holds printable labels, indexed by Axis.
var axisNames = [3]string{"X", "Y", "Z"}

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a > AxisZ {
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
	return axisNames[a]
}

// Move is one 90° slice turn: the axis, the slice index along it, and
// the turn direction (+1 or −1). Applying a move and then its Inverse
// restores the cube.
type Move struct {
	Axis  Axis
	Index int
	Dir   int
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Axis: m.Axis, Index: m.Index, Dir: -m.Dir}
}

// String implements fmt.Stringer, e.g. "Z2+" for axis Z, slice 2, Dir +1.
func (m Move) String() string {
	sign := "+"
	if m.Dir < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d%s", m.Axis, m.Index, sign)
}
