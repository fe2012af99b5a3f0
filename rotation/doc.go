// Package rotation implements 90° slice turns over cube snapshots,
// plus move sequencing and scrambling.
//
// What
//
//   - RotateSlice: turn the slice at (axis, index) by ±90°, relocating
//     its cubies and re-keying each sticker under its rotated face
//     normal. Returns a new snapshot; the input is untouched.
//   - Move / Apply: a sequence of turns applied left to right.
//   - Scramble: n random turns from an injected *rand.Rand, returning
//     the move list for replay or inversion.
//
// Why
//
//	Rotation permutes sticker locations and direction keys but never
//	alters sticker content — colors, flip tallies and home anchors ride
//	along unchanged. This is what keeps the manifold grid IDs invariant
//	while the classic win condition reacts to physical moves.
//
// Guarantees
//
//   - Bijection: within the slice, every source cell maps to exactly one
//     destination cell in the same plane.
//   - Reversibility: a +1 turn followed by a −1 turn (or four equal
//     turns) restores content-equal state.
//   - Sharing: cubies outside the slice are carried by pointer, so
//     consumers can detect unaffected planes by identity.
//
// Error semantics
//
//	Invalid axis, slice index, or direction are programming errors and
//	surface as ErrAxis / ErrSliceIndex / ErrDirection; arguments are
//	never clamped silently.
//
// Complexity
//
//	O(size³) per turn (dominated by the grid copy), O(n·size³) for
//	Apply/Scramble over n moves.
//
// Usage
//
//	c, _ := cube.New(3)
//	turned, err := rotation.RotateSlice(c, rotation.AxisZ, 2, +1)
//	back, _ := rotation.RotateSlice(turned, rotation.AxisZ, 2, -1)
//	_ = back.Equal(c) // true
package rotation
