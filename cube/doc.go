// Package cube holds the single source of truth of the WORM-3 engine:
// the size×size×size grid of cubies and their stickers.
//
// What
//
//   - Direction: the six face normals {PX, NX, PY, NY, PZ, NZ}, with O(1)
//     Opposite(), unit vectors, and the fixed construction color per face
//     (+Z=1, −X=2, +Y=3, −Z=4, +X=5, −Y=6).
//   - Color: face identity in [1,6] with the antipodal involution
//     {1↔4, 2↔5, 3↔6}.
//   - Sticker: original/current color, cumulative flip count, and the
//     immutable home position+direction that anchor all topology math.
//   - Cubie: up to six stickers in a fixed-size array indexed by
//     Direction; interior-facing slots are explicitly nil.
//   - Cube: the assembled snapshot with New, Clone, Assemble, and
//     deterministic read-only traversal.
//
// Why
//
//	Every higher engine layer (rotation, manifold, chaos, solve) works on
//	Cube snapshots. Mutation happens only by producing a new snapshot, so
//	consumers can hold references without any locking discipline.
//
// Invariants
//
//   - HomePos/HomeDir/OriginalColor never change after New.
//   - CurrentColor changes only through the manifold flip operator.
//   - FlipCount is monotonically non-decreasing.
//   - Clone yields fully independent storage; Equal ignores versions.
//
// Complexity
//
//   - New, Clone, Equal, EachSticker: O(size³)
//   - CubieAt, StickerAt: O(1)
//
// Usage
//
//	c, err := cube.New(3)
//	if err != nil { /* ErrBadSize */ }
//	s := c.StickerAt(cube.Position{X: 2, Y: 2, Z: 2}, cube.PZ)
//	fmt.Println(s.CurrentColor) // 1
package cube
