// Package facegrid provides the pure coordinate layer of the WORM-3
// engine: per-face 2D grid mapping, manifold grid IDs, Latin-square face
// values, and world offsets for rendering consumers.
//
// What
//
//   - RowCol / Index: deterministic, face-specific linear maps from a
//     cubie's 3D coordinate to a canonical (row, col) slot on its face.
//   - GridID / StickerID / FormatID: the "F{face}-{index}" labels that
//     join a sticker with its antipodal partner.
//   - Value / ValueAt: the ((row+col) mod size)+1 Latin-square assignment
//     used by the Sudokube win condition.
//   - WorldOffset / StickerOffset: grid → 3D offsets with an explosion
//     factor, via mgl64.
//
// Why
//
//	Every topology computation above this package (antipodal lookup,
//	Sudokube validation) reduces to these maps. The face formulas are
//	chosen so the point reflection through the cube center lands on the
//	same (row, col) of the opposite face, which makes antipodal pairing a
//	plain index-equality join.
//
// Determinism
//
//	All functions are pure and total over in-range inputs; there are no
//	error cases and no state.
//
// Complexity
//
//	O(1) per call throughout.
//
// Usage
//
//	row, col := facegrid.RowCol(cube.PZ, cube.Position{X: 2, Y: 2, Z: 2}, 3)
//	id := facegrid.GridID(cube.PZ, cube.Position{X: 2, Y: 2, Z: 2}, 3) // "F1-03"
package facegrid
