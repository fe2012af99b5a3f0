package facegrid

import "github.com/katalvlaran/wormcube/cube"

// Value returns the Latin-square value assigned to the face cell at
// position p on the face with normal d: ((row+col) mod size) + 1.
//
// The diagonal formula yields a valid Latin square for every size — each
// row and each column contains 1..size exactly once. The Sudokube win
// condition depends on that property; any replacement formula must
// preserve it. Complexity: O(1).
func Value(d cube.Direction, p cube.Position, size int) int {
	row, col := RowCol(d, p, size)
	return (row+col)%size + 1
}

// ValueAt is the grid-coordinate form of Value for callers that already
// hold (row, col) rather than a cubie position.
func ValueAt(row, col, size int) int {
	return (row+col)%size + 1
}
