package facegrid

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/wormcube/cube"
)

// RowCol maps a cubie position on the face with normal d to canonical 2D
// grid coordinates (row, col), each in [0,size).
//
// The six formulas are fixed so that the point reflection through the
// cube center (the antipodal map) sends a cell of one face to the *same*
// (row, col) on the opposite face. That property is what lets the
// manifold engine pair antipodal stickers by index equality alone. On the
// three positive faces, (0,0) is the top-left corner as seen head-on.
//
// All inputs are in-range by construction; there are no error cases.
// Complexity: O(1).
func RowCol(d cube.Direction, p cube.Position, size int) (row, col int) {
	n := size - 1
	switch d {
	case cube.PZ:
		return n - p.Y, p.X
	case cube.NZ:
		return p.Y, n - p.X
	case cube.PX:
		return n - p.Y, n - p.Z
	case cube.NX:
		return p.Y, p.Z
	case cube.PY:
		return p.Z, p.X
	default: // cube.NY
		return n - p.Z, n - p.X
	}
}

// Index returns the 1-based row-major slot number of a face cell:
// row·size + col + 1, in [1, size²].
func Index(d cube.Direction, p cube.Position, size int) int {
	row, col := RowCol(d, p, size)
	return row*size + col + 1
}

// idWidth returns the zero-padding width for grid IDs: the decimal width
// of the largest slot number size², never less than 2.
func idWidth(size int) int {
	if w := len(strconv.Itoa(size * size)); w > 2 {
		return w
	}
	return 2
}

// FormatID renders a manifold grid ID from its parts: "F{face}-{index}"
// with the index zero-padded to the width of size².
func FormatID(face cube.Color, index, size int) string {
	return fmt.Sprintf("F%d-%0*d", face, idWidth(size), index)
}

// GridID returns the manifold grid ID of the face cell at position p on
// the face with normal d: the canonical face+slot label used to join a
// sticker with its antipodal partner.
func GridID(d cube.Direction, p cube.Position, size int) string {
	return FormatID(d.Color(), Index(d, p, size), size)
}

// StickerID returns the sticker's own manifold grid ID, computed from its
// immutable home anchors. The ID is an invariant label: it never changes,
// no matter how many rotations move the owning cubie.
func StickerID(s *cube.Sticker, size int) string {
	return GridID(s.HomeDir, s.HomePos, size)
}
