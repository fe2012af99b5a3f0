package solve

import (
	"github.com/katalvlaran/wormcube/cube"
	"github.com/katalvlaran/wormcube/facegrid"
)

// Conditions is the win-condition snapshot exposed to consumers: one flag
// per game mode, evaluated against a single cube state.
type Conditions struct {
	Classic  bool
	Sudokube bool
	Ultimate bool
	Worm     bool
}

// Evaluate computes all four win conditions in one pass over the
// snapshot. Complexity: O(size³).
func Evaluate(c *cube.Cube) Conditions {
	classic := Classic(c)
	sudokube := Sudokube(c)
	return Conditions{
		Classic:  classic,
		Sudokube: sudokube,
		Ultimate: classic && sudokube,
		Worm:     classic && allFlipped(c),
	}
}

// Classic reports whether every sticker currently shows the color of the
// face direction it is presently stored under. Rotations disturb it by
// moving stickers onto foreign faces; flips disturb it by toggling
// colors in place. A nil cube is never solved. Complexity: O(size³).
func Classic(c *cube.Cube) bool {
	if c == nil {
		return false
	}
	ok := true
	c.EachSticker(func(_ cube.Position, d cube.Direction, s *cube.Sticker) {
		if s.CurrentColor != d.Color() {
			ok = false
		}
	})
	return ok
}

// Sudokube reports whether every face currently forms a valid Latin
// square: for each of the six face directions, each sticker contributes
// its home-derived value at its current (row, col), and no value may
// repeat within a row or column. Complexity: O(size³).
func Sudokube(c *cube.Cube) bool {
	if c == nil {
		return false
	}
	size := c.Size()
	for _, d := range cube.Directions() {
		if !latinFace(c, d, size) {
			return false
		}
	}
	return true
}

// latinFace builds the current value grid of one face and validates the
// Latin-square constraints: all values in [1,size], no repeats in any
// row, no repeats in any column.
func latinFace(c *cube.Cube, d cube.Direction, size int) bool {
	grid := make([]int, size*size)
	c.EachSticker(func(p cube.Position, sd cube.Direction, s *cube.Sticker) {
		if sd != d {
			return
		}
		row, col := facegrid.RowCol(d, p, size)
		grid[row*size+col] = facegrid.Value(s.HomeDir, s.HomePos, size)
	})

	for i := 0; i < size; i++ {
		rowSeen := make([]bool, size+1)
		colSeen := make([]bool, size+1)
		for j := 0; j < size; j++ {
			rv := grid[i*size+j]
			cv := grid[j*size+i]
			if rv < 1 || rv > size || rowSeen[rv] {
				return false
			}
			if cv < 1 || cv > size || colSeen[cv] {
				return false
			}
			rowSeen[rv] = true
			colSeen[cv] = true
		}
	}
	return true
}

// Ultimate reports whether the cube satisfies Classic and Sudokube
// simultaneously.
func Ultimate(c *cube.Cube) bool {
	return Classic(c) && Sudokube(c)
}

// Worm reports the WORM victory: the cube is classic-solved and every
// sticker has traversed the manifold at least once (FlipCount > 0,
// currently or historically — the tally never resets). A freshly built
// cube is therefore classic-solved but never WORM-solved.
func Worm(c *cube.Cube) bool {
	return Classic(c) && allFlipped(c)
}

// allFlipped reports whether every sticker carries a non-zero flip tally.
func allFlipped(c *cube.Cube) bool {
	if c == nil {
		return false
	}
	ok := true
	c.EachSticker(func(_ cube.Position, _ cube.Direction, s *cube.Sticker) {
		if s.FlipCount == 0 {
			ok = false
		}
	})
	return ok
}
