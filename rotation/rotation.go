package rotation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/wormcube/cube"
)

// rotationMatrix returns the 90°·dir rotation matrix around the axis.
func rotationMatrix(axis Axis, dir int) mgl64.Mat3 {
	angle := float64(dir) * math.Pi / 2
	switch axis {
	case AxisX:
		return mgl64.Rotate3DX(angle)
	case AxisY:
		return mgl64.Rotate3DY(angle)
	default:
		return mgl64.Rotate3DZ(angle)
	}
}

// RotateSlice applies a 90° turn to the slice of cubies whose axis
// coordinate equals index, in the given direction (+1 or −1), and returns
// the resulting snapshot.
//
// Each cubie in the slice is moved to the cell its center reaches under
// the rotation about the assembly center, and every sticker on it is
// re-keyed under the direction its face normal rotates onto. Sticker
// contents (colors, flip count, home anchors) are carried unchanged.
// Cubies outside the slice are shared by pointer into the result, so
// consumers can detect the unaffected planes by identity.
//
// Returns ErrNilCube, ErrAxis, ErrSliceIndex or ErrDirection on invalid
// input — out-of-range arguments are programming errors and are never
// clamped. Complexity: O(size³) for the grid copy, O(size²) rotation work.
func RotateSlice(c *cube.Cube, axis Axis, index, dir int) (*cube.Cube, error) {
	if c == nil {
		return nil, ErrNilCube
	}
	if axis > AxisZ {
		return nil, fmt.Errorf("%w: %d", ErrAxis, uint8(axis))
	}
	size := c.Size()
	if index < 0 || index >= size {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSliceIndex, index, size)
	}
	if dir != 1 && dir != -1 {
		return nil, fmt.Errorf("%w: got %d", ErrDirection, dir)
	}

	m := rotationMatrix(axis, dir)
	half := float64(size-1) / 2
	center := mgl64.Vec3{half, half, half}

	grid := make([]*cube.Cubie, size*size*size)
	copy(grid, c.Cubies())
	for z := 0; z < size; z++ {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				p := cube.Position{X: x, Y: y, Z: z}
				if p.Component(int(axis)) != index {
					continue
				}
				moved := m.Mul3x1(p.Vec().Sub(center)).Add(center)
				np := cube.Position{
					X: int(math.Round(moved.X())),
					Y: int(math.Round(moved.Y())),
					Z: int(math.Round(moved.Z())),
				}
				src := c.CubieAt(p)
				dst := cube.NewCubie()
				for _, d := range cube.Directions() {
					s := src.Sticker(d)
					if s == nil {
						continue
					}
					nd, ok := cube.DirectionFromVec(m.Mul3x1(d.Vec()))
					if !ok {
						// Unreachable for any 90° turn; surfaced rather than
						// recovered because a lost face normal would corrupt
						// the sticker topology silently.
						return nil, fmt.Errorf("rotation: face normal %v degenerated under %s turn", d, axis)
					}
					dst.Set(nd, s)
				}
				grid[np.X+np.Y*size+np.Z*size*size] = dst
			}
		}
	}
	return cube.Assemble(size, grid)
}

// Apply runs a sequence of moves left to right and returns the final
// snapshot. The input cube is untouched; intermediate snapshots are
// discarded. Fails on the first invalid move.
func Apply(c *cube.Cube, moves ...Move) (*cube.Cube, error) {
	if c == nil {
		return nil, ErrNilCube
	}
	var err error
	for _, mv := range moves {
		c, err = RotateSlice(c, mv.Axis, mv.Index, mv.Dir)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", mv, err)
		}
	}
	return c, nil
}

// Scramble applies n uniformly random slice turns drawn from rng and
// returns the scrambled snapshot together with the move sequence, so the
// caller can replay or invert it. Deterministic under a seeded rng.
//
// Returns ErrNilCube, ErrNilRand or ErrScrambleLength on invalid input.
// Complexity: O(n·size³).
func Scramble(c *cube.Cube, n int, rng *rand.Rand) (*cube.Cube, []Move, error) {
	if c == nil {
		return nil, nil, ErrNilCube
	}
	if rng == nil {
		return nil, nil, ErrNilRand
	}
	if n < 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrScrambleLength, n)
	}
	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		mv := Move{
			Axis:  Axis(rng.IntN(3)),
			Index: rng.IntN(c.Size()),
			Dir:   1 - 2*rng.IntN(2),
		}
		next, err := RotateSlice(c, mv.Axis, mv.Index, mv.Dir)
		if err != nil {
			return nil, nil, err
		}
		c = next
		moves = append(moves, mv)
	}
	return c, moves, nil
}
