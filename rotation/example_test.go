// File: rotation/example_test.go
package rotation_test

import (
	"fmt"

	"github.com/katalvlaran/wormcube/cube"
	"github.com/katalvlaran/wormcube/rotation"
)

////////////////////////////////////////////////////////////////////////////////
// Example: RotateSlice
////////////////////////////////////////////////////////////////////////////////

// ExampleRotateSlice demonstrates a front-slice turn and its inverse:
// the turn re-keys side stickers of the slice (a +X sticker reports +Y
// after a 90° turn around Z), and the inverse restores content equality.
func ExampleRotateSlice() {
	c, _ := cube.New(3)

	turned, _ := rotation.RotateSlice(c, rotation.AxisZ, 2, +1)
	// The right-face sticker of the front slice's (2,2,2) corner moved
	// with its cubie and now faces +Y at (0,2,2).
	s := turned.StickerAt(cube.Position{X: 0, Y: 2, Z: 2}, cube.PY)
	fmt.Println("home:", s.HomePos, s.HomeDir, "color:", s.CurrentColor)

	back, _ := rotation.RotateSlice(turned, rotation.AxisZ, 2, -1)
	fmt.Println("restored:", back.Equal(c))

	// Output:
	// home: (2,2,2) +X color: 5
	// restored: true
}
