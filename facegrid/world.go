package facegrid

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/wormcube/cube"
)

// WorldOffset converts a cubie grid position to a 3D offset from the
// assembly center, for rendering consumers. explode ≥ 0 linearly
// separates cubies from the center: 0 keeps the assembly tight, larger
// values spread it apart. Complexity: O(1).
func WorldOffset(p cube.Position, size int, explode float64) mgl64.Vec3 {
	half := float64(size-1) / 2
	centered := p.Vec().Sub(mgl64.Vec3{half, half, half})
	return centered.Mul(1 + explode)
}

// StickerOffset places a sticker slightly outside its cubie along the
// face normal, so antipodal connection curves and chaos highlights can be
// anchored on the visible surface rather than the cubie center.
func StickerOffset(p cube.Position, d cube.Direction, size int, explode float64) mgl64.Vec3 {
	return WorldOffset(p, size, explode).Add(d.Vec().Mul(0.5))
}
