// Package manifold defines core types and sentinel errors for the
// antipodal/manifold engine.
package manifold

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wormcube/cube"
)

// Sentinel errors for manifold operations.
var (
	// ErrNilCube is returned if a nil cube pointer is passed.
	ErrNilCube = errors.New("manifold: cube is nil")
	// ErrNilMap is returned if a nil manifold map is passed where one is
	// required.
	ErrNilMap = errors.New("manifold: manifold map is nil")
	// ErrNilSticker is returned when an antipodal lookup is requested for
	// a nil sticker.
	ErrNilSticker = errors.New("manifold: sticker is nil")
	// ErrAntipodeMissing signals a topology invariant violation: a sticker
	// whose antipodal partner is absent from the map. A correctly built
	// cube can never produce it; it is surfaced immediately rather than
	// recovered, since continuing would corrupt the topology silently.
	ErrAntipodeMissing = errors.New("manifold: antipodal partner missing from map")
)

// Site identifies a sticker slot by its current grid position and the
// face direction it is stored under.
type Site struct {
	Pos cube.Position
	Dir cube.Direction
}

// String implements fmt.Stringer.
func (s Site) String() string {
	return fmt.Sprintf("%s%s", s.Pos, s.Dir)
}

// Location resolves a manifold grid ID to the current whereabouts of its
// sticker: the slot it occupies right now plus the sticker object itself.
// Locations are snapshots; they go stale as soon as the cube they were
// built from is superseded.
type Location struct {
	Site
	Sticker *cube.Sticker
}

// Map indexes every sticker of one cube snapshot by its manifold grid ID.
// It must be rebuilt after every rotation or flip: the IDs are invariant
// labels, but the Location values reference current positions and
// specific sticker instances.
type Map map[string]Location
