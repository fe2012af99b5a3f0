package manifold

import "github.com/katalvlaran/wormcube/cube"

// Cache pairs a cube snapshot version with the manifold map built from
// it, so callers that check win conditions or draw antipodal curves every
// tick don't rebuild an unchanged map.
//
// The cache is caller-owned state, never package-global: each consumer
// holds its own Cache value. The zero value is ready to use.
type Cache struct {
	version uint64
	m       Map
}

// Map returns the manifold map for the given cube, rebuilding it only
// when the snapshot version differs from the cached one. A map obtained
// here is valid exactly as long as the cube it was requested for; using
// it against a newer snapshot is a caller error.
// Complexity: O(1) on a hit, O(size³) on a rebuild.
func (ca *Cache) Map(c *cube.Cube) Map {
	if c == nil {
		return nil
	}
	if ca.m == nil || ca.version != c.Version() {
		ca.m = BuildMap(c)
		ca.version = c.Version()
	}
	return ca.m
}

// Invalidate drops the cached map, forcing a rebuild on the next call.
func (ca *Cache) Invalidate() {
	ca.m = nil
	ca.version = 0
}
