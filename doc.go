// Package wormcube is the game-logic engine for WORM-3, a Rubik's-style
// puzzle whose opposite faces are glued together by the antipodal map of
// the real projective plane — flip a sticker and its twin on the far
// side of the cube flips with it.
//
// 🚀 What is wormcube?
//
//	A pure, synchronous, copy-on-write engine that brings together:
//		• Cube state: cubies, stickers, flip tallies, home anchors
//		• Face grids: canonical row/col mapping, manifold grid IDs, Latin values
//		• Rotation: 90° slice turns with sticker-direction remapping
//		• Manifold: antipodal lookup, cross-face adjacency, the flip operator
//		• Chaos: a decaying probabilistic cascade over manifold neighbors
//		• Solve: classic, Sudokube, ultimate and WORM win predicates
//
// ✨ Why choose wormcube?
//
//   - Snapshot-in, snapshot-out – every operation returns a new cube; no
//     shared mutable state, no locking discipline for callers
//   - Topology you can trust – antipodal involution, rotation
//     reversibility and flip locality are all covered by property tests
//   - Pure Go core – rendering, persistence and input live elsewhere;
//     the engine only computes
//
// Everything is organized under six subpackages:
//
//	cube/     — Cube, Cubie, Sticker, Direction & Color primitives
//	facegrid/ — face coordinates, grid IDs, Latin values, world offsets
//	rotation/ — slice turns, move sequences, scrambling
//	manifold/ — antipodal map, neighbor graph, the flip operator
//	chaos/    — cascade engine + intensity tiers (TOML-configurable)
//	solve/    — the four win-condition predicates
//
// A quick taste:
//
//	c, _ := cube.New(3)
//	m := manifold.BuildMap(c)
//	c2, _ := manifold.Flip(c, cube.Position{X: 2, Y: 2, Z: 2}, cube.PZ, m)
//	fmt.Println(solve.Evaluate(c2).Classic) // false: two stickers toggled
//
//	go get github.com/katalvlaran/wormcube
package wormcube
