// Package manifold implements the topology heart of the WORM-3 engine:
// the antipodal identification of opposite faces, manifold adjacency
// across face boundaries, and the flip operator that couples a sticker
// to its antipodal partner.
//
// What
//
//   - BuildMap: index every sticker by its invariant manifold grid ID,
//     resolving IDs to current locations in O(1).
//   - AntipodalOf: the RP² lookup — same slot index, paired face.
//   - Neighbors: four manifold neighbors per slot; steps off a face edge
//     cross onto the adjacent face instead of wrapping or clamping away.
//   - Flip: toggle a sticker and its partner to their paired color
//     identities and record the visit in both flip counts, on a fresh
//     deep clone.
//   - Graph / Connected: the adjacency graph as plain data plus a BFS
//     reachability check over it.
//   - Cache: caller-owned version-keyed memoization of built maps.
//
// Why
//
//	Identifying antipodal stickers turns the six disconnected face grids
//	into one closed 2-manifold. Chaos propagation, antipodal
//	visualization and the WORM win condition all read topology through
//	this package rather than Euclidean adjacency.
//
// Invariants
//
//   - Antipodal involution: AntipodalOf(AntipodalOf(S)) is S.
//   - Flip locality: exactly two stickers change per flip (or zero on a
//     stickerless slot); only CurrentColor and FlipCount change.
//   - Flip toggling: two flips at one slot restore CurrentColor and
//     leave both flip counts incremented by 2.
//   - Maps go stale: rebuild after every rotation or flip before the
//     next independent lookup. Cache automates this via snapshot
//     versions.
//
// Error semantics
//
//	A missing antipodal partner is a topology invariant violation and is
//	surfaced immediately as ErrAntipodeMissing — never recovered, since
//	continuing would corrupt the topology silently. A flip at a
//	stickerless slot is a benign no-op.
//
// Complexity
//
//	BuildMap O(size³); AntipodalOf, Neighbors O(1); Flip O(size³) for
//	the clone; Graph, Connected O(size³).
//
// Usage
//
//	c, _ := cube.New(3)
//	m := manifold.BuildMap(c)
//	s := c.StickerAt(cube.Position{X: 2, Y: 2, Z: 2}, cube.PZ)
//	twin, _ := manifold.AntipodalOf(m, s, 3) // (0,0,0) −Z
//	c2, _ := manifold.Flip(c, cube.Position{X: 2, Y: 2, Z: 2}, cube.PZ, m)
//	_ = twin
//	_ = c2
package manifold
