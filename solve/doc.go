// Package solve evaluates the four WORM-3 win conditions as pure,
// read-only projections of a cube snapshot.
//
// What
//
//   - Classic: every sticker shows the color of the face it currently
//     sits on.
//   - Sudokube: every face is a valid Latin square of home-derived
//     values placed at current positions.
//   - Ultimate: Classic and Sudokube at once.
//   - Worm: Classic plus full manifold traversal — every sticker has
//     been flipped at least once, now or ever.
//   - Evaluate: all four flags in one Conditions value, the struct the
//     presentation layer subscribes to.
//
// Why
//
//	Rotation and flip disturb different predicates: rotation moves
//	stickers onto foreign faces (breaking Classic) without touching
//	colors, while flip toggles colors in place. The predicates read both
//	effects from the same snapshot without side effects, so consumers
//	may call them as often as they like.
//
// Complexity
//
//	O(size³) per predicate; Evaluate shares the traversals.
//
// Usage
//
//	c, _ := cube.New(3)
//	solve.Evaluate(c) // {Classic:true Sudokube:true Ultimate:true Worm:false}
package solve
