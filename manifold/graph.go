package manifold

import "github.com/katalvlaran/wormcube/cube"

// Graph materializes the whole manifold-adjacency graph of a cube as
// plain data: one entry per sticker slot, each with its four manifold
// neighbors. It is a derived, rebuildable structure intended for
// visualization consumers (chaos overlays, antipodal connection curves);
// mutating it cannot affect engine state. Complexity: O(size³) to visit
// every slot, O(size²) entries.
func Graph(c *cube.Cube) map[Site][]Site {
	if c == nil {
		return nil
	}
	size := c.Size()
	adj := make(map[Site][]Site, 6*size*size)
	c.EachSticker(func(p cube.Position, d cube.Direction, _ *cube.Sticker) {
		adj[Site{Pos: p, Dir: d}] = Neighbors(p, d, size)
	})
	return adj
}

// Connected reports whether every sticker slot of the cube is reachable
// from every other through manifold adjacency — i.e. whether the six
// faces really form one connected 2-manifold. A correctly built cube is
// always connected; the check exists for consumers that filter or
// post-process the graph.
//
// Implemented as a breadth-first walk from an arbitrary slot, visiting
// each slot at most once. Complexity: O(V) with V = 6·size² slots.
func Connected(c *cube.Cube) bool {
	adj := Graph(c)
	if len(adj) == 0 {
		return false
	}

	// Pick any slot as the root.
	var root Site
	for s := range adj {
		root = s
		break
	}

	visited := make(map[Site]bool, len(adj))
	queue := make([]Site, 0, len(adj))
	visited[root] = true
	queue = append(queue, root)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj[cur] {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}
	return len(visited) == len(adj)
}
