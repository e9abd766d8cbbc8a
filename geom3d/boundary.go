package geom3d

import "fmt"

// BoundaryLoops walks the boundary edges of p into ordered, closed vertex
// loops. Returns an error if the boundary edges don't form simple closed
// loops (e.g. a vertex with more than two incident boundary edges) —
// surfaced to callers as DegenerateOutline.
func BoundaryLoops(p *Part) ([][]int, error) {
	edges := BoundaryEdges(p)
	if len(edges) == 0 {
		return nil, nil
	}

	adj := make(map[int][]int)
	for _, e := range edges {
		adj[e.V1] = append(adj[e.V1], e.V2)
		adj[e.V2] = append(adj[e.V2], e.V1)
	}
	for v, ns := range adj {
		if len(ns) != 2 {
			return nil, fmt.Errorf("geom3d: vertex %d has %d boundary edges, boundary is not a simple loop", v, len(ns))
		}
	}

	visited := make(map[int]bool)
	var loops [][]int
	for start := range adj {
		if visited[start] {
			continue
		}
		loop := []int{start}
		visited[start] = true
		prev := -1
		cur := start
		for {
			next := -1
			for _, n := range adj[cur] {
				if n != prev {
					next = n
					break
				}
			}
			if next == -1 || next == start {
				break
			}
			loop = append(loop, next)
			visited[next] = true
			prev, cur = cur, next
		}
		loops = append(loops, loop)
	}
	return loops, nil
}
