package mesh

import "sort"

// OrderedRing returns the neighbors of v in the cyclic order they border
// the hole left if v were removed. The walk starts at the lowest-indexed
// neighbor and always steps to the lowest-indexed unvisited candidate, so
// the result is deterministic. If the link of v is not a simple cycle the
// walk stops where it breaks and the remaining neighbors are appended in
// index order.
func (m *Mesh) OrderedRing(v int) []int {
	neighbors := m.neighbors[v]
	if len(neighbors) < 3 {
		return append([]int(nil), neighbors...)
	}

	// Adjacency restricted to the link: two neighbors of v are connected
	// iff they share a face with v.
	adjacency := make(map[int]map[int]struct{}, len(neighbors))
	for _, n := range neighbors {
		adjacency[n] = make(map[int]struct{})
	}
	for _, fi := range m.incidentFaces[v] {
		face := m.faces[fi]
		var others [2]int
		k := 0
		for _, u := range face {
			if u != v {
				if k < 2 {
					others[k] = u
				}
				k++
			}
		}
		if k != 2 {
			continue
		}
		a, b := others[0], others[1]
		adjacency[a][b] = struct{}{}
		adjacency[b][a] = struct{}{}
	}

	start := neighbors[0]
	ordered := make([]int, 0, len(neighbors))
	visited := make(map[int]struct{}, len(neighbors))
	current := start
	for range neighbors {
		ordered = append(ordered, current)
		visited[current] = struct{}{}
		candidates := make([]int, 0, len(adjacency[current]))
		for u := range adjacency[current] {
			if _, ok := visited[u]; !ok {
				candidates = append(candidates, u)
			}
		}
		if len(candidates) == 0 {
			break
		}
		sort.Ints(candidates)
		current = candidates[0]
	}

	if len(ordered) != len(neighbors) {
		seen := make(map[int]struct{}, len(ordered))
		for _, u := range ordered {
			seen[u] = struct{}{}
		}
		for _, u := range neighbors {
			if _, ok := seen[u]; !ok {
				ordered = append(ordered, u)
			}
		}
	}
	return ordered
}
