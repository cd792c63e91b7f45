package mesh

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// ParentKind discriminates the two ways a face of a contracted layer maps
// back to the layer it was built from.
type ParentKind uint8

const (
	// ParentFace marks a face that survived contraction unchanged; Ref is
	// its face index in the finer layer.
	ParentFace ParentKind = iota
	// ParentVertex marks a fill-in triangle produced by removing a
	// vertex; Ref is that vertex's index in the finer layer.
	ParentVertex
)

// ParentPointer maps one face of a contracted layer back to the finer
// layer it was derived from.
type ParentPointer struct {
	Kind ParentKind
	Ref  int
}

// MaximalIndependentSet greedily selects a maximal set of mutually
// non-adjacent vertices from candidates, preferring low degree. Ties are
// broken by vertex index, so the selection is deterministic.
func (m *Mesh) MaximalIndependentSet(candidates []int) []int {
	order := append([]int(nil), candidates...)
	sort.SliceStable(order, func(i, j int) bool {
		di, dj := m.Degree(order[i]), m.Degree(order[j])
		if di != dj {
			return di < dj
		}
		return order[i] < order[j]
	})

	blocked := make(map[int]struct{})
	var independent []int
	for _, v := range order {
		if _, ok := blocked[v]; ok {
			continue
		}
		independent = append(independent, v)
		blocked[v] = struct{}{}
		for _, n := range m.neighbors[v] {
			blocked[n] = struct{}{}
		}
	}
	return independent
}

// NextLayer contracts the mesh by removing the given vertices and
// fan-triangulating each removal's ring. It returns the contracted mesh
// together with one parent pointer per new face.
//
// Surviving faces are recorded before fill-in triangles and never
// overwritten by them, so a fill-in triangle that coincides with a
// surviving face keeps its ParentFace pointer. Surviving faces are
// visited by ascending face index and removed vertices by ascending
// vertex index, which fixes the face order of the result.
func (m *Mesh) NextLayer(remove []int) (*Mesh, []ParentPointer) {
	removed := make(map[int]struct{}, len(remove))
	for _, v := range remove {
		removed[v] = struct{}{}
	}

	type entry struct {
		face   Face
		parent ParentPointer
	}
	var entries []entry
	seen := make(map[Face]struct{})

	for fi, face := range m.faces {
		if _, ok := removed[face[0]]; ok {
			continue
		}
		if _, ok := removed[face[1]]; ok {
			continue
		}
		if _, ok := removed[face[2]]; ok {
			continue
		}
		entries = append(entries, entry{face, ParentPointer{ParentFace, fi}})
		seen[face] = struct{}{}
	}

	removeOrder := make([]int, 0, len(removed))
	for v := range removed {
		removeOrder = append(removeOrder, v)
	}
	sort.Ints(removeOrder)
	for _, v := range removeOrder {
		ring := m.OrderedRing(v)
		if len(ring) < 3 {
			continue
		}
		anchor := ring[0]
		for i := 1; i < len(ring)-1; i++ {
			tri := canonicalFace(anchor, ring[i], ring[i+1])
			if _, ok := seen[tri]; ok {
				continue
			}
			seen[tri] = struct{}{}
			entries = append(entries, entry{tri, ParentPointer{ParentVertex, v}})
		}
	}

	// Reindex the survivors contiguously and rewrite the faces.
	indexMap := make([]int, len(m.vertices))
	newVertices := make([]mgl64.Vec3, 0, len(m.vertices)-len(removed))
	for idx, p := range m.vertices {
		if _, ok := removed[idx]; ok {
			indexMap[idx] = -1
			continue
		}
		indexMap[idx] = len(newVertices)
		newVertices = append(newVertices, p)
	}

	newFaces := make([]Face, 0, len(entries))
	parents := make([]ParentPointer, 0, len(entries))
	for _, e := range entries {
		a, b, c := indexMap[e.face[0]], indexMap[e.face[1]], indexMap[e.face[2]]
		if a < 0 || b < 0 || c < 0 || a == b || b == c || a == c {
			continue
		}
		newFaces = append(newFaces, canonicalFace(a, b, c))
		parents = append(parents, e.parent)
	}

	return newCanonical(newVertices, newFaces), parents
}
