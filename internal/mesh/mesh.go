// Package mesh implements the triangulated convex mesh the hierarchy is
// built from: vertex and face storage, derived adjacency tables, the
// vertex ring walk and the layer-contraction step.
package mesh

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrInsufficientPoints is returned by FromConvexPolygon for fewer
	// than three input points.
	ErrInsufficientPoints = errors.New("mesh: a convex polygon needs at least three points")

	// ErrNonTriangularFace is returned when a face does not have exactly
	// three vertex indices.
	ErrNonTriangularFace = errors.New("mesh: faces must be triangles")

	// ErrDegenerateFace is returned when a face repeats a vertex index.
	ErrDegenerateFace = errors.New("mesh: degenerate face")
)

// Face is an unordered vertex triple stored with indices sorted ascending,
// so two faces over the same vertices compare equal.
type Face [3]int

// canonicalFace sorts a validated triple into canonical order.
func canonicalFace(a, b, c int) Face {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Face{a, b, c}
}

// Mesh is a triangulated convex polyhedron (or planar polygonal mesh)
// with adjacency tables derived from its face list. Vertices are stored
// in 3D; planar inputs carry Z=0 and queries project to X,Y.
//
// A Mesh is immutable after New returns.
type Mesh struct {
	vertices []mgl64.Vec3
	faces    []Face

	neighbors     [][]int // per vertex, sorted neighbor indices
	incidentFaces [][]int // per vertex, sorted indices of faces containing it
}

// New builds a mesh from vertices and faces. Each face must hold exactly
// three distinct in-range vertex indices; faces are canonicalized by
// sorting their indices.
func New(vertices []mgl64.Vec3, faces [][]int) (*Mesh, error) {
	m := &Mesh{
		vertices: append([]mgl64.Vec3(nil), vertices...),
		faces:    make([]Face, 0, len(faces)),
	}
	for _, f := range faces {
		if len(f) != 3 {
			return nil, fmt.Errorf("%w: got %d indices", ErrNonTriangularFace, len(f))
		}
		for _, v := range f {
			if v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("mesh: face index %d out of range [0,%d)", v, len(vertices))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return nil, fmt.Errorf("%w: (%d,%d,%d)", ErrDegenerateFace, f[0], f[1], f[2])
		}
		m.faces = append(m.faces, canonicalFace(f[0], f[1], f[2]))
	}
	m.buildTopology()
	return m, nil
}

// newCanonical skips per-face validation for faces already in canonical
// form, as produced by NextLayer's reindexing.
func newCanonical(vertices []mgl64.Vec3, faces []Face) *Mesh {
	m := &Mesh{vertices: vertices, faces: faces}
	m.buildTopology()
	return m
}

func (m *Mesh) buildTopology() {
	neighborSets := make([]map[int]struct{}, len(m.vertices))
	for i := range neighborSets {
		neighborSets[i] = make(map[int]struct{})
	}
	m.incidentFaces = make([][]int, len(m.vertices))
	for fi, f := range m.faces {
		a, b, c := f[0], f[1], f[2]
		neighborSets[a][b] = struct{}{}
		neighborSets[b][a] = struct{}{}
		neighborSets[b][c] = struct{}{}
		neighborSets[c][b] = struct{}{}
		neighborSets[c][a] = struct{}{}
		neighborSets[a][c] = struct{}{}
		for _, v := range f {
			m.incidentFaces[v] = append(m.incidentFaces[v], fi)
		}
	}
	m.neighbors = make([][]int, len(m.vertices))
	for v, set := range neighborSets {
		ns := make([]int, 0, len(set))
		for u := range set {
			ns = append(ns, u)
		}
		sort.Ints(ns)
		m.neighbors[v] = ns
	}
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.vertices) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Vertex returns the position of vertex v.
func (m *Mesh) Vertex(v int) mgl64.Vec3 { return m.vertices[v] }

// Face returns face f as its canonical vertex triple.
func (m *Mesh) Face(f int) Face { return m.faces[f] }

// Degree returns the number of neighbors of vertex v.
func (m *Mesh) Degree(v int) int { return len(m.neighbors[v]) }

// Neighbors returns the neighbor indices of v in ascending order.
// The returned slice is shared; callers must not modify it.
func (m *Mesh) Neighbors(v int) []int { return m.neighbors[v] }

// IncidentFaces returns the indices of faces containing v in ascending
// order. The returned slice is shared; callers must not modify it.
func (m *Mesh) IncidentFaces(v int) []int { return m.incidentFaces[v] }

// FaceVertices returns the three vertex positions of face f in canonical
// index order.
func (m *Mesh) FaceVertices(f int) [3]mgl64.Vec3 {
	face := m.faces[f]
	return [3]mgl64.Vec3{m.vertices[face[0]], m.vertices[face[1]], m.vertices[face[2]]}
}

// FacePolygon returns face f projected to the XY plane.
func (m *Mesh) FacePolygon(f int) []mgl64.Vec2 {
	face := m.faces[f]
	return []mgl64.Vec2{
		m.vertices[face[0]].Vec2(),
		m.vertices[face[1]].Vec2(),
		m.vertices[face[2]].Vec2(),
	}
}
