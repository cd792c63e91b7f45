package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePoints() []mgl64.Vec2 {
	return []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// octahedron returns the standard 6-vertex, 8-face octahedron.
func octahedron(t *testing.T) *Mesh {
	t.Helper()
	vertices := []mgl64.Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	faces := [][]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	m, err := New(vertices, faces)
	require.NoError(t, err)
	return m
}

func TestNewValidation(t *testing.T) {
	vertices := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	_, err := New(vertices, [][]int{{0, 1}})
	assert.ErrorIs(t, err, ErrNonTriangularFace)

	_, err = New(vertices, [][]int{{0, 1, 2, 0}})
	assert.ErrorIs(t, err, ErrNonTriangularFace)

	_, err = New(vertices, [][]int{{0, 1, 1}})
	assert.ErrorIs(t, err, ErrDegenerateFace)

	_, err = New(vertices, [][]int{{0, 1, 3}})
	assert.Error(t, err)

	m, err := New(vertices, [][]int{{2, 0, 1}})
	require.NoError(t, err)
	assert.Equal(t, Face{0, 1, 2}, m.Face(0), "faces are canonicalized sorted")
}

func TestAdjacency(t *testing.T) {
	m := octahedron(t)

	assert.Equal(t, 6, m.NumVertices())
	assert.Equal(t, 8, m.NumFaces())

	// Octahedron is 4-regular; opposite vertices are not adjacent.
	for v := 0; v < 6; v++ {
		assert.Equal(t, 4, m.Degree(v), "vertex %d", v)
	}
	assert.Equal(t, []int{2, 3, 4, 5}, m.Neighbors(0))
	assert.Equal(t, []int{2, 3, 4, 5}, m.Neighbors(1))
	assert.NotContains(t, m.Neighbors(0), 1)

	// Each vertex sits on exactly four faces.
	for v := 0; v < 6; v++ {
		assert.Len(t, m.IncidentFaces(v), 4, "vertex %d", v)
	}
	for _, fi := range m.IncidentFaces(4) {
		face := m.Face(fi)
		assert.Contains(t, face[:], 4)
	}
}

func TestFaceVertices(t *testing.T) {
	m := octahedron(t)
	face := m.Face(0) // canonical (0,2,4)
	assert.Equal(t, Face{0, 2, 4}, face)

	vs := m.FaceVertices(0)
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, vs[0])
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, vs[1])
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, vs[2])

	poly := m.FacePolygon(0)
	assert.Equal(t, []mgl64.Vec2{{1, 0}, {0, 1}, {0, 0}}, poly)
}

func TestOrderedRing(t *testing.T) {
	m := octahedron(t)

	// The link of vertex 0 is the square 2-4-3-5; starting at the
	// lowest neighbor and walking lowest-first gives 2,4,3,5.
	assert.Equal(t, []int{2, 4, 3, 5}, m.OrderedRing(0))
	assert.Equal(t, []int{2, 4, 3, 5}, m.OrderedRing(1))
}

func TestOrderedRingSmall(t *testing.T) {
	// A single triangle: every vertex has just two neighbors, returned
	// in index order without a walk.
	m, err := New([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][]int{{0, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, m.OrderedRing(0))
}

func TestMaximalIndependentSet(t *testing.T) {
	m := octahedron(t)

	got := m.MaximalIndependentSet([]int{0, 1, 2, 3, 4, 5})
	// All degrees equal, so ties resolve by index: 0 first, blocking
	// 2..5, leaving only the antipode 1.
	assert.Equal(t, []int{0, 1}, got)

	// Candidate restriction is honored.
	got = m.MaximalIndependentSet([]int{2, 4})
	assert.Equal(t, []int{2}, got)

	assert.Empty(t, m.MaximalIndependentSet(nil))
}

func TestMaximalIndependentSetPrefersLowDegree(t *testing.T) {
	// Fan over a square: vertex 0 is the hub with degree 3.
	m, err := FromConvexPolygon(squarePoints())
	require.NoError(t, err)

	got := m.MaximalIndependentSet([]int{0, 1, 2, 3})
	// Degrees: 0->3, 1->2, 2->3, 3->2. Low degree first: 1 (blocks
	// 0 and 2), then 3 is adjacent to both picks' complement... 3's
	// neighbors are 0 and 2, neither selected, so 3 joins.
	assert.Equal(t, []int{1, 3}, got)
}

func TestNextLayerOctahedron(t *testing.T) {
	m := octahedron(t)

	next, parents := m.NextLayer([]int{0, 1})
	assert.Equal(t, 4, next.NumVertices())
	require.Equal(t, next.NumFaces(), len(parents))

	// Removing both apexes leaves the equatorial square, fanned into
	// two triangles by the first removal; the second removal's fill-in
	// duplicates them and is dropped by the merge rule.
	assert.Equal(t, 2, next.NumFaces())
	for _, p := range parents {
		assert.Equal(t, ParentVertex, p.Kind)
		assert.Equal(t, 0, p.Ref)
	}
}

func TestNextLayerSurvivingFaceWins(t *testing.T) {
	m := octahedron(t)

	// Removing a single vertex keeps the four faces away from it.
	next, parents := m.NextLayer([]int{4})
	assert.Equal(t, 5, next.NumVertices())
	require.Equal(t, next.NumFaces(), len(parents))

	var faceRefs, vertexRefs int
	for _, p := range parents {
		switch p.Kind {
		case ParentFace:
			faceRefs++
			assert.Less(t, p.Ref, m.NumFaces())
		case ParentVertex:
			vertexRefs++
			assert.Equal(t, 4, p.Ref)
		}
	}
	assert.Equal(t, 4, faceRefs, "the four faces not touching vertex 4 survive")
	assert.Equal(t, 2, vertexRefs, "the ring of vertex 4 fans into two triangles")

	// Surviving faces come first, in ascending original face order.
	for i := 0; i < faceRefs; i++ {
		assert.Equal(t, ParentFace, parents[i].Kind)
		if i > 0 {
			assert.Greater(t, parents[i].Ref, parents[i-1].Ref)
		}
	}
}

func TestNextLayerDeterminism(t *testing.T) {
	m := octahedron(t)

	next1, parents1 := m.NextLayer([]int{0, 1})
	next2, parents2 := m.NextLayer([]int{0, 1})

	assert.Equal(t, next1.faces, next2.faces)
	assert.Equal(t, parents1, parents2)
	assert.Equal(t, next1.vertices, next2.vertices)
}

func TestFromConvexPolygon(t *testing.T) {
	m, err := FromConvexPolygon(squarePoints())
	require.NoError(t, err)
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, Face{0, 1, 2}, m.Face(0))
	assert.Equal(t, Face{0, 2, 3}, m.Face(1))
	assert.Equal(t, mgl64.Vec3{1, 1, 0}, m.Vertex(2), "planar points get Z=0")
}

func TestFromConvexPolygonTooFew(t *testing.T) {
	_, err := FromConvexPolygon([]mgl64.Vec2{{0, 0}, {1, 0}})
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = FromConvexPolygon(nil)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestFromConvexPolygonHexagon(t *testing.T) {
	hex := []mgl64.Vec2{{2, 0}, {1, 2}, {-1, 2}, {-2, 0}, {-1, -2}, {1, -2}}
	m, err := FromConvexPolygon(hex)
	require.NoError(t, err)
	assert.Equal(t, 6, m.NumVertices())
	assert.Equal(t, 4, m.NumFaces())
	// Hub vertex 0 touches every fan triangle.
	assert.Len(t, m.IncidentFaces(0), 4)
	assert.Equal(t, 5, m.Degree(0))
}
