package hierarchy

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/mesh"
)

func octahedron(t *testing.T) *mesh.Mesh {
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
	m, err := mesh.New(vertices, faces)
	require.NoError(t, err)
	return m
}

func unitSquareMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.FromConvexPolygon([]mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)
	return m
}

func regularNGon(t *testing.T, n int) *mesh.Mesh {
	t.Helper()
	points := nGonPoints(n)
	m, err := mesh.FromConvexPolygon(points)
	require.NoError(t, err)
	return m
}

func TestBuildOctahedron(t *testing.T) {
	m := octahedron(t)
	h, err := Build(m)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, h.Height(), 1)
	assert.Same(t, m, h.Base(), "base level is the input mesh")
	assert.LessOrEqual(t, h.Apex().NumVertices(), 4)

	// Both apexes are removed in one round, leaving the equatorial
	// square fanned into two triangles.
	require.Equal(t, 2, h.Height())
	assert.Equal(t, 4, h.Apex().NumVertices())
	assert.Equal(t, 2, h.Apex().NumFaces())
}

func TestBuildShrinksMonotonically(t *testing.T) {
	h, err := Build(regularNGon(t, 64))
	require.NoError(t, err)

	require.Greater(t, h.Height(), 1)
	for k := 1; k < h.Height(); k++ {
		assert.Less(t, h.Level(k).Mesh.NumVertices(), h.Level(k-1).Mesh.NumVertices(),
			"level %d must be strictly smaller", k)
	}
	assert.LessOrEqual(t, h.Apex().NumVertices(), 4)
}

func TestParentPointersAreValid(t *testing.T) {
	h, err := Build(regularNGon(t, 64))
	require.NoError(t, err)

	assert.Nil(t, h.Level(0).Parents, "base level has no parents")
	for k := 1; k < h.Height(); k++ {
		level := h.Level(k)
		finer := h.Level(k - 1)
		require.Len(t, level.Parents, level.Mesh.NumFaces(), "level %d", k)

		for f, p := range level.Parents {
			switch p.Kind {
			case mesh.ParentFace:
				assert.GreaterOrEqual(t, p.Ref, 0)
				assert.Less(t, p.Ref, finer.Mesh.NumFaces(),
					"level %d face %d: face ref out of range", k, f)
			case mesh.ParentVertex:
				require.GreaterOrEqual(t, p.Ref, 0)
				require.Less(t, p.Ref, finer.Mesh.NumVertices(),
					"level %d face %d: vertex ref out of range", k, f)
				// The referenced vertex was removed: its position must
				// not appear in this level.
				removed := finer.Mesh.Vertex(p.Ref)
				for v := 0; v < level.Mesh.NumVertices(); v++ {
					assert.NotEqual(t, removed, level.Mesh.Vertex(v),
						"level %d still contains removed vertex %d", k, p.Ref)
				}
			default:
				t.Fatalf("level %d face %d: unknown parent kind %v", k, f, p.Kind)
			}
		}
	}
}

func TestBoundsContainment(t *testing.T) {
	h, err := Build(regularNGon(t, 64))
	require.NoError(t, err)

	for k, level := range h.Levels() {
		require.Len(t, level.FaceBounds, level.Mesh.NumFaces())
		for f, fb := range level.FaceBounds {
			assert.True(t, level.Bounds.Contains(fb.Min),
				"level %d face %d box escapes the level box", k, f)
			assert.True(t, level.Bounds.Contains(fb.Max),
				"level %d face %d box escapes the level box", k, f)
			for _, p := range level.Mesh.FacePolygon(f) {
				assert.True(t, fb.Contains(p),
					"level %d face %d vertex outside its box", k, f)
			}
		}
	}
}

func TestBuildDeterminism(t *testing.T) {
	build := func() *Hierarchy {
		h, err := Build(regularNGon(t, 64))
		require.NoError(t, err)
		return h
	}
	h1, h2 := build(), build()

	require.Equal(t, h1.Height(), h2.Height())
	for k := 0; k < h1.Height(); k++ {
		m1, m2 := h1.Level(k).Mesh, h2.Level(k).Mesh
		require.Equal(t, m1.NumVertices(), m2.NumVertices(), "level %d", k)
		require.Equal(t, m1.NumFaces(), m2.NumFaces(), "level %d", k)
		for v := 0; v < m1.NumVertices(); v++ {
			assert.Equal(t, m1.Vertex(v), m2.Vertex(v), "level %d vertex %d", k, v)
		}
		for f := 0; f < m1.NumFaces(); f++ {
			assert.Equal(t, m1.Face(f), m2.Face(f), "level %d face %d", k, f)
		}
		assert.Equal(t, h1.Level(k).Parents, h2.Level(k).Parents, "level %d parents", k)
	}
}

func TestBuildSquareHasSingleLevel(t *testing.T) {
	h, err := Build(unitSquareMesh(t))
	require.NoError(t, err)
	assert.Equal(t, 1, h.Height())
	assert.Same(t, h.Base(), h.Apex())
	assert.Nil(t, h.Level(0).Parents)
}

func TestWithDegreeLimit(t *testing.T) {
	// A tight limit still terminates thanks to the relaxation loop.
	h, err := Build(regularNGon(t, 32), WithDegreeLimit(1))
	require.NoError(t, err)
	assert.LessOrEqual(t, h.Apex().NumVertices(), 4)

	// Non-positive limits are ignored.
	h, err = Build(regularNGon(t, 32), WithDegreeLimit(0))
	require.NoError(t, err)
	assert.LessOrEqual(t, h.Apex().NumVertices(), 4)
}

func TestNewHierarchyEmpty(t *testing.T) {
	_, err := newHierarchy(nil)
	assert.ErrorIs(t, err, ErrEmptyHierarchy)
}
