// Package hierarchy builds and queries a Dobkin-Kirkpatrick hierarchy:
// a stack of progressively contracted meshes, each face linked back to
// the face or removed vertex it came from, letting a segment query walk
// from the coarsest mesh to the original in logarithmically many steps.
package hierarchy

import (
	"errors"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/geom"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/mesh"
)

// ErrEmptyHierarchy is returned when a hierarchy is constructed with no
// levels.
var ErrEmptyHierarchy = errors.New("hierarchy: requires at least one level")

// DefaultDegreeLimit is the classical DK degree cap; removing an
// independent set of vertices with degree at most 11 drops a constant
// fraction of vertices per level.
const DefaultDegreeLimit = 11

// apexVertexCount is the contraction terminal: meshes at or below this
// size are not contracted further.
const apexVertexCount = 4

// Level pairs one mesh of the hierarchy with its parent pointers and
// precomputed bounds. Parents is nil only for the base level.
type Level struct {
	Mesh       *mesh.Mesh
	Parents    []mesh.ParentPointer
	Bounds     geom.Bounds
	FaceBounds []geom.Bounds
}

// Hierarchy is an immutable sequence of levels. Level 0 is the base
// (the original mesh); the last level is the apex (the coarsest mesh).
// Queries are pure and safe for concurrent readers.
type Hierarchy struct {
	levels []*Level
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	degreeLimit int
}

// WithDegreeLimit overrides the vertex degree cap used when selecting
// removal candidates.
func WithDegreeLimit(limit int) Option {
	return func(c *buildConfig) {
		if limit > 0 {
			c.degreeLimit = limit
		}
	}
}

// Build contracts m level by level until at most four vertices remain.
// Each round selects a maximal independent set of vertices whose degree
// does not exceed the limit and removes them. If a round cannot make
// progress the limit is raised by one and the round retried; the limit
// resets after every successful contraction. The relaxation keeps the
// builder total on meshes that violate DK's degree assumptions (the fan
// adapter's hub vertex, for one) at the cost of a taller hierarchy.
func Build(m *mesh.Mesh, opts ...Option) (*Hierarchy, error) {
	cfg := buildConfig{degreeLimit: DefaultDegreeLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	levels := []*Level{{Mesh: m}}
	current := m
	limit := cfg.degreeLimit
	for current.NumVertices() > apexVertexCount {
		var candidates []int
		for v := 0; v < current.NumVertices(); v++ {
			if current.Degree(v) <= limit {
				candidates = append(candidates, v)
			}
		}
		if len(candidates) == 0 {
			limit++
			continue
		}
		independent := current.MaximalIndependentSet(candidates)
		if len(independent) == 0 {
			limit++
			continue
		}
		next, parents := current.NextLayer(independent)
		if next.NumVertices() == current.NumVertices() {
			limit++
			continue
		}
		levels = append(levels, &Level{Mesh: next, Parents: parents})
		current = next
		limit = cfg.degreeLimit
	}

	return newHierarchy(levels)
}

func newHierarchy(levels []*Level) (*Hierarchy, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyHierarchy
	}
	h := &Hierarchy{levels: levels}
	h.prepareBounds()
	return h, nil
}

func (h *Hierarchy) prepareBounds() {
	for _, level := range h.levels {
		m := level.Mesh
		var b geom.Bounds
		for v := 0; v < m.NumVertices(); v++ {
			p := m.Vertex(v).Vec2()
			if v == 0 {
				b = geom.Bounds{Min: p, Max: p}
			} else {
				b = b.Extend(p)
			}
		}
		level.Bounds = b
		level.FaceBounds = make([]geom.Bounds, m.NumFaces())
		for f := 0; f < m.NumFaces(); f++ {
			level.FaceBounds[f] = geom.PolygonBounds(m.FacePolygon(f))
		}
	}
}

// Height returns the number of levels.
func (h *Hierarchy) Height() int { return len(h.levels) }

// Levels returns the level sequence, base first. Read-only.
func (h *Hierarchy) Levels() []*Level { return h.levels }

// Level returns level i.
func (h *Hierarchy) Level(i int) *Level { return h.levels[i] }

// Base returns the finest mesh, the one Build was given.
func (h *Hierarchy) Base() *mesh.Mesh { return h.levels[0].Mesh }

// Apex returns the coarsest mesh.
func (h *Hierarchy) Apex() *mesh.Mesh { return h.levels[len(h.levels)-1].Mesh }
