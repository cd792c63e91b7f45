package hierarchy

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/geom"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/mesh"
)

// TraceStep records one face test performed during a traced query:
// the level it happened on, the face projected to the plane, and whether
// the segment hit it.
type TraceStep struct {
	LevelIndex int
	Polygon    []mgl64.Vec2
	Hit        bool
}

// frame is one pending descent step: a level to examine and the parent
// pointer constraining which of its faces are candidates. A nil
// constraint means all faces (used only to seed the apex).
type frame struct {
	level      int
	constraint *mesh.ParentPointer
}

// IntersectsSegment reports whether the segment from start to end touches
// the projected base mesh. The traversal walks from the apex toward the
// base, following parent pointers and pruning by level and face AABBs,
// so each descent examines a bounded number of faces per level.
func (h *Hierarchy) IntersectsSegment(start, end mgl64.Vec2) bool {
	return h.search(start, end, nil)
}

// TraceIntersection runs the same traversal as IntersectsSegment but
// records every face actually tested, in test order. The trace ends at
// the first descent that reaches the base, or once every candidate is
// exhausted on a miss.
func (h *Hierarchy) TraceIntersection(start, end mgl64.Vec2) []TraceStep {
	trace := []TraceStep{}
	h.search(start, end, &trace)
	return trace
}

func (h *Hierarchy) search(start, end mgl64.Vec2, trace *[]TraceStep) bool {
	segBounds := geom.SegmentBounds(start, end)
	stack := []frame{{level: len(h.levels) - 1}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		level := h.levels[fr.level]
		if !level.Bounds.Overlaps(segBounds) {
			continue
		}
		for _, faceIdx := range h.candidateFaces(fr.level, fr.constraint) {
			if faceIdx < 0 || faceIdx >= level.Mesh.NumFaces() {
				continue
			}
			if !level.FaceBounds[faceIdx].Overlaps(segBounds) {
				continue
			}
			polygon := level.Mesh.FacePolygon(faceIdx)
			hit := geom.SegmentHitsConvex(start, end, polygon)
			if trace != nil {
				*trace = append(*trace, TraceStep{LevelIndex: fr.level, Polygon: polygon, Hit: hit})
			}
			if !hit {
				continue
			}
			if fr.level == 0 {
				return true
			}
			if level.Parents == nil {
				// Non-base level without parents: nothing to descend
				// through, treat the hit as final.
				return true
			}
			pointer := level.Parents[faceIdx]
			stack = append(stack, frame{level: fr.level - 1, constraint: &pointer})
		}
	}
	return false
}

// candidateFaces resolves a parent-pointer constraint into the face
// indices to examine on the given level.
func (h *Hierarchy) candidateFaces(level int, pointer *mesh.ParentPointer) []int {
	m := h.levels[level].Mesh
	if pointer == nil {
		all := make([]int, m.NumFaces())
		for i := range all {
			all[i] = i
		}
		return all
	}
	switch pointer.Kind {
	case mesh.ParentFace:
		return []int{pointer.Ref}
	case mesh.ParentVertex:
		return m.IncidentFaces(pointer.Ref)
	}
	return nil
}
