package geom

import "github.com/go-gl/mathgl/mgl64"

// Cross returns the 2D cross product (z component of the 3D cross).
func Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// CCW reports whether c lies strictly counter-clockwise of the directed
// line a->b. Collinear triples return false.
func CCW(a, b, c mgl64.Vec2) bool {
	return (c.Y()-a.Y())*(b.X()-a.X()) > (b.Y()-a.Y())*(c.X()-a.X())
}

// SegmentsIntersect reports whether open segments ab and cd properly
// straddle each other. Touching endpoints and collinear overlap count as
// no intersection; callers that care about grazing contact sample densely
// enough that this never matters in practice.
func SegmentsIntersect(a, b, c, d mgl64.Vec2) bool {
	return CCW(a, c, d) != CCW(b, c, d) && CCW(a, b, c) != CCW(a, b, d)
}

// PointInPolygon tests p against poly using even-odd ray casting with a
// half-open crossing rule: an edge counts iff it straddles the ray's
// height and its crossing lies strictly right of p. Points exactly on an
// edge classify deterministically but may fall either way.
func PointInPolygon(p mgl64.Vec2, poly []mgl64.Vec2) bool {
	n := len(poly)
	if n == 0 {
		return false
	}
	x, y := p.X(), p.Y()
	inside := false
	p1 := poly[0]
	for i := 1; i <= n; i++ {
		p2 := poly[i%n]
		if (p1.Y() > y) != (p2.Y() > y) {
			xinters := (y-p1.Y())*(p2.X()-p1.X())/(p2.Y()-p1.Y()) + p1.X()
			if x < xinters {
				inside = !inside
			}
		}
		p1 = p2
	}
	return inside
}

// SegmentHitsConvex reports whether segment p1p2 touches the convex
// polygon: either endpoint inside, or a proper crossing with some edge.
func SegmentHitsConvex(p1, p2 mgl64.Vec2, poly []mgl64.Vec2) bool {
	if PointInPolygon(p1, poly) || PointInPolygon(p2, poly) {
		return true
	}
	n := len(poly)
	for i := 0; i < n; i++ {
		if SegmentsIntersect(p1, p2, poly[i], poly[(i+1)%n]) {
			return true
		}
	}
	return false
}
