package geom

import "github.com/go-gl/mathgl/mgl64"

// Bounds is an inclusive axis-aligned bounding box.
type Bounds struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// PolygonBounds returns the AABB of the polygon vertices.
// An empty polygon yields the zero box.
func PolygonBounds(poly []mgl64.Vec2) Bounds {
	if len(poly) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: poly[0], Max: poly[0]}
	for _, p := range poly[1:] {
		b = b.Extend(p)
	}
	return b
}

// SegmentBounds returns the AABB spanned by the two segment endpoints.
func SegmentBounds(p1, p2 mgl64.Vec2) Bounds {
	return Bounds{
		Min: mgl64.Vec2{min(p1.X(), p2.X()), min(p1.Y(), p2.Y())},
		Max: mgl64.Vec2{max(p1.X(), p2.X()), max(p1.Y(), p2.Y())},
	}
}

// Extend grows the box to cover p.
func (b Bounds) Extend(p mgl64.Vec2) Bounds {
	return Bounds{
		Min: mgl64.Vec2{min(b.Min.X(), p.X()), min(b.Min.Y(), p.Y())},
		Max: mgl64.Vec2{max(b.Max.X(), p.X()), max(b.Max.Y(), p.Y())},
	}
}

func (b Bounds) Overlaps(o Bounds) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y()
}

func (b Bounds) Contains(p mgl64.Vec2) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y()
}

// Width and Height of the box, useful for fitting polygons into UI panels.
func (b Bounds) Width() float64  { return b.Max.X() - b.Min.X() }
func (b Bounds) Height() float64 { return b.Max.Y() - b.Min.Y() }

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl64.Vec2 {
	return mgl64.Vec2{(b.Min.X() + b.Max.X()) / 2, (b.Min.Y() + b.Max.Y()) / 2}
}
