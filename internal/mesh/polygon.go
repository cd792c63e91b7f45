package mesh

import "github.com/go-gl/mathgl/mgl64"

// FromConvexPolygon fan-triangulates a convex planar polygon into a mesh
// the hierarchy can consume. Every cell of a rasterized letter goes
// through here as a four-point square.
func FromConvexPolygon(points []mgl64.Vec2) (*Mesh, error) {
	if len(points) < 3 {
		return nil, ErrInsufficientPoints
	}
	vertices := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		vertices[i] = p.Vec3(0)
	}
	faces := make([][]int, 0, len(points)-2)
	for i := 1; i < len(points)-1; i++ {
		faces = append(faces, []int{0, i, i + 1})
	}
	return New(vertices, faces)
}
