// dkdemo builds a Dobkin-Kirkpatrick hierarchy over the standard
// octahedron, prints its levels and probes it with segments, optionally
// cross-checking the hierarchy against a brute-force oracle on random
// segments.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/santiagopalma12/ConvexGlyphDK/internal/geom"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/hierarchy"
	"github.com/santiagopalma12/ConvexGlyphDK/internal/mesh"
)

func makeOctahedron() (*mesh.Mesh, error) {
	vertices := []mgl64.Vec3{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, 0},
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, -1},
	}
	faces := [][]int{
		{0, 2, 4},
		{2, 1, 4},
		{1, 3, 4},
		{3, 0, 4},
		{2, 0, 5},
		{1, 2, 5},
		{3, 1, 5},
		{0, 3, 5},
	}
	return mesh.New(vertices, faces)
}

// bruteForce tests the segment directly against every base face.
func bruteForce(m *mesh.Mesh, a, b mgl64.Vec2) bool {
	for f := 0; f < m.NumFaces(); f++ {
		if geom.SegmentHitsConvex(a, b, m.FacePolygon(f)) {
			return true
		}
	}
	return false
}

func run(degreeLimit, segments int, seed int64) error {
	octa, err := makeOctahedron()
	if err != nil {
		return err
	}
	h, err := hierarchy.Build(octa, hierarchy.WithDegreeLimit(degreeLimit))
	if err != nil {
		return err
	}

	for i, level := range h.Levels() {
		parents := "base"
		if level.Parents != nil {
			parents = fmt.Sprintf("%d parent links", len(level.Parents))
		}
		fmt.Printf("Nivel %d: %d vertices, %d caras, %s\n",
			i, level.Mesh.NumVertices(), level.Mesh.NumFaces(), parents)
	}

	probes := []struct {
		a, b     mgl64.Vec2
		expected bool
	}{
		{mgl64.Vec2{-2, 0}, mgl64.Vec2{2, 0}, true},
		{mgl64.Vec2{2, 2}, mgl64.Vec2{3, 3}, false},
	}
	for _, p := range probes {
		hit := h.IntersectsSegment(p.a, p.b)
		fmt.Printf("Segmento %v->%v intersecta: %v (esperado %v)\n", p.a, p.b, hit, p.expected)
	}

	if segments > 0 {
		rng := rand.New(rand.NewSource(seed))
		mismatches := 0
		for i := 0; i < segments; i++ {
			a := mgl64.Vec2{rng.Float64()*4 - 2, rng.Float64()*4 - 2}
			b := mgl64.Vec2{rng.Float64()*4 - 2, rng.Float64()*4 - 2}
			if h.IntersectsSegment(a, b) != bruteForce(h.Base(), a, b) {
				mismatches++
			}
		}
		fmt.Printf("Oracle check: %d segmentos, %d discrepancias\n", segments, mismatches)
		if mismatches > 0 {
			return fmt.Errorf("hierarchy disagrees with brute force on %d segments", mismatches)
		}
	}
	return nil
}

func main() {
	var (
		degreeLimit int
		segments    int
		seed        int64
	)

	root := &cobra.Command{
		Use:   "dkdemo",
		Short: "Build and probe a Dobkin-Kirkpatrick hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(degreeLimit, segments, seed)
		},
	}
	root.Flags().IntVar(&degreeLimit, "degree-limit", hierarchy.DefaultDegreeLimit,
		"degree cap for removal candidates")
	root.Flags().IntVar(&segments, "segments", 0,
		"number of random segments for the oracle cross-check")
	root.Flags().Int64Var(&seed, "seed", 1, "random seed for the oracle cross-check")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
