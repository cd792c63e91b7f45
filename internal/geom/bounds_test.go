package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestPolygonBounds(t *testing.T) {
	b := PolygonBounds([]mgl64.Vec2{{1, 2}, {-3, 5}, {4, 0}})
	assert.Equal(t, mgl64.Vec2{-3, 0}, b.Min)
	assert.Equal(t, mgl64.Vec2{4, 5}, b.Max)
}

func TestPolygonBoundsEmpty(t *testing.T) {
	assert.Equal(t, Bounds{}, PolygonBounds(nil))
}

func TestSegmentBounds(t *testing.T) {
	b := SegmentBounds(mgl64.Vec2{3, -1}, mgl64.Vec2{-2, 4})
	assert.Equal(t, mgl64.Vec2{-2, -1}, b.Min)
	assert.Equal(t, mgl64.Vec2{3, 4}, b.Max)
}

func TestBoundsOverlaps(t *testing.T) {
	base := Bounds{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{2, 2}}

	tests := []struct {
		name  string
		other Bounds
		want  bool
	}{
		{"identical", base, true},
		{"contained", Bounds{Min: mgl64.Vec2{0.5, 0.5}, Max: mgl64.Vec2{1, 1}}, true},
		{"partial overlap", Bounds{Min: mgl64.Vec2{1, 1}, Max: mgl64.Vec2{3, 3}}, true},
		{"touching edges overlap", Bounds{Min: mgl64.Vec2{2, 0}, Max: mgl64.Vec2{3, 2}}, true},
		{"disjoint in x", Bounds{Min: mgl64.Vec2{3, 0}, Max: mgl64.Vec2{4, 2}}, false},
		{"disjoint in y", Bounds{Min: mgl64.Vec2{0, 3}, Max: mgl64.Vec2{2, 4}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{2, 2}}
	assert.True(t, b.Contains(mgl64.Vec2{1, 1}))
	assert.True(t, b.Contains(mgl64.Vec2{0, 0}))
	assert.True(t, b.Contains(mgl64.Vec2{2, 2}))
	assert.False(t, b.Contains(mgl64.Vec2{3, 1}))
	assert.False(t, b.Contains(mgl64.Vec2{1, -0.1}))
}

func TestBoundsExtend(t *testing.T) {
	b := Bounds{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{1, 1}}
	b = b.Extend(mgl64.Vec2{-1, 3})
	assert.Equal(t, mgl64.Vec2{-1, 0}, b.Min)
	assert.Equal(t, mgl64.Vec2{1, 3}, b.Max)
	assert.Equal(t, 2.0, b.Width())
	assert.Equal(t, 3.0, b.Height())
	assert.Equal(t, mgl64.Vec2{0, 1.5}, b.Center())
}
