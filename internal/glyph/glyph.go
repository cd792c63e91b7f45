// Package glyph rasterizes letters into small axis-aligned convex cells.
// Each letter is a 5x5 bitmap; every filled cell becomes a convex quad
// that the game wraps in its own intersection hierarchy.
package glyph

import "github.com/go-gl/mathgl/mgl64"

// GridSize is the side of the letter bitmaps.
const GridSize = 5

var grids = map[rune][GridSize]string{
	'A': {
		"  X  ",
		" X X ",
		"XXXXX",
		"X   X",
		"X   X",
	},
	'B': {
		"XXXX ",
		"X   X",
		"XXXX ",
		"X   X",
		"XXXX ",
	},
	'C': {
		" XXX ",
		"X    ",
		"X    ",
		"X    ",
		" XXX ",
	},
	'D': {
		"XXXX ",
		"X   X",
		"X   X",
		"X   X",
		"XXXX ",
	},
	'E': {
		"XXXXX",
		"X    ",
		"XXXX ",
		"X    ",
		"XXXXX",
	},
	'F': {
		"XXXXX",
		"X    ",
		"XXXX ",
		"X    ",
		"X    ",
	},
	'G': {
		" XXX ",
		"X    ",
		"X  XX",
		"X   X",
		" XXX ",
	},
	'H': {
		"X   X",
		"X   X",
		"XXXXX",
		"X   X",
		"X   X",
	},
	'I': {
		"XXXXX",
		"  X  ",
		"  X  ",
		"  X  ",
		"XXXXX",
	},
	'J': {
		"XXXXX",
		"   X ",
		"   X ",
		"X  X ",
		" XX  ",
	},
	'K': {
		"X   X",
		"X  X ",
		"XXX  ",
		"X  X ",
		"X   X",
	},
	'L': {
		"X    ",
		"X    ",
		"X    ",
		"X    ",
		"XXXXX",
	},
	'M': {
		"X   X",
		"XX XX",
		"X X X",
		"X   X",
		"X   X",
	},
	'N': {
		"X   X",
		"XX  X",
		"X X X",
		"X  XX",
		"X   X",
	},
	'O': {
		" XXX ",
		"X   X",
		"X   X",
		"X   X",
		" XXX ",
	},
	'P': {
		"XXXX ",
		"X   X",
		"XXXX ",
		"X    ",
		"X    ",
	},
	'Q': {
		" XXX ",
		"X   X",
		"X   X",
		"X  X ",
		" XX X",
	},
	'R': {
		"XXXX ",
		"X   X",
		"XXXX ",
		"X  X ",
		"X   X",
	},
	'S': {
		" XXX ",
		"X    ",
		" XXX ",
		"    X",
		" XXX ",
	},
	'T': {
		"XXXXX",
		"  X  ",
		"  X  ",
		"  X  ",
		"  X  ",
	},
	'U': {
		"X   X",
		"X   X",
		"X   X",
		"X   X",
		" XXX ",
	},
	'V': {
		"X   X",
		"X   X",
		"X   X",
		" X X ",
		"  X  ",
	},
	'W': {
		"X   X",
		"X   X",
		"X X X",
		"XX XX",
		"X   X",
	},
	'X': {
		"X   X",
		" X X ",
		"  X  ",
		" X X ",
		"X   X",
	},
	'Y': {
		"X   X",
		" X X ",
		"  X  ",
		"  X  ",
		"  X  ",
	},
	'Z': {
		"XXXXX",
		"   X ",
		"  X  ",
		" X   ",
		"XXXXX",
	},
}

var fullBlock = [GridSize]string{"XXXXX", "XXXXX", "XXXXX", "XXXXX", "XXXXX"}

// Grid returns the 5x5 bitmap for a letter. Unknown characters render as
// a full block, matching the game's "anything is traceable" fallback.
func Grid(char rune) [GridSize]string {
	if char >= 'a' && char <= 'z' {
		char -= 'a' - 'A'
	}
	if g, ok := grids[char]; ok {
		return g
	}
	return fullBlock
}

// CellPolygons returns one convex quad per filled bitmap cell of char,
// scaled so the whole letter spans scale units. Rows grow downward, the
// same orientation as screen space.
func CellPolygons(char rune, scale float64) [][]mgl64.Vec2 {
	grid := Grid(char)
	pixel := scale / GridSize
	var polygons [][]mgl64.Vec2
	for r, row := range grid {
		for c := 0; c < len(row); c++ {
			if row[c] == ' ' {
				continue
			}
			x := float64(c) * pixel
			y := float64(r) * pixel
			polygons = append(polygons, []mgl64.Vec2{
				{x, y},
				{x + pixel, y},
				{x + pixel, y + pixel},
				{x, y + pixel},
			})
		}
	}
	return polygons
}
