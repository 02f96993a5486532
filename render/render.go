// Package render draws a grid as text for terminal output.
//
// Each status is a brightness level: closed ░, opened ▒, filled █. Every
// cell is printed twice horizontally so the picture keeps a roughly square
// aspect ratio in a terminal.
package render

import (
	"io"
	"strings"

	"github.com/kurono/percolation/grid"
)

// Palette maps grid.Closed, grid.Opened and grid.OpenedAndFilled to glyphs.
var Palette = [3]rune{'░', '▒', '█'}

// Text returns the grid as one line per row, each line ending in '\n'.
// Statuses outside the palette are drawn as '?'.
func Text(g *grid.Grid) string {
	var sb strings.Builder
	sb.Grow(g.CellCount()*2*len(string(Palette[0])) + g.Rows())
	cells := g.Cells()
	for r := 0; r < g.Rows(); r++ {
		for _, s := range cells[r*g.Cols() : (r+1)*g.Cols()] {
			glyph := '?'
			if s.Valid() {
				glyph = Palette[s]
			}
			sb.WriteRune(glyph)
			sb.WriteRune(glyph)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Write writes Text(g) to w.
func Write(w io.Writer, g *grid.Grid) error {
	_, err := io.WriteString(w, Text(g))

	return err
}
