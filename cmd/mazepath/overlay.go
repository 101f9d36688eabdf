package main

import (
	"bufio"
	"io"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// drawOverlay renders the maze with path drawn as '*'.
// '#' wall, '.' open, 'S' start, 'G' goal.
func drawOverlay(w io.Writer, g *gridgraph.Graph, path gridgraph.Path) error {
	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	bw := bufio.NewWriter(w)
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := gridgraph.Cell{Row: r, Col: c}
			kind, _ := g.Kind(cell)
			ch := byte('.')
			switch {
			case cell == g.Start():
				ch = 'S'
			case cell == g.Goal():
				ch = 'G'
			case kind == gridgraph.Wall:
				ch = '#'
			case onPath[cell]:
				ch = '*'
			}
			bw.WriteByte(ch)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
