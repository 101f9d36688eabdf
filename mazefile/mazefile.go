// Package mazefile reads and writes the textual maze format:
//
//	(width,height)
//	[v0,v1,...,vN-1]
//	...
//
// The first line holds the dimensions, which must be equal. Each following
// non-blank line is one row of comma-separated codes from {0,1,2,3}.
package mazefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// ErrSyntax marks a token or line that does not follow the format.
// It is always reported together with gridgraph.ErrMalformedGrid.
var ErrSyntax = errors.New("mazefile: syntax error")

// Maze is a parsed maze file.
type Maze struct {
	Width, Height int
	Matrix        [][]int
	Start, Goal   gridgraph.Cell
}

// Graph builds the adjacency graph of the maze.
func (m *Maze) Graph() (*gridgraph.Graph, error) {
	return gridgraph.Build(m.Matrix)
}

// Load opens path and parses it.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Parse reads a maze from r.
// Every format violation is reported as gridgraph.ErrMalformedGrid, with
// ErrSyntax also matching for unparsable text.
func Parse(r io.Reader) (*Maze, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			if s := strings.TrimSpace(sc.Text()); s != "" {
				return s, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("mazefile: read: %w", err)
		}
		return nil, fmt.Errorf("%w: %w: missing dimensions line", gridgraph.ErrMalformedGrid, ErrSyntax)
	}
	dims, err := parseList(header, '(', ')')
	if err != nil || len(dims) != 2 {
		return nil, fmt.Errorf("%w: %w: line %d: want (width,height), got %q", gridgraph.ErrMalformedGrid, ErrSyntax, lineNo, header)
	}
	width, height := dims[0], dims[1]
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: line %d: dimensions must be positive, got (%d,%d)", gridgraph.ErrMalformedGrid, lineNo, width, height)
	}
	if width != height {
		return nil, fmt.Errorf("%w: line %d: maze must be square, got (%d,%d)", gridgraph.ErrMalformedGrid, lineNo, width, height)
	}

	m := &Maze{Width: width, Height: height, Matrix: make([][]int, 0, height)}
	var starts, goals []gridgraph.Cell
	for {
		line, ok := next()
		if !ok {
			break
		}
		row, err := parseList(line, '[', ']')
		if err != nil {
			return nil, fmt.Errorf("%w: %w: line %d: %v", gridgraph.ErrMalformedGrid, ErrSyntax, lineNo, err)
		}
		r := len(m.Matrix)
		if r >= height {
			return nil, fmt.Errorf("%w: line %d: more than %d rows", gridgraph.ErrMalformedGrid, lineNo, height)
		}
		if len(row) != width {
			return nil, fmt.Errorf("%w: line %d: row has %d values, want %d", gridgraph.ErrMalformedGrid, lineNo, len(row), width)
		}
		for c, v := range row {
			kind, err := gridgraph.KindOf(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			switch kind {
			case gridgraph.Start:
				starts = append(starts, gridgraph.Cell{Row: r, Col: c})
			case gridgraph.Goal:
				goals = append(goals, gridgraph.Cell{Row: r, Col: c})
			}
		}
		m.Matrix = append(m.Matrix, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazefile: read: %w", err)
	}
	if len(m.Matrix) != height {
		return nil, fmt.Errorf("%w: got %d rows, want %d", gridgraph.ErrMalformedGrid, len(m.Matrix), height)
	}
	if len(starts) != 1 || len(goals) != 1 {
		return nil, fmt.Errorf("%w: want one start and one goal, found %d and %d", gridgraph.ErrMalformedGrid, len(starts), len(goals))
	}
	m.Start, m.Goal = starts[0], goals[0]

	return m, nil
}

// parseList parses "<open>a,b,c<close>" into integers. Spaces around values are allowed.
func parseList(s string, opening, closing byte) ([]int, error) {
	if len(s) < 2 || s[0] != opening || s[len(s)-1] != closing {
		return nil, fmt.Errorf("want %c...%c, got %q", opening, closing, s)
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return nil, fmt.Errorf("empty list %q", s)
	}
	fields := strings.Split(body, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Format writes matrix in the maze file format.
func Format(w io.Writer, matrix [][]int) error {
	bw := bufio.NewWriter(w)
	n := len(matrix)
	fmt.Fprintf(bw, "(%d,%d)\n", n, n)
	for _, row := range matrix {
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(bw, "[%s]\n", strings.Join(parts, ","))
	}

	return bw.Flush()
}
