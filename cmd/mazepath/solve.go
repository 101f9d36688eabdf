package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/solver"
)

type solveOptions struct {
	strategies []string
	jsonOutput bool
	overlay    bool
	from, to   string
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Search a maze with every configured strategy",
		Long: `Search FILE from its start (2) to its goal (3) and print the path found
by each strategy, or "no path found".

Strategies run one after another; a strategy that finds nothing does not
stop the others.`,
		Args: cobra.ExactArgs(1),
		RunE: root.flushAfter(func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, root, opts, args[0])
		}),
	}
	cmd.Flags().StringSliceVarP(&opts.strategies, "strategy", "s", nil, "strategies to run, in order (dfs, bfs, astar)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")
	cmd.Flags().BoolVar(&opts.overlay, "overlay", false, "draw each path over the maze")
	cmd.Flags().StringVar(&opts.from, "from", "", "override start cell as ROW,COL")
	cmd.Flags().StringVar(&opts.to, "to", "", "override goal cell as ROW,COL")

	return cmd
}

func runSolve(cmd *cobra.Command, root *rootOptions, opts *solveOptions, path string) error {
	m, err := mazefile.Load(path)
	if err != nil {
		return err
	}
	g, err := buildGraph(m, opts.from, opts.to)
	if err != nil {
		return err
	}

	searchCfg := root.cfg.Search
	if len(opts.strategies) > 0 {
		searchCfg.Strategies = opts.strategies
	}
	s, err := solver.New(searchCfg, root.logger)
	if err != nil {
		return err
	}
	rep, err := s.Solve(cmd.Context(), g)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return writeJSON(out, rep)
	}

	return writeText(out, g, rep, opts.overlay)
}

// buildGraph builds the maze graph, honoring --from/--to overrides.
func buildGraph(m *mazefile.Maze, from, to string) (*gridgraph.Graph, error) {
	if from == "" && to == "" {
		return m.Graph()
	}
	start, goal := m.Start, m.Goal
	var err error
	if from != "" {
		if start, err = parseCell(from); err != nil {
			return nil, fmt.Errorf("--from: %w", err)
		}
	}
	if to != "" {
		if goal, err = parseCell(to); err != nil {
			return nil, fmt.Errorf("--to: %w", err)
		}
	}

	return gridgraph.BuildWithEndpoints(m.Matrix, start, goal)
}

// parseCell parses "ROW,COL".
func parseCell(s string) (gridgraph.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("want ROW,COL, got %q", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("row: %w", err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("col: %w", err)
	}

	return gridgraph.Cell{Row: r, Col: c}, nil
}

// writeText prints one block per strategy.
func writeText(w io.Writer, g *gridgraph.Graph, rep *solver.Report, overlay bool) error {
	for i, o := range rep.Outcomes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", o.Strategy.Title())
		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "search aborted: %v\n", o.Err)
		case !o.Found:
			fmt.Fprintln(w, "no path found")
		default:
			fmt.Fprintln(w, o.Path)
			fmt.Fprintf(w, "length %d, cost %d, expanded %d\n", o.Path.Len(), o.Cost, o.Expanded)
			if overlay {
				if err := drawOverlay(w, g, o.Path); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

type jsonReport struct {
	RunID     string       `json:"run_id"`
	Start     [2]int       `json:"start"`
	Goal      [2]int       `json:"goal"`
	Connected bool         `json:"connected"`
	Results   []jsonResult `json:"results"`
}

type jsonResult struct {
	Strategy string   `json:"strategy"`
	Found    bool     `json:"found"`
	Path     [][2]int `json:"path,omitempty"`
	Cost     int      `json:"cost"`
	Expanded int      `json:"expanded"`
	Error    string   `json:"error,omitempty"`
}

func writeJSON(w io.Writer, rep *solver.Report) error {
	out := jsonReport{
		RunID:     rep.RunID,
		Start:     [2]int{rep.Start.Row, rep.Start.Col},
		Goal:      [2]int{rep.Goal.Row, rep.Goal.Col},
		Connected: rep.Connected,
		Results:   make([]jsonResult, 0, len(rep.Outcomes)),
	}
	for _, o := range rep.Outcomes {
		r := jsonResult{
			Strategy: string(o.Strategy),
			Found:    o.Found,
			Cost:     o.Cost,
			Expanded: o.Expanded,
		}
		for _, c := range o.Path {
			r.Path = append(r.Path, [2]int{c.Row, c.Col})
		}
		if o.Err != nil {
			r.Error = o.Err.Error()
		}
		out.Results = append(out.Results, r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
