package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazefile"
)

func newGraphCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "graph FILE",
		Short: "Print the adjacency list built from a maze",
		Args:  cobra.ExactArgs(1),
		RunE: root.flushAfter(func(cmd *cobra.Command, args []string) error {
			m, err := mazefile.Load(args[0])
			if err != nil {
				return err
			}
			g, err := m.Graph()
			if err != nil {
				return err
			}
			root.logger.Debug("graph built", "cells", g.Len(), "edges", g.EdgeCount())

			return writeAdjacency(cmd.OutOrStdout(), g)
		}),
	}
}

// writeAdjacency prints a summary line followed by one "cell: neighbors" line per vertex.
func writeAdjacency(w io.Writer, g *gridgraph.Graph) error {
	_, err := fmt.Fprintf(w, "size %d, cells %d, edges %d, components %d, start %v, goal %v, connected %t\n",
		g.Size(), g.Len(), g.EdgeCount()/2, len(g.Components()), g.Start(), g.Goal(), g.Connected(g.Start(), g.Goal()))
	if err != nil {
		return err
	}
	for _, c := range g.Cells() {
		nbs := g.Neighbors(c)
		parts := make([]string, len(nbs))
		for i, e := range nbs {
			parts[i] = e.To.String()
		}
		if _, err := fmt.Fprintf(w, "%v: %s\n", c, strings.Join(parts, " ")); err != nil {
			return err
		}
	}

	return nil
}
