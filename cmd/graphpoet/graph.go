// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphpoet/poet"
)

type graphEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

type graphDump struct {
	Stats    poet.Stats  `json:"stats"`
	Vertices []string    `json:"vertices"`
	Edges    []graphEdge `json:"edges"`
}

func newGraphCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the affinity graph built from the corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, p, err := flags.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			out := cmd.OutOrStdout()
			if !asJSON {
				_, err := fmt.Fprintln(out, p.String())
				return err
			}

			g := p.Graph()
			dump := graphDump{
				Stats:    p.Stats(),
				Vertices: g.Vertices(),
				Edges:    []graphEdge{},
			}
			for _, e := range g.Edges() {
				dump.Edges = append(dump.Edges, graphEdge{From: e.From, To: e.To, Weight: e.Weight})
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			return enc.Encode(dump)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of the text rendering")

	return cmd
}
