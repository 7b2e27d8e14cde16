// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphpoet/poet"
)

func newPoemCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "poem [words...]",
		Short: "Print the input with bridge words inserted",
		Long: `Print the input with bridge words inserted.

With arguments, the arguments form a single poem. Without arguments, every
line of standard input is treated as its own poem.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, p, err := flags.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				_, err := fmt.Fprintln(out, p.Poem(strings.Join(args, " ")))
				return err
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), poet.DefaultMaxTokenSize)
			for sc.Scan() {
				if _, err := fmt.Fprintln(out, p.Poem(sc.Text())); err != nil {
					return err
				}
			}

			return sc.Err()
		},
	}
}
