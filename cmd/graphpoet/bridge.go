// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBridgeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bridge FROM TO",
		Short: "Print the bridge word between FROM and TO, if any",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, p, err := flags.setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			// A missing bridge prints nothing and still succeeds.
			if b, ok := p.Bridge(args[0], args[1]); ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), b)
			}

			return err
		},
	}
}
