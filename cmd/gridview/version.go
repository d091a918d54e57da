package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/grid"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			checks := "on"
			if !grid.Validated() {
				checks = "off"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "gridview %s (bounds checks %s)\n", Version, checks)
		},
	}
}
