package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/grid"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe [x y [z]]",
		Short: "Read one cell with bounds checking",
		Long: `Read one cell through the checked accessor. Without arguments the configured
cursor is used. A coordinate outside the grid is reported as an error.`,
		Args: func(_ *cobra.Command, args []string) error {
			if n := len(args); n != 0 && n != 2 && n != 3 {
				return fmt.Errorf("probe takes 0, 2 or 3 coordinates, got %d", n)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := sheetFrom(cmd)
			if err != nil {
				return err
			}

			c := cfg.Cursor
			if len(args) > 0 {
				parts := make([]any, len(args))
				for i, a := range args {
					parts[i] = a
				}
				if c, err = grid.ParseCoord(parts...); err != nil {
					return err
				}
			}

			v, err := probeCell(s, c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v = %s\n", c, v)
			return nil
		},
	}
}
