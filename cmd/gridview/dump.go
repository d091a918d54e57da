package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wippyai/grid"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the grid",
		Long: `Print every cell of the configured grid.

The text format is the grid's own debug rendering. The table format prints one
table per z plane with x across and y down.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cfg, err := sheetFrom(cmd)
			if err != nil {
				return err
			}
			renderDump(cmd.OutOrStdout(), s, cfg.Format)
			return nil
		},
	}
}

func renderDump(w io.Writer, s sheet, format string) {
	if format != FormatTable {
		fmt.Fprint(w, s.String())
		return
	}

	e := s.Extents()
	for z := 0; z < e.Z; z++ {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		if s.Rank() == 3 {
			t.SetTitle("z=" + strconv.Itoa(z))
		}

		header := make(table.Row, e.X+1)
		header[0] = "y\\x"
		for x := 0; x < e.X; x++ {
			header[x+1] = x
		}
		t.AppendHeader(header)

		for y := 0; y < e.Y; y++ {
			row := make(table.Row, e.X+1)
			row[0] = y
			for x := 0; x < e.X; x++ {
				row[x+1] = s.Cell(grid.XYZ(x, y, z))
			}
			t.AppendRow(row)
		}
		t.Render()
	}
}
