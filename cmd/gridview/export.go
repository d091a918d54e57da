package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tetratelabs/wazero"

	"github.com/wippyai/grid/wasmmem"
)

const (
	wasmPageSize = 65536
	// dumpLimit caps the hex dump printed after an export.
	dumpLimit = 256
)

// memoryModule is a WASM module exporting one page of memory as "memory".
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 memory, min 1 page
	0x07, 0x0a, 0x01, // export section
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00, // export "memory" memory 0
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Copy the grid into WebAssembly linear memory",
		Long: `Instantiate a module with one exported memory, write the grid at --offset,
read it back into a new grid to verify, and print the bytes written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, cfg, err := sheetFrom(cmd)
			if err != nil {
				return err
			}
			return exportSheet(cmd.Context(), cmd.OutOrStdout(), s, cfg.Offset)
		},
	}
}

func exportSheet(ctx context.Context, w io.Writer, s sheet, offset uint32) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, memoryModule)
	if err != nil {
		return fmt.Errorf("compile memory module: %w", err)
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("gridview"))
	if err != nil {
		return fmt.Errorf("instantiate memory module: %w", err)
	}
	raw := mod.ExportedMemory("memory")
	if raw == nil {
		return fmt.Errorf("memory module has no exported memory")
	}

	size, _, _ := wasmmem.Layout(s.WitType())
	need := uint64(offset) + uint64(s.Extents().Len())*uint64(size)
	if pages := (need + wasmPageSize - 1) / wasmPageSize; pages > uint64(raw.Size()/wasmPageSize) {
		if _, ok := raw.Grow(uint32(pages - uint64(raw.Size()/wasmPageSize))); !ok {
			return fmt.Errorf("cannot grow memory to %d pages for %d bytes at offset %d", pages, need-uint64(offset), offset)
		}
	}

	mem := wasmmem.Wrap(raw)
	n, err := s.Export(mem, offset)
	if err != nil {
		return err
	}
	ok, err := s.Verify(mem, offset)
	if err != nil {
		return err
	}

	status := "verified"
	if !ok {
		status = "MISMATCH"
	}
	fmt.Fprintf(w, "exported %s as %s: %d bytes at offset %d, round trip %s\n",
		describe(s), wasmmem.TypeName(s.WitType()), n, offset, status)

	data, err := mem.Read(offset, min(n, dumpLimit))
	if err != nil {
		return err
	}
	fmt.Fprint(w, hex.Dump(data))
	if n > dumpLimit {
		fmt.Fprintf(w, "... %d more bytes\n", n-dumpLimit)
	}
	if !ok {
		return fmt.Errorf("round trip mismatch")
	}
	return nil
}
