// Package wasmmem copies grid arrays into and out of WebAssembly linear memory.
//
// Guests see an array as a packed little-endian sequence of cells in the
// grid's canonical order (x fastest, then y, then z), the same layout a
// Canonical ABI list<T> payload uses:
//
//	Go type         WIT type  Size  Alignment
//	─────────────────────────────────────────
//	bool            bool      1     1
//	uint8/int8      u8/s8     1     1
//	uint16/int16    u16/s16   2     2
//	uint32/int32    u32/s32   4     4
//	uint64/int64    u64/s64   8     8
//	float32         f32       4     4
//	float64         f64       8     8
//
// Only the cell payload crosses the boundary; dimensions are agreed out of
// band, and Import writes into an existing array rather than building one.
//
//	mem := wasmmem.Wrap(mod.ExportedMemory("memory"))
//	n, err := wasmmem.Export(mem, 1024, heights)
package wasmmem
