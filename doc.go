// Package grid provides contiguous multi-dimensional arrays for Go.
//
// An Array stores its cells in one flat buffer and separates "how many cells
// along which axes" (a Dims strategy) from "how cells are stored and reached"
// (one buffer, one linearization formula). Converting views re-expose an
// existing array under another element type without copying it.
//
// # Architecture Overview
//
//	grid/                Array engine, dimension strategies, coordinates, views
//	├── errors/          Structured error values carried by grid panics
//	├── wasmmem/         Copy scalar arrays into and out of WASM linear memory
//	├── internal/coerce/ Numeric coercion for dynamically typed coordinates
//	└── cmd/gridview/    Dump and browse arrays from the terminal
//
// # Quick Start
//
//	a := grid.Filled2(3, 3, 7)
//	a.Set(grid.XY(1, 2), 9)
//	fmt.Println(a.Get(grid.XY(2, 2))) // 7
//
//	for c, v := range a.All() {
//	    fmt.Println(c, v)
//	}
//
// # Dimension Strategies
//
// Extents are either stored in the array or encoded in its type:
//
//	Dims2{X, Y}, Dims3{X, Y, Z}      sizes chosen at run time
//	Fixed2[X, Y], Fixed3[X, Y, Z]     sizes named by StaticExtent types, zero bytes
//
//	chunk := grid.NewDefault[uint8](grid.Fixed3[grid.E16, grid.E16, grid.E16]{})
//
// Both behave identically. Every extent must be positive; construction panics
// otherwise, in every build.
//
// # Memory Layout
//
// Cell (x, y, z) lives at offset x + y*X + z*X*Y. Loops that run x innermost,
// then y, then z touch memory sequentially; Values, All, Ptrs and Cells
// iterate in that order.
//
// # Coordinates
//
// Coord is the single coordinate type. Other representations convert at the
// boundary: CoordOf and CoordOf2 take any integer width, Vec2/Vec3/Vec4
// implement Indexer, and ParseCoord accepts decoded config values. Negative
// components are never wrapped into large positive ones.
//
// # Bounds Checking
//
// Get, Set, Ptr, At, Put and Row validate coordinates and panic with an
// *errors.Error of kind out_of_bounds. Building with -tags gridnocheck removes
// that validation; an out-of-range coordinate then has unspecified results.
// GetUnchecked, SetUnchecked and PtrUnchecked never validate: the caller must
// prove the coordinate is in range, or behaviour is undefined.
//
// # Views
//
//	bytes := grid.Filled2[uint8](4, 4, 0)
//	flags := grid.NewMutView(bytes, grid.ByteToBool, grid.BoolToByte)
//	flags.Set(grid.XY(1, 1), true) // stores 1
//
// Views hold a pointer to their source and never resize it. A MutView expects
// exclusive use of the source for as long as it is used.
//
// # Thread Safety
//
// Nothing in this package locks. Concurrent readers are fine; a writer must
// be serialized against every other reader and writer by the caller.
package grid
