package grid

import (
	"reflect"
	"slices"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/grid/errors"
)

// Array is a fixed-size grid of T stored in one contiguous buffer.
// D decides how extents are resolved; the element layout is the same for
// every D. The buffer length equals Extents().Len() for the array's lifetime.
//
// Array does no locking. Any number of goroutines may read concurrently, but
// writes must be externally serialized against all other access.
type Array[T any, D Dims] struct {
	data []T
	dims D
}

// Array2D is an array with runtime two-axis extents.
type Array2D[T any] = Array[T, Dims2]

// Array3D is an array with runtime three-axis extents.
type Array3D[T any] = Array[T, Dims3]

// Validated reports whether checked accessors verify coordinates in this build.
func Validated() bool { return validate }

// New returns an array with every cell set to value. Cells receive copies
// made by assignment, so pointer-like values share what they point to.
// New panics with a construction error if any extent is not positive.
func New[T any, D Dims](dims D, value T) *Array[T, D] {
	data := make([]T, mustLen(dims))
	for i := range data {
		data[i] = value
	}
	return build(dims, data, "filled")
}

// NewFunc returns an array whose cells are produced by gen, called once per
// cell in linear order.
func NewFunc[T any, D Dims](dims D, gen func() T) *Array[T, D] {
	if gen == nil {
		fatal(errors.NilPointer(errors.PhaseConstruct, "func() "+typeName[T]()))
	}
	data := make([]T, mustLen(dims))
	for i := range data {
		data[i] = gen()
	}
	return build(dims, data, "generated")
}

// NewDefault returns an array of zero values.
func NewDefault[T any, D Dims](dims D) *Array[T, D] {
	return build(dims, make([]T, mustLen(dims)), "default")
}

// Filled2 returns an x by y array filled with value.
func Filled2[T any](x, y int, value T) *Array2D[T] {
	return New(Dims2{X: x, Y: y}, value)
}

// Filled3 returns an x by y by z array filled with value.
func Filled3[T any](x, y, z int, value T) *Array3D[T] {
	return New(Dims3{X: x, Y: y, Z: z}, value)
}

// Generate2 returns an x by y array populated by gen.
func Generate2[T any](x, y int, gen func() T) *Array2D[T] {
	return NewFunc(Dims2{X: x, Y: y}, gen)
}

// Generate3 returns an x by y by z array populated by gen.
func Generate3[T any](x, y, z int, gen func() T) *Array3D[T] {
	return NewFunc(Dims3{X: x, Y: y, Z: z}, gen)
}

// Default2 returns an x by y array of zero values.
func Default2[T any](x, y int) *Array2D[T] {
	return NewDefault[T](Dims2{X: x, Y: y})
}

// Default3 returns an x by y by z array of zero values.
func Default3[T any](x, y, z int) *Array3D[T] {
	return NewDefault[T](Dims3{X: x, Y: y, Z: z})
}

func mustLen(dims Dims) int {
	e := dims.Extents()
	n, axis, ok := e.checkedLen()
	if ok {
		return n
	}
	if axis < 0 {
		fatal(errors.Overflow(errors.PhaseConstruct, e.format(3), "int"))
	}
	fatal(errors.ZeroExtent(axisNames[axis], e.axis(axis)))
	return 0
}

func build[T any, D Dims](dims D, data []T, mode string) *Array[T, D] {
	if ce := Logger().Check(zap.DebugLevel, "array created"); ce != nil {
		ce.Write(
			zap.String("mode", mode),
			zap.Int("rank", dims.Rank()),
			zap.String("extents", dims.Extents().format(dims.Rank())),
			zap.String("elem", typeName[T]()),
		)
	}
	return &Array[T, D]{data: data, dims: dims}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// fatal logs err and panics with it.
func fatal(err *errors.Error) {
	Logger().Error("grid fatal error",
		zap.String("phase", string(err.Phase)),
		zap.String("kind", string(err.Kind)),
		zap.String("axis", err.Axis),
		zap.Error(err),
	)
	panic(err)
}

// Dims returns the dimension strategy the array was built with.
func (a *Array[T, D]) Dims() D { return a.dims }

// Extents returns the size of every axis.
func (a *Array[T, D]) Extents() Extents { return a.dims.Extents() }

// Rank returns the number of meaningful axes.
func (a *Array[T, D]) Rank() int { return a.dims.Rank() }

// TotalLen returns the number of cells.
func (a *Array[T, D]) TotalLen() int { return a.dims.Extents().Len() }

// offset validates c when validation is compiled in and maps it to the buffer.
func (a *Array[T, D]) offset(c Coord) int {
	e := a.dims.Extents()
	if validate && !e.Contains(c) {
		a.outOfBounds(c, e)
	}
	return e.Offset(c)
}

func (a *Array[T, D]) outOfBounds(c Coord, e Extents) {
	idx := [3]int{c.X, c.Y, c.Z}
	axis := 0
	for i := range idx {
		if uint(idx[i]) >= uint(e.axis(i)) {
			axis = i
			break
		}
	}
	err := errors.OutOfBounds(errors.PhaseAccess, axisNames[axis], idx[axis], e.axis(axis))
	err.GoType = typeName[T]()
	err.Value = c
	err.Detail += " at " + c.String() + " in [" + e.format(a.dims.Rank()) + "]"
	fatal(err)
}

// Get returns the value at c.
func (a *Array[T, D]) Get(c Coord) T {
	return a.data[a.offset(c)]
}

// Ptr returns a pointer to the cell at c. The pointer stays valid for the
// array's lifetime since the buffer never moves.
func (a *Array[T, D]) Ptr(c Coord) *T {
	return &a.data[a.offset(c)]
}

// Set stores value at c.
func (a *Array[T, D]) Set(c Coord, value T) {
	a.data[a.offset(c)] = value
}

// At is Get for any coordinate representation.
func (a *Array[T, D]) At(ix Indexer) T {
	return a.Get(ix.Coord())
}

// Put is Set for any coordinate representation.
func (a *Array[T, D]) Put(ix Indexer, value T) {
	a.Set(ix.Coord(), value)
}

// PtrUnchecked returns a pointer to the cell at c without validating c,
// in every build. The caller must have proven c is inside Extents();
// otherwise the result is undefined and may corrupt memory.
func (a *Array[T, D]) PtrUnchecked(c Coord) *T {
	var zero T
	off := a.dims.Extents().Offset(c)
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(a.data)), uintptr(off)*unsafe.Sizeof(zero)))
}

// GetUnchecked is Get without coordinate validation. See PtrUnchecked.
func (a *Array[T, D]) GetUnchecked(c Coord) T {
	return *a.PtrUnchecked(c)
}

// SetUnchecked is Set without coordinate validation. See PtrUnchecked.
func (a *Array[T, D]) SetUnchecked(c Coord, value T) {
	*a.PtrUnchecked(c) = value
}

// Row returns the contiguous run of cells with the given y and z.
// The slice aliases the array and cannot be appended into the next row.
func (a *Array[T, D]) Row(y, z int) []T {
	start := a.offset(Coord{Y: y, Z: z})
	end := start + a.dims.Extents().X
	return a.data[start:end:end]
}

// Fill sets every cell to value.
func (a *Array[T, D]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// CopyFrom overwrites every cell with the matching cell of src. Both arrays
// must have identical extents; a mismatch panics in every build.
func (a *Array[T, D]) CopyFrom(src *Array[T, D]) {
	if src == nil {
		fatal(errors.NilPointer(errors.PhaseCopy, "*grid.Array["+typeName[T]()+"]"))
	}
	want, got := a.dims.Extents(), src.dims.Extents()
	if want != got {
		rank := a.dims.Rank()
		fatal(errors.DimMismatch(errors.PhaseCopy, "["+want.format(rank)+"]", "["+got.format(src.dims.Rank())+"]"))
	}
	copy(a.data, src.data)
}

// Clone returns an independent copy of the array.
func (a *Array[T, D]) Clone() *Array[T, D] {
	return &Array[T, D]{data: slices.Clone(a.data), dims: a.dims}
}

// Data returns the linear buffer in canonical order. The slice aliases the
// array; writes through it are writes to the array.
func (a *Array[T, D]) Data() []T {
	return a.data
}

// Release hands the buffer to the caller in canonical order and leaves the
// array empty. The array must not be used afterwards.
func (a *Array[T, D]) Release() []T {
	data := a.data
	a.data = nil
	return data
}
