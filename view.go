package grid

import (
	"iter"

	"github.com/wippyai/grid/errors"
)

// View reads an array through a conversion to U. It borrows the array
// without copying; converted values are computed on every access. The
// conversion must be total for every T the array may hold.
type View[T, U any, D Dims] struct {
	src *Array[T, D]
	to  func(T) U
}

// NewView returns a read-only view of a presenting cells as U.
func NewView[T, U any, D Dims](a *Array[T, D], to func(T) U) View[T, U, D] {
	if a == nil {
		fatal(errors.NilPointer(errors.PhaseView, "*grid.Array["+typeName[T]()+"]"))
	}
	if to == nil {
		fatal(errors.NilPointer(errors.PhaseView, "func("+typeName[T]()+") "+typeName[U]()))
	}
	return View[T, U, D]{src: a, to: to}
}

// Get returns the converted value at c.
func (v View[T, U, D]) Get(c Coord) U { return v.to(v.src.Get(c)) }

// At is Get for any coordinate representation.
func (v View[T, U, D]) At(ix Indexer) U { return v.to(v.src.Get(ix.Coord())) }

// Elem returns the stored, unconverted value at c.
func (v View[T, U, D]) Elem(c Coord) T { return v.src.Get(c) }

// Dims returns the source array's dimension strategy.
func (v View[T, U, D]) Dims() D { return v.src.Dims() }

// Extents returns the source array's extents.
func (v View[T, U, D]) Extents() Extents { return v.src.Extents() }

// Values yields converted cells in canonical order.
func (v View[T, U, D]) Values() iter.Seq[U] {
	return func(yield func(U) bool) {
		for t := range v.src.Values() {
			if !yield(v.to(t)) {
				return
			}
		}
	}
}

// MutView reads and writes an array through a pair of conversions. While a
// MutView is in use the caller must not touch the array by any other path.
type MutView[T, U any, D Dims] struct {
	src  *Array[T, D]
	to   func(T) U
	from func(U) T
}

// NewMutView returns a read-write view of a presenting cells as U.
func NewMutView[T, U any, D Dims](a *Array[T, D], to func(T) U, from func(U) T) MutView[T, U, D] {
	if a == nil {
		fatal(errors.NilPointer(errors.PhaseView, "*grid.Array["+typeName[T]()+"]"))
	}
	if to == nil || from == nil {
		fatal(errors.New(errors.PhaseView, errors.KindNilPointer).
			GoType(typeName[T]()+" <-> "+typeName[U]()).
			Detail("both conversions are required").
			Build())
	}
	return MutView[T, U, D]{src: a, to: to, from: from}
}

// Get returns the converted value at c.
func (v MutView[T, U, D]) Get(c Coord) U { return v.to(v.src.Get(c)) }

// At is Get for any coordinate representation.
func (v MutView[T, U, D]) At(ix Indexer) U { return v.to(v.src.Get(ix.Coord())) }

// Elem returns the stored, unconverted value at c.
func (v MutView[T, U, D]) Elem(c Coord) T { return v.src.Get(c) }

// Ptr returns a pointer to the stored value at c.
func (v MutView[T, U, D]) Ptr(c Coord) *T { return v.src.Ptr(c) }

// Set converts value to T and stores it at c.
func (v MutView[T, U, D]) Set(c Coord, value U) { v.src.Set(c, v.from(value)) }

// Put is Set for any coordinate representation.
func (v MutView[T, U, D]) Put(ix Indexer, value U) { v.src.Set(ix.Coord(), v.from(value)) }

// Fill sets every cell of the source to value.
func (v MutView[T, U, D]) Fill(value T) { v.src.Fill(value) }

// Dims returns the source array's dimension strategy.
func (v MutView[T, U, D]) Dims() D { return v.src.Dims() }

// Extents returns the source array's extents.
func (v MutView[T, U, D]) Extents() Extents { return v.src.Extents() }

// ReadOnly returns a View sharing this view's source and forward conversion.
func (v MutView[T, U, D]) ReadOnly() View[T, U, D] {
	return View[T, U, D]{src: v.src, to: v.to}
}
