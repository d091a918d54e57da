package grid

import "iter"

// Values yields every cell in canonical order: x fastest, then y, then z.
// The sequence can be ranged over any number of times.
func (a *Array[T, D]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields each cell with its coordinate in canonical order.
func (a *Array[T, D]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		e := a.dims.Extents()
		i := 0
		for z := 0; z < e.Z; z++ {
			for y := 0; y < e.Y; y++ {
				for x := 0; x < e.X; x++ {
					if !yield(Coord{X: x, Y: y, Z: z}, a.data[i]) {
						return
					}
					i++
				}
			}
		}
	}
}

// Ptrs yields a pointer to every cell in canonical order, for in-place updates.
func (a *Array[T, D]) Ptrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range a.data {
			if !yield(&a.data[i]) {
				return
			}
		}
	}
}

// Cells yields each cell's coordinate and pointer in canonical order.
func (a *Array[T, D]) Cells() iter.Seq2[Coord, *T] {
	return func(yield func(Coord, *T) bool) {
		e := a.dims.Extents()
		i := 0
		for z := 0; z < e.Z; z++ {
			for y := 0; y < e.Y; y++ {
				for x := 0; x < e.X; x++ {
					if !yield(Coord{X: x, Y: y, Z: z}, &a.data[i]) {
						return
					}
					i++
				}
			}
		}
	}
}
