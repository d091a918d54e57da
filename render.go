package grid

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// String renders the array for debugging: a header with the extents, one
// bracketed line per row, and for three axes one block per z plane.
//
//	Array2D [3 x 2]:
//	[ 1 2 3 ]
//	[ 4 5 6 ]
//
// Cells of string kind are quoted so blanks and empty strings stay visible.
func (a *Array[T, D]) String() string {
	e := a.dims.Extents()
	rank := a.dims.Rank()

	var b strings.Builder
	b.WriteString("Array")
	b.WriteString(strconv.Itoa(rank))
	b.WriteString("D [")
	b.WriteString(e.format(rank))
	b.WriteString("]:\n")

	if len(a.data) != e.Len() {
		b.WriteString("(released)\n")
		return b.String()
	}

	verb := "%v "
	if reflect.TypeFor[T]().Kind() == reflect.String {
		verb = "%q "
	}
	for z := 0; z < e.Z; z++ {
		if rank > 2 {
			fmt.Fprintf(&b, "z=%d:\n", z)
		}
		for y := 0; y < e.Y; y++ {
			b.WriteString("[ ")
			for _, v := range a.Row(y, z) {
				fmt.Fprintf(&b, verb, v)
			}
			b.WriteString("]\n")
		}
	}
	return b.String()
}
