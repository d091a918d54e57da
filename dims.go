package grid

import (
	"math"
	"strconv"
	"strings"
)

var axisNames = [3]string{"x", "y", "z"}

// Extents holds the size of each axis. Axes beyond an array's rank are 1.
type Extents struct {
	X, Y, Z int
}

// Len returns the number of cells, X*Y*Z.
func (e Extents) Len() int {
	return e.X * e.Y * e.Z
}

// Contains reports whether every component of c lies in [0, extent).
func (e Extents) Contains(c Coord) bool {
	return uint(c.X) < uint(e.X) && uint(c.Y) < uint(e.Y) && uint(c.Z) < uint(e.Z)
}

// Offset maps c to its position in the linear buffer: x + y*X + z*X*Y.
// Iterating x innermost, then y, then z visits offsets sequentially.
func (e Extents) Offset(c Coord) int {
	return c.X + c.Y*e.X + c.Z*e.X*e.Y
}

// CoordOf is the inverse of Offset for offsets in [0, Len()).
func (e Extents) CoordOf(offset int) Coord {
	plane := e.X * e.Y
	rem := offset % plane
	return Coord{X: rem % e.X, Y: rem / e.X, Z: offset / plane}
}

func (e Extents) axis(i int) int {
	switch i {
	case 0:
		return e.X
	case 1:
		return e.Y
	default:
		return e.Z
	}
}

// format renders the first rank extents as "X x Y[ x Z]".
func (e Extents) format(rank int) string {
	if rank < 1 {
		rank = 1
	}
	if rank > 3 {
		rank = 3
	}
	parts := make([]string, rank)
	for i := range parts {
		parts[i] = strconv.Itoa(e.axis(i))
	}
	return strings.Join(parts, " x ")
}

// checkedLen validates extents for construction and returns their product.
// ok is false with the offending axis when an extent is not positive, and
// with axis -1 when the product overflows int.
func (e Extents) checkedLen() (n int, axis int, ok bool) {
	n = 1
	for i := 0; i < 3; i++ {
		size := e.axis(i)
		if size <= 0 {
			return 0, i, false
		}
		if n > math.MaxInt/size {
			return 0, -1, false
		}
		n *= size
	}
	return n, 0, true
}

// Dims supplies the per-axis extents of an array. Implementations either
// store their sizes (Dims2, Dims3) or derive them from type parameters
// (Fixed2, Fixed3) and occupy no memory.
type Dims interface {
	// Rank is the number of meaningful axes, 2 or 3.
	Rank() int
	// Extents returns the size of every axis.
	Extents() Extents
}

// Dims2 is a runtime-sized two-axis shape.
type Dims2 struct {
	X, Y int
}

func (Dims2) Rank() int { return 2 }

func (d Dims2) Extents() Extents { return Extents{X: d.X, Y: d.Y, Z: 1} }

// Dims3 is a runtime-sized three-axis shape.
type Dims3 struct {
	X, Y, Z int
}

func (Dims3) Rank() int { return 3 }

func (d Dims3) Extents() Extents { return Extents{X: d.X, Y: d.Y, Z: d.Z} }

// StaticExtent is implemented by zero-size marker types that name an axis
// size at compile time. Declare more with
//
//	type E24 struct{}
//
//	func (E24) Extent() int { return 24 }
type StaticExtent interface {
	Extent() int
}

type (
	E1   struct{}
	E2   struct{}
	E3   struct{}
	E4   struct{}
	E8   struct{}
	E16  struct{}
	E32  struct{}
	E64  struct{}
	E128 struct{}
	E256 struct{}
)

func (E1) Extent() int   { return 1 }
func (E2) Extent() int   { return 2 }
func (E3) Extent() int   { return 3 }
func (E4) Extent() int   { return 4 }
func (E8) Extent() int   { return 8 }
func (E16) Extent() int  { return 16 }
func (E32) Extent() int  { return 32 }
func (E64) Extent() int  { return 64 }
func (E128) Extent() int { return 128 }
func (E256) Extent() int { return 256 }

// Fixed2 is a two-axis shape whose extents are part of its type.
// Fixed2[E16, E16]{} describes a 16x16 grid and has size zero.
type Fixed2[X, Y StaticExtent] struct{}

func (Fixed2[X, Y]) Rank() int { return 2 }

func (Fixed2[X, Y]) Extents() Extents {
	var x X
	var y Y
	return Extents{X: x.Extent(), Y: y.Extent(), Z: 1}
}

// Fixed3 is a three-axis shape whose extents are part of its type.
type Fixed3[X, Y, Z StaticExtent] struct{}

func (Fixed3[X, Y, Z]) Rank() int { return 3 }

func (Fixed3[X, Y, Z]) Extents() Extents {
	var x X
	var y Y
	var z Z
	return Extents{X: x.Extent(), Y: y.Extent(), Z: z.Extent()}
}
