package grid

import (
	"fmt"
	"math"

	"github.com/wippyai/grid/errors"
	"github.com/wippyai/grid/internal/coerce"
)

// Coord is the canonical cell position. Two-axis arrays use Z == 0.
type Coord struct {
	X, Y, Z int
}

// Coord returns c, making Coord an Indexer.
func (c Coord) Coord() Coord { return c }

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// Indexer is any coordinate representation that converts to a Coord.
type Indexer interface {
	Coord() Coord
}

// XY returns the two-axis coordinate (x, y, 0).
func XY(x, y int) Coord { return Coord{X: x, Y: y} }

// XYZ returns the three-axis coordinate (x, y, z).
func XYZ(x, y, z int) Coord { return Coord{X: x, Y: y, Z: z} }

// Integer is every Go integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// CoordOf converts integer components of any width. Negative components keep
// their sign and unsigned components above math.MaxInt become -1, so neither
// can slip past a bounds check by wrapping.
func CoordOf[I Integer](x, y, z I) Coord {
	return Coord{X: toIndex(x), Y: toIndex(y), Z: toIndex(z)}
}

// CoordOf2 is CoordOf for two-axis positions.
func CoordOf2[I Integer](x, y I) Coord {
	return Coord{X: toIndex(x), Y: toIndex(y)}
}

func toIndex[I Integer](v I) int {
	if v > 0 && uint64(v) > math.MaxInt {
		return -1
	}
	return int(v)
}

// Vec2 is a small two-component vector usable as an index.
type Vec2[I Integer] struct {
	X, Y I
}

func (v Vec2[I]) Coord() Coord { return CoordOf2(v.X, v.Y) }

// Vec3 is a small three-component vector usable as an index.
type Vec3[I Integer] struct {
	X, Y, Z I
}

func (v Vec3[I]) Coord() Coord { return CoordOf(v.X, v.Y, v.Z) }

// Vec4 is a four-component vector; W is ignored when indexing.
type Vec4[I Integer] struct {
	X, Y, Z, W I
}

func (v Vec4[I]) Coord() Coord { return CoordOf(v.X, v.Y, v.Z) }

// ParseCoord builds a Coord from two or three dynamically typed components,
// as decoded from YAML, JSON, flags or environment variables.
func ParseCoord(values ...any) (Coord, error) {
	if len(values) != 2 && len(values) != 3 {
		return Coord{}, errors.New(errors.PhaseAccess, errors.KindInvalidInput).
			Value(values).
			Detail("coordinate needs 2 or 3 components, got %d", len(values)).
			Build()
	}
	var parts [3]int
	for i, v := range values {
		n, ok := coerce.ToIndex(v)
		if !ok {
			return Coord{}, errors.New(errors.PhaseAccess, errors.KindInvalidInput).
				Axis(axisNames[i]).
				Value(v).
				Detail("component %v is not a non-negative integer", v).
				Build()
		}
		parts[i] = n
	}
	return Coord{X: parts[0], Y: parts[1], Z: parts[2]}, nil
}
