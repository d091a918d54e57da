package main

import (
	"fmt"
	"strconv"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/grid"
	"github.com/wippyai/grid/errors"
	"github.com/wippyai/grid/wasmmem"
)

// sheet hides the element type of the array a command works on.
type sheet interface {
	Rank() int
	Extents() grid.Extents
	Element() string
	// WitType is the element's type in linear memory.
	WitType() wit.Type
	// Cell formats the value at c using the checked accessor.
	Cell(c grid.Coord) string
	String() string
	Export(mem wasmmem.Memory, offset uint32) (uint32, error)
	// Verify imports the payload at offset into a fresh array and reports
	// whether it matches.
	Verify(mem wasmmem.Memory, offset uint32) (bool, error)
}

type typedSheet[T comparable] struct {
	arr     *grid.Array[T, grid.Dims]
	elem    string
	wt      wit.Type
	format  func(T) string
	export  func(wasmmem.Memory, uint32, *grid.Array[T, grid.Dims]) (uint32, error)
	importF func(wasmmem.Memory, uint32, *grid.Array[T, grid.Dims]) error
}

func (s *typedSheet[T]) Rank() int             { return s.arr.Rank() }
func (s *typedSheet[T]) Extents() grid.Extents { return s.arr.Extents() }
func (s *typedSheet[T]) Element() string       { return s.elem }
func (s *typedSheet[T]) WitType() wit.Type     { return s.wt }
func (s *typedSheet[T]) String() string        { return s.arr.String() }

func (s *typedSheet[T]) Cell(c grid.Coord) string {
	return s.format(s.arr.Get(c))
}

func (s *typedSheet[T]) Export(mem wasmmem.Memory, offset uint32) (uint32, error) {
	return s.export(mem, offset, s.arr)
}

func (s *typedSheet[T]) Verify(mem wasmmem.Memory, offset uint32) (bool, error) {
	back := grid.NewDefault[T](s.arr.Dims())
	if err := s.importF(mem, offset, back); err != nil {
		return false, err
	}
	for c, v := range s.arr.All() {
		if !sameCell(back.Get(c), v) {
			return false, nil
		}
	}
	return true, nil
}

// sameCell reports whether a and b are equal, treating NaN as equal to NaN
// so float payloads that round-trip bit for bit compare equal.
func sameCell[T comparable](a, b T) bool {
	return a == b || (a != a && b != b)
}

// buildSheet creates the array described by cfg.
func buildSheet(cfg *Config) (s sheet, err error) {
	defer recoverGridError(&err)
	switch cfg.Element {
	case ElemU8:
		return newSheet(cfg, wasmmem.ElemType[uint8](), func(f float64) uint8 { return uint8(int64(f)) },
			func(v uint8) string { return strconv.FormatUint(uint64(v), 10) },
			wasmmem.Export[uint8, grid.Dims], wasmmem.Import[uint8, grid.Dims]), nil
	case ElemS32:
		return newSheet(cfg, wasmmem.ElemType[int32](), func(f float64) int32 { return int32(f) },
			func(v int32) string { return strconv.FormatInt(int64(v), 10) },
			wasmmem.Export[int32, grid.Dims], wasmmem.Import[int32, grid.Dims]), nil
	case ElemF32:
		return newSheet(cfg, wasmmem.ElemType[float32](), func(f float64) float32 { return float32(f) },
			func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) },
			wasmmem.Export[float32, grid.Dims], wasmmem.Import[float32, grid.Dims]), nil
	case ElemBool:
		return newSheet(cfg, wit.Bool{}, func(f float64) bool { return f != 0 },
			strconv.FormatBool,
			wasmmem.ExportBools[grid.Dims], wasmmem.ImportBools[grid.Dims]), nil
	default:
		return nil, errors.Unsupported(errors.PhaseConfig, "element type "+cfg.Element)
	}
}

func newSheet[T comparable](
	cfg *Config,
	wt wit.Type,
	conv func(float64) T,
	format func(T) string,
	export func(wasmmem.Memory, uint32, *grid.Array[T, grid.Dims]) (uint32, error),
	importF func(wasmmem.Memory, uint32, *grid.Array[T, grid.Dims]) error,
) *typedSheet[T] {
	var arr *grid.Array[T, grid.Dims]
	switch cfg.Pattern {
	case PatternFill:
		arr = grid.New(cfg.Dims, conv(cfg.Value))
	case PatternCounter:
		n := cfg.Value
		arr = grid.NewFunc(cfg.Dims, func() T {
			v := conv(n)
			n++
			return v
		})
	default:
		arr = grid.NewDefault[T](cfg.Dims)
		on := conv(cfg.Value)
		for c, p := range arr.Cells() {
			if (c.X+c.Y+c.Z)%2 == 0 {
				*p = on
			}
		}
	}
	return &typedSheet[T]{arr: arr, elem: cfg.Element, wt: wt, format: format, export: export, importF: importF}
}

// probeCell reads c through the checked accessor and converts a bounds
// panic into an error.
func probeCell(s sheet, c grid.Coord) (v string, err error) {
	if !grid.Validated() && !s.Extents().Contains(c) {
		return "", errors.New(errors.PhaseAccess, errors.KindOutOfBounds).
			Value(c).
			Detail("%v is outside %s", c, describe(s)).
			Build()
	}
	defer recoverGridError(&err)
	return s.Cell(c), nil
}

// recoverGridError turns a panic carrying *errors.Error into *err. Any other
// panic is re-raised.
func recoverGridError(err *error) {
	r := recover()
	if r == nil {
		return
	}
	gerr, ok := r.(*errors.Error)
	if !ok {
		panic(r)
	}
	*err = gerr
}

func describe(s sheet) string {
	e := s.Extents()
	if s.Rank() == 2 {
		return fmt.Sprintf("%s %d x %d", s.Element(), e.X, e.Y)
	}
	return fmt.Sprintf("%s %d x %d x %d", s.Element(), e.X, e.Y, e.Z)
}
