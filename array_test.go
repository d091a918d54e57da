package grid

import (
	"testing"

	"github.com/wippyai/grid/errors"
)

func TestFilled_EveryCellEqualsValue(t *testing.T) {
	tests := []struct {
		name string
		dims Dims3
	}{
		{"1x1x1", Dims3{1, 1, 1}},
		{"3x1x2", Dims3{3, 1, 2}},
		{"4x5x6", Dims3{4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.dims, int16(-3))
			if a.TotalLen() != tt.dims.X*tt.dims.Y*tt.dims.Z {
				t.Fatalf("TotalLen() = %d", a.TotalLen())
			}
			if len(a.Data()) != a.TotalLen() {
				t.Fatalf("buffer length %d != TotalLen %d", len(a.Data()), a.TotalLen())
			}
			for c, v := range a.All() {
				if v != -3 {
					t.Errorf("cell %v = %d, want -3", c, v)
				}
			}
		})
	}
}

func TestFilled2_Scenario(t *testing.T) {
	a := Filled2(3, 3, 7)

	count := 0
	for range a.Values() {
		count++
	}
	if count != 9 {
		t.Errorf("iteration count = %d, want 9", count)
	}
	if got := a.Get(XY(2, 2)); got != 7 {
		t.Errorf("Get(2,2) = %d, want 7", got)
	}
}

func TestDims2_ConstructionReportsDimensions(t *testing.T) {
	a := Default2[int](3, 4)
	if got := a.Dims(); got != (Dims2{X: 3, Y: 4}) {
		t.Errorf("Dims() = %+v, want {3 4}", got)
	}
	if a.Rank() != 2 {
		t.Errorf("Rank() = %d, want 2", a.Rank())
	}
	for v := range a.Values() {
		if v != 0 {
			t.Fatalf("default cell = %d, want 0", v)
		}
	}
}

func TestConstruction_ZeroExtentRejected(t *testing.T) {
	tests := []struct {
		name  string
		build func()
		axis  string
	}{
		{"filled 0x5", func() { Filled2(0, 5, 1) }, "x"},
		{"filled 5x0", func() { Filled2(5, 0, 1) }, "y"},
		{"default z=0", func() { Default3[byte](2, 2, 0) }, "z"},
		{"generated negative", func() { Generate2(-1, 2, func() int { return 0 }) }, "x"},
		{"fixed zero extent", func() { NewDefault[int](Fixed2[E4, e0]{}) }, "y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mustPanicWith(t, errors.PhaseConstruct, errors.KindZeroExtent, tt.build)
			if err.Axis != tt.axis {
				t.Errorf("Axis = %q, want %q", err.Axis, tt.axis)
			}
		})
	}
}

func TestConstruction_Overflow(t *testing.T) {
	mustPanicWith(t, errors.PhaseConstruct, errors.KindOverflow, func() {
		Default3[byte](1<<30, 1<<30, 1<<30)
	})
}

func TestConstruction_NilGenerator(t *testing.T) {
	mustPanicWith(t, errors.PhaseConstruct, errors.KindNilPointer, func() {
		Generate2[int](2, 2, nil)
	})
}

func TestNewFunc_CallsGeneratorInLinearOrder(t *testing.T) {
	n := 0
	a := Generate3(3, 2, 2, func() int {
		n++
		return n
	})
	if n != 12 {
		t.Fatalf("generator called %d times, want 12", n)
	}
	want := 1
	for c, v := range a.All() {
		if v != want {
			t.Errorf("cell %v = %d, want %d", c, v, want)
		}
		want++
	}
	if got := a.Get(XYZ(1, 0, 0)); got != 2 {
		t.Errorf("x varies fastest: Get(1,0,0) = %d, want 2", got)
	}
	if got := a.Get(XYZ(0, 1, 0)); got != 4 {
		t.Errorf("Get(0,1,0) = %d, want 4", got)
	}
	if got := a.Get(XYZ(0, 0, 1)); got != 7 {
		t.Errorf("Get(0,0,1) = %d, want 7", got)
	}
}

func TestSetGet_OtherCellsUnchanged(t *testing.T) {
	a := Filled3(3, 3, 3, 0)
	target := XYZ(1, 2, 0)
	a.Set(target, 42)

	if got := a.Get(target); got != 42 {
		t.Fatalf("Get(%v) = %d, want 42", target, got)
	}
	for c, v := range a.All() {
		if c != target && v != 0 {
			t.Errorf("cell %v = %d, want 0", c, v)
		}
	}
}

func TestPtr_WritesThrough(t *testing.T) {
	a := Filled2(2, 2, "a")
	*a.Ptr(XY(1, 0)) = "b"
	if got := a.Get(XY(1, 0)); got != "b" {
		t.Errorf("Get after Ptr write = %q, want b", got)
	}
}

func TestIndexer_Forms(t *testing.T) {
	a := Filled3(4, 4, 4, 0)

	a.Put(Vec3[int8]{1, 2, 3}, 5)
	a.Put(Vec4[int32]{3, 2, 1, 99}, 6)
	a.Put(CoordOf[uint16](0, 1, 2), 7)

	if got := a.At(XYZ(1, 2, 3)); got != 5 {
		t.Errorf("Vec3 put: got %d", got)
	}
	if got := a.At(Vec3[uint8]{3, 2, 1}); got != 6 {
		t.Errorf("Vec4 put: got %d", got)
	}
	if got := a.Get(XYZ(0, 1, 2)); got != 7 {
		t.Errorf("CoordOf put: got %d", got)
	}

	b := Filled2(3, 3, 0)
	b.Put(Vec2[int64]{2, 1}, 8)
	if got := b.Get(XY(2, 1)); got != 8 {
		t.Errorf("Vec2 put: got %d", got)
	}
}

func TestCheckedAccess_OutOfBounds(t *testing.T) {
	requireValidated(t)

	a := Default2[int](2, 2)

	tests := []struct {
		name string
		fn   func()
		axis string
	}{
		{"get (2,2)", func() { a.Get(XY(2, 2)) }, "x"},
		{"get y", func() { a.Get(XY(0, 2)) }, "y"},
		{"get z on 2D", func() { a.Get(XYZ(0, 0, 1)) }, "z"},
		{"set negative", func() { a.Set(XY(-1, 0), 1) }, "x"},
		{"ptr", func() { a.Ptr(XY(0, 5)) }, "y"},
		{"wrapped int8", func() { a.At(Vec2[int8]{-1, 0}) }, "x"},
		{"huge uint64", func() { a.At(Vec2[uint64]{1 << 63, 0}) }, "x"},
		{"row", func() { a.Row(2, 0) }, "y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mustPanicWith(t, errors.PhaseAccess, errors.KindOutOfBounds, tt.fn)
			if err.Axis != tt.axis {
				t.Errorf("Axis = %q, want %q", err.Axis, tt.axis)
			}
		})
	}
}

func TestCheckedAccess_ErrorDescribesCell(t *testing.T) {
	requireValidated(t)

	a := Default3[uint16](2, 3, 4)
	err := mustPanicWith(t, errors.PhaseAccess, errors.KindOutOfBounds, func() { a.Get(XYZ(1, 3, 0)) })

	if err.Axis != "y" {
		t.Errorf("Axis = %q, want y", err.Axis)
	}
	if err.GoType != "uint16" {
		t.Errorf("GoType = %q, want uint16", err.GoType)
	}
	if err.Value != XYZ(1, 3, 0) {
		t.Errorf("Value = %v, want (1, 3, 0)", err.Value)
	}
	want := "index 3 out of bounds (extent 3) at (1, 3, 0) in [2 x 3 x 4]"
	if err.Detail != want {
		t.Errorf("Detail = %q, want %q", err.Detail, want)
	}
}

func TestUncheckedAccess_InBounds(t *testing.T) {
	a := Filled3(2, 3, 4, 1.5)
	c := XYZ(1, 2, 3)

	a.SetUnchecked(c, 9.25)
	if got := a.GetUnchecked(c); got != 9.25 {
		t.Errorf("GetUnchecked = %v, want 9.25", got)
	}
	if got := a.Get(c); got != 9.25 {
		t.Errorf("Get after SetUnchecked = %v, want 9.25", got)
	}
	if a.PtrUnchecked(c) != a.Ptr(c) {
		t.Error("PtrUnchecked and Ptr disagree")
	}
	if a.PtrUnchecked(XYZ(0, 0, 0)) != &a.Data()[0] {
		t.Error("PtrUnchecked(0,0,0) is not the first cell")
	}
}

func TestFill(t *testing.T) {
	a := Generate2(4, 3, func() int { return 1 })
	a.Fill(8)
	if len(a.Data()) != a.TotalLen() {
		t.Fatal("Fill changed the buffer length")
	}
	for v := range a.Values() {
		if v != 8 {
			t.Fatalf("cell = %d after Fill(8)", v)
		}
	}
}

func TestCopyFrom(t *testing.T) {
	n := 0
	src := Generate3(2, 3, 2, func() int { n++; return n })
	dst := Default3[int](2, 3, 2)

	dst.CopyFrom(src)
	if dst.TotalLen() != src.TotalLen() || len(dst.Data()) != dst.TotalLen() {
		t.Fatal("CopyFrom changed the buffer length")
	}
	for c, v := range src.All() {
		if got := dst.Get(c); got != v {
			t.Errorf("cell %v = %d, want %d", c, got, v)
		}
	}

	// buffers stay independent
	src.Set(XYZ(0, 0, 0), -1)
	if dst.Get(XYZ(0, 0, 0)) == -1 {
		t.Error("CopyFrom aliased the source buffer")
	}
}

func TestCopyFrom_MismatchRejected(t *testing.T) {
	a := Default2[int](2, 2)
	b := Default2[int](3, 2)

	err := mustPanicWith(t, errors.PhaseCopy, errors.KindDimMismatch, func() { a.CopyFrom(b) })
	if err.Detail == "" {
		t.Error("mismatch error should describe both shapes")
	}

	mustPanicWith(t, errors.PhaseCopy, errors.KindNilPointer, func() { a.CopyFrom(nil) })
}

func TestFixedDims_BehaveLikeRuntimeDims(t *testing.T) {
	fixed := NewDefault[int](Fixed3[E2, E3, E4]{})
	runtime := Default3[int](2, 3, 4)

	if fixed.Extents() != runtime.Extents() {
		t.Fatalf("extents differ: %+v vs %+v", fixed.Extents(), runtime.Extents())
	}
	for c, p := range fixed.Cells() {
		*p = c.X*100 + c.Y*10 + c.Z
	}
	for c, p := range runtime.Cells() {
		*p = c.X*100 + c.Y*10 + c.Z
	}
	for i, v := range fixed.Data() {
		if runtime.Data()[i] != v {
			t.Fatalf("offset %d: fixed %d, runtime %d", i, v, runtime.Data()[i])
		}
	}
}

func TestRow(t *testing.T) {
	n := 0
	a := Generate3(3, 2, 2, func() int { n++; return n })

	row := a.Row(1, 1)
	want := []int{10, 11, 12}
	if len(row) != len(want) {
		t.Fatalf("Row len = %d, want 3", len(row))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("Row[%d] = %d, want %d", i, row[i], want[i])
		}
	}
	if cap(row) != 3 {
		t.Errorf("Row cap = %d, want 3", cap(row))
	}

	row[0] = 0
	if a.Get(XYZ(0, 1, 1)) != 0 {
		t.Error("Row should alias the array")
	}
}

func TestClone_Independent(t *testing.T) {
	a := Filled2(2, 2, 1)
	b := a.Clone()
	b.Set(XY(0, 0), 2)
	if a.Get(XY(0, 0)) != 1 {
		t.Error("Clone shares storage with the original")
	}
	if b.Dims() != a.Dims() {
		t.Error("Clone lost dimensions")
	}
}

func TestRelease(t *testing.T) {
	n := 0
	a := Generate2(2, 2, func() int { n++; return n })
	data := a.Release()

	want := []int{1, 2, 3, 4}
	if len(data) != len(want) {
		t.Fatalf("Release len = %d", len(data))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %d, want %d", i, data[i], want[i])
		}
	}
	if a.Data() != nil {
		t.Error("array still holds its buffer after Release")
	}
}
