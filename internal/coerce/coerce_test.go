package coerce

import (
	"math"
	"testing"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		want   int
		wantOK bool
	}{
		{int(7), "int", 7, true},
		{int(-3), "int negative", -3, true},
		{int8(-8), "int8", -8, true},
		{int16(300), "int16", 300, true},
		{int32(-70000), "int32", -70000, true},
		{int64(1 << 40), "int64", 1 << 40, true},
		{uint8(255), "uint8", 255, true},
		{uint16(65535), "uint16", 65535, true},
		{uint32(4000000000), "uint32", 4000000000, true},
		{uint(12), "uint", 12, true},
		{uint64(math.MaxUint64), "uint64 too large", 0, false},

		// float64 (YAML/JSON numbers)
		{float64(0), "float64 zero", 0, true},
		{float64(42), "float64 whole", 42, true},
		{float64(-2), "float64 negative", -2, true},
		{float64(3.5), "float64 fractional", 0, false},
		{math.Inf(1), "float64 inf", 0, false},
		{math.NaN(), "float64 nan", 0, false},
		{float32(9), "float32 whole", 9, true},
		{float32(0.25), "float32 fractional", 0, false},

		// strings from env vars
		{"12", "string", 12, true},
		{" -4 ", "string padded", -4, true},
		{"1.5", "string fractional", 0, false},
		{"x", "string garbage", 0, false},

		{nil, "nil", 0, false},
		{true, "bool", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ToInt(%v) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ToInt(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToIndex(t *testing.T) {
	if n, ok := ToIndex(float64(3)); !ok || n != 3 {
		t.Errorf("ToIndex(3.0) = %d, %v", n, ok)
	}
	if _, ok := ToIndex(-1); ok {
		t.Error("ToIndex should reject negative values")
	}
	if _, ok := ToIndex(int8(-128)); ok {
		t.Error("ToIndex should reject negative int8")
	}
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		want   float64
		wantOK bool
	}{
		{float64(1.25), "float64", 1.25, true},
		{float32(0.5), "float32", 0.5, true},
		{int(3), "int", 3, true},
		{uint8(200), "uint8", 200, true},
		{"2.75", "string", 2.75, true},
		{"nope", "garbage", 0, false},
		{false, "bool", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.input)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("ToFloat64(%v) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		input  any
		want   bool
		wantOK bool
	}{
		{true, true, true},
		{false, false, true},
		{"true", true, true},
		{"0", false, true},
		{1, true, true},
		{float64(0), false, true},
		{2, false, false},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		got, ok := ToBool(tt.input)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("ToBool(%v) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToInts(t *testing.T) {
	tests := []struct {
		input  any
		name   string
		want   []int
		wantOK bool
	}{
		{[]int{1, 2}, "int slice", []int{1, 2}, true},
		{[]any{1, float64(2), "3"}, "yaml list", []int{1, 2, 3}, true},
		{[]any{1, 2.5}, "fractional item", nil, false},
		{[]string{"4", "5"}, "string slice", []int{4, 5}, true},
		{"6,7,8", "env string", []int{6, 7, 8}, true},
		{"", "empty string", nil, true},
		{"1,,2", "hole", nil, false},
		{42, "scalar", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInts(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ToInts(%v) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ToInts(%v) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ToInts(%v)[%d] = %d, want %d", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
