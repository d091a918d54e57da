package grid

// Number is every Go integer and floating-point type.
type Number interface {
	Integer | ~float32 | ~float64
}

// ByteToBool reports whether b is non-zero.
func ByteToBool(b uint8) bool { return b != 0 }

// BoolToByte returns 1 for true and 0 for false.
func BoolToByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// Cast converts between numeric types with Go conversion rules. It is total
// but only lossless for widening pairs such as int8 to int32 or float32 to
// float64; pick such a pair when using it with a view.
func Cast[T, U Number](v T) U { return U(v) }
