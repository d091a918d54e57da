package wasmmem

import (
	"reflect"

	"go.bytecodealliance.org/wit"
)

// Scalar is every fixed-width numeric type that can cross into linear memory.
type Scalar interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 |
		~uint64 | ~int64 | ~float32 | ~float64
}

// ElemType returns the WIT primitive matching T.
func ElemType[T Scalar]() wit.Type {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Uint8:
		return wit.U8{}
	case reflect.Int8:
		return wit.S8{}
	case reflect.Uint16:
		return wit.U16{}
	case reflect.Int16:
		return wit.S16{}
	case reflect.Uint32:
		return wit.U32{}
	case reflect.Int32:
		return wit.S32{}
	case reflect.Uint64:
		return wit.U64{}
	case reflect.Int64:
		return wit.S64{}
	case reflect.Float32:
		return wit.F32{}
	default:
		return wit.F64{}
	}
}

// Layout returns the Canonical ABI size and alignment of a primitive cell
// type. ok is false for anything that is not a fixed-width primitive.
func Layout(t wit.Type) (size, align uint32, ok bool) {
	switch t.(type) {
	case wit.U8, wit.S8, wit.Bool:
		return 1, 1, true
	case wit.U16, wit.S16:
		return 2, 2, true
	case wit.U32, wit.S32, wit.F32:
		return 4, 4, true
	case wit.U64, wit.S64, wit.F64:
		return 8, 8, true
	default:
		return 0, 1, false
	}
}

// TypeName returns the WIT spelling of a primitive type.
func TypeName(t wit.Type) string {
	switch t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	default:
		return "unsupported"
	}
}
