package wasmmem

import (
	"encoding/binary"
	"math"
	"reflect"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/grid"
	"github.com/wippyai/grid/errors"
)

// Export writes every cell of a to mem starting at offset and returns the
// number of bytes written. offset must satisfy the element alignment and the
// whole payload must fit in the current memory size; nothing is written
// otherwise.
func Export[T Scalar, D grid.Dims](mem Memory, offset uint32, a *grid.Array[T, D]) (uint32, error) {
	t := ElemType[T]()
	if err := checkArgs(errors.PhaseExport, mem, a == nil, "*grid.Array["+goType[T]()+"]"); err != nil {
		return 0, err
	}
	data := a.Data()
	total, err := region(errors.PhaseExport, mem, offset, a.TotalLen(), len(data), t)
	if err != nil {
		return 0, err
	}
	buf := make([]byte, total)
	encode(buf, data)
	if err := mem.Write(offset, buf); err != nil {
		return 0, errors.Wrap(errors.PhaseExport, errors.KindOutOfBounds, err, "write cells")
	}
	logTransfer("grid exported", offset, total, t)
	return total, nil
}

// Import overwrites every cell of a with the payload at offset. The payload
// length is implied by a's extents.
func Import[T Scalar, D grid.Dims](mem Memory, offset uint32, a *grid.Array[T, D]) error {
	t := ElemType[T]()
	if err := checkArgs(errors.PhaseImport, mem, a == nil, "*grid.Array["+goType[T]()+"]"); err != nil {
		return err
	}
	data := a.Data()
	total, err := region(errors.PhaseImport, mem, offset, a.TotalLen(), len(data), t)
	if err != nil {
		return err
	}
	raw, err := mem.Read(offset, total)
	if err != nil {
		return errors.Wrap(errors.PhaseImport, errors.KindOutOfBounds, err, "read cells")
	}
	decode(data, raw)
	logTransfer("grid imported", offset, total, t)
	return nil
}

// ExportBools writes a bool array as one byte per cell, 1 for true.
func ExportBools[D grid.Dims](mem Memory, offset uint32, a *grid.Array[bool, D]) (uint32, error) {
	if err := checkArgs(errors.PhaseExport, mem, a == nil, "*grid.Array[bool]"); err != nil {
		return 0, err
	}
	total, err := region(errors.PhaseExport, mem, offset, a.TotalLen(), len(a.Data()), wit.Bool{})
	if err != nil {
		return 0, err
	}
	buf := make([]byte, 0, total)
	for b := range grid.NewView(a, grid.BoolToByte).Values() {
		buf = append(buf, b)
	}
	if err := mem.Write(offset, buf); err != nil {
		return 0, errors.Wrap(errors.PhaseExport, errors.KindOutOfBounds, err, "write cells")
	}
	logTransfer("grid exported", offset, total, wit.Bool{})
	return total, nil
}

// ImportBools reads one byte per cell into a. Any non-zero byte is true.
func ImportBools[D grid.Dims](mem Memory, offset uint32, a *grid.Array[bool, D]) error {
	if err := checkArgs(errors.PhaseImport, mem, a == nil, "*grid.Array[bool]"); err != nil {
		return err
	}
	total, err := region(errors.PhaseImport, mem, offset, a.TotalLen(), len(a.Data()), wit.Bool{})
	if err != nil {
		return err
	}
	raw, err := mem.Read(offset, total)
	if err != nil {
		return errors.Wrap(errors.PhaseImport, errors.KindOutOfBounds, err, "read cells")
	}
	flags := grid.NewMutView(a, grid.BoolToByte, grid.ByteToBool)
	e := a.Extents()
	for i, b := range raw {
		flags.Set(e.CoordOf(i), b)
	}
	logTransfer("grid imported", offset, total, wit.Bool{})
	return nil
}

func checkArgs(phase errors.Phase, mem Memory, nilArray bool, arrayType string) error {
	if mem == nil {
		return errors.NilPointer(phase, "wasmmem.Memory")
	}
	if nilArray {
		return errors.NilPointer(phase, arrayType)
	}
	return nil
}

// region validates the byte range [offset, offset+cells*size) and returns
// its length.
func region(phase errors.Phase, mem Memory, offset uint32, cells, buffered int, t wit.Type) (uint32, error) {
	size, align, ok := Layout(t)
	if !ok {
		return 0, errors.Unsupported(phase, "cell type "+TypeName(t))
	}
	if buffered != cells {
		return 0, errors.New(phase, errors.KindInvalidInput).
			WitType(TypeName(t)).
			Detail("array buffer holds %d cells, extents need %d", buffered, cells).
			Build()
	}
	if offset%align != 0 {
		return 0, errors.New(phase, errors.KindInvalidInput).
			WitType(TypeName(t)).
			Value(offset).
			Detail("offset %d is not aligned to %d", offset, align).
			Build()
	}
	total := uint64(cells) * uint64(size)
	if total > math.MaxUint32 {
		return 0, errors.Overflow(phase, total, "uint32")
	}
	if end := uint64(offset) + total; end > uint64(mem.Size()) {
		return 0, errors.New(phase, errors.KindOutOfBounds).
			WitType(TypeName(t)).
			Value(offset).
			Detail("range [%d, %d) exceeds memory size %d", offset, end, mem.Size()).
			Build()
	}
	return uint32(total), nil
}

func logTransfer(msg string, offset, n uint32, t wit.Type) {
	if ce := Logger().Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.Uint32("offset", offset),
			zap.Uint32("bytes", n),
			zap.String("wit", TypeName(t)),
		)
	}
}

func goType[T any]() string {
	return reflect.TypeFor[T]().String()
}

// encode packs src little-endian into dst, which must be exactly
// len(src) cells long.
func encode[T Scalar](dst []byte, src []T) {
	le := binary.LittleEndian
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Uint8, reflect.Int8:
		for i, v := range src {
			dst[i] = byte(v)
		}
	case reflect.Uint16, reflect.Int16:
		for i, v := range src {
			le.PutUint16(dst[i*2:], uint16(v))
		}
	case reflect.Uint32, reflect.Int32:
		for i, v := range src {
			le.PutUint32(dst[i*4:], uint32(v))
		}
	case reflect.Uint64, reflect.Int64:
		for i, v := range src {
			le.PutUint64(dst[i*8:], uint64(v))
		}
	case reflect.Float32:
		for i, v := range src {
			le.PutUint32(dst[i*4:], math.Float32bits(float32(v)))
		}
	case reflect.Float64:
		for i, v := range src {
			le.PutUint64(dst[i*8:], math.Float64bits(float64(v)))
		}
	}
}

// decode is the inverse of encode.
func decode[T Scalar](dst []T, src []byte) {
	le := binary.LittleEndian
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Uint8:
		for i := range dst {
			dst[i] = T(src[i])
		}
	case reflect.Int8:
		for i := range dst {
			dst[i] = T(int8(src[i]))
		}
	case reflect.Uint16:
		for i := range dst {
			dst[i] = T(le.Uint16(src[i*2:]))
		}
	case reflect.Int16:
		for i := range dst {
			dst[i] = T(int16(le.Uint16(src[i*2:])))
		}
	case reflect.Uint32:
		for i := range dst {
			dst[i] = T(le.Uint32(src[i*4:]))
		}
	case reflect.Int32:
		for i := range dst {
			dst[i] = T(int32(le.Uint32(src[i*4:])))
		}
	case reflect.Uint64:
		for i := range dst {
			dst[i] = T(le.Uint64(src[i*8:]))
		}
	case reflect.Int64:
		for i := range dst {
			dst[i] = T(int64(le.Uint64(src[i*8:])))
		}
	case reflect.Float32:
		for i := range dst {
			dst[i] = T(math.Float32frombits(le.Uint32(src[i*4:])))
		}
	case reflect.Float64:
		for i := range dst {
			dst[i] = T(math.Float64frombits(le.Uint64(src[i*8:])))
		}
	}
}
