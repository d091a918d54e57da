package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // array construction
	PhaseAccess    Phase = "access"    // element reads and writes
	PhaseCopy      Phase = "copy"      // whole-buffer copies
	PhaseView      Phase = "view"      // converting view construction
	PhaseExport    Phase = "export"    // grid to linear memory
	PhaseImport    Phase = "import"    // linear memory to grid
	PhaseConfig    Phase = "config"    // tool configuration
)

// Kind categorizes the error
type Kind string

const (
	KindZeroExtent   Kind = "zero_extent"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindDimMismatch  Kind = "dim_mismatch"
	KindOverflow     Kind = "overflow"
	KindNilPointer   Kind = "nil_pointer"
	KindInvalidInput Kind = "invalid_input"
	KindUnsupported  Kind = "unsupported"
)

// Error is the structured error type used throughout the module.
// Fatal conditions in package grid panic with an *Error value.
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Axis    string
	GoType  string
	WitType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Axis != "" {
		b.WriteString(" on axis ")
		b.WriteString(e.Axis)
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WitType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.WitType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", WIT type ")
			b.WriteString(e.WitType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("WIT type ")
			b.WriteString(e.WitType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WitType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Axis sets the offending axis name
func (b *Builder) Axis(axis string) *Builder {
	b.err.Axis = axis
	return b
}

// Path sets the configuration key path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WitType sets the WIT type name
func (b *Builder) WitType(t string) *Builder {
	b.err.WitType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ZeroExtent creates a construction error for a non-positive axis size
func ZeroExtent(axis string, size int) *Error {
	return &Error{
		Phase:  PhaseConstruct,
		Kind:   KindZeroExtent,
		Axis:   axis,
		Detail: fmt.Sprintf("dimension must be greater than zero, got %d", size),
		Value:  size,
	}
}

// OutOfBounds creates a bounds violation for one axis
func OutOfBounds(phase Phase, axis string, index, extent int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Axis:   axis,
		Detail: fmt.Sprintf("index %d out of bounds (extent %d)", index, extent),
		Value:  index,
	}
}

// DimMismatch creates an error for operations requiring identical dimensions
func DimMismatch(phase Phase, want, got string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDimMismatch,
		Detail: fmt.Sprintf("dimensions differ: want %s, got %s", want, got),
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, target string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value %v overflows %s", value, target),
		Value:  value,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
