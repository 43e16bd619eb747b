package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in a launch the error occurred
type Phase string

const (
	PhaseExtract  Phase = "extract"  // locating the launcher's own arguments
	PhaseParse    Phase = "parse"    // flag parsing
	PhaseValidate Phase = "validate" // option validation
	PhaseResolve  Phase = "resolve"  // path and backend resolution
	PhaseLoad     Phase = "load"     // module bytecode loading
	PhaseRuntime  Phase = "runtime"  // embedded runtime operations
	PhaseSpawn    Phase = "spawn"    // external runtime process
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindFieldUnknown  Kind = "field_unknown"
	KindFieldMissing  Kind = "field_missing"
	KindInvalidInput  Kind = "invalid_input"
	KindInvalidData   Kind = "invalid_data"
	KindInstantiation Kind = "instantiation"
)

// Error is the structured error type used by the launcher
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
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

// Usage reports whether the error belongs to the usage taxonomy: the launcher
// rejected its own input before any module invocation was attempted.
func (e *Error) Usage() bool {
	switch e.Phase {
	case PhaseExtract, PhaseParse, PhaseValidate:
		return true
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

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
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

// NoBoundary creates the error returned when the launcher cannot find where
// its own arguments begin.
func NoBoundary(names []string) *Error {
	return &Error{
		Phase:  PhaseExtract,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("no %q separator or launcher name (%s) in arguments", "--", strings.Join(names, ", ")),
		Value:  names,
	}
}

// FieldUnknown creates an unknown flag error
func FieldUnknown(phase Phase, flag string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldUnknown,
		Detail: fmt.Sprintf("unknown flag %q", flag),
		Value:  flag,
	}
}

// FieldMissing creates a missing flag value error
func FieldMissing(phase Phase, flag string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Detail: fmt.Sprintf("flag %q needs a value", flag),
		Value:  flag,
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

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
		Value:  name,
	}
}

// Instantiation creates an instantiation error
func Instantiation(cause error) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindInstantiation,
		Detail: "instantiate module",
		Cause:  cause,
	}
}

// Load creates a module loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Spawn creates an external runtime start failure
func Spawn(command string, cause error) *Error {
	return &Error{
		Phase:  PhaseSpawn,
		Kind:   KindInstantiation,
		Detail: fmt.Sprintf("start %s", command),
		Value:  command,
		Cause:  cause,
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// IsUsage reports whether err carries a usage error anywhere in its tree.
func IsUsage(err error) bool {
	var e *Error
	return As(err, &e) && e.Usage()
}
