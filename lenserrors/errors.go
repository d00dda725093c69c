// Package lenserrors provides structured error types for lenstools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - PathSyntaxError: malformed path expressions
//   - TypeConflictError: a path step found a value of the wrong kind
//   - TargetError: a path addressed a value that does not exist
//   - DecodeError: YAML/JSON deserialization failures
//   - ConfigError: invalid configuration or input options
//
// # Usage with errors.Is
//
//	p, err := path.Parse("items[-1]")
//	if err != nil {
//	    var synErr *lenserrors.PathSyntaxError
//	    if errors.As(err, &synErr) {
//	        fmt.Printf("bad path at position %d: %s\n", synErr.Position, synErr.Message)
//	    }
//	}
package lenserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrPathSyntax indicates a path expression failed to parse.
	ErrPathSyntax = errors.New("path syntax error")

	// ErrTypeConflict indicates a path step found a value of an incompatible kind.
	ErrTypeConflict = errors.New("type conflict")

	// ErrTarget indicates a path addressed a value that does not exist.
	ErrTarget = errors.New("target not found")

	// ErrDecode indicates a document deserialization failure.
	ErrDecode = errors.New("decode error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// PathSyntaxError represents a failure to parse a path expression.
type PathSyntaxError struct {
	// Expr is the full path expression that failed to parse
	Expr string
	// Position is the byte offset where parsing failed
	Position int
	// Message describes the syntax failure
	Message string
}

// Error returns a human-readable error message.
func (e *PathSyntaxError) Error() string {
	msg := "path syntax error"
	if e.Expr != "" {
		msg += " in " + fmt.Sprintf("%q", e.Expr)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	msg += fmt.Sprintf(" at position %d", e.Position)
	return msg
}

// Unwrap returns nil as PathSyntaxError has no underlying cause.
func (e *PathSyntaxError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *PathSyntaxError) Is(target error) bool {
	return target == ErrPathSyntax
}

// TypeConflictError represents a path step that found a value of an
// incompatible kind, such as indexing into a mapping or keying into a
// scalar. It is reported by strict editing modes; non-strict modes
// overwrite the conflicting value instead.
type TypeConflictError struct {
	// Path is the path to the conflicting value
	Path string
	// WantKind is the kind the step required ("mapping" or "sequence")
	WantKind string
	// GotKind is the kind actually found
	GotKind string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *TypeConflictError) Error() string {
	msg := "type conflict"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.WantKind != "" && e.GotKind != "" {
		msg += fmt.Sprintf(": want %s, got %s", e.WantKind, e.GotKind)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as TypeConflictError has no underlying cause.
func (e *TypeConflictError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *TypeConflictError) Is(target error) bool {
	return target == ErrTypeConflict
}

// TargetError represents a path that addressed a value that does not exist.
// It is reported by strict editing modes; non-strict modes record a warning
// and skip or create the target as the operation requires.
type TargetError struct {
	// Path is the path that failed to resolve
	Path string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *TargetError) Error() string {
	msg := "target not found"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as TargetError has no underlying cause.
func (e *TargetError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *TargetError) Is(target error) bool {
	return target == ErrTarget
}

// DecodeError represents a failure to deserialize a document from
// YAML or JSON.
type DecodeError struct {
	// Format is the source format that failed to decode ("yaml" or "json")
	Format string
	// Path is the file path or source identifier ("" if decoding from memory)
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the decode failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
