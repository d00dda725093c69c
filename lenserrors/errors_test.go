package lenserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPathSyntaxError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &PathSyntaxError{
			Expr:     "items[-1]",
			Position: 6,
			Message:  "index must be non-negative",
		}
		expected := `path syntax error in "items[-1]": index must be non-negative at position 6`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &PathSyntaxError{}
		if err.Error() != "path syntax error at position 0" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &PathSyntaxError{Message: "test"}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrPathSyntax", func(t *testing.T) {
		err := &PathSyntaxError{Message: "test"}
		if !errors.Is(err, ErrPathSyntax) {
			t.Error("PathSyntaxError should match ErrPathSyntax")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &PathSyntaxError{}
		if errors.Is(err, ErrTarget) {
			t.Error("PathSyntaxError should not match ErrTarget")
		}
		if errors.Is(err, ErrDecode) {
			t.Error("PathSyntaxError should not match ErrDecode")
		}
	})

	t.Run("As extracts PathSyntaxError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &PathSyntaxError{Expr: "a..b", Position: 2})
		var synErr *PathSyntaxError
		if !errors.As(err, &synErr) {
			t.Fatal("errors.As should succeed")
		}
		if synErr.Expr != "a..b" {
			t.Errorf("unexpected expr: %s", synErr.Expr)
		}
		if synErr.Position != 2 {
			t.Errorf("unexpected position: %d", synErr.Position)
		}
	})
}

func TestTypeConflictError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &TypeConflictError{
			Path:     "nest.two",
			WantKind: "mapping",
			GotKind:  "string",
			Message:  "cannot key into scalar",
		}
		expected := "type conflict at nest.two: want mapping, got string: cannot key into scalar"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &TypeConflictError{Path: "items[0]"}
		if err.Error() != "type conflict at items[0]" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &TypeConflictError{}
		if err.Error() != "type conflict" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &TypeConflictError{Path: "test"}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrTypeConflict", func(t *testing.T) {
		err := &TypeConflictError{Path: "test"}
		if !errors.Is(err, ErrTypeConflict) {
			t.Error("TypeConflictError should match ErrTypeConflict")
		}
	})

	t.Run("As extracts TypeConflictError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &TypeConflictError{
			Path:     "a.b",
			WantKind: "sequence",
			GotKind:  "mapping",
		})
		var tcErr *TypeConflictError
		if !errors.As(err, &tcErr) {
			t.Fatal("errors.As should succeed")
		}
		if tcErr.WantKind != "sequence" {
			t.Errorf("unexpected want kind: %s", tcErr.WantKind)
		}
	})
}

func TestTargetError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &TargetError{
			Path:    "nest.missing",
			Message: "cannot delete absent value",
		}
		expected := "target not found at nest.missing: cannot delete absent value"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &TargetError{}
		if err.Error() != "target not found" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrTarget", func(t *testing.T) {
		err := &TargetError{Path: "test"}
		if !errors.Is(err, ErrTarget) {
			t.Error("TargetError should match ErrTarget")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &TargetError{}
		if errors.Is(err, ErrTypeConflict) {
			t.Error("TargetError should not match ErrTypeConflict")
		}
	})

	t.Run("As extracts TargetError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &TargetError{Path: "items[9]"})
		var tgtErr *TargetError
		if !errors.As(err, &tgtErr) {
			t.Fatal("errors.As should succeed")
		}
		if tgtErr.Path != "items[9]" {
			t.Errorf("unexpected path: %s", tgtErr.Path)
		}
	})
}

func TestDecodeError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("unexpected end of stream")
		err := &DecodeError{
			Format:  "yaml",
			Path:    "/path/to/doc.yaml",
			Line:    42,
			Message: "invalid document",
			Cause:   cause,
		}
		expected := "decode error (yaml) in /path/to/doc.yaml at line 42: invalid document: unexpected end of stream"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with format only", func(t *testing.T) {
		err := &DecodeError{Format: "json"}
		if err.Error() != "decode error (json)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &DecodeError{Line: 10}
		if err.Error() != "decode error at line 10" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &DecodeError{}
		if err.Error() != "decode error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &DecodeError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &DecodeError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrDecode", func(t *testing.T) {
		err := &DecodeError{Format: "yaml"}
		if !errors.Is(err, ErrDecode) {
			t.Error("DecodeError should match ErrDecode")
		}
	})

	t.Run("As extracts DecodeError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &DecodeError{Format: "json", Path: "doc.json"})
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Fatal("errors.As should succeed")
		}
		if decErr.Format != "json" {
			t.Errorf("unexpected format: %s", decErr.Format)
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("invalid value")
		err := &ConfigError{
			Option:  "maxDepth",
			Value:   -5,
			Message: "must be positive",
			Cause:   cause,
		}
		expected := "configuration error for maxDepth (value: -5): must be positive: invalid value"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with option only", func(t *testing.T) {
		err := &ConfigError{Option: "transform"}
		if err.Error() != "configuration error for transform" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with nil value excluded", func(t *testing.T) {
		err := &ConfigError{
			Option:  "input",
			Value:   nil,
			Message: "required",
		}
		expected := "configuration error for input: required"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("missing value")
		err := &ConfigError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})

	t.Run("As extracts ConfigError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &ConfigError{Option: "limit", Value: 1000})
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatal("errors.As should succeed")
		}
		if cfgErr.Option != "limit" {
			t.Errorf("unexpected option: %s", cfgErr.Option)
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	sentinels := []error{
		ErrPathSyntax,
		ErrTypeConflict,
		ErrTarget,
		ErrDecode,
		ErrConfig,
	}

	for i, s1 := range sentinels {
		for j, s2 := range sentinels {
			if i != j && errors.Is(s1, s2) {
				t.Errorf("sentinel errors should be distinct: %v should not match %v", s1, s2)
			}
		}
	}
}

func TestErrorChaining(t *testing.T) {
	t.Run("deeply wrapped DecodeError", func(t *testing.T) {
		decErr := &DecodeError{Path: "doc.yaml", Message: "invalid"}
		wrapped1 := fmt.Errorf("layer 1: %w", decErr)
		wrapped2 := fmt.Errorf("layer 2: %w", wrapped1)

		if !errors.Is(wrapped2, ErrDecode) {
			t.Error("deeply wrapped DecodeError should match ErrDecode")
		}

		var extracted *DecodeError
		if !errors.As(wrapped2, &extracted) {
			t.Fatal("errors.As should work through wrapping")
		}
		if extracted.Path != "doc.yaml" {
			t.Errorf("unexpected path: %s", extracted.Path)
		}
	})

	t.Run("error wrapping with Cause", func(t *testing.T) {
		rootCause := errors.New("read failed")
		decErr := &DecodeError{
			Path:  "doc.json",
			Cause: rootCause,
		}
		wrapped := fmt.Errorf("failed to load: %w", decErr)

		// Should be able to check for root cause
		if !errors.Is(wrapped, rootCause) {
			t.Error("should be able to find root cause through Unwrap chain")
		}
	})
}
