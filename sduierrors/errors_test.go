package sduierrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/Screen.json",
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/Screen.json: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with path only", func(t *testing.T) {
		err := &ParseError{Path: "Screen.json"}
		if err.Error() != "parse error in Screen.json" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ParseError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ParseError{}
		if errors.Is(err, ErrReference) {
			t.Error("ParseError should not match ErrReference")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match ErrConfig")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		var target *ParseError
		err := fmt.Errorf("wrapped: %w", &ParseError{Path: "Screen.json"})
		if !errors.As(err, &target) {
			t.Fatal("errors.As should extract ParseError")
		}
		if target.Path != "Screen.json" {
			t.Errorf("unexpected path: %s", target.Path)
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("boom")
		err := &ReferenceError{
			Ref:     "#/definitions/Foo",
			RefType: "internal",
			Message: "bad fragment",
			Cause:   cause,
		}
		want := "reference error: #/definitions/Foo: bad fragment: boom"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ReferenceError{}
		if err.Error() != "reference error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrReference", func(t *testing.T) {
		err := &ReferenceError{Ref: "Child.json"}
		if !errors.Is(err, ErrReference) {
			t.Error("ReferenceError should match ErrReference")
		}
		if errors.Is(err, ErrParse) {
			t.Error("ReferenceError should not match ErrParse")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ReferenceError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should find the cause through Unwrap")
		}
	})
}

func TestResourceLimitError(t *testing.T) {
	t.Run("Error message with limit and actual", func(t *testing.T) {
		err := &ResourceLimitError{
			ResourceType: "file_size",
			Limit:        10,
			Actual:       42,
			Message:      "file too large",
		}
		want := "resource limit exceeded: file_size (limit: 10, actual: 42): file too large"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ResourceLimitError{}
		if err.Error() != "resource limit exceeded" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrResourceLimit", func(t *testing.T) {
		err := &ResourceLimitError{ResourceType: "cached_documents"}
		if !errors.Is(err, ErrResourceLimit) {
			t.Error("ResourceLimitError should match ErrResourceLimit")
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &ResourceLimitError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "max_depth",
			Value:   -1,
			Message: "must be positive",
		}
		want := "configuration error for max_depth (value: -1): must be positive"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "web_only"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
		if errors.Is(err, ErrResourceLimit) {
			t.Error("ConfigError should not match ErrResourceLimit")
		}
	})

	t.Run("As extracts ConfigError through wrapping", func(t *testing.T) {
		var target *ConfigError
		err := fmt.Errorf("resolver: invalid options: %w", &ConfigError{Option: "max_depth"})
		if !errors.As(err, &target) {
			t.Fatal("errors.As should extract ConfigError")
		}
		if target.Option != "max_depth" {
			t.Errorf("unexpected option: %s", target.Option)
		}
	})
}
