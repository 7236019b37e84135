// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/wslaunch/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "path_traversal_error",
			code:    errors.ErrPathTraversal,
			message: `invalid path segment ".."`,
			wantStr: `[PATH_TRAVERSAL] invalid path segment ".."`,
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownNodeType, "unknown node type %T", 42)
	if err.Message != "unknown node type int" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("disk full")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrMaterializationIO, "failed to write file")

		if err.Code != errors.ErrMaterializationIO {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrMaterializationIO)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[MATERIALIZATION_IO] failed to write file: disk full"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrConfigLoad, "failed to load %s", "wslaunch.toml")
		if err.Message != "failed to load wslaunch.toml" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrEmptyFileName, "file name cannot be empty").
		WithDetail("parent", "src").
		WithDetail("name", "  ")

	if err.Details["parent"] != "src" {
		t.Errorf("WithDetail() parent = %v, want %v", err.Details["parent"], "src")
	}

	if err.Details["name"] != "  " {
		t.Errorf("WithDetail() name = %v, want %q", err.Details["name"], "  ")
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"op":         "mkdir",
		"path":       "/tmp/templates/demo",
		"identifier": "demo",
	}

	err := errors.New(errors.ErrMaterializationIO, "cannot create directory").
		WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrPathTraversal, "error 1")
	err2 := errors.New(errors.ErrPathTraversal, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with LaunchError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrEmptyFileName, "empty"),
			code:     errors.ErrEmptyFileName,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrEmptyFileName, "empty"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrMaterializationIO, "denied"),
			code:     errors.ErrMaterializationIO,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrPathTraversal,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrPathTraversal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "launch_error",
			err:      errors.New(errors.ErrUnknownNodeType, "unknown"),
			expected: errors.ErrUnknownNodeType,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrPathTraversal, "bad").WithDetail("segment", "..")
	if got := errors.GetErrorDetails(err); got["segment"] != ".." {
		t.Errorf("GetErrorDetails() = %v", got)
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() on standard error = %v, want nil", got)
	}
}

func TestIsValidation(t *testing.T) {
	validation := []errors.ErrorCode{
		errors.ErrPathTraversal,
		errors.ErrEmptyFileName,
		errors.ErrUnknownNodeType,
		errors.ErrUnknownEncoding,
	}
	for _, code := range validation {
		if !errors.IsValidation(errors.New(code, "x")) {
			t.Errorf("IsValidation(%s) = false, want true", code)
		}
	}
	if errors.IsValidation(errors.New(errors.ErrMaterializationIO, "x")) {
		t.Error("IsValidation(MATERIALIZATION_IO) = true, want false")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("permission denied")
	ioErr := errors.Wrap(rootCause, errors.ErrMaterializationIO, "cannot write file")
	topErr := errors.Wrap(ioErr, errors.ErrInternal, "workspace template failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(topErr, errors.ErrInternal) {
			t.Error("Top level should have ErrInternal code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var launchErr *errors.LaunchError
		if stderrors.As(topErr.Unwrap(), &launchErr) {
			if !errors.IsErrorCode(launchErr, errors.ErrMaterializationIO) {
				t.Error("Middle error should have ErrMaterializationIO code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(topErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
