package errors

import (
	"errors"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrInvalidArgument", ErrInvalidArgument, "invalid argument"},
		{"ErrClosed", ErrClosed, "resource is closed"},
		{"ErrAlreadyRunning", ErrAlreadyRunning, "already running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "throttle",
				Field:  "wait",
				Value:  -5,
				Reason: "cannot be negative",
			},
			want: "throttle: invalid wait=-5 (cannot be negative)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "debounce",
				Field:  "maxWait",
				Value:  0,
				Reason: "must not be less than wait",
				Hint:   "use 0 to disable the deadline",
			},
			want: "debounce: invalid maxWait=0 (must not be less than wait) - use 0 to disable the deadline",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "cadence",
				Field:  "spec",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "cadence: invalid spec= (cannot be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := &ValidationError{
		Module: "test",
		Field:  "field",
		Value:  0,
		Reason: "test",
	}

	if unwrapped := verr.Unwrap(); unwrapped != ErrInvalidArgument {
		t.Errorf("Unwrap() = %v, want ErrInvalidArgument", unwrapped)
	}

	if !errors.Is(verr, ErrInvalidArgument) {
		t.Error("ValidationError should wrap ErrInvalidArgument")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("module", "field", 123, "test reason")

	if err.Module != "module" {
		t.Errorf("Module = %q, want %q", err.Module, "module")
	}
	if err.Field != "field" {
		t.Errorf("Field = %q, want %q", err.Field, "field")
	}
	if err.Value != 123 {
		t.Errorf("Value = %v, want %v", err.Value, 123)
	}
	if err.Reason != "test reason" {
		t.Errorf("Reason = %q, want %q", err.Reason, "test reason")
	}
	if err.Hint != "" {
		t.Errorf("Hint = %q, want empty string", err.Hint)
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("test", "field", 0, "invalid").
		WithHint("try using a non-negative value")

	if err.Hint != "try using a non-negative value" {
		t.Errorf("Hint = %q, want %q", err.Hint, "try using a non-negative value")
	}

	// Should return same instance for chaining
	result := err.WithHint("new hint")
	if result != err {
		t.Error("WithHint should return the same instance")
	}
}

func TestOperationError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewOperationError("gate", "Try", cause)

	want := "gate.Try failed: connection refused"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, cause) {
		t.Error("OperationError should wrap its cause")
	}
}
