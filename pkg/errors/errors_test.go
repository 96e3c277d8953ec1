package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidLanguage, "unknown language %q", "kinetics")

	if err.Code != ErrCodeInvalidLanguage {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidLanguage)
	}
	want := `INVALID_LANGUAGE: unknown language "kinetics"`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
	if err.Element != "" {
		t.Errorf("Element = %q, want empty", err.Element)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidFormat, cause, "parse SBGN-ML %s", "0.3")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() should return the cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	want := "INVALID_FORMAT: parse SBGN-ML 0.3: unexpected EOF"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"keeps code", New(ErrCodeUnresolvedReference, "unknown element %q", "g9"), ErrCodeUnresolvedReference},
		{"through fmt wrapping", fmt.Errorf("build: %w", New(ErrCodeTooDeep, "nested")), ErrCodeTooDeep},
		{"plain error", errors.New("boom"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Annotate(tt.err, "arc %s", "a1")
			if err.Code != tt.want {
				t.Errorf("Code = %v, want %v", err.Code, tt.want)
			}
			if !errors.Is(err, tt.err) {
				t.Error("annotated error should wrap the original")
			}
		})
	}
}

func TestElementOf(t *testing.T) {
	inner := New(ErrCodeUnresolvedReference, "unknown element %q", "ghost")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", errors.New("plain"), ""},
		{"no element", inner, ""},
		{"at", New(ErrCodeInvalidID, "duplicate id").At("g1"), "g1"},
		{"outer wins", Annotate(New(ErrCodeTooDeep, "deep").At("g2"), "arc").At("a1"), "a1"},
		{"inner found", Annotate(New(ErrCodeTooDeep, "deep").At("g2"), "read"), "g2"},
		{"fmt wrapped", fmt.Errorf("convert: %w", Annotate(inner, "arc a3: source").At("a3")), "a3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElementOf(tt.err); got != tt.want {
				t.Errorf("ElementOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidInput, true},
		{"non-matching code", New(ErrCodeInvalidInput, "test"), ErrCodeNetwork, false},
		{"outermost code wins", Wrap(ErrCodeNetwork, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeNetwork, true},
		{"fmt wrapped", fmt.Errorf("ctx: %w", New(ErrCodeFileNotFound, "x")), ErrCodeFileNotFound, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeUnresolvedReference, "test"), ErrCodeUnresolvedReference},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "document has no map"), "document has no map"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid input", New(ErrCodeInvalidInput, "bad"), 400},
		{"unresolved reference", New(ErrCodeUnresolvedReference, "missing"), 400},
		{"too deep", New(ErrCodeTooDeep, "nesting"), 400},
		{"file not found", New(ErrCodeFileNotFound, "gone"), 404},
		{"unsupported", New(ErrCodeUnsupported, "er"), 422},
		{"timeout", New(ErrCodeTimeout, "slow"), 504},
		{"plain error", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.expected {
				t.Errorf("HTTPStatus() = %v, want %v", got, tt.expected)
			}
		})
	}
}
