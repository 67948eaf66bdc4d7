package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseConstruct,
				Kind:   KindValue,
				Path:   []string{"scorer", "prefix_weight"},
				Detail: "out of range",
			},
			contains: []string{"[construct]", "value", "scorer.prefix_weight", "out of range"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDispatch,
				Kind:  KindLogic,
			},
			contains: []string{"[dispatch]", "logic"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseInvoke,
				Kind:   KindRuntime,
				Detail: "scoring failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[invoke]", "runtime", "scoring failed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseMarshal,
		Kind:  KindType,
		Cause: cause,
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := Logic(PhaseDispatch, "invalid width tag %d", 5)

	if !errors.Is(err, &Error{Phase: PhaseDispatch, Kind: KindLogic}) {
		t.Error("Is should match on phase+kind")
	}
	if errors.Is(err, &Error{Phase: PhaseDispatch, Kind: KindValue}) {
		t.Error("Is should not match a different kind")
	}
	if errors.Is(err, &Error{Phase: PhaseInvoke, Kind: KindLogic}) {
		t.Error("Is should not match a different phase")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseValidate, KindType).
		Path("args", "pattern").
		Value(42).
		Detail("expected a string, got %T", 42).
		Build()

	if err.Phase != PhaseValidate || err.Kind != KindType {
		t.Fatalf("unexpected phase/kind: %v/%v", err.Phase, err.Kind)
	}
	if err.Value != 42 {
		t.Errorf("value not set: %v", err.Value)
	}
	if !strings.Contains(err.Detail, "int") {
		t.Errorf("detail not formatted: %q", err.Detail)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err  *Error
		kind Kind
	}{
		{Logic(PhaseDispatch, "d"), KindLogic},
		{Type(PhaseValidate, "d"), KindType},
		{Value(PhaseConstruct, "d"), KindValue},
		{Memory(PhaseConstruct, "d"), KindMemory},
		{IO(PhaseInvoke, "d"), KindIO},
		{Index(PhaseInvoke, "d"), KindIndex},
		{Overflow(PhaseInvoke, "d"), KindOverflow},
		{Arithmetic(PhaseInvoke, "d"), KindArithmetic},
		{Runtime(PhaseInvoke, "d"), KindRuntime},
	}
	for _, tt := range tests {
		if tt.err.Kind != tt.kind {
			t.Errorf("expected kind %v, got %v", tt.kind, tt.err.Kind)
		}
		if tt.err.Detail != "d" {
			t.Errorf("detail lost for kind %v", tt.kind)
		}
	}
}
