package hostabi

import (
	goerrors "errors"
	"testing"

	"github.com/wippyai/scorer-runtime/encstr"
	"github.com/wippyai/scorer-runtime/errors"
)

func TestIsString(t *testing.T) {
	ok, err := IsString(NewLocalBytes([]byte("abc")))
	if err != nil || !ok {
		t.Fatalf("byte sequence should be supported: ok=%v err=%v", ok, err)
	}

	ok, err = IsString(NewLocalText([]uint16{'a'}))
	if err != nil || !ok {
		t.Fatalf("text sequence should be supported: ok=%v err=%v", ok, err)
	}

	ok, err = IsString(42)
	if err != nil || ok {
		t.Fatalf("plain int must not be supported: ok=%v err=%v", ok, err)
	}
}

func TestIsString_ReadyFailurePropagatesUnwrapped(t *testing.T) {
	hostErr := goerrors.New("legacy text normalization failed")
	text := NewLocalText([]uint8{'a'})
	text.FailReady(hostErr)

	_, err := IsString(text)
	if err != hostErr {
		t.Fatalf("host error must pass through unwrapped, got %v", err)
	}
}

func TestValidateString(t *testing.T) {
	if err := ValidateString(NewLocalBytes(nil), "unused"); err != nil {
		t.Fatalf("byte sequence should validate: %v", err)
	}
	if err := ValidateString(NewLocalText([]uint32{'x'}), "unused"); err != nil {
		t.Fatalf("text sequence should validate: %v", err)
	}

	err := ValidateString(3.14, "pattern must be a string")
	if err == nil {
		t.Fatal("expected a type error")
	}
	var se *errors.Error
	if !goerrors.As(err, &se) {
		t.Fatalf("expected a structured error, got %T", err)
	}
	if se.Kind != errors.KindType {
		t.Fatalf("expected type kind, got %v", se.Kind)
	}
	if se.Detail != "pattern must be a string" {
		t.Fatalf("caller diagnostic lost: %q", se.Detail)
	}
}

func TestConvertString_Bytes(t *testing.T) {
	obj := NewLocalBytes([]byte("hello"))
	view := ConvertString(obj)

	if view.Width != encstr.Width8 {
		t.Fatalf("expected Width8, got %v", view.Width)
	}
	if view.Len != 5 {
		t.Fatalf("expected 5 units, got %d", view.Len)
	}
	if view.Free != nil {
		t.Fatal("borrowed view must not carry a destructor")
	}
	if view.Owner == nil {
		t.Fatal("view should anchor the host object")
	}

	units, err := encstr.Units[uint8](&view)
	if err != nil {
		t.Fatal(err)
	}
	if string(units) != "hello" {
		t.Fatalf("buffer not borrowed correctly: %q", string(units))
	}
}

func TestConvertString_TextWidths(t *testing.T) {
	tests := []struct {
		name string
		obj  any
		want encstr.Width
	}{
		{"1-byte units", NewLocalText([]uint8{'a', 'b'}), encstr.Width8},
		{"2-byte units", NewLocalText([]uint16{'a', 'b'}), encstr.Width16},
		{"4-byte units", NewLocalText([]uint32{'a', 'b'}), encstr.Width32},
		// unit sizes outside 1/2/4 normalize to the widest supported tag
		{"8-byte units", NewLocalText([]uint64{'a', 'b'}), encstr.Width32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ConvertString(tt.obj)
			if view.Width != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, view.Width)
			}
			if view.Len != 2 {
				t.Fatalf("length must be in code units, got %d", view.Len)
			}
		})
	}
}

func TestConvertString_UnsupportedPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for an unvalidated object")
		}
		err, ok := r.(*errors.Error)
		if !ok || err.Kind != errors.KindLogic {
			t.Fatalf("expected a logic error, got %v", r)
		}
	}()
	ConvertString("not a host object")
}
