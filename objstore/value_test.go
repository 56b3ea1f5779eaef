package objstore

import (
	"strings"
	"testing"
)

func TestValueEncode(t *testing.T) {
	t.Run("Bytes", func(t *testing.T) {
		data, err := Bytes([]byte{0x01, 0x02}).encode()
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if string(data) != "\x01\x02" {
			t.Errorf("got %v", data)
		}
	})

	t.Run("Text", func(t *testing.T) {
		data, err := Text("hello").encode()
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("got %q", data)
		}
	})

	t.Run("JSONNoTrailingNewline", func(t *testing.T) {
		data, err := JSON(map[string]interface{}{"a": 1}).encode()
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if string(data) != `{"a":1}` {
			t.Errorf("got %q", data)
		}
	})

	t.Run("JSONNoHTMLEscaping", func(t *testing.T) {
		data, err := JSON(map[string]interface{}{"html": "<b>&</b>"}).encode()
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if strings.Contains(string(data), `\u003c`) {
			t.Errorf("HTML characters were escaped: %q", data)
		}
	})

	t.Run("JSONStringifiesUnrepresentable", func(t *testing.T) {
		data, err := JSON(map[string]interface{}{"v": func() {}}).encode()
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		if !strings.HasPrefix(string(data), `{"v":"`) {
			t.Errorf("func value should encode as a string, got %q", data)
		}
	})

	t.Run("ZeroValueRejected", func(t *testing.T) {
		_, err := Value{}.encode()
		if !IsUnsupportedType(err) {
			t.Errorf("got %v, want ErrUnsupportedType", err)
		}
	})
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		kind valueKind
	}{
		{"bytes", []byte("x"), kindBytes},
		{"string", "x", kindText},
		{"map", map[string]int{"a": 1}, kindJSON},
		{"slice", []int{1, 2}, kindJSON},
		{"int rejected", 42, kindInvalid},
		{"struct rejected", struct{}{}, kindInvalid},
		{"nil rejected", nil, kindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.in)
			if v.kind != tt.kind {
				t.Errorf("kind = %v, want %v", v.kind, tt.kind)
			}
		})
	}

	t.Run("RejectionNamesType", func(t *testing.T) {
		_, err := ValueOf(3.14).encode()
		if err == nil || !strings.Contains(err.Error(), "float64") {
			t.Errorf("error should name float64, got %v", err)
		}
	})

	t.Run("ValuePassesThrough", func(t *testing.T) {
		v := ValueOf(Text("x"))
		if v.kind != kindText {
			t.Errorf("kind = %v, want text", v.kind)
		}
	})
}
