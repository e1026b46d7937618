package bargraph

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#0032c8", RGB(0, 50, 200)},
		{"0032C8", RGB(0, 50, 200)},
		{"#fff", RGB(255, 255, 255)},
		{"#1a3", RGB(0x11, 0xaa, 0x33)},
		{"#010203", RGB(1, 2, 3)},
		{" #969696 ", RGB(150, 150, 150)},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345g", "#g12345", "red", "#1234567", "#12"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, c := range []Color{RGB(0, 0, 0), RGB(255, 255, 255), RGB(0, 50, 200), RGB(1, 254, 127)} {
		got, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", c.Hex(), err)
		}
		if got != c {
			t.Errorf("ParseHex(%q) = %v, want %v", c.Hex(), got, c)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(20, 150, 50).Hex(); got != "#149632" {
		t.Errorf("expected '#149632', got %q", got)
	}
}

func TestPlainStyler(t *testing.T) {
	if got := PlainStyler.Style("abc", RGB(1, 2, 3)); got != "abc" {
		t.Errorf("expected text unchanged, got %q", got)
	}
}
