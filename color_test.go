package graph

import (
	"regexp"
	"testing"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestRandomColorFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		c := RandomColor()
		if !hexPattern.MatchString(c) {
			t.Fatalf("RandomColor() = %q, want #RRGGBB", c)
		}
	}
}

func TestRandomPalette(t *testing.T) {
	p := RandomPalette(4)
	if len(p) != 4 {
		t.Fatalf("len = %d, want 4", len(p))
	}
	for _, c := range p {
		if !hexPattern.MatchString(c) {
			t.Errorf("palette color %q is not #RRGGBB", c)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#FF6384", want: Color{R: 0xFF, G: 0x63, B: 0x84, A: 255}},
		{in: "36a2eb", want: Color{R: 0x36, G: 0xA2, B: 0xEB, A: 255}},
		{in: "#fff", want: Color{R: 255, G: 255, B: 255, A: 255}},
		{in: "#12345", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexErrorNamesInput(t *testing.T) {
	_, err := ParseHex("zz")
	if err == nil || err.Error() != "invalid hex color 'zz'" {
		t.Fatalf("err = %v", err)
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := ColorRGB(0x4B, 0xC0, 0xC0)
	if got := c.Hex(); got != "#4BC0C0" {
		t.Fatalf("Hex() = %q", got)
	}
	back, err := ParseHex(c.Hex())
	if err != nil || back != c {
		t.Fatalf("ParseHex(Hex()) = %+v, %v", back, err)
	}
}
