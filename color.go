package graph

import (
	"math/rand/v2"
	"strconv"

	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/graph/errs"
)

const hexDigits = "0123456789ABCDEF"

// Color is an RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// ColorRGB returns an opaque color.
func ColorRGB(r, g, b int) Color {
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

// Hex returns the color as #RRGGBB, dropping alpha.
func (c Color) Hex() string {
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = hexDigits[v>>4]
		b[2+2*i] = hexDigits[v&0x0F]
	}
	return string(b)
}

// CSS returns rgba(r,g,b,a) with alpha in [0,1].
func (c Color) CSS() string {
	return Sprintf("rgba(%d,%d,%d,%s)", int(c.R), int(c.G), int(c.B),
		strconv.FormatFloat(float64(c.A)/255, 'f', 2, 64))
}

// ParseHex accepts #RGB or #RRGGBB, with or without the leading '#'.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, errs.New("invalid hex color '"+s+"'")
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, errs.New("invalid hex color '"+s+"'")
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// RandomColor returns a pseudo-random #RRGGBB string.
func RandomColor() string {
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i := 1; i < len(b); i++ {
		b[i] = hexDigits[rand.IntN(16)]
	}
	return string(b)
}

// RandomPalette returns n random colors.
func RandomPalette(n int) []string {
	p := make([]string, n)
	for i := range p {
		p[i] = RandomColor()
	}
	return p
}
