package colorutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidColor is returned when a hex color string cannot be parsed.
var ErrInvalidColor = errors.New("colorutil: invalid color")

// RGB is one color channel triple.
type RGB struct {
	R, G, B uint8
}

// HexToRGB parses a 6-digit hex color. A leading '#' is optional.
func HexToRGB(hex string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	var c RGB
	for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
		v, err := parseByte(h[i*2 : i*2+2])
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		*dst = v
	}
	return c, nil
}

func parseByte(s string) (uint8, error) {
	var v uint8
	for i := 0; i < 2; i++ {
		d := hexDigit(s[i])
		if d < 0 {
			return 0, fmt.Errorf("bad hex digit %q", s[i])
		}
		v = v<<4 | uint8(d)
	}
	return v, nil
}

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// Hex renders the color as a CSS "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// TSHex renders the color as a TypeScript-style "0xrrggbb" literal.
func (c RGB) TSHex() string {
	return fmt.Sprintf("0x%02x%02x%02x", c.R, c.G, c.B)
}

// TSHexFromHex is a convenience for the common parse-then-render pair.
func TSHexFromHex(hex string) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return c.TSHex(), nil
}

// ClampByte rounds a channel value to the nearest integer in [0,255].
func ClampByte(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// Lighten interpolates each channel toward 255 by amount (0-1).
func Lighten(hex string, amount float64) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	out := RGB{
		R: ClampByte(float64(c.R) + (255-float64(c.R))*amount),
		G: ClampByte(float64(c.G) + (255-float64(c.G))*amount),
		B: ClampByte(float64(c.B) + (255-float64(c.B))*amount),
	}
	return out.Hex(), nil
}

// Darken interpolates each channel toward 0 by amount (0-1).
func Darken(hex string, amount float64) (string, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	out := RGB{
		R: ClampByte(float64(c.R) * (1 - amount)),
		G: ClampByte(float64(c.G) * (1 - amount)),
		B: ClampByte(float64(c.B) * (1 - amount)),
	}
	return out.Hex(), nil
}

// MustLighten is Lighten for colors the caller already validated.
// It falls back to the input on parse failure.
func MustLighten(hex string, amount float64) string {
	out, err := Lighten(hex, amount)
	if err != nil {
		return hex
	}
	return out
}

// MustDarken is Darken with the same fallback as MustLighten.
func MustDarken(hex string, amount float64) string {
	out, err := Darken(hex, amount)
	if err != nil {
		return hex
	}
	return out
}
