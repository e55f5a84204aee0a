// Package fill builds the gradient and pattern defs blocks that paint
// generated sprites.
package fill

import (
	"fmt"
	"strings"

	"skin-forge/internal/svgutil"
)

// Style selects how a part is painted.
type Style string

const (
	Solid             Style = "solid"
	LinearGradient    Style = "linear-gradient"
	RadialGradient    Style = "radial-gradient"
	DiagonalStripes   Style = "diagonal-stripes"
	HorizontalStripes Style = "horizontal-stripes"
	VerticalStripes   Style = "vertical-stripes"
	Crosshatch        Style = "crosshatch"
	Dots              Style = "dots"
	Checker           Style = "checker"
)

// ParseStyle accepts both the document form ("linear-gradient") and the
// UI labels ("Linear Gradient"), case-insensitively. Unknown input
// maps to Solid.
func ParseStyle(s string) Style {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	switch Style(norm) {
	case LinearGradient, RadialGradient, DiagonalStripes, HorizontalStripes,
		VerticalStripes, Crosshatch, Dots, Checker:
		return Style(norm)
	}
	return Solid
}

// Params carries the color and tiling inputs for one fill.
type Params struct {
	Primary   string  // base color
	Secondary string  // gradient end / checker alternate
	Extra     string  // stripe/dot accent color
	Angle     int     // degrees, gradients and diagonal stripes
	Gap       int     // tile spacing in px
	Opacity   float64 // accent opacity
	Size      int     // dot radius / checker cell size
}

// Build returns the defs markup and fill reference for the style. Definition
// ids are namespaced by prefix so several parts can share one document.
func Build(prefix string, style Style, p Params) (defs, ref string) {
	id := func(kind string) string { return prefix + "-" + kind }
	switch style {
	case LinearGradient:
		return defLinearGrad(id("lg"), p.Primary, p.Secondary, p.Angle), url(id("lg"))
	case RadialGradient:
		return defRadialGrad(id("rg"), p.Primary, p.Secondary), url(id("rg"))
	case DiagonalStripes:
		return defStripes(id("ds"), p.Primary, p.Extra, p.Gap, p.Angle, p.Opacity), url(id("ds"))
	case HorizontalStripes:
		return defStripes(id("hs"), p.Primary, p.Extra, p.Gap, 0, p.Opacity), url(id("hs"))
	case VerticalStripes:
		return defStripes(id("vs"), p.Primary, p.Extra, p.Gap, 90, p.Opacity), url(id("vs"))
	case Crosshatch:
		return defCrosshatch(id("ch"), p.Primary, p.Extra, p.Gap, p.Opacity), url(id("ch"))
	case Dots:
		return defDots(id("pd"), p.Primary, p.Extra, p.Size, p.Gap, p.Opacity), url(id("pd"))
	case Checker:
		return defChecker(id("ck"), p.Primary, p.Secondary, p.Size), url(id("ck"))
	}
	return "", p.Primary
}

func url(id string) string { return fmt.Sprintf("url(#%s)", id) }

func defLinearGrad(id, colorA, colorB string, angleDeg int) string {
	return fmt.Sprintf(
		`<defs><linearGradient id="%s" gradientUnits="userSpaceOnUse" `+
			`x1="0" y1="0" x2="512" y2="0" gradientTransform="rotate(%d 256 256)">`+
			`<stop offset="0%%" stop-color="%s"/>`+
			`<stop offset="100%%" stop-color="%s"/>`+
			`</linearGradient></defs>`,
		id, angleDeg, colorA, colorB)
}

func defRadialGrad(id, colorA, colorB string) string {
	return fmt.Sprintf(
		`<defs><radialGradient id="%s" cx="50%%" cy="45%%" r="60%%">`+
			`<stop offset="0%%" stop-color="%s"/>`+
			`<stop offset="100%%" stop-color="%s"/>`+
			`</radialGradient></defs>`,
		id, colorA, colorB)
}

func defStripes(id, base, stripe string, gap, angle int, opacity float64) string {
	return fmt.Sprintf(
		`<defs><pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d" `+
			`patternTransform="rotate(%d)">`+
			`<rect width="100%%" height="100%%" fill="%s"/>`+
			`<rect x="0" y="0" width="%d" height="100%%" fill="%s" opacity="%s"/>`+
			`</pattern></defs>`,
		id, gap*2, gap*2, angle, base, gap, stripe, svgutil.Num(opacity))
}

func defCrosshatch(id, base, stripe string, gap int, opacity float64) string {
	return fmt.Sprintf(
		`<defs><pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d">`+
			`<rect width="100%%" height="100%%" fill="%s"/>`+
			`<path d="M0,0 L%d,0 M0,0 L0,%d" stroke="%s" stroke-width="%s" opacity="%s"/>`+
			`</pattern></defs>`,
		id, gap, gap, base, gap, gap, stripe, svgutil.Num(float64(gap)/2), svgutil.Num(opacity))
}

func defDots(id, base, dot string, size, gap int, opacity float64) string {
	return fmt.Sprintf(
		`<defs><pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d">`+
			`<rect width="100%%" height="100%%" fill="%s"/>`+
			`<circle cx="%s" cy="%s" r="%d" fill="%s" opacity="%s"/>`+
			`</pattern></defs>`,
		id, gap, gap, base,
		svgutil.Num(float64(gap)/2), svgutil.Num(float64(gap)/2), size, dot, svgutil.Num(opacity))
}

func defChecker(id, colorA, colorB string, size int) string {
	return fmt.Sprintf(
		`<defs><pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d">`+
			`<rect width="%d" height="%d" fill="%s"/>`+
			`<rect x="%d" width="%d" height="%d" y="0" fill="%s"/>`+
			`<rect x="0" y="%d" width="%d" height="%d" fill="%s"/>`+
			`</pattern></defs>`,
		id, 2*size, 2*size, 2*size, 2*size, colorA,
		size, size, size, colorB,
		size, size, size, colorB)
}
