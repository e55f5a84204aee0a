// Package sprite composes fills and outlines into self-contained SVG
// documents, one per body part.
package sprite

import (
	"strings"

	"skin-forge/internal/fill"
)

// Nominal canvas sizes, in px, matching the target rendering surface.
const (
	BackpackSize  = 148
	BodySize      = 140
	HandSize      = 76
	FootSize      = 38
	LootShirtSize = 128
	LootInnerSize = 148
	LootOuterSize = 146
	OverlaySize   = 160
	AccessorySize = 180
)

// HandShape selects the hand silhouette, independent of fill.
type HandShape string

const (
	ShapeCircle        HandShape = "circle"
	ShapeRoundedSquare HandShape = "rounded-square"
	ShapeDiamond       HandShape = "diamond"
	ShapeTeardrop      HandShape = "teardrop"
)

// ParseHandShape maps UI labels and document values to a HandShape.
// Unknown input maps to the circle.
func ParseHandShape(s string) HandShape {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	switch HandShape(norm) {
	case ShapeRoundedSquare, ShapeDiamond, ShapeTeardrop:
		return HandShape(norm)
	}
	return ShapeCircle
}

// OutlineStyle selects how the plain stroke is rendered.
type OutlineStyle string

const (
	OutlineSolid    OutlineStyle = "solid"
	OutlineGlow     OutlineStyle = "glow"
	OutlineGradient OutlineStyle = "gradient"
	OutlineDashed   OutlineStyle = "dashed"
	OutlineDouble   OutlineStyle = "double-stroke"
)

// ParseOutlineStyle maps UI labels ("Double Stroke") and document values to
// an OutlineStyle. Unknown input maps to the solid stroke.
func ParseOutlineStyle(s string) OutlineStyle {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
	switch {
	case norm == string(OutlineGlow):
		return OutlineGlow
	case norm == string(OutlineGradient):
		return OutlineGradient
	case norm == string(OutlineDashed):
		return OutlineDashed
	case strings.HasPrefix(norm, "double"):
		return OutlineDouble
	}
	return OutlineSolid
}

// OutlineSpec describes a styled stroke. GlowColor and GlowSize only apply to
// the glow style; zero values fall back to the stroke color and half the
// stroke width.
type OutlineSpec struct {
	Color     string
	Width     float64
	Style     OutlineStyle
	GlowColor string
	GlowSize  float64
}

// PartConfig carries one body part's paint settings. Tint is stored in the
// exported config, never baked into the SVG.
type PartConfig struct {
	Style     fill.Style
	Primary   string
	Secondary string
	Extra     string
	Angle     int
	Gap       int
	Opacity   float64
	Size      int
	Tint      string

	// Hand silhouette controls; ignored by other parts.
	Shape       HandShape
	ShapeScaleX float64
	ShapeScaleY float64
}

// FillParams maps the part config onto the fill generator inputs.
func (c PartConfig) FillParams() fill.Params {
	return fill.Params{
		Primary:   c.Primary,
		Secondary: c.Secondary,
		Extra:     c.Extra,
		Angle:     c.Angle,
		Gap:       c.Gap,
		Opacity:   c.Opacity,
		Size:      c.Size,
	}
}

func (c PartConfig) shapeScaleX() float64 {
	if c.ShapeScaleX <= 0 {
		return 1
	}
	return c.ShapeScaleX
}

func (c PartConfig) shapeScaleY() float64 {
	if c.ShapeScaleY <= 0 {
		return 1
	}
	return c.ShapeScaleY
}
