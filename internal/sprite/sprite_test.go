package sprite

import (
	"strings"
	"testing"

	"skin-forge/internal/fill"
)

func baseCfg() PartConfig {
	return PartConfig{
		Style:     fill.Solid,
		Primary:   "#111111",
		Secondary: "#111111",
		Extra:     "#111111",
		Angle:     0,
		Gap:       10,
		Opacity:   1,
		Size:      10,
	}
}

func TestBodyHasNoStroke(t *testing.T) {
	svg := Build("body", baseCfg(), Body, nil)
	if strings.Contains(svg, "stroke=") {
		t.Errorf("body sprite must be strokeless:\n%s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 140 140"`) {
		t.Errorf("body canvas should be 140x140:\n%s", svg)
	}
	if !strings.Contains(svg, `fill="#111111"`) {
		t.Errorf("solid body fill missing:\n%s", svg)
	}
}

func TestBackpackDefaultOutline(t *testing.T) {
	svg := Build("backpack", baseCfg(), Backpack, nil)
	if !strings.Contains(svg, `stroke="#333333"`) || !strings.Contains(svg, `stroke-width="11.014"`) {
		t.Errorf("backpack default stroke missing:\n%s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 148 148"`) {
		t.Errorf("backpack canvas should be 148x148:\n%s", svg)
	}
}

func TestGlowOutlineSupportsCustomColorAndSize(t *testing.T) {
	out := &OutlineSpec{
		Color:     "#5522aa",
		Width:     10,
		Style:     OutlineGlow,
		GlowColor: "#ff2200",
		GlowSize:  18,
	}
	svg := Build("backpack", baseCfg(), Backpack, out)
	if !strings.Contains(svg, "backpack-glow") {
		t.Errorf("glow filter id missing:\n%s", svg)
	}
	if !strings.Contains(svg, `flood-color="#ff2200"`) {
		t.Errorf("glow flood color missing:\n%s", svg)
	}
	if !strings.Contains(svg, `filter="url(#backpack-glow)"`) {
		t.Errorf("glow filter reference missing:\n%s", svg)
	}
	if !strings.Contains(svg, `stdDeviation="9.00"`) {
		t.Errorf("glow blur should be half the glow size:\n%s", svg)
	}
}

func TestGlowOutlineDefaults(t *testing.T) {
	out := &OutlineSpec{Color: "#5522aa", Width: 10, Style: OutlineGlow}
	svg := Build("hands", baseCfg(), Hands, out)
	if !strings.Contains(svg, `flood-color="#5522aa"`) {
		t.Errorf("glow should fall back to the stroke color:\n%s", svg)
	}
	if !strings.Contains(svg, `stdDeviation="5.00"`) {
		t.Errorf("glow blur should default to width/2:\n%s", svg)
	}
}

func TestGradientOutline(t *testing.T) {
	out := &OutlineSpec{Color: "#5522aa", Width: 10, Style: OutlineGradient}
	svg := Build("backpack", baseCfg(), Backpack, out)
	if !strings.Contains(svg, "backpack-stroke-grad") {
		t.Errorf("gradient id missing:\n%s", svg)
	}
	if !strings.Contains(svg, `stroke="url(#backpack-stroke-grad)"`) {
		t.Errorf("gradient stroke reference missing:\n%s", svg)
	}
}

func TestDashedOutline(t *testing.T) {
	out := &OutlineSpec{Color: "#5522aa", Width: 10, Style: OutlineDashed}
	svg := Build("feet", baseCfg(), Feet, out)
	if !strings.Contains(svg, `stroke-dasharray="16.00 9.00"`) {
		t.Errorf("dash pattern should be 1.6w/0.9w:\n%s", svg)
	}
}

func TestDoubleStrokeOutline(t *testing.T) {
	out := &OutlineSpec{Color: "#5522aa", Width: 10, Style: OutlineDouble}
	svg := Build("backpack", baseCfg(), Backpack, out)
	if strings.Count(svg, `stroke="`) < 2 {
		t.Errorf("double stroke should render two stroked shapes:\n%s", svg)
	}
	if !strings.Contains(svg, `stroke-width="16"`) {
		t.Errorf("outer ring should be 1.6x wider:\n%s", svg)
	}
	if !strings.Contains(svg, `fill="none"`) {
		t.Errorf("outer ring must be stroke-only:\n%s", svg)
	}
}

func TestHandShapes(t *testing.T) {
	cases := []struct {
		shape  HandShape
		marker string
	}{
		{ShapeCircle, "<ellipse"},
		{ShapeRoundedSquare, "<rect"},
		{ShapeDiamond, "<polygon"},
		{ShapeTeardrop, "<path"},
	}
	for _, c := range cases {
		cfg := baseCfg()
		cfg.Shape = c.shape
		svg := Build("hands", cfg, Hands, nil)
		if !strings.Contains(svg, c.marker) {
			t.Errorf("%s: expected %s element:\n%s", c.shape, c.marker, svg)
		}
		if !strings.Contains(svg, `viewBox="0 0 76 76"`) {
			t.Errorf("%s: hand canvas should be 76x76", c.shape)
		}
	}
}

func TestParseHandShape(t *testing.T) {
	if got := ParseHandShape("Rounded Square"); got != ShapeRoundedSquare {
		t.Errorf("ParseHandShape = %q", got)
	}
	if got := ParseHandShape("banana"); got != ShapeCircle {
		t.Errorf("unknown shape should map to circle, got %q", got)
	}
}

func TestParseOutlineStyle(t *testing.T) {
	cases := []struct {
		in   string
		want OutlineStyle
	}{
		{"Solid", OutlineSolid},
		{"Glow", OutlineGlow},
		{"Double Stroke", OutlineDouble},
		{"double-stroke", OutlineDouble},
		{"dashed", OutlineDashed},
		{"", OutlineSolid},
	}
	for _, c := range cases {
		if got := ParseOutlineStyle(c.in); got != c.want {
			t.Errorf("ParseOutlineStyle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLootShirtFlatTint(t *testing.T) {
	svg := LootShirt("#a74f38")
	if !strings.Contains(svg, `fill="#a74f38"`) {
		t.Errorf("loot shirt tint missing:\n%s", svg)
	}
	if strings.Contains(svg, "stroke=") {
		t.Errorf("loot shirt must not carry a stroke:\n%s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 128 128"`) {
		t.Error("loot shirt canvas should be 128x128")
	}
}

func TestLootRingsDeriveFromTint(t *testing.T) {
	inner := LootInner("#808080")
	if !strings.Contains(inner, `stop-color="#a0a0a0"`) {
		t.Errorf("inner highlight should be lighten(0.25):\n%s", inner)
	}
	if !strings.Contains(inner, `stop-color="#2d2d2d"`) {
		t.Errorf("inner fade should be darken(0.65):\n%s", inner)
	}

	outer := LootOuter("#808080")
	if !strings.Contains(outer, `stroke="#808080"`) {
		t.Errorf("outer ring stroke missing:\n%s", outer)
	}
	if !strings.Contains(outer, `fill="#cccccc"`) {
		t.Errorf("outer ring fill should be lighten(0.6):\n%s", outer)
	}
}

func TestOverlayCanvas(t *testing.T) {
	svg := Overlay()
	if !strings.Contains(svg, `viewBox="0 0 160 160"`) {
		t.Error("overlay canvas should be 160x160")
	}
	if !strings.Contains(svg, `r="70"`) {
		t.Errorf("armor ring missing:\n%s", svg)
	}
}

func TestFillIDsScopedAcrossParts(t *testing.T) {
	cfg := baseCfg()
	cfg.Style = fill.Dots
	body := Build("body", cfg, Body, nil)
	hands := Build("hands", cfg, Hands, nil)
	if !strings.Contains(body, `id="body-pd"`) || !strings.Contains(hands, `id="hands-pd"`) {
		t.Error("fill ids must be prefixed by part name")
	}
}

func TestFromUploadTransforms(t *testing.T) {
	svg := FromUpload([]byte{1, 2, 3}, "image/png", 140, 140, 30, 1.5)
	for _, want := range []string{
		"translate(70.00,70.00)",
		"rotate(30.00)",
		"scale(1.5000)",
		"translate(-70.00,-70.00)",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("upload transform missing %q:\n%s", want, svg)
		}
	}
	if !strings.Contains(svg, "data:image/png;base64,") {
		t.Errorf("upload should embed a base64 data URI:\n%s", svg)
	}
}

func TestFromUploadIdentityHasNoTransform(t *testing.T) {
	svg := FromUpload([]byte{1}, "image/svg+xml", 76, 76, 0, 1)
	if strings.Contains(svg, "transform=") {
		t.Errorf("identity placement should omit the transform:\n%s", svg)
	}
}
