package fill

import (
	"strings"
	"testing"
)

func baseParams() Params {
	return Params{
		Primary:   "#f8c574",
		Secondary: "#816537",
		Extra:     "#cba86a",
		Angle:     45,
		Gap:       16,
		Opacity:   0.6,
		Size:      8,
	}
}

func TestSolidHasNoDefs(t *testing.T) {
	defs, ref := Build("body", Solid, baseParams())
	if defs != "" {
		t.Errorf("solid fill emitted defs: %s", defs)
	}
	if ref != "#f8c574" {
		t.Errorf("solid ref = %q, want primary color", ref)
	}
}

func TestPatternIDsAreScopedByPrefix(t *testing.T) {
	cases := []struct {
		style Style
		id    string
	}{
		{LinearGradient, "body-lg"},
		{RadialGradient, "body-rg"},
		{DiagonalStripes, "body-ds"},
		{HorizontalStripes, "body-hs"},
		{VerticalStripes, "body-vs"},
		{Crosshatch, "body-ch"},
		{Dots, "body-pd"},
		{Checker, "body-ck"},
	}
	for _, c := range cases {
		defs, ref := Build("body", c.style, baseParams())
		if !strings.Contains(defs, `id="`+c.id+`"`) {
			t.Errorf("%s: defs missing id %q: %s", c.style, c.id, defs)
		}
		if ref != "url(#"+c.id+")" {
			t.Errorf("%s: ref = %q, want url(#%s)", c.style, ref, c.id)
		}
	}

	// Two parts with the same style must not collide.
	bodyDefs, _ := Build("body", Dots, baseParams())
	handDefs, _ := Build("hands", Dots, baseParams())
	if strings.Contains(handDefs, `id="body-pd"`) || bodyDefs == handDefs {
		t.Error("pattern ids must differ between parts")
	}
}

func TestStripeTilePeriod(t *testing.T) {
	defs, _ := Build("bp", DiagonalStripes, baseParams())
	if !strings.Contains(defs, `width="32" height="32"`) {
		t.Errorf("stripe tile should be 2*gap: %s", defs)
	}
	if !strings.Contains(defs, `patternTransform="rotate(45)"`) {
		t.Errorf("diagonal stripes use the configured angle: %s", defs)
	}
}

func TestStripeFixedAngles(t *testing.T) {
	h, _ := Build("bp", HorizontalStripes, baseParams())
	if !strings.Contains(h, `rotate(0)`) {
		t.Errorf("horizontal stripes rotate(0): %s", h)
	}
	v, _ := Build("bp", VerticalStripes, baseParams())
	if !strings.Contains(v, `rotate(90)`) {
		t.Errorf("vertical stripes rotate(90): %s", v)
	}
}

func TestCrosshatchStrokeThickness(t *testing.T) {
	defs, _ := Build("bp", Crosshatch, baseParams())
	if !strings.Contains(defs, `stroke-width="8"`) {
		t.Errorf("crosshatch stroke should be gap/2: %s", defs)
	}
}

func TestDotsTile(t *testing.T) {
	defs, _ := Build("bp", Dots, baseParams())
	if !strings.Contains(defs, `width="16" height="16"`) {
		t.Errorf("dot tile period should equal gap: %s", defs)
	}
	if !strings.Contains(defs, `r="8"`) {
		t.Errorf("dot radius should be size: %s", defs)
	}
}

func TestCheckerUsesSecondary(t *testing.T) {
	defs, _ := Build("bp", Checker, baseParams())
	if !strings.Contains(defs, `fill="#816537"`) {
		t.Errorf("checker alternate cells use the secondary color: %s", defs)
	}
	if !strings.Contains(defs, `width="16" height="16"`) {
		t.Errorf("checker tile should be 2*size: %s", defs)
	}
}

func TestParseStyle(t *testing.T) {
	cases := []struct {
		in   string
		want Style
	}{
		{"Solid", Solid},
		{"Linear Gradient", LinearGradient},
		{"radial-gradient", RadialGradient},
		{"Diagonal Stripes", DiagonalStripes},
		{"CHECKER", Checker},
		{"", Solid},
		{"sparkles", Solid},
	}
	for _, c := range cases {
		if got := ParseStyle(c.in); got != c.want {
			t.Errorf("ParseStyle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
