package sprite

import (
	"fmt"

	"skin-forge/internal/colorutil"
	"skin-forge/internal/svgutil"
)

// outlineParts expands an OutlineSpec into the defs block, the stroke
// attribute block for the primary shape, and an optional attribute block for
// a wider outer stroke drawn behind it (double-stroke only).
func outlineParts(spec *OutlineSpec, prefix string) (defs, attrs, outer string) {
	if spec == nil || spec.Color == "" || spec.Width <= 0 {
		return "", "", ""
	}

	attrs = svgutil.StrokeAttrs(spec.Color, spec.Width)

	switch spec.Style {
	case OutlineGlow:
		floodColor := spec.GlowColor
		if floodColor == "" {
			floodColor = spec.Color
		}
		glowSize := spec.GlowSize
		if glowSize <= 0 {
			glowSize = spec.Width
		}
		blur := glowSize / 2
		filterID := prefix + "-glow"
		defs = fmt.Sprintf(
			`<defs><filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+
				`<feFlood flood-color="%s" result="flood"/>`+
				`<feComposite in="flood" in2="SourceAlpha" operator="in" result="mask"/>`+
				`<feGaussianBlur in="mask" stdDeviation="%.2f" result="blur"/>`+
				`<feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge>`+
				`</filter></defs>`,
			filterID, floodColor, blur)
		attrs = fmt.Sprintf(`%s filter="url(#%s)"`,
			svgutil.StrokeAttrs(spec.Color, spec.Width), filterID)

	case OutlineGradient:
		gradID := prefix + "-stroke-grad"
		defs = fmt.Sprintf(
			`<defs><linearGradient id="%s" x1="0%%" y1="0%%" x2="0%%" y2="100%%">`+
				`<stop offset="0%%" stop-color="%s"/>`+
				`<stop offset="100%%" stop-color="%s"/>`+
				`</linearGradient></defs>`,
			gradID,
			colorutil.MustLighten(spec.Color, 0.2),
			colorutil.MustDarken(spec.Color, 0.2))
		attrs = fmt.Sprintf(`stroke="url(#%s)" stroke-width="%s"`, gradID, svgutil.Num(spec.Width))

	case OutlineDashed:
		dash := spec.Width * 1.6
		gap := spec.Width * 0.9
		attrs = fmt.Sprintf(`%s stroke-dasharray="%.2f %.2f"`,
			svgutil.StrokeAttrs(spec.Color, spec.Width), dash, gap)

	case OutlineDouble:
		outer = svgutil.StrokeAttrs(colorutil.MustDarken(spec.Color, 0.25), spec.Width*1.6)
	}

	return defs, attrs, outer
}
