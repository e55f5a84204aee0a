package sprite

import (
	"fmt"
	"strings"

	"skin-forge/internal/colorutil"
	"skin-forge/internal/fill"
	"skin-forge/internal/svgutil"
)

// Builder assembles one part SVG from a resolved fill.
type Builder func(fillDefs, fillRef string, cfg PartConfig, out *OutlineSpec) string

// Build resolves the part's fill and hands it to the builder. The part name
// scopes fill definition ids so several parts can be composed into one
// document without collisions.
func Build(part string, cfg PartConfig, b Builder, out *OutlineSpec) string {
	defs, ref := fill.Build(part, cfg.Style, cfg.FillParams())
	return b(defs, ref, cfg, out)
}

// DefaultBackpackOutline matches the stock circle-base sprite stroke.
func DefaultBackpackOutline() *OutlineSpec {
	return &OutlineSpec{Color: "#333333", Width: 11.014, Style: OutlineSolid}
}

// DefaultHandOutline matches the stock hand sprite stroke.
func DefaultHandOutline() *OutlineSpec {
	return &OutlineSpec{Color: "#333333", Width: 11.096, Style: OutlineSolid}
}

// DefaultFootOutline matches the stock foot sprite stroke.
func DefaultFootOutline() *OutlineSpec {
	return &OutlineSpec{Color: "#333333", Width: 4.513, Style: OutlineSolid}
}

// Backpack renders the 148x148 circle-base sprite.
func Backpack(fillDefs, fillRef string, cfg PartConfig, out *OutlineSpec) string {
	if out == nil {
		out = DefaultBackpackOutline()
	}
	defs, attrs, outer := outlineParts(out, "backpack")
	parts := []string{svgutil.Header(BackpackSize, BackpackSize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	if defs != "" {
		parts = append(parts, defs)
	}
	if outer != "" {
		parts = append(parts, fmt.Sprintf(
			`<ellipse cx="74" cy="74" rx="66.5" ry="66.5" fill="none" %s />`, outer))
	}
	parts = append(parts, fmt.Sprintf(
		`<ellipse cx="74" cy="74" rx="66.5" ry="66.5" fill="%s" %s />`, fillRef, attrs))
	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}

// Body renders the 140x140 base sprite. No stroke: the engine applies tint at
// runtime, an outline would be baked twice.
func Body(fillDefs, fillRef string, cfg PartConfig, out *OutlineSpec) string {
	parts := []string{svgutil.Header(BodySize, BodySize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	parts = append(parts, fmt.Sprintf(
		`<ellipse cx="70" cy="70" rx="66" ry="66" fill="%s" />`, fillRef))
	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}

// Hands renders the 76x76 hand sprite with the configured silhouette.
func Hands(fillDefs, fillRef string, cfg PartConfig, out *OutlineSpec) string {
	if out == nil {
		out = DefaultHandOutline()
	}
	defs, attrs, outer := outlineParts(out, "hands")
	parts := []string{svgutil.Header(HandSize, HandSize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	if defs != "" {
		parts = append(parts, defs)
	}

	const cx, cy = 38.0, 38.0
	sx, sy := cfg.shapeScaleX(), cfg.shapeScaleY()

	switch cfg.Shape {
	case ShapeRoundedSquare:
		size := 48 * sx
		radius := 12 * sy
		x := cx - size/2
		y := cy - size/2
		rect := func(fillAttr, strokeAttr string) string {
			return fmt.Sprintf(
				`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="%s" %s />`,
				x, y, size, size, radius, radius, fillAttr, strokeAttr)
		}
		if outer != "" {
			parts = append(parts, rect("none", outer))
		}
		parts = append(parts, rect(fillRef, attrs))

	case ShapeDiamond:
		halfW := 28 * sx
		halfH := 32 * sy
		points := fmt.Sprintf("%.2f,%.2f %.2f,%.2f %.2f,%.2f %.2f,%.2f",
			cx, cy-halfH, cx+halfW, cy, cx, cy+halfH, cx-halfW, cy)
		if outer != "" {
			parts = append(parts, fmt.Sprintf(
				`<polygon points="%s" fill="none" %s />`, points, outer))
		}
		parts = append(parts, fmt.Sprintf(
			`<polygon points="%s" fill="%s" %s />`, points, fillRef, attrs))

	case ShapeTeardrop:
		radius := 30 * min(sx, sy)
		tipOffset := 26 * sy
		path := fmt.Sprintf(
			"M %.2f %.2f A %.2f %.2f 0 1 1 %.2f %.2f L %.2f %.2f Z",
			cx-radius, cy, radius, radius, cx+radius, cy, cx, cy+tipOffset)
		if outer != "" {
			parts = append(parts, fmt.Sprintf(`<path d="%s" fill="none" %s />`, path, outer))
		}
		parts = append(parts, fmt.Sprintf(`<path d="%s" fill="%s" %s />`, path, fillRef, attrs))

	default: // circle / ellipse
		rx := 30.4 * sx
		ry := 30.4 * sy
		if outer != "" {
			parts = append(parts, fmt.Sprintf(
				`<ellipse cx="38" cy="38" rx="%.2f" ry="%.2f" fill="none" %s />`, rx, ry, outer))
		}
		parts = append(parts, fmt.Sprintf(
			`<ellipse cx="38" cy="38" rx="%.2f" ry="%.2f" fill="%s" %s />`, rx, ry, fillRef, attrs))
	}

	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}

// Feet renders the 38x38 foot sprite.
func Feet(fillDefs, fillRef string, cfg PartConfig, out *OutlineSpec) string {
	if out == nil {
		out = DefaultFootOutline()
	}
	defs, attrs, outer := outlineParts(out, "feet")
	parts := []string{svgutil.Header(FootSize, FootSize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	if defs != "" {
		parts = append(parts, defs)
	}
	if outer != "" {
		parts = append(parts, fmt.Sprintf(
			`<ellipse cx="19" cy="19" rx="15.7" ry="9.8" fill="none" %s />`, outer))
	}
	parts = append(parts, fmt.Sprintf(
		`<ellipse cx="19" cy="19" rx="15.7" ry="9.8" fill="%s" %s />`, fillRef, attrs))
	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}

// Overlay renders the preview-only armor ring and helmet accent.
func Overlay() string {
	parts := []string{svgutil.Header(OverlaySize, OverlaySize)}
	center := OverlaySize / 2
	parts = append(parts, fmt.Sprintf(
		`<circle cx="%d" cy="%d" r="70" fill="none" stroke="#20160a" stroke-width="12" />`,
		center, center))
	parts = append(parts, fmt.Sprintf(
		`<circle cx="%d" cy="%d" r="40" fill="#3c7fda" stroke="#174173" stroke-width="8" />`,
		center, center-22))
	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}

// lootShirtPath is the silhouette of the stock loot-shirt sprite. Only the
// fill color varies so exported icons match the in-game asset.
const lootShirtPath = "M63.993 8.15c-10.38 0-22.796 3.526-30.355 7.22-8.038 3.266-14.581 7.287-19.253 14.509C8.102 39.594 5.051 54.6 7.13 78.482c5.964 2.07 11.333 1.45 16.842-.415-1.727-7.884-1.448-15.764.496-22.204 2.126-7.044 6.404-12.722 12.675-13.701l2.77-.432.074 2.803c.054 2.043.09 4.17.116 6.335l.027 6.312c-.037 8.798-.382 18.286-1.277 27.845 5.637 1.831 14.806 2.954 23.964 3.019l4.597-.058c8.53-.275 16.742-1.449 21.665-3.063-1.093-14.65-1.166-29.434-1.52-41.334l-.097-3.283 3.18.824c6.238 1.617 10.55 7.376 12.76 14.507 2.02 6.51 2.353 14.37.64 22.248a29.764 29.764 0 0 0 12.847 1.181l4.399-.588c1.033-18.811-1.433-37.403-6.27-46.264l-4.408-6.376c-4.647-5.357-10.62-8.399-17.665-11.074-6.746-3.458-18.358-6.614-28.95-6.614zm0 3.05c6.494 0 13.37 1.942 19.274 4.516-3.123 2.758-6.971 4.665-11.067 5.754l-7.852 17.31-6.838-16.882c-4.757-.93-9.26-2.957-12.783-6.174C50.9 13.081 57.809 11.2 63.993 11.2zm.58 28.539l3.512 5.327-3.497 5.053-3.53-5.053zm0 11.888l3.512 5.328-3.497 5.052-3.53-5.053 3.514-5.327zm0 11.733l3.512 5.327-3.497 5.054-3.53-5.054zm0 11.876l3.512 5.327-3.497 5.054-3.53-5.053 3.514-5.327zm25.079 13.715c-6.61 2.055-15.829 2.907-25.277 2.951-9.5.045-18.965-.744-25.902-2.892-.205 1.785-.43 3.569-.678 5.347 5.968 2.132 16.346 3.408 26.497 3.36 10.143-.05 20.355-1.444 25.912-3.433a241.302 241.302 0 0 1-.552-5.333zm1.368 9.086c-6.782 2.308-16.533 3.262-26.53 3.31-2.935.015-5.866-.052-8.724-.213l-4.227-.315c-5.358-.5-10.307-1.382-14.329-2.758-.897 5.43-2.02 10.772-3.413 15.903 2.117 1.06 4.41 1.968 6.835 2.733l3.97 1.096c15.85 3.805 35.88 2.156 49.601-3.513-1.355-5.09-2.387-10.57-3.183-16.243z"

// LootShirt renders the 128x128 loot icon, flat-filled with the tint.
// No stroke: it must match the stock asset exactly.
func LootShirt(tintHex string) string {
	parts := []string{svgutil.Header(LootShirtSize, LootShirtSize)}
	parts = append(parts, fmt.Sprintf(`<path d="%s" fill="%s"/>`, lootShirtPath, tintHex))
	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}

// LootInner renders the translucent radial highlight behind the loot icon.
// Highlight and fade are derived from the single tint so variants stay
// visually consistent.
func LootInner(baseHex string) string {
	highlight := colorutil.MustLighten(baseHex, 0.25)
	fade := colorutil.MustDarken(baseHex, 0.65)
	parts := []string{svgutil.Header(LootInnerSize, LootInnerSize)}
	parts = append(parts, fmt.Sprintf(
		`<defs><radialGradient id="lootInner" cx="50%%" cy="50%%" r="50%%" gradientUnits="userSpaceOnUse">`+
			`<stop offset="0%%" stop-color="%s" stop-opacity="1"/>`+
			`<stop offset="100%%" stop-color="%s" stop-opacity="0"/>`+
			`</radialGradient></defs>`,
		highlight, fade))
	parts = append(parts,
		`<ellipse cx="74" cy="74" rx="68.861" ry="68.769" fill="url(#lootInner)" />`)
	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}

// LootOuter renders the stroked loot border ring.
func LootOuter(strokeHex string) string {
	fillCol := colorutil.MustLighten(strokeHex, 0.6)
	parts := []string{svgutil.Header(LootOuterSize, LootOuterSize)}
	parts = append(parts, fmt.Sprintf(
		`<ellipse cx="73" cy="73" rx="68.861" ry="68.769" fill="%s" fill-opacity="0.27" `+
			`stroke="%s" stroke-width="6.21" stroke-opacity="0.77" />`,
		fillCol, strokeHex))
	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}

// AccessoryParams tunes the layered-ellipse accessory sprite.
type AccessoryParams struct {
	FlareScale float64 // outer circle relative to the base radius
	TipScale   float64 // highlight circle relative to the base radius
	Highlight  string  // highlight color
}

// Accessory renders the optional 180x180 front sprite.
func Accessory(fillDefs, fillRef string, p AccessoryParams, out *OutlineSpec) string {
	if p.FlareScale <= 0 {
		p.FlareScale = 1.1
	}
	if p.TipScale <= 0 {
		p.TipScale = 0.45
	}
	if p.Highlight == "" {
		p.Highlight = "#ffffff"
	}

	var attrs string
	if out != nil {
		attrs = svgutil.StrokeAttrs(out.Color, out.Width)
	}

	parts := []string{svgutil.Header(AccessorySize, AccessorySize)}
	if fillDefs != "" {
		parts = append(parts, fillDefs)
	}
	center := float64(AccessorySize) / 2
	baseRadius := 72.0
	parts = append(parts, fmt.Sprintf(
		`<circle cx="%s" cy="%s" r="%.2f" fill="%s" %s />`,
		svgutil.Num(center), svgutil.Num(center), baseRadius*p.FlareScale, fillRef, attrs))
	parts = append(parts, fmt.Sprintf(
		`<circle cx="%s" cy="%.2f" r="%.2f" fill="%s" %s />`,
		svgutil.Num(center), center+16, baseRadius, fillRef, attrs))
	parts = append(parts, fmt.Sprintf(
		`<circle cx="%s" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.65" />`,
		svgutil.Num(center), center-baseRadius*0.85, baseRadius*p.TipScale, p.Highlight))
	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}
