package sprite

import (
	"fmt"
	"math"
	"strings"

	"skin-forge/internal/svgutil"
)

const epsilon = 1e-6

// FromUpload wraps an uploaded sprite (SVG or bitmap bytes) in a canvas of
// the target nominal size. The image is center-anchored; rotation (degrees)
// and uniform scale are applied around the canvas center.
func FromUpload(data []byte, mime string, width, height int, rotation, scale float64) string {
	if mime == "" {
		mime = "image/png"
	}
	dataURI := svgutil.BytesDataURI(data, mime)

	cx := float64(width) / 2
	cy := float64(height) / 2
	var transforms []string
	if math.Abs(rotation) > epsilon || math.Abs(scale-1) > epsilon {
		transforms = append(transforms, fmt.Sprintf("translate(%.2f,%.2f)", cx, cy))
		if math.Abs(rotation) > epsilon {
			transforms = append(transforms, fmt.Sprintf("rotate(%.2f)", rotation))
		}
		if math.Abs(scale-1) > epsilon {
			transforms = append(transforms, fmt.Sprintf("scale(%.4f)", scale))
		}
		transforms = append(transforms, fmt.Sprintf("translate(%.2f,%.2f)", -cx, -cy))
	}
	transformAttr := ""
	if len(transforms) > 0 {
		transformAttr = fmt.Sprintf(` transform="%s"`, strings.Join(transforms, " "))
	}

	parts := []string{svgutil.Header(width, height)}
	parts = append(parts, fmt.Sprintf(
		`<image href="%s" x="0" y="0" width="%d" height="%d" preserveAspectRatio="xMidYMid meet"%s />`,
		dataURI, width, height, transformAttr))
	parts = append(parts, svgutil.Footer())
	return strings.Join(parts, "\n")
}
