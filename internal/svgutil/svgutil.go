// Package svgutil holds the shared SVG markup fragments used by every
// generated sprite.
package svgutil

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"
)

// Header returns the opening <svg> tag with the given canvas size.
func Header(width, height int) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" `+
			`viewBox="0 0 %d %d" shape-rendering="geometricPrecision" `+
			`text-rendering="geometricPrecision">`,
		width, height, width, height)
}

// Footer returns the closing </svg> tag.
func Footer() string {
	return "</svg>"
}

// Num renders a float attribute value without trailing zeros, so integral
// values stay "8" rather than "8.000".
func Num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StrokeAttrs builds the stroke attribute block for outline-enabled sprites.
// Empty when width is not positive.
func StrokeAttrs(stroke string, width float64) string {
	if stroke == "" || width <= 0 {
		return ""
	}
	return fmt.Sprintf(`stroke="%s" stroke-width="%s"`, stroke, Num(width))
}

// DataURI encodes SVG text as a utf8 data URI for inline previews.
func DataURI(svgText string) string {
	return "data:image/svg+xml;utf8," + url.PathEscape(svgText)
}

// BytesDataURI encodes raw image bytes as a base64 data URI.
func BytesDataURI(data []byte, mime string) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
