// Package asset validates and normalizes uploaded sprite images before they
// are embedded into generated SVG documents.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	_ "github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedAsset is returned when uploaded bytes cannot be decoded as a
// recognized image format.
var ErrUnsupportedAsset = errors.New("asset: unsupported asset")

// Asset is a normalized upload ready for embedding.
type Asset struct {
	Data   []byte
	Mime   string
	Width  int
	Height int
}

// Normalize validates an upload and prepares it for embedding. SVG text
// passes through untouched. Raster uploads are decoded (PNG, JPEG, GIF, TGA,
// WebP), downscaled when larger than maxDim on either axis, and re-encoded as
// lossless WebP so embedded payloads stay small and uniform.
func Normalize(data []byte, mime string, maxDim int) (Asset, error) {
	if len(data) == 0 {
		return Asset{}, fmt.Errorf("%w: empty upload", ErrUnsupportedAsset)
	}

	if isSVG(data, mime) {
		return Asset{Data: data, Mime: "image/svg+xml"}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Asset{}, fmt.Errorf("%w: decode (%s): %v", ErrUnsupportedAsset, mime, err)
	}

	nrgba := toNRGBA(img)
	if maxDim > 0 {
		nrgba = downscale(nrgba, maxDim)
	}

	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, nrgba, nil); err != nil {
		return Asset{}, fmt.Errorf("asset: webp encode: %w", err)
	}

	b := nrgba.Bounds()
	return Asset{
		Data:   buf.Bytes(),
		Mime:   "image/webp",
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

func isSVG(data []byte, mime string) bool {
	if strings.Contains(strings.ToLower(mime), "svg") {
		return true
	}
	head := strings.TrimSpace(string(data[:min(len(data), 256)]))
	return strings.HasPrefix(head, "<svg") || strings.HasPrefix(head, "<?xml")
}

// downscale shrinks img so neither axis exceeds maxDim, preserving aspect.
func downscale(img *image.NRGBA, maxDim int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// toNRGBA converts any decoded image to NRGBA.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}
