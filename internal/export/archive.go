package export

import (
	"archive/zip"
	"fmt"
	"io"
)

// Bundle collects everything one download contains. Sprites map part keys to
// SVG text; generated art is always written as .svg on disk regardless of
// the reference extension used in the config.
type Bundle struct {
	Ident       string
	Sprites     map[string]string
	Filenames   map[string]string
	Config      string // config block text, empty to skip
	Manifest    []byte // manifest JSON, nil to skip
	PreviewHTML string // standalone preview snapshot, empty to skip
}

// Write streams the bundle as a ZIP archive.
func (b Bundle) Write(w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, part := range []string{PartBase, PartHands, PartFeet, PartBackpack, PartLoot, PartBorder, PartInner, PartFront} {
		svgText, ok := b.Sprites[part]
		if !ok || svgText == "" {
			continue
		}
		name := EnsureExtension(b.Filenames[part], "svg")
		if name == "" {
			continue
		}
		if err := writeEntry(zw, name, []byte(svgText)); err != nil {
			return err
		}
	}

	if b.Config != "" {
		if err := writeEntry(zw, "export/"+b.Ident+".ts", []byte(b.Config)); err != nil {
			return err
		}
	}
	if len(b.Manifest) > 0 {
		if err := writeEntry(zw, "export/"+b.Ident+".manifest.json", b.Manifest); err != nil {
			return err
		}
	}
	if b.PreviewHTML != "" {
		if err := writeEntry(zw, "export/preview.html", []byte(b.PreviewHTML)); err != nil {
			return err
		}
	}

	return zw.Close()
}

// SpritesOnly returns a copy of the bundle with the config, manifest, and
// preview stripped.
func (b Bundle) SpritesOnly() Bundle {
	return Bundle{
		Ident:     b.Ident,
		Sprites:   b.Sprites,
		Filenames: b.Filenames,
	}
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("export: archive entry %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("export: archive write %s: %w", name, err)
	}
	return nil
}
