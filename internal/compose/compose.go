// Package compose assembles a skin document into rendered sprites, the
// preview page, and the downloadable export bundle.
package compose

import (
	"fmt"
	"os"

	"skin-forge/internal/asset"
	"skin-forge/internal/export"
	"skin-forge/internal/fill"
	"skin-forge/internal/preview"
	"skin-forge/internal/skindoc"
	"skin-forge/internal/sprite"
	"skin-forge/internal/svgutil"
)

// Uploads are re-encoded no larger than this before embedding.
const uploadMaxDim = 512

// Sprites renders every sprite the document calls for, keyed by export part
// name. The preview-only armor overlay is returned separately because it is
// never written to the archive.
func Sprites(doc skindoc.Document) (map[string]string, string, error) {
	outline := doc.Outline.Spec()

	sprites := make(map[string]string)

	body, err := partSprite(doc.Body, export.PartBase, sprite.Body, nil, sprite.BodySize)
	if err != nil {
		return nil, "", err
	}
	sprites[export.PartBase] = body

	hands, err := partSprite(doc.Hands, export.PartHands, sprite.Hands, outline, sprite.HandSize)
	if err != nil {
		return nil, "", err
	}
	sprites[export.PartHands] = hands

	feet, err := partSprite(doc.Feet, export.PartFeet, sprite.Feet, outline, sprite.FootSize)
	if err != nil {
		return nil, "", err
	}
	sprites[export.PartFeet] = feet

	backpack, err := partSprite(doc.Backpack, export.PartBackpack, sprite.Backpack, outline, sprite.BackpackSize)
	if err != nil {
		return nil, "", err
	}
	sprites[export.PartBackpack] = backpack

	sprites[export.PartLoot] = sprite.LootShirt(lootShirtTint(doc))
	if doc.Loot.BorderOn {
		if doc.Loot.BorderName != "" {
			sprites[export.PartBorder] = sprite.LootOuter(lootRingTint(doc))
		}
		if doc.Loot.InnerName != "" {
			sprites[export.PartInner] = sprite.LootInner(lootRingTint(doc))
		}
	}

	if doc.Front.Enabled {
		sprites[export.PartFront] = frontSprite(doc.Front)
	}

	return sprites, sprite.Overlay(), nil
}

// partSprite builds one generated part, or wraps the referenced upload when
// the document supplies one.
func partSprite(p skindoc.Part, part string, b sprite.Builder, out *sprite.OutlineSpec, canvas int) (string, error) {
	if p.Upload == nil {
		return sprite.Build(part, p.Config(), b, out), nil
	}

	data, err := os.ReadFile(p.Upload.Path)
	if err != nil {
		return "", fmt.Errorf("compose: %s upload: %w", part, err)
	}
	a, err := asset.Normalize(data, p.Upload.Mime, uploadMaxDim)
	if err != nil {
		return "", fmt.Errorf("compose: %s upload: %w", part, err)
	}
	scale := p.Upload.Scale
	if scale == 0 {
		scale = 1
	}
	return sprite.FromUpload(a.Data, a.Mime, canvas, canvas, p.Upload.Rotation, scale), nil
}

func frontSprite(f skindoc.Front) string {
	cfg := skindoc.Part{
		Primary:   f.Primary,
		Secondary: f.Secondary,
		Style:     f.Style,
		Extra:     f.Extra,
	}.Config()
	defs, ref := fill.Build(export.PartFront, cfg.Style, cfg.FillParams())
	return sprite.Accessory(defs, ref, sprite.AccessoryParams{
		FlareScale: f.FlareScale,
		TipScale:   f.TipScale,
		Highlight:  f.Extra,
	}, nil)
}

// lootShirtTint picks the baked shirt color: the body tint, so the icon
// matches the outfit it drops as.
func lootShirtTint(doc skindoc.Document) string {
	if doc.Body.Tint != "" {
		return doc.Body.Tint
	}
	if doc.Body.Primary != "" {
		return doc.Body.Primary
	}
	return "#f8c574"
}

// lootRingTint picks the base color the inner glow and outer ring derive
// their highlight and fade from.
func lootRingTint(doc skindoc.Document) string {
	if doc.Loot.BorderTint != "" {
		return doc.Loot.BorderTint
	}
	return "#000000"
}

// PreviewURIs converts rendered sprites to the data-URI map the preview stage
// consumes.
func PreviewURIs(sprites map[string]string, overlay string) preview.URIs {
	uris := preview.URIs{}
	set := func(key, svgText string) {
		if svgText != "" {
			uris[key] = svgutil.DataURI(svgText)
		}
	}
	set("body", sprites[export.PartBase])
	set("hands", sprites[export.PartHands])
	set("feet", sprites[export.PartFeet])
	set("backpack", sprites[export.PartBackpack])
	set("loot", sprites[export.PartLoot])
	set("loot_inner", sprites[export.PartInner])
	set("loot_outer", sprites[export.PartBorder])
	set("front", sprites[export.PartFront])
	set("overlay", overlay)
	return uris
}

// PreviewPage renders the standalone preview document for the chosen preset.
func PreviewPage(doc skindoc.Document, sprites map[string]string, overlay string) string {
	layout := preview.PresetLayout(doc.Preset)
	return preview.RenderPage(doc.Name, PreviewURIs(sprites, overlay), layout, doc.Front.Options())
}

// Bundle assembles the full export: sprites, config block, manifest, and the
// preview snapshot.
func Bundle(doc skindoc.Document) (export.Bundle, error) {
	sprites, overlay, err := Sprites(doc)
	if err != nil {
		return export.Bundle{}, err
	}

	ident := export.Ident(doc.Name)
	filenames := export.BuildFilenames(doc.FilenameInput())

	uiTints, err := doc.UITints()
	if err != nil {
		return export.Bundle{}, err
	}
	exportTints := export.AdjustTints(uiTints, doc.Mode())

	// The config block carries the chosen tints; the mode-adjusted map is
	// recorded in the manifest's export section.
	config := doc.ExportOpts().ConfigBlock(ident, filenames, uiTints)

	// An unknown preset name falls back to the default pose; the manifest
	// records the pose actually rendered, not the raw document value.
	presetName := doc.Preset
	if _, ok := preview.Presets()[presetName]; !ok {
		presetName = preview.DefaultPreset
	}
	layout := preview.PresetLayout(presetName)
	manifest, err := export.BuildManifest(export.ManifestInput{
		Ident:             ident,
		Opts:              doc.ExportOpts(),
		Mode:              doc.Mode(),
		Filenames:         filenames,
		UITints:           uiTints,
		ExportTints:       exportTints,
		Preset:            presetName,
		OverlayOn:         layout.ShowOverlay,
		OverlayAboveFront: doc.Front.OverlayAboveFront,
		Front: export.ManifestFront{
			Enabled:   doc.Front.Enabled,
			Pos:       export.ManifestPos{X: doc.Front.OffsetX, Y: doc.Front.OffsetY},
			AboveHand: doc.Front.AboveHand,
		},
	})
	if err != nil {
		return export.Bundle{}, fmt.Errorf("compose: manifest: %w", err)
	}

	return export.Bundle{
		Ident:       ident,
		Sprites:     sprites,
		Filenames:   filenames,
		Config:      config,
		Manifest:    manifest,
		PreviewHTML: PreviewPage(doc, sprites, overlay),
	}, nil
}
