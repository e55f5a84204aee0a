package compose

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skin-forge/internal/export"
	"skin-forge/internal/skindoc"
)

func TestSpritesDefaultDocument(t *testing.T) {
	doc := skindoc.Default()
	sprites, overlay, err := Sprites(doc)
	if err != nil {
		t.Fatalf("sprites: %v", err)
	}

	for _, part := range []string{export.PartBase, export.PartHands, export.PartFeet, export.PartBackpack, export.PartLoot} {
		svgText := sprites[part]
		if !strings.HasPrefix(svgText, "<svg") || !strings.HasSuffix(svgText, "</svg>") {
			t.Fatalf("%s sprite malformed: %.60q", part, svgText)
		}
	}

	// Default border settings produce both rings.
	if sprites[export.PartBorder] == "" || sprites[export.PartInner] == "" {
		t.Fatal("default document should render both loot rings")
	}
	// Front disabled by default.
	if _, ok := sprites[export.PartFront]; ok {
		t.Fatal("front sprite rendered while disabled")
	}
	if !strings.Contains(overlay, "#3c7fda") {
		t.Fatalf("overlay missing helmet accent: %.80q", overlay)
	}

	// Body sprite bakes the default skin color and carries no stroke.
	if !strings.Contains(sprites[export.PartBase], "#f8c574") {
		t.Fatal("body sprite missing default fill")
	}
	if strings.Contains(sprites[export.PartBase], "stroke=") {
		t.Fatal("body sprite must not carry a stroke")
	}

	// Loot shirt uses the body tint so the icon matches the outfit.
	if !strings.Contains(sprites[export.PartLoot], `fill="#f8c574"`) {
		t.Fatalf("loot shirt tint: %.120q", sprites[export.PartLoot])
	}
}

func TestSpritesBorderToggles(t *testing.T) {
	doc := skindoc.Default()
	doc.Loot.BorderOn = false
	sprites, _, err := Sprites(doc)
	if err != nil {
		t.Fatalf("sprites: %v", err)
	}
	if _, ok := sprites[export.PartBorder]; ok {
		t.Fatal("border rendered while disabled")
	}
	if _, ok := sprites[export.PartInner]; ok {
		t.Fatal("inner ring rendered while disabled")
	}
}

func TestSpritesFrontEnabled(t *testing.T) {
	doc := skindoc.Default()
	doc.Front.Enabled = true
	doc.Front.Primary = "#aa1111"
	sprites, _, err := Sprites(doc)
	if err != nil {
		t.Fatalf("sprites: %v", err)
	}
	front := sprites[export.PartFront]
	if front == "" {
		t.Fatal("front sprite missing")
	}
	if !strings.Contains(front, "#aa1111") {
		t.Fatalf("front fill missing: %.120q", front)
	}
}

func TestSpritesUpload(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	path := filepath.Join(t.TempDir(), "body.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write upload: %v", err)
	}

	doc := skindoc.Default()
	doc.Body.Upload = &skindoc.Upload{Path: path, Rotation: 90, Scale: 1.5}
	sprites, _, err := Sprites(doc)
	if err != nil {
		t.Fatalf("sprites: %v", err)
	}
	body := sprites[export.PartBase]
	if !strings.Contains(body, "<image href=\"data:image/webp;base64,") {
		t.Fatalf("upload not embedded: %.120q", body)
	}
	if !strings.Contains(body, "rotate(90.00)") || !strings.Contains(body, "scale(1.5000)") {
		t.Fatalf("upload transforms missing: %.200q", body)
	}
}

func TestSpritesUploadMissingFile(t *testing.T) {
	doc := skindoc.Default()
	doc.Hands.Upload = &skindoc.Upload{Path: filepath.Join(t.TempDir(), "gone.png")}
	if _, _, err := Sprites(doc); err == nil {
		t.Fatal("expected error for missing upload")
	}
}

func TestPreviewPage(t *testing.T) {
	doc := skindoc.Default()
	doc.Preset = "Loadout"
	sprites, overlay, err := Sprites(doc)
	if err != nil {
		t.Fatalf("sprites: %v", err)
	}
	page := PreviewPage(doc, sprites, overlay)
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Fatal("preview should be a standalone document")
	}
	if !strings.Contains(page, "data:image/svg+xml;utf8,") {
		t.Fatal("preview should embed sprites as data URIs")
	}
	if !strings.Contains(page, `alt="overlay"`) {
		t.Fatal("Loadout preview should place the armor overlay")
	}
}

func TestBundleEndToEnd(t *testing.T) {
	doc := skindoc.Default()
	doc.Name = "Forest Scout"
	bundle, err := Bundle(doc)
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	if bundle.Ident != "outfitForestScout" {
		t.Fatalf("ident = %q", bundle.Ident)
	}
	if !strings.Contains(bundle.Config, `defineOutfitSkin("outfitBase"`) {
		t.Fatal("config block missing")
	}
	// The config block carries the chosen tints even in custom mode.
	if !strings.Contains(bundle.Config, "baseTint: 0xf8c574,") {
		t.Fatalf("config should carry the chosen base tint:\n%s", bundle.Config)
	}
	if !strings.Contains(bundle.Config, "backpackTint: 0x816537,") {
		t.Fatalf("config should carry the chosen backpack tint:\n%s", bundle.Config)
	}
	if strings.Contains(bundle.Config, "rarity:") {
		t.Fatalf("unset rarity should be omitted:\n%s", bundle.Config)
	}
	if !strings.Contains(string(bundle.Manifest), `"ident": "outfitForestScout"`) {
		t.Fatal("manifest missing ident")
	}
	// The mode-adjusted map lands in the manifest's export section: custom
	// mode bakes color into the art, so runtime tints there are white.
	if !strings.Contains(string(bundle.Manifest), `"base": "0xffffff"`) {
		t.Fatalf("manifest export tints should be white in custom mode:\n%s", bundle.Manifest)
	}
	if !strings.Contains(string(bundle.Manifest), `"base": "0xf8c574"`) {
		t.Fatalf("manifest ui tints should keep the chosen color:\n%s", bundle.Manifest)
	}

	var buf bytes.Buffer
	if err := bundle.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"img/player/player-base-forestscout.svg",
		"img/loot/loot-shirt-outfitforestscout.svg",
		"export/outfitForestScout.ts",
		"export/outfitForestScout.manifest.json",
		"export/preview.html",
	} {
		if !names[want] {
			t.Fatalf("archive missing %s (have %v)", want, names)
		}
	}
}

func TestBundleUnknownPresetRecordsFallback(t *testing.T) {
	doc := skindoc.Default()
	doc.Preset = "Sideways"
	bundle, err := Bundle(doc)
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	if !strings.Contains(string(bundle.Manifest), `"preset": "Standing"`) {
		t.Fatalf("manifest should record the rendered pose:\n%s", bundle.Manifest)
	}
	if strings.Contains(string(bundle.Manifest), "Sideways") {
		t.Fatalf("manifest should not carry the unknown name:\n%s", bundle.Manifest)
	}
}

func TestBundleBaseModeTintsPassThrough(t *testing.T) {
	doc := skindoc.Default()
	doc.SpriteMode = string(export.ModeBase)
	bundle, err := Bundle(doc)
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	if !strings.Contains(bundle.Config, "baseTint: 0xf8c574,") {
		t.Fatalf("base mode should pass tints through:\n%s", bundle.Config)
	}
	if !strings.Contains(bundle.Config, `baseSprite: "player-base-01.img"`) {
		t.Fatalf("base mode should reuse stock ids:\n%s", bundle.Config)
	}
	// Base mode applies color at runtime, so the export tint map keeps the
	// chosen values instead of white.
	if strings.Contains(string(bundle.Manifest), `"base": "0xffffff"`) {
		t.Fatalf("base mode export tints should pass through:\n%s", bundle.Manifest)
	}
}
