// Package skindoc defines the editable skin document: every selection a
// session makes, serialized as YAML.
package skindoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"skin-forge/internal/colorutil"
	"skin-forge/internal/export"
	"skin-forge/internal/fill"
	"skin-forge/internal/preview"
	"skin-forge/internal/sprite"
)

// Part holds one body part's paint settings.
type Part struct {
	Primary     string  `yaml:"primary"`
	Secondary   string  `yaml:"secondary"`
	Style       string  `yaml:"style"`
	Extra       string  `yaml:"extra"`
	Angle       int     `yaml:"angle"`
	Gap         int     `yaml:"gap"`
	Opacity     float64 `yaml:"opacity"`
	Size        int     `yaml:"size"`
	Tint        string  `yaml:"tint"`
	Shape       string  `yaml:"shape,omitempty"`
	ShapeScaleX float64 `yaml:"shapeScaleX,omitempty"`
	ShapeScaleY float64 `yaml:"shapeScaleY,omitempty"`
	Upload      *Upload `yaml:"upload,omitempty"`
}

// Upload references an image file that replaces the generated sprite.
type Upload struct {
	Path     string  `yaml:"path"`
	Mime     string  `yaml:"mime,omitempty"`
	Rotation float64 `yaml:"rotation,omitempty"`
	Scale    float64 `yaml:"scale,omitempty"`
}

// Config maps the document part onto the sprite builder config.
func (p Part) Config() sprite.PartConfig {
	return sprite.PartConfig{
		Style:       fill.ParseStyle(p.Style),
		Primary:     p.Primary,
		Secondary:   p.Secondary,
		Extra:       p.Extra,
		Angle:       p.Angle,
		Gap:         p.Gap,
		Opacity:     p.Opacity,
		Size:        p.Size,
		Tint:        p.Tint,
		Shape:       sprite.ParseHandShape(p.Shape),
		ShapeScaleX: p.ShapeScaleX,
		ShapeScaleY: p.ShapeScaleY,
	}
}

// Outline holds the stroke settings shared by hands, feet, and backpack.
type Outline struct {
	Color     string  `yaml:"color"`
	Width     float64 `yaml:"width"`
	Style     string  `yaml:"style"`
	GlowColor string  `yaml:"glowColor,omitempty"`
	GlowSize  float64 `yaml:"glowSize,omitempty"`
}

// Spec maps the document outline onto the sprite outline spec.
func (o Outline) Spec() *sprite.OutlineSpec {
	if o.Color == "" || o.Width <= 0 {
		return nil
	}
	return &sprite.OutlineSpec{
		Color:     o.Color,
		Width:     o.Width,
		Style:     sprite.ParseOutlineStyle(o.Style),
		GlowColor: o.GlowColor,
		GlowSize:  o.GlowSize,
	}
}

// Loot holds the loot icon settings.
type Loot struct {
	Tint       string  `yaml:"tint"`
	BorderOn   bool    `yaml:"borderEnabled"`
	BorderName string  `yaml:"borderName"`
	BorderTint string  `yaml:"borderTint"`
	InnerName  string  `yaml:"innerName"`
	Scale      float64 `yaml:"scale"`
}

// Front holds the optional accessory sprite settings.
type Front struct {
	Enabled           bool    `yaml:"enabled"`
	Primary           string  `yaml:"primary,omitempty"`
	Secondary         string  `yaml:"secondary,omitempty"`
	Style             string  `yaml:"style,omitempty"`
	Extra             string  `yaml:"extra,omitempty"`
	FlareScale        float64 `yaml:"flareScale,omitempty"`
	TipScale          float64 `yaml:"tipScale,omitempty"`
	Size              int     `yaml:"size,omitempty"`
	OffsetX           int     `yaml:"offsetX,omitempty"`
	OffsetY           int     `yaml:"offsetY,omitempty"`
	AboveHand         bool    `yaml:"aboveHand,omitempty"`
	OverlayAboveFront bool    `yaml:"overlayAboveFront,omitempty"`
}

// Options maps the document front settings onto the preview engine's.
func (f Front) Options() preview.FrontOptions {
	return preview.FrontOptions{
		Enabled:           f.Enabled,
		Size:              f.Size,
		OffsetX:           f.OffsetX,
		OffsetY:           f.OffsetY,
		AboveHand:         f.AboveHand,
		OverlayAboveFront: f.OverlayAboveFront,
	}
}

// Document is the full editable state of one skin.
type Document struct {
	Name          string  `yaml:"name"`
	Lore          string  `yaml:"lore,omitempty"`
	Rarity        string  `yaml:"rarity,omitempty"`
	NoDropOnDeath bool    `yaml:"noDropOnDeath,omitempty"`
	NoDrop        bool    `yaml:"noDrop,omitempty"`
	Ghillie       bool    `yaml:"ghillie,omitempty"`
	ObstacleType  string  `yaml:"obstacleType,omitempty"`
	BaseScale     float64 `yaml:"baseScale"`

	SpriteMode string            `yaml:"spriteMode"`
	RefExt     string            `yaml:"referenceExtension"`
	PlayerDir  string            `yaml:"playerDir"`
	LootDir    string            `yaml:"lootDir"`
	Existing   map[string]string `yaml:"existingSprites,omitempty"`

	Body     Part    `yaml:"body"`
	Hands    Part    `yaml:"hands"`
	Feet     Part    `yaml:"feet"`
	Backpack Part    `yaml:"backpack"`
	Outline  Outline `yaml:"outline"`
	Loot     Loot    `yaml:"loot"`
	Front    Front   `yaml:"front"`

	Preset      string `yaml:"preset"`
	PickupSound string `yaml:"pickupSound,omitempty"`
}

// Default returns a document mirroring the stock outfitBase selections.
func Default() Document {
	skinPart := func(gap, size int) Part {
		return Part{
			Primary:   "#f8c574",
			Secondary: "#f8c574",
			Style:     string(fill.Solid),
			Extra:     "#cba86a",
			Angle:     45,
			Gap:       gap,
			Opacity:   0.6,
			Size:      size,
			Tint:      "#f8c574",
		}
	}
	backpack := Part{
		Primary:   "#816537",
		Secondary: "#816537",
		Style:     string(fill.Solid),
		Extra:     "#6e5630",
		Angle:     45,
		Gap:       22,
		Opacity:   0.6,
		Size:      12,
		Tint:      "#816537",
	}

	return Document{
		Name:       "Basic Outfit",
		BaseScale:  1,
		SpriteMode: string(export.ModeCustom),
		RefExt:     ".img",
		PlayerDir:  "img/player/",
		LootDir:    "img/loot/",

		Body:     skinPart(24, 14),
		Hands:    skinPart(20, 10),
		Feet:     skinPart(20, 10),
		Backpack: backpack,
		Outline:  Outline{Color: "#000000", Width: 8, Style: string(sprite.OutlineSolid)},
		Loot: Loot{
			Tint:       "#ffffff",
			BorderOn:   true,
			BorderName: "loot-circle-outer-01",
			BorderTint: "#000000",
			InnerName:  "loot-circle-inner-01",
			Scale:      0.2,
		},

		Preset:      preview.DefaultPreset,
		PickupSound: "clothes_pickup_01",
	}
}

// Load reads and validates a document file.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("skindoc: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a document from YAML and validates its colors.
func Parse(data []byte) (Document, error) {
	doc := Default()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("skindoc: parse: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Marshal encodes the document as YAML.
func (d Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("skindoc: marshal: %w", err)
	}
	return data, nil
}

// Save writes the document file.
func (d Document) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("skindoc: write %s: %w", path, err)
	}
	return nil
}

// Validate rejects malformed colors before any sprite is generated, so color
// math never sees bad input.
func (d Document) Validate() error {
	check := func(field, hex string) error {
		if hex == "" {
			return nil
		}
		if _, err := colorutil.HexToRGB(hex); err != nil {
			return fmt.Errorf("skindoc: %s: %w", field, err)
		}
		return nil
	}

	for _, c := range []struct{ field, hex string }{
		{"body.primary", d.Body.Primary}, {"body.secondary", d.Body.Secondary},
		{"body.extra", d.Body.Extra}, {"body.tint", d.Body.Tint},
		{"hands.primary", d.Hands.Primary}, {"hands.secondary", d.Hands.Secondary},
		{"hands.extra", d.Hands.Extra}, {"hands.tint", d.Hands.Tint},
		{"feet.primary", d.Feet.Primary}, {"feet.secondary", d.Feet.Secondary},
		{"feet.extra", d.Feet.Extra}, {"feet.tint", d.Feet.Tint},
		{"backpack.primary", d.Backpack.Primary}, {"backpack.secondary", d.Backpack.Secondary},
		{"backpack.extra", d.Backpack.Extra}, {"backpack.tint", d.Backpack.Tint},
		{"outline.color", d.Outline.Color}, {"outline.glowColor", d.Outline.GlowColor},
		{"loot.tint", d.Loot.Tint}, {"loot.borderTint", d.Loot.BorderTint},
		{"front.primary", d.Front.Primary}, {"front.secondary", d.Front.Secondary},
		{"front.extra", d.Front.Extra},
	} {
		if err := check(c.field, c.hex); err != nil {
			return err
		}
	}
	return nil
}

// Mode resolves the sprite-naming strategy.
func (d Document) Mode() export.Mode {
	return export.ParseMode(d.SpriteMode)
}

// ExportOpts assembles the config-block options from the document.
func (d Document) ExportOpts() export.Opts {
	return export.Opts{
		SkinName:       d.Name,
		Lore:           d.Lore,
		Rarity:         d.Rarity,
		NoDropOnDeath:  d.NoDropOnDeath,
		NoDrop:         d.NoDrop,
		Ghillie:        d.Ghillie,
		ObstacleType:   d.ObstacleType,
		BaseScale:      d.BaseScale,
		LootBorderOn:   d.Loot.BorderOn,
		LootBorderName: d.Loot.BorderName,
		LootBorderTint: d.Loot.BorderTint,
		LootScale:      d.Loot.Scale,
		SoundPickup:    d.PickupSound,
		RefExt:         d.RefExt,
	}
}

// FilenameInput assembles the naming-strategy input from the document.
func (d Document) FilenameInput() export.FilenameInput {
	ext := d.RefExt
	if len(ext) > 0 && ext[0] == '.' {
		ext = ext[1:]
	}
	if ext == "" {
		ext = "img"
	}
	return export.FilenameInput{
		BaseID:         export.BaseID(d.Name),
		Mode:           d.Mode(),
		Existing:       d.Existing,
		Dirs:           export.Dirs{Player: d.PlayerDir, Loot: d.LootDir},
		Ext:            ext,
		LootBorderOn:   d.Loot.BorderOn,
		LootBorderName: d.Loot.BorderName,
		LootInnerName:  d.Loot.InnerName,
		FrontOn:        d.Front.Enabled,
	}
}

// UITints collects the tint map as picked in the document.
func (d Document) UITints() (map[string]string, error) {
	tints := make(map[string]string)
	for part, hex := range map[string]string{
		export.PartBase:     d.Body.Tint,
		"hand":              d.Hands.Tint,
		"foot":              d.Feet.Tint,
		export.PartBackpack: d.Backpack.Tint,
		export.PartLoot:     d.Loot.Tint,
		export.PartBorder:   d.Loot.BorderTint,
	} {
		if hex == "" {
			hex = "#ffffff"
		}
		ts, err := colorutil.TSHexFromHex(hex)
		if err != nil {
			return nil, fmt.Errorf("skindoc: tint %s: %w", part, err)
		}
		tints[part] = ts
	}
	return tints, nil
}
