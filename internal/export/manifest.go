package export

import "encoding/json"

// Manifest is the machine-readable companion to the config block: a full
// snapshot of the resolved export state.
type Manifest struct {
	Skin    ManifestSkin    `json:"skin"`
	Sprites ManifestSprites `json:"sprites"`
	Tints   ManifestTints   `json:"tints"`
	Loot    ManifestLoot    `json:"loot"`
	Preview ManifestPreview `json:"preview"`
	Front   ManifestFront   `json:"front"`
}

type ManifestSkin struct {
	Ident string        `json:"ident"`
	Name  string        `json:"name"`
	Flags ManifestFlags `json:"flags"`
}

type ManifestFlags struct {
	NoDropOnDeath bool `json:"noDropOnDeath"`
	NoDrop        bool `json:"noDrop"`
	Ghillie       bool `json:"ghillie"`
}

type ManifestSprites struct {
	Mode               Mode              `json:"mode"`
	ReferenceExtension string            `json:"referenceExtension"`
	Files              map[string]string `json:"files"`
}

type ManifestTints struct {
	UI     map[string]string `json:"ui"`
	Export map[string]string `json:"export"`
}

type ManifestLoot struct {
	BorderEnabled bool    `json:"borderEnabled"`
	BorderSprite  string  `json:"borderSprite"`
	InnerSprite   string  `json:"innerSprite"`
	Scale         float64 `json:"scale"`
}

type ManifestPreview struct {
	Preset            string `json:"preset"`
	OverlayEnabled    bool   `json:"overlayEnabled"`
	OverlayAboveFront bool   `json:"overlayAboveFront"`
}

type ManifestFront struct {
	Enabled   bool        `json:"enabled"`
	Pos       ManifestPos `json:"pos"`
	AboveHand bool        `json:"aboveHand"`
}

type ManifestPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManifestInput gathers the resolved state a manifest snapshots.
type ManifestInput struct {
	Ident             string
	Opts              Opts
	Mode              Mode
	Filenames         map[string]string
	UITints           map[string]string
	ExportTints       map[string]string
	Preset            string
	OverlayOn         bool
	OverlayAboveFront bool
	Front             ManifestFront
}

// BuildManifest serializes the manifest as indented JSON.
func BuildManifest(in ManifestInput) ([]byte, error) {
	m := Manifest{
		Skin: ManifestSkin{
			Ident: in.Ident,
			Name:  in.Opts.displayName(),
			Flags: ManifestFlags{
				NoDropOnDeath: in.Opts.NoDropOnDeath,
				NoDrop:        in.Opts.NoDrop,
				Ghillie:       in.Opts.Ghillie,
			},
		},
		Sprites: ManifestSprites{
			Mode:               in.Mode,
			ReferenceExtension: in.Opts.RefExt,
			Files:              in.Filenames,
		},
		Tints: ManifestTints{
			UI:     in.UITints,
			Export: in.ExportTints,
		},
		Loot: ManifestLoot{
			BorderEnabled: in.Opts.LootBorderOn,
			BorderSprite:  in.Filenames[PartBorder],
			InnerSprite:   in.Filenames[PartInner],
			Scale:         in.Opts.LootScale,
		},
		Preview: ManifestPreview{
			Preset:            in.Preset,
			OverlayEnabled:    in.OverlayOn,
			OverlayAboveFront: in.OverlayAboveFront,
		},
		Front: in.Front,
	}
	return json.MarshalIndent(m, "", "  ")
}
