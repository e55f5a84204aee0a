// Package preview computes the pixel geometry of the composed character
// mock-up and renders it as an HTML/SVG stage.
package preview

// Layout fully describes one pose's stage geometry. Pointer fields are
// optional overrides; nil means "derive from stage/body dimensions".
type Layout struct {
	StageWidth  int
	StageHeight int

	BodySize       int
	BodyWidth      *int // override; defaults to BodySize
	BodyHeight     *int // override; defaults to BodySize
	BodyLeft       *int // override; defaults to horizontally centered
	BodyTop        int
	BodyLeftOffset int
	BodyRotation   float64

	HandSize          int
	HandOffsetX       int
	HandOffsetY       int
	HandTop           *int
	HandRotationLeft  float64
	HandRotationRight float64
	RightHandMirror   bool
	HandsAboveBody    bool

	BackpackSize    int
	BackpackTop     int
	BackpackOffsetX int
	ShowBackpack    bool

	OverlaySize      int
	OverlayOffsetX   int
	OverlayOffsetY   int
	OverlayAboveBody bool
	ShowOverlay      bool

	ShowFeet          bool
	FeetSize          int
	FeetOffsetX       int
	FeetOffsetY       int
	FeetTop           *int
	FeetRotationLeft  float64
	FeetRotationRight float64
	RightFootMirror   bool
	FeetAboveBody     bool
}

// DefaultLayout returns the baseline pose every preset derives from.
func DefaultLayout() Layout {
	return Layout{
		StageWidth:  420,
		StageHeight: 480,

		BodySize: 134,
		BodyTop:  190,

		HandSize:        52,
		HandOffsetX:     32,
		HandOffsetY:     34,
		RightHandMirror: true,
		HandsAboveBody:  true,

		BackpackSize: 148,
		BackpackTop:  110,
		ShowBackpack: true,

		OverlaySize:      160,
		OverlayAboveBody: true,
		ShowOverlay:      true,

		FeetSize:        38,
		FeetOffsetX:     28,
		FeetOffsetY:     12,
		RightFootMirror: true,
		FeetAboveBody:   true,
	}
}

// Preset is a named pose with a short description.
type Preset struct {
	Layout      Layout
	Description string
}

// Preset names.
const (
	PresetStanding = "Standing"
	PresetLoadout  = "Loadout"
	PresetKnocked  = "Knocked"
)

// DefaultPreset is used when a document names no pose.
const DefaultPreset = PresetStanding

// PresetNames lists presets in menu order.
var PresetNames = []string{PresetStanding, PresetLoadout, PresetKnocked}

// Presets returns the named pose table.
func Presets() map[string]Preset {
	standing := DefaultLayout()
	standing.StageWidth = 300
	standing.StageHeight = 280
	standing.BodySize = 140
	standing.BodyTop = 92
	standing.HandSize = 56
	standing.HandOffsetX = 78
	standing.HandTop = intp(206)
	standing.ShowBackpack = false
	standing.ShowOverlay = false

	loadout := DefaultLayout()
	loadout.StageWidth = 360
	loadout.StageHeight = 420
	loadout.BodySize = 150
	loadout.BodyTop = 156
	loadout.HandSize = 60
	loadout.HandOffsetX = 70
	loadout.HandTop = intp(282)
	loadout.BackpackSize = 192
	loadout.BackpackTop = 68
	loadout.OverlaySize = 200
	loadout.OverlayOffsetY = -10

	knocked := DefaultLayout()
	knocked.StageWidth = 320
	knocked.StageHeight = 320
	knocked.BodySize = 130
	knocked.BodyTop = 118
	knocked.BodyRotation = -28
	knocked.HandSize = 50
	knocked.HandOffsetX = 34
	knocked.HandTop = intp(222)
	knocked.HandRotationLeft = -18
	knocked.HandRotationRight = 18
	knocked.HandsAboveBody = false
	knocked.ShowBackpack = false
	knocked.ShowOverlay = false
	knocked.ShowFeet = true
	knocked.FeetSize = 44
	knocked.FeetOffsetX = 36
	knocked.FeetTop = intp(244)
	knocked.FeetRotationLeft = -22
	knocked.FeetRotationRight = 22
	knocked.FeetAboveBody = false

	return map[string]Preset{
		PresetStanding: {standing, "Hands and body framing used when a survivor is upright."},
		PresetLoadout:  {loadout, "Backpack, armor ring, and helmet aligned like the loadout preview."},
		PresetKnocked:  {knocked, "Top-down knocked pose with limbs tucked under the tilted body."},
	}
}

// PresetLayout resolves a preset name, falling back to the default pose for
// unknown names.
func PresetLayout(name string) Layout {
	if p, ok := Presets()[name]; ok {
		return p.Layout
	}
	return Presets()[DefaultPreset].Layout
}

func intp(v int) *int { return &v }

// BodyFrame is the resolved body rectangle, used to anchor the front sprite.
type BodyFrame struct {
	Left     int
	Top      int
	Width    int
	Height   int
	Rotation float64
}

// BodyFrameFromLayout resolves the body rectangle, applying overrides where
// present and centering under the stage otherwise.
func BodyFrameFromLayout(l Layout) BodyFrame {
	width := l.BodySize
	if l.BodyWidth != nil {
		width = *l.BodyWidth
	}
	height := l.BodySize
	if l.BodyHeight != nil {
		height = *l.BodyHeight
	}
	left := (l.StageWidth-width)/2 + l.BodyLeftOffset
	if l.BodyLeft != nil {
		left = *l.BodyLeft
	}
	return BodyFrame{
		Left:     left,
		Top:      l.BodyTop,
		Width:    width,
		Height:   height,
		Rotation: l.BodyRotation,
	}
}
