package preview

import (
	"fmt"
	"sort"
	"strings"
)

// Part names used in placements and preview URI maps.
const (
	PartBackpack  = "backpack"
	PartBody      = "body"
	PartOverlay   = "overlay"
	PartHandLeft  = "hand-left"
	PartHandRight = "hand-right"
	PartFootLeft  = "foot-left"
	PartFootRight = "foot-right"
	PartFront     = "front"
)

// Placement is one resolved on-stage element.
type Placement struct {
	Name      string
	Left      int
	Top       int
	Width     int
	Height    int
	Transform string
	Z         int
}

// FrontOptions describes the optional accessory sprite pinned to the body
// frame.
type FrontOptions struct {
	Enabled           bool
	Size              int // defaults to 80
	OffsetX           int
	OffsetY           int
	AboveHand         bool
	OverlayAboveFront bool
}

// Geometry holds the resolved stage: visible placements sorted by z.
type Geometry struct {
	StageWidth  int
	StageHeight int
	Placements  []Placement
}

// Reference z layers. The body is the fixed middle; everything else toggles
// around it.
const (
	zBackpack     = 10
	zFeetBelow    = 15
	zHandsBelow   = 20
	zOverlayBelow = 30
	zBody         = 40
	zOverlayAbove = 50
	zFeetAbove    = 55
	zHandsAbove   = 60
	zFrontStep    = 4
)

// Resolve computes every visible element's position, size, transform, and z
// for a layout. The result is a pure function of its inputs.
func Resolve(l Layout, front FrontOptions) Geometry {
	frame := BodyFrameFromLayout(l)

	handLeft := frame.Left - l.HandOffsetX
	handRight := l.StageWidth - handLeft - l.HandSize
	handTop := frame.Top + frame.Height - l.HandOffsetY
	if l.HandTop != nil {
		handTop = *l.HandTop
	}

	feetLeft := frame.Left - l.FeetOffsetX
	feetRight := l.StageWidth - feetLeft - l.FeetSize
	feetTop := frame.Top + frame.Height - l.FeetOffsetY
	if l.FeetTop != nil {
		feetTop = *l.FeetTop
	}

	backpackLeft := (l.StageWidth-l.BackpackSize)/2 + l.BackpackOffsetX
	overlayLeft := frame.Left - (l.OverlaySize-frame.Width)/2 + l.OverlayOffsetX
	overlayTop := frame.Top - (l.OverlaySize-frame.Height)/2 + l.OverlayOffsetY

	handsZ := zHandsBelow
	if l.HandsAboveBody {
		handsZ = zHandsAbove
	}
	feetZ := zFeetBelow
	if l.FeetAboveBody {
		feetZ = zFeetAbove
	}
	overlayZ := zOverlayBelow
	if l.OverlayAboveBody {
		overlayZ = zOverlayAbove
	}

	frontZ := handsZ - zFrontStep
	if front.AboveHand {
		frontZ = handsZ + zFrontStep
	}
	// The two "above" flags compose by bumping z, never by moving anything.
	if front.Enabled {
		if front.OverlayAboveFront && overlayZ <= frontZ {
			overlayZ = frontZ + 1
		} else if !front.OverlayAboveFront && frontZ <= overlayZ {
			frontZ = overlayZ + 1
		}
	}

	var placements []Placement
	add := func(p Placement) { placements = append(placements, p) }

	if l.ShowBackpack {
		add(Placement{
			Name: PartBackpack, Left: backpackLeft, Top: l.BackpackTop,
			Width: l.BackpackSize, Height: l.BackpackSize,
			Transform: transform(), Z: zBackpack,
		})
	}
	add(Placement{
		Name: PartBody, Left: frame.Left, Top: frame.Top,
		Width: frame.Width, Height: frame.Height,
		Transform: transform(rotate(frame.Rotation)), Z: zBody,
	})
	if l.ShowOverlay {
		add(Placement{
			Name: PartOverlay, Left: overlayLeft, Top: overlayTop,
			Width: l.OverlaySize, Height: l.OverlaySize,
			Transform: transform(), Z: overlayZ,
		})
	}
	add(Placement{
		Name: PartHandLeft, Left: handLeft, Top: handTop,
		Width: l.HandSize, Height: l.HandSize,
		Transform: transform(rotate(l.HandRotationLeft)), Z: handsZ,
	})
	add(Placement{
		Name: PartHandRight, Left: handRight, Top: handTop,
		Width: l.HandSize, Height: l.HandSize,
		Transform: transform(mirror(l.RightHandMirror), rotate(l.HandRotationRight)), Z: handsZ,
	})
	if l.ShowFeet {
		add(Placement{
			Name: PartFootLeft, Left: feetLeft, Top: feetTop,
			Width: l.FeetSize, Height: l.FeetSize,
			Transform: transform(rotate(l.FeetRotationLeft)), Z: feetZ,
		})
		add(Placement{
			Name: PartFootRight, Left: feetRight, Top: feetTop,
			Width: l.FeetSize, Height: l.FeetSize,
			Transform: transform(mirror(l.RightFootMirror), rotate(l.FeetRotationRight)), Z: feetZ,
		})
	}
	if front.Enabled {
		size := front.Size
		if size <= 0 {
			size = 80
		}
		add(Placement{
			Name: PartFront,
			Left: frame.Left + (frame.Width-size)/2 + front.OffsetX,
			Top:  frame.Top + (frame.Height-size)/2 + front.OffsetY,
			Width: size, Height: size,
			Transform: transform(), Z: frontZ,
		})
	}

	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Z < placements[j].Z
	})

	return Geometry{
		StageWidth:  l.StageWidth,
		StageHeight: l.StageHeight,
		Placements:  placements,
	}
}

// Find returns the placement with the given name, if visible.
func (g Geometry) Find(name string) (Placement, bool) {
	for _, p := range g.Placements {
		if p.Name == name {
			return p, true
		}
	}
	return Placement{}, false
}

func rotate(deg float64) string {
	if deg == 0 {
		return ""
	}
	return fmt.Sprintf("rotate(%gdeg)", deg)
}

func mirror(on bool) string {
	if !on {
		return ""
	}
	return "scaleX(-1)"
}

// transform joins non-empty parts; an empty chain renders as the identity
// rotation so the CSS attribute is always well-formed.
func transform(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return "rotate(0deg)"
	}
	return strings.Join(kept, " ")
}
