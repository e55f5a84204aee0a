// Package export maps UI selections to filenames, tints, the game config
// block, a machine-readable manifest, and the downloadable archive.
package export

import (
	"regexp"
	"strings"
)

// Mode selects the sprite-naming strategy.
type Mode string

const (
	// ModeCustom generates fresh per-skin sprites with color baked in.
	ModeCustom Mode = "custom"
	// ModeBase reuses stock sprite ids and recolors them via runtime tints.
	ModeBase Mode = "base"
)

// ParseMode maps document values and UI labels to a Mode. Unknown input maps
// to ModeCustom.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeBase)) {
		return ModeBase
	}
	return ModeCustom
}

// Logical part keys used across filenames, tints, and sprites.
const (
	PartBase     = "base"
	PartHands    = "hands"
	PartFeet     = "feet"
	PartBackpack = "backpack"
	PartLoot     = "loot"
	PartBorder   = "border"
	PartInner    = "inner"
	PartFront    = "front"
)

// StockSpriteIDs are the shared outfitBase sprite ids used by base mode when
// the caller supplies no override.
var StockSpriteIDs = map[string]string{
	PartBase:     "player-base-01",
	PartHands:    "player-hands-01",
	PartFeet:     "player-feet-01",
	PartBackpack: "player-circle-base-01",
	PartLoot:     "loot-shirt-outfitBase",
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Sanitize strips a skin name down to a filesystem-safe identifier. Empty
// names fall back to "Custom" so export never produces an empty filename.
func Sanitize(name string) string {
	s := nonAlnum.ReplaceAllString(strings.TrimSpace(name), "")
	if s == "" {
		return "Custom"
	}
	return s
}

// Ident builds the exported config identifier for a skin name.
func Ident(name string) string {
	return "outfit" + Sanitize(name)
}

// BaseID builds the lowercase sprite-id fragment for a skin name.
func BaseID(name string) string {
	return strings.ToLower(Sanitize(name))
}

// EnsureExtension forces a filename to use the provided extension (without
// dot). Empty names stay empty.
func EnsureExtension(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasSuffix(name, "."+ext) {
		return name
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	return name + "." + ext
}

// ApplyPrefix prepends a directory prefix unless the filename already
// contains one.
func ApplyPrefix(prefix, filename string) string {
	if filename == "" || strings.Contains(filename, "/") {
		return filename
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return filename
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + filename
}

// Dirs holds the archive directory prefixes for player and loot assets.
type Dirs struct {
	Player string
	Loot   string
}

// DefaultDirs matches the game's asset tree.
func DefaultDirs() Dirs {
	return Dirs{Player: "img/player/", Loot: "img/loot/"}
}

// FilenameInput gathers everything the naming strategy needs.
type FilenameInput struct {
	BaseID         string
	Mode           Mode
	Existing       map[string]string // stock ids by part key, base mode only
	Dirs           Dirs
	Ext            string // reference extension without dot
	LootBorderOn   bool
	LootBorderName string
	LootInnerName  string
	FrontOn        bool
}

// BuildFilenames resolves the per-part filename map. Custom mode generates
// unique per-skin names; base mode reuses stock ids so shared art stays
// untouched. A border enabled with an empty name is simply omitted.
func BuildFilenames(in FilenameInput) map[string]string {
	files := make(map[string]string)

	if in.Mode == ModeBase {
		for _, part := range []string{PartBase, PartHands, PartFeet, PartBackpack, PartLoot} {
			id := in.Existing[part]
			if id == "" {
				id = StockSpriteIDs[part]
			}
			files[part] = EnsureExtension(id, in.Ext)
		}
	} else {
		files[PartBase] = ApplyPrefix(in.Dirs.Player, "player-base-"+in.BaseID+"."+in.Ext)
		files[PartHands] = ApplyPrefix(in.Dirs.Player, "player-hands-"+in.BaseID+"."+in.Ext)
		files[PartFeet] = ApplyPrefix(in.Dirs.Player, "player-feet-"+in.BaseID+"."+in.Ext)
		files[PartBackpack] = ApplyPrefix(in.Dirs.Player, "player-circle-base-"+in.BaseID+"."+in.Ext)
		files[PartLoot] = ApplyPrefix(in.Dirs.Loot, "loot-shirt-outfit"+in.BaseID+"."+in.Ext)
	}

	if in.LootBorderOn && in.LootBorderName != "" {
		files[PartBorder] = ApplyPrefix(in.Dirs.Loot, EnsureExtension(in.LootBorderName, in.Ext))
	}
	if in.LootBorderOn && in.LootInnerName != "" {
		files[PartInner] = ApplyPrefix(in.Dirs.Loot, EnsureExtension(in.LootInnerName, in.Ext))
	}
	if in.FrontOn {
		files[PartFront] = ApplyPrefix(in.Dirs.Player, "player-front-"+in.BaseID+"."+in.Ext)
	}

	return files
}

// AdjustTints applies the sprite-mode tint rule: custom mode bakes color into
// the art, so every runtime tint is forced to white; base mode passes the
// chosen tints through so shared art gets recolored at runtime.
func AdjustTints(tints map[string]string, mode Mode) map[string]string {
	out := make(map[string]string, len(tints))
	for k, v := range tints {
		if mode == ModeCustom {
			out[k] = "0xffffff"
		} else {
			out[k] = v
		}
	}
	return out
}
