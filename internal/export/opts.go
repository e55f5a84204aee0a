package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Rarity literals accepted by the engine config.
var RarityOptions = []string{
	"Rarity.Stock",
	"Rarity.Common",
	"Rarity.Uncommon",
	"Rarity.Rare",
	"Rarity.Epic",
	"Rarity.Legendary",
	"Rarity.Mythic",
}

// Opts is the full set of game-config fields, assembled once per render and
// never mutated after construction.
type Opts struct {
	SkinName       string
	Lore           string
	Rarity         string // engine literal, empty to omit
	NoDropOnDeath  bool
	NoDrop         bool
	Ghillie        bool
	ObstacleType   string
	BaseScale      float64
	LootBorderOn   bool
	LootBorderName string
	LootBorderTint string
	LootScale      float64
	SoundPickup    string
	RefExt         string // reference extension with dot, ".img" or ".svg"
}

// ConfigBlock emits the engine's skin-definition literal. Field order is
// fixed for round-trip compatibility with hand-authored configs; boolean
// flags and optional fields are omitted entirely when unset.
func (o Opts) ConfigBlock(ident string, filenames, tints map[string]string) string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add(`export const %s = defineOutfitSkin("outfitBase", {`, ident)
	add(`  name: %s,`, jsonString(o.displayName()))
	if o.NoDropOnDeath {
		add(`  noDropOnDeath: true,`)
	}
	if o.NoDrop {
		add(`  noDrop: true,`)
	}
	if o.Rarity != "" {
		add(`  rarity: %s,`, o.Rarity)
	}
	if o.Lore != "" {
		add(`  lore: %s,`, jsonString(o.Lore))
	}
	if o.Ghillie {
		add(`  ghillie: true,`)
	}
	if o.ObstacleType != "" {
		add(`  obstacleType: %s,`, jsonString(o.ObstacleType))
	}
	if o.BaseScale != 0 && o.BaseScale != 1 {
		add(`  baseScale: %s,`, formatScale(o.BaseScale))
	}

	add(`  skinImg: {`)
	add(`    baseTint: %s,`, tints[PartBase])
	add(`    baseSprite: %q,`, filenames[PartBase])
	add(`    handTint: %s,`, tints["hand"])
	add(`    handSprite: %q,`, filenames[PartHands])
	add(`    footTint: %s,`, tints["foot"])
	add(`    footSprite: %q,`, filenames[PartFeet])
	add(`    backpackTint: %s,`, tints[PartBackpack])
	add(`    backpackSprite: %q,`, filenames[PartBackpack])
	add(`  },`)

	add(`  lootImg: {`)
	add(`    sprite: %q,`, filenames[PartLoot])
	add(`    tint: %s,`, tints[PartLoot])
	if o.LootBorderOn && filenames[PartBorder] != "" {
		add(`    border: %q,`, filenames[PartBorder])
		add(`    borderTint: %s,`, tints[PartBorder])
		add(`    scale: %s,`, formatScale(o.LootScale))
	}
	add(`  },`)

	if o.SoundPickup != "" {
		add(`  sound: {`)
		add(`    pickup: %s,`, jsonString(o.SoundPickup))
		add(`  },`)
	}

	add(`});`)
	return strings.Join(lines, "\n")
}

// displayName falls back to the default identifier so the config never
// carries an empty name.
func (o Opts) displayName() string {
	if strings.TrimSpace(o.SkinName) == "" {
		return "Custom"
	}
	return o.SkinName
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func formatScale(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
