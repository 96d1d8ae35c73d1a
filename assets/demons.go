package assets

import (
	"demon-waves/internal/demon"

	"github.com/gdamore/tcell/v2"
)

// Emoji constants used as demon glyphs.
const (
	GlyphImp       = "👹"
	GlyphDemon     = "🐺"
	GlyphCacodemon = "👁️"
	GlyphBaron     = "👑"
)

// PlayerSpeed is the reference movement speed demon speeds are tuned against.
const PlayerSpeed = 100

// DemonProfiles is the built-in profile table, one entry per demon type.
var DemonProfiles = map[demon.Type]demon.Profile{
	demon.Imp: {
		Name:         "Imp",
		Glyph:        GlyphImp,
		Health:       1,
		Speed:        20,
		Scale:        1.0,
		BodyColor:    tcell.NewHexColor(0x8b4513), // brown
		HeadColor:    tcell.NewHexColor(0x654321),
		EyeColor:     tcell.NewHexColor(0xff0000),
		DetectRange:  60,
		AttackRange:  30,
		ChaseRange:   8,
		AttackDamage: 10,
		SpawnWeight:  100,
	},
	demon.Demon: {
		Name:         "Demon",
		Glyph:        GlyphDemon,
		Health:       2,
		Speed:        30, // faster than an imp
		Scale:        0.9,
		BodyColor:    tcell.NewHexColor(0x4b0000), // dark red
		HeadColor:    tcell.NewHexColor(0x8b0000),
		EyeColor:     tcell.NewHexColor(0xff4400),
		DetectRange:  70,
		AttackRange:  40,
		ChaseRange:   10,
		AttackDamage: 15,
		SpawnWeight:  60,
	},
	demon.Cacodemon: {
		Name:         "Cacodemon",
		Glyph:        GlyphCacodemon,
		Health:       4,
		Speed:        45,
		Scale:        1.6,
		BodyColor:    tcell.NewHexColor(0x800080), // purple
		HeadColor:    tcell.NewHexColor(0x4b0082),
		EyeColor:     tcell.NewHexColor(0xff0000),
		DetectRange:  80,
		AttackRange:  60,
		ChaseRange:   12,
		AttackDamage: 20,
		SpawnWeight:  30,
	},
	demon.Baron: {
		Name:         "Baron of Hell",
		Glyph:        GlyphBaron,
		Health:       8,
		Speed:        35,
		Scale:        2.2,
		BodyColor:    tcell.NewHexColor(0x006400), // dark green
		HeadColor:    tcell.NewHexColor(0x228b22),
		EyeColor:     tcell.NewHexColor(0xff6600),
		DetectRange:  100,
		AttackRange:  80,
		ChaseRange:   15,
		AttackDamage: 35,
		SpawnWeight:  5,
	},
}

// Demons is the process-wide catalog built from DemonProfiles at startup.
var Demons = demon.MustCatalog(DemonProfiles)
