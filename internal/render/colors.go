package render

import (
	"demon-waves/internal/demon"

	"github.com/gdamore/tcell/v2"
)

var (
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	styleGrid    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

// nameStyle colors a demon's name with its body and eye colors.
func nameStyle(p demon.Profile) tcell.Style {
	return tcell.StyleDefault.Foreground(p.EyeColor).Background(p.BodyColor)
}

// blipStyle colors a radar blip with the demon's eye color.
func blipStyle(p demon.Profile) tcell.Style {
	return tcell.StyleDefault.Foreground(p.EyeColor).Bold(true)
}
