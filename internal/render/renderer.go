package render

import (
	"demon-waves/internal/demon"
	"demon-waves/internal/radar"
	"demon-waves/internal/spawn"
	"demon-waves/internal/wave"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	hudHeight    = 5  // rows reserved at the bottom for the HUD
	radarRows    = 15 // radar grid height; width is twice this
	minRadarCols = 70 // narrower screens skip the radar panel
	stripCell    = 3  // columns per demon in the composition strip
)

// View is everything the inspector shows for one wave.
type View struct {
	Wave       int
	Seed       int64
	Types      wave.Composition
	Weights    wave.Weights
	Reinforced bool
	Spawns     []spawn.Spawn
	Radar      radar.Frame
}

// Renderer draws the wave inspector onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	catalog *demon.Catalog
	radar   radar.Config
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, catalog *demon.Catalog, radarCfg radar.Config) *Renderer {
	return &Renderer{screen: screen, catalog: catalog, radar: radarCfg}
}

// DrawFrame renders the title, the weight table, the composition strip and,
// when the screen is wide enough, the radar.
func (r *Renderer) DrawFrame(v View) {
	r.screen.Clear()
	w, h := r.screen.Size()
	viewH := h - hudHeight

	r.drawTitle(v)
	y := r.drawWeights(v, 2)

	panelW := w
	if g, ok := r.layoutRadar(w, viewH); ok {
		r.drawRadar(g, v)
		panelW = g.X - 2
	}
	r.drawStrip(v, y+1, panelW, viewH)
}

func (r *Renderer) drawTitle(v View) {
	title := fmt.Sprintf("Wave %d  ·  %d demons  ·  seed %d", v.Wave, len(v.Types), v.Seed)
	x := r.drawText(0, 0, title, styleTitle)
	if v.Reinforced {
		r.drawText(x+2, 0, "[reinforced]", styleWarn)
	}
}

// drawWeights prints one row per demon type and returns the next free row.
func (r *Renderer) drawWeights(v View, y int) int {
	r.drawText(0, y, "    TYPE            WEIGHT  SHARE  COUNT   HP  DMG", styleLabel)
	y++

	total := v.Weights.Total()
	counts := v.Types.Counts()
	for _, t := range demon.Types {
		p := r.catalog.Profile(t)
		share := 0.0
		if total > 0 {
			share = v.Weights[t] / total * 100
		}
		r.putGlyph(1, y, p.Glyph, styleText)
		r.drawText(4, y, fmt.Sprintf("%-14s", p.Name), nameStyle(p))
		row := fmt.Sprintf("%6.0f %5.1f%% %6d %4d %4d", v.Weights[t], share, counts[t], p.Health, p.AttackDamage)
		r.drawText(19, y, row, styleText)
		y++
	}

	r.drawText(4, y, fmt.Sprintf("total hp to clear: %d", spawn.TotalHealth(v.Spawns)), styleLabel)
	return y + 1
}

// drawStrip lays out one glyph per demon in spawn order, wrapping at width.
func (r *Renderer) drawStrip(v View, top, width, bottom int) {
	perRow := max(width/stripCell, 1)
	for i, t := range v.Types {
		row, col := i/perRow, i%perRow
		y := top + row
		if y >= bottom {
			more := fmt.Sprintf("+%d more", len(v.Types)-i)
			r.drawText(0, bottom-1, more, styleLabel)
			return
		}
		r.putGlyph(col*stripCell, y, r.catalog.Profile(t).Glyph, styleText)
	}
}

// layoutRadar places the radar panel at the top right, if it fits.
func (r *Renderer) layoutRadar(screenW, viewH int) (radarGrid, bool) {
	g := radarGrid{Y: 2, Rows: radarRows, Size: r.radar.Size}
	g.X = screenW - g.Cols() - 1
	if screenW < minRadarCols || g.Y+g.Rows+1 > viewH {
		return g, false
	}
	return g, true
}

func (r *Renderer) drawRadar(g radarGrid, v View) {
	half := r.radar.Size / 2
	center := radar.Pixel{X: half, Y: half}
	cx, cy, _ := g.ToCell(center)

	for col := 0; col < g.Cols(); col++ {
		r.screen.SetContent(g.X+col, cy, '─', nil, styleGrid)
	}
	for row := 0; row < g.Rows; row++ {
		r.screen.SetContent(cx, g.Y+row, '│', nil, styleGrid)
	}
	for _, radius := range radar.Rings(r.radar) {
		const steps = 96
		for k := range steps {
			a := 2 * math.Pi * float64(k) / steps
			p := radar.Pixel{X: half + radius*math.Cos(a), Y: half + radius*math.Sin(a)}
			if sx, sy, ok := g.ToCell(p); ok {
				r.screen.SetContent(sx, sy, '·', nil, styleGrid)
			}
		}
	}

	for _, b := range v.Radar.Blips {
		if b.Index >= len(v.Spawns) {
			continue
		}
		if sx, sy, ok := g.ToCell(b.At); ok {
			r.screen.SetContent(sx, sy, '●', nil, blipStyle(v.Spawns[b.Index].Profile))
		}
	}

	if hx, hy, ok := g.ToCell(v.Radar.Heading); ok && (hx != cx || hy != cy) {
		r.screen.SetContent(hx, hy, '•', nil, stylePlayer)
	}
	r.screen.SetContent(cx, cy, '◉', nil, stylePlayer)

	label := fmt.Sprintf("radar %g  (%d in range)", r.radar.Range, len(v.Radar.Blips))
	r.drawText(g.X, g.Y+g.Rows, label, styleLabel)
}

// drawText writes text from (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
