package render

import "github.com/gdamore/tcell/v2"

// DrawHUD renders the status line and message log at the bottom of the
// screen, then shows the frame.
func (r *Renderer) DrawHUD(status string, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudHeight

	// Separator line.
	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, status, styleText)

	// Message log (last 3 messages).
	start := max(len(messages)-3, 0)
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, styleMessage)
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
