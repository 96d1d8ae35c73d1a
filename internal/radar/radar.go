// Package radar projects world positions onto a circular top-down display
// centered on the player. It computes coordinates only; drawing is left to
// the caller.
package radar

import (
	"fmt"
	"math"
)

// HeadingLength is the length of the player's heading marker in display units.
const HeadingLength = 8

// Point is a world position. Y is height; the display ignores it except
// when measuring range.
type Point struct {
	X, Y, Z float64
}

// Pixel is a position on the display, origin top-left, Y growing downward.
type Pixel struct {
	X, Y float64
}

// Config sizes the display. Size is the display's width and height; Range is
// the world distance shown from the center to the edge.
type Config struct {
	Size  float64 `yaml:"size"`
	Range float64 `yaml:"range"`
}

// DefaultConfig is the stock HUD radar.
var DefaultConfig = Config{Size: 120, Range: 60}

// Validate checks that the display has a positive size and range.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("radar size %g must be positive", c.Size)
	}
	if c.Range <= 0 {
		return fmt.Errorf("radar range %g must be positive", c.Range)
	}
	return nil
}

// Blip is one enemy drawn on the display.
type Blip struct {
	Index    int // position in the input slice
	At       Pixel
	Distance float64 // world distance from the player
}

// Frame is one projected radar picture.
type Frame struct {
	Center  Pixel
	Heading Pixel // end of the heading marker; the marker starts at Center
	Blips   []Blip
}

// Project maps enemies around player onto the display. Enemies whose
// straight-line distance (height included) exceeds cfg.Range are dropped; an
// enemy exactly at the range is kept. World +Z is drawn toward the top of the
// display.
func Project(player, forward Point, enemies []Point, cfg Config) Frame {
	half := cfg.Size / 2
	f := Frame{
		Center:  Pixel{X: half, Y: half},
		Heading: headingMarker(forward, half),
	}
	for i, e := range enemies {
		dx, dy, dz := e.X-player.X, e.Y-player.Y, e.Z-player.Z
		d := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if d > cfg.Range {
			continue
		}
		f.Blips = append(f.Blips, Blip{
			Index:    i,
			At:       Pixel{X: half + dx/cfg.Range*half, Y: half - dz/cfg.Range*half},
			Distance: d,
		})
	}
	return f
}

func headingMarker(forward Point, half float64) Pixel {
	angle := math.Atan2(forward.X, forward.Z)
	return Pixel{
		X: half + math.Sin(angle)*HeadingLength,
		Y: half - math.Cos(angle)*HeadingLength,
	}
}

// Rings returns the radii of the range circles at 25%, 50% and 75% of the
// display radius.
func Rings(cfg Config) []float64 {
	half := cfg.Size / 2
	return []float64{half * 0.25, half * 0.5, half * 0.75}
}
