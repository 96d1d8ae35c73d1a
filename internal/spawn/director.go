// Package spawn turns a wave composition into placed demons with their
// catalog stats attached.
package spawn

import (
	"demon-waves/internal/demon"
	"demon-waves/internal/radar"
	"demon-waves/internal/wave"
	"fmt"
	"math"
)

// Spawn is one demon ready to be instantiated in the world.
type Spawn struct {
	Type     demon.Type
	Profile  demon.Profile
	Position radar.Point
}

// Director places each demon of a composition on a ring around an origin.
type Director struct {
	Catalog     *demon.Catalog
	MinDistance float64
	MaxDistance float64
}

// NewDirector validates the placement ring.
func NewDirector(catalog *demon.Catalog, minDist, maxDist float64) (*Director, error) {
	if catalog == nil {
		return nil, fmt.Errorf("spawn director: nil catalog")
	}
	if minDist < 0 || maxDist < minDist {
		return nil, fmt.Errorf("spawn director: bad distance range [%g, %g]", minDist, maxDist)
	}
	return &Director{Catalog: catalog, MinDistance: minDist, MaxDistance: maxDist}, nil
}

// Place returns one Spawn per element of types, in order. Each position uses
// two draws from rng: bearing, then distance within [MinDistance, MaxDistance).
func (d *Director) Place(origin radar.Point, types wave.Composition, rng wave.RandomSource) []Spawn {
	spawns := make([]Spawn, 0, len(types))
	for _, t := range types {
		angle := rng.Float64() * 2 * math.Pi
		dist := d.MinDistance + rng.Float64()*(d.MaxDistance-d.MinDistance)
		spawns = append(spawns, Spawn{
			Type:    t,
			Profile: d.Catalog.Profile(t),
			Position: radar.Point{
				X: origin.X + math.Sin(angle)*dist,
				Y: origin.Y,
				Z: origin.Z + math.Cos(angle)*dist,
			},
		})
	}
	return spawns
}

// Positions extracts the positions of spawns, for radar projection.
func Positions(spawns []Spawn) []radar.Point {
	out := make([]radar.Point, len(spawns))
	for i, s := range spawns {
		out[i] = s.Position
	}
	return out
}

// TotalHealth sums the health of every spawn; a rough measure of how much
// damage the player must deal to clear the wave.
func TotalHealth(spawns []Spawn) int {
	total := 0
	for _, s := range spawns {
		total += s.Profile.Health
	}
	return total
}
