package spawn

import (
	"demon-waves/assets"
	"demon-waves/internal/demon"
	"demon-waves/internal/radar"
	"demon-waves/internal/wave"
	"math"
	"math/rand"
	"testing"
)

func TestPlaceWithinRing(t *testing.T) {
	d, err := NewDirector(assets.Demons, 20, 50)
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	origin := radar.Point{X: 5, Z: -5}
	types := wave.Composition{demon.Imp, demon.Baron, demon.Cacodemon, demon.Demon}
	spawns := d.Place(origin, types, rand.New(rand.NewSource(42)))

	if len(spawns) != len(types) {
		t.Fatalf("spawns = %d; want %d", len(spawns), len(types))
	}
	for i, s := range spawns {
		if s.Type != types[i] {
			t.Errorf("spawn %d type = %s; want %s", i, s.Type, types[i])
		}
		if s.Profile != assets.Demons.Profile(s.Type) {
			t.Errorf("spawn %d profile does not match catalog", i)
		}
		dist := math.Hypot(s.Position.X-origin.X, s.Position.Z-origin.Z)
		if dist < 20-1e-9 || dist >= 50 {
			t.Errorf("spawn %d at distance %g; want [20, 50)", i, dist)
		}
	}
}

func TestPlaceFixedDraws(t *testing.T) {
	d, _ := NewDirector(assets.Demons, 10, 30)
	// Bearing 0 points along +Z; half of the distance span.
	spawns := d.Place(radar.Point{}, wave.Composition{demon.Imp}, wave.NewSequence(0, 0.5))
	p := spawns[0].Position
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Z-20) > 1e-9 {
		t.Errorf("position = %+v; want (0, 20)", p)
	}
}

func TestNewDirectorRejectsBadRange(t *testing.T) {
	if _, err := NewDirector(assets.Demons, 30, 10); err == nil {
		t.Error("expected error when max < min")
	}
	if _, err := NewDirector(assets.Demons, -1, 10); err == nil {
		t.Error("expected error for negative min")
	}
	if _, err := NewDirector(nil, 1, 10); err == nil {
		t.Error("expected error for nil catalog")
	}
}

func TestTotalHealthAndPositions(t *testing.T) {
	d, _ := NewDirector(assets.Demons, 0, 1)
	spawns := d.Place(radar.Point{}, wave.Composition{demon.Imp, demon.Baron}, wave.NewSequence(0.3))
	if got := TotalHealth(spawns); got != 9 {
		t.Errorf("TotalHealth = %d; want 9", got)
	}
	if pts := Positions(spawns); len(pts) != 2 || pts[1] != spawns[1].Position {
		t.Errorf("Positions = %v", pts)
	}
}
