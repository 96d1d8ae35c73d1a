package demon

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Profile holds the static attributes of one demon type.
// Distances share one unit system; Speed is in units per second.
type Profile struct {
	Name         string
	Glyph        string
	Health       int // hits of player damage to kill
	Speed        float64
	Scale        float64
	BodyColor    tcell.Color
	HeadColor    tcell.Color
	EyeColor     tcell.Color
	DetectRange  float64
	AttackRange  float64
	ChaseRange   float64
	AttackDamage int
	SpawnWeight  float64 // base weight, used when no difficulty tier overrides it
}

// validate checks the positivity invariants of a single profile.
func (p Profile) validate() error {
	switch {
	case p.Health <= 0:
		return fmt.Errorf("health %d must be positive", p.Health)
	case !finitePositive(p.Speed):
		return fmt.Errorf("speed %g must be positive", p.Speed)
	case !finitePositive(p.Scale):
		return fmt.Errorf("scale %g must be positive", p.Scale)
	case !finitePositive(p.DetectRange), !finitePositive(p.AttackRange), !finitePositive(p.ChaseRange):
		return fmt.Errorf("ranges (%g, %g, %g) must be positive", p.DetectRange, p.AttackRange, p.ChaseRange)
	case p.AttackDamage <= 0:
		return fmt.Errorf("attack damage %d must be positive", p.AttackDamage)
	case !finitePositive(p.SpawnWeight):
		return fmt.Errorf("spawn weight %g must be positive", p.SpawnWeight)
	}
	return nil
}

// finitePositive is false for NaN, which fails every comparison.
func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Catalog maps every Type to exactly one Profile. It is read-only after
// construction and safe to share between goroutines.
type Catalog struct {
	profiles [NumTypes]Profile
}

// NewCatalog builds a Catalog from a complete profile table.
// Every Type must be present and every profile must pass validation.
func NewCatalog(profiles map[Type]Profile) (*Catalog, error) {
	c := &Catalog{}
	for t := range profiles {
		if !t.Valid() {
			return nil, fmt.Errorf("catalog: unknown demon type %d", uint8(t))
		}
	}
	for _, t := range Types {
		p, ok := profiles[t]
		if !ok {
			return nil, fmt.Errorf("catalog: missing profile for %s", t)
		}
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", t, err)
		}
		c.profiles[t] = p
	}
	return c, nil
}

// MustCatalog is NewCatalog for built-in tables; it panics on error.
func MustCatalog(profiles map[Type]Profile) *Catalog {
	c, err := NewCatalog(profiles)
	if err != nil {
		panic(err)
	}
	return c
}

// Profile returns the profile for t. The enumeration is closed, so an
// out-of-range value is a programming error and panics.
func (c *Catalog) Profile(t Type) Profile {
	if !t.Valid() {
		panic(fmt.Sprintf("demon: no profile for %s", t))
	}
	return c.profiles[t]
}

// BaseWeight returns the untiered spawn weight of t.
func (c *Catalog) BaseWeight(t Type) float64 {
	return c.Profile(t).SpawnWeight
}
