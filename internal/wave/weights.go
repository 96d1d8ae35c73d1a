package wave

import (
	"demon-waves/internal/demon"
	"fmt"
	"math"
	"sort"
)

// UseBase in a tier slot means "fall back to the catalog's base spawn weight".
const UseBase = 0

// Tier overrides spawn weights for every wave >= MinWave, until a tier with a
// higher MinWave takes over. Weights is indexed by demon.Type.
type Tier struct {
	MinWave int
	Weights [demon.NumTypes]float64
}

// DefaultTiers is the difficulty curve. Later waves shift mass from imps
// toward demons and cacodemons; waves below the lowest tier use base weights.
var DefaultTiers = []Tier{
	{MinWave: 8, Weights: [demon.NumTypes]float64{40, 80, 70, 40}},
	{MinWave: 5, Weights: [demon.NumTypes]float64{60, 80, 50, 20}},
	{MinWave: 3, Weights: [demon.NumTypes]float64{UseBase, 80, 50, UseBase}},
}

// Weights is a per-type weight snapshot for one wave, indexed by demon.Type.
type Weights [demon.NumTypes]float64

// Total sums all weights.
func (w Weights) Total() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// WeightTable resolves (type, wave) to a spawn weight. Tiers are evaluated
// from the highest MinWave down and the first match wins.
type WeightTable struct {
	catalog *demon.Catalog
	tiers   []Tier
}

// NewWeightTable validates tiers against catalog. Every slot must be
// UseBase or finite and strictly positive, and MinWave values must be distinct.
func NewWeightTable(catalog *demon.Catalog, tiers []Tier) (*WeightTable, error) {
	if catalog == nil {
		return nil, fmt.Errorf("weight table: nil catalog")
	}
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinWave > sorted[j].MinWave })

	for i, tier := range sorted {
		if i > 0 && sorted[i-1].MinWave == tier.MinWave {
			return nil, fmt.Errorf("weight table: duplicate tier for wave %d", tier.MinWave)
		}
		for _, t := range demon.Types {
			if w := tier.Weights[t]; w != UseBase && !(w > 0 && !math.IsInf(w, 1)) {
				return nil, fmt.Errorf("weight table: tier %d: %s weight %g must be positive and finite", tier.MinWave, t, w)
			}
		}
	}
	return &WeightTable{catalog: catalog, tiers: sorted}, nil
}

// MustWeightTable is NewWeightTable for built-in tables; it panics on error.
func MustWeightTable(catalog *demon.Catalog, tiers []Tier) *WeightTable {
	wt, err := NewWeightTable(catalog, tiers)
	if err != nil {
		panic(err)
	}
	return wt
}

// For returns the spawn weight of t at the given wave. The result is always
// positive: tier slots are positive or defer to the catalog, whose weights
// are validated positive.
func (wt *WeightTable) For(t demon.Type, wave int) float64 {
	if tier := wt.tierFor(wave); tier != nil {
		if w := tier.Weights[t]; w != UseBase {
			return w
		}
	}
	return wt.catalog.BaseWeight(t)
}

// Snapshot resolves the weight of every type at the given wave.
func (wt *WeightTable) Snapshot(wave int) Weights {
	var w Weights
	for _, t := range demon.Types {
		w[t] = wt.For(t, wave)
	}
	return w
}

// Tiers returns a copy of the tiers, highest MinWave first.
func (wt *WeightTable) Tiers() []Tier {
	out := make([]Tier, len(wt.tiers))
	copy(out, wt.tiers)
	return out
}

func (wt *WeightTable) tierFor(wave int) *Tier {
	for i := range wt.tiers {
		if wave >= wt.tiers[i].MinWave {
			return &wt.tiers[i]
		}
	}
	return nil
}
