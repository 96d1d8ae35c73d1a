// Package wave decides how many demons spawn in a wave and which type each
// one is. Composition is a pure function of the wave number and the draws of
// an injected RandomSource: the same draws always give the same wave.
package wave

import (
	"demon-waves/internal/demon"
	"slices"
	"strings"
)

const (
	// ReinforceFromWave is the first wave guaranteed at least one strong demon.
	ReinforceFromWave = 3
	// CacodemonFromWave is the first wave whose reinforcement is a cacodemon
	// rather than a demon.
	CacodemonFromWave = 5
)

// Composition is the ordered list of demon types for one wave. The composer
// keeps no reference to it; the caller owns it.
type Composition []demon.Type

// Counts tallies the composition per type, indexed by demon.Type.
func (c Composition) Counts() [demon.NumTypes]int {
	var n [demon.NumTypes]int
	for _, t := range c {
		n[t]++
	}
	return n
}

// HasStrong reports whether any element is a strong type.
func (c Composition) HasStrong() bool {
	return slices.ContainsFunc(c, demon.Type.IsStrong)
}

// String joins the type names: "IMP, DEMON, IMP".
func (c Composition) String() string {
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// Composer builds wave compositions from a weight table. It holds only
// read-only state, so one Composer may serve many callers as long as each
// brings its own RandomSource.
type Composer struct {
	weights  *WeightTable
	observer Observer
}

// Option configures a Composer.
type Option func(*Composer)

// WithObserver registers a callback that receives a Summary after every
// composition. Observers must not retain or modify the Summary's Types.
func WithObserver(o Observer) Option {
	return func(c *Composer) { c.observer = o }
}

// NewComposer returns a Composer over the given weight table.
func NewComposer(weights *WeightTable, opts ...Option) *Composer {
	c := &Composer{weights: weights}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Weights exposes the composer's weight table.
func (c *Composer) Weights() *WeightTable { return c.weights }

// Compose returns the demon types for the given wave. It draws exactly
// Count(wave) values from rng.
func (c *Composer) Compose(wave int, rng RandomSource) Composition {
	return c.Summarize(wave, rng).Types
}

// Summarize composes a wave like Compose and also reports the weights used
// and whether the minimum-difficulty rule fired.
func (c *Composer) Summarize(wave int, rng RandomSource) Summary {
	weights := c.weights.Snapshot(wave)
	sampled := Sample(weights, Count(wave), rng)
	types, reinforced := Reinforce(sampled, wave)

	s := Summary{
		Wave:       wave,
		Count:      len(types),
		Types:      types,
		Weights:    weights,
		Reinforced: reinforced,
	}
	if c.observer != nil {
		c.observer(s)
	}
	return s
}

// Sample draws n types by inverse-CDF over w in demon.Types order.
func Sample(w Weights, n int, rng RandomSource) Composition {
	total := w.Total()
	out := make(Composition, 0, n)
	for range n {
		out = append(out, pick(w, rng.Float64()*total))
	}
	return out
}

// pick walks the cumulative weights and returns the first type at which the
// remainder reaches zero. Rounding can leave a sliver of r after the last
// type; that draw belongs to the last type.
func pick(w Weights, r float64) demon.Type {
	for _, t := range demon.Types {
		r -= w[t]
		if r <= 0 {
			return t
		}
	}
	return demon.Types[demon.NumTypes-1]
}

// Reinforce applies the minimum-difficulty rule: from ReinforceFromWave on, a
// wave with no strong demon has its first imp promoted (to a cacodemon from
// CacodemonFromWave, otherwise a demon). The input is never modified; when a
// promotion happens a new Composition is returned along with true.
//
// A wave with no strong demon and no imp (only possible when empty) is
// returned unchanged.
func Reinforce(types Composition, wave int) (Composition, bool) {
	if wave < ReinforceFromWave || types.HasStrong() {
		return types, false
	}
	i := slices.Index(types, demon.Imp)
	if i < 0 {
		return types, false
	}
	out := slices.Clone(types)
	if wave >= CacodemonFromWave {
		out[i] = demon.Cacodemon
	} else {
		out[i] = demon.Demon
	}
	return out, true
}
