package wave

import "math"

const (
	BaseUnits     = 5   // units in wave 0
	MaxBaseUnits  = 15  // additive term cap, reached at wave 20
	GrowthPerWave = 0.1 // multiplicative growth, uncapped
)

// Count returns how many demons spawn in the given wave:
//
//	base  = min(5 + floor(wave/2), 15)
//	count = floor(base * (1 + wave*0.1))
//
// The multiplier keeps late waves growing after base saturates. Negative
// waves follow the same formulas and never yield less than zero.
func Count(wave int) int {
	base := min(BaseUnits+floorDiv(wave, 2), MaxBaseUnits)
	// The conversion rounds the product before the add, so no platform
	// fuses it into an FMA and counts stay identical everywhere.
	growth := 1 + float64(float64(wave)*GrowthPerWave)
	n := int(math.Floor(float64(base) * growth))
	return max(n, 0)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
