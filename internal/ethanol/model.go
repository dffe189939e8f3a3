package ethanol

import "github.com/louisbranch/widmark/internal/core/units"

// EthanolIngested computes the mass of pure ethanol in a beverage: the
// ingested volume times the dimensionless ethanol fraction gives the
// volume of pure ethanol, which the density of ethanol converts to mass.
//
// concentration is a fraction, e.g. 0.40 for 40% ABV. Values outside
// [0,1] are accepted numerically and produce physically meaningless
// results; validation belongs to the caller.
func EthanolIngested(volume units.Quantity, concentration float64) units.Quantity {
	return volume.Mul(units.Scalar(concentration)).Mul(EthanolDensity)
}

// PeakSerumEthanol models the instantaneous pre-elimination peak serum
// concentration as ethanol / (weight × vd).
//
// vd is the volume of distribution, a person- and sex-specific empirical
// constant; use a Profile preset when no individual value is known.
// weight must be positive — a zero weight divides by zero. That is a
// precondition, not a handled error.
func PeakSerumEthanol(ethanol, weight, vd units.Quantity) units.Quantity {
	return ethanol.Div(weight.Mul(vd))
}

// EBAC estimates the blood ethanol concentration at duration after
// drinking began, per the Widmark equation:
//
//	ebac = PeakSerumEthanol(ethanol, weight, vd) − rate × duration
//
// under the clinically standard assumption of a single ingestion event
// followed by zero-order elimination. The result goes negative once
// elimination exceeds the peak; EBAC never clamps, so callers can
// distinguish "fully eliminated" from "never reached this concentration".
// Clamping for display belongs to the presentation layer.
func EBAC(ethanol, weight, duration units.Quantity, p Profile) units.Quantity {
	return EBACWith(ethanol, weight, p.Vd, duration, p.EliminationRate)
}

// EBACWith is EBAC with the volume of distribution and elimination rate
// supplied as explicit quantities instead of a Profile.
func EBACWith(ethanol, weight, vd, duration, rate units.Quantity) units.Quantity {
	return PeakSerumEthanol(ethanol, weight, vd).Sub(rate.Mul(duration))
}
