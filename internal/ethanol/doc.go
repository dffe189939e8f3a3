// Package ethanol estimates blood ethanol concentration from ingestion
// data using the Widmark model.
//
// # Model
//
// A single ingestion event is followed by zero-order elimination:
//   - EthanolIngested converts a beverage volume and its ethanol fraction
//     into a mass of pure ethanol using the density of ethanol.
//   - PeakSerumEthanol models the instantaneous pre-elimination peak as
//     ethanol / (weight × Vd), where Vd is the volume of distribution.
//   - EBAC subtracts elimination accrued over the elapsed time from the
//     peak: ebac = peak − rate × duration.
//
// Population-mean and sex-specific values for Vd and the elimination rate
// are bundled as Profile presets. Callers select a preset explicitly or
// supply their own quantities; nothing defaults silently.
//
// # Validation
//
// The formulas are pure and total over their typed domain and perform no
// physiologic validation: an ethanol fraction outside [0,1], a
// non-positive weight, or a negative duration produces a well-typed but
// meaningless result. Hosts that need clinical safety validate before
// calling. EBAC may be negative once elimination exceeds the peak; the
// formula never clamps, so callers can distinguish "fully eliminated"
// from "never reached this concentration".
//
// # Clinical effects
//
// The package also carries the reference clinical-effects table for serum
// ethanol and a classifier over it; see ClinicalRanges and Classify.
package ethanol
