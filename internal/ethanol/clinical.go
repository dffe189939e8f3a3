package ethanol

import "github.com/louisbranch/widmark/internal/core/units"

// ClinicalRange is one row of the clinical-effects table: a closed band
// of serum ethanol concentrations and the effects expected within it. A
// nil Upper bound means the band is open-ended ("and above").
type ClinicalRange struct {
	Lower       units.Quantity
	Upper       *units.Quantity
	Description string
}

// clinicalRanges is ordered by ascending lower bound with touching
// inclusive boundaries; Classify depends on that ordering.
var clinicalRanges = []ClinicalRange{
	closedRange(20, 50, "Diminished fine motor coordination"),
	closedRange(50, 100, "Impaired judgement; impaired coordination"),
	closedRange(100, 150, "Difficulty with gait and balance"),
	closedRange(150, 250, "Lethargy; difficulty sitting upright without assistance"),
	closedRange(250, 300, "Stupor; responsive only to strong stimuli"),
	closedRange(300, 400, "Coma in the non-habituated drinker"),
	openRange(400, "Respiratory depression; potentially fatal"),
}

// ClinicalRanges returns the clinical-effects table as a read-only
// ordered sequence. The returned slice is a copy; mutating it does not
// affect the table.
func ClinicalRanges() []ClinicalRange {
	ranges := make([]ClinicalRange, len(clinicalRanges))
	for i, r := range clinicalRanges {
		ranges[i] = r
		if r.Upper != nil {
			upper := *r.Upper
			ranges[i].Upper = &upper
		}
	}
	return ranges
}

// Classify determines which clinical range a serum concentration falls
// within: the value must be >= the range's lower bound and, when the
// range has an upper bound, <= that bound. Both bounds are inclusive and
// adjacent bands touch, so a boundary value satisfies two bands; Classify
// deterministically returns the first match in ascending order, i.e. a
// value of exactly 50 mg/dL classifies into the 20–50 band.
//
// The boolean is false when the concentration is below the lowest band.
// Panics with *units.DimensionError if concentration is not a serum
// concentration.
func Classify(concentration units.Quantity) (ClinicalRange, bool) {
	for _, r := range clinicalRanges {
		if !concentration.GTE(r.Lower) {
			continue
		}
		if r.Upper == nil || concentration.LTE(*r.Upper) {
			return r, true
		}
	}
	return ClinicalRange{}, false
}

func closedRange(lower, upper float64, description string) ClinicalRange {
	upperBound := units.Of(upper, units.MilligramsPerDeciliter)
	return ClinicalRange{
		Lower:       units.Of(lower, units.MilligramsPerDeciliter),
		Upper:       &upperBound,
		Description: description,
	}
}

func openRange(lower float64, description string) ClinicalRange {
	return ClinicalRange{
		Lower:       units.Of(lower, units.MilligramsPerDeciliter),
		Description: description,
	}
}
