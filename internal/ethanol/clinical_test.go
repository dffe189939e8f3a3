package ethanol

import (
	"testing"

	"github.com/louisbranch/widmark/internal/core/units"
)

func mgdl(value float64) units.Quantity {
	return units.Of(value, units.MilligramsPerDeciliter)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		concentration   units.Quantity
		wantMatch       bool
		wantDescription string
	}{
		{
			name:          "below the lowest band",
			concentration: mgdl(10),
			wantMatch:     false,
		},
		{
			name:          "negative concentration",
			concentration: mgdl(-5),
			wantMatch:     false,
		},
		{
			name:            "lowest band",
			concentration:   mgdl(30),
			wantMatch:       true,
			wantDescription: "Diminished fine motor coordination",
		},
		{
			name:            "impaired judgement band",
			concentration:   mgdl(75),
			wantMatch:       true,
			wantDescription: "Impaired judgement; impaired coordination",
		},
		{
			name:            "gait and balance band",
			concentration:   mgdl(120),
			wantMatch:       true,
			wantDescription: "Difficulty with gait and balance",
		},
		{
			name:            "lethargy band",
			concentration:   mgdl(200),
			wantMatch:       true,
			wantDescription: "Lethargy; difficulty sitting upright without assistance",
		},
		{
			name:            "stupor band",
			concentration:   mgdl(275),
			wantMatch:       true,
			wantDescription: "Stupor; responsive only to strong stimuli",
		},
		{
			name:            "coma band",
			concentration:   mgdl(350),
			wantMatch:       true,
			wantDescription: "Coma in the non-habituated drinker",
		},
		{
			name:            "open-ended top band",
			concentration:   mgdl(520),
			wantMatch:       true,
			wantDescription: "Respiratory depression; potentially fatal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.concentration)
			if ok != tt.wantMatch {
				t.Fatalf("Classify() match = %v, want %v", ok, tt.wantMatch)
			}
			if !tt.wantMatch {
				return
			}
			if got.Description != tt.wantDescription {
				t.Errorf("Classify() = %q, want %q", got.Description, tt.wantDescription)
			}
		})
	}
}

// Touching inclusive boundaries belong to both adjoining bands; Classify
// resolves the tie to the first match in ascending order.
func TestClassifyBoundaryTieBreak(t *testing.T) {
	tests := []struct {
		boundary        float64
		wantDescription string
	}{
		{20, "Diminished fine motor coordination"},
		{50, "Diminished fine motor coordination"},
		{100, "Impaired judgement; impaired coordination"},
		{150, "Difficulty with gait and balance"},
		{250, "Lethargy; difficulty sitting upright without assistance"},
		{300, "Stupor; responsive only to strong stimuli"},
		{400, "Coma in the non-habituated drinker"},
	}

	for _, tt := range tests {
		got, ok := Classify(mgdl(tt.boundary))
		if !ok {
			t.Errorf("Classify(%v) found no band", tt.boundary)
			continue
		}
		if got.Description != tt.wantDescription {
			t.Errorf("Classify(%v) = %q, want %q", tt.boundary, got.Description, tt.wantDescription)
		}
	}
}

func TestClinicalRangesShape(t *testing.T) {
	ranges := ClinicalRanges()
	if len(ranges) == 0 {
		t.Fatal("expected a non-empty table")
	}

	for i, r := range ranges {
		if r.Description == "" {
			t.Errorf("range %d has no description", i)
		}
		if r.Upper != nil && !r.Lower.LT(*r.Upper) {
			t.Errorf("range %d lower bound is not below its upper bound", i)
		}
		if i > 0 && !ranges[i-1].Lower.LT(r.Lower) {
			t.Errorf("range %d is not ordered by ascending lower bound", i)
		}
		if i > 0 {
			prev := ranges[i-1]
			if prev.Upper == nil {
				t.Errorf("range %d: only the last band may be open-ended", i-1)
				continue
			}
			// Adjacent bands share an inclusive boundary.
			if !prev.Upper.LTE(r.Lower) || !prev.Upper.GTE(r.Lower) {
				t.Errorf("range %d does not touch its predecessor", i)
			}
		}
	}

	last := ranges[len(ranges)-1]
	if last.Upper != nil {
		t.Error("expected the top band to be open-ended")
	}
	if got := last.Lower.In(units.MilligramsPerDeciliter); got != 400 {
		t.Errorf("top band starts at %v mg/dL, want 400", got)
	}
}

func TestClinicalRangesReturnsACopy(t *testing.T) {
	ranges := ClinicalRanges()
	ranges[0].Description = "mutated"
	if fresh := ClinicalRanges(); fresh[0].Description == "mutated" {
		t.Error("mutating the returned slice leaked into the table")
	}
}

func TestClassifyRejectsWrongDimension(t *testing.T) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatal("expected panic, got none")
		}
		if _, ok := recovered.(*units.DimensionError); !ok {
			t.Fatalf("expected *units.DimensionError, got %T: %v", recovered, recovered)
		}
	}()
	Classify(units.Of(14, units.Grams))
}
