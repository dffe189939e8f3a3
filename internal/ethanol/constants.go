package ethanol

import (
	"errors"
	"fmt"

	"github.com/louisbranch/widmark/internal/core/units"
)

// EthanolDensity is the density of pure ethanol at room temperature.
var EthanolDensity = units.Of(789, units.GramsPerLiter)

// Reference physiologic constants. Population means with sex-specific
// splits, after Widmark. Read-only after initialization.
var (
	vdPopulationMean = units.Of(0.60, units.LitersPerKilogram)
	vdMaleMean       = units.Of(0.68, units.LitersPerKilogram)
	vdFemaleMean     = units.Of(0.55, units.LitersPerKilogram)

	ratePopulationMean = units.Of(16, units.MilligramsPerDeciliterPerHour)
	rateMaleMean       = units.Of(15, units.MilligramsPerDeciliterPerHour)
	rateFemaleMean     = units.Of(18, units.MilligramsPerDeciliterPerHour)
)

// ErrUnknownProfile indicates a profile name that matches no preset.
var ErrUnknownProfile = errors.New("profile must be population, male, or female")

// Profile bundles the person-specific empirical constants of the Widmark
// model: the volume of distribution and the elimination rate. Callers
// pick a named preset or build their own; there is no implicit default.
type Profile struct {
	Vd              units.Quantity
	EliminationRate units.Quantity
}

// PopulationMean returns the population-mean profile.
func PopulationMean() Profile {
	return Profile{Vd: vdPopulationMean, EliminationRate: ratePopulationMean}
}

// MaleMean returns the male-mean profile.
func MaleMean() Profile {
	return Profile{Vd: vdMaleMean, EliminationRate: rateMaleMean}
}

// FemaleMean returns the female-mean profile.
func FemaleMean() Profile {
	return Profile{Vd: vdFemaleMean, EliminationRate: rateFemaleMean}
}

// ProfileByName resolves a preset by its lowercase name: "population",
// "male", or "female". Returns ErrUnknownProfile for anything else.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case "population":
		return PopulationMean(), nil
	case "male":
		return MaleMean(), nil
	case "female":
		return FemaleMean(), nil
	default:
		return Profile{}, fmt.Errorf("%q: %w", name, ErrUnknownProfile)
	}
}
