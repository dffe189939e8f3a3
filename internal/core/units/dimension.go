package units

import (
	"fmt"
	"strings"
)

// Dimension encodes a physical dimension as an exponent vector over the
// mass, volume, and time bases. Dimensions are comparable value types:
// two quantities are compatible exactly when their Dimension values are
// equal.
type Dimension struct {
	mass   int
	volume int
	time   int
}

// Predeclared dimensions.
var (
	// Dimensionless is the dimension of a bare ratio or fraction.
	Dimensionless = Dimension{}
	// Mass is the base mass dimension.
	Mass = Dimension{mass: 1}
	// Volume is the base volume dimension.
	Volume = Dimension{volume: 1}
	// Time is the base time dimension.
	Time = Dimension{time: 1}

	// VolumeDensity is mass per volume.
	VolumeDensity = Mass.Over(Volume)
	// EliminationRate is volume density per time.
	EliminationRate = VolumeDensity.Over(Time)
	// VolumeOfDistribution is volume per mass.
	VolumeOfDistribution = Volume.Over(Mass)
	// SerumConcentration is mass per volume, the same dimension as
	// VolumeDensity. The alias exists because the two play different
	// roles in pharmacokinetic formulas.
	SerumConcentration = VolumeDensity
)

// Over returns the dimension of a quantity of dimension d divided by a
// quantity of dimension other.
func (d Dimension) Over(other Dimension) Dimension {
	return Dimension{
		mass:   d.mass - other.mass,
		volume: d.volume - other.volume,
		time:   d.time - other.time,
	}
}

// Times returns the dimension of a quantity of dimension d multiplied by a
// quantity of dimension other.
func (d Dimension) Times(other Dimension) Dimension {
	return Dimension{
		mass:   d.mass + other.mass,
		volume: d.volume + other.volume,
		time:   d.time + other.time,
	}
}

// String renders the dimension as a product of base factors, e.g.
// "mass·volume^-1" for a volume density.
func (d Dimension) String() string {
	if d == (Dimension{}) {
		return "dimensionless"
	}

	var parts []string
	for _, base := range []struct {
		name string
		exp  int
	}{
		{"mass", d.mass},
		{"volume", d.volume},
		{"time", d.time},
	} {
		switch {
		case base.exp == 0:
		case base.exp == 1:
			parts = append(parts, base.name)
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", base.name, base.exp))
		}
	}
	return strings.Join(parts, "·")
}

// DimensionError reports an arithmetic or comparison attempted between
// incompatible dimensions. It is the panic value raised at the point of
// the illegal combination.
type DimensionError struct {
	Op    string
	Left  Dimension
	Right Dimension
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("units: %s of %s and %s: dimension mismatch", e.Op, e.Left, e.Right)
}
