package units

// Unit binds a scale factor to a dimension. The factor expresses the unit
// in terms of the package's base units (grams, liters, hours), so a
// quantity constructed through any unit carries a magnitude normalized to
// that base.
type Unit struct {
	symbol string
	factor float64
	dim    Dimension
}

// Base units.
var (
	// Grams is the base mass unit.
	Grams = Unit{symbol: "g", factor: 1, dim: Mass}
	// Liters is the base volume unit.
	Liters = Unit{symbol: "L", factor: 1, dim: Volume}
	// Hours is the base time unit.
	Hours = Unit{symbol: "h", factor: 1, dim: Time}
	// Kilograms is a convenience mass unit for body weight.
	Kilograms = Unit{symbol: "kg", factor: 1000, dim: Mass}
)

// Composed units used by the pharmacokinetic model and its hosts.
var (
	GramsPerLiter                 = Grams.Per(Liters)
	GramsPerDeciliter             = Grams.Per(Deci(Liters))
	MilligramsPerDeciliter        = Milli(Grams).Per(Deci(Liters))
	LitersPerKilogram             = Liters.Per(Kilograms)
	GramsPerDeciliterPerHour      = GramsPerDeciliter.Per(Hours)
	MilligramsPerDeciliterPerHour = MilligramsPerDeciliter.Per(Hours)
)

// Milli scales a unit by 10^-3, preserving its dimension.
func Milli(u Unit) Unit { return u.scaled("m", 1e-3) }

// Centi scales a unit by 10^-2, preserving its dimension.
func Centi(u Unit) Unit { return u.scaled("c", 1e-2) }

// Deci scales a unit by 10^-1, preserving its dimension.
func Deci(u Unit) Unit { return u.scaled("d", 1e-1) }

// Deca scales a unit by 10, preserving its dimension.
func Deca(u Unit) Unit { return u.scaled("da", 10) }

// Per returns the quotient unit, e.g. Milli(Grams).Per(Deci(Liters)) is
// mg/dL with dimension VolumeDensity.
func (u Unit) Per(other Unit) Unit {
	return Unit{
		symbol: u.symbol + "/" + other.symbol,
		factor: u.factor / other.factor,
		dim:    u.dim.Over(other.dim),
	}
}

// Symbol returns the unit's display symbol, e.g. "mg/dL".
func (u Unit) Symbol() string { return u.symbol }

// Dimension returns the unit's dimension.
func (u Unit) Dimension() Dimension { return u.dim }

func (u Unit) scaled(prefix string, factor float64) Unit {
	return Unit{
		symbol: prefix + u.symbol,
		factor: u.factor * factor,
		dim:    u.dim,
	}
}
