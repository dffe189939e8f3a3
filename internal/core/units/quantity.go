package units

import "fmt"

// Quantity is an immutable scalar tagged with a physical dimension. The
// zero value is a dimensionless zero. Every operation returns a new
// Quantity; operands are never mutated.
type Quantity struct {
	magnitude float64 // expressed in base units (grams, liters, hours)
	dim       Dimension
}

// Of constructs a quantity of value expressed in unit. The magnitude is
// normalized to base units, so Of(355, Milli(Liters)) equals
// Of(0.355, Liters).
func Of(value float64, unit Unit) Quantity {
	return Quantity{magnitude: value * unit.factor, dim: unit.dim}
}

// Scalar wraps a dimensionless value, usable as a multiplicative factor
// such as a volume fraction.
func Scalar(value float64) Quantity {
	return Quantity{magnitude: value}
}

// Dimension returns the quantity's dimension.
func (q Quantity) Dimension() Dimension { return q.dim }

// Add returns q + other. Panics with *DimensionError unless both
// quantities share a dimension.
func (q Quantity) Add(other Quantity) Quantity {
	q.mustMatch("addition", other)
	return Quantity{magnitude: q.magnitude + other.magnitude, dim: q.dim}
}

// Sub returns q - other. Panics with *DimensionError unless both
// quantities share a dimension.
func (q Quantity) Sub(other Quantity) Quantity {
	q.mustMatch("subtraction", other)
	return Quantity{magnitude: q.magnitude - other.magnitude, dim: q.dim}
}

// Mul returns q × other with the combined dimension. Multiplying by a
// dimensionless quantity preserves q's dimension.
func (q Quantity) Mul(other Quantity) Quantity {
	return Quantity{
		magnitude: q.magnitude * other.magnitude,
		dim:       q.dim.Times(other.dim),
	}
}

// Div returns q ÷ other with the combined dimension. Dividing quantities
// of equal dimension yields a dimensionless ratio.
func (q Quantity) Div(other Quantity) Quantity {
	return Quantity{
		magnitude: q.magnitude / other.magnitude,
		dim:       q.dim.Over(other.dim),
	}
}

// LT reports q < other. Panics with *DimensionError unless both
// quantities share a dimension.
func (q Quantity) LT(other Quantity) bool {
	q.mustMatch("comparison", other)
	return q.magnitude < other.magnitude
}

// LTE reports q <= other. Panics with *DimensionError unless both
// quantities share a dimension.
func (q Quantity) LTE(other Quantity) bool {
	q.mustMatch("comparison", other)
	return q.magnitude <= other.magnitude
}

// GT reports q > other. Panics with *DimensionError unless both
// quantities share a dimension.
func (q Quantity) GT(other Quantity) bool {
	q.mustMatch("comparison", other)
	return q.magnitude > other.magnitude
}

// GTE reports q >= other. Panics with *DimensionError unless both
// quantities share a dimension.
func (q Quantity) GTE(other Quantity) bool {
	q.mustMatch("comparison", other)
	return q.magnitude >= other.magnitude
}

// In returns the magnitude expressed in unit. Panics with
// *DimensionError unless the quantity has the unit's dimension.
func (q Quantity) In(unit Unit) float64 {
	if q.dim != unit.dim {
		panic(&DimensionError{Op: "conversion", Left: q.dim, Right: unit.dim})
	}
	return q.magnitude / unit.factor
}

// Float returns the magnitude of a dimensionless quantity. Panics with
// *DimensionError for any other dimension.
func (q Quantity) Float() float64 {
	if q.dim != Dimensionless {
		panic(&DimensionError{Op: "conversion", Left: q.dim, Right: Dimensionless})
	}
	return q.magnitude
}

// String renders the quantity in base units, e.g. "0.333 mass·volume^-1".
func (q Quantity) String() string {
	if q.dim == Dimensionless {
		return fmt.Sprintf("%g", q.magnitude)
	}
	return fmt.Sprintf("%g %s", q.magnitude, q.dim)
}

func (q Quantity) mustMatch(op string, other Quantity) {
	if q.dim != other.dim {
		panic(&DimensionError{Op: op, Left: q.dim, Right: other.dim})
	}
}
