package quantity

import "fmt"

// Unit is a time unit expressed as a multiple of a gigayear.
type Unit float64

const (
	Gyr Unit = 1
	Myr Unit = 1e-3
	Kyr Unit = 1e-6
	Yr  Unit = 1e-9
)

func (u Unit) String() string {
	switch u {
	case Gyr:
		return "Gyr"
	case Myr:
		return "Myr"
	case Kyr:
		return "kyr"
	case Yr:
		return "yr"
	}
	return fmt.Sprintf("%g Gyr", float64(u))
}

// Quantity is a time span with an attached unit. Values constructed in
// different units compare equal when they represent the same span, so
// New(1000, Myr) and New(1, Gyr) are interchangeable everywhere.
//
// The zero Quantity doubles as an "absent" marker for optional timescales.
type Quantity struct {
	gyr float64
}

func New(value float64, unit Unit) Quantity {
	return Quantity{gyr: value * float64(unit)}
}

// In converts the quantity to a bare value in the given unit.
func (q Quantity) In(unit Unit) float64 { return q.gyr / float64(unit) }

// Gyrs is shorthand for In(Gyr), the base unit of the model formulas.
func (q Quantity) Gyrs() float64 { return q.gyr }

func (q Quantity) IsZero() bool { return q.gyr == 0 }

func (q Quantity) Add(o Quantity) Quantity { return Quantity{gyr: q.gyr + o.gyr} }
func (q Quantity) Sub(o Quantity) Quantity { return Quantity{gyr: q.gyr - o.gyr} }

// Scale multiplies the quantity by a dimensionless factor.
func (q Quantity) Scale(f float64) Quantity { return Quantity{gyr: q.gyr * f} }

// Div returns the dimensionless ratio of two quantities.
func (q Quantity) Div(o Quantity) float64 { return q.gyr / o.gyr }

func (q Quantity) String() string {
	return fmt.Sprintf("%g Gyr", q.gyr)
}
