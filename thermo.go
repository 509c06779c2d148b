package thermo

import (
	"math"
	"strconv"
)

// Epsilon is the absolute tolerance used for equality between temperature
// values. Two values closer together than Epsilon compare equal.
const Epsilon = 0.001

// AlmostEqual reports whether a and b are within [Epsilon] of each other.
// It is the single comparator behind every scale's equality.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// The scale markers. They carry no data; their only job is to keep
// quantities of different scales apart at compile time.
type (
	Celsius    struct{}
	Fahrenheit struct{}
	Kelvin     struct{}
)

// Scale is the closed set of temperature scales. It is a union of concrete
// types, so the set cannot be extended outside this package.
type Scale interface {
	Celsius | Fahrenheit | Kelvin
}

// A Quantity is an immutable temperature value tagged with its scale.
// Every operation on a Quantity is scoped to a single scale; applying one
// to quantities of two different scales does not compile.
type Quantity[S Scale] struct {
	amount float64
}

// New returns the Quantity of scale S holding the given value. Any finite
// value is accepted, including values below absolute zero.
func New[S Scale](v float64) Quantity[S] {
	return Quantity[S]{amount: v}
}

// C returns v as a Celsius quantity, e.g. C(36.5) for 36.5°C.
func C(v float64) Quantity[Celsius] { return New[Celsius](v) }

// F returns v as a Fahrenheit quantity, e.g. F(79.0) for 79°F.
func F(v float64) Quantity[Fahrenheit] { return New[Fahrenheit](v) }

// K returns v as a Kelvin quantity, e.g. K(100.0) for 100K.
func K(v float64) Quantity[Kelvin] { return New[Kelvin](v) }

// Float returns the raw value of q.
func (q Quantity[S]) Float() float64 { return q.amount }

// Equal reports whether q and p are within [Epsilon] of each other.
func (q Quantity[S]) Equal(p Quantity[S]) bool {
	return AlmostEqual(q.amount, p.amount)
}

// Less reports whether q is strictly below p. Ordering compares the raw
// values exactly; only [Quantity.Equal] is tolerant.
func (q Quantity[S]) Less(p Quantity[S]) bool { return q.amount < p.amount }

// LessEqual reports whether q is not above p.
func (q Quantity[S]) LessEqual(p Quantity[S]) bool { return !p.Less(q) }

// Greater reports whether q is strictly above p.
func (q Quantity[S]) Greater(p Quantity[S]) bool { return p.Less(q) }

// GreaterEqual reports whether q is not below p.
func (q Quantity[S]) GreaterEqual(p Quantity[S]) bool { return !q.Less(p) }

// Add returns the sum of q and p on their common scale.
func (q Quantity[S]) Add(p Quantity[S]) Quantity[S] {
	return Quantity[S]{amount: q.amount + p.amount}
}

// Sub returns the difference of q and p on their common scale.
func (q Quantity[S]) Sub(p Quantity[S]) Quantity[S] {
	return Quantity[S]{amount: q.amount - p.amount}
}

// String returns the value of q followed by its scale symbol, e.g. "36.5°C".
func (q Quantity[S]) String() string {
	return strconv.FormatFloat(q.amount, 'f', -1, 64) + symbol[S]()
}

func symbol[S Scale]() string {
	var s S
	switch any(s).(type) {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	default:
		return "K"
	}
}
