package cost

import (
	"math"
	"strconv"
)

// bottomInt and poisonInt mirror the
// std::numeric_limits<int>::lowest() / lowest()+1 convention for the
// lattice's bottom and poison sentinels.
const (
	bottomInt = math.MinInt
	poisonInt = math.MinInt + 1
)

// Int is the plain-integer cost flavor: used for tasks whose operators all
// have strictly positive cost, where no epsilon bookkeeping is needed.
type Int int

// Zero returns 0.
func (Int) Zero() Int { return 0 }

// Bottom returns the −∞ sentinel.
func (Int) Bottom() Int { return bottomInt }

// Poison returns the reserved poison sentinel, one above Bottom.
func (Int) Poison() Int { return poisonInt }

// Add returns a+b, or Bottom if either operand is Bottom.
func (a Int) Add(b Int) Int {
	if a.IsBottom() || b.IsBottom() {
		return bottomInt
	}
	return a + b
}

// Max returns the greater of a and b.
func (a Int) Max(b Int) Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Min returns the lesser of a and b.
func (a Int) Min(b Int) Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Cmp compares a and b, treating Bottom as less than every finite value.
func (a Int) Cmp(b Int) int {
	switch {
	case a == b:
		return 0
	case a.IsBottom():
		return -1
	case b.IsBottom():
		return 1
	case a < b:
		return -1
	default:
		return 1
	}
}

// Negate returns -a, or Bottom if a is Bottom.
func (a Int) Negate() Int {
	if a.IsBottom() {
		return bottomInt
	}
	return -a
}

// IsBottom reports whether a is the −∞ sentinel.
func (a Int) IsBottom() bool { return a == bottomInt }

// IsPoison reports whether a is the reserved poison sentinel.
func (a Int) IsPoison() bool { return a == poisonInt }

// Truncate collapses a to Bottom if it is finite and below -limit.
func (a Int) Truncate(limit int) Int {
	if a.IsBottom() {
		return a
	}
	if int(a) < -limit {
		return bottomInt
	}
	return a
}

// String renders a, with the sentinels spelled out for readability in dumps.
func (a Int) String() string {
	switch {
	case a.IsBottom():
		return "-inf"
	case a.IsPoison():
		return "poison"
	default:
		return strconv.Itoa(int(a))
	}
}

var _ Value[Int] = Int(0)
