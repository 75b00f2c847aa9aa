package cost

import (
	"fmt"
	"math"
)

// Epsilon pairs an integer base cost with a signed count of infinitesimals.
// Ordering is lexicographic on (Base, Eps): a value with a smaller Base is
// always less, regardless of Eps; ties on Base are broken by Eps. This lets
// zero-cost actions ("Base == 0") still carry a strict, arbitrarily-small
// cost via a positive Eps, so they compare as strictly worse than truly free
// (Base: 0, Eps: 0) moves — the behavior wanted when treating a zero-cost
// action as cost ε>0.
type Epsilon struct {
	Base int
	Eps  int
}

// epsilonBottom and epsilonPoison reserve a dedicated (Base, Eps) pair each;
// both use math.MinInt (cost.Int's Bottom) as Base and are distinguished
// by Eps.
var (
	epsilonBottom = Epsilon{Base: math.MinInt, Eps: 0}
	epsilonPoison = Epsilon{Base: math.MinInt, Eps: 1}
)

// Zero returns the additive identity (Base: 0, Eps: 0).
func (Epsilon) Zero() Epsilon { return Epsilon{} }

// Bottom returns the −∞ sentinel.
func (Epsilon) Bottom() Epsilon { return epsilonBottom }

// Poison returns the reserved poison sentinel.
func (Epsilon) Poison() Epsilon { return epsilonPoison }

// Add returns the componentwise sum, propagating Bottom.
func (a Epsilon) Add(b Epsilon) Epsilon {
	if a.IsBottom() || b.IsBottom() {
		return epsilonBottom
	}
	return Epsilon{Base: a.Base + b.Base, Eps: a.Eps + b.Eps}
}

// Max returns the greater of a and b under Cmp.
func (a Epsilon) Max(b Epsilon) Epsilon {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Min returns the lesser of a and b under Cmp.
func (a Epsilon) Min(b Epsilon) Epsilon {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Cmp compares a and b lexicographically on (Base, Eps), treating Bottom as
// less than every finite value.
func (a Epsilon) Cmp(b Epsilon) int {
	if a == b {
		return 0
	}
	if a.IsBottom() {
		return -1
	}
	if b.IsBottom() {
		return 1
	}
	if a.Base != b.Base {
		if a.Base < b.Base {
			return -1
		}
		return 1
	}
	if a.Eps < b.Eps {
		return -1
	}
	return 1
}

// Negate returns the additive inverse, or Bottom if a is Bottom.
func (a Epsilon) Negate() Epsilon {
	if a.IsBottom() {
		return epsilonBottom
	}
	return Epsilon{Base: -a.Base, Eps: -a.Eps}
}

// IsBottom reports whether a is the −∞ sentinel.
func (a Epsilon) IsBottom() bool { return a == epsilonBottom }

// IsPoison reports whether a is the reserved poison sentinel.
func (a Epsilon) IsPoison() bool { return a == epsilonPoison }

// Truncate collapses a to Bottom if it is finite and its Base is below
// -limit. Eps never participates in truncation: it is a tie-breaker, never
// large enough to move a value across the truncation threshold on its own.
func (a Epsilon) Truncate(limit int) Epsilon {
	if a.IsBottom() {
		return a
	}
	if a.Base < -limit {
		return epsilonBottom
	}
	return a
}

// String renders a for debug dumps, e.g. "3+2e", "0-1e", "-inf".
func (a Epsilon) String() string {
	switch {
	case a.IsBottom():
		return "-inf"
	case a.IsPoison():
		return "poison"
	case a.Eps == 0:
		return fmt.Sprintf("%d", a.Base)
	default:
		return fmt.Sprintf("%d%+de", a.Base, a.Eps)
	}
}

// EpsilonIfZero converts a plain non-negative integer label cost into an
// Epsilon: a cost of exactly 0 becomes a strict infinitesimal (Base: 0,
// Eps: 1) rather than true zero, so tau-cost accumulation always
// treats a zero-cost action as strictly worse than doing nothing.
func EpsilonIfZero(c int) Epsilon {
	if c == 0 {
		return Epsilon{Base: 0, Eps: 1}
	}
	return Epsilon{Base: c}
}

var _ Value[Epsilon] = Epsilon{}
