package cost

// Value is the numeric-lattice contract shared by every cost flavor this
// module supports. T is the concrete flavor itself (Int or Epsilon); methods
// that "produce a fresh sentinel" (Zero, Bottom, Poison) ignore the receiver's
// own value and exist purely so generic code can ask "what is Bottom for
// whatever T I was instantiated with" via `var z T; z.Bottom()`.
//
// Invariants implementations must uphold:
//
//   - Zero() is the identity element for Add.
//   - Bottom() compares less than every non-bottom value via Cmp, and
//     Bottom().Add(anything) == Bottom() (−∞ arithmetic never escapes −∞).
//   - Poison() is distinct from Bottom() and from every value a correct
//     computation can produce; IsPoison reports whether a value equals it.
type Value[T any] interface {
	// Zero returns the additive identity (finite, not bottom, not poison).
	Zero() T
	// Bottom returns the lattice's −∞ sentinel.
	Bottom() T
	// Poison returns a sentinel strictly above Bottom that must never be
	// observed as a legitimate relation value; used to catch logic errors.
	Poison() T

	// Add returns the componentwise sum, propagating Bottom: if either
	// operand is Bottom, the result is Bottom.
	Add(other T) T
	// Max returns the greater of the two values under Cmp (Bottom is the
	// least element).
	Max(other T) T
	// Min returns the lesser of the two values under Cmp.
	Min(other T) T
	// Cmp returns -1, 0, or 1 as the receiver is less than, equal to, or
	// greater than other. Bottom compares less than every non-bottom value
	// and equal to itself.
	Cmp(other T) int
	// Negate returns the additive inverse; Bottom negates to Bottom.
	Negate() T

	// IsBottom reports whether the value is the −∞ sentinel.
	IsBottom() bool
	// IsPoison reports whether the value is the reserved poison sentinel.
	IsPoison() bool

	// Truncate collapses the value to Bottom if it is finite and strictly
	// below -limit, the mechanism that guarantees the refinement fixpoint
	// terminates. limit must be >= 0.
	Truncate(limit int) T

	// String renders the value for debug dumps.
	String() string
}

// Less reports whether a is strictly less than b under a's Cmp. Provided as a
// free function so call sites read naturally: cost.Less(a, b).
func Less[T Value[T]](a, b T) bool { return a.Cmp(b) < 0 }

// GE reports whether a is greater than or equal to b.
func GE[T Value[T]](a, b T) bool { return a.Cmp(b) >= 0 }

// GT reports whether a is strictly greater than b.
func GT[T Value[T]](a, b T) bool { return a.Cmp(b) > 0 }
