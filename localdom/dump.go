package localdom

import (
	"fmt"
	"io"
)

// DumpTo writes R_i's full state-pair table to w, one line per (s,t) pair
// that isn't the diagonal, in the style of the original's dump() routines:
// plain text, not a logging framework.
func (f *LocalDominanceFunction[T]) DumpTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "R_%d (cancelled=%t):\n", f.tsIndex, f.cancelled); err != nil {
		return err
	}
	for s := 0; s < f.n; s++ {
		for t := 0; t < f.n; t++ {
			if s == t {
				continue
			}
			if _, err := fmt.Fprintf(w, "  R(%d,%d) = %s\n", s, t, f.r[s][t].String()); err != nil {
				return err
			}
		}
	}
	return nil
}
