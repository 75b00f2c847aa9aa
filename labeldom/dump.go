package labeldom

import (
	"fmt"
	"io"
)

// DumpTo writes every per-LTS L_i(g1,g2) entry plus the dominated-by-noop
// and dominates-noop companion values to w, in the same plain-text style
// as the original's dump() routines.
func (f *LabelDominanceFunction[T]) DumpTo(w io.Writer) error {
	for i := 0; i < f.task.Size(); i++ {
		if _, err := fmt.Fprintf(w, "L_%d:\n", i); err != nil {
			return err
		}
		for pair, v := range f.l[i] {
			if _, err := fmt.Fprintf(w, "  L(%d,%d) = %s\n", pair.g1, pair.g2, v.String()); err != nil {
				return err
			}
		}
		for g, v := range f.dominatedByNoop[i] {
			if _, err := fmt.Fprintf(w, "  dominated_by_noop(%d) = %s\n", g, v.String()); err != nil {
				return err
			}
		}
		for g, v := range f.dominatesNoop[i] {
			if _, err := fmt.Fprintf(w, "  dominates_noop(%d) = %s\n", g, v.String()); err != nil {
				return err
			}
		}
	}
	return nil
}
