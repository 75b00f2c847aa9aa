package builder

import (
	"fmt"
	"io"
)

// DumpTo writes a human-readable trace of the Artifact to w: the build
// Stats, followed by each LTS's local dominance table and the cross-LTS
// label relation. This is the writer-based counterpart to the original's
// `dump bool` option and cout-based dump()/statistics() calls — Go-side,
// it is an explicit method callers opt into rather than a global flag.
func (a *Artifact[T]) DumpTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "dominance artifact: %d LTS(s), %d outer iterations, %d tau restarts\n",
		len(a.Locals), a.Stats.OuterIterations, a.Stats.TauRestarts); err != nil {
		return err
	}
	for i, local := range a.Locals {
		cancelled := false
		if i < len(a.Stats.CancelledTS) {
			cancelled = a.Stats.CancelledTS[i]
		}
		passes := 0
		if i < len(a.Stats.InnerIterationsPerTS) {
			passes = a.Stats.InnerIterationsPerTS[i]
		}
		if _, err := fmt.Fprintf(w, "--- LTS %d (cancelled=%t, passes=%d) ---\n", i, cancelled, passes); err != nil {
			return err
		}
		if err := local.DumpTo(w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "--- label relation ---"); err != nil {
		return err
	}
	return a.Label.DumpTo(w)
}
