package labeldom

import "github.com/katalvlaran/ftsdom/lts"

// LocalRelation is the one query labeldom's refinement rule needs from a
// per-LTS local dominance relation: the `max over ... R_i(t',t)` term.
// localdom.LocalDominanceFunction[T] satisfies this structurally.
type LocalRelation[T any] interface {
	QSimulates(s, t lts.StateID) T
}

// SummaryKind classifies may_dominate(l1,l2) over the LTSs in which both
// labels have a group: l1 dominates l2 (L_i >= 0) in every such LTS, in
// none, or in some but not all of them.
type SummaryKind int

const (
	SummaryAll SummaryKind = iota
	SummaryNone
	SummarySpecificTS
)

// Summary is the derived may_dominate(l1,l2) verdict.
type Summary struct {
	Kind SummaryKind
	TS   int // highest-indexed LTS where l1 dominates l2; meaningful only when Kind == SummarySpecificTS
}

type groupPair struct {
	g1, g2 lts.LabelGroupID
}

type labelPair struct {
	l1, l2 lts.LabelID
}
