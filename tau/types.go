package tau

import (
	"sort"

	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
)

// Labels is the ordered set of labels that currently act as tau in one LTS,
// each carrying an augmented epsilon-cost: an ordered list of labels that
// act as tau in i, plus an augmented cost per (i, label). Self-loop and
// noop-dominance-extension tau labels carry the label's own cost
// (cost.EpsilonIfZero); recursive-extension labels carry the invertibility
// cost summed by AddRecursiveTauLabels.
type Labels struct {
	order []lts.LabelID
	cost  map[lts.LabelID]cost.Epsilon
}

// NewLabels returns an empty tau-label set.
func NewLabels() *Labels {
	return &Labels{cost: make(map[lts.LabelID]cost.Epsilon)}
}

// Contains reports whether l is currently tau.
func (tl *Labels) Contains(l lts.LabelID) bool {
	_, ok := tl.cost[l]
	return ok
}

// Add records l as tau with augmented cost c, or tightens its cost if l is
// already tau and c is smaller (tau-cost is a lower bound the recursive
// extension may tighten as more labels become tau, never widen). Reports
// whether anything changed, so callers can detect fixpoint progress.
func (tl *Labels) Add(l lts.LabelID, c cost.Epsilon) bool {
	if existing, ok := tl.cost[l]; ok {
		if cost.Less(c, existing) {
			tl.cost[l] = c
			return true
		}
		return false
	}
	tl.order = append(tl.order, l)
	tl.cost[l] = c
	sort.Slice(tl.order, func(i, j int) bool { return tl.order[i] < tl.order[j] })
	return true
}

// Labels returns the tau labels in ascending id order.
func (tl *Labels) Labels() []lts.LabelID {
	out := make([]lts.LabelID, len(tl.order))
	copy(out, tl.order)
	return out
}

// Cost returns l's augmented tau-cost. Callers must check Contains first;
// Cost on a non-tau label returns the zero value.
func (tl *Labels) Cost(l lts.LabelID) cost.Epsilon { return tl.cost[l] }

// Len reports how many labels are currently tau.
func (tl *Labels) Len() int { return len(tl.order) }
