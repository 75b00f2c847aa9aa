package searchtask

import (
	"github.com/katalvlaran/ftsdom/lts"
	"github.com/katalvlaran/ftsdom/sastask"
)

// Task is the atomic-projection FTS built from a parsed sastask.Task: one
// TransitionSystem per SAS+ variable, and the same value doubling as both
// the lts.SearchTask and lts.FTSTask collaborator.
type Task struct {
	sas    *sastask.Task
	tss    []*lts.TransitionSystem
	labels *lts.Labels
}

// Size returns the number of LTSs, one per SAS+ variable.
func (t *Task) Size() int { return len(t.tss) }

// TS returns the TransitionSystem for SAS+ variable i.
func (t *Task) TS(i int) *lts.TransitionSystem { return t.tss[i] }

// Labels returns the shared label alphabet (one label per SAS+ operator).
func (t *Task) Labels() *lts.Labels { return t.labels }

// SearchTask returns the collaborator that enumerates/applies operators;
// Task implements it directly, since applying an operator to an atomic
// full-variable state needs no extra bookkeeping beyond the operator list
// already on hand.
func (t *Task) SearchTask() lts.SearchTask { return t }

// GenerateApplicableOps returns every operator whose preconditions all
// hold in state (state[v] is the current value of SAS+ variable v, since
// the atomic projection's local state for variable v's LTS is exactly
// that value).
func (t *Task) GenerateApplicableOps(state lts.State) []lts.OperatorID {
	var ops []lts.OperatorID
	for i, op := range t.sas.Operators {
		applicable := true
		for _, pre := range op.Preconditions {
			if state[pre.Var] != lts.StateID(pre.Value) {
				applicable = false
				break
			}
		}
		if applicable {
			ops = append(ops, lts.OperatorID(i))
		}
	}
	return ops
}

// GenerateSuccessor applies op's effects to state, returning a new state
// with every affected variable updated. Callers must only pass an op
// GenerateApplicableOps already reported applicable.
func (t *Task) GenerateSuccessor(state lts.State, op lts.OperatorID) lts.State {
	succ := make(lts.State, len(state))
	copy(succ, state)
	for _, eff := range t.sas.Operators[op].Effects {
		succ[eff.Var] = lts.StateID(eff.Value)
	}
	return succ
}

// Label maps operator op to its label, a one-to-one mapping since no
// merge-and-shrink label grouping has been performed on this atomic
// projection.
func (t *Task) Label(op lts.OperatorID) lts.LabelID { return lts.LabelID(op) }
