package searchtask

import (
	"github.com/katalvlaran/ftsdom/lts"
	"github.com/katalvlaran/ftsdom/sastask"
)

// Build turns sas into the atomic-projection FTS (package doc): one
// TransitionSystem per variable, one label group per operator. A group's
// transitions in variable i's LTS are derived from the operator's
// precondition/effect on that variable: an unconditional move from the
// precondition's value (or every value, when the operator has no
// precondition on i) to the effect's value; and, when the operator
// doesn't mention i at all, a self-loop at every state — which Finalize
// then correctly reports as an irrelevant label group there.
func Build(sas *sastask.Task) (*Task, error) {
	for _, op := range sas.Operators {
		for _, eff := range op.Effects {
			if len(eff.Conditions) > 0 {
				return nil, ErrConditionalEffect
			}
		}
	}

	costs := make([]int, len(sas.Operators))
	for i, op := range sas.Operators {
		costs[i] = op.Cost
	}
	labels, err := lts.NewLabels(costs)
	if err != nil {
		return nil, err
	}

	tss := make([]*lts.TransitionSystem, len(sas.Variables))
	for i, v := range sas.Variables {
		ts, err := lts.NewTransitionSystem(v.Domain)
		if err != nil {
			return nil, err
		}
		if err := ts.SetInitial(lts.StateID(sas.Initial[i])); err != nil {
			return nil, err
		}
		for _, g := range sas.Goal {
			if g.Var == i {
				if err := ts.SetGoal(lts.StateID(g.Value)); err != nil {
					return nil, err
				}
			}
		}

		for opIdx, op := range sas.Operators {
			group := lts.LabelGroupID(opIdx)
			ts.AddLabelToGroup(group, lts.LabelID(opIdx))

			effVal, hasEff := findEffect(op.Effects, i)
			preVal, hasPre := findPrecondition(op.Preconditions, i)

			if !hasEff {
				for s := 0; s < v.Domain; s++ {
					if err := ts.AddTransition(lts.StateID(s), group, lts.StateID(s)); err != nil {
						return nil, err
					}
				}
				continue
			}

			if hasPre {
				if err := ts.AddTransition(lts.StateID(preVal), group, lts.StateID(effVal)); err != nil {
					return nil, err
				}
				continue
			}
			for s := 0; s < v.Domain; s++ {
				if err := ts.AddTransition(lts.StateID(s), group, lts.StateID(effVal)); err != nil {
					return nil, err
				}
			}
		}

		if err := ts.Finalize(); err != nil {
			return nil, err
		}
		tss[i] = ts
	}

	return &Task{sas: sas, tss: tss, labels: labels}, nil
}

func findPrecondition(preconditions []sastask.FactPair, variable int) (value int, ok bool) {
	for _, p := range preconditions {
		if p.Var == variable {
			return p.Value, true
		}
	}
	return 0, false
}

func findEffect(effects []sastask.Effect, variable int) (value int, ok bool) {
	for _, e := range effects {
		if e.Var == variable {
			return e.Value, true
		}
	}
	return 0, false
}
