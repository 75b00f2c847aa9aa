package check

import "github.com/katalvlaran/ftsdom/lts"

// StrictlyDominatesInitialState reports whether state strictly dominates the
// task's initial state: state can substitute for the initial state and the
// initial state cannot substitute back (DominanceFunction::strictly_dominates
// specialized to the initial state).
func (c *DominanceCheck[T]) StrictlyDominatesInitialState(state lts.State) bool {
	c.requireInitialized()
	return c.dominatesAll(state, c.initialState, 0) && !c.dominatesAll(c.initialState, state, 0)
}

// ActionSelectionPruning checks whether one applicable operator already
// dominates every other: if some op's successor simulates the parent state
// back at no less than op's own cost, every other applicable operator is
// redundant and applicableOps is collapsed to just that one
// (DominanceCheck::action_selection_pruning). Reports whether it fired.
func (c *DominanceCheck[T]) ActionSelectionPruning(state lts.State, applicableOps *[]lts.OperatorID) bool {
	c.requireInitialized()
	search := c.task.SearchTask()
	copy(c.parent, state)

	for _, op := range *applicableOps {
		succ := search.GenerateSuccessor(state, op)
		label := search.Label(op)
		opCost := c.task.Labels().Cost(label)

		c.markRelevant(succ, c.parent)

		total, maySimulate := c.sumRelevant(func(i int) (T, bool) {
			if succ[i] == lts.DeadEnd {
				var z T
				return z.Zero(), false
			}
			return c.locals[i].QSimulates(succ[i], c.parent[i]), true
		})
		c.clearRelevant()

		if maySimulate && total.Cmp(costFromInt[T](opCost)) >= 0 {
			*applicableOps = []lts.OperatorID{op}
			return true
		}
	}
	return false
}

// PruneDominatedByParentOrInitialState removes every applicable operator
// whose successor is dominated by the parent state (state) or, optionally,
// by the task's initial state
// (DominanceCheck::prune_dominated_by_parent_or_initial_state). When
// parentIDsStored is false, state itself becomes the new parent baseline.
func (c *DominanceCheck[T]) PruneDominatedByParentOrInitialState(
	state lts.State,
	applicableOps *[]lts.OperatorID,
	parentIDsStored bool,
	compareAgainstParent bool,
	compareAgainstInitialState bool,
) {
	c.requireInitialized()
	if !parentIDsStored {
		copy(c.succ, state)
		copy(c.parent, c.succ)
	}

	var notSimulatedByInitial []int
	var initialAgainstParent T
	if compareAgainstInitialState {
		var z T
		initialAgainstParent = z.Zero()
		for i := 0; i < c.size(); i++ {
			val := c.locals[i].QSimulates(c.initialState[i], c.parent[i])
			c.valuesInitialAgainstParent[i] = val
			if val.IsBottom() {
				notSimulatedByInitial = append(notSimulatedByInitial, i)
			} else {
				initialAgainstParent = initialAgainstParent.Add(val)
			}
		}
	}

	search := c.task.SearchTask()
	kept := (*applicableOps)[:0]
	for _, op := range *applicableOps {
		label := search.Label(op)
		opCost := c.task.Labels().Cost(label)
		succ := search.GenerateSuccessor(state, op)

		c.markRelevant(succ, c.parent)

		proved := c.provedDeadEnd(succ)

		if !proved && compareAgainstParent {
			proved = c.provedPrunableAgainstParent(succ, opCost)
		}

		if !proved && compareAgainstInitialState && len(notSimulatedByInitial) <= len(c.relevantSimulations) {
			proved = c.provedPrunableAgainstInitial(succ, opCost, notSimulatedByInitial, initialAgainstParent)
		}

		c.clearRelevant()

		if !proved {
			kept = append(kept, op)
		}
	}
	*applicableOps = kept
}

func (c *DominanceCheck[T]) markRelevant(succ, parent lts.State) {
	for i := range succ {
		if succ[i] != parent[i] {
			c.relevantSimulations[i] = true
		}
	}
}

func (c *DominanceCheck[T]) clearRelevant() {
	for k := range c.relevantSimulations {
		delete(c.relevantSimulations, k)
	}
}

func (c *DominanceCheck[T]) provedDeadEnd(succ lts.State) bool {
	for sim := range c.relevantSimulations {
		if succ[sim] == lts.DeadEnd {
			return true
		}
	}
	return false
}

func (c *DominanceCheck[T]) provedPrunableAgainstParent(succ lts.State, opCost int) bool {
	total, maySimulate := c.sumRelevant(func(sim int) (T, bool) {
		val := c.locals[sim].QSimulates(c.parent[sim], succ[sim])
		return val, !val.IsBottom()
	})
	if !maySimulate {
		return false
	}
	return total.Cmp(total.Zero()) >= 0 || total.Add(costFromInt[T](opCost)).Cmp(total.Zero()) > 0
}

func (c *DominanceCheck[T]) provedPrunableAgainstInitial(succ lts.State, opCost int, notSimulatedByInitial []int, baseline T) bool {
	for _, sim := range notSimulatedByInitial {
		if !c.relevantSimulations[sim] {
			return false
		}
	}

	total := baseline
	for sim := range c.relevantSimulations {
		val := c.locals[sim].QSimulates(c.initialState[sim], succ[sim])
		if val.IsBottom() {
			return false
		}
		total = total.Add(val)
		if !c.valuesInitialAgainstParent[sim].IsBottom() {
			total = total.Add(c.valuesInitialAgainstParent[sim].Negate())
		}
	}
	return total.Cmp(total.Zero()) >= 0 || total.Add(costFromInt[T](opCost)).Cmp(total.Zero()) > 0
}

// sumRelevant sums f(i) over every index currently marked relevant, stopping
// early (ok=false) the first time f reports a value that cannot be used.
func (c *DominanceCheck[T]) sumRelevant(f func(i int) (T, bool)) (total T, ok bool) {
	var z T
	total = z.Zero()
	for sim := range c.relevantSimulations {
		val, usable := f(sim)
		if !usable {
			return total, false
		}
		total = total.Add(val)
	}
	return total, true
}
