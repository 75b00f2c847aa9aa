package lts

import "sort"

// StateID indexes a local state within one TransitionSystem.
type StateID int

// DeadEnd is the local-state value a SearchTask's GenerateSuccessor returns
// for an LTS whose projection of the successor has no valid state: the
// dominance-pruning queries in package check treat it as an immediate
// proof of prunability.
const DeadEnd StateID = -1

// LabelID indexes a label in the shared Labels alphabet.
type LabelID int

// LabelGroupID indexes a label group within one TransitionSystem. Group ids
// are local to the TransitionSystem that defines them; the same LabelGroupID
// value in two different LTSs refers to two unrelated groups.
type LabelGroupID int

// OperatorID indexes an operator in the SearchTask's operator list.
type OperatorID int

// Labels is the label alphabet shared by every LTS in an FTS: a finite set
// of labels, each with a non-negative integer cost.
type Labels struct {
	costs []int
}

// NewLabels builds a Labels alphabet from a slice of per-label costs indexed
// by LabelID. Every cost must be non-negative.
func NewLabels(costs []int) (*Labels, error) {
	for _, c := range costs {
		if c < 0 {
			return nil, ErrNegativeCost
		}
	}
	cp := make([]int, len(costs))
	copy(cp, costs)
	return &Labels{costs: cp}, nil
}

// Size returns the number of labels in the alphabet.
func (l *Labels) Size() int { return len(l.costs) }

// Cost returns the integer cost of label id.
func (l *Labels) Cost(id LabelID) int { return l.costs[id] }

// Transition is one src--group-->tgt edge in a TransitionSystem.
type Transition struct {
	Src   StateID
	Group LabelGroupID
	Tgt   StateID
}

// LabelGroup is an equivalence class of labels that behave identically in
// one TransitionSystem: same outgoing transitions from every state.
type LabelGroup struct {
	ID     LabelGroupID
	Labels []LabelID
}

// TransitionSystem is one LTS: states (one initial, a subset goal), its
// transitions grouped by LabelGroup, and the derived irrelevant-label set.
// Built via NewTransitionSystem + AddTransition + Finalize, the same
// incremental construction idiom lvlath/core.Graph uses
// (AddVertex/AddEdge) rather than functional options, since an LTS's
// shape (states, transitions) is structural data, not scalar configuration.
type TransitionSystem struct {
	numStates int
	initial   StateID
	goal      []bool

	transitions []Transition
	groups      map[LabelGroupID]*LabelGroup

	// labelToGroup maps a label to the group it belongs to in this LTS, so
	// callers can ask "which group does label l fall into here" without
	// scanning every group (tau's label_may_be_tau_in needs this per LTS).
	labelToGroup map[LabelID]LabelGroupID

	// byGroup indexes transitions by group for fast per-group scans in
	// localdom/labeldom's update rules.
	byGroup map[LabelGroupID][]Transition

	// irrelevant[g] is true once Finalize has determined group g is a
	// self-loop at every state.
	irrelevant map[LabelGroupID]bool

	finalized bool
}

// NewTransitionSystem allocates an LTS with numStates states, none yet
// marked initial or goal.
func NewTransitionSystem(numStates int) (*TransitionSystem, error) {
	if numStates <= 0 {
		return nil, ErrNoStates
	}
	return &TransitionSystem{
		numStates: numStates,
		initial:      -1,
		goal:         make([]bool, numStates),
		groups:       make(map[LabelGroupID]*LabelGroup),
		labelToGroup: make(map[LabelID]LabelGroupID),
		byGroup:      make(map[LabelGroupID][]Transition),
	}, nil
}

// NumStates returns the number of local states.
func (ts *TransitionSystem) NumStates() int { return ts.numStates }

// SetInitial marks s as the initial state.
func (ts *TransitionSystem) SetInitial(s StateID) error {
	if !ts.validState(s) {
		return ErrInvalidState
	}
	ts.initial = s
	return nil
}

// Initial returns the initial state.
func (ts *TransitionSystem) Initial() StateID { return ts.initial }

// SetGoal marks s as a goal state.
func (ts *TransitionSystem) SetGoal(s StateID) error {
	if !ts.validState(s) {
		return ErrInvalidState
	}
	ts.goal[s] = true
	return nil
}

// IsGoal reports whether s is a goal state.
func (ts *TransitionSystem) IsGoal(s StateID) bool { return ts.goal[s] }

// AddLabelToGroup assigns label to group, creating the group on first use.
// Group membership (which labels move identically in this LTS) is data the
// merge-and-shrink collaborator computes; this core only consumes it.
func (ts *TransitionSystem) AddLabelToGroup(group LabelGroupID, label LabelID) {
	g, ok := ts.groups[group]
	if !ok {
		g = &LabelGroup{ID: group}
		ts.groups[group] = g
	}
	g.Labels = append(g.Labels, label)
	ts.labelToGroup[label] = group
}

// GroupForLabel returns the group label belongs to in this LTS. ok is false
// if label was never assigned a group here — meaning it never changes this
// LTS's local state, so it behaves as if it were a self-loop at every state.
func (ts *TransitionSystem) GroupForLabel(label LabelID) (group LabelGroupID, ok bool) {
	group, ok = ts.labelToGroup[label]
	return group, ok
}

// AddTransition records a src--group-->tgt edge.
func (ts *TransitionSystem) AddTransition(src StateID, group LabelGroupID, tgt StateID) error {
	if !ts.validState(src) || !ts.validState(tgt) {
		return ErrInvalidState
	}
	for _, t := range ts.byGroup[group] {
		if t.Src == src && t.Tgt == tgt {
			return ErrDuplicateTransition
		}
	}
	t := Transition{Src: src, Group: group, Tgt: tgt}
	ts.transitions = append(ts.transitions, t)
	ts.byGroup[group] = append(ts.byGroup[group], t)
	ts.finalized = false
	return nil
}

// Finalize computes the derived irrelevant-label-group set: a group is
// irrelevant iff every state has a self-loop transition in that group and
// no other transition in that group exists. Must be called, and re-called after any
// offline pruning mutation, before queries that depend on irrelevance.
func (ts *TransitionSystem) Finalize() error {
	if ts.initial < 0 {
		return ErrNoInitialState
	}
	ts.irrelevant = make(map[LabelGroupID]bool, len(ts.groups))
	for gid, trans := range ts.byGroup {
		selfLoop := make([]bool, ts.numStates)
		onlySelfLoops := true
		for _, t := range trans {
			if t.Src == t.Tgt {
				selfLoop[t.Src] = true
			} else {
				onlySelfLoops = false
			}
		}
		if !onlySelfLoops {
			ts.irrelevant[gid] = false
			continue
		}
		every := true
		for s := 0; s < ts.numStates; s++ {
			if !selfLoop[s] {
				every = false
				break
			}
		}
		ts.irrelevant[gid] = every
	}
	ts.finalized = true
	return nil
}

// Transitions returns all transitions, grouped-order unspecified but stable
// across calls.
func (ts *TransitionSystem) Transitions() []Transition { return ts.transitions }

// OutgoingFrom returns every transition whose source is s, across all
// label groups. Used by localdom's relaxation, which for a pair (s,t)
// scans t's outgoing transitions looking for the best response from s.
func (ts *TransitionSystem) OutgoingFrom(s StateID) []Transition {
	out := make([]Transition, 0, 4)
	for _, t := range ts.transitions {
		if t.Src == s {
			out = append(out, t)
		}
	}
	return out
}

// TransitionsByGroup returns the transitions belonging to group, or nil if
// the group has none.
func (ts *TransitionSystem) TransitionsByGroup(group LabelGroupID) []Transition {
	return ts.byGroup[group]
}

// Groups returns every label group's id, sorted ascending for deterministic
// iteration: any code that ranges over groups gets reproducible results.
func (ts *TransitionSystem) Groups() []LabelGroupID {
	ids := make([]LabelGroupID, 0, len(ts.groups))
	for id := range ts.groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GroupOf returns the LabelGroup for id.
func (ts *TransitionSystem) GroupOf(id LabelGroupID) *LabelGroup { return ts.groups[id] }

// IsIrrelevant reports whether group is irrelevant in this LTS: a self-loop
// at every state and nothing else. Finalize must have been called.
func (ts *TransitionSystem) IsIrrelevant(group LabelGroupID) bool {
	return ts.irrelevant[group]
}

// RemoveTransition deletes a single transition, used by ftsprune. Returns
// false if no matching transition existed. Callers must re-run Finalize
// afterward.
func (ts *TransitionSystem) RemoveTransition(src StateID, group LabelGroupID, tgt StateID) bool {
	removed := false
	filtered := ts.transitions[:0]
	for _, t := range ts.transitions {
		if t.Src == src && t.Group == group && t.Tgt == tgt {
			removed = true
			continue
		}
		filtered = append(filtered, t)
	}
	ts.transitions = filtered

	byGroup := ts.byGroup[group][:0]
	for _, t := range ts.byGroup[group] {
		if t.Src == src && t.Tgt == tgt {
			continue
		}
		byGroup = append(byGroup, t)
	}
	ts.byGroup[group] = byGroup
	return removed
}

// RemoveGroup deletes a label group and all its transitions entirely.
// ftsprune does not call it; it removes individual transitions only.
func (ts *TransitionSystem) RemoveGroup(group LabelGroupID) {
	if g, ok := ts.groups[group]; ok {
		for _, l := range g.Labels {
			delete(ts.labelToGroup, l)
		}
	}
	delete(ts.groups, group)
	delete(ts.byGroup, group)
	filtered := ts.transitions[:0]
	for _, t := range ts.transitions {
		if t.Group != group {
			filtered = append(filtered, t)
		}
	}
	ts.transitions = filtered
}

func (ts *TransitionSystem) validState(s StateID) bool {
	return s >= 0 && int(s) < ts.numStates
}

// State is a world state: one local state per LTS, indexed the same way as
// FTSTask.TS(i).
type State []StateID

// Equal reports whether a and b name the same world state.
func (a State) Equal(b State) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SearchTask is the minimal external-collaborator surface this core
// consumes from the generic search engine: enumerating applicable
// operators, applying one, and mapping an operator to its label.
type SearchTask interface {
	GenerateApplicableOps(state State) []OperatorID
	GenerateSuccessor(state State, op OperatorID) State
	Label(op OperatorID) LabelID
}

// FTSTask is the Factored Transition System this core consumes: the LTSs,
// the shared label alphabet, and the search-task collaborator.
type FTSTask interface {
	Size() int
	TS(i int) *TransitionSystem
	Labels() *Labels
	SearchTask() SearchTask
}
