package check_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftsdom/builder"
	"github.com/katalvlaran/ftsdom/check"
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
)

type fakeSearch struct {
	succByOp  map[lts.OperatorID]lts.State
	labelByOp map[lts.OperatorID]lts.LabelID
}

func (f *fakeSearch) GenerateApplicableOps(lts.State) []lts.OperatorID { return nil }
func (f *fakeSearch) GenerateSuccessor(_ lts.State, op lts.OperatorID) lts.State {
	return f.succByOp[op]
}
func (f *fakeSearch) Label(op lts.OperatorID) lts.LabelID { return f.labelByOp[op] }

type fakeTask struct {
	tss    []*lts.TransitionSystem
	labels *lts.Labels
	search lts.SearchTask
}

func (f *fakeTask) Size() int                      { return len(f.tss) }
func (f *fakeTask) TS(i int) *lts.TransitionSystem { return f.tss[i] }
func (f *fakeTask) Labels() *lts.Labels            { return f.labels }
func (f *fakeTask) SearchTask() lts.SearchTask     { return f.search }

// scenario1Task is the canonical one-LTS, two-state fixture: a single
// zero-cost mover label from the initial state to the goal.
func scenario1Task(t *testing.T, search lts.SearchTask) *fakeTask {
	t.Helper()
	ts, err := lts.NewTransitionSystem(2)
	require.NoError(t, err)
	require.NoError(t, ts.SetInitial(0))
	require.NoError(t, ts.SetGoal(1))
	ts.AddLabelToGroup(0, 0)
	require.NoError(t, ts.AddTransition(0, 0, 1))
	require.NoError(t, ts.Finalize())

	labels, err := lts.NewLabels([]int{0})
	require.NoError(t, err)

	return &fakeTask{tss: []*lts.TransitionSystem{ts}, labels: labels, search: search}
}

func buildArtifact(t *testing.T, task *fakeTask) *builder.Artifact[cost.Int] {
	t.Helper()
	b := builder.New[cost.Int](builder.WithMaxTotalTime(200 * time.Millisecond))
	artifact, err := b.Build(task)
	require.NoError(t, err)
	return artifact
}

func TestStrictlyDominatesInitialState(t *testing.T) {
	task := scenario1Task(t, &fakeSearch{})
	artifact := buildArtifact(t, task)

	c := check.New[cost.Int]()
	c.Initialize(artifact, task)

	require.True(t, c.StrictlyDominatesInitialState(lts.State{1}), "goal state strictly dominates the non-goal initial state")
	require.False(t, c.StrictlyDominatesInitialState(lts.State{0}), "the initial state cannot strictly dominate itself")
}

func TestActionSelectionPruning_FiresOnZeroCostDominatingOp(t *testing.T) {
	op0 := lts.OperatorID(0)
	search := &fakeSearch{
		succByOp:  map[lts.OperatorID]lts.State{op0: {1}},
		labelByOp: map[lts.OperatorID]lts.LabelID{op0: 0},
	}
	task := scenario1Task(t, search)
	artifact := buildArtifact(t, task)

	c := check.New[cost.Int]()
	c.Initialize(artifact, task)

	ops := []lts.OperatorID{op0}
	fired := c.ActionSelectionPruning(lts.State{0}, &ops)
	require.True(t, fired)
	require.Equal(t, []lts.OperatorID{op0}, ops)
}

func TestPruneDominatedByParentOrInitialState_RemovesDeadEndKeepsGood(t *testing.T) {
	opDead := lts.OperatorID(0)
	opGood := lts.OperatorID(1)
	search := &fakeSearch{
		succByOp: map[lts.OperatorID]lts.State{
			opDead: {lts.DeadEnd},
			opGood: {1},
		},
		labelByOp: map[lts.OperatorID]lts.LabelID{opDead: 0, opGood: 0},
	}
	task := scenario1Task(t, search)
	artifact := buildArtifact(t, task)

	c := check.New[cost.Int]()
	c.Initialize(artifact, task)

	ops := []lts.OperatorID{opDead, opGood}
	c.PruneDominatedByParentOrInitialState(lts.State{0}, &ops, false, true, false)

	require.Equal(t, []lts.OperatorID{opGood}, ops, "the dead-end successor is pruned, the goal-reaching one is kept")
}
