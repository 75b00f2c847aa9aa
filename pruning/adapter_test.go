package pruning_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftsdom/builder"
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
	"github.com/katalvlaran/ftsdom/pruning"
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

// scenario1Task is the canonical one-LTS, two-state fixture: a
// single zero-cost mover label from the initial state to the goal.
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

func TestAdapter_NoToggles_NeverPrunes(t *testing.T) {
	a := pruning.New[cost.Int]()
	task := scenario1Task(t, &fakeSearch{})
	require.NoError(t, a.Initialize(task))

	ops := []lts.OperatorID{0, 1, 2}
	require.NoError(t, a.PruneOperators(lts.State{0}, &ops))
	require.Equal(t, []lts.OperatorID{0, 1, 2}, ops, "with every toggle off, PruneOperators must leave ops untouched")
}

func TestAdapter_PruneSuccessors_FiresActionSelection(t *testing.T) {
	op0 := lts.OperatorID(0)
	op1 := lts.OperatorID(1)
	search := &fakeSearch{
		succByOp:  map[lts.OperatorID]lts.State{op0: {1}, op1: {0}},
		labelByOp: map[lts.OperatorID]lts.LabelID{op0: 0, op1: 0},
	}
	task := scenario1Task(t, search)

	a := pruning.New[cost.Int](
		pruning.WithPruneSuccessors(),
		pruning.WithBuilderOptions(builder.WithMaxTotalTime(200*time.Millisecond)),
	)
	require.NoError(t, a.Initialize(task))

	ops := []lts.OperatorID{op0, op1}
	require.NoError(t, a.PruneOperators(lts.State{0}, &ops))
	require.Equal(t, []lts.OperatorID{op0}, ops, "op0 reaches the goal at zero cost, dominating op1 which stays put")
}

func TestAdapter_PruneDominatedByParent_RemovesDeadEnd(t *testing.T) {
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

	a := pruning.New[cost.Int](
		pruning.WithPruneDominatedByParent(),
		pruning.WithBuilderOptions(builder.WithMaxTotalTime(200*time.Millisecond)),
	)
	require.NoError(t, a.Initialize(task))

	ops := []lts.OperatorID{opDead, opGood}
	require.NoError(t, a.PruneOperators(lts.State{0}, &ops))
	require.Equal(t, []lts.OperatorID{opGood}, ops)
}

func TestAdapter_InitializeTwice_ReturnsError(t *testing.T) {
	task := scenario1Task(t, &fakeSearch{})
	a := pruning.New[cost.Int]()
	require.NoError(t, a.Initialize(task))
	require.ErrorIs(t, a.Initialize(task), pruning.ErrAlreadyInitialized)
}

func TestAdapter_PruneOperatorsBeforeInitialize_ReturnsError(t *testing.T) {
	a := pruning.New[cost.Int]()
	ops := []lts.OperatorID{0}
	require.ErrorIs(t, a.PruneOperators(lts.State{0}, &ops), pruning.ErrNotInitialized)
}
