package lts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftsdom/lts"
)

// twoStateUnitCostLTS builds the canonical two-state fixture:
// {s0,s1}, s1 goal, single label a: s0->s1.
func twoStateUnitCostLTS(t *testing.T) *lts.TransitionSystem {
	t.Helper()
	ts, err := lts.NewTransitionSystem(2)
	require.NoError(t, err)
	require.NoError(t, ts.SetInitial(0))
	require.NoError(t, ts.SetGoal(1))
	ts.AddLabelToGroup(0, 0)
	require.NoError(t, ts.AddTransition(0, 0, 1))
	require.NoError(t, ts.Finalize())
	return ts
}

func TestTransitionSystem_BasicShape(t *testing.T) {
	ts := twoStateUnitCostLTS(t)
	require.Equal(t, 2, ts.NumStates())
	require.Equal(t, lts.StateID(0), ts.Initial())
	require.True(t, ts.IsGoal(1))
	require.False(t, ts.IsGoal(0))
	require.Len(t, ts.Transitions(), 1)
}

func TestTransitionSystem_IrrelevantGroupIsSelfLoopEverywhere(t *testing.T) {
	ts, err := lts.NewTransitionSystem(2)
	require.NoError(t, err)
	require.NoError(t, ts.SetInitial(0))
	require.NoError(t, ts.SetGoal(1))
	ts.AddLabelToGroup(1, 1)
	require.NoError(t, ts.AddTransition(0, 1, 0))
	require.NoError(t, ts.AddTransition(1, 1, 1))
	require.NoError(t, ts.Finalize())

	require.True(t, ts.IsIrrelevant(1))
}

func TestTransitionSystem_GroupNotIrrelevantWhenItMovesAnyState(t *testing.T) {
	ts := twoStateUnitCostLTS(t)
	require.False(t, ts.IsIrrelevant(0))
}

func TestTransitionSystem_DuplicateTransitionRejected(t *testing.T) {
	ts, err := lts.NewTransitionSystem(2)
	require.NoError(t, err)
	require.NoError(t, ts.AddTransition(0, 0, 1))
	err = ts.AddTransition(0, 0, 1)
	require.ErrorIs(t, err, lts.ErrDuplicateTransition)
}

func TestTransitionSystem_RemoveTransitionAndGroup(t *testing.T) {
	ts := twoStateUnitCostLTS(t)
	removed := ts.RemoveTransition(0, 0, 1)
	require.True(t, removed)
	require.Empty(t, ts.Transitions())

	ts2 := twoStateUnitCostLTS(t)
	ts2.RemoveGroup(0)
	require.Nil(t, ts2.GroupOf(0))
	require.Empty(t, ts2.Transitions())
}

func TestTransitionSystem_FinalizeRequiresInitial(t *testing.T) {
	ts, err := lts.NewTransitionSystem(2)
	require.NoError(t, err)
	err = ts.Finalize()
	require.ErrorIs(t, err, lts.ErrNoInitialState)
}

func TestState_Equal(t *testing.T) {
	a := lts.State{0, 1, 2}
	b := lts.State{0, 1, 2}
	c := lts.State{0, 1, 3}
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestLabels_RejectsNegativeCost(t *testing.T) {
	_, err := lts.NewLabels([]int{1, -1, 3})
	require.ErrorIs(t, err, lts.ErrNegativeCost)
}

func TestLabels_CostLookup(t *testing.T) {
	labels, err := lts.NewLabels([]int{0, 2, 5})
	require.NoError(t, err)
	require.Equal(t, 3, labels.Size())
	require.Equal(t, 2, labels.Cost(1))
}
