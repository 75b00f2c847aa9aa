package searchtask_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftsdom/lts"
	"github.com/katalvlaran/ftsdom/sastask"
	"github.com/katalvlaran/ftsdom/searchtask"
)

func twoVarTask(t *testing.T) *sastask.Task {
	t.Helper()
	return &sastask.Task{
		Variables: []sastask.Variable{
			{Name: "var0", Domain: 2},
			{Name: "var1", Domain: 2},
		},
		Initial: []int{0, 0},
		Goal:    []sastask.FactPair{{Var: 0, Value: 1}},
		Operators: []sastask.Operator{
			{
				Name:          "move0",
				Preconditions: []sastask.FactPair{{Var: 0, Value: 0}},
				Effects:       []sastask.Effect{{Var: 0, Value: 1}},
				Cost:          1,
			},
			{
				Name:          "move1",
				Preconditions: []sastask.FactPair{{Var: 1, Value: 0}},
				Effects:       []sastask.Effect{{Var: 1, Value: 1}},
				Cost:          1,
			},
		},
	}
}

func TestBuild_AtomicProjection_EachOperatorIrrelevantWhereItDoesNotApply(t *testing.T) {
	task, err := searchtask.Build(twoVarTask(t))
	require.NoError(t, err)
	require.Equal(t, 2, task.Size())

	ts0, ts1 := task.TS(0), task.TS(1)
	require.True(t, ts0.IsIrrelevant(1), "move1 never touches var0, so its group is a self-loop at every var0 state")
	require.False(t, ts0.IsIrrelevant(0))
	require.True(t, ts1.IsIrrelevant(0), "move0 never touches var1, so its group is a self-loop at every var1 state")
	require.False(t, ts1.IsIrrelevant(1))

	require.True(t, ts0.IsGoal(1))
	require.False(t, ts0.IsGoal(0))
}

func TestBuild_SearchTask_ApplicableOpsAndSuccessor(t *testing.T) {
	task, err := searchtask.Build(twoVarTask(t))
	require.NoError(t, err)

	search := task.SearchTask()
	state := lts.State{0, 0}
	ops := search.GenerateApplicableOps(state)
	require.ElementsMatch(t, []lts.OperatorID{0, 1}, ops, "both operators' preconditions hold in the initial state")

	succ := search.GenerateSuccessor(state, 0)
	require.Equal(t, lts.State{1, 0}, succ)
	require.Equal(t, lts.LabelID(0), search.Label(0))
}

func TestBuild_ConditionalEffect_ReturnsErrConditionalEffect(t *testing.T) {
	sas := twoVarTask(t)
	sas.Operators[0].Effects[0].Conditions = []sastask.FactPair{{Var: 1, Value: 0}}

	_, err := searchtask.Build(sas)
	require.ErrorIs(t, err, searchtask.ErrConditionalEffect)
}
