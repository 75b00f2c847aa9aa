package sastask_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftsdom/sastask"
)

const sample = `begin_version
3
end_version
begin_metric
0
end_metric
1
begin_variable
var0
-1
2
Atom at-a
Atom at-b
end_variable
1
begin_mutex_group
2
0 0
0 1
end_mutex_group
begin_state
0
end_state
begin_goal
1
0 1
end_goal
1
begin_operator
move-a-to-b
1
0 0
1
0 0 -1 1
1
end_operator
0
`

func TestParse_SingleVariableSingleOperator(t *testing.T) {
	task, err := sastask.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	require.False(t, task.UsesMetric)
	require.Len(t, task.Variables, 1)
	require.Equal(t, "var0", task.Variables[0].Name)
	require.Equal(t, 2, task.Variables[0].Domain)
	require.Equal(t, []string{"Atom at-a", "Atom at-b"}, task.Variables[0].FactNames)

	require.Len(t, task.Mutexes, 1)
	require.Equal(t, []sastask.FactPair{{Var: 0, Value: 0}, {Var: 0, Value: 1}}, task.Mutexes[0].Facts)

	require.Equal(t, []int{0}, task.Initial)
	require.Equal(t, []sastask.FactPair{{Var: 0, Value: 1}}, task.Goal)

	require.Len(t, task.Operators, 1)
	op := task.Operators[0]
	require.Equal(t, "move-a-to-b", op.Name)
	require.Equal(t, 1, op.Cost, "metric flag is off, so cost collapses to 1 regardless of the declared cost")
	require.Equal(t, []sastask.FactPair{{Var: 0, Value: 0}}, op.Preconditions)
	require.Len(t, op.Effects, 1)
	require.Equal(t, 0, op.Effects[0].Var)
	require.Equal(t, 1, op.Effects[0].Value)
	require.Empty(t, task.Axioms)
}

func TestParse_MissingGoal_ReturnsErrNoGoal(t *testing.T) {
	bad := strings.Replace(sample, "begin_goal\n1\n0 1\nend_goal", "begin_goal\n0\nend_goal", 1)
	_, err := sastask.Parse(strings.NewReader(bad))
	require.ErrorIs(t, err, sastask.ErrNoGoal)
}

func TestParse_BadMagicWord_ReturnsErrMalformedHeader(t *testing.T) {
	bad := strings.Replace(sample, "begin_version", "begin_versio", 1)
	_, err := sastask.Parse(strings.NewReader(bad))
	require.ErrorIs(t, err, sastask.ErrMalformedHeader)
}
