package labeldom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/labeldom"
	"github.com/katalvlaran/ftsdom/lts"
)

type fakeTask struct {
	tss    []*lts.TransitionSystem
	labels *lts.Labels
}

func (f *fakeTask) Size() int                      { return len(f.tss) }
func (f *fakeTask) TS(i int) *lts.TransitionSystem  { return f.tss[i] }
func (f *fakeTask) Labels() *lts.Labels             { return f.labels }
func (f *fakeTask) SearchTask() lts.SearchTask      { return nil }

type constLocal struct{ v cost.Int }

func (c constLocal) QSimulates(s, t lts.StateID) cost.Int { return c.v }

func singleGroupTask(t *testing.T) *fakeTask {
	t.Helper()
	ts, err := lts.NewTransitionSystem(2)
	require.NoError(t, err)
	require.NoError(t, ts.SetInitial(0))
	require.NoError(t, ts.SetGoal(1))
	ts.AddLabelToGroup(0, 0)
	require.NoError(t, ts.AddTransition(0, 0, 1))
	require.NoError(t, ts.Finalize())
	labels, err := lts.NewLabels([]int{1})
	require.NoError(t, err)
	return &fakeTask{tss: []*lts.TransitionSystem{ts}, labels: labels}
}

func TestInit_ReflexiveGroupDominatesItself(t *testing.T) {
	task := singleGroupTask(t)
	f := labeldom.New[cost.Int](task, true)
	locals := []labeldom.LocalRelation[cost.Int]{constLocal{v: 0}}
	require.NoError(t, f.Init(locals))

	require.Equal(t, cost.Int(0), f.QDominates(0, 0, 0))
	require.True(t, f.MayDominate(0, 0, 0))
}

func TestUpdate_ReportsNoChangeOnSecondPass(t *testing.T) {
	task := singleGroupTask(t)
	f := labeldom.New[cost.Int](task, false)
	locals := []labeldom.LocalRelation[cost.Int]{constLocal{v: 0}}
	require.NoError(t, f.Init(locals))

	changed, err := f.Update(locals)
	require.NoError(t, err)
	require.False(t, changed, "a stable relation must report no further change")
}

func TestInit_LTSCountMismatch(t *testing.T) {
	task := singleGroupTask(t)
	f := labeldom.New[cost.Int](task, false)
	err := f.Init(nil)
	require.ErrorIs(t, err, labeldom.ErrLTSCountMismatch)
}

func TestMayDominateSummary_AllWhenEveryLTSDominates(t *testing.T) {
	task := singleGroupTask(t)
	f := labeldom.New[cost.Int](task, true)
	locals := []labeldom.LocalRelation[cost.Int]{constLocal{v: 0}}
	require.NoError(t, f.Init(locals))

	labels, err := lts.NewLabels([]int{1, 1})
	require.NoError(t, err)
	task.labels = labels
	task.tss[0].AddLabelToGroup(0, 1)
	require.NoError(t, f.Init(locals))

	summary, ok := f.MayDominateSummary(0, 1)
	require.True(t, ok)
	require.Equal(t, labeldom.SummaryAll, summary.Kind)
}
