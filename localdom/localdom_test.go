package localdom_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/localdom"
	"github.com/katalvlaran/ftsdom/lts"
)

// trivialLabelDom answers every query with Zero, so clause 1/2 never help
// and clause 3 is skipped (no tau distances installed) — isolating
// InitGoalRespecting's output on a single unit-cost LTS.
type trivialLabelDom struct{}

func (trivialLabelDom) QDominates(int, lts.LabelGroupID, lts.LabelGroupID) cost.Int { return 0 }
func (trivialLabelDom) SimulatesIrrelevant(int, lts.LabelGroupID) cost.Int          { return 0 }
func (trivialLabelDom) QDominatedByNoop(int, lts.LabelGroupID) cost.Int            { return 0 }

func twoStateTS(t *testing.T) *lts.TransitionSystem {
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

// TestScenario1_SingleUnitCostLTS exercises the canonical single unit-cost
// LTS: R(s0,s0)=R(s1,s1)=0, R(s1,s0)=0, R(s0,s1)=-inf.
func TestScenario1_SingleUnitCostLTS(t *testing.T) {
	ts := twoStateTS(t)
	f := localdom.New[cost.Int](0, ts, 1000)
	f.InitGoalRespecting()

	require.Equal(t, cost.Int(0), f.QSimulates(0, 0))
	require.Equal(t, cost.Int(0), f.QSimulates(1, 1))
	require.Equal(t, cost.Int(0), f.QSimulates(1, 0))
	require.True(t, f.QSimulates(0, 1).IsBottom())
}

func TestUpdate_NeverIncreasesAnyCell(t *testing.T) {
	ts := twoStateTS(t)
	f := localdom.New[cost.Int](0, ts, 1000)
	f.InitGoalRespecting()
	before := make([][]cost.Int, 2)
	for s := 0; s < 2; s++ {
		before[s] = make([]cost.Int, 2)
		for tt := 0; tt < 2; tt++ {
			before[s][tt] = f.QSimulates(lts.StateID(s), lts.StateID(tt))
		}
	}

	f.Update(trivialLabelDom{}, 10*time.Millisecond)

	for s := 0; s < 2; s++ {
		for tt := 0; tt < 2; tt++ {
			after := f.QSimulates(lts.StateID(s), lts.StateID(tt))
			require.True(t, cost.GE(before[s][tt], after), "cell (%d,%d) must not increase", s, tt)
		}
	}
}

func TestCancelSimulationComputation_FreezesRelation(t *testing.T) {
	ts := twoStateTS(t)
	f := localdom.New[cost.Int](0, ts, 1000)
	f.InitGoalRespecting()
	f.CancelSimulationComputation()
	require.True(t, f.Cancelled())

	passes := f.Update(trivialLabelDom{}, time.Second)
	require.Equal(t, 0, passes)
}

func TestStrictlySimulatesAndSimilar(t *testing.T) {
	ts := twoStateTS(t)
	f := localdom.New[cost.Int](0, ts, 1000)
	f.InitGoalRespecting()

	require.True(t, f.StrictlySimulates(1, 0))
	require.False(t, f.Similar(1, 0))
	require.True(t, f.Similar(0, 0))
}
