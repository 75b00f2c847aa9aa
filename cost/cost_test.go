package cost_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ftsdom/cost"
)

func TestInt_BottomArithmeticStaysBottom(t *testing.T) {
	var z cost.Int
	bot := z.Bottom()
	require.True(t, bot.IsBottom())
	require.True(t, bot.Add(cost.Int(5)).IsBottom())
	require.True(t, cost.Int(5).Add(bot).IsBottom())
	require.True(t, bot.Negate().IsBottom())
}

func TestInt_CmpOrdersBottomBelowEverything(t *testing.T) {
	bot := cost.Int(0).Bottom()
	require.True(t, cost.Less(bot, cost.Int(-1000)))
	require.True(t, cost.Less(bot, cost.Int(0)))
	require.Equal(t, 0, bot.Cmp(bot))
}

func TestInt_TruncateCollapsesBelowLimit(t *testing.T) {
	require.True(t, cost.Int(-11).Truncate(10).IsBottom())
	require.False(t, cost.Int(-10).Truncate(10).IsBottom())
	require.Equal(t, cost.Int(-10), cost.Int(-10).Truncate(10))
}

func TestInt_PoisonDistinctFromBottom(t *testing.T) {
	var z cost.Int
	require.NotEqual(t, z.Bottom(), z.Poison())
	require.True(t, z.Poison().IsPoison())
	require.False(t, z.Bottom().IsPoison())
}

func TestEpsilon_ZeroCostBecomesStrictInfinitesimal(t *testing.T) {
	free := cost.EpsilonIfZero(0)
	require.True(t, cost.GT(free, cost.Epsilon{}))
	nonZero := cost.EpsilonIfZero(3)
	require.Equal(t, cost.Epsilon{Base: 3}, nonZero)
}

func TestEpsilon_LexicographicOrdering(t *testing.T) {
	a := cost.Epsilon{Base: 2, Eps: 5}
	b := cost.Epsilon{Base: 3, Eps: -100}
	require.True(t, cost.Less(a, b), "Base dominates Eps in ordering")

	c := cost.Epsilon{Base: 2, Eps: -1}
	require.True(t, cost.Less(c, a), "ties on Base break on Eps")
}

func TestEpsilon_BottomArithmeticStaysBottom(t *testing.T) {
	var z cost.Epsilon
	bot := z.Bottom()
	sum := bot.Add(cost.Epsilon{Base: 7, Eps: 1})
	require.True(t, sum.IsBottom())
}

func TestEpsilon_TruncateIgnoresEpsComponent(t *testing.T) {
	v := cost.Epsilon{Base: -5, Eps: 1000}
	require.False(t, v.Truncate(5).IsBottom())
	require.True(t, cost.Epsilon{Base: -6, Eps: -1000}.Truncate(5).IsBottom())
}

func TestMaxMin_AgreeWithCmp(t *testing.T) {
	a := cost.Int(-3)
	b := cost.Int(2)
	require.Equal(t, b, a.Max(b))
	require.Equal(t, a, a.Min(b))
}
