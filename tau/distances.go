package tau

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/lts"
)

// tauWeightScale bridges cost.Epsilon's exact lexicographic (Base, Eps)
// ordering onto the plain float64 edge weights gonum's shortest-path
// algorithms require. Base dominates: scaling it up by a factor far larger
// than any Eps count that can occur in one task keeps the combined float64
// lexicographically faithful for every realistic FTS.
const tauWeightScale = 1 << 20

func epsilonWeight(e cost.Epsilon) float64 {
	return float64(e.Base)*tauWeightScale + float64(e.Eps)
}

// Distances holds, for one LTS, all-pairs shortest-path distances and
// per-state goal distances over the subgraph of its current tau-labelled
// transitions, plus the version id that tags this snapshot.
type Distances struct {
	version  int
	n        int
	dist     func(from, to int64) float64
	goalDist []float64
	onlyBFS  bool
}

// Version returns the monotonic version id of this snapshot. Consumers
// that cached a Distances value must re-fetch if the owning LTS's current
// version has advanced past this one.
func (d *Distances) Version() int { return d.version }

// Dist returns the tau-subgraph shortest-path distance from s to t, or
// +Inf if t is unreachable from s via tau transitions.
func (d *Distances) Dist(s, t lts.StateID) float64 {
	return d.dist(int64(s), int64(t))
}

// GoalDistance returns the shortest tau-subgraph distance from s to the
// nearest goal state, or +Inf if no goal is reachable.
func (d *Distances) GoalDistance(s lts.StateID) float64 {
	return d.goalDist[s]
}

// CostFullyInvertible reports the LTS's invertibility cost under the
// current tau set: max_{s,s'} 2*dist(s,s') when every pair of states is
// mutually reachable via tau transitions, and false otherwise
// (cost_fully_invertible, used by the recursive tau extension).
func (d *Distances) CostFullyInvertible() (cost.Epsilon, bool) {
	if d.onlyBFS {
		// Reachability-only mode carries no metric weight; invertibility
		// cost is meaningless without it.
		return cost.Epsilon{}, false
	}
	worst := 0.0
	for s := 0; s < d.n; s++ {
		for t := 0; t < d.n; t++ {
			if s == t {
				continue
			}
			w := d.dist(int64(s), int64(t))
			if math.IsInf(w, 1) {
				return cost.Epsilon{}, false
			}
			if 2*w > worst {
				worst = 2 * w
			}
		}
	}
	base := int(worst / tauWeightScale)
	eps := int(math.Round(worst - float64(base)*tauWeightScale))
	return cost.Epsilon{Base: base, Eps: eps}, true
}

// GoalDistanceCost returns GoalDistance(s) decoded back into a cost.Epsilon
// (reversing epsilonWeight's scaling), or Epsilon's Bottom sentinel if no
// goal is reachable from s via tau transitions.
func (d *Distances) GoalDistanceCost(s lts.StateID) cost.Epsilon {
	w := d.goalDist[s]
	if math.IsInf(w, 1) {
		return cost.Epsilon{}.Bottom()
	}
	base := int(w / tauWeightScale)
	eps := int(math.Round(w - float64(base)*tauWeightScale))
	return cost.Epsilon{Base: base, Eps: eps}
}

// Precompute builds the tau-induced subgraph of ts — transitions whose
// label group contains at least one label currently in tl, excluding
// self-loops (the subgraph consists of tau-labelled transitions where
// src≠tgt) — and runs either BFS reachability or
// Dijkstra-with-epsilon-weights over it, per onlyReachability. The result
// carries version = prevVersion+1.
func Precompute(ts *lts.TransitionSystem, tl *Labels, labels *lts.Labels, onlyReachability bool, prevVersion int) *Distances {
	n := ts.NumStates()
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for s := 0; s < n; s++ {
		g.AddNode(simple.Node(s))
	}
	for _, gid := range ts.Groups() {
		group := ts.GroupOf(gid)
		best, has := bestTauCost(tl, group.Labels)
		if !has {
			continue
		}
		for _, t := range ts.TransitionsByGroup(gid) {
			if t.Src == t.Tgt {
				continue
			}
			w := epsilonWeight(best)
			if existing, ok := g.WeightedEdge(int64(t.Src), int64(t.Tgt)); ok && existing.Weight() <= w {
				continue
			}
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(t.Src), T: simple.Node(t.Tgt), W: w})
		}
	}

	d := &Distances{version: prevVersion + 1, n: n, onlyBFS: onlyReachability}
	if onlyReachability {
		d.dist = bfsDistanceFunc(g, n)
	} else {
		all := path.DijkstraAllPaths(g)
		d.dist = func(from, to int64) float64 { return all.Weight(from, to) }
	}

	d.goalDist = make([]float64, n)
	for s := 0; s < n; s++ {
		best := math.Inf(1)
		for t := 0; t < n; t++ {
			if !ts.IsGoal(lts.StateID(t)) {
				continue
			}
			w := d.dist(int64(s), int64(t))
			if t == s {
				w = 0
			}
			if w < best {
				best = w
			}
		}
		d.goalDist[s] = best
	}
	return d
}

func bestTauCost(tl *Labels, labels []lts.LabelID) (cost.Epsilon, bool) {
	var best cost.Epsilon
	found := false
	for _, l := range labels {
		if !tl.Contains(l) {
			continue
		}
		c := tl.Cost(l)
		if !found || cost.Less(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}

func bfsDistanceFunc(g graph.Graph, n int) func(from, to int64) float64 {
	cache := make(map[int64]path.Shortest, n)
	return func(from, to int64) float64 {
		s, ok := cache[from]
		if !ok {
			s = path.BreadthFirstFrom(simple.Node(from), g)
			cache[from] = s
		}
		return s.WeightTo(to)
	}
}
