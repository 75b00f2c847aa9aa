package builder

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/labeldom"
	"github.com/katalvlaran/ftsdom/localdom"
	"github.com/katalvlaran/ftsdom/lts"
	"github.com/katalvlaran/ftsdom/tau"
)

// Build runs the coupled dominance fixpoint over fts and returns the
// immutable Artifact. Any poison value observed during relaxation is
// recovered here and reported as ErrInvariantViolation rather than
// propagating a panic out of this package.
func (b *Builder[T]) Build(fts lts.FTSTask) (artifact *Artifact[T], err error) {
	n := fts.Size()
	if n == 0 {
		return nil, ErrEmptyTask
	}

	defer func() {
		if r := recover(); r != nil {
			artifact = nil
			err = fmt.Errorf("%w: %v", ErrInvariantViolation, r)
		}
	}()

	deadline := time.Now().Add(b.cfg.maxTotalTime)
	order := ascendingBySize(fts)

	// Step 1: initial tau-labels from self-loops.
	tauSets := tau.ComputeInitialTauLabels(fts)

	// Step 2/3: per-LTS local relations (reset goal-respectingly on every
	// tau-restart) and the label relation (kept across restarts).
	locals := make([]*localdom.LocalDominanceFunction[T], n)
	stats := Stats{CancelledTS: make([]bool, n), InnerIterationsPerTS: make([]int, n)}

	useSummary := fts.Labels().Size() <= b.cfg.numLabelsToUseDominatesIn
	labelRel := labeldom.New[T](fts, useSummary)

	initLocalsGoalRespecting := func() {
		for i := 0; i < n; i++ {
			locals[i] = localdom.New[T](i, fts.TS(i), b.cfg.truncateValue)
			locals[i].InitGoalRespecting()
			if fts.TS(i).NumStates() > b.cfg.maxLTSSizeToComputeSimulation {
				locals[i].CancelSimulationComputation()
				stats.CancelledTS[i] = true
			}
		}
	}
	initLocalsGoalRespecting()

	distances := make([]*tau.Distances, n)
	recomputeDistances := func() {
		for i := 0; i < n; i++ {
			d := tau.Precompute(fts.TS(i), tauSets[i], fts.Labels(), b.cfg.onlyReachability, version(distances[i]))
			distances[i] = d
			locals[i].SetTauDistances(d)
		}
	}
	recomputeDistances()

	if b.cfg.kind == KindNumericRecursive || b.cfg.kind == KindNumericNoop {
		for tau.AddRecursiveTauLabels(fts, tauSets, distances) {
			recomputeDistances()
		}
	}

	labelLocals := asLabelRelations(locals)
	if err := labelRel.Init(labelLocals); err != nil {
		return nil, err
	}

	// Tau-restart loop (outermost): reruns the whole coupled fixpoint from
	// a fresh goal-respecting init whenever the noop-dominance extension
	// discovers new tau labels — the three loops are never collapsed
	// into one, or goal-respecting reinitialization on restart breaks.
	for {
		// Outer loop: label+local coupling.
		for {
			// Inner loop: single-LTS stabilization in ascending-size order.
			for pos, i := range order {
				remaining := len(order) - pos
				budget := b.perLTSBudget(remaining)
				passes := locals[i].Update(labelRel, budget)
				stats.InnerIterationsPerTS[i] += passes
			}
			changed, err := labelRel.Update(labelLocals)
			if err != nil {
				return nil, err
			}
			stats.OuterIterations++
			if !changed || time.Now().After(deadline) {
				break
			}
		}

		if b.cfg.kind != KindNumericNoop {
			break
		}

		restartNeeded := tau.AddNoopDominanceTauLabels(fts, tauSets, func(tsIndex int, label lts.LabelID) bool {
			group, ok := fts.TS(tsIndex).GroupForLabel(label)
			if !ok {
				return true
			}
			var zero T
			return cost.GE(labelRel.QDominatedByNoop(tsIndex, group), zero.Zero())
		})
		if !restartNeeded || time.Now().After(deadline) {
			break
		}

		stats.TauRestarts++
		recomputeDistances()
		initLocalsGoalRespecting()
		labelLocals = asLabelRelations(locals)
		recomputeDistances()
	}

	artifact = &Artifact[T]{
		Locals:    locals,
		Label:     labelRel,
		TauSets:   tauSets,
		Distances: distances,
		Stats:     stats,
	}
	if b.cfg.dumpWriter != nil {
		if derr := artifact.DumpTo(b.cfg.dumpWriter); derr != nil {
			return nil, derr
		}
	}
	return artifact, nil
}

// perLTSBudget implements the per-LTS time-budget formula:
// budget_i = max(max_sim, min(min_sim, 1 + max_total/remaining)).
func (b *Builder[T]) perLTSBudget(remaining int) time.Duration {
	if remaining <= 0 {
		remaining = 1
	}
	quotient := b.cfg.maxTotalTime / time.Duration(remaining)
	candidate := quotient + time.Millisecond
	if candidate > b.cfg.minSimulationTime {
		candidate = b.cfg.minSimulationTime
	}
	budget := b.cfg.maxSimulationTime
	if candidate > budget {
		budget = candidate
	}
	return budget
}

func ascendingBySize(fts lts.FTSTask) []int {
	order := make([]int, fts.Size())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, c int) bool {
		return fts.TS(order[a]).NumStates() < fts.TS(order[c]).NumStates()
	})
	return order
}

func asLabelRelations[T cost.Value[T]](locals []*localdom.LocalDominanceFunction[T]) []labeldom.LocalRelation[T] {
	out := make([]labeldom.LocalRelation[T], len(locals))
	for i, l := range locals {
		out[i] = l
	}
	return out
}

func version(d *tau.Distances) int {
	if d == nil {
		return 0
	}
	return d.Version()
}
