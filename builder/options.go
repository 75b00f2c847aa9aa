package builder

import (
	"io"
	"time"
)

// Kind selects which tau-label extensions the fixpoint applies, replacing
// the original's plugin registry with a tagged variant resolved once at
// Builder construction: no dynamic dispatch in the hot relaxation loops.
type Kind int

const (
	// KindNumeric: self-loop tau labels only.
	KindNumeric Kind = iota
	// KindNumericRecursive: self-loop + recursive tau extension.
	KindNumericRecursive
	// KindNumericNoop: self-loop + recursive + noop-dominance extension.
	KindNumericNoop
)

type config struct {
	kind Kind

	truncateValue                  int
	maxSimulationTime               time.Duration
	minSimulationTime               time.Duration
	maxTotalTime                    time.Duration
	maxLTSSizeToComputeSimulation   int
	numLabelsToUseDominatesIn       int

	onlyReachability bool

	dumpWriter io.Writer
}

func defaultConfig() config {
	return config{
		kind:                          KindNumericRecursive,
		truncateValue:                 1000,
		maxSimulationTime:             time.Second,
		minSimulationTime:             10 * time.Millisecond,
		maxTotalTime:                  30 * time.Second,
		maxLTSSizeToComputeSimulation: 1_000_000,
		numLabelsToUseDominatesIn:     1_000,
	}
}

// Option configures a Builder via the functional-options pattern
// (lvlath/dijkstra.Option, lvlath/builder.BuilderOption): constructors
// validate and panic on a meaningless argument; Build itself never panics
// except via the documented poison-value invariant violation.
type Option func(*config)

// WithKind selects the tau-extension variant.
func WithKind(k Kind) Option {
	if k < KindNumeric || k > KindNumericNoop {
		panic("builder: WithKind: unknown Kind")
	}
	return func(c *config) { c.kind = k }
}

// WithTruncateValue sets truncate_value: any R_i value below
// -v collapses to Bottom, guaranteeing fixpoint termination. v must be > 0.
func WithTruncateValue(v int) Option {
	if v <= 0 {
		panic("builder: WithTruncateValue: value must be positive")
	}
	return func(c *config) { c.truncateValue = v }
}

// WithMaxSimulationTime sets max_simulation_time, the lower bound of the
// per-LTS relaxation budget within one outer iteration: the budget is
// max(max_sim, min(min_sim, 1ms + max_total/remaining)).
func WithMaxSimulationTime(d time.Duration) Option {
	if d <= 0 {
		panic("builder: WithMaxSimulationTime: duration must be positive")
	}
	return func(c *config) { c.maxSimulationTime = d }
}

// WithMinSimulationTime sets min_simulation_time, which caps the
// 1ms + max_total/remaining share of an LTS's per-iteration budget before
// max_simulation_time is applied as the lower bound.
func WithMinSimulationTime(d time.Duration) Option {
	if d <= 0 {
		panic("builder: WithMinSimulationTime: duration must be positive")
	}
	return func(c *config) { c.minSimulationTime = d }
}

// WithMaxTotalTime caps the whole build's wall-clock budget.
func WithMaxTotalTime(d time.Duration) Option {
	if d <= 0 {
		panic("builder: WithMaxTotalTime: duration must be positive")
	}
	return func(c *config) { c.maxTotalTime = d }
}

// WithMaxLTSSize sets the state-count cap above which an LTS's local
// relation is cancelled (left at its goal-respecting identity) rather than
// refined.
func WithMaxLTSSize(n int) Option {
	if n <= 0 {
		panic("builder: WithMaxLTSSize: size must be positive")
	}
	return func(c *config) { c.maxLTSSizeToComputeSimulation = n }
}

// WithNumLabelsToUseDominatesIn enables the may_dominate summary matrix
// only when the label alphabet has at most n labels.
func WithNumLabelsToUseDominatesIn(n int) Option {
	if n < 0 {
		panic("builder: WithNumLabelsToUseDominatesIn: must be non-negative")
	}
	return func(c *config) { c.numLabelsToUseDominatesIn = n }
}

// WithOnlyReachability switches tau-distance precomputation from Dijkstra
// (epsilon-weighted) to plain BFS reachability. Use when
// only may_simulate-style boolean reachability is needed, not a metric.
func WithOnlyReachability() Option {
	return func(c *config) { c.onlyReachability = true }
}

// WithDumpWriter enables the original's `dump bool` behavior: when set,
// Build writes a human-readable trace of the finished Artifact to w before
// returning, the same way lvlath/flow gates its augmentation logging on
// FlowOptions.Verbose. w must not be nil.
func WithDumpWriter(w io.Writer) Option {
	if w == nil {
		panic("builder: WithDumpWriter: writer must not be nil")
	}
	return func(c *config) { c.dumpWriter = w }
}
