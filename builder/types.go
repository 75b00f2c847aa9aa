package builder

import (
	"github.com/katalvlaran/ftsdom/cost"
	"github.com/katalvlaran/ftsdom/labeldom"
	"github.com/katalvlaran/ftsdom/localdom"
	"github.com/katalvlaran/ftsdom/tau"
)

// Builder runs the coupled dominance fixpoint, generic over
// the cost flavor T the task's labels are costed in.
type Builder[T cost.Value[T]] struct {
	cfg config
}

// New constructs a Builder with opts applied over sensible defaults.
func New[T cost.Value[T]](opts ...Option) *Builder[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder[T]{cfg: cfg}
}

// Stats reports what happened during a Build call: how many outer
// iterations ran, how many inner relaxation passes each LTS got, which
// LTSs were cancelled as oversized, and how many tau-restarts occurred.
// This is the structured counterpart to DumpTo's human-readable trace.
type Stats struct {
	OuterIterations      int
	InnerIterationsPerTS []int
	CancelledTS          []bool
	TauRestarts          int
}

// Artifact is the immutable output of Build: per-LTS local relations, the
// cross-LTS label relation, and the tau-label/tau-distance info that
// produced them.
type Artifact[T cost.Value[T]] struct {
	Locals    []*localdom.LocalDominanceFunction[T]
	Label     *labeldom.LabelDominanceFunction[T]
	TauSets   []*tau.Labels
	Distances []*tau.Distances
	Stats     Stats
}
