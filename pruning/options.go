package pruning

import "github.com/katalvlaran/ftsdom/builder"

type config struct {
	pruneDominatedByParent       bool
	pruneDominatedByInitialState bool
	pruneSuccessors              bool

	builderOpts []builder.Option
}

func defaultConfig() config {
	return config{}
}

// Option configures an Adapter via the same functional-options pattern as
// builder.Option.
type Option func(*config)

// WithPruneDominatedByParent enables pruning a successor dominated by its
// parent state.
func WithPruneDominatedByParent() Option {
	return func(c *config) { c.pruneDominatedByParent = true }
}

// WithPruneDominatedByInitialState enables pruning a successor dominated
// by the task's initial state.
func WithPruneDominatedByInitialState() Option {
	return func(c *config) { c.pruneDominatedByInitialState = true }
}

// WithPruneSuccessors enables action-selection pruning: if some applicable
// operator's successor already dominates the parent by at least its own
// cost, every sibling operator is redundant.
func WithPruneSuccessors() Option {
	return func(c *config) { c.pruneSuccessors = true }
}

// WithBuilderOptions forwards opts to the builder.Builder Initialize
// constructs internally, e.g. builder.WithMaxTotalTime or
// builder.WithKind.
func WithBuilderOptions(opts ...builder.Option) Option {
	return func(c *config) { c.builderOpts = append(c.builderOpts, opts...) }
}

func (c config) applyPruning() bool {
	return c.pruneDominatedByParent || c.pruneDominatedByInitialState || c.pruneSuccessors
}
