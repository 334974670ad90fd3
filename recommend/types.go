// Package recommend: result types, tunable options and their defaults.
package recommend

import "github.com/katalvlaran/kindred/similarity"

// Neighbor is another user ranked by similarity to the queried user.
type Neighbor struct {
	// User is the neighbor's original dataset index.
	User int

	// Score is the similarity between the queried user and this one,
	// strictly > 0 (zero-similarity users are never reported).
	Score float64
}

// Suggestion is a ranked interest label with its accumulated weight.
type Suggestion struct {
	// Interest is the candidate label.
	Interest string

	// Score is the accumulated similarity weight behind the candidate.
	Score float64
}

// Option configures a Recommender or a single query via functional
// arguments. An invalid Option (e.g. negative limit) is recorded
// internally and surfaced as ErrOptionViolation when the call runs.
type Option func(*Options)

// Options holds the parameters and hooks that customize construction
// and queries.
type Options struct {
	// Metric selects the similarity kernel for both precomputed
	// matrices. Consumed by New only; passing it to a query has no
	// effect because the matrices are already built.
	Metric similarity.Metric

	// CurrentInterests, when true, keeps labels the queried user already
	// holds in the suggestion list instead of filtering them out.
	CurrentInterests bool

	// MaxResults, if > 0, truncates the ranked suggestion list.
	// A value of 0 explicitly disables any limit.
	MaxResults int

	// OnScore is called for every candidate that makes the ranked list,
	// in rank order, before MaxResults truncation.
	OnScore func(label string, score float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - cosine metric
//   - held interests filtered out (CurrentInterests == false)
//   - no result limit (MaxResults == 0)
//   - no-op OnScore hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Metric:           similarity.MetricCosine,
		CurrentInterests: false,
		MaxResults:       0,
		OnScore:          func(string, float64) {},
		err:              nil,
	}
}

// WithMetric selects the similarity kernel used when New precomputes the
// user and interest matrices.
func WithMetric(m similarity.Metric) Option {
	return func(o *Options) {
		o.Metric = m
	}
}

// WithCurrentInterests keeps the queried user's own labels in the
// suggestion list (they still accumulate weight like any other label).
func WithCurrentInterests() Option {
	return func(o *Options) {
		o.CurrentInterests = true
	}
}

// WithMaxResults truncates the ranked list to at most n suggestions.
// n == 0 disables the limit; n < 0 is recorded as ErrOptionViolation.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation

			return
		}
		o.MaxResults = n
	}
}

// WithOnScore registers an observation hook invoked for every ranked
// candidate. A nil fn is ignored.
func WithOnScore(fn func(label string, score float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnScore = fn
		}
	}
}

// gatherOptions applies opts on top of base and surfaces any recorded
// violation as ErrOptionViolation.
func gatherOptions(base Options, opts ...Option) (Options, error) {
	for _, opt := range opts {
		opt(&base)
	}
	if base.err != nil {
		return base, base.err
	}

	return base, nil
}
