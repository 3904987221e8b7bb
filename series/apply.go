package series

import "golang.org/x/sync/errgroup"

// Option configures batch evaluation.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers dispatches pair evaluation across up to n goroutines.
// Values below 2 keep evaluation sequential. Every result is written at its
// input index, so output ordering is identical either way.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// Validate checks the equal-length contract shared by all scorers.
func Validate(a, b []String) error {
	if len(a) != len(b) {
		return ErrLengthMismatch
	}
	return nil
}

// Apply evaluates fn once per aligned pair and returns the scores in input
// order. Zero-length input yields an empty, non-nil result. Pairs are
// independent: fn must not rely on evaluation order.
func Apply(a, b []String, fn func(String, String) Score, opts ...Option) ([]Score, error) {
	if err := Validate(a, b); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]Score, len(a))
	if cfg.workers < 2 || len(a) < 2 {
		for i := range a {
			out[i] = fn(a[i], b[i])
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i := range a {
		i := i
		g.Go(func() error {
			out[i] = fn(a[i], b[i])
			return nil
		})
	}
	// Pair functions cannot fail; Wait only synchronizes the pool.
	_ = g.Wait()
	return out, nil
}

// PresentPair adapts a scorer over raw strings into a pair function that
// propagates missing values: when either side is missing the score is NA
// and fn is never invoked.
func PresentPair(fn func(x, y string) Score) func(String, String) Score {
	return func(x, y String) Score {
		if x.Missing() || y.Missing() {
			return NA()
		}
		return fn(x.Value(), y.Value())
	}
}
