// Package ngram defines configuration and the shared-vocabulary vector
// model for the q-gram and cosine similarity scorers.
//
// Options:
//
//	– WordBoundary: pad words with boundary spaces before extraction (default true).
//	– MinN / MaxN:  inclusive n-gram length range (default bigrams, 2..2).
//
// Errors (sentinel):
//
//	– ErrBadRange if the range does not satisfy 1 <= MinN <= MaxN.
package ngram

import "errors"

// ErrBadRange indicates an invalid n-gram length range.
var ErrBadRange = errors.New("ngram: range must satisfy 1 <= MinN <= MaxN")

// Options configures n-gram extraction for QGram and Cosine.
type Options struct {
	// WordBoundary treats each whitespace-separated word as padded with a
	// boundary space on both sides, so leading and trailing partial grams
	// are represented. When false, plain sliding-window character n-grams
	// are extracted within string bounds only.
	WordBoundary bool

	// MinN and MaxN bound the extracted n-gram lengths, inclusive.
	MinN, MaxN int
}

// DefaultOptions returns the standard configuration: word-boundary padded
// bigrams.
func DefaultOptions() Options {
	return Options{WordBoundary: true, MinN: 2, MaxN: 2}
}

// validate rejects nonsensical ranges before any extraction runs.
func (o Options) validate() error {
	if o.MinN < 1 || o.MaxN < o.MinN {
		return ErrBadRange
	}
	return nil
}

// Vocabulary maps every n-gram observed across one batch (both series) to a
// dense index. It is built once per call and passed to per-pair encoding —
// never kept as ambient state — so all pairs score in one coordinate space.
type Vocabulary map[string]int

// add registers every gram, first occurrence wins the next free index.
func (v Vocabulary) add(grams []string) {
	for _, g := range grams {
		if _, ok := v[g]; !ok {
			v[g] = len(v)
		}
	}
}

// TermVector is a sparse n-gram count vector over a shared Vocabulary,
// keyed by vocabulary index.
type TermVector map[int]int

// encode counts grams against the shared vocabulary. Every gram is present
// in the vocabulary by construction.
func (v Vocabulary) encode(grams []string) TermVector {
	vec := make(TermVector, len(grams))
	for _, g := range grams {
		vec[v[g]]++
	}
	return vec
}
