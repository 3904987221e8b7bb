package ngram

import (
	"math"

	"github.com/danakf/recordlinkage/series"
)

// QGram scores each aligned pair with the generalized (multiset) Jaccard
// coefficient over shared-vocabulary n-gram counts: shared occurrences over
// the union multiset size. nil opts means DefaultOptions.
//
// Missing values are not propagated: a missing side is treated as the empty
// string and simply contributes no grams. Only when the union is empty
// (both sides empty) does the pair score NA.
func QGram(a, b []series.String, opts *Options) ([]series.Score, error) {
	return score(a, b, opts, qgramPair)
}

// Cosine scores each aligned pair with the cosine of the two n-gram count
// vectors: dot(u,v) / (||u||·||v||). nil opts means DefaultOptions.
//
// Missing values become empty strings, as in QGram. A zero-length vector on
// either side leaves the denominator at zero and the pair scores NA.
func Cosine(a, b []series.String, opts *Options) ([]series.Score, error) {
	return score(a, b, opts, cosinePair)
}

// score runs the whole-batch pipeline: extract grams for every string, fit
// one shared vocabulary across both series, then score pair by pair. The
// vocabulary and vectors live only for the duration of the call.
func score(a, b []series.String, opts *Options, pair func(u, v TermVector) series.Score) ([]series.Score, error) {
	if err := series.Validate(a, b); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	out := make([]series.Score, len(a))
	if len(a) == 0 {
		return out, nil
	}

	// String.Value is "" for missing values, which is exactly the
	// substitution the vector-space metrics call for.
	gramsA := make([][]string, len(a))
	gramsB := make([][]string, len(b))
	for i := range a {
		gramsA[i] = o.grams(a[i].Value())
		gramsB[i] = o.grams(b[i].Value())
	}

	vocab := make(Vocabulary)
	for i := range gramsA {
		vocab.add(gramsA[i])
	}
	for i := range gramsB {
		vocab.add(gramsB[i])
	}

	for i := range out {
		out[i] = pair(vocab.encode(gramsA[i]), vocab.encode(gramsB[i]))
	}
	return out, nil
}

// qgramPair computes sum(min(u,v)) / sum(max(u,v)) over the gram union.
func qgramPair(u, v TermVector) series.Score {
	var shared, union int
	for g, cu := range u {
		cv := v[g]
		shared += min(cu, cv)
		union += max(cu, cv)
	}
	for g, cv := range v {
		if _, ok := u[g]; !ok {
			union += cv
		}
	}
	if union == 0 {
		return series.NA()
	}
	return series.Value(float64(shared) / float64(union))
}

// cosinePair computes the cosine of two sparse count vectors.
func cosinePair(u, v TermVector) series.Score {
	var dot, uu, vv int
	for g, cu := range u {
		uu += cu * cu
		dot += cu * v[g]
	}
	for _, cv := range v {
		vv += cv * cv
	}
	den := math.Sqrt(float64(uu)) * math.Sqrt(float64(vv))
	if den == 0 {
		return series.NA()
	}
	return series.Value(float64(dot) / den)
}
