// Package recordlinkage provides pairwise string-similarity scoring over
// aligned series of optional strings — the feature-generation primitives
// used by approximate matching and entity/record linkage.
//
// 🚀 What is recordlinkage?
//
//	A focused library that scores element i of series A against element i
//	of series B, one score per pair, preserving input order:
//		• Edit-distance metrics: Jaro, Jaro-Winkler, Levenshtein, Damerau-Levenshtein
//		• Vector-space metrics: q-gram overlap & cosine over character n-grams
//		• Local alignment: Smith-Waterman with affine gap penalties
//		• Iterative longest-common-substring similarity
//
// ✨ Why choose recordlinkage?
//
//   - Aligned-series contract – equal-length inputs validated up front,
//     missing values carried as explicit optionals, never sentinel floats
//   - Deterministic ordering – results land at their input index even when
//     pairs are dispatched across a worker pool
//   - Bounded scores – every normalized metric lands in [0,1]; degenerate
//     denominators become missing scores instead of NaN
//
// Everything is organized under five subpackages:
//
//	series/        — optional String/Score types, equal-length contract, batch runner
//	editdist/      — Jaro, Jaro-Winkler, Levenshtein & Damerau-Levenshtein similarity
//	ngram/         — shared-vocabulary n-gram vectorizer, q-gram & cosine similarity
//	smithwaterman/ — affine-gap local alignment scorer
//	lcs/           — iterative longest-common-substring scorer
//
// Quick example:
//
//	a := series.Strings("MARTHA", "kitten")
//	b := series.Strings("MARHTA", "sitting")
//	scores, err := editdist.Jaro(a, b)
//
//	go get github.com/danakf/recordlinkage
package recordlinkage
