// Package editdist scores aligned string series with edit-distance based
// similarity metrics: Jaro, Jaro-Winkler, Levenshtein and
// Damerau-Levenshtein.
//
// 🚀 What is editdist?
//
//	Character-level similarity for short identifying fields (names,
//	addresses, codes). The distance primitives come from well-established
//	collaborator libraries; this package contributes the series contract,
//	missing-value propagation and length normalization:
//	  • Jaro / Jaro-Winkler — primitive value passed through (already in [0,1])
//	  • Levenshtein / Damerau-Levenshtein — 1 - distance/max(len a, len b)
//
// Edge semantics:
//
//   - Either side of a pair missing → the pair's score is NA.
//   - Both strings empty under length normalization → NA (the 0/0 division
//     is never attempted).
//   - Unequal series lengths → series.ErrLengthMismatch before any work.
//
// Example:
//
//	scores, err := editdist.Levenshtein(
//	    series.Strings("kitten"),
//	    series.Strings("sitting"),
//	)
//	// scores[0] ≈ 0.571  (1 - 3/7)
package editdist
