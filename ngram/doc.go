// Package ngram scores aligned string series in a shared character n-gram
// vector space: q-gram (generalized Jaccard) overlap and cosine similarity.
//
// 🚀 What is ngram?
//
//	Both scorers vectorize the whole batch before any pair is scored:
//	  1. Missing values become empty strings (no grams, not NA).
//	  2. Every string is normalized — diacritics stripped, lowercased,
//	     whitespace folded — then cut into character n-grams. With
//	     WordBoundary, words are padded so edge grams are represented.
//	  3. One Vocabulary is fit across the union of both series; every
//	     string becomes a sparse TermVector of gram counts in that space.
//	  4. Pairs are scored vector against vector.
//
// The batch-global vocabulary is the one synchronization point in the
// library: extraction must see every string before the first pair scores.
// The vocabulary is order-insensitive in effect — swapping the two series
// yields identical scores.
//
// Edge semantics:
//
//   - Unequal series lengths → series.ErrLengthMismatch.
//   - Zero-length input → empty result, not an error and not all-NA.
//   - Both sides of a pair empty → NA (zero denominator, never divided).
//
// Example (bigrams, no word boundary):
//
//	opts := &ngram.Options{MinN: 2, MaxN: 2}
//	scores, err := ngram.QGram(series.Strings("abc"), series.Strings("abd"), opts)
//	// vocabulary {ab, bc, bd}; scores[0] ≈ 1/3
package ngram
