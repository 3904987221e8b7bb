// Package lcs scores aligned string series with iterative
// longest-common-substring similarity.
//
// 🚀 What is lcs?
//
//	Rather than measuring a single longest run, the scorer extracts the
//	longest common substring, splices it out of both strings, and repeats
//	until no substring of at least MinLen remains. The accumulated length
//	captures how much of the two strings is shared in contiguous chunks,
//	wherever those chunks sit — well suited to swapped name parts and
//	reordered address fields.
//
// Because each excision changes what remains discoverable, the extraction
// runs in both pair orderings and the final score is the mean of the two
// normalized totals (overlap, jaccard or dice).
//
// Complexity:
//
//	– Time:   O(k·n·m) per pair, k = number of extracted substrings
//	– Memory: O(n·m) per primitive invocation, released immediately
//
// Edge semantics: missing value → NA; shorter string below MinLen → 0
// without looping; unequal series lengths → series.ErrLengthMismatch;
// MinLen < 1 → ErrBadMinLen; unrecognized Norm → warn and use dice.
package lcs
