// Package smithwaterman scores aligned string series with an affine-gap
// Smith-Waterman local alignment.
//
// 🚀 What is smithwaterman?
//
//	Local alignment finds the best-matching contiguous region of two
//	strings, so it tolerates insertions, deletions and rearranged context
//	better than whole-string edit distance. The affine gap model charges
//	GapStart to open a gap and the (typically cheaper) GapContinue to
//	extend one, which favours one long gap over many short ones.
//
// Algorithm outline:
//  1. Fill an (n+1)×(m+1) DP matrix; cell = max(0, diagonal, gap-left,
//     gap-above). Gap moves consult the predecessor cell's traceback tag
//     set to decide between GapStart and GapContinue; ties keep every
//     qualifying tag.
//  2. The raw result is the highest value ever written to any cell — no
//     alignment path is reconstructed.
//  3. Normalize: raw / (lengthStat(len a, len b) · Match), lengthStat per
//     Norm (min, max or mean).
//
// Complexity:
//
//	– Time:   O(n·m) per pair
//	– Memory: O(n·m) per pair, released when the pair completes
//
// Edge semantics: either string empty → 0; missing value → NA; unequal
// series lengths → series.ErrLengthMismatch; invalid weights or norm →
// ErrBadWeights / ErrBadNorm before any alignment runs.
package smithwaterman
