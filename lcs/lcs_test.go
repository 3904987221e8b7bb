package lcs_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danakf/recordlinkage/lcs"
	"github.com/danakf/recordlinkage/series"
)

// one returns an unwrapper for single-pair results, so a scorer invocation
// can sit alone inside the call: one(t)(lcs.Similarity(a, b, opts)).
func one(t *testing.T) func([]series.Score, error) series.Score {
	return func(scores []series.Score, err error) series.Score {
		t.Helper()
		require.NoError(t, err)
		require.Len(t, scores, 1)
		return scores[0]
	}
}

// TestSimilarity_SingleExtraction pins the ABCDE/ABCXE case: both orderings
// extract ABC (length 3), the leftover E run is below MinLen and discarded.
func TestSimilarity_SingleExtraction(t *testing.T) {
	a := series.Strings("ABCDE")
	b := series.Strings("ABCXE")

	for norm, want := range map[lcs.Norm]float64{
		lcs.NormDice:    2 * 3.0 / (5 + 5),
		lcs.NormOverlap: 3.0 / 5,
		lcs.NormJaccard: 3.0 / (5 + 5 - 3),
	} {
		opts := lcs.DefaultOptions()
		opts.Norm = norm
		v, ok := one(t)(lcs.Similarity(a, b, &opts)).Float64()
		require.True(t, ok, norm)
		assert.InDelta(t, want, v, 1e-9, "norm %s", norm)
	}
}

// TestSimilarity_IterativeExtraction verifies repeated excision: swapped
// halves are fully recovered over two iterations and score 1 under dice.
func TestSimilarity_IterativeExtraction(t *testing.T) {
	v, ok := one(t)(lcs.Similarity(series.Strings("ABCDEF"), series.Strings("DEFABC"), nil)).Float64()
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-9, "two 3-char extractions cover both strings")
}

// TestSimilarity_MinLenOne allows single-character substrings to count.
func TestSimilarity_MinLenOne(t *testing.T) {
	opts := lcs.DefaultOptions()
	opts.MinLen = 1
	v, ok := one(t)(lcs.Similarity(series.Strings("AB"), series.Strings("BA"), &opts)).Float64()
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-9, "both characters are extractable one at a time")
}

// TestSimilarity_BelowMinLen verifies pairs whose shorter string is under
// MinLen score 0 without running the loop — including the both-empty pair.
func TestSimilarity_BelowMinLen(t *testing.T) {
	scores, err := lcs.Similarity(
		series.Strings("A", "", "ABC"),
		series.Strings("ABC", "", "X"), nil)
	require.NoError(t, err)
	for i, s := range scores {
		v, ok := s.Float64()
		require.True(t, ok, "pair %d", i)
		assert.Equal(t, 0.0, v, "pair %d must score 0, not NA or a panic", i)
	}
}

// TestSimilarity_MissingPropagation verifies NA in, NA out.
func TestSimilarity_MissingPropagation(t *testing.T) {
	scores, err := lcs.Similarity(
		[]series.String{series.None(), series.Some("ABCDE")},
		[]series.String{series.Some("ABCDE"), series.Some("ABCXE")}, nil)
	require.NoError(t, err)
	assert.True(t, scores[0].Missing())
	assert.False(t, scores[1].Missing())
}

// TestSimilarity_UnrecognizedNorm verifies the non-fatal fallback: the
// score matches dice and a warning lands on the configured logger.
func TestSimilarity_UnrecognizedNorm(t *testing.T) {
	var buf bytes.Buffer
	opts := lcs.Options{
		Norm:   "euclidean",
		MinLen: 2,
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
	}

	v, ok := one(t)(lcs.Similarity(series.Strings("ABCDE"), series.Strings("ABCXE"), &opts)).Float64()
	require.True(t, ok)
	assert.InDelta(t, 0.6, v, 1e-9, "fallback must score as dice")
	assert.Contains(t, buf.String(), "defaulting to dice")
	assert.Contains(t, buf.String(), "euclidean")
}

// TestSimilarity_BadMinLen verifies MinLen validation.
func TestSimilarity_BadMinLen(t *testing.T) {
	opts := lcs.DefaultOptions()
	opts.MinLen = 0
	_, err := lcs.Similarity(series.Strings("a"), series.Strings("a"), &opts)
	assert.ErrorIs(t, err, lcs.ErrBadMinLen)
}

// TestSimilarity_SymmetryAndBounds checks pair symmetry and [0,1] bounds on
// assorted present pairs.
func TestSimilarity_SymmetryAndBounds(t *testing.T) {
	a := series.Strings("de la cruz", "o'neill", "record linkage")
	b := series.Strings("delacruz", "oneil", "linkage records")

	ab, err := lcs.Similarity(a, b, nil)
	require.NoError(t, err)
	ba, err := lcs.Similarity(b, a, nil)
	require.NoError(t, err)

	for i := range ab {
		v, ok := ab[i].Float64()
		require.True(t, ok, "pair %d", i)
		assert.GreaterOrEqual(t, v, 0.0, "pair %d", i)
		assert.LessOrEqual(t, v, 1.0, "pair %d", i)
		assert.Equal(t, ab[i], ba[i], "pair %d must be symmetric", i)
	}
}

// TestSimilarity_LengthMismatch ensures unequal series error out.
func TestSimilarity_LengthMismatch(t *testing.T) {
	_, err := lcs.Similarity(series.Strings("a"), series.Strings("a", "b"), nil)
	assert.ErrorIs(t, err, series.ErrLengthMismatch)
}

// TestSimilarity_EmptyInput verifies the zero-length degenerate case.
func TestSimilarity_EmptyInput(t *testing.T) {
	scores, err := lcs.Similarity(nil, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, scores)
	assert.Len(t, scores, 0)
}
