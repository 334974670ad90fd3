package similarity_test

import (
	"testing"

	"github.com/katalvlaran/kindred/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCosine_Symmetry verifies sim(v,w) == sim(w,v) exactly.
func TestCosine_Symmetry(t *testing.T) {
	v := []float64{1, 0, 1, 1}
	w := []float64{0, 1, 1, 0}

	vw, err := similarity.Cosine(v, w)
	require.NoError(t, err)
	wv, err := similarity.Cosine(w, v)
	require.NoError(t, err)
	assert.Equal(t, vw, wv, "cosine must be symmetric")
}

// TestCosine_SelfSimilarity verifies that any non-zero vector scores 1
// against itself.
func TestCosine_SelfSimilarity(t *testing.T) {
	v := []float64{3, 0, 4}

	s, err := similarity.Cosine(v, v)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12, "self-similarity of a non-zero vector is 1")
}

// TestCosine_Disjoint verifies that binary vectors sharing no set
// positions score exactly 0.
func TestCosine_Disjoint(t *testing.T) {
	s, err := similarity.Cosine([]float64{1, 1, 0, 0}, []float64{0, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "disjoint binary vectors have zero similarity")
}

// TestCosine_ZeroNormPolicy verifies the documented degenerate policy:
// similarity is 0 (not NaN) when either operand has zero norm.
func TestCosine_ZeroNormPolicy(t *testing.T) {
	zero := []float64{0, 0, 0}
	v := []float64{1, 0, 1}

	s, err := similarity.Cosine(zero, v)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "zero-norm operand must score 0")

	s, err = similarity.Cosine(zero, zero)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "two zero vectors must score 0, not NaN")
}

// TestCosine_LengthMismatch verifies the explicit error for unequal lengths.
func TestCosine_LengthMismatch(t *testing.T) {
	_, err := similarity.Cosine([]float64{1}, []float64{1, 0})
	assert.ErrorIs(t, err, similarity.ErrLengthMismatch)
}

// TestCosine_KnownValue pins a hand-computed value: two binary vectors
// sharing one of two set positions each score 1/2.
func TestCosine_KnownValue(t *testing.T) {
	s, err := similarity.Cosine([]float64{1, 0, 1}, []float64{1, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s, 1e-12, "overlap 1 with norms √2·√2 gives 1/2")
}

// TestJaccard_Basics covers identity, disjointness, a hand-computed
// overlap and the empty-union policy.
func TestJaccard_Basics(t *testing.T) {
	v := []float64{1, 0, 1}
	w := []float64{1, 1, 0}

	s, err := similarity.Jaccard(v, v)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s, "identical non-empty sets score 1")

	s, err = similarity.Jaccard(v, w)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, s, 1e-12, "|∩|=1, |∪|=3")

	s, err = similarity.Jaccard([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "disjoint sets score 0")

	s, err = similarity.Jaccard([]float64{0, 0}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "empty union scores 0")

	_, err = similarity.Jaccard([]float64{1}, []float64{1, 0})
	assert.ErrorIs(t, err, similarity.ErrLengthMismatch)
}

// TestPearson_Basics covers self-correlation, a hand-computed value,
// symmetry and the zero-variance policy.
func TestPearson_Basics(t *testing.T) {
	v := []float64{1, 0, 1}
	w := []float64{1, 1, 0}

	s, err := similarity.Pearson(v, v)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12, "a varying vector correlates 1 with itself")

	s, err = similarity.Pearson(v, w)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, s, 1e-12, "hand-computed centered cosine")

	sw, err := similarity.Pearson(w, v)
	require.NoError(t, err)
	assert.Equal(t, s, sw, "pearson must be symmetric")

	s, err = similarity.Pearson([]float64{2, 2, 2}, v)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "constant vector has zero variance, scores 0")

	_, err = similarity.Pearson([]float64{1}, []float64{1, 0})
	assert.ErrorIs(t, err, similarity.ErrLengthMismatch)
}

// TestFunc_Metrics verifies the Metric → kernel registry and its
// ErrUnknownMetric guard.
func TestFunc_Metrics(t *testing.T) {
	for _, m := range []similarity.Metric{
		similarity.MetricCosine,
		similarity.MetricJaccard,
		similarity.MetricPearson,
	} {
		fn, err := similarity.Func(m)
		require.NoError(t, err, "metric %s must be registered", m)
		require.NotNil(t, fn)
	}

	_, err := similarity.Func(similarity.Metric(42))
	assert.ErrorIs(t, err, similarity.ErrUnknownMetric)
	assert.Equal(t, "unknown", similarity.Metric(42).String())
}
