package similarity

import "math"

// dot returns Σ v[i]·w[i]. Lengths are validated by the callers.
// Complexity: O(len).
func dot(v, w []float64) float64 {
	var s float64
	for i := range v {
		s += v[i] * w[i]
	}

	return s
}

// Cosine returns the cosine similarity dot(v,w) / (|v|·|w|).
//
// For arbitrary real vectors the result lies in [-1,1]; for non-negative
// binary membership vectors it lies in [0,1]. Symmetric: Cosine(v,w) ==
// Cosine(w,v). A vector compared with itself scores 1 whenever its norm
// is non-zero.
//
// Degenerate case: when either operand has zero norm the similarity is
// defined as 0 — an interest-less user is similar to nobody, and the
// division that would otherwise produce NaN never happens.
//
// Returns ErrLengthMismatch when len(v) != len(w).
// Complexity: O(len).
func Cosine(v, w []float64) (float64, error) {
	if len(v) != len(w) {
		return 0, ErrLengthMismatch
	}
	nv, nw := dot(v, v), dot(w, w)
	if nv == 0 || nw == 0 {
		return 0, nil // zero-norm policy, see doc.go
	}

	return dot(v, w) / math.Sqrt(nv*nw), nil
}

// Jaccard returns the set-overlap similarity |v∩w| / |v∪w|, treating
// every nonzero position as a set member. Symmetric; identical non-empty
// sets score 1; disjoint sets score 0; an empty union scores 0.
//
// Returns ErrLengthMismatch when len(v) != len(w).
// Complexity: O(len).
func Jaccard(v, w []float64) (float64, error) {
	if len(v) != len(w) {
		return 0, ErrLengthMismatch
	}
	var inter, union int
	for i := range v {
		a, b := v[i] != 0, w[i] != 0
		if a && b {
			inter++
		}
		if a || b {
			union++
		}
	}
	if union == 0 {
		return 0, nil
	}

	return float64(inter) / float64(union), nil
}

// Pearson returns the linear correlation of v and w: the cosine of the
// mean-centered vectors, in [-1,1]. Symmetric; a vector correlates 1
// with itself whenever its variance is non-zero.
//
// Degenerate case: when either operand has zero variance (constant
// vector, including all-zero) the correlation is defined as 0, matching
// the package's zero-norm policy for cosine.
//
// Returns ErrLengthMismatch when len(v) != len(w).
// Complexity: O(len).
func Pearson(v, w []float64) (float64, error) {
	if len(v) != len(w) {
		return 0, ErrLengthMismatch
	}
	n := len(v)
	if n == 0 {
		return 0, nil
	}

	var mv, mw float64
	for i := 0; i < n; i++ {
		mv += v[i]
		mw += w[i]
	}
	mv /= float64(n)
	mw /= float64(n)

	var cov, varV, varW float64
	for i := 0; i < n; i++ {
		dv, dw := v[i]-mv, w[i]-mw
		cov += dv * dw
		varV += dv * dv
		varW += dw * dw
	}
	if varV == 0 || varW == 0 {
		return 0, nil // zero-variance policy, see doc.go
	}

	return cov / math.Sqrt(varV*varW), nil
}
