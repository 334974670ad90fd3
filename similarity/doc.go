// Package similarity provides the vector similarity metrics kindred's
// recommenders rank with, plus a builder for pairwise similarity matrices.
//
// 🚀 What is similarity?
//
//	Three classic collaborative-filtering metrics over []float64:
//	  • Cosine  — dot(v,w) / (|v|·|w|), the default; in [0,1] for binary
//	    membership vectors, [-1,1] in general
//	  • Jaccard — |v∩w| / |v∪w| over binary vectors (nonzero = member)
//	  • Pearson — centered cosine (correlation), in [-1,1]
//
//	and Pairwise, which turns an N×M row matrix into the N×N symmetric
//	matrix of all row-pair similarities (diagonal = self-similarity).
//
// ✨ Degenerate-input policy (explicit, tested):
//
//   - Cosine: similarity is 0 when either operand has zero norm —
//     "no interests" means "no similarity", never NaN
//   - Jaccard: 0 on an empty union
//   - Pearson: 0 when either operand has zero variance
//
// ⚙️ Usage:
//
//	s, err := similarity.Cosine(v, w)          // one pair
//	m, err := similarity.Pairwise(rows, similarity.MetricCosine)
//
// Errors: ErrLengthMismatch for unequal vector lengths,
// ErrUnknownMetric for an unregistered Metric. Pairwise computes the
// upper triangle once and mirrors it, so the result is exactly symmetric.
//
// Complexity: each metric is O(len); Pairwise is O(N²·M).
package similarity
