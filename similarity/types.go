package similarity

// Metric selects which similarity kernel Pairwise (and the recommenders)
// evaluate over vector pairs.
//
//   - MetricCosine  — normalized dot product; the default everywhere.
//   - MetricJaccard — set overlap over binary vectors.
//   - MetricPearson — centered cosine (linear correlation).
type Metric int

const (
	// MetricCosine is the default metric: dot(v,w) / (|v|·|w|).
	MetricCosine Metric = iota

	// MetricJaccard treats nonzero positions as set members: |∩| / |∪|.
	MetricJaccard

	// MetricPearson centers both vectors on their means before cosine.
	MetricPearson
)

// String implements fmt.Stringer for diagnostics and test output.
func (m Metric) String() string {
	switch m {
	case MetricCosine:
		return "cosine"
	case MetricJaccard:
		return "jaccard"
	case MetricPearson:
		return "pearson"
	default:
		return "unknown"
	}
}

// Func returns the kernel implementing m, or ErrUnknownMetric.
// All kernels share the signature (v, w) → (score, error) and the
// package's degenerate-input policy (see doc.go).
func Func(m Metric) (func(v, w []float64) (float64, error), error) {
	switch m {
	case MetricCosine:
		return Cosine, nil
	case MetricJaccard:
		return Jaccard, nil
	case MetricPearson:
		return Pearson, nil
	default:
		return nil, ErrUnknownMetric
	}
}
