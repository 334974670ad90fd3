package similarity

import "github.com/katalvlaran/kindred/matrix"

// Pairwise computes the N×N symmetric similarity matrix over the rows of
// m under the given metric: out[i][j] = metric(row i, row j).
//
// The upper triangle (including the diagonal) is evaluated once and
// mirrored into the lower triangle, so out is exactly symmetric by
// construction — never "symmetric up to floating-point noise". The
// diagonal holds each row's self-similarity (1 under cosine for any
// non-zero row, 0 for a zero row by the degenerate policy).
//
// Returns ErrNilMatrix for a nil input and ErrUnknownMetric for an
// unregistered metric; kernel errors propagate unchanged.
// Complexity: O(N²·M) time, O(N²) memory.
func Pairwise(m *matrix.Dense, metric Metric) (*matrix.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	fn, err := Func(metric)
	if err != nil {
		return nil, err
	}

	n := m.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	// Extract rows once; Row copies, so kernels can't alias the matrix.
	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		if rows[i], err = m.Row(i); err != nil {
			return nil, err
		}
	}

	var s float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if s, err = fn(rows[i], rows[j]); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, s); err != nil {
				return nil, err
			}
			if err = out.Set(j, i, s); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
