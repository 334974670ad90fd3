package interests

import (
	"sort"

	"github.com/katalvlaran/kindred/matrix"
)

// Interest is an opaque label a user can be associated with.
// Distinctness is decided by exact string equality.
type Interest = string

// Dataset is an immutable snapshot of users and their interest labels.
// The canonical interest ordering (sorted set of all distinct labels) is
// computed exactly once in NewDataset and reused for every vector and
// matrix derived from this Dataset.
type Dataset struct {
	users  [][]string     // original per-user label lists (defensive copies)
	labels []string       // canonical sorted distinct labels
	index  map[string]int // label → position in labels
}

// NewDataset builds a Dataset from a user → interest-label table.
// The input is copied; later mutation of users does not affect the Dataset.
// Duplicate labels within one user are tolerated (membership stays binary).
// An empty or nil table is legal and produces an empty Dataset.
// Complexity: O(U·L + M log M) where M is the number of distinct labels.
func NewDataset(users [][]string) *Dataset {
	ds := &Dataset{
		users: make([][]string, len(users)),
		index: make(map[string]int),
	}

	// Snapshot the input and collect the distinct label set.
	var u int
	var label string
	for u = range users {
		ds.users[u] = append([]string(nil), users[u]...)
		for _, label = range users[u] {
			if _, ok := ds.index[label]; !ok {
				ds.index[label] = 0 // placeholder, fixed after sorting
				ds.labels = append(ds.labels, label)
			}
		}
	}

	// Freeze the canonical order.
	sort.Strings(ds.labels)
	for i, l := range ds.labels {
		ds.index[l] = i
	}

	return ds
}

// Users returns the number of users in the dataset. Complexity: O(1).
func (ds *Dataset) Users() int { return len(ds.users) }

// NumInterests returns the number of distinct interest labels.
// Complexity: O(1).
func (ds *Dataset) NumInterests() int { return len(ds.labels) }

// Interests returns a copy of the canonical sorted label list.
// Complexity: O(M).
func (ds *Dataset) Interests() []string {
	return append([]string(nil), ds.labels...)
}

// Index returns the canonical position of label and whether it is known.
// Complexity: O(1).
func (ds *Dataset) Index(label string) (int, bool) {
	i, ok := ds.index[label]

	return i, ok
}

// Label returns the interest label at canonical position i.
// Complexity: O(1).
func (ds *Dataset) Label(i int) (string, error) {
	if i < 0 || i >= len(ds.labels) {
		return "", ErrInterestOutOfRange
	}

	return ds.labels[i], nil
}

// Held returns a copy of user u's original interest list, in the order
// the user declared it (not canonical order).
// Complexity: O(L).
func (ds *Dataset) Held(u int) ([]string, error) {
	if u < 0 || u >= len(ds.users) {
		return nil, ErrUserOutOfRange
	}

	return append([]string(nil), ds.users[u]...), nil
}

// Vector returns user u's binary membership vector over the canonical
// order: position i is 1 iff the canonical label at i appears in u's list.
// Pure: same inputs always produce the same vector.
// Complexity: O(M + L).
func (ds *Dataset) Vector(u int) ([]float64, error) {
	if u < 0 || u >= len(ds.users) {
		return nil, ErrUserOutOfRange
	}
	vec := make([]float64, len(ds.labels))
	for _, label := range ds.users[u] {
		vec[ds.index[label]] = 1 // duplicates collapse, membership is binary
	}

	return vec, nil
}

// Matrix returns the N×M user×interest membership matrix, one row per
// user in input order, one column per canonical label.
// Returns ErrEmptyDataset when there are no users or no labels.
// Complexity: O(N·M).
func (ds *Dataset) Matrix() (*matrix.Dense, error) {
	if len(ds.users) == 0 || len(ds.labels) == 0 {
		return nil, ErrEmptyDataset
	}
	m, err := matrix.NewDense(len(ds.users), len(ds.labels))
	if err != nil {
		return nil, err
	}
	for u := range ds.users {
		vec, _ := ds.Vector(u) // u is in range by construction
		if err = m.SetRow(u, vec); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// InterestMatrix returns the M×N interest×user membership matrix — the
// transpose of Matrix, one row per canonical label. This is the item
// view the item-based recommender ranks over.
// Complexity: O(N·M).
func (ds *Dataset) InterestMatrix() (*matrix.Dense, error) {
	m, err := ds.Matrix()
	if err != nil {
		return nil, err
	}

	return m.Transpose(), nil
}
