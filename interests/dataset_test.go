package interests_test

import (
	"testing"

	"github.com/katalvlaran/kindred/interests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDataset_CanonicalOrder verifies that the canonical label list is
// the sorted distinct set of every label seen across all users.
func TestNewDataset_CanonicalOrder(t *testing.T) {
	ds := interests.NewDataset([][]string{
		{"go", "rust"},
		{"go", "python"},
		{"python"},
	})

	assert.Equal(t, []string{"go", "python", "rust"}, ds.Interests(), "labels must be sorted and deduplicated")
	assert.Equal(t, 3, ds.Users())
	assert.Equal(t, 3, ds.NumInterests())
}

// TestDataset_Vector verifies binary membership over the canonical order
// and that duplicate labels within one user collapse to a single 1.
func TestDataset_Vector(t *testing.T) {
	ds := interests.NewDataset([][]string{
		{"go", "rust", "go"}, // duplicate "go"
		{"python"},
	})

	vec, err := ds.Vector(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, vec, "membership stays binary despite duplicates")

	vec, err = ds.Vector(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, vec)
}

// TestDataset_OutOfRange verifies explicit out-of-bounds sentinels
// instead of silent empty results.
func TestDataset_OutOfRange(t *testing.T) {
	ds := interests.NewDataset([][]string{{"go"}})

	_, err := ds.Vector(1)
	assert.ErrorIs(t, err, interests.ErrUserOutOfRange)

	_, err = ds.Vector(-1)
	assert.ErrorIs(t, err, interests.ErrUserOutOfRange)

	_, err = ds.Held(3)
	assert.ErrorIs(t, err, interests.ErrUserOutOfRange)

	_, err = ds.Label(1)
	assert.ErrorIs(t, err, interests.ErrInterestOutOfRange)
}

// TestDataset_Empty verifies that an empty dataset is legal: scalar
// accessors report empty results and only matrix constructors error.
func TestDataset_Empty(t *testing.T) {
	ds := interests.NewDataset(nil)

	assert.Equal(t, 0, ds.Users())
	assert.Equal(t, 0, ds.NumInterests())
	assert.Empty(t, ds.Interests())

	_, err := ds.Matrix()
	assert.ErrorIs(t, err, interests.ErrEmptyDataset)

	_, err = ds.InterestMatrix()
	assert.ErrorIs(t, err, interests.ErrEmptyDataset)
}

// TestDataset_MatrixTransposeRoundTrip verifies that InterestMatrix is
// exactly the transpose of Matrix and that transposing twice round-trips.
func TestDataset_MatrixTransposeRoundTrip(t *testing.T) {
	ds := interests.Sample()

	m, err := ds.Matrix()
	require.NoError(t, err)
	im, err := ds.InterestMatrix()
	require.NoError(t, err)

	assert.Equal(t, ds.Users(), m.Rows())
	assert.Equal(t, ds.NumInterests(), m.Cols())
	assert.Equal(t, ds.NumInterests(), im.Rows())
	assert.Equal(t, ds.Users(), im.Cols())

	assert.True(t, m.Equal(im.Transpose()), "transposing the item view must recover the user view")
}

// TestDataset_DefensiveCopies verifies that neither the constructor input
// nor accessor results alias internal state.
func TestDataset_DefensiveCopies(t *testing.T) {
	input := [][]string{{"go", "rust"}}
	ds := interests.NewDataset(input)

	input[0][0] = "zig" // mutate the caller's table after construction
	held, err := ds.Held(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, held, "dataset must snapshot its input")

	held[0] = "zig" // mutate the accessor result
	again, err := ds.Held(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, again, "accessors must hand out copies")
}

// TestSample_Shape pins the embedded table's shape: ten users and the
// 33 distinct labels they span, starting at "Big Data" in canonical order.
func TestSample_Shape(t *testing.T) {
	ds := interests.Sample()

	assert.Equal(t, 10, ds.Users())
	assert.Equal(t, 33, ds.NumInterests())
	assert.Equal(t, "Big Data", ds.Interests()[0])

	i, ok := ds.Index("MapReduce")
	require.True(t, ok, "MapReduce must be a known label")
	label, err := ds.Label(i)
	require.NoError(t, err)
	assert.Equal(t, "MapReduce", label)
}
