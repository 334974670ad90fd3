// Package interests builds the fixed dataset every kindred recommender
// runs on: users, their interest labels, and the canonical ordering that
// turns label lists into binary membership vectors.
//
// 🚀 What is interests?
//
//	The vectorizer layer of the library:
//	  • Dataset — an immutable snapshot of user → interest-label lists
//	  • Canonical order — the global sorted set of all distinct labels,
//	    computed once at construction and frozen for the Dataset's lifetime
//	  • Vector(u) — the binary membership vector of user u over that order
//	  • Matrix / InterestMatrix — the N×M user view and its M×N transpose
//
// ✨ Guarantees:
//
//   - The canonical order never changes after NewDataset returns; every
//     vector and matrix derived from one Dataset is mutually consistent
//   - All accessors hand out copies; callers cannot corrupt the snapshot
//   - Duplicate labels within one user collapse to a single 1 entry
//   - An empty dataset is legal and yields empty results, not failures
//
// ⚙️ Usage:
//
//	ds := interests.NewDataset([][]string{
//	  {"go", "rust"},
//	  {"go", "python"},
//	})
//	vec, err := ds.Vector(0) // [1 0 1] over [go python rust]
//
// Sample() returns the embedded ten-user data-science-team table used
// throughout the examples and regression tests.
package interests
