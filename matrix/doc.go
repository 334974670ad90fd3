// Package matrix provides the dense numeric primitives kindred builds on:
// a row-major float64 matrix with safe indexing, cloning and transposition.
//
// 🚀 What is matrix?
//
//	The storage layer under membership and similarity matrices:
//	  • Dense — flat, row-major float64 storage (cache friendly)
//	  • At / Set — bounds-checked element access, errors not panics
//	  • Row — defensive copy of a single row for vector math
//	  • Transpose — the user×interest ⇄ interest×user pivot
//
// ✨ Guarantees:
//
//   - Public indexers return ErrOutOfRange, they never panic
//   - Transposing twice round-trips to an equal matrix
//   - Clone and Row return independent storage
//
// ⚙️ Usage:
//
//	m, err := matrix.NewDense(2, 3)
//	if err != nil { ... }
//	_ = m.Set(0, 2, 1)
//	t := m.Transpose() // 3×2
//
// Complexity: all accessors O(1); Clone, Transpose and String O(r·c).
package matrix
