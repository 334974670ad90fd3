// Package kindred is your in-memory playground for collaborative
// filtering — from membership vectors and similarity matrices to ranked
// user-based and item-based suggestions.
//
// 🚀 What is kindred?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Dataset primitives: users, interest labels, canonical ordering,
//		  binary membership vectors
//		• Dense matrices: row-major float64 storage with safe indexing
//		  and transposition
//		• Similarity metrics: cosine (default), Jaccard, Pearson
//		• Recommenders: user-based and item-based neighborhood ranking
//		  with explicit, stable tie-breaking
//
// ✨ Why choose kindred?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable sorts, frozen canonical orderings, no
//     ambient global state
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – pick a metric, add observation hooks (OnScore)
//
// Under the hood, everything is organized under four subpackages:
//
//	interests/  — dataset construction, canonical interest ordering,
//	              membership vectors & matrices
//	matrix/     — dense row-major float64 matrices (At/Set/Transpose)
//	similarity/ — cosine, Jaccard, Pearson + pairwise matrix builders
//	recommend/  — neighbor queries and ranked suggestion lists
//
// Quick sketch:
//
//	users × interests  ──transpose──▶  interests × users
//	       │                                  │
//	    Pairwise                           Pairwise
//	       ▼                                  ▼
//	 user similarity                 interest similarity
//	       │                                  │
//	   UserBased(u)                      ItemBased(u)
//
// Dive into examples/ for runnable scenarios and each package's
// example_test.go for hand-checkable outputs.
//
//	go get github.com/katalvlaran/kindred
package kindred
