// Package recommend turns an interests.Dataset into ranked suggestions:
// who resembles a user, which labels resemble a label, and what a user
// should look at next — user-based and item-based collaborative filtering
// with explicit, stable tie-breaking.
//
// 🚀 What is recommend?
//
//	A Recommender precomputes two similarity matrices once, at
//	construction, and owns them (no ambient globals):
//	  • user×user     — over binary membership vectors
//	  • interest×interest — over the transposed (item) view
//
//	Four stateless queries run against those frozen matrices:
//	  • SimilarUsers(u)     — every other user with similarity > 0,
//	    descending, ties by ascending original index
//	  • SimilarInterests(i) — the same contract over the item view
//	  • UserBased(u)        — per candidate label, the summed similarity
//	    of every similar user holding it
//	  • ItemBased(u)        — per candidate label, the summed item-item
//	    similarity against every label u holds (additive across them)
//
// ✨ Determinism:
//
//	Rankings sort by descending score with an explicitly stable sort.
//	Neighbor ties keep ascending index order; suggestion ties keep the
//	order candidates were first encountered while scanning neighbors in
//	descending-similarity order. Re-running a query never reshuffles ties.
//
// ⚙️ Usage:
//
//	rec, err := recommend.New(interests.Sample())
//	if err != nil { ... }
//	sugs, err := rec.UserBased(0, recommend.WithMaxResults(5))
//
// Options (functional, bfs-style): WithMetric selects the similarity
// kernel at construction; WithCurrentInterests keeps labels the user
// already holds; WithMaxResults truncates the ranked list; WithOnScore
// observes every ranked candidate. Invalid options surface as
// ErrOptionViolation when the query runs.
//
// Failure semantics: out-of-range indices return ErrUserOutOfRange /
// ErrInterestOutOfRange; an empty dataset yields empty results, not
// errors, for any index that is in range.
package recommend
