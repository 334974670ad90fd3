package recommend

import (
	"sort"

	"github.com/katalvlaran/kindred/interests"
	"github.com/katalvlaran/kindred/matrix"
	"github.com/katalvlaran/kindred/similarity"
)

// Recommender owns the two similarity matrices every query runs against.
// Both are computed exactly once, in New, from one frozen Dataset; the
// queries themselves are pure reads and safe to repeat in any order.
type Recommender struct {
	ds       *interests.Dataset
	defaults Options
	userSim  *matrix.Dense // N×N user similarity; nil when the dataset is empty
	itemSim  *matrix.Dense // M×M interest similarity; nil when the dataset is empty
}

// New builds a Recommender over ds, precomputing the user×user and
// interest×interest similarity matrices under the configured metric
// (cosine unless WithMetric says otherwise).
//
// A dataset with no users or no labels is legal: queries on in-range
// indices return empty results. Only a nil dataset is an error.
//
// Returns ErrNilDataset, ErrOptionViolation, or a similarity error.
// Complexity: O(N²·M + M²·N) time, O(N² + M²) memory.
func New(ds *interests.Dataset, opts ...Option) (*Recommender, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	o, err := gatherOptions(DefaultOptions(), opts...)
	if err != nil {
		return nil, err
	}

	r := &Recommender{ds: ds, defaults: o}
	if ds.Users() == 0 || ds.NumInterests() == 0 {
		return r, nil // nothing to correlate; queries stay empty
	}

	m, err := ds.Matrix()
	if err != nil {
		return nil, err
	}
	if r.userSim, err = similarity.Pairwise(m, o.Metric); err != nil {
		return nil, err
	}
	if r.itemSim, err = similarity.Pairwise(m.Transpose(), o.Metric); err != nil {
		return nil, err
	}

	return r, nil
}

// Dataset returns the dataset this Recommender was built over.
func (r *Recommender) Dataset() *interests.Dataset { return r.ds }

// SimilarUsers returns every other user whose similarity to u is > 0,
// sorted by descending similarity; ties keep ascending original index
// (stable sort over an index-ordered scan). The queried user is never
// part of the result.
//
// Returns ErrUserOutOfRange when u is outside [0, Users).
// Complexity: O(N log N).
func (r *Recommender) SimilarUsers(u int) ([]Neighbor, error) {
	if u < 0 || u >= r.ds.Users() {
		return nil, ErrUserOutOfRange
	}
	if r.userSim == nil {
		return nil, nil // dataset without labels: nobody resembles anybody
	}

	var out []Neighbor
	var s float64
	var err error
	for v := 0; v < r.userSim.Cols(); v++ {
		if v == u {
			continue // the diagonal is self-similarity, excluded by contract
		}
		if s, err = r.userSim.At(u, v); err != nil {
			return nil, err
		}
		if s > 0 {
			out = append(out, Neighbor{User: v, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out, nil
}

// SimilarInterests returns every other label whose item-view similarity
// to the label at canonical position i is > 0, under the same descending
// order and ascending-index tie-break as SimilarUsers.
//
// Returns ErrInterestOutOfRange when i is outside [0, NumInterests).
// Complexity: O(M log M).
func (r *Recommender) SimilarInterests(i int) ([]Suggestion, error) {
	if i < 0 || i >= r.ds.NumInterests() {
		return nil, ErrInterestOutOfRange
	}
	if r.itemSim == nil {
		return nil, nil
	}

	var out []Suggestion
	var s float64
	var label string
	var err error
	for j := 0; j < r.itemSim.Cols(); j++ {
		if j == i {
			continue
		}
		if s, err = r.itemSim.At(i, j); err != nil {
			return nil, err
		}
		if s <= 0 {
			continue
		}
		if label, err = r.ds.Label(j); err != nil {
			return nil, err
		}
		out = append(out, Suggestion{Interest: label, Score: s})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })

	return out, nil
}

// UserBased suggests labels for user u by walking u's similar users in
// descending-similarity order and adding each neighbor's similarity to
// every label that neighbor holds. Labels u already holds are filtered
// from the final ranking unless WithCurrentInterests is supplied.
//
// Ties keep the order candidates were first encountered during the scan.
//
// Returns ErrUserOutOfRange or ErrOptionViolation.
// Complexity: O(N·L + C log C) where C is the candidate count.
func (r *Recommender) UserBased(u int, opts ...Option) ([]Suggestion, error) {
	o, err := gatherOptions(r.defaults, opts...)
	if err != nil {
		return nil, err
	}
	neighbors, err := r.SimilarUsers(u)
	if err != nil {
		return nil, err
	}

	// Accumulate neighbor similarity per label, preserving the order in
	// which candidates first appear (neighbors are already descending).
	scores := make(map[string]float64)
	var order []string
	var labels []string
	for _, nb := range neighbors {
		if labels, err = r.ds.Held(nb.User); err != nil {
			return nil, err
		}
		for _, label := range labels {
			if _, seen := scores[label]; !seen {
				order = append(order, label)
			}
			scores[label] += nb.Score
		}
	}

	return r.rank(u, scores, order, o)
}

// ItemBased suggests labels for user u by walking every label u holds
// (in canonical order) and adding, for each, the item-view similarity of
// every related label. A label related to two of u's held labels
// accumulates both contributions. Filtering, ordering and options match
// UserBased exactly.
//
// Returns ErrUserOutOfRange or ErrOptionViolation.
// Complexity: O(L·M log M + C log C).
func (r *Recommender) ItemBased(u int, opts ...Option) ([]Suggestion, error) {
	o, err := gatherOptions(r.defaults, opts...)
	if err != nil {
		return nil, err
	}
	vec, err := r.ds.Vector(u)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64)
	var order []string
	var related []Suggestion
	for i, held := range vec {
		if held == 0 {
			continue
		}
		if related, err = r.SimilarInterests(i); err != nil {
			return nil, err
		}
		for _, rel := range related {
			if _, seen := scores[rel.Interest]; !seen {
				order = append(order, rel.Interest)
			}
			scores[rel.Interest] += rel.Score
		}
	}

	return r.rank(u, scores, order, o)
}

// rank turns accumulated scores into the final ranked list: stable
// descending sort over first-encountered order, held-label filtering,
// OnScore observation, then MaxResults truncation.
func (r *Recommender) rank(u int, scores map[string]float64, order []string, o Options) ([]Suggestion, error) {
	ranked := make([]Suggestion, 0, len(order))
	for _, label := range order {
		ranked = append(ranked, Suggestion{Interest: label, Score: scores[label]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	if !o.CurrentInterests {
		held, err := r.ds.Held(u)
		if err != nil {
			return nil, err
		}
		owned := make(map[string]bool, len(held))
		for _, label := range held {
			owned[label] = true
		}
		kept := ranked[:0]
		for _, s := range ranked {
			if !owned[s.Interest] {
				kept = append(kept, s)
			}
		}
		ranked = kept
	}

	for _, s := range ranked {
		o.OnScore(s.Interest, s.Score)
	}
	if o.MaxResults > 0 && len(ranked) > o.MaxResults {
		ranked = ranked[:o.MaxResults]
	}

	return ranked, nil
}
