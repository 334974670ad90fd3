package interests

// sampleInterests is the embedded literal table the examples and
// regression tests run on: ten users of a data-science team and the
// topics each one cares about. User 0 and user 9 share three labels
// (Big Data, Hadoop, Java), which pins the well-known cosine value
// 3/√(7·4) ≈ 0.5669 used as a regression anchor.
var sampleInterests = [][]string{
	{"Hadoop", "Big Data", "HBase", "Java", "Spark", "Storm", "Cassandra"},
	{"NoSQL", "MongoDB", "Cassandra", "HBase", "Postgres"},
	{"Python", "scikit-learn", "scipy", "numpy", "statsmodels", "pandas"},
	{"R", "Python", "statistics", "regression", "probability"},
	{"machine learning", "regression", "decision trees", "libsvm"},
	{"Python", "R", "Java", "C++", "Haskell", "programming languages"},
	{"statistics", "probability", "mathematics", "theory"},
	{"machine learning", "scikit-learn", "Mahout", "neural networks"},
	{"neural networks", "deep learning", "Big Data", "artificial intelligence"},
	{"Hadoop", "Java", "MapReduce", "Big Data"},
}

// Sample returns a fresh Dataset built from the embedded ten-user table.
// Each call constructs an independent Dataset; nothing is shared or
// mutated across calls.
func Sample() *Dataset {
	return NewDataset(sampleInterests)
}
