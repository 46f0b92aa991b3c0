package stats

// AlgorithmSummary describes every metric for one algorithm.
type AlgorithmSummary struct {
	Algorithm     string   `yaml:"algorithm"`
	NodesExplored Describe `yaml:"nodes_explored"`
	PathLength    Describe `yaml:"path_length"`
	TimeMS        Describe `yaml:"time_ms"`
}

// Summary returns mean, std, min and max of each metric per algorithm,
// in order of first appearance.
func (a *Analyzer) Summary() []AlgorithmSummary {
	out := make([]AlgorithmSummary, 0, len(a.algorithms))
	for _, alg := range a.algorithms {
		out = append(out, AlgorithmSummary{
			Algorithm:     alg,
			NodesExplored: describe(a.values(alg, NodesExplored)),
			PathLength:    describe(a.values(alg, PathLength)),
			TimeMS:        describe(a.values(alg, TimeMS)),
		})
	}
	return out
}
