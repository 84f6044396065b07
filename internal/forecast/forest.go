package forecast

import "math/rand"

// regressionForest is a bagged ensemble of regression trees: each tree is
// grown on a bootstrap resample over a random subset of features, and the
// forest predicts the mean of its trees.
type regressionForest struct {
	trees []*treeNode
}

func fitForest(features [][]float64, targets []float64, trees, maxDepth, minLeaf int, rng *rand.Rand) *regressionForest {
	params := treeParams{
		maxDepth:    maxDepth,
		minLeaf:     minLeaf,
		featureFrac: 1.0 / 3.0, // the usual choice for regression forests
	}

	forest := &regressionForest{trees: make([]*treeNode, 0, trees)}
	n := len(features)
	for t := 0; t < trees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		forest.trees = append(forest.trees, growTree(features, targets, sample, 0, params, rng))
	}
	return forest
}

func (f *regressionForest) predict(features []float64) float64 {
	sum := 0.0
	for _, tree := range f.trees {
		sum += tree.predict(features)
	}
	return sum / float64(len(f.trees))
}
