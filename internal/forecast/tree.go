package forecast

import (
	"math"
	"math/rand"
)

// regression tree grown by recursive variance-reduction splitting (CART)
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
	leaf      bool
}

type treeParams struct {
	maxDepth    int
	minLeaf     int
	featureFrac float64 // fraction of features considered per split
}

func growTree(features [][]float64, targets []float64, indices []int, depth int, params treeParams, rng *rand.Rand) *treeNode {
	if depth >= params.maxDepth || len(indices) <= params.minLeaf {
		return &treeNode{leaf: true, value: meanAt(targets, indices)}
	}

	feature, threshold, ok := bestSplit(features, targets, indices, params, rng)
	if !ok {
		return &treeNode{leaf: true, value: meanAt(targets, indices)}
	}

	var left, right []int
	for _, i := range indices {
		if features[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{leaf: true, value: meanAt(targets, indices)}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(features, targets, left, depth+1, params, rng),
		right:     growTree(features, targets, right, depth+1, params, rng),
	}
}

// bestSplit scans a random subset of features for the threshold that most
// reduces the weighted target variance.
func bestSplit(features [][]float64, targets []float64, indices []int, params treeParams, rng *rand.Rand) (int, float64, bool) {
	numFeatures := len(features[indices[0]])
	numTry := int(math.Ceil(float64(numFeatures) * params.featureFrac))
	if numTry < 1 {
		numTry = 1
	}

	candidates := rng.Perm(numFeatures)[:numTry]

	parentVar := varianceAt(targets, indices)
	bestGain := 0.0
	bestFeature, bestThreshold := -1, 0.0

	for _, f := range candidates {
		values := make([]float64, 0, len(indices))
		seen := make(map[float64]bool)
		for _, i := range indices {
			v := features[i][f]
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
		if len(values) < 2 {
			continue
		}

		for _, threshold := range values {
			var left, right []int
			for _, i := range indices {
				if features[i][f] <= threshold {
					left = append(left, i)
				} else {
					right = append(right, i)
				}
			}
			if len(left) == 0 || len(right) == 0 {
				continue
			}

			n := float64(len(indices))
			weighted := float64(len(left))/n*varianceAt(targets, left) +
				float64(len(right))/n*varianceAt(targets, right)
			if gain := parentVar - weighted; gain > bestGain {
				bestGain = gain
				bestFeature = f
				bestThreshold = threshold
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func (n *treeNode) predict(features []float64) float64 {
	node := n
	for !node.leaf {
		if features[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

func meanAt(values []float64, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range indices {
		sum += values[i]
	}
	return sum / float64(len(indices))
}

func varianceAt(values []float64, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	mean := meanAt(values, indices)
	sum := 0.0
	for _, i := range indices {
		d := values[i] - mean
		sum += d * d
	}
	return sum / float64(len(indices))
}
