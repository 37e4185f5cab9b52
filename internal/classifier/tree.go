package classifier

import (
	"math"
	"math/rand"
	"sort"

	"github.com/khanglvm/sleepwise/internal/sleep"
)

// node is one decision-tree node. Leaf nodes carry a class, internal nodes
// carry a feature/threshold split (left: value <= threshold, right: value >).
type node struct {
	Leaf      bool          `json:"leaf"`
	Class     sleep.Quality `json:"class,omitempty"`
	Feature   int           `json:"feature,omitempty"`
	Threshold float64       `json:"threshold,omitempty"`
	Left      *node         `json:"left,omitempty"`
	Right     *node         `json:"right,omitempty"`
}

// classify walks the tree for one feature vector.
func (n *node) classify(features sleep.FeatureVector) sleep.Quality {
	for !n.Leaf {
		if features[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Class
}

// trainingData is the column-agnostic view buildTree works on.
type trainingData struct {
	features []sleep.FeatureVector
	labels   []sleep.Quality
}

// buildTree grows one CART tree over the given sample indices, choosing the
// best Gini split among a random subset of candidate features at each node.
func buildTree(data trainingData, samples []int, params Params, rng *rand.Rand, depth int) *node {
	counts := classCounts(data, samples)

	if depth >= params.MaxDepth || len(samples) <= params.MinLeafSize || isPure(counts) {
		return &node{Leaf: true, Class: majorityClass(counts)}
	}

	feature, threshold, ok := bestSplit(data, samples, params, rng)
	if !ok {
		return &node{Leaf: true, Class: majorityClass(counts)}
	}

	var left, right []int
	for _, i := range samples {
		if data.features[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &node{Leaf: true, Class: majorityClass(counts)}
	}

	return &node{
		Feature:   feature,
		Threshold: threshold,
		Left:      buildTree(data, left, params, rng, depth+1),
		Right:     buildTree(data, right, params, rng, depth+1),
	}
}

// bestSplit searches sqrt(F) random candidate features for the threshold with
// the lowest weighted Gini impurity. Thresholds are midpoints between adjacent
// distinct feature values.
func bestSplit(data trainingData, samples []int, params Params, rng *rand.Rand) (feature int, threshold float64, ok bool) {
	numFeatures := len(data.features[samples[0]])
	numCandidates := int(math.Ceil(math.Sqrt(float64(numFeatures))))

	parentImpurity := gini(classCounts(data, samples), len(samples))
	bestGain := 0.0

	for _, f := range rng.Perm(numFeatures)[:numCandidates] {
		values := make([]float64, 0, len(samples))
		for _, i := range samples {
			values = append(values, data.features[i][f])
		}
		sort.Float64s(values)

		for v := 1; v < len(values); v++ {
			if values[v] == values[v-1] {
				continue
			}
			t := (values[v] + values[v-1]) / 2

			var leftCounts, rightCounts [numClasses]int
			leftTotal := 0
			for _, i := range samples {
				if data.features[i][f] <= t {
					leftCounts[data.labels[i]]++
					leftTotal++
				} else {
					rightCounts[data.labels[i]]++
				}
			}
			rightTotal := len(samples) - leftTotal

			weighted := (float64(leftTotal)*gini(leftCounts, leftTotal) +
				float64(rightTotal)*gini(rightCounts, rightTotal)) / float64(len(samples))

			if gain := parentImpurity - weighted; gain > bestGain {
				bestGain = gain
				feature = f
				threshold = t
				ok = true
			}
		}
	}

	return feature, threshold, ok
}

// numClasses is the size of the Quality label set.
const numClasses = 3

// classCounts tallies labels over the given sample indices.
func classCounts(data trainingData, samples []int) [numClasses]int {
	var counts [numClasses]int
	for _, i := range samples {
		counts[data.labels[i]]++
	}
	return counts
}

// gini computes the Gini impurity of a class distribution.
func gini(counts [numClasses]int, total int) float64 {
	if total == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		impurity -= p * p
	}
	return impurity
}

// isPure reports whether the distribution contains a single class.
func isPure(counts [numClasses]int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

// majorityClass returns the most frequent class; ties go to the label whose
// name sorts first, so leaf assignment is deterministic.
func majorityClass(counts [numClasses]int) sleep.Quality {
	best := sleep.Quality(0)
	for q := sleep.Quality(1); q < numClasses; q++ {
		if counts[q] > counts[best] ||
			(counts[q] == counts[best] && q.String() < best.String()) {
			best = q
		}
	}
	return best
}
