// Package forest реализует бэггинг регрессионных деревьев: ансамбль CART-
// деревьев, каждое обучается на bootstrap-выборке, предсказание — среднее
// по деревьям. Пакет ничего не знает о предметной области.
package forest

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var (
	ErrNotFitted      = errors.New("forest is not fitted")
	ErrEmptyDataset   = errors.New("empty training dataset")
	ErrShapeMismatch  = errors.New("features and targets length mismatch")
	ErrRaggedFeatures = errors.New("feature rows have inconsistent width")
)

type Params struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Seed            int64
}

func (p Params) withDefaults() Params {
	if p.Trees <= 0 {
		p.Trees = 100
	}
	if p.MaxDepth <= 0 {
		p.MaxDepth = 10
	}
	if p.MinSamplesSplit < 2 {
		p.MinSamplesSplit = 2
	}
	if p.MinSamplesLeaf < 1 {
		p.MinSamplesLeaf = 1
	}
	return p
}

type Forest struct {
	params   Params
	width    int
	trees    []*node
	isFitted bool
}

func New(params Params) *Forest {
	return &Forest{params: params.withDefaults()}
}

// Fit обучает ансамбль. Результат детерминирован для фиксированного Seed.
func (f *Forest) Fit(features [][]float64, targets []float64) error {
	if len(features) == 0 {
		return ErrEmptyDataset
	}
	if len(features) != len(targets) {
		return ErrShapeMismatch
	}

	width := len(features[0])
	for _, row := range features {
		if len(row) != width {
			return ErrRaggedFeatures
		}
	}

	rng := rand.New(rand.NewSource(f.params.Seed))
	trees := make([]*node, 0, f.params.Trees)

	for i := 0; i < f.params.Trees; i++ {
		sample := bootstrapIndexes(rng, len(features))
		trees = append(trees, f.buildNode(features, targets, sample, 0))
	}

	f.width = width
	f.trees = trees
	f.isFitted = true
	return nil
}

// Predict возвращает среднее предсказание деревьев.
func (f *Forest) Predict(x []float64) (float64, error) {
	if !f.isFitted {
		return 0, ErrNotFitted
	}
	if len(x) != f.width {
		return 0, fmt.Errorf("%w: want %d features, got %d", ErrShapeMismatch, f.width, len(x))
	}

	var sum float64
	for _, tree := range f.trees {
		sum += tree.predict(x)
	}
	return sum / float64(len(f.trees)), nil
}

type node struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *node
	right     *node
}

func (n *node) predict(x []float64) float64 {
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

func (f *Forest) buildNode(features [][]float64, targets []float64, idx []int, depth int) *node {
	if depth >= f.params.MaxDepth || len(idx) < f.params.MinSamplesSplit {
		return &node{leaf: true, value: mean(targets, idx)}
	}

	split, ok := f.bestSplit(features, targets, idx)
	if !ok {
		return &node{leaf: true, value: mean(targets, idx)}
	}

	var leftIdx, rightIdx []int
	for _, i := range idx {
		if features[i][split.feature] <= split.threshold {
			leftIdx = append(leftIdx, i)
		} else {
			rightIdx = append(rightIdx, i)
		}
	}

	return &node{
		feature:   split.feature,
		threshold: split.threshold,
		left:      f.buildNode(features, targets, leftIdx, depth+1),
		right:     f.buildNode(features, targets, rightIdx, depth+1),
	}
}

type splitCandidate struct {
	feature   int
	threshold float64
	sse       float64
}

// bestSplit перебирает пороги между соседними значениями каждого признака
// и минимизирует суммарную внутриузловую ошибку (SSE).
func (f *Forest) bestSplit(features [][]float64, targets []float64, idx []int) (splitCandidate, bool) {
	best := splitCandidate{sse: -1}
	width := len(features[idx[0]])

	sorted := make([]int, len(idx))
	for feature := 0; feature < width; feature++ {
		copy(sorted, idx)
		sortByFeature(sorted, features, feature)

		n := len(sorted)
		var sumLeft, sqLeft float64
		sumRight, sqRight := sums(targets, sorted)

		for pos := 1; pos < n; pos++ {
			y := targets[sorted[pos-1]]
			sumLeft += y
			sqLeft += y * y
			sumRight -= y
			sqRight -= y * y

			prev := features[sorted[pos-1]][feature]
			curr := features[sorted[pos]][feature]
			if prev == curr {
				continue
			}
			if pos < f.params.MinSamplesLeaf || n-pos < f.params.MinSamplesLeaf {
				continue
			}

			nl, nr := float64(pos), float64(n-pos)
			sse := (sqLeft - sumLeft*sumLeft/nl) + (sqRight - sumRight*sumRight/nr)
			if best.sse < 0 || sse < best.sse {
				best = splitCandidate{
					feature:   feature,
					threshold: (prev + curr) / 2,
					sse:       sse,
				}
			}
		}
	}

	return best, best.sse >= 0
}

func bootstrapIndexes(rng *rand.Rand, n int) []int {
	sample := make([]int, n)
	for i := range sample {
		sample[i] = rng.Intn(n)
	}
	return sample
}

func sortByFeature(idx []int, features [][]float64, feature int) {
	sort.Slice(idx, func(a, b int) bool {
		return features[idx[a]][feature] < features[idx[b]][feature]
	})
}

func mean(targets []float64, idx []int) float64 {
	var sum float64
	for _, i := range idx {
		sum += targets[i]
	}
	return sum / float64(len(idx))
}

func sums(targets []float64, idx []int) (sum, sq float64) {
	for _, i := range idx {
		y := targets[i]
		sum += y
		sq += y * y
	}
	return sum, sq
}
