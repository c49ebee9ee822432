package main

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmsSort(t *testing.T) {
	initWorkerPool(4)
	r := rand.New(rand.NewSource(11))
	sizes := []int{0, 1, 2, 16, 17, 100, 999, 2000, 50000}
	for _, algo := range algorithms {
		t.Run(algo.name, func(t *testing.T) {
			for _, n := range sizes {
				for _, limit := range []int{5, 1000000} {
					data := make([]int, n)
					for i := range data {
						data[i] = r.Intn(limit)
					}
					want := slices.Clone(data)
					slices.Sort(want)

					got, _ := algo.run(data)
					require.Equal(t, want, got, "n=%d limit=%d", n, limit)
				}
			}
		})
	}
}

func TestAlgorithmsPatterns(t *testing.T) {
	for _, algo := range algorithms {
		for _, pattern := range patternNames {
			data := generateData(pattern, 3000, 1)
			want := slices.Clone(data)
			slices.Sort(want)

			got, _ := algo.run(data)
			assert.Equal(t, want, got, "%s/%s", algo.name, pattern)
		}
	}
}

func TestMergeSortKeepsInput(t *testing.T) {
	data := []int{5, 3, 9, 1, 7, 3, 2, 8, 6, 4, 0, 11, 15, 13, 12, 14, 10, 16, 19, 18}
	orig := slices.Clone(data)

	got := mergeSort(data)
	assert.Equal(t, orig, data)
	assert.True(t, slices.IsSorted(got))

	got = parallelMergeSort(data)
	assert.Equal(t, orig, data)
	assert.True(t, slices.IsSorted(got))
}

func TestPartition3Way(t *testing.T) {
	data := []int{5, 1, 5, 9, 5, 2, 8, 5, 5, 3}
	lt, gt := partition3Way(data, 0, len(data)-1)
	pivot := data[lt]
	for i, v := range data {
		switch {
		case i < lt:
			assert.Less(t, v, pivot)
		case i > gt:
			assert.Greater(t, v, pivot)
		default:
			assert.Equal(t, pivot, v)
		}
	}
}

func TestLookupAlgorithm(t *testing.T) {
	a, ok := lookupAlgorithm("introsort")
	require.True(t, ok)
	assert.Equal(t, "인트로소트", a.label)

	_, ok = lookupAlgorithm("bogosort")
	assert.False(t, ok)
	assert.Len(t, algorithmNames(), len(algorithms))
}

func TestGetOptimalThreshold(t *testing.T) {
	assert.Equal(t, 500, getOptimalThreshold(500))
	assert.Equal(t, 300, getOptimalThreshold(5000))
	assert.Equal(t, 800, getOptimalThreshold(50000))
	assert.Equal(t, 1500, getOptimalThreshold(500000))
}
