package main

import (
	"slices"

	"github.com/rlaau/sortbench/introsort"
)

// algorithm 벤치마크 대상. run은 정렬된 슬라이스를 돌려준다 (제자리 정렬이면 입력 그대로).
type algorithm struct {
	name  string
	label string // 보고서용 이름
	run   func([]int) ([]int, introsort.Stats)
}

var algorithms = []algorithm{
	{"introsort", "인트로소트", introsort.SortWithStats[int]},
	{"heapsort", "힙소트", inPlace(func(a []int) { introsort.HeapSort(a) })},
	{"quicksort", "퀵소트", inPlace(quickSort[int])},
	{"parallel_quicksort", "병렬퀵소트", inPlace(parallelQuickSort[int])},
	{"mergesort", "머지소트", copying(mergeSort[int])},
	{"parallel_mergesort", "병렬머지소트", copying(parallelMergeSort[int])},
	{"stdlib", "표준정렬", inPlace(func(a []int) { slices.Sort(a) })},
}

func inPlace(sort func([]int)) func([]int) ([]int, introsort.Stats) {
	return func(a []int) ([]int, introsort.Stats) {
		sort(a)
		return a, introsort.Stats{}
	}
}

func copying(sort func([]int) []int) func([]int) ([]int, introsort.Stats) {
	return func(a []int) ([]int, introsort.Stats) {
		return sort(a), introsort.Stats{}
	}
}

func lookupAlgorithm(name string) (algorithm, bool) {
	for _, a := range algorithms {
		if a.name == name {
			return a, true
		}
	}
	return algorithm{}, false
}

func algorithmNames() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.name
	}
	return names
}
