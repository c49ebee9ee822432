package main

import (
	"cmp"
	"runtime"
)

// parallelMergeSort 양쪽 절반을 병렬로 정렬한 뒤 병합
func parallelMergeSort[T cmp.Ordered](arr []T) []T {
	initWorkerPool(0)
	return parallelMergeSortHelper(arr, len(arr), runtime.NumCPU())
}

// parallelMergeSortHelper total은 최상위 입력 크기 (임계값 계산용)
func parallelMergeSortHelper[T cmp.Ordered](arr []T, total, depth int) []T {
	if depth <= 1 || len(arr) <= getOptimalThreshold(total) {
		return mergeSort(arr)
	}

	mid := len(arr) / 2
	var left, right []T
	forkJoin(
		func() { left = parallelMergeSortHelper(arr[:mid], total, depth/2) },
		func() { left = mergeSort(arr[:mid]) },
		func() { right = parallelMergeSortHelper(arr[mid:], total, depth/2) },
		func() { right = mergeSort(arr[mid:]) },
	)
	return merge(left, right)
}
