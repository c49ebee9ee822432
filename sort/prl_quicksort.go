package main

import (
	"cmp"
	"runtime"
)

// parallelQuickSort 분할 후 양쪽을 워커 풀 슬롯이 허락하는 만큼 병렬로 정렬
func parallelQuickSort[T cmp.Ordered](arr []T) {
	if len(arr) < 2 {
		return
	}
	initWorkerPool(0)
	parallelQuickSortHelper(arr, 0, len(arr)-1, runtime.NumCPU())
}

func parallelQuickSortHelper[T cmp.Ordered](arr []T, low, high, depth int) {
	if low >= high {
		return
	}
	size := high - low + 1
	if depth <= 1 || size <= getOptimalThreshold(len(arr)) {
		quickSortHelper(arr, low, high)
		return
	}

	lt, gt := partition3Way(arr, low, high)
	forkJoin(
		func() { parallelQuickSortHelper(arr, low, lt-1, depth/2) },
		func() { quickSortHelper(arr, low, lt-1) },
		func() { parallelQuickSortHelper(arr, gt+1, high, depth/2) },
		func() { quickSortHelper(arr, gt+1, high) },
	)
}

// getOptimalThreshold 전체 크기에 따라 병렬로 나눌 최소 구간 크기
func getOptimalThreshold(totalSize int) int {
	switch {
	case totalSize < 1000:
		return totalSize // 작은 데이터는 병렬처리 안함
	case totalSize < 10000:
		return 300
	case totalSize < 100000:
		return 800
	default:
		return 1500
	}
}
