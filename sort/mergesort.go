package main

import (
	"cmp"

	"github.com/rlaau/sortbench/introsort"
)

// mergeSort 새 슬라이스를 돌려주는 머지소트. 입력은 건드리지 않는다.
func mergeSort[T cmp.Ordered](arr []T) []T {
	if len(arr) <= introsort.SizeThreshold {
		result := make([]T, len(arr))
		copy(result, arr)
		return introsort.InsertionSort(result)
	}

	mid := len(arr) / 2
	return merge(mergeSort(arr[:mid]), mergeSort(arr[mid:]))
}

// merge 같은 값이면 왼쪽 먼저 (안정)
func merge[T cmp.Ordered](left, right []T) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if !cmp.Less(right[j], left[i]) {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	return append(result, right[j:]...)
}
