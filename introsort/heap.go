package introsort

import "cmp"

// HeapSort 슬라이스 전체 힙소트. 입력 순서와 무관하게 O(n log n).
func HeapSort[T cmp.Ordered](data []T) []T {
	heapSort(data, 0, len(data), cmp.Less[T])
	return data
}

// heapSort [start, end) 구간을 최대 힙으로 만든 뒤 루트를 뒤로 보내며 정렬
func heapSort[T any](data []T, start, end int, less func(a, b T) bool) {
	n := end - start
	for i := n/2 - 1; i >= 0; i-- {
		heapify(data, start, i, n, less)
	}
	for i := n - 1; i > 0; i-- {
		data[start], data[start+i] = data[start+i], data[start]
		heapify(data, start, 0, i, less)
	}
}

// heapify index 위치에서 sift-down. index, heapSize는 start 기준 상대값.
// 부모가 두 자식 이상이면 바꾸지 않는다.
func heapify[T any](data []T, start, index, heapSize int, less func(a, b T) bool) {
	for {
		largest := index
		left := 2*index + 1
		right := left + 1

		if left < heapSize && less(data[start+largest], data[start+left]) {
			largest = left
		}
		if right < heapSize && less(data[start+largest], data[start+right]) {
			largest = right
		}
		if largest == index {
			return
		}

		data[start+index], data[start+largest] = data[start+largest], data[start+index]
		index = largest
	}
}
