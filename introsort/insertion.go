package introsort

import "cmp"

// InsertionSort 슬라이스 전체 삽입정렬
func InsertionSort[T cmp.Ordered](data []T) []T {
	insertionSort(data, 0, len(data), cmp.Less[T])
	return data
}

// insertionSort [start, end) 구간만 인접 이동으로 정렬. 구간 밖은 읽지도 쓰지도 않는다.
func insertionSort[T any](data []T, start, end int, less func(a, b T) bool) {
	for i := start + 1; i < end; i++ {
		v := data[i]
		j := i
		for j > start && less(v, data[j-1]) {
			data[j] = data[j-1]
			j--
		}
		data[j] = v
	}
}
