package main

import (
	"cmp"

	"github.com/rlaau/sortbench/introsort"
)

// quickSort 3-way 퀵소트 (깊이 예산 없음, 비교 기준용)
func quickSort[T cmp.Ordered](arr []T) {
	if len(arr) < 2 {
		return
	}
	quickSortHelper(arr, 0, len(arr)-1)
}

// quickSortHelper [low, high] 양끝 포함 구간
func quickSortHelper[T cmp.Ordered](arr []T, low, high int) {
	for low < high {
		// 작은 배열은 삽입정렬
		if high-low+1 <= introsort.SizeThreshold {
			introsort.InsertionSort(arr[low : high+1])
			return
		}

		lt, gt := partition3Way(arr, low, high)

		// 작은 쪽만 재귀, 큰 쪽은 반복
		if lt-low < high-gt {
			quickSortHelper(arr, low, lt-1)
			low = gt + 1
		} else {
			quickSortHelper(arr, gt+1, high)
			high = lt - 1
		}
	}
}

// partition3Way 중복값을 한 번에 모은다. [lt, gt] 구간이 피벗과 같은 값.
func partition3Way[T cmp.Ordered](arr []T, low, high int) (int, int) {
	sortThree(arr, low, low+(high-low)/2, high)
	pivot := arr[low]

	lt := low      // arr[low..lt-1] < pivot
	i := low + 1   // arr[lt..i-1] == pivot
	gt := high + 1 // arr[gt..high] > pivot

	for i < gt {
		switch {
		case cmp.Less(arr[i], pivot):
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		case cmp.Less(pivot, arr[i]):
			gt--
			arr[i], arr[gt] = arr[gt], arr[i]
		default:
			i++
		}
	}
	return lt, gt - 1
}

// sortThree 세 위치를 정렬한 뒤 중앙값을 a 위치로 옮긴다
func sortThree[T cmp.Ordered](arr []T, a, b, c int) {
	if cmp.Less(arr[b], arr[a]) {
		arr[a], arr[b] = arr[b], arr[a]
	}
	if cmp.Less(arr[c], arr[b]) {
		arr[b], arr[c] = arr[c], arr[b]
	}
	if cmp.Less(arr[b], arr[a]) {
		arr[a], arr[b] = arr[b], arr[a]
	}
	arr[a], arr[b] = arr[b], arr[a]
}
