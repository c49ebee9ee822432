// Package introsort 인트로소트 (퀵소트 + 힙소트 + 삽입정렬 하이브리드).
//
// 구간 길이가 SizeThreshold 이하이면 삽입정렬, 깊이 예산(2*ceil(log2 n))을
// 다 쓰면 남은 구간을 힙소트로 처리해서 최악의 경우에도 O(n log n)을 보장한다.
// 안정 정렬이 아니며 입력 크기에 비례하는 추가 메모리를 쓰지 않는다.
package introsort

import (
	"cmp"
	"math/bits"
)

// SizeThreshold 이 길이 이하의 구간은 분할 없이 삽입정렬로 처리
const SizeThreshold = 16

// Stats 한 번의 정렬 호출에서 일어난 상태 전이 횟수
type Stats struct {
	Partitions      int // 분할 단계 수 (모든 분기 합계)
	InsertionPasses int
	HeapFallbacks   int
	MaxDepth        int // 시작 깊이 예산
	DepthUsed       int // 한 분기에서 가장 많이 쓴 예산
}

// Sort data를 오름차순으로 제자리 정렬하고 같은 슬라이스를 돌려준다.
// 순서는 cmp.Less를 따르므로 NaN은 다른 모든 값보다 앞에 온다.
func Sort[T cmp.Ordered](data []T) []T {
	if len(data) == 0 {
		return data
	}
	introSort(data, 0, len(data), depthBudget(len(data)), cmp.Less[T], nil)
	return data
}

// SortWithStats Sort와 같지만 상태 전이 통계를 함께 돌려준다
func SortWithStats[T cmp.Ordered](data []T) ([]T, Stats) {
	var st Stats
	if len(data) == 0 {
		return data, st
	}
	st.MaxDepth = depthBudget(len(data))
	introSort(data, 0, len(data), st.MaxDepth, cmp.Less[T], &st)
	return data, st
}

// IsSorted data가 cmp.Less 기준 오름차순인지 확인
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if cmp.Less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// depthBudget 2 * ceil(log2(n)), n <= 1 이면 0
func depthBudget(n int) int {
	if n <= 1 {
		return 0
	}
	return 2 * bits.Len(uint(n-1))
}

// introSort [start, end) 구간 정렬.
// 오른쪽 구간만 재귀로 내려가고 왼쪽 구간은 end를 줄여서 반복 처리한다.
func introSort[T any](data []T, start, end, maxDepth int, less func(a, b T) bool, st *Stats) {
	for end-start > SizeThreshold {
		if maxDepth == 0 {
			// 예산 소진: 남은 구간 전체를 힙소트
			if st != nil {
				st.HeapFallbacks++
			}
			heapSort(data, start, end, less)
			return
		}
		maxDepth--
		if st != nil {
			st.Partitions++
			if used := st.MaxDepth - maxDepth; used > st.DepthUsed {
				st.DepthUsed = used
			}
		}

		pivot := medianOfThree(data, start, start+(end-start)/2+1, end-1, less)
		p := partition(data, start, end, pivot, less)
		introSort(data, p, end, maxDepth, less, st)
		end = p
	}
	if st != nil {
		st.InsertionPasses++
	}
	insertionSort(data, start, end, less)
}
