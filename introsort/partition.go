package introsort

// medianOfThree 세 위치 값 중 중앙값(인덱스가 아니라 값)을 고른다.
// first가 나머지 둘 사이면 first, 아니면 middle, 둘 다 아니면 last.
func medianOfThree[T any](data []T, first, middle, last int, less func(a, b T) bool) T {
	a, b, c := data[first], data[middle], data[last]
	if less(b, a) != less(c, a) {
		return a
	}
	if less(a, b) != less(c, b) {
		return b
	}
	return c
}

// partition Hoare 방식 두 포인터 분할. 반환값 p에 대해
// [low, p)는 pivot 이하, [p, high)는 pivot 이상.
//
// pivot이 구간의 최솟값과 최댓값 사이에 있어야 커서가 구간 안에서 멈추므로
// 그 가정이 깨져도 범위를 벗어나지 않도록 커서를 low, high-1 에서 막는다.
func partition[T any](data []T, low, high int, pivot T, less func(a, b T) bool) int {
	i, j := low, high
	for {
		for i < high-1 && less(data[i], pivot) {
			i++
		}
		j--
		for j > low && less(pivot, data[j]) {
			j--
		}
		if i >= j {
			return i
		}
		data[i], data[j] = data[j], data[i]
		i++
	}
}
