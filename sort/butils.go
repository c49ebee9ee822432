package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"github.com/rlaau/sortbench/introsort"
)

// BenchmarkResult 벤치마크 결과 한 건
type BenchmarkResult struct {
	Algorithm     string        `json:"algorithm"`
	Pattern       string        `json:"pattern"`
	DataSize      int           `json:"data_size"`
	StorageType   string        `json:"storage_type"`
	TestRun       int           `json:"test_run"`
	Duration      time.Duration `json:"duration"`
	MemoryUsage   uint64        `json:"memory_usage_bytes"`
	GoroutineNum  int           `json:"goroutine_num"`
	Verified      bool          `json:"verified"`
	Partitions    int           `json:"partitions,omitempty"`
	HeapFallbacks int           `json:"heap_fallbacks,omitempty"`
}

// key kv 저장소용 결과 키
func (r BenchmarkResult) key() string {
	return fmt.Sprintf("%s/%s/%d/%s/%d", r.Algorithm, r.Pattern, r.DataSize, r.StorageType, r.TestRun)
}

// SystemStats 측정 시작 시점 상태
type SystemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
	endMem    runtime.MemStats
}

// startStats GC를 두 번 돌려서 측정 전 힙을 정리
func startStats() *SystemStats {
	runtime.GC()
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &SystemStats{
		startTime: time.Now(),
		startMem:  m,
	}
}

// endStats 경과 시간과 측정 구간 동안 할당한 바이트 수
func (s *SystemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)
	runtime.ReadMemStats(&s.endMem)
	return duration, s.endMem.TotalAlloc - s.startMem.TotalAlloc
}

// fingerprint 순서와 무관한 합/XOR. 정렬 전후가 같아야 순열이다.
type fingerprint struct {
	n        int
	sum, xor uint64
}

func fingerprintOf(data []int) fingerprint {
	f := fingerprint{n: len(data)}
	for _, v := range data {
		f.sum += uint64(v)
		f.xor ^= uint64(v) * 0x9e3779b97f4a7c15
	}
	return f
}

// runBenchmark 입력을 복사해서 한 번 정렬하고 결과를 검증
func runBenchmark(algo algorithm, data []int, storage string) BenchmarkResult {
	result := BenchmarkResult{
		Algorithm:    algo.name,
		DataSize:     len(data),
		StorageType:  storage,
		GoroutineNum: runtime.NumGoroutine(),
	}

	testData := make([]int, len(data))
	copy(testData, data)
	before := fingerprintOf(testData)

	stats := startStats()
	sorted, st := algo.run(testData)
	result.Duration, result.MemoryUsage = stats.endStats()

	result.Partitions = st.Partitions
	result.HeapFallbacks = st.HeapFallbacks
	result.Verified = introsort.IsSorted(sorted) && fingerprintOf(sorted) == before
	return result
}

// caseGroup 보고서 한 섹션 (저장 방식, 크기, 패턴)
type caseGroup struct {
	storage string
	size    int
	pattern string
}

func groupsOf(results []BenchmarkResult) []caseGroup {
	var groups []caseGroup
	seen := make(map[caseGroup]bool)
	for _, r := range results {
		g := caseGroup{r.StorageType, r.DataSize, r.Pattern}
		if !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	return groups
}

// total 알고리즘별 누적값
type total struct {
	duration time.Duration
	memory   uint64
	count    int
}

var storageNames = map[string]string{
	storageMemory: "인메모리",
	storageFile:   "파일",
	storageKV:     "KV 저장소",
}

func labelOf(name string) string {
	if a, ok := lookupAlgorithm(name); ok {
		return a.label
	}
	return name
}

// renderMarkdown 실행별 표와 평균 요약
func renderMarkdown(results []BenchmarkResult, now time.Time) string {
	var b strings.Builder

	b.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	fmt.Fprintf(&b, "실행 시간: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Fprintf(&b, "GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0))

	groups := groupsOf(results)
	for _, g := range groups {
		fmt.Fprintf(&b, "## %s - %s개 데이터 (%s)\n\n", storageNames[g.storage], humanize.Comma(int64(g.size)), g.pattern)
		b.WriteString("| 알고리즘 | 테스트 | 실행시간 | 메모리사용량 | 고루틴수 | 힙소트 전환 | 검증 |\n")
		b.WriteString("|----------|--------|----------|--------------|----------|-------------|------|\n")
		for _, r := range results {
			if (caseGroup{r.StorageType, r.DataSize, r.Pattern}) != g {
				continue
			}
			verified := "OK"
			if !r.Verified {
				verified = "실패"
			}
			fmt.Fprintf(&b, "| %s | %d | %v | %s | %d | %d | %s |\n",
				labelOf(r.Algorithm), r.TestRun, r.Duration, humanize.Bytes(r.MemoryUsage),
				r.GoroutineNum, r.HeapFallbacks, verified)
		}
		b.WriteString("\n")
	}

	b.WriteString("## 요약 통계\n\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "### %s - %s개 데이터 (%s) 평균\n\n", storageNames[g.storage], humanize.Comma(int64(g.size)), g.pattern)
		b.WriteString("| 알고리즘 | 평균 실행시간 | 평균 메모리사용량 |\n")
		b.WriteString("|----------|---------------|-------------------|\n")

		var order []string
		totals := make(map[string]*total)
		for _, r := range results {
			if (caseGroup{r.StorageType, r.DataSize, r.Pattern}) != g {
				continue
			}
			t, ok := totals[r.Algorithm]
			if !ok {
				t = &total{}
				totals[r.Algorithm] = t
				order = append(order, r.Algorithm)
			}
			t.duration += r.Duration
			t.memory += r.MemoryUsage
			t.count++
		}
		for _, name := range order {
			t := totals[name]
			fmt.Fprintf(&b, "| %s | %v | %s |\n", labelOf(name),
				t.duration/time.Duration(t.count), humanize.Bytes(t.memory/uint64(t.count)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// saveResultsToMarkdown 한 번에 쓰기
func saveResultsToMarkdown(results []BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create markdown report")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	if _, err := writer.WriteString(renderMarkdown(results, time.Now())); err != nil {
		return errors.Wrap(err, "write markdown report")
	}
	return errors.Wrap(writer.Flush(), "flush markdown report")
}

func saveResultsToJSON(results []BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create json report")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return errors.Wrap(err, "encode json report")
	}
	return errors.Wrap(writer.Flush(), "flush json report")
}
