package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlaau/sortbench/introsort"
)

func TestRunBenchmarkVerifies(t *testing.T) {
	data := generateData("random", 2000, 3)
	algo, _ := lookupAlgorithm("introsort")

	result := runBenchmark(algo, data, storageMemory)
	assert.True(t, result.Verified)
	assert.Equal(t, "introsort", result.Algorithm)
	assert.Equal(t, 2000, result.DataSize)
	assert.Greater(t, result.Partitions, 0)
	assert.Positive(t, int64(result.Duration))

	// 입력은 복사본으로 정렬한다
	assert.Equal(t, generateData("random", 2000, 3), data)
}

func TestRunBenchmarkDetectsBrokenSort(t *testing.T) {
	data := generateData("random", 100, 3)

	dropping := algorithm{name: "dropping", run: func(a []int) ([]int, introsort.Stats) {
		introsort.Sort(a)
		return a[1:], introsort.Stats{}
	}}
	assert.False(t, runBenchmark(dropping, data, storageMemory).Verified)

	overwriting := algorithm{name: "overwriting", run: func(a []int) ([]int, introsort.Stats) {
		for i := range a {
			a[i] = i
		}
		return a, introsort.Stats{}
	}}
	assert.False(t, runBenchmark(overwriting, data, storageMemory).Verified)

	noop := algorithm{name: "noop", run: func(a []int) ([]int, introsort.Stats) { return a, introsort.Stats{} }}
	assert.False(t, runBenchmark(noop, data, storageMemory).Verified)
}

func sampleResults() []BenchmarkResult {
	return []BenchmarkResult{
		{Algorithm: "introsort", Pattern: "random", DataSize: 1000, StorageType: storageMemory, TestRun: 1,
			Duration: 2 * time.Millisecond, MemoryUsage: 2048, Verified: true, Partitions: 30},
		{Algorithm: "introsort", Pattern: "random", DataSize: 1000, StorageType: storageMemory, TestRun: 2,
			Duration: 4 * time.Millisecond, MemoryUsage: 4096, Verified: true},
		{Algorithm: "quicksort", Pattern: "random", DataSize: 1000, StorageType: storageMemory, TestRun: 1,
			Duration: time.Millisecond, Verified: false},
		{Algorithm: "introsort", Pattern: "sorted", DataSize: 100000, StorageType: storageKV, TestRun: 1,
			Duration: time.Millisecond, Verified: true, HeapFallbacks: 1},
	}
}

func TestRenderMarkdown(t *testing.T) {
	md := renderMarkdown(sampleResults(), time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	assert.Contains(t, md, "# 정렬 알고리즘 벤치마크 결과")
	assert.Contains(t, md, "실행 시간: 2026-01-02 03:04:05")
	assert.Contains(t, md, "## 인메모리 - 1,000개 데이터 (random)")
	assert.Contains(t, md, "## KV 저장소 - 100,000개 데이터 (sorted)")
	assert.Contains(t, md, "| 퀵소트 | 1 | 1ms | 0 B | 0 | 0 | 실패 |")
	assert.Contains(t, md, "| 인트로소트 | 1 | 1ms | 0 B | 0 | 1 | OK |")
	// 평균: (2ms+4ms)/2, (2048+4096)/2
	assert.Contains(t, md, "| 인트로소트 | 3ms | 3.1 kB |")
}

func TestSaveResults(t *testing.T) {
	dir := t.TempDir()
	results := sampleResults()

	jsonPath := filepath.Join(dir, "r.json")
	require.NoError(t, saveResultsToJSON(results, jsonPath))
	raw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var decoded []BenchmarkResult
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, results, decoded)

	mdPath := filepath.Join(dir, "r.md")
	require.NoError(t, saveResultsToMarkdown(results, mdPath))
	raw, err = os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "## 요약 통계")

	assert.Error(t, saveResultsToJSON(results, filepath.Join(dir, "missing", "r.json")))
}

func TestCountUnverified(t *testing.T) {
	assert.Equal(t, 1, countUnverified(sampleResults()))
	assert.Equal(t, "quicksort/random/1000/memory/1", sampleResults()[2].key())
}
