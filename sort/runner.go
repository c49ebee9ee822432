package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/rlaau/sortbench/kvdb"
)

// runner 설정된 케이스 x 패턴 x 알고리즘 x 반복 횟수만큼 실행
type runner struct {
	cfg    Config
	logger *zap.Logger
	store  kvdb.Store // kv 케이스가 없으면 nil
	sleep  func(time.Duration)
}

func newRunner(cfg Config, logger *zap.Logger) (*runner, error) {
	r := &runner{cfg: cfg, logger: logger, sleep: time.Sleep}
	if cfg.usesKV() {
		backend, err := kvdb.ParseBackend(cfg.Store.Backend)
		if err != nil {
			return nil, err
		}
		r.store, err = kvdb.Open(backend, cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("KV 저장소 열기", zap.String("backend", string(backend)), zap.String("path", cfg.Store.Path))
	}
	return r, nil
}

func (r *runner) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

// source 저장 방식별로 매 실행마다 데이터를 가져오는 함수를 만든다
func (r *runner) source(cs Case, pattern string, data []int) (fetch func() ([]int, error), cleanup func(), err error) {
	name := datasetName(pattern, cs.Size)
	switch cs.Storage {
	case storageFile:
		filename := filepath.Join(r.cfg.Output.Dir, "test_data_"+name+".txt")
		if err := writeDataToFile(data, filename); err != nil {
			return nil, nil, err
		}
		return func() ([]int, error) { return readDataFromFile(filename) },
			func() { os.Remove(filename) }, nil
	case storageKV:
		if err := kvdb.SaveDataset(r.store, name, data); err != nil {
			return nil, nil, err
		}
		return func() ([]int, error) { return kvdb.LoadDataset(r.store, name) }, func() {}, nil
	default:
		return func() ([]int, error) { return data, nil }, func() {}, nil
	}
}

// run 검증 실패가 있어도 끝까지 돌고, 실패 수는 결과의 Verified로 남긴다
func (r *runner) run() ([]BenchmarkResult, error) {
	var results []BenchmarkResult
	cooldown := time.Duration(r.cfg.CooldownMs) * time.Millisecond

	for _, cs := range r.cfg.Cases {
		for _, pattern := range r.cfg.Patterns {
			r.logger.Info("데이터 테스트 중",
				zap.Int("size", cs.Size), zap.String("storage", cs.Storage), zap.String("pattern", pattern))

			data := generateData(pattern, cs.Size, r.cfg.Seed)
			fetch, cleanup, err := r.source(cs, pattern, data)
			if err != nil {
				return results, err
			}

			for _, name := range r.cfg.Algorithms {
				algo, _ := lookupAlgorithm(name)
				for run := 1; run <= r.cfg.Runs; run++ {
					input, err := fetch()
					if err != nil {
						cleanup()
						return results, errors.Wrapf(err, "load %s data", cs.Storage)
					}

					result := runBenchmark(algo, input, cs.Storage)
					result.Pattern = pattern
					result.TestRun = run
					results = append(results, result)
					r.logResult(result)

					if err := r.saveResult(result); err != nil {
						cleanup()
						return results, err
					}
					r.sleep(cooldown)
				}
			}
			cleanup()
		}
	}
	return results, nil
}

func (r *runner) logResult(result BenchmarkResult) {
	fields := []zap.Field{
		zap.String("algorithm", result.Algorithm),
		zap.Int("run", result.TestRun),
		zap.Duration("duration", result.Duration),
		zap.Uint64("alloc_bytes", result.MemoryUsage),
	}
	if result.Partitions > 0 || result.HeapFallbacks > 0 {
		fields = append(fields, zap.Int("partitions", result.Partitions), zap.Int("heap_fallbacks", result.HeapFallbacks))
	}
	if !result.Verified {
		r.logger.Error("정렬 결과 검증 실패", fields...)
		return
	}
	r.logger.Debug("실행 완료", fields...)
}

// saveResult kv 케이스 결과만 저장소에 남긴다
func (r *runner) saveResult(result BenchmarkResult) error {
	if r.store == nil || result.StorageType != storageKV {
		return nil
	}
	record, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "marshal result")
	}
	return kvdb.SaveResult(r.store, result.key(), record)
}

func countUnverified(results []BenchmarkResult) int {
	n := 0
	for _, r := range results {
		if !r.Verified {
			n++
		}
	}
	return n
}
