package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "TOML 설정 파일 (비우면 기본값)")
	verbose := flag.Bool("v", false, "실행별 디버그 로그")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "벤치마크 실패: %+v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("정렬 알고리즘 벤치마크 시작",
		zap.Int("cpus", runtime.NumCPU()), zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)))

	// 워커 풀 초기화 (이후 호출은 무시된다)
	initWorkerPool(cfg.Workers)

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	r, err := newRunner(cfg, logger)
	if err != nil {
		return err
	}
	defer r.Close()

	results, err := r.run()
	if err != nil {
		return err
	}

	logger.Info("결과 저장 중")
	mdPath := filepath.Join(cfg.Output.Dir, cfg.Output.Markdown)
	if err := saveResultsToMarkdown(results, mdPath); err != nil {
		return err
	}
	jsonPath := filepath.Join(cfg.Output.Dir, cfg.Output.JSON)
	if err := saveResultsToJSON(results, jsonPath); err != nil {
		return err
	}
	logger.Info("보고서 생성", zap.String("markdown", mdPath), zap.String("json", jsonPath))

	if n := countUnverified(results); n > 0 {
		return errors.Newf("%d runs produced unsorted output", n)
	}
	logger.Info("벤치마크 완료", zap.Int("runs", len(results)))
	return nil
}
