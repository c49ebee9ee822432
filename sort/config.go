package main

import (
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/rlaau/sortbench/kvdb"
)

// 저장 방식
const (
	storageMemory = "memory"
	storageFile   = "file"
	storageKV     = "kv"
)

// Config 벤치마크 설정 (TOML)
type Config struct {
	Seed       int64    `toml:"seed"`
	Runs       int      `toml:"runs"`
	CooldownMs int      `toml:"cooldown_ms"` // 실행 사이 시스템 안정화 대기
	Workers    int      `toml:"workers"`     // 병렬 정렬 워커 풀 크기, 0이면 CPU 수
	LogLevel   string   `toml:"log_level"`
	Algorithms []string `toml:"algorithms"`
	Patterns   []string `toml:"patterns"`
	Cases      []Case   `toml:"case"`

	Store  StoreConfig  `toml:"store"`
	Output OutputConfig `toml:"output"`
}

// Case 데이터 크기와 저장 방식 한 쌍
type Case struct {
	Size    int    `toml:"size"`
	Storage string `toml:"storage"`
}

type StoreConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type OutputConfig struct {
	Dir      string `toml:"dir"`
	JSON     string `toml:"json"`
	Markdown string `toml:"markdown"`
}

// defaultConfig 1천/1만개 인메모리, 10만개 파일
func defaultConfig() Config {
	return Config{
		Seed:       42,
		Runs:       3,
		CooldownMs: 50,
		LogLevel:   "info",
		Algorithms: algorithmNames(),
		Patterns:   []string{"random"},
		Cases: []Case{
			{Size: 1000, Storage: storageMemory},
			{Size: 10000, Storage: storageMemory},
			{Size: 100000, Storage: storageFile},
		},
		Store: StoreConfig{
			Backend: string(kvdb.Pebble),
			Path:    "benchdata",
		},
		Output: OutputConfig{
			Dir:      ".",
			JSON:     "benchmark_results.json",
			Markdown: "benchmark_results.md",
		},
	}
}

// loadConfig path가 비어 있으면 기본값, 아니면 기본값 위에 파일 내용을 덮어쓴다
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "decode config %s", path)
		}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Runs <= 0 {
		return errors.Newf("runs must be positive, got %d", c.Runs)
	}
	if c.Workers < 0 {
		return errors.Newf("workers must not be negative, got %d", c.Workers)
	}
	if len(c.Cases) == 0 {
		return errors.New("at least one [[case]] is required")
	}
	for _, name := range c.Algorithms {
		if _, ok := lookupAlgorithm(name); !ok {
			return errors.Newf("unknown algorithm %q", name)
		}
	}
	for _, p := range c.Patterns {
		if !slices.Contains(patternNames, p) {
			return errors.Newf("unknown pattern %q", p)
		}
	}
	for _, cs := range c.Cases {
		if cs.Size < 0 {
			return errors.Newf("case size must not be negative, got %d", cs.Size)
		}
		switch cs.Storage {
		case storageMemory, storageFile:
		case storageKV:
			if _, err := kvdb.ParseBackend(c.Store.Backend); err != nil {
				return err
			}
		default:
			return errors.Newf("unknown storage %q", cs.Storage)
		}
	}
	return nil
}

// usesKV kv 저장 방식 케이스가 하나라도 있는지
func (c Config) usesKV() bool {
	for _, cs := range c.Cases {
		if cs.Storage == storageKV {
			return true
		}
	}
	return false
}
