// Package kvdb 벤치마크 데이터셋과 결과를 보관하는 키-값 저장소.
// bbolt, BadgerDB, PebbleDB 세 가지 백엔드를 같은 인터페이스로 감싼다.
package kvdb

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNotFound 키가 없을 때 모든 백엔드가 돌려주는 에러
var ErrNotFound = errors.New("kvdb: key not found")

// Backend 저장소 종류
type Backend string

const (
	Bbolt  Backend = "bbolt"
	Badger Backend = "badger"
	Pebble Backend = "pebble"
)

// Backends 지원하는 백엔드 목록
var Backends = []Backend{Bbolt, Badger, Pebble}

// Store 백엔드 공통 인터페이스. Get, Scan이 넘겨주는 슬라이스는 호출자 소유.
type Store interface {
	Put(key, value []byte) error
	Get(key []byte) ([]byte, error)
	// Scan prefix로 시작하는 키를 오름차순으로 순회. fn이 에러를 돌려주면 멈춘다.
	Scan(prefix []byte, fn func(key, value []byte) error) error
	Close() error
}

// ParseBackend 문자열을 Backend로 변환 (대소문자 무시)
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Backends {
		if b == known {
			return b, nil
		}
	}
	return "", errors.Newf("kvdb: unknown backend %q", s)
}

// Open path에 백엔드 저장소를 연다. bbolt는 파일, 나머지는 디렉터리 경로.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case Bbolt:
		return openBbolt(path)
	case Badger:
		return openBadger(path)
	case Pebble:
		return openPebble(path)
	default:
		return nil, errors.Newf("kvdb: unknown backend %q", string(backend))
	}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
