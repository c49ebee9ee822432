package kvdb

import (
	"github.com/cockroachdb/errors"
)

const (
	datasetPrefix = "dataset/"
	resultPrefix  = "result/"
)

// SaveDataset 압축된 데이터셋을 dataset/<name> 키로 저장
func SaveDataset(s Store, name string, data []int) error {
	if err := s.Put([]byte(datasetPrefix+name), EncodeInts(data)); err != nil {
		return errors.Wrapf(err, "save dataset %s", name)
	}
	return nil
}

// LoadDataset SaveDataset으로 저장한 데이터셋을 읽는다. 없으면 ErrNotFound.
func LoadDataset(s Store, name string) ([]int, error) {
	payload, err := s.Get([]byte(datasetPrefix + name))
	if err != nil {
		return nil, errors.Wrapf(err, "load dataset %s", name)
	}
	return DecodeInts(payload)
}

// SaveResult 결과 레코드(JSON 등)를 result/<key> 로 저장
func SaveResult(s Store, key string, record []byte) error {
	if err := s.Put([]byte(resultPrefix+key), record); err != nil {
		return errors.Wrapf(err, "save result %s", key)
	}
	return nil
}

// Results 저장된 결과 전체. 키는 result/ 접두어를 뗀 값.
func Results(s Store) (map[string][]byte, error) {
	out := make(map[string][]byte)
	err := s.Scan([]byte(resultPrefix), func(key, value []byte) error {
		out[string(key[len(resultPrefix):])] = value
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan results")
	}
	return out, nil
}
