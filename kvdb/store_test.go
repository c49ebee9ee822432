package kvdb

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, backend Backend) Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), string(backend))
	s, err := Open(backend, path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorePutGet(t *testing.T) {
	for _, backend := range Backends {
		t.Run(string(backend), func(t *testing.T) {
			s := openTestStore(t, backend)

			require.NoError(t, s.Put([]byte("a"), []byte("1")))
			require.NoError(t, s.Put([]byte("a"), []byte("2")))

			v, err := s.Get([]byte("a"))
			require.NoError(t, err)
			assert.Equal(t, []byte("2"), v)

			_, err = s.Get([]byte("missing"))
			assert.True(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestStoreScan(t *testing.T) {
	for _, backend := range Backends {
		t.Run(string(backend), func(t *testing.T) {
			s := openTestStore(t, backend)
			for i := 3; i >= 0; i-- {
				require.NoError(t, s.Put([]byte(fmt.Sprintf("p/%d", i)), []byte{byte(i)}))
			}
			require.NoError(t, s.Put([]byte("q/0"), []byte{9}))
			require.NoError(t, s.Put([]byte("o/0"), []byte{9}))

			var keys []string
			var values []byte
			err := s.Scan([]byte("p/"), func(key, value []byte) error {
				keys = append(keys, string(key))
				values = append(values, value...)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, []string{"p/0", "p/1", "p/2", "p/3"}, keys)
			assert.Equal(t, []byte{0, 1, 2, 3}, values)

			stop := errors.New("stop")
			n := 0
			err = s.Scan([]byte("p/"), func(key, value []byte) error {
				n++
				return stop
			})
			assert.True(t, errors.Is(err, stop))
			assert.Equal(t, 1, n)
		})
	}
}

func TestStoreReopen(t *testing.T) {
	for _, backend := range Backends {
		t.Run(string(backend), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), string(backend))
			s, err := Open(backend, path)
			require.NoError(t, err)
			require.NoError(t, SaveDataset(s, "random-1000", []int{3, 1, 2}))
			require.NoError(t, s.Close())

			s, err = Open(backend, path)
			require.NoError(t, err)
			defer s.Close()
			data, err := LoadDataset(s, "random-1000")
			require.NoError(t, err)
			assert.Equal(t, []int{3, 1, 2}, data)
		})
	}
}

func TestResults(t *testing.T) {
	s := openTestStore(t, Bbolt)
	require.NoError(t, SaveResult(s, "introsort/random/1000/1", []byte(`{"a":1}`)))
	require.NoError(t, SaveResult(s, "quicksort/random/1000/1", []byte(`{"a":2}`)))
	require.NoError(t, SaveDataset(s, "random-1000", []int{1}))

	got, err := Results(s)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"introsort/random/1000/1": []byte(`{"a":1}`),
		"quicksort/random/1000/1": []byte(`{"a":2}`),
	}, got)

	_, err = LoadDataset(s, "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend(" Pebble ")
	require.NoError(t, err)
	assert.Equal(t, Pebble, b)

	_, err = ParseBackend("rocksdb")
	assert.Error(t, err)

	_, err = Open(Backend("rocksdb"), t.TempDir())
	assert.Error(t, err)
}
