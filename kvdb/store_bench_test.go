package kvdb

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"
)

// 백엔드별 데이터셋 저장/읽기 비교
func BenchmarkDataset(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	data := make([]int, 100000)
	for i := range data {
		data[i] = r.Intn(1000000)
	}

	for _, backend := range Backends {
		b.Run(fmt.Sprintf("%s/save", backend), func(b *testing.B) {
			s, err := Open(backend, filepath.Join(b.TempDir(), string(backend)))
			if err != nil {
				b.Fatal(err)
			}
			defer s.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := SaveDataset(s, "random", data); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("%s/load", backend), func(b *testing.B) {
			s, err := Open(backend, filepath.Join(b.TempDir(), string(backend)))
			if err != nil {
				b.Fatal(err)
			}
			defer s.Close()
			if err := SaveDataset(s, "random", data); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := LoadDataset(s, "random"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// 작은 키 임의 접근 (있는 키 / 없는 키)
func BenchmarkGet(b *testing.B) {
	const numItems = 10000
	for _, backend := range Backends {
		s, err := Open(backend, filepath.Join(b.TempDir(), string(backend)))
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < numItems; i++ {
			if err := s.Put([]byte(fmt.Sprintf("k/%08d", i)), []byte{byte(i)}); err != nil {
				b.Fatal(err)
			}
		}
		b.Run(fmt.Sprintf("%s/existing", backend), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := s.Get([]byte(fmt.Sprintf("k/%08d", i%numItems))); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("%s/missing", backend), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				s.Get([]byte(fmt.Sprintf("x/%08d", i)))
			}
		})
		s.Close()
	}
}
