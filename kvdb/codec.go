package kvdb

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
)

// 인코더/디코더는 EncodeAll, DecodeAll 만 쓰면 동시에 써도 안전하다
var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil)
)

// EncodeInts 정수 슬라이스를 zigzag varint로 쓰고 zstd로 압축
func EncodeInts(data []int) []byte {
	buf := make([]byte, 0, binary.MaxVarintLen64*(len(data)+1))
	buf = binary.AppendUvarint(buf, uint64(len(data)))
	for _, v := range data {
		buf = binary.AppendVarint(buf, int64(v))
	}
	return encoder.EncodeAll(buf, nil)
}

// DecodeInts EncodeInts의 역
func DecodeInts(payload []byte) ([]int, error) {
	raw, err := decoder.DecodeAll(payload, nil)
	if err != nil {
		return nil, errors.Wrap(err, "kvdb: decompress ints")
	}
	n, off := binary.Uvarint(raw)
	if off <= 0 {
		return nil, errors.New("kvdb: corrupt int header")
	}
	if n > uint64(len(raw)) {
		return nil, errors.Newf("kvdb: int count %d exceeds payload", n)
	}
	data := make([]int, n)
	for i := range data {
		v, m := binary.Varint(raw[off:])
		if m <= 0 {
			return nil, errors.Newf("kvdb: corrupt int at %d", i)
		}
		data[i] = int(v)
		off += m
	}
	if off != len(raw) {
		return nil, errors.Newf("kvdb: %d trailing bytes", len(raw)-off)
	}
	return data, nil
}
