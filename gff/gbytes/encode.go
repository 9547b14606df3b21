package gbytes

import (
	"encoding/binary"
	"math"
)

func EncodeUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func EncodeInt32(value int32) []byte {
	return EncodeUint32(uint32(value))
}

func EncodeUint64(value uint64) []byte {
	bs := make([]byte, 8)
	binary.LittleEndian.PutUint64(bs, value)
	return bs
}

func EncodeInt64(value int64) []byte {
	return EncodeUint64(uint64(value))
}

func EncodeFloat32(value float32) []byte {
	return EncodeUint32(math.Float32bits(value))
}

func EncodeFloat64(value float64) []byte {
	return EncodeUint64(math.Float64bits(value))
}

func CreateZeroBytes(n int) []byte {
	return make([]byte, n)
}
