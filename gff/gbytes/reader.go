package gbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (b *Reader) SeekTo(offset int) error {
	_, err := b.Seek(int64(offset), io.SeekStart)
	return err
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// return early to avoid EOF error
	// when reader's pointer reached end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	_, err := io.ReadFull(&b.Reader, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (b *Reader) ReadUint8() (uint8, error) {
	bs, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadInt32() (int32, error) {
	result, err := b.ReadUint32()
	return int32(result), err
}

func (b *Reader) ReadUint64() (uint64, error) {
	bs, err := b.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(bs), nil
}

func (b *Reader) ReadInt64() (int64, error) {
	result, err := b.ReadUint64()
	return int64(result), err
}

func (b *Reader) ReadFloat32() (float32, error) {
	result, err := b.ReadUint32()
	return math.Float32frombits(result), err
}

func (b *Reader) ReadFloat64() (float64, error) {
	result, err := b.ReadUint64()
	return math.Float64frombits(result), err
}

func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(bs), nil
}
