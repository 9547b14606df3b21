package gheader

import (
	"aurora-gff/gff/gbytes"
)

func Encode(header Header) []byte {
	bs := make([]byte, 0, DefaultHeaderSize)
	bs = append(bs, header.FileType...)
	bs = append(bs, header.FileVersion...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.StructOffset))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.StructCount))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.FieldOffset))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.FieldCount))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.LabelOffset))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.LabelCount))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.FieldDataOffset))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.FieldDataCount))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.FieldIndicesOffset))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.FieldIndicesCount))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.ListIndicesOffset))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(header.ListIndicesCount))...)
	return bs
}
