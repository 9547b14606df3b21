package gstruct

import (
	"aurora-gff/gff/gbytes"
)

func EncodeEntry(entry Entry) []byte {
	bs := make([]byte, 0, DefaultEntrySize)
	bs = append(bs, gbytes.EncodeInt32(entry.StructID)...)
	bs = append(bs, gbytes.EncodeUint32(entry.DataOrOffset)...)
	bs = append(bs, gbytes.EncodeUint32(uint32(entry.FieldCount))...)
	return bs
}

func EncodeBlock(structEntries []Entry) []byte {
	bs := make([]byte, 0, DefaultEntrySize*len(structEntries))
	for _, entry := range structEntries {
		bs = append(bs, EncodeEntry(entry)...)
	}
	return bs
}
