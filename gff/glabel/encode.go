package glabel

import (
	"fmt"

	"aurora-gff/gff/gbytes"
)

func EncodeEntry(label string) ([]byte, error) {
	if len(label) > DefaultEntrySize {
		return nil, gbytes.EncodingError{
			Caller: "glabel.EncodeEntry",
			Reason: fmt.Sprintf("label %q is longer than %d bytes", label, DefaultEntrySize),
		}
	}
	if !gbytes.IsASCII(label) {
		return nil, gbytes.EncodingError{
			Caller: "glabel.EncodeEntry",
			Reason: fmt.Sprintf("label %q contains non-ASCII bytes", label),
		}
	}
	bs := make([]byte, 0, DefaultEntrySize)
	bs = append(bs, label...)
	bs = append(bs, gbytes.CreateZeroBytes(DefaultEntrySize-len(label))...)
	return bs, nil
}

func EncodeBlock(labels []string) ([]byte, error) {
	bs := make([]byte, 0, DefaultEntrySize*len(labels))
	for _, label := range labels {
		entryBytes, err := EncodeEntry(label)
		if err != nil {
			return nil, err
		}
		bs = append(bs, entryBytes...)
	}
	return bs, nil
}
