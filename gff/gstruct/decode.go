package gstruct

import (
	"aurora-gff/gff/gbytes"
	"github.com/pkg/errors"
)

func DecodeEntry(reader *gbytes.Reader) (*Entry, error) {
	readInt32 := gbytes.CreateInt32ReadFunction(reader)
	readUint32 := gbytes.CreateUint32ReadFunction(reader)

	structInstructions := []gbytes.Instruction{
		{Key: "struct_id", ReadFunction: readInt32},
		{Key: "data_or_offset", ReadFunction: readUint32},
		{Key: "field_count", ReadFunction: readUint32},
	}
	structEntry, err := gbytes.ExecuteInstructions[Entry](structInstructions)
	if err != nil {
		err := errors.Wrap(err, "gstruct.DecodeEntry error")
		return nil, err
	}

	return structEntry, nil
}

func DecodeBlock(reader *gbytes.Reader, numStructs int) ([]Entry, error) {
	structEntries := make([]Entry, 0, numStructs)
	for i := 0; i < numStructs; i++ {
		structEntry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrap(err, "gstruct.DecodeBlock error")
			return nil, err
		}
		structEntries = append(structEntries, *structEntry)
	}

	return structEntries, nil
}
