package gheader

import (
	"fmt"

	"aurora-gff/gff/gbytes"
	"github.com/pkg/errors"
)

func Decode(reader *gbytes.Reader) (*Header, error) {
	readTag := gbytes.CreateTagReadFunction(reader)
	readUint32 := gbytes.CreateUint32ReadFunction(reader)

	headerInstructions := []gbytes.Instruction{
		{Key: "file_type", ReadFunction: readTag},
		{Key: "file_version", ReadFunction: readTag},
		{Key: "struct_offset", ReadFunction: readUint32},
		{Key: "struct_count", ReadFunction: readUint32},
		{Key: "field_offset", ReadFunction: readUint32},
		{Key: "field_count", ReadFunction: readUint32},
		{Key: "label_offset", ReadFunction: readUint32},
		{Key: "label_count", ReadFunction: readUint32},
		{Key: "field_data_offset", ReadFunction: readUint32},
		{Key: "field_data_count", ReadFunction: readUint32},
		{Key: "field_indices_offset", ReadFunction: readUint32},
		{Key: "field_indices_count", ReadFunction: readUint32},
		{Key: "list_indices_offset", ReadFunction: readUint32},
		{Key: "list_indices_count", ReadFunction: readUint32},
	}

	header, err := gbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		err := errors.Wrap(err, "gheader.Decode error")
		return nil, err
	}
	if !IsPrintableASCIITag(header.FileType) {
		return nil, MalformedHeaderError{
			Reason: fmt.Sprintf(`file type tag %q is not 4 printable ASCII bytes`, header.FileType),
		}
	}
	if !IsPrintableASCIITag(header.FileVersion) {
		return nil, MalformedHeaderError{
			Reason: fmt.Sprintf(`file version tag %q is not 4 printable ASCII bytes`, header.FileVersion),
		}
	}

	return header, nil
}

// IsPrintableASCIITag reports whether s is exactly 4 printable ASCII bytes.
func IsPrintableASCIITag(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// Validate checks that every declared section fits within a file of
// fileSize bytes. Sections with a zero count are present-but-empty and
// their offsets are ignored.
func Validate(header Header, fileSize int) error {
	if header.StructCount < 1 {
		return MalformedHeaderError{
			Reason: "struct count is zero; the root struct must exist",
		}
	}
	sections := []struct {
		name   string
		offset int
		size   int
	}{
		{"structs", header.StructOffset, header.StructCount * StructEntrySize},
		{"fields", header.FieldOffset, header.FieldCount * FieldEntrySize},
		{"labels", header.LabelOffset, header.LabelCount * LabelEntrySize},
		{"field data", header.FieldDataOffset, header.FieldDataCount},
		{"field indices", header.FieldIndicesOffset, header.FieldIndicesCount * IndexEntrySize},
		{"list indices", header.ListIndicesOffset, header.ListIndicesCount},
	}
	for _, section := range sections {
		if section.size == 0 {
			continue
		}
		if section.offset < DefaultHeaderSize ||
			section.offset+section.size > fileSize {
			return MalformedHeaderError{
				Reason: fmt.Sprintf(
					"%s section at offset %d with size %d does not fit in %d file bytes",
					section.name, section.offset, section.size, fileSize,
				),
			}
		}
	}
	return nil
}

const (
	StructEntrySize = 12
	FieldEntrySize  = 12
	LabelEntrySize  = 16
	IndexEntrySize  = 4
)
