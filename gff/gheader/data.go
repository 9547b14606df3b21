package gheader

type (
	// Header is the fixed 56-byte section table at the start of every GFF
	// file: two 4-byte tags followed by six (offset, count) pairs.
	//
	// Counts are entry counts for the structs, fields, labels and
	// field_indices sections (12, 12, 16 and 4 bytes per entry) and byte
	// counts for field_data and list_indices.
	Header struct {
		FileType           string `json:"file_type"`
		FileVersion        string `json:"file_version"`
		StructOffset       int    `json:"struct_offset"`
		StructCount        int    `json:"struct_count"`
		FieldOffset        int    `json:"field_offset"`
		FieldCount         int    `json:"field_count"`
		LabelOffset        int    `json:"label_offset"`
		LabelCount         int    `json:"label_count"`
		FieldDataOffset    int    `json:"field_data_offset"`
		FieldDataCount     int    `json:"field_data_count"`
		FieldIndicesOffset int    `json:"field_indices_offset"`
		FieldIndicesCount  int    `json:"field_indices_count"`
		ListIndicesOffset  int    `json:"list_indices_offset"`
		ListIndicesCount   int    `json:"list_indices_count"`
	}
)

const (
	DefaultHeaderSize = 56
)
