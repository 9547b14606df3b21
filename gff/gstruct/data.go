package gstruct

type (
	// Entry is one row of the struct table. StructID is an opaque tag the
	// engine assigns per template; it is preserved but never interpreted.
	//
	// DataOrOffset depends on FieldCount:
	//
	//   FieldCount == 0: unused
	//   FieldCount == 1: direct index into the field table
	//   FieldCount  > 1: byte offset into the field indices section, where
	//                    FieldCount consecutive 4-byte field indices live
	Entry struct {
		StructID     int32  `json:"struct_id"`
		DataOrOffset uint32 `json:"data_or_offset"`
		FieldCount   int    `json:"field_count"`
	}
)

const (
	DefaultEntrySize = 12
)

func (r Entry) HasNoFields() bool {
	return r.FieldCount == 0
}

func (r Entry) HasSingleField() bool {
	return r.FieldCount == 1
}

func (r Entry) HasMultipleFields() bool {
	return r.FieldCount > 1
}
