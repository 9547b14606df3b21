package gfield

import (
	"fmt"
)

type (
	// TruncatedFieldDataError reports a payload whose declared length runs
	// past the end of its section. Overrunning the section is an error
	// even when the file itself is large enough to hold the read.
	TruncatedFieldDataError struct {
		Section string
		Offset  int
		Need    int
		Have    int
	}
	UnknownFieldTypeError struct {
		RawType uint32
	}
)

func (r TruncatedFieldDataError) Error() string {
	return fmt.Sprintf(
		"truncated %s section: need %d bytes at offset %d, have %d",
		r.Section, r.Need, r.Offset, r.Have,
	)
}

func (r UnknownFieldTypeError) Error() string {
	return fmt.Sprintf("unknown field type tag %d (known tags are 0-17)", r.RawType)
}
