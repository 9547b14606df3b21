package gtree

import (
	"fmt"
)

type (
	InvalidStructIndexError struct {
		Index int
		Count int
	}
	InvalidFieldIndexError struct {
		Index int
		Count int
	}
	InvalidLabelIndexError struct {
		Index int
		Count int
	}
	CyclicStructReferenceError struct {
		Index int
	}
)

func (r InvalidStructIndexError) Error() string {
	return fmt.Sprintf("struct index %d is out of range; the struct table has %d entries", r.Index, r.Count)
}

func (r InvalidFieldIndexError) Error() string {
	return fmt.Sprintf("field index %d is out of range; the field table has %d entries", r.Index, r.Count)
}

func (r InvalidLabelIndexError) Error() string {
	return fmt.Sprintf("label index %d is out of range; the label table has %d entries", r.Index, r.Count)
}

func (r CyclicStructReferenceError) Error() string {
	return fmt.Sprintf("struct %d references itself through its descendants", r.Index)
}
