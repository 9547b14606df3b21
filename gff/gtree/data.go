// Package gtree ties the GFF sections together: it decodes a byte buffer
// into a StructuredFile of raw tables, resolves that into a recursive tree
// of labeled values, and serializes such a tree back into a byte buffer.
package gtree

import (
	"aurora-gff/gff/gfield"
	"aurora-gff/gff/gheader"
	"aurora-gff/gff/gstruct"
)

type (
	// StructuredFile is the on-disk shape of a GFF file: the header plus
	// every section decoded at its declared offset. It is an intermediate
	// form; callers normally want the tree from ToTree.
	StructuredFile struct {
		Header       gheader.Header  `json:"header"`
		StructBlock  []gstruct.Entry `json:"struct_block"`
		FieldBlock   []gfield.Entry  `json:"field_block"`
		Labels       []string        `json:"labels"`
		FieldData    []byte          `json:"field_data"`
		FieldIndices []byte          `json:"field_indices"`
		ListIndices  []byte          `json:"list_indices"`
	}

	// Node is one struct of the decoded tree. Fields keeps the file's
	// field order; labels are unique within a node. A Node owns all of
	// its data: nothing references the source buffer after decoding.
	Node struct {
		StructID int32   `json:"struct_id"`
		Fields   []Field `json:"fields"`
	}
	Field struct {
		Label string       `json:"label"`
		Value gfield.Value `json:"value"`
	}

	DecodeOptions struct {
		// PreserveUnknownFields keeps fields with a type tag outside
		// the 0-17 enum as opaque 4-byte values instead of failing.
		// They re-encode bit-identically.
		PreserveUnknownFields bool
	}
)

// Get returns the value of the field with the given label.
func (r *Node) Get(label string) (gfield.Value, bool) {
	for _, field := range r.Fields {
		if field.Label == label {
			return field.Value, true
		}
	}
	return gfield.Value{}, false
}
