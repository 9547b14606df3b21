package gtree

import (
	"fmt"

	"aurora-gff/gff/gbytes"
	"aurora-gff/gff/gfield"
	"aurora-gff/gff/gheader"
	"aurora-gff/gff/glabel"
	"aurora-gff/gff/gstruct"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// FromTree lays a tree out as file sections. The walk is depth-first from
// the root, which therefore lands in struct table slot 0; labels are
// collected into the label table in first-seen order. Structurally equal
// subtrees are not deduplicated: every occurrence gets its own struct
// table slot, so the layout is a pure function of the tree's shape.
func FromTree(fileType string, fileVersion string, root *Node) (*StructuredFile, error) {
	if !gheader.IsPrintableASCIITag(fileType) {
		return nil, gbytes.EncodingError{
			Caller: "gtree.FromTree",
			Reason: fmt.Sprintf("file type tag %q is not 4 printable ASCII bytes", fileType),
		}
	}
	if !gheader.IsPrintableASCIITag(fileVersion) {
		return nil, gbytes.EncodingError{
			Caller: "gtree.FromTree",
			Reason: fmt.Sprintf("file version tag %q is not 4 printable ASCII bytes", fileVersion),
		}
	}
	if root == nil {
		return nil, errors.New("gtree.FromTree error: root node is nil")
	}

	serializer := treeSerializer{labelIndexes: map[string]int{}}
	if _, err := serializer.addStruct(root); err != nil {
		err := errors.Wrap(err, "gtree.FromTree error")
		return nil, err
	}

	// offsets are bump-allocated in the canonical section order: header,
	// structs, fields, labels, field data, field indices, list indices
	structOffset := gheader.DefaultHeaderSize
	fieldOffset := structOffset + len(serializer.structEntries)*gstruct.DefaultEntrySize
	labelOffset := fieldOffset + len(serializer.fieldEntries)*gfield.DefaultEntrySize
	fieldDataOffset := labelOffset + len(serializer.labels)*glabel.DefaultEntrySize
	fieldIndicesOffset := fieldDataOffset + len(serializer.fieldData)
	listIndicesOffset := fieldIndicesOffset + len(serializer.fieldIndices)

	file := StructuredFile{
		Header: gheader.Header{
			FileType:           fileType,
			FileVersion:        fileVersion,
			StructOffset:       structOffset,
			StructCount:        len(serializer.structEntries),
			FieldOffset:        fieldOffset,
			FieldCount:         len(serializer.fieldEntries),
			LabelOffset:        labelOffset,
			LabelCount:         len(serializer.labels),
			FieldDataOffset:    fieldDataOffset,
			FieldDataCount:     len(serializer.fieldData),
			FieldIndicesOffset: fieldIndicesOffset,
			FieldIndicesCount:  len(serializer.fieldIndices) / gheader.IndexEntrySize,
			ListIndicesOffset:  listIndicesOffset,
			ListIndicesCount:   len(serializer.listIndices),
		},
		StructBlock:  serializer.structEntries,
		FieldBlock:   serializer.fieldEntries,
		Labels:       serializer.labels,
		FieldData:    serializer.fieldData,
		FieldIndices: serializer.fieldIndices,
		ListIndices:  serializer.listIndices,
	}
	return &file, nil
}

// EncodeStructuredFile emits the file's bytes with the sections in
// canonical order behind the header.
func EncodeStructuredFile(file StructuredFile) ([]byte, error) {
	labelBytes, err := glabel.EncodeBlock(file.Labels)
	if err != nil {
		err := errors.Wrap(err, "gtree.EncodeStructuredFile error")
		return nil, err
	}

	sections := [][]byte{
		gheader.Encode(file.Header),
		gstruct.EncodeBlock(file.StructBlock),
		gfield.EncodeBlock(file.FieldBlock),
		labelBytes,
		file.FieldData,
		file.FieldIndices,
		file.ListIndices,
	}
	totalSize := lo.Reduce(
		sections,
		func(size int, section []byte, _ int) int { return size + len(section) },
		0,
	)
	bs := make([]byte, 0, totalSize)
	for _, section := range sections {
		bs = append(bs, section...)
	}
	return bs, nil
}

type treeSerializer struct {
	structEntries []gstruct.Entry
	fieldEntries  []gfield.Entry
	labels        []string
	labelIndexes  map[string]int
	fieldData     []byte
	fieldIndices  []byte
	listIndices   []byte
}

func (r *treeSerializer) addStruct(node *Node) (int, error) {
	if node == nil {
		return 0, errors.New("treeSerializer.addStruct error: nil node")
	}
	slot := len(r.structEntries)
	r.structEntries = append(r.structEntries, gstruct.Entry{StructID: node.StructID})

	fieldIndexes := make([]int, 0, len(node.Fields))
	for _, field := range node.Fields {
		fieldIndex, err := r.addField(field)
		if err != nil {
			return 0, err
		}
		fieldIndexes = append(fieldIndexes, fieldIndex)
	}

	entry := &r.structEntries[slot]
	entry.FieldCount = len(fieldIndexes)
	switch {
	case len(fieldIndexes) == 1:
		entry.DataOrOffset = uint32(fieldIndexes[0])
	case len(fieldIndexes) > 1:
		// the index run is appended only after the recursion above, so
		// runs of nested structs never interleave with this one
		entry.DataOrOffset = uint32(len(r.fieldIndices))
		r.fieldIndices = appendIndexRun(r.fieldIndices, fieldIndexes)
	}
	return slot, nil
}

func (r *treeSerializer) addField(field Field) (int, error) {
	entryIndex := len(r.fieldEntries)
	entry := gfield.Entry{
		Type:       field.Value.Type,
		LabelIndex: r.internLabel(field.Label),
	}
	r.fieldEntries = append(r.fieldEntries, entry)

	fieldType := field.Value.Type
	switch {
	case fieldType.IsSimple():
		raw, err := gfield.EncodeSimple(field.Value)
		if err != nil {
			return 0, err
		}
		r.fieldEntries[entryIndex].DataOrOffset = raw
	case fieldType.IsComplex():
		payload, err := gfield.EncodeComplex(field.Value)
		if err != nil {
			return 0, err
		}
		r.fieldEntries[entryIndex].DataOrOffset = uint32(len(r.fieldData))
		r.fieldData = append(r.fieldData, payload...)
	case fieldType.IsStruct():
		child, ok := field.Value.Data.(*Node)
		if !ok || child == nil {
			return 0, errors.Errorf(
				`treeSerializer.addField error: struct field %q holds "%T" instead of a node`,
				field.Label, field.Value.Data,
			)
		}
		childSlot, err := r.addStruct(child)
		if err != nil {
			return 0, err
		}
		r.fieldEntries[entryIndex].DataOrOffset = uint32(childSlot)
	case fieldType.IsList():
		children, ok := field.Value.Data.([]*Node)
		if !ok {
			return 0, errors.Errorf(
				`treeSerializer.addField error: list field %q holds "%T" instead of nodes`,
				field.Label, field.Value.Data,
			)
		}
		childSlots := make([]int, 0, len(children))
		for _, child := range children {
			childSlot, err := r.addStruct(child)
			if err != nil {
				return 0, err
			}
			childSlots = append(childSlots, childSlot)
		}
		r.fieldEntries[entryIndex].DataOrOffset = uint32(len(r.listIndices))
		r.listIndices = append(r.listIndices, gbytes.EncodeUint32(uint32(len(childSlots)))...)
		r.listIndices = appendIndexRun(r.listIndices, childSlots)
	default:
		// opaque value preserved by DecodeOptions.PreserveUnknownFields
		raw, ok := field.Value.Data.(uint32)
		if !ok {
			return 0, errors.Errorf(
				`treeSerializer.addField error: field %q with unknown type %d holds "%T" instead of raw bytes`,
				field.Label, uint32(fieldType), field.Value.Data,
			)
		}
		r.fieldEntries[entryIndex].DataOrOffset = raw
	}
	return entryIndex, nil
}

func (r *treeSerializer) internLabel(label string) int {
	if index, ok := r.labelIndexes[label]; ok {
		return index
	}
	index := len(r.labels)
	r.labels = append(r.labels, label)
	r.labelIndexes[label] = index
	return index
}

func appendIndexRun(bs []byte, indexes []int) []byte {
	return lo.Reduce(
		indexes,
		func(bs []byte, index int, _ int) []byte {
			return append(bs, gbytes.EncodeUint32(uint32(index))...)
		},
		bs,
	)
}
