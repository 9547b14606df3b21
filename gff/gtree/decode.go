package gtree

import (
	"encoding/binary"
	"fmt"

	"aurora-gff/gff/gbytes"
	"aurora-gff/gff/gfield"
	"aurora-gff/gff/gheader"
	"aurora-gff/gff/glabel"
	"aurora-gff/gff/gstruct"
	"github.com/pkg/errors"
)

// ToStructuredFile decodes the header and every declared section. Sections
// are located purely through the header's offsets; nothing is assumed
// about their relative order in the file.
func ToStructuredFile(bs []byte) (*StructuredFile, error) {
	if len(bs) < gheader.DefaultHeaderSize {
		return nil, gheader.MalformedHeaderError{
			Reason: fmt.Sprintf(
				"file holds %d bytes; the header alone needs %d",
				len(bs), gheader.DefaultHeaderSize,
			),
		}
	}
	reader := gbytes.NewBytesReader(bs)
	file := StructuredFile{}
	err := error(nil)

	header, err := gheader.Decode(reader)
	if err != nil {
		return nil, err
	}
	if err := gheader.Validate(*header, len(bs)); err != nil {
		return nil, err
	}
	file.Header = *header

	if err := reader.SeekTo(header.StructOffset); err != nil {
		return nil, errors.Wrap(err, "gtree.ToStructuredFile error: seek to struct block")
	}
	file.StructBlock, err = gstruct.DecodeBlock(reader, header.StructCount)
	if err != nil {
		return nil, err
	}

	if header.FieldCount > 0 {
		if err := reader.SeekTo(header.FieldOffset); err != nil {
			return nil, errors.Wrap(err, "gtree.ToStructuredFile error: seek to field block")
		}
		file.FieldBlock, err = gfield.DecodeBlock(reader, header.FieldCount)
		if err != nil {
			return nil, err
		}
	}

	if header.LabelCount > 0 {
		if err := reader.SeekTo(header.LabelOffset); err != nil {
			return nil, errors.Wrap(err, "gtree.ToStructuredFile error: seek to label block")
		}
		file.Labels, err = glabel.DecodeBlock(reader, header.LabelCount)
		if err != nil {
			return nil, err
		}
	}

	// the blobs are copied so the file owns its bytes independently of bs
	if header.FieldDataCount > 0 {
		start := header.FieldDataOffset
		file.FieldData = append([]byte{}, bs[start:start+header.FieldDataCount]...)
	}
	if header.FieldIndicesCount > 0 {
		start := header.FieldIndicesOffset
		size := header.FieldIndicesCount * gheader.IndexEntrySize
		file.FieldIndices = append([]byte{}, bs[start:start+size]...)
	}
	if header.ListIndicesCount > 0 {
		start := header.ListIndicesOffset
		file.ListIndices = append([]byte{}, bs[start:start+header.ListIndicesCount]...)
	}

	return &file, nil
}

// ToTree resolves the struct table from the root entry at index 0 into an
// owned recursive tree. Field resolution is lazy per field: the first
// malformed field on the resolution path reports an error, and untouched
// parts of the file are never validated.
func ToTree(file StructuredFile) (*Node, error) {
	return ToTreeWithOptions(file, DecodeOptions{})
}

func ToTreeWithOptions(file StructuredFile, options DecodeOptions) (*Node, error) {
	builder := treeBuilder{
		file:    file,
		options: options,
		onPath:  map[int]struct{}{},
	}
	root, err := builder.resolveStruct(0)
	if err != nil {
		err := errors.Wrap(err, "gtree.ToTree error")
		return nil, err
	}
	return root, nil
}

type treeBuilder struct {
	file    StructuredFile
	options DecodeOptions
	// onPath holds the struct indices of the current recursion path;
	// an index seen twice means the file's struct graph has a cycle
	onPath map[int]struct{}
}

func (r *treeBuilder) resolveStruct(index int) (*Node, error) {
	if index < 0 || index >= len(r.file.StructBlock) {
		return nil, InvalidStructIndexError{Index: index, Count: len(r.file.StructBlock)}
	}
	if _, ok := r.onPath[index]; ok {
		return nil, CyclicStructReferenceError{Index: index}
	}
	r.onPath[index] = struct{}{}
	defer delete(r.onPath, index)

	entry := r.file.StructBlock[index]
	node := Node{StructID: entry.StructID}
	switch {
	case entry.HasNoFields():
	case entry.HasSingleField():
		field, err := r.resolveField(int(entry.DataOrOffset))
		if err != nil {
			return nil, err
		}
		node.Fields = append(node.Fields, *field)
	default:
		fieldIndexes, err := r.readFieldIndices(int(entry.DataOrOffset), entry.FieldCount)
		if err != nil {
			return nil, err
		}
		for _, fieldIndex := range fieldIndexes {
			field, err := r.resolveField(fieldIndex)
			if err != nil {
				return nil, err
			}
			node.Fields = append(node.Fields, *field)
		}
	}
	return &node, nil
}

func (r *treeBuilder) resolveField(index int) (*Field, error) {
	if index < 0 || index >= len(r.file.FieldBlock) {
		return nil, InvalidFieldIndexError{Index: index, Count: len(r.file.FieldBlock)}
	}
	entry := r.file.FieldBlock[index]
	if entry.LabelIndex < 0 || entry.LabelIndex >= len(r.file.Labels) {
		return nil, InvalidLabelIndexError{Index: entry.LabelIndex, Count: len(r.file.Labels)}
	}
	field := Field{Label: r.file.Labels[entry.LabelIndex]}

	switch {
	case entry.Type.IsSimple():
		value, err := gfield.DecodeSimple(entry)
		if err != nil {
			return nil, err
		}
		field.Value = *value
	case entry.Type.IsComplex():
		value, err := gfield.DecodeComplex(entry, r.file.FieldData)
		if err != nil {
			return nil, err
		}
		field.Value = *value
	case entry.Type.IsStruct():
		child, err := r.resolveStruct(int(entry.DataOrOffset))
		if err != nil {
			return nil, err
		}
		field.Value = gfield.Value{Type: gfield.TypeStruct, Data: child}
	case entry.Type.IsList():
		children, err := r.resolveList(int(entry.DataOrOffset))
		if err != nil {
			return nil, err
		}
		field.Value = gfield.Value{Type: gfield.TypeList, Data: children}
	default:
		if !r.options.PreserveUnknownFields {
			return nil, gfield.UnknownFieldTypeError{RawType: uint32(entry.Type)}
		}
		field.Value = gfield.Value{Type: entry.Type, Data: entry.DataOrOffset}
	}
	return &field, nil
}

func (r *treeBuilder) resolveList(offset int) ([]*Node, error) {
	structIndexes, err := r.readListRun(offset)
	if err != nil {
		return nil, err
	}
	children := make([]*Node, 0, len(structIndexes))
	for _, structIndex := range structIndexes {
		child, err := r.resolveStruct(structIndex)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func (r *treeBuilder) readFieldIndices(offset int, count int) ([]int, error) {
	return readIndexRun(r.file.FieldIndices, "field indices", offset, count)
}

// readListRun reads the [count][count x struct_index] run a list field
// points at inside the list indices section.
func (r *treeBuilder) readListRun(offset int) ([]int, error) {
	section := r.file.ListIndices
	if offset < 0 || offset+4 > len(section) {
		return nil, gfield.TruncatedFieldDataError{
			Section: "list indices",
			Offset:  offset,
			Need:    4,
			Have:    len(section) - offset,
		}
	}
	count := int(binary.LittleEndian.Uint32(section[offset:]))
	return readIndexRun(section, "list indices", offset+4, count)
}

func readIndexRun(section []byte, sectionName string, offset int, count int) ([]int, error) {
	need := count * 4
	if offset < 0 || count < 0 || offset+need > len(section) {
		return nil, gfield.TruncatedFieldDataError{
			Section: sectionName,
			Offset:  offset,
			Need:    need,
			Have:    len(section) - offset,
		}
	}
	indexes := make([]int, 0, count)
	for i := 0; i < count; i++ {
		indexes = append(indexes, int(binary.LittleEndian.Uint32(section[offset+4*i:])))
	}
	return indexes, nil
}
