package gfield

import (
	"encoding/binary"
	"fmt"
	"math"

	"aurora-gff/gff/gbytes"
	"github.com/pkg/errors"
)

func DecodeEntry(reader *gbytes.Reader) (*Entry, error) {
	// manual decoding is used here instead of the instruction mechanism
	// since the type tag needs a typed home before any JSON round trip
	entry := Entry{}

	rawType, err := reader.ReadUint32()
	if err != nil {
		err := errors.Wrap(err, "gfield.DecodeEntry error: read entry type")
		return nil, err
	}
	entry.Type = Type(rawType)

	labelIndex, err := reader.ReadUint32()
	if err != nil {
		err := errors.Wrap(err, "gfield.DecodeEntry error: read label index")
		return nil, err
	}
	entry.LabelIndex = int(labelIndex)

	entry.DataOrOffset, err = reader.ReadUint32()
	if err != nil {
		err := errors.Wrap(err, "gfield.DecodeEntry error: read data or offset")
		return nil, err
	}

	return &entry, nil
}

func DecodeBlock(reader *gbytes.Reader, numFields int) ([]Entry, error) {
	fieldEntries := make([]Entry, 0, numFields)
	for i := 0; i < numFields; i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrap(err, "gfield.DecodeBlock error")
			return nil, err
		}
		fieldEntries = append(fieldEntries, *entry)
	}

	return fieldEntries, nil
}

// DecodeSimple reinterprets the entry's 4 inline bytes as the target
// numeric type. No further I/O happens for simple types.
func DecodeSimple(entry Entry) (*Value, error) {
	raw := entry.DataOrOffset
	data := any(nil)
	switch entry.Type {
	case TypeUint8:
		data = uint8(raw)
	case TypeInt8:
		data = int8(uint8(raw))
	case TypeUint16:
		data = uint16(raw)
	case TypeInt16:
		data = int16(uint16(raw))
	case TypeUint32:
		data = raw
	case TypeInt32:
		data = int32(raw)
	case TypeSingle:
		data = math.Float32frombits(raw)
	default:
		return nil, errors.Errorf(
			`gfield.DecodeSimple error: field type "%s" is not simple`, entry.Type,
		)
	}
	return &Value{Type: entry.Type, Data: data}, nil
}

// DecodeComplex reads the entry's payload from the field data section,
// starting at the entry's byte offset. Every read is bounds-checked
// against the section, not the file.
func DecodeComplex(entry Entry, fieldData []byte) (*Value, error) {
	cursor := sectionCursor{
		section: fieldData,
		name:    "field data",
		offset:  int(entry.DataOrOffset),
	}

	data := any(nil)
	err := error(nil)
	switch entry.Type {
	case TypeUint64:
		bs, takeErr := cursor.take(8)
		if takeErr != nil {
			return nil, takeErr
		}
		data = binary.LittleEndian.Uint64(bs)
	case TypeInt64:
		bs, takeErr := cursor.take(8)
		if takeErr != nil {
			return nil, takeErr
		}
		data = int64(binary.LittleEndian.Uint64(bs))
	case TypeDouble:
		bs, takeErr := cursor.take(8)
		if takeErr != nil {
			return nil, takeErr
		}
		data = math.Float64frombits(binary.LittleEndian.Uint64(bs))
	case TypeString:
		data, err = decodeString(&cursor)
	case TypeResRef:
		data, err = decodeResRef(&cursor)
	case TypeLocalizedString:
		data, err = decodeLocalizedString(&cursor)
	case TypeBinary:
		bs, takeErr := cursor.takeUint32Prefixed()
		if takeErr != nil {
			return nil, takeErr
		}
		data = append([]byte{}, bs...)
	case TypeVector3:
		data, err = decodeVector3(&cursor)
	case TypeVector4:
		data, err = decodeVector4(&cursor)
	default:
		return nil, errors.Errorf(
			`gfield.DecodeComplex error: field type "%s" is not complex`, entry.Type,
		)
	}
	if err != nil {
		return nil, err
	}
	return &Value{Type: entry.Type, Data: data}, nil
}

func decodeString(cursor *sectionCursor) (string, error) {
	bs, err := cursor.takeUint32Prefixed()
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func decodeResRef(cursor *sectionCursor) (ResRef, error) {
	lengthBytes, err := cursor.take(1)
	if err != nil {
		return ResRef{}, err
	}
	length := int(lengthBytes[0])
	slot, err := cursor.take(ResRefSlotSize)
	if err != nil {
		return ResRef{}, err
	}
	if length > ResRefSlotSize {
		return ResRef{}, TruncatedFieldDataError{
			Section: "resref slot",
			Offset:  cursor.offset - ResRefSlotSize,
			Need:    length,
			Have:    ResRefSlotSize,
		}
	}
	name := string(slot[:length])
	if !gbytes.IsASCII(name) {
		return ResRef{}, gbytes.EncodingError{
			Caller: "gfield.decodeResRef",
			Reason: fmt.Sprintf("resref %q contains non-ASCII bytes", name),
		}
	}
	resRef := ResRef{Name: name}
	// trailing slot bytes are not always zeroed in real files;
	// they have to survive a round trip untouched. All-zero padding is
	// normalized away since the encoder zero-fills the slot anyway.
	padding := slot[length:]
	for _, b := range padding {
		if b != 0 {
			resRef.Padding = append([]byte{}, padding...)
			break
		}
	}
	return resRef, nil
}

func decodeLocalizedString(cursor *sectionCursor) (LocalizedString, error) {
	// total_size covers string_ref + substring_count + substrings and is
	// re-derived on encode, so the decoded value does not keep it
	if _, err := cursor.takeUint32(); err != nil {
		return LocalizedString{}, err
	}
	rawStringRef, err := cursor.takeUint32()
	if err != nil {
		return LocalizedString{}, err
	}
	numSubstrings, err := cursor.takeUint32()
	if err != nil {
		return LocalizedString{}, err
	}

	localized := LocalizedString{}
	if rawStringRef != NoStringRef {
		stringRef := rawStringRef
		localized.StringRef = &stringRef
	}
	for i := uint32(0); i < numSubstrings; i++ {
		stringID, err := cursor.takeUint32()
		if err != nil {
			return LocalizedString{}, err
		}
		textBytes, err := cursor.takeUint32Prefixed()
		if err != nil {
			return LocalizedString{}, err
		}
		localized.Substrings = append(localized.Substrings, Substring{
			LanguageID: uint8((stringID >> 8) & 0xFF),
			GenderID:   uint8(stringID & 0xFF),
			Text:       string(textBytes),
		})
	}
	return localized, nil
}

func decodeVector3(cursor *sectionCursor) (Vector3, error) {
	components, err := cursor.takeFloats(3)
	if err != nil {
		return Vector3{}, err
	}
	return Vector3{X: components[0], Y: components[1], Z: components[2]}, nil
}

func decodeVector4(cursor *sectionCursor) (Vector4, error) {
	components, err := cursor.takeFloats(4)
	if err != nil {
		return Vector4{}, err
	}
	return Vector4{X: components[0], Y: components[1], Z: components[2], W: components[3]}, nil
}

type sectionCursor struct {
	section []byte
	name    string
	offset  int
}

func (r *sectionCursor) take(n int) ([]byte, error) {
	if r.offset < 0 || n < 0 || r.offset+n > len(r.section) {
		return nil, TruncatedFieldDataError{
			Section: r.name,
			Offset:  r.offset,
			Need:    n,
			Have:    len(r.section) - r.offset,
		}
	}
	bs := r.section[r.offset : r.offset+n]
	r.offset += n
	return bs, nil
}

func (r *sectionCursor) takeUint32() (uint32, error) {
	bs, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (r *sectionCursor) takeUint32Prefixed() ([]byte, error) {
	length, err := r.takeUint32()
	if err != nil {
		return nil, err
	}
	return r.take(int(length))
}

func (r *sectionCursor) takeFloats(n int) ([]float32, error) {
	components := make([]float32, 0, n)
	for i := 0; i < n; i++ {
		raw, err := r.takeUint32()
		if err != nil {
			return nil, err
		}
		components = append(components, math.Float32frombits(raw))
	}
	return components, nil
}
