package gfield

import (
	"fmt"
	"math"

	"aurora-gff/gff/gbytes"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// EncodeSimple packs a simple value back into the 4 inline bytes of a
// field entry. Narrow types are zero-extended into the slot.
func EncodeSimple(value Value) (uint32, error) {
	switch data := value.Data.(type) {
	case uint8:
		return uint32(data), nil
	case int8:
		return uint32(uint8(data)), nil
	case uint16:
		return uint32(data), nil
	case int16:
		return uint32(uint16(data)), nil
	case uint32:
		return data, nil
	case int32:
		return uint32(data), nil
	case float32:
		return math.Float32bits(data), nil
	}
	return 0, errors.Errorf(
		`gfield.EncodeSimple error: value of type "%s" holds unexpected data "%T"`,
		value.Type, value.Data,
	)
}

// EncodeComplex produces the payload bytes a complex value occupies in
// the field data section.
func EncodeComplex(value Value) ([]byte, error) {
	switch data := value.Data.(type) {
	case uint64:
		return gbytes.EncodeUint64(data), nil
	case int64:
		return gbytes.EncodeInt64(data), nil
	case float64:
		return gbytes.EncodeFloat64(data), nil
	case string:
		bs := gbytes.EncodeUint32(uint32(len(data)))
		return append(bs, data...), nil
	case ResRef:
		return encodeResRef(data)
	case LocalizedString:
		return encodeLocalizedString(data), nil
	case []byte:
		bs := gbytes.EncodeUint32(uint32(len(data)))
		return append(bs, data...), nil
	case Vector3:
		return encodeFloats([]float32{data.X, data.Y, data.Z}), nil
	case Vector4:
		return encodeFloats([]float32{data.X, data.Y, data.Z, data.W}), nil
	}
	return nil, errors.Errorf(
		`gfield.EncodeComplex error: value of type "%s" holds unexpected data "%T"`,
		value.Type, value.Data,
	)
}

func encodeResRef(resRef ResRef) ([]byte, error) {
	if len(resRef.Name) > ResRefSlotSize {
		return nil, gbytes.EncodingError{
			Caller: "gfield.encodeResRef",
			Reason: fmt.Sprintf("resref %q is longer than %d bytes", resRef.Name, ResRefSlotSize),
		}
	}
	if !gbytes.IsASCII(resRef.Name) {
		return nil, gbytes.EncodingError{
			Caller: "gfield.encodeResRef",
			Reason: fmt.Sprintf("resref %q contains non-ASCII bytes", resRef.Name),
		}
	}
	bs := make([]byte, 0, 1+ResRefSlotSize)
	bs = append(bs, byte(len(resRef.Name)))
	bs = append(bs, resRef.Name...)
	// re-fill the slot with the original padding bytes, zeroes otherwise
	slotRemainder := gbytes.CreateZeroBytes(ResRefSlotSize - len(resRef.Name))
	copy(slotRemainder, resRef.Padding)
	bs = append(bs, slotRemainder...)
	return bs, nil
}

func encodeLocalizedString(localized LocalizedString) []byte {
	substringsBytes := lo.Reduce(
		localized.Substrings,
		func(bs []byte, substring Substring, _ int) []byte {
			stringID := uint32(substring.LanguageID)<<8 | uint32(substring.GenderID)
			bs = append(bs, gbytes.EncodeUint32(stringID)...)
			bs = append(bs, gbytes.EncodeUint32(uint32(len(substring.Text)))...)
			bs = append(bs, substring.Text...)
			return bs
		},
		[]byte{},
	)

	stringRef := NoStringRef
	if localized.StringRef != nil {
		stringRef = *localized.StringRef
	}
	// total_size covers everything after itself
	totalSize := 8 + len(substringsBytes)

	bs := make([]byte, 0, 4+totalSize)
	bs = append(bs, gbytes.EncodeUint32(uint32(totalSize))...)
	bs = append(bs, gbytes.EncodeUint32(stringRef)...)
	bs = append(bs, gbytes.EncodeUint32(uint32(len(localized.Substrings)))...)
	bs = append(bs, substringsBytes...)
	return bs
}

func encodeFloats(components []float32) []byte {
	return lo.Reduce(
		components,
		func(bs []byte, component float32, _ int) []byte {
			return append(bs, gbytes.EncodeFloat32(component)...)
		},
		make([]byte, 0, 4*len(components)),
	)
}

func EncodeEntry(entry Entry) []byte {
	bs := make([]byte, 0, DefaultEntrySize)
	bs = append(bs, gbytes.EncodeUint32(uint32(entry.Type))...)
	bs = append(bs, gbytes.EncodeUint32(uint32(entry.LabelIndex))...)
	bs = append(bs, gbytes.EncodeUint32(entry.DataOrOffset)...)
	return bs
}

func EncodeBlock(fieldEntries []Entry) []byte {
	bs := make([]byte, 0, DefaultEntrySize*len(fieldEntries))
	for _, entry := range fieldEntries {
		bs = append(bs, EncodeEntry(entry)...)
	}
	return bs
}
