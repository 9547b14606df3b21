package gfield

import (
	"testing"

	"aurora-gff/gff/gbytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSimple_ZeroExtension(t *testing.T) {
	testCases := []struct {
		value    Value
		expected uint32
	}{
		{Value{Type: TypeUint8, Data: uint8(0xFF)}, 0xFF},
		{Value{Type: TypeInt8, Data: int8(-1)}, 0xFF},
		{Value{Type: TypeUint16, Data: uint16(0xFFFF)}, 0xFFFF},
		{Value{Type: TypeInt16, Data: int16(-2)}, 0xFFFE},
		{Value{Type: TypeUint32, Data: uint32(42)}, 42},
		{Value{Type: TypeInt32, Data: int32(-1)}, 0xFFFFFFFF},
		{Value{Type: TypeSingle, Data: float32(1.5)}, 0x3FC00000},
	}
	for _, testCase := range testCases {
		raw, err := EncodeSimple(testCase.value)
		require.NoError(t, err)
		assert.Equal(t, testCase.expected, raw, testCase.value.Type.String())
	}
}

func TestEncodeSimple_RejectsMismatchedData(t *testing.T) {
	_, err := EncodeSimple(Value{Type: TypeUint8, Data: "not a number"})
	assert.Error(t, err)
}

func TestEncodeComplex_String(t *testing.T) {
	bs, err := EncodeComplex(Value{Type: TypeString, Data: "hello"})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x05, 0x00, 0x00, 0x00, 'h', 'e', 'l', 'l', 'o'}, bs)
}

func TestEncodeComplex_Binary(t *testing.T) {
	bs, err := EncodeComplex(Value{Type: TypeBinary, Data: []byte{0xDE, 0xAD}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 0xDE, 0xAD}, bs)
}

func TestEncodeComplex_ResRef_RebuildsSlot(t *testing.T) {
	bs, err := EncodeComplex(Value{Type: TypeResRef, Data: ResRef{Name: "abc"}})
	require.NoError(t, err)
	require.Equal(t, 1+ResRefSlotSize, len(bs))
	assert.Equal(t, byte(3), bs[0])
	assert.Equal(t, []byte("abc"), bs[1:4])
	assert.Equal(t, make([]byte, 13), bs[4:])
}

func TestEncodeComplex_ResRef_TooLong(t *testing.T) {
	_, err := EncodeComplex(Value{
		Type: TypeResRef,
		Data: ResRef{Name: "a_name_longer_than_the_slot"},
	})
	assert.ErrorAs(t, err, &gbytes.EncodingError{})
}

func TestEncodeComplex_LocalizedString_TotalSize(t *testing.T) {
	stringRef := uint32(5100)
	bs, err := EncodeComplex(Value{
		Type: TypeLocalizedString,
		Data: LocalizedString{
			StringRef: &stringRef,
			Substrings: []Substring{
				{LanguageID: 2, GenderID: 3, Text: "salut"},
			},
		},
	})
	require.NoError(t, err)

	// total size covers string ref + substring count + substrings
	assert.Equal(t, gbytes.EncodeUint32(21), bs[0:4])
	assert.Equal(t, gbytes.EncodeUint32(5100), bs[4:8])
	assert.Equal(t, gbytes.EncodeUint32(1), bs[8:12])
	assert.Equal(t, gbytes.EncodeUint32(0x0203), bs[12:16])
	assert.Equal(t, gbytes.EncodeUint32(5), bs[16:20])
	assert.Equal(t, []byte("salut"), bs[20:])
}

func TestEncodeComplex_LocalizedString_NoStringRef(t *testing.T) {
	bs, err := EncodeComplex(Value{Type: TypeLocalizedString, Data: LocalizedString{}})
	require.NoError(t, err)
	assert.Equal(t, gbytes.EncodeUint32(NoStringRef), bs[4:8])
}

func TestEncodeComplex_RoundTrip(t *testing.T) {
	stringRef := uint32(77)
	values := []Value{
		{Type: TypeUint64, Data: uint64(12_345_678_901)},
		{Type: TypeInt64, Data: int64(-12_345_678_901)},
		{Type: TypeDouble, Data: 2.25},
		{Type: TypeString, Data: "hello, world"},
		{Type: TypeResRef, Data: ResRef{Name: "abc", Padding: []byte{0xCA, 0xFE, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}}},
		{Type: TypeLocalizedString, Data: LocalizedString{
			StringRef: &stringRef,
			Substrings: []Substring{
				{LanguageID: 0, GenderID: 0, Text: "hello"},
				{LanguageID: 2, GenderID: 1, Text: "bonjour"},
			},
		}},
		{Type: TypeBinary, Data: []byte{0x00, 0x01, 0x02}},
		{Type: TypeVector3, Data: Vector3{X: 1.5, Y: -0.25, Z: 8}},
		{Type: TypeVector4, Data: Vector4{X: 1.5, Y: -0.25, Z: 8, W: 0.5}},
	}
	for _, value := range values {
		bs, err := EncodeComplex(value)
		require.NoError(t, err)

		decoded, err := DecodeComplex(Entry{Type: value.Type}, bs)
		require.NoError(t, err, value.Type.String())
		assert.Equal(t, value, *decoded, value.Type.String())
	}
}

func TestEncodeEntry(t *testing.T) {
	bs := EncodeEntry(Entry{Type: TypeString, LabelIndex: 2, DataOrOffset: 24})
	assert.Equal(
		t,
		[]byte{
			0x0A, 0x00, 0x00, 0x00,
			0x02, 0x00, 0x00, 0x00,
			0x18, 0x00, 0x00, 0x00,
		},
		bs,
	)
}
