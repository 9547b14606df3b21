package gff

import (
	"testing"

	"aurora-gff/gff/gfield"
	"aurora-gff/gff/gtree"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RoundTripSuite struct {
	suite.Suite
	*require.Assertions
}

func (s *RoundTripSuite) SetupSuite() {
	s.Assertions = s.Require()
}

// createFullTree covers every field type the format defines, nested
// structs and lists included.
func createFullTree() File {
	stringRef := uint32(5100)
	child := &gtree.Node{
		StructID: 7,
		Fields: []gtree.Field{
			{Label: "Active", Value: gfield.Value{Type: gfield.TypeUint8, Data: uint8(1)}},
		},
	}
	return File{
		FileType:    "UTT ",
		FileVersion: "V3.2",
		Root: &gtree.Node{
			StructID: -1,
			Fields: []gtree.Field{
				{Label: "Type", Value: gfield.Value{Type: gfield.TypeUint8, Data: uint8(200)}},
				{Label: "Bias", Value: gfield.Value{Type: gfield.TypeInt8, Data: int8(-5)}},
				{Label: "PortraitId", Value: gfield.Value{Type: gfield.TypeUint16, Data: uint16(60000)}},
				{Label: "Delta", Value: gfield.Value{Type: gfield.TypeInt16, Data: int16(-12345)}},
				{Label: "Faction", Value: gfield.Value{Type: gfield.TypeUint32, Data: uint32(4_000_000_000)}},
				{Label: "Offset", Value: gfield.Value{Type: gfield.TypeInt32, Data: int32(-2_000_000_000)}},
				{Label: "Id64", Value: gfield.Value{Type: gfield.TypeUint64, Data: uint64(9_876_543_210_123)}},
				{Label: "Signed64", Value: gfield.Value{Type: gfield.TypeInt64, Data: int64(-9_876_543_210_123)}},
				{Label: "HighlightHeight", Value: gfield.Value{Type: gfield.TypeSingle, Data: float32(1.5)}},
				{Label: "Pitch", Value: gfield.Value{Type: gfield.TypeDouble, Data: 2.25}},
				{Label: "Tag", Value: gfield.Value{Type: gfield.TypeString, Data: "newtransition001"}},
				{Label: "EmptyTag", Value: gfield.Value{Type: gfield.TypeString, Data: ""}},
				{Label: "TemplateResRef", Value: gfield.Value{Type: gfield.TypeResRef, Data: gfield.ResRef{
					Name:    "newtransition",
					Padding: []byte{0xCA, 0xFE, 0xBA},
				}}},
				{Label: "LocalizedName", Value: gfield.Value{Type: gfield.TypeLocalizedString, Data: gfield.LocalizedString{
					StringRef: &stringRef,
					Substrings: []gfield.Substring{
						{LanguageID: 0, GenderID: 0, Text: "Transition"},
						{LanguageID: 2, GenderID: 1, Text: "Transition (fr)"},
					},
				}}},
				{Label: "Description", Value: gfield.Value{Type: gfield.TypeLocalizedString, Data: gfield.LocalizedString{}}},
				{Label: "Payload", Value: gfield.Value{Type: gfield.TypeBinary, Data: []byte{0x00, 0x01, 0x02, 0xFF}}},
				{Label: "Position", Value: gfield.Value{Type: gfield.TypeVector3, Data: gfield.Vector3{X: 1.5, Y: -0.25, Z: 8}}},
				{Label: "Orientation", Value: gfield.Value{Type: gfield.TypeVector4, Data: gfield.Vector4{X: 0.5, Y: 0, Z: 0, W: 1}}},
				{Label: "Inner", Value: gfield.Value{Type: gfield.TypeStruct, Data: child}},
				{Label: "ItemList", Value: gfield.Value{Type: gfield.TypeList, Data: []*gtree.Node{
					{StructID: 0, Fields: []gtree.Field{
						{Label: "Tag", Value: gfield.Value{Type: gfield.TypeString, Data: "first"}},
					}},
					{StructID: 1, Fields: []gtree.Field{
						{Label: "Tag", Value: gfield.Value{Type: gfield.TypeString, Data: "second"}},
					}},
				}}},
			},
		},
	}
}

func (s *RoundTripSuite) TestEveryFieldType() {
	original := createFullTree()
	bs, err := Encode(original)
	s.NoError(err)

	decoded, err := Decode(bs)
	s.NoError(err)
	s.Equal(&original, decoded)
}

func (s *RoundTripSuite) TestDecodeIsPure() {
	bs, err := Encode(createFullTree())
	s.NoError(err)

	first, err := Decode(bs)
	s.NoError(err)
	second, err := Decode(bs)
	s.NoError(err)
	s.Equal(first, second)
}

func (s *RoundTripSuite) TestEncodeIsDeterministic() {
	original := createFullTree()
	first, err := Encode(original)
	s.NoError(err)
	second, err := Encode(original)
	s.NoError(err)
	s.Equal(first, second)
}

func (s *RoundTripSuite) TestJSONProjection() {
	original := createFullTree()
	bs, err := Encode(original)
	s.NoError(err)

	jsonBytes, err := DecodeGFF(bs, false)
	s.NoError(err)

	// the projection re-encodes to the same bytes since the layout is a
	// pure function of the tree
	rebuilt, err := EncodeJSON(jsonBytes)
	s.NoError(err)
	s.Equal(bs, rebuilt)
}

func (s *RoundTripSuite) TestUnknownTypeSurvivesJSONProjection() {
	original := File{
		FileType:    "UTT ",
		FileVersion: "V3.2",
		Root: &gtree.Node{
			Fields: []gtree.Field{
				{Label: "Mystery", Value: gfield.Value{Type: gfield.Type(77), Data: uint32(0xDEADBEEF)}},
			},
		},
	}
	bs, err := Encode(original)
	s.NoError(err)

	decoded, err := DecodeWithOptions(bs, gtree.DecodeOptions{PreserveUnknownFields: true})
	s.NoError(err)
	s.Equal(&original, decoded)

	lhm, err := ToLinkedHashMap(*decoded)
	s.NoError(err)
	jsonBytes, err := lhm.ToJSON()
	s.NoError(err)

	rebuilt, err := EncodeJSON(jsonBytes)
	s.NoError(err)
	s.Equal(bs, rebuilt)
}

func TestRoundTripSuite(t *testing.T) {
	suite.Run(t, &RoundTripSuite{})
}

func TestIsGFFFile(t *testing.T) {
	bs, err := Encode(createFullTree())
	require.NoError(t, err)
	require.True(t, IsGFFFile(bs))

	require.False(t, IsGFFFile([]byte("UTT V3.2")))
	require.False(t, IsGFFFile([]byte(`{"file_type": "UTT "}`)))

	mangled := append([]byte{}, bs...)
	mangled[4] = 'W'
	require.False(t, IsGFFFile(mangled))
}

func TestDecodeGFF_Debug(t *testing.T) {
	bs, err := Encode(createFullTree())
	require.NoError(t, err)

	jsonBytes, err := DecodeGFF(bs, true)
	require.NoError(t, err)
	require.Contains(t, string(jsonBytes), `"struct_block"`)
	require.Contains(t, string(jsonBytes), `"field_indices"`)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte("definitely not a GFF file"))
	require.Error(t, err)
}
