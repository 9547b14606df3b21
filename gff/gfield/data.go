package gfield

type (
	// Type is the wire-significant field type tag. The values are fixed by
	// the format and must not be renumbered.
	Type uint32

	// Entry is one row of the field table. DataOrOffset holds the value
	// itself for simple types, a byte offset into the field data section
	// for complex types, a struct table index for TypeStruct, and a byte
	// offset into the list indices section for TypeList.
	Entry struct {
		Type         Type   `json:"field_type"`
		LabelIndex   int    `json:"label_index"`
		DataOrOffset uint32 `json:"data_or_offset"`
	}

	// Value is a decoded field value: a type tag plus the concrete data.
	// Data holds uint8/int8/uint16/int16/uint32/int32/float32 for the
	// simple types, uint64/int64/float64/string/ResRef/LocalizedString/
	// []byte/Vector3/Vector4 for the complex ones, and tree nodes
	// (owned by the caller's package) for struct and list values.
	Value struct {
		Type Type `json:"type"`
		Data any  `json:"data"`
	}

	// ResRef is a short ASCII resource name stored in a fixed 16-byte
	// slot. Padding carries the slot bytes past the name, which real
	// files do not always zero; they round-trip verbatim.
	ResRef struct {
		Name    string `json:"name"`
		Padding []byte `json:"padding,omitempty"`
	}

	// LocalizedString is a string value with per-language/gender variants
	// and an optional reference into the external talk table. A nil
	// StringRef stands for the 0xFFFFFFFF "no reference" sentinel.
	LocalizedString struct {
		StringRef  *uint32     `json:"string_ref"`
		Substrings []Substring `json:"substrings"`
	}
	Substring struct {
		LanguageID uint8  `json:"language_id"`
		GenderID   uint8  `json:"gender_id"`
		Text       string `json:"text"`
	}

	Vector3 struct {
		X float32 `json:"x"`
		Y float32 `json:"y"`
		Z float32 `json:"z"`
	}
	Vector4 struct {
		X float32 `json:"x"`
		Y float32 `json:"y"`
		Z float32 `json:"z"`
		W float32 `json:"w"`
	}
)

const (
	TypeUint8           = Type(0)
	TypeInt8            = Type(1)
	TypeUint16          = Type(2)
	TypeInt16           = Type(3)
	TypeUint32          = Type(4)
	TypeInt32           = Type(5)
	TypeUint64          = Type(6)
	TypeInt64           = Type(7)
	TypeSingle          = Type(8)
	TypeDouble          = Type(9)
	TypeString          = Type(10)
	TypeResRef          = Type(11)
	TypeLocalizedString = Type(12)
	TypeBinary          = Type(13)
	TypeStruct          = Type(14)
	TypeList            = Type(15)
	TypeVector4         = Type(16)
	TypeVector3         = Type(17)
)

const (
	DefaultEntrySize = 12
	ResRefSlotSize   = 16

	// NoStringRef is the on-disk sentinel for a localized string without
	// a talk table reference.
	NoStringRef = uint32(0xFFFFFFFF)
)

var typeNames = map[Type]string{
	TypeUint8:           "uint8",
	TypeInt8:            "int8",
	TypeUint16:          "uint16",
	TypeInt16:           "int16",
	TypeUint32:          "uint32",
	TypeInt32:           "int32",
	TypeUint64:          "uint64",
	TypeInt64:           "int64",
	TypeSingle:          "single",
	TypeDouble:          "double",
	TypeString:          "string",
	TypeResRef:          "resref",
	TypeLocalizedString: "localized_string",
	TypeBinary:          "binary",
	TypeStruct:          "struct",
	TypeList:            "list",
	TypeVector4:         "vector4",
	TypeVector3:         "vector3",
}

// String returns the canonical lowercase name of the type, or "unknown"
// for tags outside the enum.
func (t Type) String() string {
	name, ok := typeNames[t]
	if !ok {
		return "unknown"
	}
	return name
}

// TypeFromName is the inverse of Type.String.
func TypeFromName(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}
