package gfield

// The classification predicates below are pure functions of the type tag;
// they decide how a field entry's DataOrOffset is interpreted.

// IsKnown reports whether t is inside the 0-17 enum.
func (t Type) IsKnown() bool {
	return t <= TypeVector3
}

// IsSimple reports whether the value fits inline in the entry's 4 bytes.
func (t Type) IsSimple() bool {
	return t <= TypeInt32 || t == TypeSingle
}

// IsComplex reports whether the value lives in the field data section,
// addressed by byte offset.
func (t Type) IsComplex() bool {
	return (t >= TypeUint64 && t <= TypeBinary) ||
		t == TypeVector4 || t == TypeVector3
}

func (t Type) IsStruct() bool {
	return t == TypeStruct
}

func (t Type) IsList() bool {
	return t == TypeList
}
