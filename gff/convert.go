package gff

import (
	"encoding/base64"
	"strconv"

	"aurora-gff/ds"
	"aurora-gff/gff/gfield"
	"aurora-gff/gff/gtree"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// The JSON projection wraps every field as {"type": ..., "value": ...} so
// the bytes can be rebuilt without a schema. Type names are the canonical
// lowercase ones; an out-of-enum tag kept by PreserveUnknownFields appears
// as its numeric value. 64-bit integers travel as decimal strings since
// JSON numbers are float64, and binary payloads as base64.

const structIDKey = "__struct_id"

func ToLinkedHashMap(file File) (*ds.LinkedHashMap[string, any], error) {
	rootLhm, err := nodeToLinkedHashMap(file.Root)
	if err != nil {
		return nil, err
	}
	lhm := ds.NewLinkedHashMap[string, any]()
	lhm.Put("file_type", file.FileType)
	lhm.Put("file_version", file.FileVersion)
	lhm.Put("root", rootLhm)
	return lhm, nil
}

func nodeToLinkedHashMap(node *gtree.Node) (*ds.LinkedHashMap[string, any], error) {
	lhm := ds.NewLinkedHashMap[string, any]()
	lhm.Put(structIDKey, node.StructID)
	for _, field := range node.Fields {
		fieldLhm := ds.NewLinkedHashMap[string, any]()
		if field.Value.Type.IsKnown() {
			fieldLhm.Put("type", field.Value.Type.String())
		} else {
			fieldLhm.Put("type", uint32(field.Value.Type))
		}
		valueAny, err := valueToAny(field.Value)
		if err != nil {
			err := errors.Wrapf(err, `gff.nodeToLinkedHashMap error converting field "%s"`, field.Label)
			return nil, err
		}
		fieldLhm.Put("value", valueAny)
		lhm.Put(field.Label, fieldLhm)
	}
	return lhm, nil
}

func valueToAny(value gfield.Value) (any, error) {
	switch data := value.Data.(type) {
	case uint8, int8, uint16, int16, uint32, int32, float32, float64:
		return data, nil
	case uint64:
		return strconv.FormatUint(data, 10), nil
	case int64:
		return strconv.FormatInt(data, 10), nil
	case string:
		return data, nil
	case gfield.ResRef:
		lhm := ds.NewLinkedHashMap[string, any]()
		lhm.Put("name", data.Name)
		if len(data.Padding) > 0 {
			lhm.Put("padding", base64.StdEncoding.EncodeToString(data.Padding))
		}
		return lhm, nil
	case gfield.LocalizedString:
		return localizedStringToLinkedHashMap(data), nil
	case []byte:
		return base64.StdEncoding.EncodeToString(data), nil
	case gfield.Vector3:
		return []any{data.X, data.Y, data.Z}, nil
	case gfield.Vector4:
		return []any{data.X, data.Y, data.Z, data.W}, nil
	case *gtree.Node:
		return nodeToLinkedHashMap(data)
	case []*gtree.Node:
		children := make([]any, 0, len(data))
		for _, child := range data {
			childLhm, err := nodeToLinkedHashMap(child)
			if err != nil {
				return nil, err
			}
			children = append(children, childLhm)
		}
		return children, nil
	}
	return nil, errors.Errorf(
		`gff.valueToAny error: value of type "%s" holds unexpected data "%T"`,
		value.Type, value.Data,
	)
}

func localizedStringToLinkedHashMap(localized gfield.LocalizedString) *ds.LinkedHashMap[string, any] {
	lhm := ds.NewLinkedHashMap[string, any]()
	if localized.StringRef != nil {
		lhm.Put("string_ref", *localized.StringRef)
	} else {
		lhm.Put("string_ref", nil)
	}
	substrings := lo.Map(
		localized.Substrings,
		func(substring gfield.Substring, _ int) any {
			substringLhm := ds.NewLinkedHashMap[string, any]()
			substringLhm.Put("language_id", substring.LanguageID)
			substringLhm.Put("gender_id", substring.GenderID)
			substringLhm.Put("text", substring.Text)
			return substringLhm
		},
	)
	lhm.Put("substrings", substrings)
	return lhm
}

func FromOrderedMap(lhm orderedmap.OrderedMap) (*File, error) {
	fileTypeAny, ok := lhm.Get("file_type")
	if !ok {
		return nil, errors.New(`gff.FromOrderedMap error: key "file_type" is missing`)
	}
	fileVersionAny, ok := lhm.Get("file_version")
	if !ok {
		return nil, errors.New(`gff.FromOrderedMap error: key "file_version" is missing`)
	}
	rootAny, ok := lhm.Get("root")
	if !ok {
		return nil, errors.New(`gff.FromOrderedMap error: key "root" is missing`)
	}
	fileType, ok := fileTypeAny.(string)
	if !ok {
		return nil, errors.Errorf(`gff.FromOrderedMap error: "file_type" holds "%T"`, fileTypeAny)
	}
	fileVersion, ok := fileVersionAny.(string)
	if !ok {
		return nil, errors.Errorf(`gff.FromOrderedMap error: "file_version" holds "%T"`, fileVersionAny)
	}
	rootOm, ok := rootAny.(orderedmap.OrderedMap)
	if !ok {
		return nil, errors.Errorf(`gff.FromOrderedMap error: "root" holds "%T"`, rootAny)
	}
	root, err := nodeFromOrderedMap(rootOm)
	if err != nil {
		return nil, err
	}
	return &File{
		FileType:    fileType,
		FileVersion: fileVersion,
		Root:        root,
	}, nil
}

func nodeFromOrderedMap(om orderedmap.OrderedMap) (*gtree.Node, error) {
	node := gtree.Node{}
	for _, key := range om.Keys() {
		valueAny, _ := om.Get(key)
		if key == structIDKey {
			structID, ok := valueAny.(float64)
			if !ok {
				return nil, errors.Errorf(`gff.nodeFromOrderedMap error: "%s" holds "%T"`, key, valueAny)
			}
			node.StructID = int32(structID)
			continue
		}
		fieldOm, ok := valueAny.(orderedmap.OrderedMap)
		if !ok {
			return nil, errors.Errorf(`gff.nodeFromOrderedMap error: field "%s" holds "%T"`, key, valueAny)
		}
		value, err := fieldValueFromOrderedMap(fieldOm)
		if err != nil {
			err := errors.Wrapf(err, `gff.nodeFromOrderedMap error converting field "%s"`, key)
			return nil, err
		}
		node.Fields = append(node.Fields, gtree.Field{Label: key, Value: *value})
	}
	return &node, nil
}

func fieldValueFromOrderedMap(fieldOm orderedmap.OrderedMap) (*gfield.Value, error) {
	typeAny, ok := fieldOm.Get("type")
	if !ok {
		return nil, errors.New(`key "type" is missing`)
	}
	raw, ok := fieldOm.Get("value")
	if !ok {
		return nil, errors.New(`key "value" is missing`)
	}

	switch typeTag := typeAny.(type) {
	case string:
		fieldType, ok := gfield.TypeFromName(typeTag)
		if !ok {
			return nil, errors.Errorf(`"%s" is not a field type name`, typeTag)
		}
		data, err := dataFromAny(fieldType, raw)
		if err != nil {
			return nil, err
		}
		return &gfield.Value{Type: fieldType, Data: data}, nil
	case float64:
		// a numeric tag is an out-of-enum type preserved as raw bytes
		rawValue, ok := raw.(float64)
		if !ok {
			return nil, errors.Errorf(`unknown-type value holds "%T" instead of a number`, raw)
		}
		return &gfield.Value{Type: gfield.Type(uint32(typeTag)), Data: uint32(rawValue)}, nil
	}
	return nil, errors.Errorf(`key "type" holds "%T"`, typeAny)
}

func dataFromAny(fieldType gfield.Type, raw any) (any, error) {
	switch fieldType {
	case gfield.TypeUint8, gfield.TypeInt8, gfield.TypeUint16, gfield.TypeInt16,
		gfield.TypeUint32, gfield.TypeInt32, gfield.TypeSingle, gfield.TypeDouble:
		number, ok := raw.(float64)
		if !ok {
			return nil, errors.Errorf(`value of type "%s" holds "%T" instead of a number`, fieldType, raw)
		}
		return numberData(fieldType, number), nil
	case gfield.TypeUint64:
		text, ok := raw.(string)
		if !ok {
			return nil, errors.Errorf(`value of type "%s" holds "%T" instead of a decimal string`, fieldType, raw)
		}
		return strconv.ParseUint(text, 10, 64)
	case gfield.TypeInt64:
		text, ok := raw.(string)
		if !ok {
			return nil, errors.Errorf(`value of type "%s" holds "%T" instead of a decimal string`, fieldType, raw)
		}
		return strconv.ParseInt(text, 10, 64)
	case gfield.TypeString:
		text, ok := raw.(string)
		if !ok {
			return nil, errors.Errorf(`value of type "%s" holds "%T" instead of a string`, fieldType, raw)
		}
		return text, nil
	case gfield.TypeResRef:
		return resRefFromAny(raw)
	case gfield.TypeLocalizedString:
		return localizedStringFromAny(raw)
	case gfield.TypeBinary:
		text, ok := raw.(string)
		if !ok {
			return nil, errors.Errorf(`value of type "%s" holds "%T" instead of base64 text`, fieldType, raw)
		}
		return base64.StdEncoding.DecodeString(text)
	case gfield.TypeVector3:
		components, err := floatComponentsFromAny(raw, 3)
		if err != nil {
			return nil, err
		}
		return gfield.Vector3{X: components[0], Y: components[1], Z: components[2]}, nil
	case gfield.TypeVector4:
		components, err := floatComponentsFromAny(raw, 4)
		if err != nil {
			return nil, err
		}
		return gfield.Vector4{X: components[0], Y: components[1], Z: components[2], W: components[3]}, nil
	case gfield.TypeStruct:
		childOm, ok := raw.(orderedmap.OrderedMap)
		if !ok {
			return nil, errors.Errorf(`value of type "%s" holds "%T" instead of an object`, fieldType, raw)
		}
		return nodeFromOrderedMap(childOm)
	case gfield.TypeList:
		childrenAny, ok := raw.([]any)
		if !ok {
			return nil, errors.Errorf(`value of type "%s" holds "%T" instead of an array`, fieldType, raw)
		}
		children := make([]*gtree.Node, 0, len(childrenAny))
		for _, childAny := range childrenAny {
			childOm, ok := childAny.(orderedmap.OrderedMap)
			if !ok {
				return nil, errors.Errorf(`list element holds "%T" instead of an object`, childAny)
			}
			child, err := nodeFromOrderedMap(childOm)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return children, nil
	}
	return nil, gfield.UnknownFieldTypeError{RawType: uint32(fieldType)}
}

func numberData(fieldType gfield.Type, number float64) any {
	switch fieldType {
	case gfield.TypeUint8:
		return uint8(number)
	case gfield.TypeInt8:
		return int8(number)
	case gfield.TypeUint16:
		return uint16(number)
	case gfield.TypeInt16:
		return int16(number)
	case gfield.TypeUint32:
		return uint32(number)
	case gfield.TypeInt32:
		return int32(number)
	case gfield.TypeSingle:
		return float32(number)
	default:
		return number
	}
}

func resRefFromAny(raw any) (gfield.ResRef, error) {
	om, ok := raw.(orderedmap.OrderedMap)
	if !ok {
		return gfield.ResRef{}, errors.Errorf(`resref value holds "%T" instead of an object`, raw)
	}
	resRef := gfield.ResRef{}
	if nameAny, ok := om.Get("name"); ok {
		name, ok := nameAny.(string)
		if !ok {
			return gfield.ResRef{}, errors.Errorf(`resref name holds "%T"`, nameAny)
		}
		resRef.Name = name
	}
	if paddingAny, ok := om.Get("padding"); ok {
		paddingText, ok := paddingAny.(string)
		if !ok {
			return gfield.ResRef{}, errors.Errorf(`resref padding holds "%T"`, paddingAny)
		}
		padding, err := base64.StdEncoding.DecodeString(paddingText)
		if err != nil {
			return gfield.ResRef{}, errors.Wrap(err, "resref padding is not base64")
		}
		resRef.Padding = padding
	}
	return resRef, nil
}

func localizedStringFromAny(raw any) (gfield.LocalizedString, error) {
	om, ok := raw.(orderedmap.OrderedMap)
	if !ok {
		return gfield.LocalizedString{}, errors.Errorf(`localized string value holds "%T" instead of an object`, raw)
	}
	localized := gfield.LocalizedString{}
	if stringRefAny, ok := om.Get("string_ref"); ok && stringRefAny != nil {
		stringRefNumber, ok := stringRefAny.(float64)
		if !ok {
			return gfield.LocalizedString{}, errors.Errorf(`string_ref holds "%T"`, stringRefAny)
		}
		stringRef := uint32(stringRefNumber)
		localized.StringRef = &stringRef
	}
	substringsAny, ok := om.Get("substrings")
	if !ok {
		return localized, nil
	}
	substrings, ok := substringsAny.([]any)
	if !ok {
		return gfield.LocalizedString{}, errors.Errorf(`substrings holds "%T" instead of an array`, substringsAny)
	}
	for _, substringAny := range substrings {
		substringOm, ok := substringAny.(orderedmap.OrderedMap)
		if !ok {
			return gfield.LocalizedString{}, errors.Errorf(`substring holds "%T" instead of an object`, substringAny)
		}
		substring := gfield.Substring{}
		if languageAny, ok := substringOm.Get("language_id"); ok {
			language, ok := languageAny.(float64)
			if !ok {
				return gfield.LocalizedString{}, errors.Errorf(`language_id holds "%T"`, languageAny)
			}
			substring.LanguageID = uint8(language)
		}
		if genderAny, ok := substringOm.Get("gender_id"); ok {
			gender, ok := genderAny.(float64)
			if !ok {
				return gfield.LocalizedString{}, errors.Errorf(`gender_id holds "%T"`, genderAny)
			}
			substring.GenderID = uint8(gender)
		}
		if textAny, ok := substringOm.Get("text"); ok {
			text, ok := textAny.(string)
			if !ok {
				return gfield.LocalizedString{}, errors.Errorf(`substring text holds "%T"`, textAny)
			}
			substring.Text = text
		}
		localized.Substrings = append(localized.Substrings, substring)
	}
	return localized, nil
}

func floatComponentsFromAny(raw any, n int) ([]float32, error) {
	componentsAny, ok := raw.([]any)
	if !ok {
		return nil, errors.Errorf(`vector value holds "%T" instead of an array`, raw)
	}
	if len(componentsAny) != n {
		return nil, errors.Errorf("vector value holds %d components instead of %d", len(componentsAny), n)
	}
	components := make([]float32, 0, n)
	for _, componentAny := range componentsAny {
		component, ok := componentAny.(float64)
		if !ok {
			return nil, errors.Errorf(`vector component holds "%T"`, componentAny)
		}
		components = append(components, float32(component))
	}
	return components, nil
}
