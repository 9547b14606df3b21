package gff

import (
	"encoding/json"

	"aurora-gff/gff/gtree"
	"github.com/pkg/errors"
)

// DecodeGFF turns GFF bytes into indented JSON. With debug set, the raw
// section tables are emitted instead of the tree projection.
func DecodeGFF(bs []byte, debug bool) ([]byte, error) {
	if debug {
		structuredFile, err := gtree.ToStructuredFile(bs)
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(structuredFile, "", "  ")
	}

	decodedFile, err := Decode(bs)
	if err != nil {
		return nil, err
	}
	decodedLhm, err := ToLinkedHashMap(*decodedFile)
	if err != nil {
		err := errors.Wrap(err, "gff.DecodeGFF error")
		return nil, err
	}
	return json.MarshalIndent(decodedLhm, "", "  ")
}
