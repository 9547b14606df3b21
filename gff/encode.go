package gff

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
)

// EncodeJSON turns the JSON projection produced by DecodeGFF back into
// GFF bytes.
func EncodeJSON(fileBytes []byte) ([]byte, error) {
	lhm := orderedmap.New()
	if err := json.Unmarshal(fileBytes, lhm); err != nil {
		err := errors.Wrap(err, "gff.EncodeJSON error")
		return nil, err
	}
	decodedFile, err := FromOrderedMap(*lhm)
	if err != nil {
		err := errors.Wrap(err, "gff.EncodeJSON error")
		return nil, err
	}
	return Encode(*decodedFile)
}
