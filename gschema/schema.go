// Package gschema is the seam between the generic GFF codec and a
// concrete template format. Callers supply a label-to-type table per
// format (UTT, UTE, GUI, ...) and check decoded trees against it; the
// codec itself stays schema-blind.
package gschema

import (
	"fmt"

	"aurora-gff/gff/gfield"
	"aurora-gff/gff/gtree"
)

type (
	// Schema maps field labels to the field type a format declares for
	// them. A schema is allowed to be partial: labels it does not name
	// pass validation untouched.
	Schema map[string]gfield.Type

	MismatchError struct {
		Label string
		Want  gfield.Type
		Got   gfield.Type
	}
)

func (r MismatchError) Error() string {
	return fmt.Sprintf(
		`field "%s" holds type "%s"; the schema declares "%s"`,
		r.Label, r.Got, r.Want,
	)
}

func (r Schema) TypeOf(label string) (gfield.Type, bool) {
	fieldType, ok := r[label]
	return fieldType, ok
}

// Validate walks the whole tree and reports the first field whose type
// disagrees with the schema.
func (r Schema) Validate(root *gtree.Node) error {
	if root == nil {
		return nil
	}
	for _, field := range root.Fields {
		if want, ok := r[field.Label]; ok && want != field.Value.Type {
			return MismatchError{Label: field.Label, Want: want, Got: field.Value.Type}
		}
		switch data := field.Value.Data.(type) {
		case *gtree.Node:
			if err := r.Validate(data); err != nil {
				return err
			}
		case []*gtree.Node:
			for _, child := range data {
				if err := r.Validate(child); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
