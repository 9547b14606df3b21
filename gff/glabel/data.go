// Package glabel handles the GFF label table: fixed 16-byte ASCII names
// referenced from field entries by index.
package glabel

const (
	DefaultEntrySize = 16
)
