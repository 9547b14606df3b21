// Package gff decodes and encodes GFF (Generic File Format) files, the
// shared binary container behind BioWare Aurora resource templates such
// as UTT, UTE and GUI. The container is self-describing: what a concrete
// template's labels mean is the caller's schema, not this package's.
package gff

import (
	"aurora-gff/gff/gtree"
	"github.com/pkg/errors"
)

type (
	// File is a fully decoded GFF file: the two header tags plus the
	// root of the struct tree.
	File struct {
		FileType    string      `json:"file_type"`
		FileVersion string      `json:"file_version"`
		Root        *gtree.Node `json:"root"`
	}
)

// IsGFFFile sniffs bs for the GFF header shape: a printable 4-byte file
// type tag followed by a "V#.#" version tag.
func IsGFFFile(bs []byte) bool {
	if len(bs) < 56 {
		return false
	}
	for i := 0; i < 8; i++ {
		if bs[i] < 0x20 || bs[i] > 0x7E {
			return false
		}
	}
	return bs[4] == 'V' && bs[6] == '.' &&
		isDigit(bs[5]) && isDigit(bs[7])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Decode parses a GFF byte buffer into its tree form. The returned tree
// owns its data; bs may be reused afterwards.
func Decode(bs []byte) (*File, error) {
	return DecodeWithOptions(bs, gtree.DecodeOptions{})
}

func DecodeWithOptions(bs []byte, options gtree.DecodeOptions) (*File, error) {
	structuredFile, err := gtree.ToStructuredFile(bs)
	if err != nil {
		err := errors.Wrap(err, "gff.Decode error")
		return nil, err
	}
	root, err := gtree.ToTreeWithOptions(*structuredFile, options)
	if err != nil {
		err := errors.Wrap(err, "gff.Decode error")
		return nil, err
	}
	return &File{
		FileType:    structuredFile.Header.FileType,
		FileVersion: structuredFile.Header.FileVersion,
		Root:        root,
	}, nil
}

// Encode serializes a tree back into GFF bytes.
func Encode(file File) ([]byte, error) {
	structuredFile, err := gtree.FromTree(file.FileType, file.FileVersion, file.Root)
	if err != nil {
		err := errors.Wrap(err, "gff.Encode error")
		return nil, err
	}
	bs, err := gtree.EncodeStructuredFile(*structuredFile)
	if err != nil {
		err := errors.Wrap(err, "gff.Encode error")
		return nil, err
	}
	return bs, nil
}
