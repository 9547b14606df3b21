package glabel

import (
	"fmt"
	"strings"

	"aurora-gff/gff/gbytes"
	"github.com/pkg/errors"
)

func DecodeEntry(reader *gbytes.Reader) (string, error) {
	label, err := reader.ReadString(DefaultEntrySize)
	if err != nil {
		err := errors.Wrap(err, "glabel.DecodeEntry error")
		return "", err
	}
	label = strings.TrimRight(label, "\x00")
	if !gbytes.IsASCII(label) {
		return "", gbytes.EncodingError{
			Caller: "glabel.DecodeEntry",
			Reason: fmt.Sprintf("label %q contains non-ASCII bytes", label),
		}
	}
	return label, nil
}

func DecodeBlock(reader *gbytes.Reader, numLabels int) ([]string, error) {
	labels := make([]string, 0, numLabels)
	for i := 0; i < numLabels; i++ {
		label, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrap(err, "glabel.DecodeBlock error")
			return nil, err
		}
		labels = append(labels, label)
	}

	return labels, nil
}
