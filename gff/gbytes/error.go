package gbytes

import (
	"fmt"
)

type (
	// EncodingError reports a non-ASCII byte in a position the format
	// requires to be ASCII (labels, resrefs, file tags), or text that
	// does not fit its fixed-width slot.
	EncodingError struct {
		Caller string
		Reason string
	}
)

func (r EncodingError) Error() string {
	return fmt.Sprintf("%s: %s", r.Caller, r.Reason)
}

func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
