package gheader

import (
	"fmt"
)

type (
	MalformedHeaderError struct {
		Reason string
	}
)

func (r MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed GFF header: %s", r.Reason)
}
