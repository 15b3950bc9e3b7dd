package errors

import (
	"fmt"
	"strings"
)

// ValidationError reports what prevents a draft from being submitted. It is
// always user-correctable: the caller re-prompts for the missing input.
type ValidationError struct {
	MissingMethod bool
	MissingImage  bool
	MissingFields []string
}

func (e *ValidationError) Error() string {
	switch {
	case e.MissingMethod:
		return "measurement method not chosen"
	case e.MissingImage:
		return "sample image required"
	case len(e.MissingFields) > 0:
		return fmt.Sprintf("missing measurements: %s", strings.Join(e.MissingFields, ", "))
	}
	return "draft is not ready for submission"
}
