package resolver

import (
	"errors"
	"fmt"
)

// ErrBadChoice is returned when an interactive choice falls outside the
// presented candidate range. The resolver fails loudly rather than
// clamping to a valid index.
var ErrBadChoice = errors.New("choice out of range")

// NotFoundError reports that a search for one episode returned zero
// candidates after both query variants. The caller decides whether to
// keep probing further episodes.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unable to find %s", e.Query)
}
