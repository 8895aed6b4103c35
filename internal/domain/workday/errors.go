package workday

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("work record not found")

// InvalidInputError rejects a registration before anything is computed or
// persisted, naming the offending field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
