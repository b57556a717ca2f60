package availability

import "errors"

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	// ErrorKindInput marks a malformed batch (missing slots, bad duration),
	// rejected before any per-slot processing.
	ErrorKindInput ErrorKind = "input"
	// ErrorKindSlot marks a single invalid slot (bad day, bad time).
	ErrorKindSlot ErrorKind = "slot"
	// ErrorKindOverlap marks two same-day slots whose intervals intersect.
	ErrorKindOverlap ErrorKind = "overlap"
)

// ValidationError is the tagged rejection of an availability batch. Any single
// invalid slot discards the whole batch; nothing is persisted.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
