package belief

import "errors"

var (
	// ErrLengthMismatch is returned by Fit when the number of statements
	// and the number of labels disagree
	ErrLengthMismatch = errors.New("number of statements must match number of labels")

	// ErrNotImplemented is returned when the unimplemented base encoder is
	// invoked directly instead of a concrete encoder
	ErrNotImplemented = errors.New("statement encoding not implemented")
)
