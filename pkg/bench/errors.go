package bench

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownOperation is returned for an operation name outside encode, decode and container.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrUnsupportedOperation is returned when the codec cannot perform the requested operation.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
