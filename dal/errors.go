package dal

import "errors"

var (
	// ErrInvalidArgument means a save was attempted without a required
	// identifier.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotImplemented marks store operations deliberately outside this
	// server's scope: delivery queueing and collection-scoped lookups.
	ErrNotImplemented = errors.New("not implemented")
)
