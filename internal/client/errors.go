package client

import "errors"

var (
	// ErrUsage is returned for an unknown command or wrong arguments.
	ErrUsage = errors.New("usage")

	// ErrCallFailed is returned when the server answered with an error
	// record.
	ErrCallFailed = errors.New("call failed")
)
