package geotrack

import "errors"

var (
	// ErrMalformedInput reports a document that is not well-formed or lacks
	// required coordinates.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidArgument reports a caller supplied value out of range.
	ErrInvalidArgument = errors.New("invalid argument")
)
