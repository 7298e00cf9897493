package codec

import (
	"encoding/json"
	"fmt"
)

// ValidationError indicates a document does not conform to its schema.
type ValidationError struct {
	Schema  string
	Content json.RawMessage
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Schema, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// VersionError indicates an envelope was written for an incompatible
// protocol version.
type VersionError struct {
	Got  string
	Want string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported protocol version %q (compatible with %s)", e.Got, e.Want)
}

// UnsupportedValueError indicates Encode was given a value that belongs to
// no message family.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported message value %T", e.Value)
}
