// Package wire converts envelopes to and from the compact byte form that
// crosses the link between the host and display applications.
//
// The format is little-endian throughout and versioned by a one-byte
// version field behind a fixed magic. Decoding fails closed: truncated
// input, an unknown version or element kind, trailing bytes or a layout
// failing structural validation all abort with a DecodeError rather than
// yielding a partial envelope.
package wire

import "fmt"

const (
	// Magic marks the start of every serialized envelope.
	Magic uint16 = 0x4C57

	// Version is the current envelope format version.
	Version uint8 = 1
)

// Font reference kinds on the wire.
const (
	fontNone uint8 = iota
	fontBuiltin
	fontPath
	fontEmbedded
)

// Background kinds on the wire.
const (
	bgColor uint8 = iota
	bgImage
)

// DecodeError reports corrupt or version-incompatible envelope bytes.
type DecodeError struct {
	Offset int
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wire: decode at offset %d: %s: %v", e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("wire: decode at offset %d: %s", e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }
