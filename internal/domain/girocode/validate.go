package girocode

import (
	"fmt"
	"unicode/utf8"
)

// MaxPayloadSize is the EPC069-12 version 002 limit on the encoded payload.
const MaxPayloadSize = 331

// Outcome reports the encoded form of a payload and, when rejected, why.
type Outcome struct {
	Encoded []byte
	Size    int
	Err     error
}

// Valid reports whether the payload may be handed to the QR encoder.
func (o Outcome) Valid() bool {
	return o.Err == nil
}

// EncodePayload converts payload to the bytes of cs. Unknown character sets
// produce no bytes.
func EncodePayload(payload string, cs CharacterSet, enc TextEncoder) ([]byte, error) {
	switch {
	case cs == UTF8:
		if !utf8.ValidString(payload) {
			return nil, fmt.Errorf("%w: %s: invalid byte sequence", ErrUnsupportedCharacter, cs)
		}
		return []byte(payload), nil
	case !cs.Known():
		return nil, nil
	}

	b, err := enc.Encode(payload, cs.Encoding())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedCharacter, cs, err)
	}
	return b, nil
}

// Validate checks that payload encodes to between 1 and MaxPayloadSize bytes in cs.
func Validate(payload string, cs CharacterSet, enc TextEncoder) Outcome {
	b, err := EncodePayload(payload, cs, enc)
	if err != nil {
		return Outcome{Err: err}
	}

	size := len(b)
	switch {
	case size == 0:
		return Outcome{Size: size, Err: ErrPayloadEmpty}
	case size > MaxPayloadSize:
		return Outcome{Size: size, Err: fmt.Errorf("%w: %d > %d bytes", ErrPayloadTooLarge, size, MaxPayloadSize)}
	}
	return Outcome{Encoded: b, Size: size}
}
