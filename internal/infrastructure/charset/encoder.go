package charset

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/ianaindex"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoder converts UTF-8 text into a named IANA character set.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode fails if text contains a rune the target encoding cannot represent.
func (e *Encoder) Encode(text, encodingName string) ([]byte, error) {
	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownEncoding, encodingName, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %s is not supported", ErrUnknownEncoding, encodingName)
	}

	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode to %s: %w", encodingName, err)
	}
	return out, nil
}
