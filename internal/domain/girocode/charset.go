package girocode

import (
	"fmt"
	"strconv"
	"strings"
)

// CharacterSet selects the text encoding announced in the payload's third line.
type CharacterSet int

// Supported character sets, numbered as in the payload's character-set line.
const (
	UTF8 CharacterSet = iota + 1
	ISO8859_1
	ISO8859_2
	ISO8859_4
	ISO8859_5
	ISO8859_7
	ISO8859_10
	ISO8859_15
)

type charsetInfo struct {
	code     int
	encoding string
}

var charsets = map[CharacterSet]charsetInfo{
	UTF8:       {code: 1, encoding: "UTF-8"},
	ISO8859_1:  {code: 2, encoding: "ISO-8859-1"},
	ISO8859_2:  {code: 3, encoding: "ISO-8859-2"},
	ISO8859_4:  {code: 4, encoding: "ISO-8859-4"},
	ISO8859_5:  {code: 5, encoding: "ISO-8859-5"},
	ISO8859_7:  {code: 6, encoding: "ISO-8859-7"},
	ISO8859_10: {code: 7, encoding: "ISO-8859-10"},
	ISO8859_15: {code: 8, encoding: "ISO-8859-15"},
}

// Code returns the numeric identifier written into the payload, or 0 for an unknown set.
func (c CharacterSet) Code() int {
	return charsets[c].code
}

// Encoding returns the IANA name of the encoding used to measure the payload.
func (c CharacterSet) Encoding() string {
	return charsets[c].encoding
}

// Known reports whether c is one of the supported character sets.
func (c CharacterSet) Known() bool {
	_, ok := charsets[c]
	return ok
}

// String returns the encoding name, or a numbered placeholder for an unknown set.
func (c CharacterSet) String() string {
	if info, ok := charsets[c]; ok {
		return info.encoding
	}
	return "CharacterSet(" + strconv.Itoa(int(c)) + ")"
}

// ParseCharacterSet accepts an encoding name such as "ISO-8859-15" or a numeric code
// such as "8". An empty name selects UTF-8.
func ParseCharacterSet(name string) (CharacterSet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UTF8, nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		for cs, info := range charsets {
			if info.code == n {
				return cs, nil
			}
		}
	}
	for cs, info := range charsets {
		if strings.EqualFold(info.encoding, name) {
			return cs, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown character set %q", ErrInvalidArgument, name)
}
