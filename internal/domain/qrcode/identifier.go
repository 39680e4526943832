package qrcode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	ErrMalformedIdentifier = errors.New("malformed qr identifier")
	ErrInvalidBatchSize    = errors.New("batch size must be positive")
)

// Identifiers look like qr00001, qrA00001, qrB73920. The numeric part is a
// 5-digit zero-padded counter; when it wraps past 99999 the letter prefix
// advances. Beyond Z the prefix grows base-26 style (Z -> AA -> AB ... ),
// so parsing accepts any run of uppercase letters even though historical
// codes carry at most one.
var identifierRegex = regexp.MustCompile(`^qr([A-Z]*)([0-9]+)$`)

const (
	identifierTag = "qr"
	numberWidth   = 5
	numberMax     = 99999
)

// Identifier is a parsed sequential tag code.
type Identifier struct {
	prefix string
	number int
}

func ParseIdentifier(s string) (Identifier, error) {
	m := identifierRegex.FindStringSubmatch(s)
	if m == nil {
		return Identifier{}, ErrMalformedIdentifier
	}

	n, err := strconv.Atoi(m[2])
	if err != nil || n > numberMax {
		return Identifier{}, ErrMalformedIdentifier
	}

	return Identifier{prefix: m[1], number: n}, nil
}

func (id Identifier) String() string {
	return fmt.Sprintf("%s%s%0*d", identifierTag, id.prefix, numberWidth, id.number)
}

// Next returns the identifier following id: the number increments within
// its 5-digit window, and at 99999 it resets to 00001 while the prefix
// advances one letter.
func (id Identifier) Next() Identifier {
	if id.number < numberMax {
		return Identifier{prefix: id.prefix, number: id.number + 1}
	}
	return Identifier{prefix: nextPrefix(id.prefix), number: 1}
}

// nextPrefix ripples a base-26 carry through the letters: "" -> A, A -> B,
// Z -> AA, AZ -> BA, ZZ -> AAA.
func nextPrefix(prefix string) string {
	if prefix == "" {
		return "A"
	}

	letters := []byte(prefix)
	for i := len(letters) - 1; i >= 0; i-- {
		if letters[i] < 'Z' {
			letters[i]++
			return string(letters)
		}
		letters[i] = 'A'
	}
	// every position was Z
	return "A" + string(letters)
}

// Batch generates count identifiers in sequence starting from (and
// including) start.
func Batch(start Identifier, count int) ([]string, error) {
	if count <= 0 {
		return nil, ErrInvalidBatchSize
	}

	ids := make([]string, 0, count)
	cur := start
	for i := 0; i < count; i++ {
		ids = append(ids, cur.String())
		cur = cur.Next()
	}
	return ids, nil
}

// FirstIdentifier is where a fresh inventory starts counting.
func FirstIdentifier() Identifier {
	return Identifier{number: 1}
}

// IsIdentifier reports whether s parses as a tag code without surfacing the
// parsed form.
func IsIdentifier(s string) bool {
	_, err := ParseIdentifier(s)
	return err == nil
}
