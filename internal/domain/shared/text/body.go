// Package text normalizes user-supplied message bodies before they are stored.
package text

import (
	"errors"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultMaxBodyLength is the storage cap, in runes, applied when no other
// limit has been configured.
const DefaultMaxBodyLength = 2000

var ErrEmptyBody = errors.New("message text cannot be empty")

var maxBodyLength atomic.Int64

func init() {
	maxBodyLength.Store(DefaultMaxBodyLength)
}

// SetMaxBodyLength changes the truncation cap. Values <= 0 restore the default.
func SetMaxBodyLength(n int) {
	if n <= 0 {
		n = DefaultMaxBodyLength
	}
	maxBodyLength.Store(int64(n))
}

func MaxBodyLength() int {
	return int(maxBodyLength.Load())
}

// NormalizeBody trims surrounding whitespace and invisible format characters
// (zero-width spaces, byte order marks), NFC-normalizes the rest and truncates
// it to MaxBodyLength runes. The text is otherwise stored as written; markup
// is escaped or sanitized when rendered, never here. Over-long input is not an
// error.
func NormalizeBody(raw string) (string, error) {
	s := strings.TrimFunc(raw, isBlank)
	if s == "" {
		return "", ErrEmptyBody
	}

	s = norm.NFC.String(s)
	return Truncate(s, MaxBodyLength()), nil
}

func isBlank(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Cf, r)
}

// Truncate cuts s to at most n runes without splitting a code point.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
