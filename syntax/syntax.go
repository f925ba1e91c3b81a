// Package syntax implements the low-level lexical rules of HTTP/1.x header
// fields: linear-whitespace and token character classes, quoted-string
// encoding and decoding, and quote-aware tokenization of delimited values.
//
// All functions operate on caller-supplied buffers, allocate nothing on the
// scanning path and are safe for concurrent use.
package syntax

//go:generate errtrace -w .

import (
	"github.com/ghettovoice/httpwire/internal/constraints"
)

// tokenChars marks the bytes allowed in an RFC 7230 Section 3.2.6 token:
// printable ASCII minus separators.
var tokenChars [256]bool

func init() {
	for c := 0x21; c < 0x7f; c++ {
		tokenChars[c] = true
	}
	for _, c := range "()<>@,;:\\\"/[]?={}" {
		tokenChars[c] = false
	}
}

// IsLWS reports whether c is linear whitespace (space or horizontal tab).
func IsLWS(c byte) bool { return c == ' ' || c == '\t' }

// IsTokenChar reports whether c may appear in a token.
func IsTokenChar(c byte) bool { return tokenChars[c] }

// IsQuoteChar reports whether c opens or closes a quoted-string.
func IsQuoteChar(c byte) bool { return c == '"' }

// IsToken reports whether s is a non-empty run of token characters.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tokenChars[s[i]] {
			return false
		}
	}
	return true
}

// IsParamName reports whether s is a valid parmname per RFC 5987
// Section 3.2.1: a token that additionally excludes asterisk, apostrophe
// and percent.
func IsParamName[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !tokenChars[c] || c == '*' || c == '\'' || c == '%' {
			return false
		}
	}
	return true
}

// TrimLWS returns s with leading and trailing linear whitespace removed.
func TrimLWS[T constraints.Byteseq](s T) T {
	begin, end := 0, len(s)
	for begin < end && IsLWS(s[begin]) {
		begin++
	}
	for begin < end && IsLWS(s[end-1]) {
		end--
	}
	return s[begin:end]
}
