// Package numutil converts decimal strings to integers, classifying failures
// as malformed input, overflow, or underflow.
package numutil

//go:generate errtrace -w .

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpwire/internal/constraints"
	"github.com/ghettovoice/httpwire/internal/errorutil"
)

// Format restricts the accepted shape of the input.
type Format int

const (
	// NonNegative accepts strings that begin with a digit.
	NonNegative Format = iota
	// OptionallyNegative additionally accepts strings that begin with a
	// minus sign.
	OptionallyNegative
)

const (
	// ErrMalformed reports input that is not a plain decimal integer.
	// Leading/trailing whitespace, a leading plus sign and non-digit bytes
	// all fall here.
	ErrMalformed errorutil.Error = "malformed number"
	// ErrOverflow reports a well-formed positive number too large for the
	// destination type.
	ErrOverflow errorutil.Error = "number overflow"
	// ErrUnderflow reports a well-formed negative number too small for the
	// destination type.
	ErrUnderflow errorutil.Error = "number underflow"
)

// ParseInt32 parses s as a decimal int32.
func ParseInt32[T constraints.Byteseq](s T, format Format) (int32, error) {
	v, err := parseSigned(string(s), format, 32)
	return int32(v), errtrace.Wrap(err)
}

// ParseInt64 parses s as a decimal int64.
func ParseInt64[T constraints.Byteseq](s T, format Format) (int64, error) {
	return errtrace.Wrap2(parseSigned(string(s), format, 64))
}

// ParseUint32 parses s as a decimal uint32. The input must begin with a digit.
func ParseUint32[T constraints.Byteseq](s T) (uint32, error) {
	v, err := parseUnsigned(string(s), 32)
	return uint32(v), errtrace.Wrap(err)
}

// ParseUint64 parses s as a decimal uint64. The input must begin with a digit.
func ParseUint64[T constraints.Byteseq](s T) (uint64, error) {
	return errtrace.Wrap2(parseUnsigned(string(s), 64))
}

func parseSigned(s string, format Format, bitSize int) (int64, error) {
	if s == "" {
		return 0, ErrMalformed //errtrace:skip
	}
	neg := s[0] == '-'
	if !isDigit(s[0]) && (format == NonNegative || !neg) {
		return 0, ErrMalformed //errtrace:skip
	}
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err == nil {
		return v, nil
	}
	return 0, classify(s, neg) //errtrace:skip
}

func parseUnsigned(s string, bitSize int) (uint64, error) {
	if s == "" || !isDigit(s[0]) {
		return 0, ErrMalformed //errtrace:skip
	}
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err == nil {
		return v, nil
	}
	return 0, classify(s, false) //errtrace:skip
}

// classify distinguishes range errors from plain garbage after a failed
// conversion. The converted value cannot be used for this: it is ambiguous
// between parse errors and clamping. Instead the numeric-looking portion is
// re-scanned for all-digit composition; if it is all digits the failure must
// have been out-of-range in the direction of the sign.
func classify(s string, neg bool) error {
	numeric := s
	if neg {
		numeric = s[1:]
	}
	if numeric == "" {
		return ErrMalformed
	}
	for i := 0; i < len(numeric); i++ {
		if !isDigit(numeric[i]) {
			return ErrMalformed
		}
	}
	if neg {
		return ErrUnderflow
	}
	return ErrOverflow
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
