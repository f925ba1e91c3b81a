package syntax

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httpwire/internal/constraints"
	"github.com/ghettovoice/httpwire/internal/errorutil"
	"github.com/ghettovoice/httpwire/internal/util"
)

const (
	// ErrNotQuoted reports input without surrounding quote marks.
	ErrNotQuoted errorutil.Error = "not a quoted string"
	// ErrBareQuote reports an unescaped quote mark inside a quoted string.
	ErrBareQuote errorutil.Error = "unescaped quote inside quoted string"
	// ErrTrailingEscape reports a quoted string whose terminal quote is escaped.
	ErrTrailingEscape errorutil.Error = "escaped terminal quote"
)

// Quote wraps s in double quotes, backslash-escaping any embedded quote
// marks and backslashes.
func Quote[T constraints.Byteseq](s T) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote removes surrounding quote marks from s and resolves quoted-pair
// escapes (RFC 2616 Section 2.2). It never fails: input that is not a
// well-formed quoted string is returned unchanged.
func Unquote[T constraints.Byteseq](s T) string {
	out, err := unquote(s, false)
	if err != nil {
		return string(s)
	}
	return out
}

// StrictUnquote is like [Unquote] but insists on well-formed input: the
// string must carry a matching terminal quote, interior quote marks must be
// escaped, and the terminal quote itself must not be.
func StrictUnquote[T constraints.Byteseq](s T) (string, error) {
	return errtrace.Wrap2(unquote(s, true))
}

func unquote[T constraints.Byteseq](s T, strict bool) (string, error) {
	if len(s) == 0 || !IsQuoteChar(s[0]) {
		return "", ErrNotQuoted //errtrace:skip
	}
	// No terminal quote mark.
	if len(s) < 2 || s[0] != s[len(s)-1] {
		return "", ErrNotQuoted //errtrace:skip
	}
	s = s[1 : len(s)-1]

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	prevEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && !prevEscape {
			prevEscape = true
			continue
		}
		if strict && !prevEscape && IsQuoteChar(c) {
			return "", ErrBareQuote //errtrace:skip
		}
		prevEscape = false
		sb.WriteByte(c)
	}
	if strict && prevEscape {
		return "", ErrTrailingEscape //errtrace:skip
	}
	return sb.String(), nil
}
