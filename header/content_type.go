package header

import (
	"strings"

	"github.com/ghettovoice/httpwire/internal/util"
	"github.com/ghettovoice/httpwire/syntax"
)

// The rules for parsing content-types were borrowed from Firefox.
// They mostly match https://mimesniff.spec.whatwg.org/, but do not validate
// token code points and ignore spaces after "=" in parameters.

// ParseContentType extracts the media type and the first-seen charset (and,
// when boundary is non-nil, boundary) parameters from a Content-Type value.
//
// The out-parameters accumulate state across repeated calls, one per header
// occurrence. A changed media type (case-insensitive) replaces the stored
// one and takes its charset; an unchanged media type still lets a newly-seen
// charset overwrite the stored one, but the absence of a charset parameter
// never erases a previously recorded charset. hadCharset tracks whether a
// charset was ever seen and must persist between calls alongside mimeType
// and charset.
//
// An empty value, a literal "*/*" or a media type without a slash leaves all
// out-state unchanged.
func ParseContentType(value string, mimeType, charset *string, hadCharset *bool, boundary *string) {
	// Trim leading whitespace from the type. '(' joins the terminating set
	// to catch media-type comments, which are not at all standard, but may
	// occur in rare cases.
	typeVal := indexNotLWS(value, 0)
	typeEnd := indexAnyFrom(value, " \t;(", typeVal)

	var charsetValue string
	typeHasCharset := false
	typeHasBoundary := false

	// Iterate over parameters. The string cannot be pre-split around
	// semicolons because quoted strings may include them.
	offset := indexByteFrom(value, ';', typeEnd)
	for offset < len(value) {
		offset++ // the semicolon
		offset = indexNotLWS(value, offset)
		paramNameStart := offset
		// Extend the parameter name to a semicolon or equals sign. Per
		// spec, trailing spaces are not removed.
		offset = indexAnyFrom(value, ";=", offset)
		// Names without values are not allowed.
		if offset == len(value) || value[offset] == ';' {
			continue
		}
		paramName := value[paramNameStart:offset]
		offset++ // the equals sign
		// Removing leading spaces here violates the spec but matches
		// long-standing behavior.
		offset = indexNotLWS(value, offset)

		var paramValue string
		switch {
		case offset == len(value) || value[offset] == ';':
			// An unquoted run of only whitespace is skipped.
			continue
		case value[offset] != '"':
			valueStart := offset
			offset = indexByteFrom(value, ';', offset)
			valueEnd := offset
			for valueEnd > valueStart && syntax.IsLWS(value[valueEnd-1]) {
				valueEnd--
			}
			paramValue = value[valueStart:valueEnd]
		default:
			// Append bytes up to a close quote, resolving backslash
			// escapes. A missing terminal quote is tolerated.
			offset++ // the open quote
			sb := util.GetStringBuilder()
			for offset < len(value) && value[offset] != '"' {
				if value[offset] == '\\' && offset+1 < len(value) {
					offset++
				}
				sb.WriteByte(value[offset])
				offset++
			}
			paramValue = syntax.TrimLWS(sb.String())
			util.FreeStringBuilder(sb)
			offset = indexByteFrom(value, ';', offset)
		}

		if !typeHasCharset && util.EqFold(paramName, "charset") {
			typeHasCharset = true
			charsetValue = paramValue
			continue
		}
		if boundary != nil && !typeHasBoundary && util.EqFold(paramName, "boundary") {
			typeHasBoundary = true
			*boundary = paramValue
			continue
		}
	}

	// "*/*" from a server is meaningless, and a media type without a slash
	// is junk; some servers put garbage (possibly with a comma) after the
	// charset parameter, so the slash check keeps things tolerant.
	if len(value) == 0 || value == "*/*" || !strings.ContainsRune(value, '/') {
		return
	}

	// When the media type is unchanged only update the charset, and never
	// wipe an existing charset with an absent one. An empty stored
	// mimeType is common.
	span := value[typeVal:typeEnd]
	eq := *mimeType != "" && util.EqFold(span, *mimeType)
	if !eq {
		*mimeType = util.LCase(span)
	}
	if (!eq && *hadCharset) || typeHasCharset {
		*hadCharset = true
		*charset = util.LCase(charsetValue)
	}
}

// indexNotLWS returns the index of the first non-LWS byte at or after from,
// or len(s).
func indexNotLWS(s string, from int) int {
	for ; from < len(s); from++ {
		if !syntax.IsLWS(s[from]) {
			return from
		}
	}
	return len(s)
}

// indexAnyFrom returns the index of the first byte of chars at or after
// from, or len(s).
func indexAnyFrom(s, chars string, from int) int {
	if from >= len(s) {
		return len(s)
	}
	if i := strings.IndexAny(s[from:], chars); i != -1 {
		return from + i
	}
	return len(s)
}

// indexByteFrom returns the index of the first c at or after from, or len(s).
func indexByteFrom(s string, c byte, from int) int {
	if from >= len(s) {
		return len(s)
	}
	if i := strings.IndexByte(s[from:], c); i != -1 {
		return from + i
	}
	return len(s)
}
