package header

import (
	"github.com/ghettovoice/httpwire/internal/constraints"
	"github.com/ghettovoice/httpwire/internal/util"
	"github.com/ghettovoice/httpwire/syntax"
)

// Request headers a client is never allowed to set by hand. The list comes
// from the fetch standard.
var forbiddenHeaderFields = map[string]struct{}{
	"accept-charset":                 {},
	"accept-encoding":                {},
	"access-control-request-headers": {},
	"access-control-request-method":  {},
	"connection":                     {},
	"content-length":                 {},
	"cookie":                         {},
	"cookie2":                        {},
	"date":                           {},
	"dnt":                            {},
	"expect":                         {},
	"host":                           {},
	"keep-alive":                     {},
	"origin":                         {},
	"referer":                        {},
	"te":                             {},
	"trailer":                        {},
	"transfer-encoding":              {},
	"upgrade":                        {},
	"user-agent":                     {},
	"via":                            {},
}

// Response headers whose repeated occurrences must not be joined on a comma.
// "set-cookie2" needs no entry: it never carries expires attributes. The
// auth-challenge headers mix space-separated tokens with comma-separated
// properties, and STS processing stops at the first header seen.
var nonCoalescingHeaders = map[string]struct{}{
	"date":                      {},
	"expires":                   {},
	"last-modified":             {},
	"location":                  {},
	"retry-after":               {},
	"set-cookie":                {},
	"www-authenticate":          {},
	"proxy-authenticate":        {},
	"strict-transport-security": {},
}

// IsMethodSafe reports whether method is safe per RFC 7231 Section 4.2.1.
func IsMethodSafe(method string) bool {
	return method == "GET" || method == "HEAD" || method == "OPTIONS" ||
		method == "TRACE"
}

// IsMethodIdempotent reports whether method is idempotent per RFC 7231
// Section 4.2.2.
func IsMethodIdempotent(method string) bool {
	return IsMethodSafe(method) || method == "PUT" || method == "DELETE"
}

// IsSafeHeader reports whether a client may set the named request header:
// nothing from the forbidden list and no "proxy-" or "sec-" prefix.
func IsSafeHeader(name string) bool {
	if util.HasPrefixFold(name, "proxy-") || util.HasPrefixFold(name, "sec-") {
		return false
	}
	_, forbidden := forbiddenHeaderFields[util.LCase(name)]
	return !forbidden
}

// IsNonCoalescingHeader reports whether repeated occurrences of the named
// response header must be kept separate rather than comma-joined.
func IsNonCoalescingHeader(name string) bool {
	_, ok := nonCoalescingHeaders[util.LCase(name)]
	return ok
}

// IsValidHeaderName reports whether name is an RFC 7230 token.
func IsValidHeaderName[T constraints.Byteseq](name T) bool {
	return syntax.IsToken(name)
}

// IsValidHeaderValue reports whether value is free of NUL, CR and LF. This
// is a sanity check, not full grammar validation.
func IsValidHeaderValue[T constraints.Byteseq](value T) bool {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case 0, '\r', '\n':
			return false
		}
	}
	return true
}
