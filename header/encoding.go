package header

import (
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpwire/internal/errorutil"
	"github.com/ghettovoice/httpwire/internal/util"
	"github.com/ghettovoice/httpwire/syntax"
)

const (
	// ErrInvalidAcceptEncoding reports an Accept-Encoding value with a
	// quote mark, an embedded space inside a coding, or a q parameter
	// outside the accepted grammar. No partial encoding set is returned.
	ErrInvalidAcceptEncoding errorutil.Error = "invalid Accept-Encoding header"
	// ErrInvalidContentEncoding reports a Content-Encoding value carrying
	// bytes that never appear in a list of plain codings.
	ErrInvalidContentEncoding errorutil.Error = "invalid Content-Encoding header"
)

// EncodingSet is a set of lowercase content-coding tokens.
type EncodingSet map[string]struct{}

// Contains reports whether enc is in the set.
func (s EncodingSet) Contains(enc string) bool {
	_, ok := s[enc]
	return ok
}

// Slice returns the members of the set in sorted order.
func (s EncodingSet) Slice() []string {
	out := make([]string, 0, len(s))
	for enc := range s {
		out = append(out, enc)
	}
	slices.Sort(out)
	return out
}

// String renders the set as a sorted comma-separated list.
func (s EncodingSet) String() string { return strings.Join(s.Slice(), ", ") }

func (s EncodingSet) add(enc string) { s[enc] = struct{}{} }

// mirror makes a and b interchangeable: whenever either is present, both are.
func (s EncodingSet) mirror(a, b string) {
	if s.Contains(a) {
		s.add(b)
	}
	if s.Contains(b) {
		s.add(a)
	}
}

// ParseAcceptEncoding parses an Accept-Encoding value into the set of
// codings the sender accepts.
//
// A coding without a q parameter is accepted unconditionally. The only
// recognized parameter is "q"; its value must be 1 with up to three zeros
// after the decimal point, or of the form "0." followed by one to three
// digits. An all-zero q silently excludes the coding; anything else fails
// the entire header.
//
// When nothing was accepted the set defaults to the wildcard "*" (RFC 7231
// Section 5.3.4: no preference expressed). Otherwise "identity" is always
// added, and the gzip/x-gzip and compress/x-compress spellings are mirrored
// so either matches when either was accepted.
func ParseAcceptEncoding(acceptEncoding string) (EncodingSet, error) {
	if strings.ContainsRune(acceptEncoding, '"') {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAcceptEncoding, "quote mark"))
	}

	allowed := make(EncodingSet)
	entries := syntax.NewTokenizer(acceptEncoding, ',')
	for entries.Next() {
		entry := syntax.TrimLWS(entries.Token())
		semicolonPos := strings.IndexByte(entry, ';')
		if semicolonPos == -1 {
			if containsLWS(entry) {
				return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAcceptEncoding, "space in coding %q", entry))
			}
			allowed.add(util.LCase(entry))
			continue
		}
		encoding := syntax.TrimLWS(entry[:semicolonPos])
		if containsLWS(encoding) {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAcceptEncoding, "space in coding %q", encoding))
		}
		params := syntax.TrimLWS(entry[semicolonPos+1:])
		equalsPos := strings.IndexByte(params, '=')
		if equalsPos == -1 {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAcceptEncoding, "parameter without value"))
		}
		if paramName := syntax.TrimLWS(params[:equalsPos]); !util.EqFold(paramName, "q") {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAcceptEncoding, "unknown parameter %q", paramName))
		}
		qvalue := syntax.TrimLWS(params[equalsPos+1:])
		accept, err := parseQValue(qvalue)
		if err != nil {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidAcceptEncoding, err))
		}
		if accept {
			allowed.add(util.LCase(encoding))
		}
	}

	if len(allowed) == 0 {
		allowed.add("*")
		return allowed, nil
	}
	// Every recipient supports identity.
	allowed.add("identity")
	// RFC says gzip == x-gzip and compress == x-compress; mirror them here
	// for easier matching.
	allowed.mirror("gzip", "x-gzip")
	allowed.mirror("compress", "x-compress")
	return allowed, nil
}

// parseQValue decides whether a q value accepts its coding. Acceptable
// shapes are "1" with up to three trailing zeros after a decimal point, and
// "0." followed by one to three digits (accepting when any digit is
// non-zero). "0" alone rejects the coding without failing the header.
func parseQValue(qvalue string) (bool, error) {
	if qvalue == "" {
		return false, errorutil.Errorf("empty q value") //errtrace:skip
	}
	if qvalue[0] == '1' {
		if util.HasPrefixFold("1.000", qvalue) {
			return true, nil
		}
		return false, errorutil.Errorf("bad q value %q", qvalue) //errtrace:skip
	}
	if qvalue[0] != '0' {
		return false, errorutil.Errorf("bad q value %q", qvalue) //errtrace:skip
	}
	if len(qvalue) == 1 {
		return false, nil
	}
	if len(qvalue) <= 2 || len(qvalue) > 5 || qvalue[1] != '.' {
		return false, errorutil.Errorf("bad q value %q", qvalue) //errtrace:skip
	}
	nonzero := false
	for i := 2; i < len(qvalue); i++ {
		if qvalue[i] < '0' || qvalue[i] > '9' {
			return false, errorutil.Errorf("bad q value %q", qvalue) //errtrace:skip
		}
		if qvalue[i] != '0' {
			nonzero = true
		}
	}
	return nonzero, nil
}

// ParseContentEncoding parses a Content-Encoding value into the set of
// codings applied to the payload. Quote marks, equals signs, semicolons and
// asterisks never appear in a legitimate value (q values are not permitted
// at all) and reject the header outright.
func ParseContentEncoding(contentEncoding string) (EncodingSet, error) {
	if strings.ContainsAny(contentEncoding, `"=;*`) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentEncoding, "forbidden byte"))
	}
	used := make(EncodingSet)
	entries := syntax.NewTokenizer(contentEncoding, ',')
	for entries.Next() {
		encoding := syntax.TrimLWS(entries.Token())
		if containsLWS(encoding) {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentEncoding, "space in coding %q", encoding))
		}
		used.add(util.LCase(encoding))
	}
	return used, nil
}

func containsLWS(s string) bool {
	for i := 0; i < len(s); i++ {
		if syntax.IsLWS(s[i]) {
			return true
		}
	}
	return false
}
