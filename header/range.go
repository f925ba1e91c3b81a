package header

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpwire/internal/errorutil"
	"github.com/ghettovoice/httpwire/internal/numutil"
	"github.com/ghettovoice/httpwire/internal/util"
	"github.com/ghettovoice/httpwire/syntax"
)

const (
	// ErrInvalidRangeHeader reports a Range value that is not a valid
	// byte-ranges-specifier. No partial range list is ever returned: a
	// single malformed spec rejects the whole header.
	ErrInvalidRangeHeader errorutil.Error = "invalid Range header"
	// ErrInvalidContentRange reports a Content-Range value that does not
	// match the exact 206 response shape.
	ErrInvalidContentRange errorutil.Error = "invalid Content-Range header"
)

// ParseRangeHeader parses a Range value of the form "bytes=spec[,spec]*"
// into a list of byte ranges. Each spec must independently be valid and the
// final list must be non-empty; otherwise the whole parse fails.
func ParseRangeHeader(rangesSpecifier string) ([]ByteRange, error) {
	equalsOffset := strings.IndexByte(rangesSpecifier, '=')
	if equalsOffset == -1 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRangeHeader, "missing '='"))
	}
	bytesUnit := syntax.TrimLWS(rangesSpecifier[:equalsOffset])
	if !util.EqFold(bytesUnit, "bytes") {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRangeHeader, "unknown unit %q", bytesUnit))
	}

	var ranges []ByteRange
	specs := NewValuesIterator(rangesSpecifier[equalsOffset+1:], ',', true)
	for specs.Next() {
		value := specs.Value()
		minusOffset := strings.IndexByte(value, '-')
		if minusOffset == -1 {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRangeHeader, "spec %q has no '-'", value))
		}

		r := newByteRange()
		firstBytePos := syntax.TrimLWS(value[:minusOffset])
		if firstBytePos != "" {
			n, err := numutil.ParseInt64(firstBytePos, numutil.OptionallyNegative)
			if err != nil {
				return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRangeHeader, err))
			}
			r.FirstBytePosition = n
		}

		// The trailing number is a last-byte-pos when a first position was
		// given, and a suffix-length otherwise.
		lastBytePos := syntax.TrimLWS(value[minusOffset+1:])
		if lastBytePos != "" {
			n, err := numutil.ParseInt64(lastBytePos, numutil.OptionallyNegative)
			if err != nil {
				return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRangeHeader, err))
			}
			if r.HasFirstBytePosition() {
				r.LastBytePosition = n
			} else {
				r.SuffixLength = n
			}
		} else if !r.HasFirstBytePosition() {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRangeHeader, "spec %q is empty", value))
		}

		if !r.IsValid() {
			return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRangeHeader, "spec %q out of order", value))
		}
		ranges = append(ranges, r)
	}
	if len(ranges) == 0 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRangeHeader, "empty range list"))
	}
	return ranges, nil
}

// ContentRange holds the triple from a 206 response's Content-Range header.
// All fields are -1 when parsing failed.
type ContentRange struct {
	FirstBytePosition int64
	LastBytePosition  int64
	InstanceLength    int64
}

// ParseContentRangeFor206 parses a Content-Range value against the exact
// shape sent with a 206 response:
//
//	content-range-spec = bytes-unit SP first-byte-pos "-" last-byte-pos "/" instance-length
//
// per RFC 2616 Section 14.16. All three numbers are required, the last
// position must not precede the first and the instance length must exceed
// the last position. Any deviation yields a ContentRange of -1 sentinels
// and an error.
func ParseContentRangeFor206(contentRangeSpec string) (ContentRange, error) {
	failed := ContentRange{FirstBytePosition: -1, LastBytePosition: -1, InstanceLength: -1}

	contentRangeSpec = syntax.TrimLWS(contentRangeSpec)
	spacePosition := strings.IndexByte(contentRangeSpec, ' ')
	if spacePosition == -1 {
		return failed, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentRange, "missing unit"))
	}
	if !util.EqFold(syntax.TrimLWS(contentRangeSpec[:spacePosition]), "bytes") {
		return failed, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentRange, "unknown unit"))
	}
	minusPosition := indexByteFrom(contentRangeSpec, '-', spacePosition+1)
	if minusPosition == len(contentRangeSpec) {
		return failed, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentRange, "missing '-'"))
	}
	slashPosition := indexByteFrom(contentRangeSpec, '/', minusPosition+1)
	if slashPosition == len(contentRangeSpec) {
		return failed, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentRange, "missing '/'"))
	}

	var cr ContentRange
	var err error
	cr.FirstBytePosition, err = numutil.ParseInt64(
		syntax.TrimLWS(contentRangeSpec[spacePosition+1:minusPosition]), numutil.OptionallyNegative)
	if err != nil || cr.FirstBytePosition < 0 {
		return failed, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentRange, "bad first-byte-pos"))
	}
	cr.LastBytePosition, err = numutil.ParseInt64(
		syntax.TrimLWS(contentRangeSpec[minusPosition+1:slashPosition]), numutil.OptionallyNegative)
	if err != nil || cr.LastBytePosition < cr.FirstBytePosition {
		return failed, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentRange, "bad last-byte-pos"))
	}
	cr.InstanceLength, err = numutil.ParseInt64(
		syntax.TrimLWS(contentRangeSpec[slashPosition+1:]), numutil.OptionallyNegative)
	if err != nil || cr.InstanceLength <= cr.LastBytePosition {
		return failed, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidContentRange, "bad instance-length"))
	}
	return cr, nil
}
