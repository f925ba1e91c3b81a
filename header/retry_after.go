package header

import (
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpwire/internal/errorutil"
	"github.com/ghettovoice/httpwire/internal/numutil"
)

// ErrInvalidRetryAfter reports a Retry-After value that is not a
// non-negative delta-seconds count.
const ErrInvalidRetryAfter errorutil.Error = "invalid Retry-After header"

// ParseRetryAfterHeader parses the delta-seconds form of a Retry-After
// value into a duration. The HTTP-date form is not handled here.
func ParseRetryAfterHeader(retryAfter string) (time.Duration, error) {
	seconds, err := numutil.ParseUint32(retryAfter)
	if err != nil {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidRetryAfter, err))
	}
	return time.Duration(seconds) * time.Second, nil
}
