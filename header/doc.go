// Package header parses and normalizes wire-format HTTP/1.x header blocks
// and the syntax of the common content-negotiation headers.
//
// # Header blocks
//
// [AssembleRawHeaders] turns the raw bytes of a status line plus headers —
// CRLF or bare-LF endings, leading junk, folded continuation lines — into a
// canonical block of logical lines separated by [LineTerminator]. The
// assembly never fails; whatever the input, the result is a block whose
// lines can be recovered by splitting on the terminator, status line first.
// [ToWireFormat] is the inverse, reconstructing CRLF-terminated header text.
//
// [HeadersIterator] walks a canonical block lazily, yielding (name, value)
// pairs and silently skipping malformed lines. Untrusted wire data should
// produce best-effort partial information, never total rejection, so the
// iterator's only terminal state is exhaustion.
//
// # Header values
//
// Within a single header's grammar the opposite philosophy applies: a
// malformed construct invalidates the whole parse. A half-parsed Range is
// more dangerous than none — serving the wrong byte range corrupts a
// download silently — so [ParseRangeHeader], [ParseContentRangeFor206],
// [ParseAcceptEncoding] and [ParseContentEncoding] return an error and no
// partial result on any malformed member.
//
// [ValuesIterator] and [NameValuePairsIterator] split a single header value
// into members and name/value parameters, quote-aware, with the
// interoperability quirks the wild demands (missing close quote marks are
// recovered from rather than rejected).
//
// [ParseContentType] accumulates media type, charset and boundary across
// repeated header occurrences with merge-without-erase charset semantics.
//
// # Iterators and ownership
//
// All iterators borrow the buffer they were built over and are invalidated
// by its mutation. Every operation here is a synchronous, side-effect-free
// function over caller-supplied data, safe for concurrent use as long as
// each call's input is not concurrently mutated.
package header

//go:generate errtrace -w .
