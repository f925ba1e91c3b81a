package header

import (
	"strings"

	"github.com/ghettovoice/httpwire/internal/constraints"
	"github.com/ghettovoice/httpwire/internal/util"
	"github.com/ghettovoice/httpwire/syntax"
)

// LineTerminator separates logical lines inside a canonical header block.
// It is guaranteed absent from line content: [AssembleRawHeaders] treats NUL
// bytes in its input as line breaks, so none survive into a logical line.
const LineTerminator byte = 0

func isLineBreak(c byte) bool { return c == '\r' || c == '\n' || c == LineTerminator }

// AssembleRawHeaders canonicalizes a raw status-line-plus-headers buffer into
// a block of NUL-separated logical lines.
//
// Leading junk before a case-insensitive "http" (at most 4 bytes of slop) is
// dropped. Physical lines are split on runs of CR, LF and NUL. A line
// opening with linear whitespace continues the previous line's field-value
// when that line named a header; the leading whitespace collapses to a
// single space. Two terminators mark the end of the block.
//
// The operation is idempotent: assembling an already-canonical block yields
// identical bytes. Splitting the result on [LineTerminator] recovers the
// logical, continuation-joined lines in original order, status line first.
func AssembleRawHeaders[T constraints.Byteseq](input T) string {
	s := string(input)
	if off := LocateStartOfStatusLine(s); off > 0 {
		s = s[off:]
	}

	statusEnd := len(s)
	for i := 0; i < len(s); i++ {
		if isLineBreak(s[i]) {
			statusEnd = i
			break
		}
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.Grow(len(s) + 2)
	sb.WriteString(s[:statusEnd])

	// Every subsequent line is a header line segment. A segment opening
	// with LWS continues the previous line's field-value.
	rest := s[statusEnd:]
	prevContinuable := false
	for i := 0; i < len(rest); {
		for i < len(rest) && isLineBreak(rest[i]) {
			i++
		}
		if i >= len(rest) {
			break
		}
		start := i
		for i < len(rest) && !isLineBreak(rest[i]) {
			i++
		}
		line := rest[start:i]
		if prevContinuable && syntax.IsLWS(line[0]) {
			// Join continuation; reduce the leading LWS to a single SP.
			sb.WriteByte(' ')
			sb.WriteString(skipLeadingLWS(line))
		} else {
			sb.WriteByte(LineTerminator)
			sb.WriteString(line)
			prevContinuable = isLineContinuable(line)
		}
	}
	sb.WriteByte(LineTerminator)
	sb.WriteByte(LineTerminator)
	return sb.String()
}

// ToWireFormat reconstructs CRLF-terminated header text from a canonical
// block, appending the blank line that terminates a header section.
func ToWireFormat(block string) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.Grow(len(block) + 4)

	lines := syntax.NewTokenizer(block, LineTerminator)
	for lines.Next() {
		sb.WriteString(lines.Token())
		sb.WriteString("\r\n")
	}
	sb.WriteString("\r\n")
	return sb.String()
}

// LocateStartOfStatusLine finds the "http" substring opening a status line,
// allowing up to 4 bytes of slop at the front of the buffer. It returns -1
// when no status line is found.
func LocateStartOfStatusLine[T constraints.Byteseq](buf T) int {
	const slop = 4
	const httpLen = 4
	if len(buf) >= httpLen {
		iMax := min(len(buf)-httpLen, slop)
		for i := 0; i <= iMax; i++ {
			if util.EqFold(string(buf[i:i+httpLen]), "http") {
				return i
			}
		}
	}
	return -1
}

// LocateEndOfHeaders scans buf from offset i for the double line break that
// ends a header section, returning the offset just past it, or -1 when the
// section is still incomplete.
func LocateEndOfHeaders[T constraints.Byteseq](buf T, i int) int {
	return locateEndOfHeaders(buf, i, false)
}

// LocateEndOfAdditionalHeaders is like [LocateEndOfHeaders] but also accepts
// an empty header list: a single line break at offset i ends the section.
func LocateEndOfAdditionalHeaders[T constraints.Byteseq](buf T, i int) int {
	return locateEndOfHeaders(buf, i, true)
}

func locateEndOfHeaders[T constraints.Byteseq](buf T, i int, acceptEmpty bool) int {
	var lastC byte
	wasLF := false
	if acceptEmpty {
		lastC = '\n'
		wasLF = true
	}
	for ; i < len(buf); i++ {
		c := buf[i]
		switch {
		case c == '\n':
			if wasLF {
				return i + 1
			}
			wasLF = true
		case c != '\r' || lastC != '\n':
			wasLF = false
		}
		lastC = c
	}
	return -1
}

// A line can be continued only when it names a non-blank header:
// continuations are for field-values, never for header names.
func isLineContinuable(line string) bool {
	if line == "" {
		return false
	}
	colon := strings.IndexByte(line, ':')
	if colon == -1 {
		return false
	}
	name := line[:colon]
	if name == "" {
		return false
	}
	// Leading LWS would make the segment itself a continuation.
	return !syntax.IsLWS(name[0])
}

func skipLeadingLWS(s string) string {
	for i := 0; i < len(s); i++ {
		if !syntax.IsLWS(s[i]) {
			return s[i:]
		}
	}
	return ""
}
