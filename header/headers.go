package header

import (
	"iter"
	"strings"

	"github.com/ghettovoice/httpwire/internal/util"
	"github.com/ghettovoice/httpwire/syntax"
)

// HeadersIterator walks the logical lines of a canonical header block
// (excluding the status line), yielding one (name, value) pair per
// well-formed header line.
//
// Malformed lines are skipped, never reported: a missing colon, an empty or
// whitespace-led name, or a name that is not a token all drop the line. The
// only terminal state is exhaustion.
//
// The iterator borrows the block; mutating or freeing the block during
// iteration invalidates it.
type HeadersIterator struct {
	lines *syntax.Tokenizer
	name  string
	value string
}

// NewHeadersIterator returns an iterator over the header lines of a
// canonical block produced by [AssembleRawHeaders]. The leading status line
// is skipped.
func NewHeadersIterator(block string) *HeadersIterator {
	lines := syntax.NewTokenizer(block, LineTerminator)
	lines.Next() // status line
	return &HeadersIterator{lines: lines}
}

// Next advances to the next well-formed header line, reporting whether one
// was found.
func (it *HeadersIterator) Next() bool {
	for it.lines.Next() {
		line := it.lines.Token()
		colon := strings.IndexByte(line, ':')
		if colon == -1 {
			continue // skip malformed header
		}
		name := line[:colon]
		// Leading LWS implies a line continuation; those were joined by
		// AssembleRawHeaders, so this line is junk.
		if name == "" || syntax.IsLWS(name[0]) {
			continue
		}
		name = syntax.TrimLWS(name)
		if !syntax.IsToken(name) {
			continue // skip malformed header
		}
		it.name = name
		it.value = syntax.TrimLWS(line[colon+1:])
		return true
	}
	return false
}

// AdvanceTo advances the iterator until a header case-insensitively matching
// name is found, reporting whether the search succeeded. The name must be
// given in lower case.
func (it *HeadersIterator) AdvanceTo(name string) bool {
	for it.Next() {
		if util.EqFold(it.name, name) {
			return true
		}
	}
	return false
}

// Name returns the header name found by the last successful call to
// [HeadersIterator.Next].
func (it *HeadersIterator) Name() string { return it.name }

// Value returns the header value found by the last successful call to
// [HeadersIterator.Next]. It may be empty.
func (it *HeadersIterator) Value() string { return it.value }

// All returns a single-use range iterator over the remaining headers.
func (it *HeadersIterator) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for it.Next() {
			if !yield(it.name, it.value) {
				return
			}
		}
	}
}
