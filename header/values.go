package header

import (
	"strings"

	"github.com/ghettovoice/httpwire/syntax"
)

// ValuesIterator splits a header value on a delimiter, quote-aware: a
// delimiter inside a double-quoted span does not split. Each token is
// trimmed of linear whitespace.
type ValuesIterator struct {
	tok         *syntax.Tokenizer
	value       string
	ignoreEmpty bool
}

// NewValuesIterator returns an iterator over values splitting on delim.
// When ignoreEmpty is set, tokens that are empty after trimming are skipped.
func NewValuesIterator(values string, delim byte, ignoreEmpty bool) *ValuesIterator {
	tok := syntax.NewTokenizer(values, delim)
	tok.QuoteAware()
	if !ignoreEmpty {
		tok.ReturnEmptyTokens()
	}
	return &ValuesIterator{tok: tok, ignoreEmpty: ignoreEmpty}
}

// Next advances to the next value, reporting whether one was found.
func (it *ValuesIterator) Next() bool {
	for it.tok.Next() {
		it.value = syntax.TrimLWS(it.tok.Token())
		if !it.ignoreEmpty || it.value != "" {
			return true
		}
	}
	return false
}

// Value returns the value found by the last successful call to
// [ValuesIterator.Next].
func (it *ValuesIterator) Value() string { return it.value }

// PairsOptions configures a [NameValuePairsIterator].
type PairsOptions struct {
	// OptionalValues accepts a bare name with no equals sign as a pair
	// with an empty value.
	OptionalValues bool
	// StrictQuotes makes a quoted value with an unescaped interior quote
	// or a dangling trailing escape a hard failure instead of recovering.
	StrictQuotes bool
}

// NameValuePairsIterator splits a header value into name/value parameters.
//
// Pairs are expected in one of the forms
//
//	name="value"
//	name=value
//	name = value
//	name (when OptionalValues is set)
//
// Due to buggy senders found in the wild, a quoted value with a missing
// close quote mark is also accepted: the iterator recovers by dropping the
// open quote and taking the remainder verbatim.
//
// A malformed pair (empty name, missing equals sign while values are
// required, a quote mark before the equals sign, or an empty value after
// one) stops production: Next returns false and [NameValuePairsIterator.Valid]
// reports false. Callers must consult Valid to tell clean exhaustion from an
// abandoned parse.
type NameValuePairsIterator struct {
	props          *ValuesIterator
	name           string
	rawValue       string
	unquotedValue  string
	valueIsQuoted  bool
	valid          bool
	valuesOptional bool
	strictQuotes   bool
}

// NewNameValuePairsIterator returns an iterator over the pairs of value
// splitting on delim. A nil opts means values are required and quote
// handling is lenient.
func NewNameValuePairsIterator(value string, delim byte, opts *PairsOptions) *NameValuePairsIterator {
	it := &NameValuePairsIterator{
		props: NewValuesIterator(value, delim, true),
		valid: true,
	}
	if opts != nil {
		it.valuesOptional = opts.OptionalValues
		it.strictQuotes = opts.StrictQuotes
	}
	return it
}

// Next advances to the next pair, reporting whether one was found. A false
// return means either exhaustion or a malformed pair; see
// [NameValuePairsIterator.Valid].
func (it *NameValuePairsIterator) Next() bool {
	if !it.valid || !it.props.Next() {
		return false
	}

	prop := it.props.Value()
	it.name = ""
	it.rawValue = ""
	it.unquotedValue = ""
	it.valueIsQuoted = false

	// The pair tokenization is already quote-aware, so the first equals
	// sign is the split point; a quote mark before it is rejected below.
	equals := strings.IndexByte(prop, '=')
	switch {
	case equals == 0:
		return it.fail() // no name
	case equals == -1 && !it.valuesOptional:
		return it.fail() // no equals sign and values are required
	}
	// A quote mark before the equals sign puts the whole pair in doubt.
	if equals > 0 {
		for i := 0; i < equals; i++ {
			if syntax.IsQuoteChar(prop[i]) {
				return it.fail()
			}
		}
	}

	var value string
	if equals == -1 {
		it.name = prop
	} else {
		it.name = prop[:equals]
		value = prop[equals+1:]
	}
	it.name = syntax.TrimLWS(it.name)
	value = syntax.TrimLWS(value)
	if equals != -1 && value == "" {
		return it.fail() // empty value
	}

	if value != "" && syntax.IsQuoteChar(value[0]) {
		it.valueIsQuoted = true
		if it.strictQuotes {
			unquoted, err := syntax.StrictUnquote(value)
			if err != nil {
				return it.fail()
			}
			it.rawValue = value
			it.unquotedValue = unquoted
			return true
		}
		if value[0] != value[len(value)-1] || len(value) == 1 {
			// Missing close quote mark; recover by dropping the open
			// quote. Quoted-pairs are left unresolved on this path.
			it.valueIsQuoted = false
			value = value[1:]
		} else {
			it.unquotedValue = syntax.Unquote(value)
		}
	}
	it.rawValue = value
	return true
}

// Valid reports whether iteration has seen no malformed pair so far. It
// stays true on clean exhaustion.
func (it *NameValuePairsIterator) Valid() bool { return it.valid }

// Name returns the parameter name of the current pair.
func (it *NameValuePairsIterator) Name() string { return it.name }

// RawValue returns the parameter value as it appeared, minus any recovery
// trimming. For quoted values the surrounding quotes are retained except on
// the mismatched-quote recovery path.
func (it *NameValuePairsIterator) RawValue() string { return it.rawValue }

// Value returns the parameter value with quoting resolved where possible.
func (it *NameValuePairsIterator) Value() string {
	if it.valueIsQuoted {
		return it.unquotedValue
	}
	return it.rawValue
}

// ValueIsQuoted reports whether the current value carried matched quote
// marks.
func (it *NameValuePairsIterator) ValueIsQuoted() bool { return it.valueIsQuoted }

func (it *NameValuePairsIterator) fail() bool {
	it.valid = false
	return false
}
