package syntax

// Tokenizer lazily splits a string on a single-byte delimiter.
//
// By default empty tokens are skipped and quote marks carry no meaning. Both
// behaviors can be changed before the first call to [Tokenizer.Next] via
// [Tokenizer.ReturnEmptyTokens] and [Tokenizer.QuoteAware].
//
// A Tokenizer borrows the string it was built over; it holds no other state
// and a zero-cost copy resumes from the same position.
type Tokenizer struct {
	s           string
	token       string
	pos         int
	delim       byte
	returnEmpty bool
	quoteAware  bool
}

// NewTokenizer returns a Tokenizer over s splitting on delim.
func NewTokenizer(s string, delim byte) *Tokenizer {
	return &Tokenizer{s: s, delim: delim}
}

// ReturnEmptyTokens makes the Tokenizer yield the empty tokens between
// consecutive delimiters instead of skipping them.
func (t *Tokenizer) ReturnEmptyTokens() { t.returnEmpty = true }

// QuoteAware makes the Tokenizer treat delimiters inside a double-quoted
// span as ordinary bytes. Backslash escapes the following byte within a
// quoted span; an unterminated quote runs to the end of the input.
func (t *Tokenizer) QuoteAware() { t.quoteAware = true }

// Next advances to the next token, reporting whether one was found.
func (t *Tokenizer) Next() bool {
	if len(t.s) == 0 {
		return false
	}
	for t.pos <= len(t.s) {
		start := t.pos
		i := t.pos
		for i < len(t.s) && t.s[i] != t.delim {
			if t.quoteAware && IsQuoteChar(t.s[i]) {
				i = t.skipQuoted(i)
				continue
			}
			i++
		}
		t.token = t.s[start:i]
		if i < len(t.s) {
			t.pos = i + 1
		} else {
			// Past-the-end sentinel so a trailing empty segment is
			// produced at most once.
			t.pos = len(t.s) + 1
		}
		if t.token != "" || t.returnEmpty {
			return true
		}
	}
	return false
}

// Token returns the token found by the last successful call to [Tokenizer.Next].
func (t *Tokenizer) Token() string { return t.token }

func (t *Tokenizer) skipQuoted(i int) int {
	quote := t.s[i]
	i++
	for i < len(t.s) && t.s[i] != quote {
		if t.s[i] == '\\' && i+1 < len(t.s) {
			i++
		}
		i++
	}
	if i < len(t.s) {
		i++ // closing quote
	}
	return i
}
