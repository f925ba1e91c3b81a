package syntax_test

import (
	"testing"

	"github.com/ghettovoice/httpwire/syntax"
)

func TestIsToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"simple", "content-type", true},
		{"mixed case", "Content-Type", true},
		{"digits and specials", "x-gzip!#$%&'*+.^_`|~", true},
		{"space", "content type", false},
		{"tab", "a\tb", false},
		{"colon", "a:b", false},
		{"semicolon", "a;b", false},
		{"slash", "text/html", false},
		{"quote", `a"b`, false},
		{"backslash", `a\b`, false},
		{"equals", "a=b", false},
		{"control byte", "a\x01b", false},
		{"del", "a\x7fb", false},
		{"high bit", "a\x80b", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := syntax.IsToken(c.in); got != c.want {
				t.Errorf("IsToken(%q) = %v, want %v", c.in, got, c.want)
			}
			if got := syntax.IsToken([]byte(c.in)); got != c.want {
				t.Errorf("IsToken(%q bytes) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestIsParamName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"simple", "filename", true},
		{"asterisk", "filename*", false},
		{"apostrophe", "file'name", false},
		{"percent", "file%name", false},
		{"non token", "file name", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := syntax.IsParamName(c.in); got != c.want {
				t.Errorf("IsParamName(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestTrimLWS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"nothing to trim", "abc", "abc"},
		{"spaces", "  abc  ", "abc"},
		{"tabs", "\tabc\t", "abc"},
		{"mixed", " \t abc \t ", "abc"},
		{"all whitespace", " \t ", ""},
		{"interior kept", " a b ", "a b"},
		{"crlf kept", "\r\nabc", "\r\nabc"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := syntax.TrimLWS(c.in); got != c.want {
				t.Errorf("TrimLWS(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestIsLWS(t *testing.T) {
	t.Parallel()

	for c, want := range map[byte]bool{' ': true, '\t': true, '\r': false, '\n': false, 'a': false, 0: false} {
		if got := syntax.IsLWS(c); got != want {
			t.Errorf("IsLWS(%q) = %v, want %v", c, got, want)
		}
	}
}
