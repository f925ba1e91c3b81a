package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/httpwire/header"
)

func TestValuesIterator(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		in          string
		delim       byte
		ignoreEmpty bool
		want        []string
	}{
		{"empty", "", ',', true, nil},
		{"simple", "a, b, c", ',', true, []string{"a", "b", "c"}},
		{"empty entries skipped", "a,, ,b", ',', true, []string{"a", "b"}},
		{"empty entries kept", "a,, ,b", ',', false, []string{"a", "", "", "b"}},
		{"quoted delimiter does not split", `a, "b, c", d`, ',', true, []string{"a", `"b, c"`, "d"}},
		{"semicolon delimiter", "a=1; b=2", ';', true, []string{"a=1", "b=2"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			it := header.NewValuesIterator(c.in, c.delim, c.ignoreEmpty)
			var got []string
			for it.Next() {
				got = append(got, it.Value())
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("values mismatch (-got +want):\n%v", diff)
			}
		})
	}
}

type nvp struct {
	Name, RawValue, Value string
	Quoted                bool
}

func collectPairs(it *header.NameValuePairsIterator) []nvp {
	var out []nvp
	for it.Next() {
		out = append(out, nvp{it.Name(), it.RawValue(), it.Value(), it.ValueIsQuoted()})
	}
	return out
}

func TestNameValuePairsIterator(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        string
		delim     byte
		opts      *header.PairsOptions
		want      []nvp
		wantValid bool
	}{
		{
			"empty", "", ';', nil,
			nil, true,
		},
		{
			"single pair", "a=1", ';', nil,
			[]nvp{{"a", "1", "1", false}}, true,
		},
		{
			"multiple pairs", "a=1;b=2;c=3", ';', nil,
			[]nvp{{"a", "1", "1", false}, {"b", "2", "2", false}, {"c", "3", "3", false}}, true,
		},
		{
			"whitespace around equals", " a = 1 ; b = 2 ", ';', nil,
			[]nvp{{"a", "1", "1", false}, {"b", "2", "2", false}}, true,
		},
		{
			"quoted value", `a="1;2";b=3`, ';', nil,
			[]nvp{{"a", `"1;2"`, "1;2", true}, {"b", "3", "3", false}}, true,
		},
		{
			"quoted value with escapes", `a="\"quoted\""`, ';', nil,
			[]nvp{{"a", `"\"quoted\""`, `"quoted"`, true}}, true,
		},
		{
			"mismatched quote recovered", `a="mismatched;b=2`, ';', nil,
			[]nvp{{"a", "mismatched;b=2", "mismatched;b=2", false}}, true,
		},
		{
			"lone quote recovered", `a="`, ';', nil,
			[]nvp{{"a", "", "", false}}, true,
		},
		{
			"empty value fails", "a=;b=2", ';', nil,
			nil, false,
		},
		{
			"missing name fails", "=1", ';', nil,
			nil, false,
		},
		{
			"bare name fails by default", "a;b=2", ';', nil,
			nil, false,
		},
		{
			"bare name with optional values", "a;b=2", ';', &header.PairsOptions{OptionalValues: true},
			[]nvp{{"a", "", "", false}, {"b", "2", "2", false}}, true,
		},
		{
			"quote before equals fails", `a"b=c`, ';', nil,
			nil, false,
		},
		{
			"failure abandons remainder", "a=1;=2;c=3", ';', nil,
			[]nvp{{"a", "1", "1", false}}, false,
		},
		{
			"strict quotes accept clean value", `a="1"`, ';', &header.PairsOptions{StrictQuotes: true},
			[]nvp{{"a", `"1"`, "1", true}}, true,
		},
		{
			"strict quotes reject mismatched quote", `a="mismatched;b=2`, ';', &header.PairsOptions{StrictQuotes: true},
			nil, false,
		},
		{
			"strict quotes reject trailing escape", `a="1\"`, ';', &header.PairsOptions{StrictQuotes: true},
			nil, false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			it := header.NewNameValuePairsIterator(c.in, c.delim, c.opts)
			got := collectPairs(it)
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("pairs mismatch (-got +want):\n%v", diff)
			}
			if it.Valid() != c.wantValid {
				t.Errorf("Valid() = %v, want %v", it.Valid(), c.wantValid)
			}
		})
	}
}
