package numutil_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/httpwire/internal/numutil"
)

func TestParseInt32(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		format  numutil.Format
		want    int32
		wantErr error
	}{
		{"zero", "0", numutil.NonNegative, 0, nil},
		{"simple", "123", numutil.NonNegative, 123, nil},
		{"leading zeros", "00123", numutil.NonNegative, 123, nil},
		{"max", "2147483647", numutil.NonNegative, 2147483647, nil},
		{"min", "-2147483648", numutil.OptionallyNegative, -2147483648, nil},
		{"negative allowed", "-123", numutil.OptionallyNegative, -123, nil},
		{"negative forbidden", "-123", numutil.NonNegative, 0, numutil.ErrMalformed},
		{"empty", "", numutil.NonNegative, 0, numutil.ErrMalformed},
		{"plus sign", "+123", numutil.OptionallyNegative, 0, numutil.ErrMalformed},
		{"leading space", " 1", numutil.NonNegative, 0, numutil.ErrMalformed},
		{"trailing junk", "12a", numutil.NonNegative, 0, numutil.ErrMalformed},
		{"bare minus", "-", numutil.OptionallyNegative, 0, numutil.ErrMalformed},
		{"double minus", "--1", numutil.OptionallyNegative, 0, numutil.ErrMalformed},
		{"overflow", "2147483648", numutil.NonNegative, 0, numutil.ErrOverflow},
		{"big overflow", "99999999999999999999", numutil.NonNegative, 0, numutil.ErrOverflow},
		{"underflow", "-2147483649", numutil.OptionallyNegative, 0, numutil.ErrUnderflow},
		{"overflow with junk", "99999999999999999999a", numutil.NonNegative, 0, numutil.ErrMalformed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := numutil.ParseInt32(c.in, c.format)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("ParseInt32(%q, %v) error = %v, want %v", c.in, c.format, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("ParseInt32(%q, %v) = %v, want %v", c.in, c.format, got, c.want)
			}
		})
	}
}

func TestParseInt64(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		format  numutil.Format
		want    int64
		wantErr error
	}{
		{"max", "9223372036854775807", numutil.NonNegative, 9223372036854775807, nil},
		{"min", "-9223372036854775808", numutil.OptionallyNegative, -9223372036854775808, nil},
		{"overflow", "9223372036854775808", numutil.NonNegative, 0, numutil.ErrOverflow},
		{"underflow", "-9223372036854775809", numutil.OptionallyNegative, 0, numutil.ErrUnderflow},
		{"int32 range passes", "2147483648", numutil.NonNegative, 2147483648, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := numutil.ParseInt64(c.in, c.format)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("ParseInt64(%q, %v) error = %v, want %v", c.in, c.format, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("ParseInt64(%q, %v) = %v, want %v", c.in, c.format, got, c.want)
			}
		})
	}
}

func TestParseUint32(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    uint32
		wantErr error
	}{
		{"zero", "0", 0, nil},
		{"max", "4294967295", 4294967295, nil},
		{"overflow", "4294967296", 0, numutil.ErrOverflow},
		{"negative", "-1", 0, numutil.ErrMalformed},
		{"empty", "", 0, numutil.ErrMalformed},
		{"junk", "1.5", 0, numutil.ErrMalformed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := numutil.ParseUint32(c.in)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("ParseUint32(%q) error = %v, want %v", c.in, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("ParseUint32(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestParseUint64(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    uint64
		wantErr error
	}{
		{"max", "18446744073709551615", 18446744073709551615, nil},
		{"overflow", "18446744073709551616", 0, numutil.ErrOverflow},
		{"bytes input", "42", 42, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := numutil.ParseUint64([]byte(c.in))
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("ParseUint64(%q) error = %v, want %v", c.in, err, c.wantErr)
			}
			if got != c.want {
				t.Errorf("ParseUint64(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}
