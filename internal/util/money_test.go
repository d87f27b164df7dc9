package util

import "testing"

func TestParseAmount_Valid(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
	}{
		{"0.01", 1},
		{"1", 100},
		{"49.99", 4999},
		{"1000", 100000},
		{" 12.50 ", 1250},
		{"0", 0},
	}

	for _, tc := range cases {
		cents, err := ParseAmount(tc.in)
		if err != nil {
			t.Errorf("ParseAmount(%q) error = %v, want nil", tc.in, err)
			continue
		}
		if cents != tc.cents {
			t.Errorf("ParseAmount(%q) = %d, want %d", tc.in, cents, tc.cents)
		}
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"-1",
		"-0.01",
		"1.005",
		"10000001", // above the 10M cap
		"10000000.01",
		// ×100 overflows int64; must be rejected, not wrapped
		"92233720368547758.08",
		"184467440737095516.46",
		"99999999999999999999999999",
	}

	for _, in := range cases {
		if _, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) error = nil, want error", in)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1, "0.01"},
		{100, "1.00"},
		{4999, "49.99"},
		{0, "0.00"},
		{-250, "-2.50"},
	}

	for _, tc := range cases {
		if got := FormatCents(tc.cents); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestParseAmount_FormatRoundTrip(t *testing.T) {
	for _, s := range []string{"0.01", "49.99", "100.00"} {
		cents, err := ParseAmount(s)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", s, err)
		}
		if got := FormatCents(cents); got != s {
			t.Errorf("FormatCents(ParseAmount(%q)) = %q", s, got)
		}
	}
}
