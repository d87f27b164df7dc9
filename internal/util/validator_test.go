package util

import (
	"testing"
	"time"
)

func TestValidateEmail_Valid(t *testing.T) {
	cases := []string{
		"alice@example.com",
		"bob.smith@mail.example.org",
		"x+tag@sub.domain.io",
	}

	for _, email := range cases {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	cases := []string{
		"",
		"plainaddress",
		"@nodomain",
		"no@tld",
		"two@@example.com",
		"spaces in@example.com",
	}

	for _, email := range cases {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", email)
		}
	}
}

func TestParseDate_Layouts(t *testing.T) {
	cases := []string{
		"2025-06-15",
		"2025-06-15T10:30:00",
		"2025-06-15T10:30:00+02:00",
	}

	for _, in := range cases {
		d, err := ParseDate(in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", in, err)
			continue
		}
		if d.Year() != 2025 || d.Month() != time.June || d.Day() != 15 {
			t.Errorf("ParseDate(%q) = %v, wrong date", in, d)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"15/06/2025",
		"not-a-date",
		"2025-13-01",
	}

	for _, in := range cases {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", in)
		}
	}
}

func TestInSet(t *testing.T) {
	set := []string{"salary", "freelance", "gift"}

	if !InSet("salary", set) {
		t.Error("InSet should find existing value")
	}
	if InSet("food", set) {
		t.Error("InSet should reject absent value")
	}
	if InSet("", set) {
		t.Error("InSet should reject empty value")
	}
}
