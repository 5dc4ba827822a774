package forms

import "testing"

func TestIsNonEmptyString(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"plain string", "hello", true},
		{"padded string", "  hi  ", true},
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"nil", nil, false},
		{"number", 42.0, false},
		{"bool", true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNonEmptyString(tc.in); got != tc.want {
				t.Errorf("IsNonEmptyString(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{"maria@email.com", true},
		{"  maria@email.com  ", true},
		{"a@b.co", true},
		{"first.last+tag@sub.domain.org", true},
		{"missing-at.com", false},
		{"no@tld", false},
		{"two words@email.com", false},
		{"@email.com", false},
		{"maria@", false},
		{"", false},
		{nil, false},
		{5.0, false},
	}

	for _, tc := range cases {
		if got := IsValidEmail(tc.in); got != tc.want {
			t.Errorf("IsValidEmail(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidRating(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"one", 1.0, true},
		{"five", 5.0, true},
		{"int five", 5, true},
		{"integral float", 3.0, true},
		{"zero", 0.0, false},
		{"six", 6.0, false},
		{"half star", 3.5, false},
		{"string five", "5", false},
		{"nil", nil, false},
		{"negative", -1.0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidRating(tc.in); got != tc.want {
				t.Errorf("IsValidRating(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRating(t *testing.T) {
	if got := Rating(4.0); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := Rating(2); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := Rating("5"); got != 0 {
		t.Errorf("expected 0 for unvalidated input, got %d", got)
	}
}
