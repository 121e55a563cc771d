package guide

import "testing"

func TestNormalizeCity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Paris  ", "Paris"},
		{"paris!!", "paris"},
		{"'Tokyo'", "Tokyo"},
		{"  new york?  ", "new york"},
		{"São Paulo", "São Paulo"},
		{"...", ""},
		{"", ""},
		{"St. Louis", "St. Louis"},
	}
	for _, c := range cases {
		if got := NormalizeCity(c.in); got != c.want {
			t.Errorf("NormalizeCity(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
