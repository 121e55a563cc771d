package guide

import "strings"

// cityCutset mirrors the ASCII punctuation set stripped off user input.
const cityCutset = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// NormalizeCity trims whitespace and surrounding punctuation from a
// user-supplied place name, e.g. "  paris!! " -> "paris".
func NormalizeCity(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, cityCutset)
	return strings.TrimSpace(s)
}
