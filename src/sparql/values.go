package sparql

import "strings"

// Values binds a variable to an inline set of values. Entries that look like
// HTTP(S) URIs are wrapped in angle brackets; already-bracketed URIs and
// other tokens (prefixed names, literals) pass through unchanged.
type Values struct {
	Values []string
	Name   string
}

// Build implements the Term interface for Values.
func (v Values) Build() (string, error) {
	enclosed := make([]string, len(v.Values))
	for i, value := range v.Values {
		enclosed[i] = inBrackets(value)
	}
	return "VALUES " + v.Name + " {" + strings.Join(enclosed, " ") + "}", nil
}

// inBrackets encloses a URI in angle brackets unless it already has them or
// is not a URI at all.
func inBrackets(uri string) string {
	switch {
	case strings.HasPrefix(uri, "<"):
		return uri
	case strings.HasPrefix(uri, "http"):
		return "<" + uri + ">"
	default:
		return uri
	}
}
