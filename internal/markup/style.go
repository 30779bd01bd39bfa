package markup

import "strings"

// Declaration is one `key:value` entry of an inline style string.
// Segments without a colon are kept verbatim with an empty Key.
type Declaration struct {
	Key   string
	Value string
	raw   string
}

// Style is an ordered, lossless view of a semicolon-separated style string.
// String() of an unmodified Style returns the input byte for byte.
type Style struct {
	decls []Declaration
}

// ParseStyle splits s on semicolons. Empty segments, including the one
// produced by a trailing semicolon, are preserved.
func ParseStyle(s string) Style {
	if s == "" {
		return Style{}
	}
	parts := strings.Split(s, ";")
	decls := make([]Declaration, len(parts))
	for i, p := range parts {
		decls[i] = parseDeclaration(p)
	}
	return Style{decls: decls}
}

func parseDeclaration(raw string) Declaration {
	key, value, ok := strings.Cut(raw, ":")
	if !ok {
		return Declaration{raw: raw}
	}
	return Declaration{
		Key:   strings.TrimSpace(key),
		Value: strings.TrimSpace(value),
		raw:   raw,
	}
}

// Get returns the value of the first declaration named key.
func (s Style) Get(key string) (string, bool) {
	for _, d := range s.decls {
		if d.Key != "" && d.Key == key {
			return d.Value, true
		}
	}
	return "", false
}

// Set replaces the first declaration named key with `key:value`.
// A missing key is appended, ahead of a trailing empty segment if any.
func (s *Style) Set(key, value string) {
	d := Declaration{Key: key, Value: value, raw: key + ":" + value}
	for i := range s.decls {
		if s.decls[i].Key == key {
			s.decls[i] = d
			return
		}
	}

	n := len(s.decls)
	switch {
	case n == 0:
		s.decls = []Declaration{d}
	case s.decls[n-1].raw == "":
		s.decls = append(s.decls[:n-1], d, Declaration{})
	default:
		s.decls = append(s.decls, d)
	}
}

// String renders the style back to its attribute form.
func (s Style) String() string {
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.raw
	}
	return strings.Join(parts, ";")
}
