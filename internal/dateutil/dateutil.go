// Package dateutil expands date placeholders in legend titles.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date placeholder or format.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits the length of a single format.
const MaxFormatLength = 50

// DefaultFormat is used by a bare {date} placeholder.
const DefaultFormat = "YYYY-MM-DD"

// placeholder opens a date placeholder in a title.
const placeholder = "{date"

// dateTokens maps format tokens to time layouts.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets provides named shortcuts for common formats.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"month":    "MMMM YYYY",
	"year":     "YYYY",
}

// Format renders t with a format made of the tokens YYYY, YY, MMMM, MMM,
// MM, M, DD and D. Text in brackets is copied literally, as is any other
// character. A preset name may be given instead of a format.
func Format(t time.Time, format string) (string, error) {
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range dateTokens {
			if strings.HasPrefix(format[i:], tok.token) {
				b.WriteString(t.Format(tok.layout))
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(format[i])
			i++
		}
	}
	return b.String(), nil
}

// Expand replaces every {date} and {date:FORMAT} placeholder in s with t
// rendered by Format. Text without placeholders is returned unchanged.
func Expand(s string, t time.Time) (string, error) {
	if !strings.Contains(s, placeholder) {
		return s, nil
	}

	var b strings.Builder
	rest := s
	for {
		start := strings.Index(rest, placeholder)
		if start == -1 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:start])
		rest = rest[start+len(placeholder):]

		switch {
		case strings.HasPrefix(rest, "}"):
			out, err := Format(t, DefaultFormat)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			rest = rest[1:]
		case strings.HasPrefix(rest, ":"):
			end := strings.IndexByte(rest, '}')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed placeholder in %q", ErrInvalidDateFormat, s)
			}
			out, err := Format(t, rest[1:end])
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			rest = rest[end+1:]
		default:
			// "{dates" and the like are plain text
			b.WriteString(placeholder)
		}
	}
}
