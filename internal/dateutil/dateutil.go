// Package dateutil resolves the date stamp printed under a list heading.
//
// A date value is either a literal string, printed as-is, or "auto" with an
// optional format: "auto" prints today as YYYYMMDD, "auto:FORMAT" applies a
// token format such as "DD/MM/YYYY" or a named preset such as "iso".
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is the format behind a bare "auto".
const DefaultDateFormat = "YYYYMMDD"

// DefaultDate is the value used when no date is configured.
const DefaultDate = "auto"

const autoPrefix = "auto"

// dateTokens maps format tokens to Go layout components.
// Longest tokens first so "MMMM" wins over "MM".
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"DDDD", "Monday"},
	{"DDD", "Mon"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets names common formats.
var DatePresets = map[string]string{
	"compact":  "YYYYMMDD",
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "DDDD, MMMM D, YYYY",
}

// ParseDateFormat converts a token format to a Go time layout.
// Text inside brackets is kept literally: "[Week of] MMM D".
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var layout strings.Builder
	layout.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			layout.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := matchToken(format[i:], &layout)
		if n == 0 {
			layout.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return layout.String(), nil
}

// matchToken writes the layout for the token at the start of s and returns
// its length, or 0 when s does not start with a token.
func matchToken(s string, layout *strings.Builder) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			layout.WriteString(t.goFmt)
			return len(t.token)
		}
	}
	return 0
}

// IsAuto reports whether value asks for the current date: exactly "auto"
// or an "auto:" prefix, case-insensitive. Other text is a literal.
func IsAuto(value string) bool {
	lower := strings.ToLower(value)
	return lower == autoPrefix || strings.HasPrefix(lower, autoPrefix+":")
}

// ResolveDate turns a date value into the text to print.
//   - "" or "auto"  -> t as YYYYMMDD
//   - "auto:FORMAT" -> t in FORMAT, or in a preset when FORMAT names one
//   - anything else -> returned unchanged
func ResolveDate(value string, t time.Time) (string, error) {
	if value == "" {
		value = DefaultDate
	}
	if !IsAuto(value) {
		return value, nil
	}

	format := DefaultDateFormat
	if len(value) > len(autoPrefix) {
		format = value[len(autoPrefix)+1:]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
