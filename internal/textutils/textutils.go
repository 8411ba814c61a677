// Package textutils provides text normalization and numeric parsing helpers
// shared by the row accessors.
package textutils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Normalize cleans a raw field value for consumer use. It strips a leading
// byte-order mark, trims surrounding whitespace and drops non-printable
// control characters (except newline and tab, which are legitimate inside
// quoted fields).
func Normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.TrimSpace(s)
	if !strings.ContainsFunc(s, isDroppedControl) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isDroppedControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDroppedControl(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return unicode.IsControl(r)
}

// ParseInt parses an integer field value. Thousands separators (commas and
// apostrophes) are tolerated, as is a trailing ".0"-style fraction of zeros
// produced by spreadsheet exports.
func ParseInt(s string) (int, error) {
	cleaned := stripSeparators(s)
	if dot := strings.IndexByte(cleaned, '.'); dot >= 0 {
		frac := cleaned[dot+1:]
		if frac != "" && strings.Trim(frac, "0") != "" {
			return 0, fmt.Errorf("not an integer: '%s'", s)
		}
		cleaned = cleaned[:dot]
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("not an integer: '%s'", s)
	}
	return n, nil
}

// ParseFloat parses a floating point field value, tolerating thousands
// separators the same way ParseInt does.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(stripSeparators(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: '%s'", s)
	}
	return f, nil
}

func stripSeparators(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	return strings.ReplaceAll(s, "'", "")
}
