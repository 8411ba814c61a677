// Package dateutils provides the date parsing helpers used by the row
// accessors: ISO-8601 calendar dates and spreadsheet serial dates.
package dateutils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayoutISO is the ISO-8601 calendar date layout (YYYY-MM-DD).
const DateLayoutISO = "2006-01-02"

// ExcelEpoch is the day-zero of the spreadsheet serial date scheme:
// two days before January 1, 1900. The offset reproduces the historical
// Lotus 1-2-3 leap-year bug that spreadsheet formats still carry.
var ExcelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseISODate parses a YYYY-MM-DD calendar date.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse '%s' as an ISO date", s)
	}
	return t, nil
}

// FromExcelSerial converts a spreadsheet serial day count to a date.
// Fractional parts (time of day) are truncated.
func FromExcelSerial(serial float64) time.Time {
	return ExcelEpoch.AddDate(0, 0, int(math.Trunc(serial)))
}

// ParseExcelSerialDate parses a numeric string as a spreadsheet serial date.
func ParseExcelSerialDate(s string) (time.Time, error) {
	serial, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse '%s' as a serial date", s)
	}
	return FromExcelSerial(serial), nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
