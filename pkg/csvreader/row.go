package csvreader

import (
	"time"

	"fjacquet/typed-csv/internal/dateutils"
	"fjacquet/typed-csv/internal/logging"
	"fjacquet/typed-csv/internal/textutils"
	"fjacquet/typed-csv/pkg/models"
)

// Row binds one record to a header index and exposes typed,
// column-name-addressed accessors. The header is shared by reference, not
// copied; rows are meant to be short-lived, one per record.
//
// Values are parsed on demand and never cached. A failed accessor only
// fails that one call, so callers extracting several columns from one row
// can handle errors per column.
type Row struct {
	record []string
	header map[string]int
	logger logging.Logger
}

// NewRow wraps a record together with a header index.
func NewRow(record []string, header map[string]int) *Row {
	return &Row{
		record: record,
		header: header,
		logger: logging.GetLogger(),
	}
}

// Get returns the normalized text of the named column. A column name absent
// from the header yields an empty string rather than an error; callers that
// read heterogeneous files depend on this leniency. An empty string is
// therefore indistinguishable from a present-but-empty cell.
func (r *Row) Get(column string) string {
	index, ok := r.header[column]
	if !ok {
		r.logger.WithField(logging.FieldColumn, column).Debug("Column not found in header")
		return ""
	}
	if index >= len(r.record) {
		return ""
	}
	return textutils.Normalize(r.record[index])
}

// GetInt parses the named column as an integer.
func (r *Row) GetInt(column string) (int, error) {
	val := r.Get(column)
	n, err := textutils.ParseInt(val)
	if err != nil {
		return 0, &FieldParseError{Column: column, Value: val, Kind: "Integer", Err: err}
	}
	return n, nil
}

// GetFloat parses the named column as a floating point number.
func (r *Row) GetFloat(column string) (float64, error) {
	val := r.Get(column)
	f, err := textutils.ParseFloat(val)
	if err != nil {
		return 0, &FieldParseError{Column: column, Value: val, Kind: "Double", Err: err}
	}
	return f, nil
}

// GetISODate parses the named column as an ISO-8601 calendar date
// (YYYY-MM-DD). See also GetExcelDate.
func (r *Row) GetISODate(column string) (time.Time, error) {
	val := r.Get(column)
	t, err := dateutils.ParseISODate(val)
	if err != nil {
		return time.Time{}, &FieldParseError{Column: column, Value: val, Kind: "Date", Err: err}
	}
	return t, nil
}

// GetExcelDate parses the named column as an "Excel" date: a number of days
// since the spreadsheet epoch of December 30, 1899. Fractional day parts
// are truncated.
func (r *Row) GetExcelDate(column string) (time.Time, error) {
	val := r.Get(column)
	t, err := dateutils.ParseExcelSerialDate(val)
	if err != nil {
		return time.Time{}, &FieldParseError{Column: column, Value: val, Kind: "Date", Err: err}
	}
	return t, nil
}

// GetMoney parses the named column as a monetary amount.
func (r *Row) GetMoney(column string) (models.Money, error) {
	val := r.Get(column)
	m, err := models.ParseMoney(val)
	if err != nil {
		return models.Money{}, &FieldParseError{Column: column, Value: val, Kind: "Money", Err: err}
	}
	return m, nil
}

// AsList returns the raw record backing this row, unchanged.
func (r *Row) AsList() []string {
	return r.record
}

// GetEnum resolves the named column against a caller-supplied mapping from
// case name to enumerated value. An empty cell yields the zero value and
// ok=false without error; a non-empty cell that matches no case is a
// FieldParseError.
func GetEnum[T any](row *Row, column string, cases map[string]T) (value T, ok bool, err error) {
	val := row.Get(column)
	if val == "" {
		return value, false, nil
	}
	value, ok = cases[val]
	if !ok {
		return value, false, &FieldParseError{Column: column, Value: val, Kind: "Enum"}
	}
	return value, true, nil
}
