package csvreader

import "fmt"

// FieldParseError reports that a typed accessor could not interpret a
// column's raw text as the requested type. It carries the column name and
// the raw value so callers can diagnose the offending cell.
type FieldParseError struct {
	Column string
	Value  string
	Kind   string
	Err    error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("couldn't parse '%s' as %s, for %s column", e.Value, e.Kind, e.Column)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}

// RowWidthError reports a record whose field count differs from the first
// record read by the same Reader.
type RowWidthError struct {
	Expected int
	Actual   int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("found a row with %d fields when a previous row had %d fields", e.Actual, e.Expected)
}

// ReadError wraps a failure of the underlying input source.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read input: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
