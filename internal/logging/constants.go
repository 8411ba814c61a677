package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the module's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile      = "file_path"
	FieldColumn    = "column"
	FieldValue     = "value"
	FieldDelimiter = "delimiter"
	FieldEscape    = "escape"
	FieldCharset   = "charset"
	FieldRowWidth  = "row_width"
	FieldSkipLines = "skip_lines"
	FieldCount     = "count"
	FieldLine      = "line"
	FieldOperation = "operation"
	FieldFormat    = "format"
)
