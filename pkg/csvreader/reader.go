// Package csvreader parses delimiter-separated text into typed rows.
//
// A Reader tokenizes physical lines into logical records, merging lines when
// a quoted field contains an embedded newline, and enforcing that every
// record has the same field count as the first one. A Row binds one record
// to a header index and exposes typed, column-name-addressed accessors.
//
// The quoting rules are deliberately simpler than RFC 4180: an escape
// character inside an open quote closes it only when followed by the
// delimiter or the end of the line. Anything else leaves the quote open and
// drops the escape character. Downstream consumers depend on this exact
// behavior.
package csvreader

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"fjacquet/typed-csv/internal/logging"
)

// Reader reads logical records from delimiter-separated text.
//
// A Reader is stateful: it remembers the expected row width after the first
// record and, in reuse mode, owns the record slice it hands out. It is not
// safe for concurrent use.
type Reader struct {
	br *bufio.Reader

	delimiter rune
	escape    rune
	reuse     bool
	skipLines int
	charset   string

	lastWidth int
	record    []string
	exhausted bool
	skipped   bool

	logger logging.Logger
}

// Option configures a Reader at construction time.
type Option func(*Reader)

// WithDelimiter sets the field separator character. Default is ','.
func WithDelimiter(delimiter rune) Option {
	return func(r *Reader) {
		r.delimiter = delimiter
	}
}

// WithEscape sets the quoting character. Default is '"'.
func WithEscape(escape rune) Option {
	return func(r *Reader) {
		r.escape = escape
	}
}

// WithSkipLines discards the first n physical lines before any tokenizing
// begins. Useful for banner or comment lines above the header.
func WithSkipLines(n int) Option {
	return func(r *Reader) {
		r.skipLines = n
	}
}

// WithReuseRecord makes NextRecord clear and refill the same backing slice
// on every call instead of allocating a fresh one. The returned record is
// only valid until the next call: callers must copy it out if they need to
// retain it. This trades aliasing safety for avoiding per-record allocation.
func WithReuseRecord() Option {
	return func(r *Reader) {
		r.reuse = true
	}
}

// WithCharset decodes the input from the named IANA character encoding
// ("windows-1252", "iso-8859-1", ...). Input is read as UTF-8 when no
// charset is given or the name is unknown.
func WithCharset(name string) Option {
	return func(r *Reader) {
		r.charset = name
	}
}

// WithLogger attaches a logger to the Reader. Defaults to the process-wide
// logger.
func WithLogger(logger logging.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Reader consuming delimiter-separated text from src.
func New(src io.Reader, opts ...Option) *Reader {
	r := &Reader{
		delimiter: ',',
		escape:    '"',
		logger:    logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.charset != "" {
		src = decodeCharset(src, r.charset, r.logger)
	}
	r.br = bufio.NewReader(src)
	return r
}

// NewFromString creates a Reader over an in-memory string.
func NewFromString(s string, opts ...Option) *Reader {
	return New(strings.NewReader(s), opts...)
}

// NewFromFile creates a Reader over the named file. The caller owns the
// returned closer and must close it when done with the Reader.
func NewFromFile(path string, opts ...Option) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ReadError{Err: err}
	}
	return New(f, opts...), f, nil
}

// decodeCharset wraps src with a decoder for the named IANA encoding,
// falling back to the raw stream when the name is unknown.
func decodeCharset(src io.Reader, name string, logger logging.Logger) io.Reader {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		logger.WithField(logging.FieldCharset, name).Warn("Unknown charset, reading input as UTF-8")
		return src
	}
	return transform.NewReader(src, enc.NewDecoder())
}

// NextRecord returns the next logical record, or io.EOF when the input is
// exhausted. In reuse mode the returned slice is only valid until the next
// call.
func (r *Reader) NextRecord() ([]string, error) {
	if !r.skipped {
		r.skipped = true
		for i := 0; i < r.skipLines; i++ {
			if _, ok, err := r.readLine(); err != nil {
				return nil, err
			} else if !ok {
				return nil, io.EOF
			}
		}
	}

	line, ok, err := r.readLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.EOF
	}
	return r.parseLine(line)
}

// readLine fetches one physical line without its terminator. ok is false
// once the source is exhausted.
func (r *Reader) readLine() (line string, ok bool, err error) {
	if r.exhausted {
		return "", false, nil
	}
	line, err = r.br.ReadString('\n')
	if err == io.EOF {
		r.exhausted = true
		if line == "" {
			return "", false, nil
		}
		return strings.TrimSuffix(line, "\r"), true, nil
	}
	if err != nil {
		r.exhausted = true
		return "", false, &ReadError{Err: err}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

// parseLine scans one physical line into a record, pulling further physical
// lines while a quote is still open at end of line.
func (r *Reader) parseLine(line string) ([]string, error) {
	var record []string
	if r.reuse && r.record != nil {
		record = r.record[:0]
	} else {
		record = make([]string, 0, r.lastWidth)
	}

	var field strings.Builder
	escaped := false
	chars := []rune(line)

	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c == r.escape {
			if escaped {
				// The quote closes only when the next character is the
				// delimiter or the line ends here. Any other escape
				// character is consumed without emission and the quote
				// stays open.
				if i == len(chars)-1 || chars[i+1] == r.delimiter {
					escaped = false
				}
			} else {
				escaped = true
			}
		} else if !escaped && c == r.delimiter {
			record = append(record, field.String())
			field.Reset()
		} else {
			field.WriteRune(c)
		}

		if i == len(chars)-1 && escaped {
			// The quoted field contains an embedded line break. Splice the
			// next physical line onto the one being scanned and keep going.
			next, ok, err := r.readLine()
			if err != nil {
				return nil, err
			}
			if !ok {
				// Source ended mid-quote. Treat the continuation as empty
				// and let the scan terminate.
				continue
			}
			chars = append(chars, '\n')
			chars = append(chars, []rune(next)...)
		}
	}
	record = append(record, field.String())

	if r.lastWidth == 0 {
		r.lastWidth = len(record)
		r.logger.WithField(logging.FieldRowWidth, r.lastWidth).Debug("Established row width from first record")
	} else if len(record) != r.lastWidth {
		return nil, &RowWidthError{Expected: r.lastWidth, Actual: len(record)}
	}

	if r.reuse {
		r.record = record
	}
	return record, nil
}

// HeaderIndex reads the next record as a header row and returns a mapping
// from column name to zero-based position. When a name occurs more than
// once, the last occurrence wins.
func (r *Reader) HeaderIndex() (map[string]int, error) {
	row, err := r.NextRecord()
	if err != nil {
		return nil, err
	}
	header := make(map[string]int, len(row))
	for i, name := range row {
		header[name] = i
	}
	r.logger.WithField(logging.FieldCount, len(header)).Debug("Built header index")
	return header, nil
}

// ForEach invokes callback for every remaining record. Iteration stops on
// the first tokenizing error or the first error returned by the callback.
func (r *Reader) ForEach(callback func(record []string) error) error {
	for {
		record, err := r.NextRecord()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := callback(record); err != nil {
			return err
		}
	}
}

// ForEachRow invokes callback for every remaining record, wrapped as a Row
// bound to the given header index.
func (r *Reader) ForEachRow(header map[string]int, callback func(row *Row) error) error {
	return r.ForEach(func(record []string) error {
		return callback(NewRow(record, header))
	})
}

// ReadAll materializes every remaining record. In reuse mode each record is
// copied out of the shared buffer so the returned slices do not alias.
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	err := r.ForEach(func(record []string) error {
		if r.reuse {
			record = append([]string(nil), record...)
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
