// Package report builds column profiles of delimited files: per-column fill
// rates and a sniffed value type, rendered as CSV or JSON.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"fjacquet/typed-csv/internal/currencyutils"
	"fjacquet/typed-csv/internal/dateutils"
	"fjacquet/typed-csv/internal/textutils"
	"fjacquet/typed-csv/pkg/csvreader"
)

// ColumnProfile summarizes one column of a delimited file.
type ColumnProfile struct {
	Column   string `csv:"column" json:"column"`
	Position int    `csv:"position" json:"position"`
	Rows     int    `csv:"rows" json:"rows"`
	Filled   int    `csv:"filled" json:"filled"`
	FillRate string `csv:"fill_rate" json:"fill_rate"`
	Type     string `csv:"type" json:"type"`
}

// Generator profiles delimited files.
type Generator struct {
	logger *logrus.Logger
}

// NewGenerator creates a new profile Generator.
func NewGenerator(logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{logger: logger}
}

type columnCounts struct {
	filled  int
	ints    int
	floats  int
	dates   int
	amounts int
}

// Profile consumes the reader and returns one profile per header column,
// ordered by position.
func (g *Generator) Profile(r *csvreader.Reader) ([]ColumnProfile, error) {
	header, err := r.HeaderIndex()
	if err == io.EOF {
		return nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, err
	}

	// Duplicate header names keep only their last position, so the widest
	// position, not the map size, bounds the name table.
	width := 0
	for _, pos := range header {
		if pos+1 > width {
			width = pos + 1
		}
	}
	names := make([]string, width)
	for name, pos := range header {
		names[pos] = name
	}

	counts := make([]columnCounts, len(names))
	rows := 0
	err = r.ForEach(func(record []string) error {
		rows++
		for i := range names {
			if i >= len(record) {
				continue
			}
			observe(&counts[i], textutils.Normalize(record[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]ColumnProfile, len(names))
	for i, name := range names {
		profiles[i] = ColumnProfile{
			Column:   name,
			Position: i,
			Rows:     rows,
			Filled:   counts[i].filled,
			FillRate: fillRate(counts[i].filled, rows),
			Type:     sniffType(counts[i]),
		}
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Position < profiles[j].Position })

	g.logger.WithFields(logrus.Fields{
		"columns": len(profiles),
		"rows":    rows,
	}).Info("Profiled input")
	return profiles, nil
}

func observe(c *columnCounts, value string) {
	if value == "" {
		return
	}
	c.filled++
	if _, err := textutils.ParseInt(value); err == nil {
		c.ints++
	}
	if _, err := textutils.ParseFloat(value); err == nil {
		c.floats++
	}
	if _, err := dateutils.ParseISODate(value); err == nil {
		c.dates++
	}
	if _, err := currencyutils.ParseAmount(value); err == nil {
		c.amounts++
	}
}

// sniffType picks the most specific type every filled cell satisfied.
func sniffType(c columnCounts) string {
	switch {
	case c.filled == 0:
		return "empty"
	case c.dates == c.filled:
		return "date"
	case c.ints == c.filled:
		return "integer"
	case c.floats == c.filled:
		return "double"
	case c.amounts == c.filled:
		return "amount"
	default:
		return "text"
	}
}

func fillRate(filled, rows int) string {
	if rows == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(filled)/float64(rows))
}

// Render serializes profiles in the requested format (csv or json).
func (g *Generator) Render(profiles []ColumnProfile, format string) ([]byte, error) {
	switch format {
	case "csv":
		return g.renderCSV(profiles)
	case "json":
		return g.renderJSON(profiles)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) renderCSV(profiles []ColumnProfile) ([]byte, error) {
	var buf bytes.Buffer
	if err := gocsv.Marshal(profiles, &buf); err != nil {
		g.logger.Errorf("Failed to marshal CSV report: %v", err)
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderJSON(profiles []ColumnProfile) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal JSON report: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return jsonReport, nil
}
