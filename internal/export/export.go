// Package export writes flattened tables in a choice of formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/itsmostafa/svgflat/internal/tree"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidDelimiter  = errors.New("invalid delimiter")
)

// Format represents an output format.
type Format string

const (
	CSV   Format = "csv"
	TSV   Format = "tsv"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
)

var formats = []Format{CSV, TSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options tune the writers. The zero value writes comma separated CSV.
type Options struct {
	// Delimiter separates CSV fields. Default: comma.
	Delimiter rune
	// Indent is used by JSON and YAML. Empty means compact JSON and the
	// YAML default.
	Indent string
}

// ParseDelimiter turns a flag value into a CSV delimiter. The value must be a
// single rune other than a quote or line break; "\t" is accepted for tab.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q must be a single character", ErrInvalidDelimiter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, s)
	}
	return r, nil
}

// Write renders records in format f. CSV and TSV start with the header row
// even when there are no records.
func Write(w io.Writer, f Format, records []tree.Record, opts Options) error {
	switch f {
	case CSV, "":
		return WriteTable(w, tree.TableOf(records), opts)
	case TSV:
		return writeTSV(w, records)
	case JSON:
		return writeJSON(w, records, opts)
	case JSONL:
		return writeJSONL(w, records)
	case YAML:
		return writeYAML(w, records, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteTable writes a flattened table as CSV, row for row, header included.
func WriteTable(w io.Writer, table tree.Table, opts Options) error {
	cw, err := newCSVWriter(w, opts)
	if err != nil {
		return err
	}
	for _, row := range table {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func newCSVWriter(w io.Writer, opts Options) (*csv.Writer, error) {
	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		if opts.Delimiter == '"' || opts.Delimiter == '\r' || opts.Delimiter == '\n' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDelimiter, opts.Delimiter)
		}
		cw.Comma = opts.Delimiter
	}
	return cw, nil
}

// tsvReplacer keeps every record on one line and every cell in one column.
var tsvReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func writeTSV(w io.Writer, records []tree.Record) error {
	if _, err := fmt.Fprintln(w, strings.Join(tree.Header(), "\t")); err != nil {
		return err
	}
	for _, r := range records {
		cells := r.Row()
		for i, c := range cells {
			cells[i] = tsvReplacer.Replace(c)
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, records []tree.Record, opts Options) error {
	if records == nil {
		records = []tree.Record{}
	}
	enc := json.NewEncoder(w)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}
	return enc.Encode(records)
}

func writeJSONL(w io.Writer, records []tree.Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, records []tree.Record, opts Options) error {
	if records == nil {
		records = []tree.Record{}
	}
	enc := yaml.NewEncoder(w)
	if opts.Indent != "" {
		enc.SetIndent(len(opts.Indent))
	}
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}
