package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Options controls how a CSV table is read.
type Options struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
	// Encoding of the input: "utf-8" (default, BOM stripped), "latin1",
	// or "windows-1252".
	Encoding string
	// IndexColumn names a column holding row labels. Empty means rows are
	// labeled 0..N-1.
	IndexColumn string
}

// decoder wraps r so that it yields UTF-8.
func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case "latin1", "latin-1", "iso-8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
}

// Read parses a delimited table. The first record is the header; every
// other record must have the same number of fields and hold finite numbers
// (the index column excepted).
func Read(r io.Reader, opts Options) (*Table, error) {
	dr, err := decoder(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(dr)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: %v", ErrRaggedRow, err)
		}
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyTable
	}

	header, rows := records[0], records[1:]

	index := -1
	if opts.IndexColumn != "" {
		for i, h := range header {
			if h == opts.IndexColumn {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, fmt.Errorf("%w: %q", ErrIndexColumn, opts.IndexColumn)
		}
	}

	var columns []string
	var labels []string
	if index >= 0 {
		labels = make([]string, len(rows))
	}
	values := make([][]float64, 0, len(header))
	for c, h := range header {
		if c == index {
			continue
		}
		columns = append(columns, h)
		values = append(values, make([]float64, len(rows)))
	}

	for r, rec := range rows {
		col := 0
		for c, field := range rec {
			if c == index {
				labels[r] = strings.TrimSpace(field)
				continue
			}
			v, err := parseCell(field)
			if err != nil {
				// +2: one for the header, one for 1-based line numbers
				return nil, fmt.Errorf("%w: line %d, column %q: %q", ErrInvalidCell, r+2, header[c], field)
			}
			values[col][r] = v
			col++
		}
	}

	t, err := New(columns, values, labels)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", err, strings.Join(columns, ","))
	}
	return t, nil
}

func parseCell(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidCell
	}
	return v, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path) // #nosec G304 -- data path is user-provided
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
