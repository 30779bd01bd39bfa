// Package table reads numeric CSV tables and rescales them onto [0, 1].
package table

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for table operations.
var (
	ErrEmptyTable      = errors.New("table has no data")
	ErrInvalidCell     = errors.New("cell is not a finite number")
	ErrRaggedRow       = errors.New("row has wrong number of fields")
	ErrDuplicateColumn = errors.New("duplicate column header")
	ErrIndexColumn     = errors.New("index column not found")
	ErrUnknownEncoding = errors.New("unknown text encoding")
	ErrDegenerateRange = errors.New("all values are equal, cannot normalize")
	ErrColumnMismatch  = errors.New("column lengths differ")
	ErrDuplicateLabel  = errors.New("duplicate row label")
)

// Table is a set of named numeric columns sharing one row count.
// Labels name the rows and end up in output file names.
type Table struct {
	Columns []string
	Labels  []string
	cols    [][]float64
}

// New builds a table from column-major data. Labels default to 0..N-1
// when nil and must be unique, since each one names an output file.
func New(columns []string, values [][]float64, labels []string) (*Table, error) {
	if len(columns) != len(values) {
		return nil, ErrColumnMismatch
	}
	rows := 0
	if len(values) > 0 {
		rows = len(values[0])
	}
	for _, v := range values {
		if len(v) != rows {
			return nil, ErrColumnMismatch
		}
	}
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if seen[c] {
			return nil, ErrDuplicateColumn
		}
		seen[c] = true
	}
	if labels == nil {
		labels = defaultLabels(rows)
	}
	if len(labels) != rows {
		return nil, ErrColumnMismatch
	}
	rowOf := make(map[string]int, rows)
	for i, l := range labels {
		if first, ok := rowOf[l]; ok {
			return nil, fmt.Errorf("%w: %q on rows %d and %d", ErrDuplicateLabel, l, first, i)
		}
		rowOf[l] = i
	}
	return &Table{Columns: columns, Labels: labels, cols: values}, nil
}

func defaultLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Labels)
}

// Row returns the values of row i in column order.
func (t *Table) Row(i int) []float64 {
	row := make([]float64, len(t.cols))
	for c := range t.cols {
		row[c] = t.cols[c][i]
	}
	return row
}

// column returns the values of the named column, or nil.
func (t *Table) column(name string) []float64 {
	for i, c := range t.Columns {
		if c == name {
			return t.cols[i]
		}
	}
	return nil
}
