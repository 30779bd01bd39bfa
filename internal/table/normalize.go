package table

import (
	"fmt"

	"github.com/aclements/go-moremath/scale"
)

// Range is the global minimum and maximum of a table.
type Range struct {
	Min, Max float64
}

// Tick returns the i-th of n+1 evenly spaced values from Min to Max,
// both ends included.
func (r Range) Tick(i, n int) float64 {
	return r.Min + float64(i)*(r.Max-r.Min)/float64(n)
}

// GlobalRange computes one minimum and one maximum over every cell of
// every column.
func GlobalRange(t *Table) (Range, error) {
	first := true
	var rg Range
	for _, col := range t.cols {
		for _, v := range col {
			if first {
				rg = Range{Min: v, Max: v}
				first = false
				continue
			}
			if v < rg.Min {
				rg.Min = v
			}
			if v > rg.Max {
				rg.Max = v
			}
		}
	}
	if first {
		return Range{}, ErrEmptyTable
	}
	return rg, nil
}

// Normalize rescales every cell with the table's global range, so all
// columns share one legend. The minimum maps to exactly 0 and the maximum
// to exactly 1. A table whose cells are all equal fails with
// ErrDegenerateRange.
func Normalize(t *Table) (*Table, Range, error) {
	rg, err := GlobalRange(t)
	if err != nil {
		return nil, Range{}, err
	}
	if rg.Min == rg.Max {
		return nil, rg, fmt.Errorf("%w: every value is %g", ErrDegenerateRange, rg.Min)
	}

	lin := scale.Linear{Min: rg.Min, Max: rg.Max}
	cols := make([][]float64, len(t.cols))
	for c, col := range t.cols {
		out := make([]float64, len(col))
		for i, v := range col {
			out[i] = lin.Map(v)
		}
		cols[c] = out
	}

	return &Table{Columns: t.Columns, Labels: t.Labels, cols: cols}, rg, nil
}
