package svgmap

import (
	"fmt"

	"github.com/aclements/go-gg/palette"

	"github.com/alnah/go-svgmap/internal/colorscale"
	"github.com/alnah/go-svgmap/internal/markup"
)

// fillProperty is the style key rewritten on every region.
const fillProperty = "fill"

// Regions binds table columns to region elements of one document.
type Regions struct {
	columns  []string
	elements []*markup.Element
}

// BindRegions resolves every column header to a region element, by id and
// then by inkscape:label. It fails on the first header without a region
// (RegionNotFoundError) or whose region style has no fill
// (ErrMalformedStyle).
func BindRegions(doc *markup.Document, columns []string) (*Regions, error) {
	r := &Regions{
		columns:  columns,
		elements: make([]*markup.Element, len(columns)),
	}
	for i, col := range columns {
		key := RegionKey(col)
		el := doc.Find(key)
		if el == nil {
			return nil, &RegionNotFoundError{Column: col, Key: key}
		}
		if _, ok := el.StyleProperty(fillProperty); !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedStyle, key)
		}
		r.elements[i] = el
	}
	return r, nil
}

// Len returns the number of bound columns.
func (r *Regions) Len() int {
	return len(r.columns)
}

// Color rewrites the fill of every bound region from one row of normalized
// values, given in column order. Other style declarations are untouched,
// and regions outside the table keep whatever fill they had.
func (r *Regions) Color(row []float64, scale palette.Continuous) error {
	if len(row) != len(r.elements) {
		return fmt.Errorf("row has %d values for %d regions", len(row), len(r.elements))
	}
	for i, el := range r.elements {
		el.SetStyleProperty(fillProperty, colorscale.Hex(scale.Map(row[i])))
	}
	return nil
}
