package svgmap

import (
	"fmt"
	"strconv"

	"github.com/alnah/go-svgmap/internal/markup"
	"github.com/alnah/go-svgmap/internal/table"
)

// Defaults for legend furniture ids.
const (
	DefaultTickPrefix = "tick_"
	DefaultTitleID    = "colorbar_title"
	DefaultTicks      = 10
)

// Legend describes the legend furniture in a template and the title to
// write into it.
type Legend struct {
	Title      string
	TickPrefix string // tick ids are TickPrefix + "0" .. TickPrefix + Ticks
	TitleID    string
	Ticks      int // intervals; Ticks+1 labels are written
}

func (l Legend) withDefaults() Legend {
	if l.TickPrefix == "" {
		l.TickPrefix = DefaultTickPrefix
	}
	if l.TitleID == "" {
		l.TitleID = DefaultTitleID
	}
	if l.Ticks <= 0 {
		l.Ticks = DefaultTicks
	}
	return l
}

// TickID returns the element id of tick i.
func (l Legend) TickID(i int) string {
	return l.withDefaults().TickPrefix + strconv.Itoa(i)
}

// LegendID returns the id of the legend element for a scale.
func LegendID(scale string, reversed bool) string {
	if reversed {
		return scale + "_reversed"
	}
	return scale
}

// FormatTick renders a tick value with one decimal place.
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// RenderLegend makes the scale's legend visible, writes evenly spaced tick
// labels from rg.Min to rg.Max, and sets the title text. Every element is
// located before anything is changed, so a missing one leaves doc as it was.
func RenderLegend(doc *markup.Document, scale string, reversed bool, lg Legend, rg table.Range) error {
	lg = lg.withDefaults()

	id := LegendID(scale, reversed)
	legend := doc.FindByID(id)
	if legend == nil {
		return fmt.Errorf("%w: %q", ErrLegendNotFound, id)
	}

	ticks := make([]*markup.Element, lg.Ticks+1)
	for i := range ticks {
		tid := lg.TickID(i)
		ticks[i] = doc.FindByID(tid)
		if ticks[i] == nil {
			return fmt.Errorf("%w: %q", ErrTickNotFound, tid)
		}
	}

	title := doc.FindByID(lg.TitleID)
	if title == nil {
		return fmt.Errorf("%w: %q", ErrTitleNotFound, lg.TitleID)
	}

	legend.SetVisible()
	for i, el := range ticks {
		el.SetText(FormatTick(rg.Tick(i, lg.Ticks)))
	}
	title.SetText(lg.Title)
	return nil
}
