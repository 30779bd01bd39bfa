package svgmap

import (
	"github.com/alnah/go-svgmap/internal/markup"
)

// LegendStatus tells which legend variants of a scale a template carries.
type LegendStatus struct {
	Scale    string `json:"scale"`
	Normal   bool   `json:"normal"`
	Reversed bool   `json:"reversed"`
}

// Report summarizes what a template offers for rendering.
type Report struct {
	Template     string         `json:"template"`
	Legends      []LegendStatus `json:"legends"`
	MissingTicks []string       `json:"missingTicks,omitempty"`
	TitleFound   bool           `json:"titleFound"`
	Regions      []string       `json:"regions"`
}

// Usable reports whether at least one legend exists and its furniture is
// complete.
func (rep *Report) Usable() bool {
	if len(rep.MissingTicks) > 0 || !rep.TitleFound {
		return false
	}
	for _, l := range rep.Legends {
		if l.Normal || l.Reversed {
			return true
		}
	}
	return false
}

// Inspect checks doc for the legends of every named scale, the legend tick
// and title elements, and the regions that carry a fill.
func Inspect(doc *markup.Document, scales []string, lg Legend) *Report {
	lg = lg.withDefaults()
	rep := &Report{
		Legends: make([]LegendStatus, 0, len(scales)),
		Regions: []string{},
	}

	for _, s := range scales {
		rep.Legends = append(rep.Legends, LegendStatus{
			Scale:    s,
			Normal:   doc.FindByID(LegendID(s, false)) != nil,
			Reversed: doc.FindByID(LegendID(s, true)) != nil,
		})
	}

	for i := 0; i <= lg.Ticks; i++ {
		if id := lg.TickID(i); doc.FindByID(id) == nil {
			rep.MissingTicks = append(rep.MissingTicks, id)
		}
	}
	rep.TitleFound = doc.FindByID(lg.TitleID) != nil

	doc.Walk(func(el *markup.Element) bool {
		if _, ok := el.StyleProperty(fillProperty); !ok {
			return true
		}
		if label, ok := el.Attr(markup.LabelAttr); ok && label != "" {
			rep.Regions = append(rep.Regions, label)
		} else if id := el.ID(); id != "" {
			rep.Regions = append(rep.Regions, id)
		}
		return true
	})

	return rep
}

// Check loads the template at path and inspects it against the
// renderer's scales and legend settings.
func (r *Renderer) Check(path string) (*Report, error) {
	doc, err := markup.LoadFile(path)
	if err != nil {
		return nil, err
	}
	rep := Inspect(doc, r.Scales(), r.cfg.legend)
	rep.Template = path
	return rep, nil
}
