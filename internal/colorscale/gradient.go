package colorscale

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient is a continuous palette over evenly spaced stops. Values between
// two neighbouring stops blend them linearly in sRGB, the way ColorBrewer
// and seaborn color maps interpolate.
type Gradient struct {
	stops []colorful.Color
}

// NewGradient builds a gradient from at least two stops; Map(0) is the
// first stop and Map(1) the last. Alpha is discarded.
func NewGradient(stops []color.Color) *Gradient {
	if len(stops) < 2 {
		panic("colorscale: gradient needs at least 2 stops")
	}
	g := &Gradient{stops: make([]colorful.Color, len(stops))}
	for i, c := range stops {
		cf, _ := colorful.MakeColor(c)
		g.stops[i] = cf
	}
	return g
}

// Map returns the color at x, clamped to [0, 1].
func (g *Gradient) Map(x float64) color.Color {
	last := len(g.stops) - 1
	switch {
	case x != x || x <= 0: // NaN included
		return g.stops[0]
	case x >= 1:
		return g.stops[last]
	}

	pos := x * float64(last)
	i := int(pos)
	if i >= last {
		return g.stops[last]
	}
	return g.stops[i].BlendRgb(g.stops[i+1], pos-float64(i)).Clamped()
}
