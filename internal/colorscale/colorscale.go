// Package colorscale maps normalized values in [0, 1] to colors through
// named continuous palettes.
package colorscale

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/aclements/go-gg/palette"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alnah/go-svgmap/internal/assets"
)

// ErrUnknownScale is returned when a scale name is not registered.
var ErrUnknownScale = errors.New("unknown color scale")

// ViridisName is the registry name of the Viridis palette, built from
// go-gg's Viridis stops.
const ViridisName = "viridis"

// Registry maps scale names to continuous palettes.
type Registry struct {
	scales map[string]palette.Continuous
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{scales: make(map[string]palette.Continuous)}
}

// Builtin returns a registry holding every scale the loader provides, each
// as a Gradient over its stops, plus Viridis.
func Builtin(loader assets.AssetLoader) (*Registry, error) {
	names, err := loader.ListScales()
	if err != nil {
		return nil, fmt.Errorf("listing scales: %w", err)
	}

	r := NewRegistry()
	r.Register(ViridisName, viridis())
	for _, name := range names {
		def, err := loader.LoadScale(name)
		if err != nil {
			return nil, err
		}
		colors, err := def.Colors()
		if err != nil {
			return nil, err
		}
		stops := make([]color.Color, len(colors))
		for i, c := range colors {
			stops[i] = c
		}
		r.Register(name, NewGradient(stops))
	}
	return r, nil
}

// viridis re-blends go-gg's Viridis stops with Gradient.
func viridis() palette.Continuous {
	g, ok := palette.Viridis.(palette.RGBGradient)
	if !ok || len(g.Colors) < 2 {
		return palette.Viridis
	}
	stops := make([]color.Color, len(g.Colors))
	for i, c := range g.Colors {
		stops[i] = c
	}
	return NewGradient(stops)
}

// Register adds or replaces a scale.
func (r *Registry) Register(name string, p palette.Continuous) {
	r.scales[name] = p
}

// Lookup returns the named scale, reversed if requested.
func (r *Registry) Lookup(name string, reversed bool) (palette.Continuous, error) {
	p, ok := r.scales[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, name)
	}
	if reversed {
		return Reverse(p), nil
	}
	return p, nil
}

// Names returns all registered scale names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scales))
	for n := range r.scales {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// reversed flips the domain of a palette.
type reversed struct {
	p palette.Continuous
}

func (r reversed) Map(x float64) color.Color {
	return r.p.Map(1 - x)
}

// Reverse returns p with its domain flipped, so Reverse(p).Map(0) is
// p.Map(1). Reversing twice yields the original palette.
func Reverse(p palette.Continuous) palette.Continuous {
	if r, ok := p.(reversed); ok {
		return r.p
	}
	return reversed{p: p}
}

// Hex formats c as #rrggbb, rounding each channel to the nearest 8-bit
// value. A fully transparent color formats as #000000.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Clamped().Hex()
}
