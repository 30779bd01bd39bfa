package colorscale_test

import (
	"errors"
	"image/color"
	"math"
	"strconv"
	"testing"

	"github.com/aclements/go-gg/palette"

	"github.com/alnah/go-svgmap/internal/assets"
	"github.com/alnah/go-svgmap/internal/colorscale"
)

func builtin(t *testing.T) *colorscale.Registry {
	t.Helper()
	r, err := colorscale.Builtin(assets.NewEmbeddedLoader())
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	return r
}

// ---------------------------------------------------------------------------
// TestHex
// ---------------------------------------------------------------------------

func TestHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    color.Color
		want string
	}{
		{color.RGBA{0, 0, 0, 255}, "#000000"},
		{color.RGBA{255, 255, 255, 255}, "#ffffff"},
		{color.RGBA{0xa5, 0x00, 0x26, 0xff}, "#a50026"},
		{color.NRGBA{0x12, 0x34, 0x56, 0xff}, "#123456"},
		{color.Gray{0x80}, "#808080"},
		// 0x0081/0xffff*255 is 0.504, which rounds up where a shift truncates.
		{color.RGBA64{0x8080, 0x0081, 0xffff, 0xffff}, "#8001ff"},
		{color.RGBA64{0x7f00, 0x0000, 0x0000, 0xffff}, "#7f0000"},
	}
	for _, tt := range tests {
		if got := colorscale.Hex(tt.c); got != tt.want {
			t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRegistry
// ---------------------------------------------------------------------------

func TestBuiltin_Names(t *testing.T) {
	t.Parallel()

	names := builtin(t).Names()
	want := map[string]bool{"RdYlGn": true, "crest": true, "flare": true, colorscale.ViridisName: true}
	found := 0
	for _, n := range names {
		if want[n] {
			found++
		}
	}
	if found != len(want) {
		t.Errorf("Names() = %v, missing some of %v", names, want)
	}
}

func TestLookup_Endpoints(t *testing.T) {
	t.Parallel()

	r := builtin(t)

	tests := []struct {
		scale     string
		low, high string
		reversed  bool
	}{
		{"RdYlGn", "#a50026", "#006837", false},
		{"RdYlGn", "#006837", "#a50026", true},
		{"Blues", "#f7fbff", "#08306b", false},
		{"Blues", "#08306b", "#f7fbff", true},
	}

	for _, tt := range tests {
		p, err := r.Lookup(tt.scale, tt.reversed)
		if err != nil {
			t.Fatalf("Lookup(%q, %v) error = %v", tt.scale, tt.reversed, err)
		}
		if got := colorscale.Hex(p.Map(0)); got != tt.low {
			t.Errorf("%s reversed=%v Map(0) = %s, want %s", tt.scale, tt.reversed, got, tt.low)
		}
		if got := colorscale.Hex(p.Map(1)); got != tt.high {
			t.Errorf("%s reversed=%v Map(1) = %s, want %s", tt.scale, tt.reversed, got, tt.high)
		}
	}
}

// near reports whether two #rrggbb strings differ by at most one step per
// channel. Blends that land exactly on a half step may round either way
// depending on how the platform fuses multiply-add.
func near(got, want string) bool {
	if len(got) != 7 || len(want) != 7 {
		return false
	}
	for i := 1; i < 7; i += 2 {
		g, err1 := strconv.ParseUint(got[i:i+2], 16, 8)
		w, err2 := strconv.ParseUint(want[i:i+2], 16, 8)
		if err1 != nil || err2 != nil {
			return false
		}
		if d := int(g) - int(w); d < -1 || d > 1 {
			return false
		}
	}
	return true
}

func TestLookup_Interior(t *testing.T) {
	t.Parallel()

	// Notes:
	// - 0.05 and 0.95 fall inside the first and last segment, where a
	//   step palette would return the end stop unchanged.
	// - 0.45 falls between two stops, 0.5 on the middle stop.
	r := builtin(t)

	tests := []struct {
		scale    string
		x        float64
		fwd, rev string
	}{
		{"RdYlGn", 0.05, "#be1827", "#0d8044"},
		{"RdYlGn", 0.45, "#fff0a5", "#ecf7a5"},
		{"RdYlGn", 0.5, "#ffffbf", "#ffffbf"},
		{"RdYlGn", 0.95, "#0d8044", "#be1827"},
		{"crest", 0.05, "#96c690", "#2c3b78"},
		{"crest", 0.45, "#338e8e", "#267e8d"},
		{"crest", 0.5, "#2a868e", "#2a868e"},
		{"crest", 0.95, "#2c3b78", "#96c690"},
		{"Blues", 0.05, "#edf5fc", "#083d7f"},
		{"Blues", 0.45, "#7fb9da", "#5ba3d0"},
		{"Blues", 0.5, "#6baed6", "#6baed6"},
		{"Blues", 0.95, "#083d7f", "#edf5fc"},
	}

	for _, tt := range tests {
		fwd, err := r.Lookup(tt.scale, false)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tt.scale, err)
		}
		rev, err := r.Lookup(tt.scale, true)
		if err != nil {
			t.Fatalf("Lookup(%q, reversed) error = %v", tt.scale, err)
		}
		if got := colorscale.Hex(fwd.Map(tt.x)); !near(got, tt.fwd) {
			t.Errorf("%s Map(%v) = %s, want %s", tt.scale, tt.x, got, tt.fwd)
		}
		if got := colorscale.Hex(rev.Map(tt.x)); !near(got, tt.rev) {
			t.Errorf("%s reversed Map(%v) = %s, want %s", tt.scale, tt.x, got, tt.rev)
		}
	}
}

func TestLookup_FirstSegmentIsNotFlat(t *testing.T) {
	t.Parallel()

	r := builtin(t)
	for _, name := range r.Names() {
		p, _ := r.Lookup(name, false)
		if colorscale.Hex(p.Map(0.01)) == colorscale.Hex(p.Map(0.04)) &&
			colorscale.Hex(p.Map(0.04)) == colorscale.Hex(p.Map(0)) {
			t.Errorf("%s: Map is constant across the first segment", name)
		}
	}
}

func TestLookup_ReversalSwapsEveryScale(t *testing.T) {
	t.Parallel()

	r := builtin(t)
	for _, name := range r.Names() {
		fwd, _ := r.Lookup(name, false)
		rev, _ := r.Lookup(name, true)
		if colorscale.Hex(fwd.Map(0)) != colorscale.Hex(rev.Map(1)) ||
			colorscale.Hex(fwd.Map(1)) != colorscale.Hex(rev.Map(0)) {
			t.Errorf("%s: reversed endpoints do not swap", name)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	_, err := builtin(t).Lookup("magma", false)
	if !errors.Is(err, colorscale.ErrUnknownScale) {
		t.Errorf("Lookup(magma) error = %v, want ErrUnknownScale", err)
	}
}

func TestRegister_Overrides(t *testing.T) {
	t.Parallel()

	r := colorscale.NewRegistry()
	mono := palette.RGBGradient{Colors: []color.RGBA{{0, 0, 0, 255}, {255, 255, 255, 255}}}
	r.Register("mono", mono)

	p, err := r.Lookup("mono", false)
	if err != nil {
		t.Fatal(err)
	}
	if got := colorscale.Hex(p.Map(1)); got != "#ffffff" {
		t.Errorf("Map(1) = %s, want #ffffff", got)
	}
	if names := r.Names(); len(names) != 1 || names[0] != "mono" {
		t.Errorf("Names() = %v, want [mono]", names)
	}
}

// ---------------------------------------------------------------------------
// TestGradient
// ---------------------------------------------------------------------------

func TestGradient_Map(t *testing.T) {
	t.Parallel()

	g := colorscale.NewGradient([]color.Color{
		color.RGBA{0, 0, 0, 255}, color.RGBA{200, 100, 0, 255}, color.RGBA{200, 200, 200, 255},
	})

	tests := []struct {
		name string
		x    float64
		want string
	}{
		{"below range", -0.5, "#000000"},
		{"NaN", math.NaN(), "#000000"},
		{"low end", 0, "#000000"},
		{"quarter", 0.25, "#643200"},
		{"middle stop", 0.5, "#c86400"},
		{"three quarters", 0.75, "#c89664"},
		{"high end", 1, "#c8c8c8"},
		{"above range", 3, "#c8c8c8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := colorscale.Hex(g.Map(tt.x)); !near(got, tt.want) {
				t.Errorf("Map(%v) = %s, want %s", tt.x, got, tt.want)
			}
		})
	}
}

func TestNewGradient_TooFewStops(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewGradient with one stop did not panic")
		}
	}()
	colorscale.NewGradient([]color.Color{color.Black})
}

// ---------------------------------------------------------------------------
// TestReverse
// ---------------------------------------------------------------------------

func TestReverse_Twice(t *testing.T) {
	t.Parallel()

	p := colorscale.NewGradient([]color.Color{color.RGBA{255, 0, 0, 255}, color.RGBA{0, 0, 255, 255}})
	twice := colorscale.Reverse(colorscale.Reverse(p))
	for _, x := range []float64{0, 0.25, 0.5, 1} {
		if colorscale.Hex(twice.Map(x)) != colorscale.Hex(p.Map(x)) {
			t.Errorf("Reverse(Reverse(p)).Map(%v) differs from p", x)
		}
	}
}

func TestReverse_MirrorsInterior(t *testing.T) {
	t.Parallel()

	p := colorscale.NewGradient([]color.Color{
		color.RGBA{255, 0, 0, 255}, color.RGBA{0, 255, 0, 255}, color.RGBA{0, 0, 255, 255},
	})
	rev := colorscale.Reverse(p)
	for _, x := range []float64{0.1, 0.3, 0.5} {
		if colorscale.Hex(rev.Map(x)) != colorscale.Hex(p.Map(1-x)) {
			t.Errorf("Reverse(p).Map(%v) != p.Map(%v)", x, 1-x)
		}
	}
}
