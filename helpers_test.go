package svgmap

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alnah/go-svgmap/internal/markup"
)

// grayPalette maps x to an exact gray level so expected colors are easy to
// compute: round(x*255) on every channel.
type grayPalette struct{}

func (grayPalette) Map(x float64) color.Color {
	return color.Gray{Y: uint8(x*255 + 0.5)}
}

func grayHex(y uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", y, y, y)
}

// hexNear reports whether two #rrggbb strings differ by at most one step
// per channel.
func hexNear(got, want string) bool {
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

// templateSVG builds a small template: regions A (by id), B (by label),
// Muenchen, Bad_Toelz (no fill), the RdYlGn legends, a title, and ticks
// tick_0..tick_{ticks}.
func templateSVG(ticks int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape">
  <path id="A" style="fill:#000000;"/>
  <path id="path7" inkscape:label="B" style="stroke:#111111;fill:#000000;stroke-width:1"/>
  <path id="Muenchen" style="fill:#000000;"/>
  <path id="Bad_Toelz" style="stroke:none"/>
  <image id="RdYlGn" style="display:none;opacity:1"/>
  <image id="RdYlGn_reversed" style="display:none;opacity:1"/>
  <text id="colorbar_title"><tspan>Title placeholder</tspan></text>
`)
	for i := 0; i <= ticks; i++ {
		fmt.Fprintf(&b, "  <text id=\"tick_%d\"></text>\n", i)
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func loadTemplate(t *testing.T, text string) *markup.Document {
	t.Helper()
	doc, err := markup.Load(text)
	if err != nil {
		t.Fatalf("markup.Load() error = %v", err)
	}
	return doc
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// fillOf returns the fill of the region found by id or label.
func fillOf(t *testing.T, doc *markup.Document, key string) string {
	t.Helper()
	el := doc.Find(key)
	if el == nil {
		t.Fatalf("region %q not found", key)
	}
	v, ok := el.StyleProperty("fill")
	if !ok {
		t.Fatalf("region %q has no fill", key)
	}
	return v
}

func textOf(t *testing.T, doc *markup.Document, id string) string {
	t.Helper()
	el := doc.FindByID(id)
	if el == nil {
		t.Fatalf("element %q not found", id)
	}
	return el.Text()
}

type markupDoc = markup.Document

var markupDefaults = markup.SerializeOptions{}
