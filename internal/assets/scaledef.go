package assets

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/alnah/go-svgmap/internal/yamlutil"
)

// ScaleDef is a decoded scale file.
type ScaleDef struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Stops       []string `yaml:"stops"`
}

// ParseScaleDef decodes a scale file. The file name wins over the name
// field so that lookups by file name always round-trip.
func ParseScaleDef(name string, data []byte) (*ScaleDef, error) {
	var def ScaleDef
	if err := yamlutil.UnmarshalStrict(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidScale, name, err)
	}
	def.Name = name
	if len(def.Stops) < 2 {
		return nil, fmt.Errorf("%w: %q needs at least 2 stops, got %d", ErrInvalidScale, name, len(def.Stops))
	}
	if _, err := def.Colors(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Colors converts the hex stops to opaque RGBA colors.
func (d *ScaleDef) Colors() ([]color.RGBA, error) {
	colors := make([]color.RGBA, len(d.Stops))
	for i, s := range d.Stops {
		c, err := parseHex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q stop %d: %v", ErrInvalidScale, d.Name, i, err)
		}
		colors[i] = c
	}
	return colors, nil
}

// parseHex accepts #rrggbb (the leading # is optional).
func parseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("want 6 hex digits, got %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
