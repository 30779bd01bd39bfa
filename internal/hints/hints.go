// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-svgmap/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-svgmap/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-svgmap) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-svgmap") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check the output directory exists and is writable")
}

// ForUnknownScale lists the registered scale names.
func ForUnknownScale(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForLegendNotFound explains where the legend id comes from.
func ForLegendNotFound(scale string, reversed bool) string {
	id := scale
	if reversed {
		id += "_reversed"
	}
	return format("the template needs an element with id=\"" + id + "\"; run 'svgmap check <template>' to list legends")
}

// ForLegendFurniture covers missing tick and title elements.
func ForLegendFurniture() string {
	return format("set legend.tickPrefix or legend.titleID to match the template ids")
}

// ForRegionNotFound explains how column headers are matched to regions.
func ForRegionNotFound(key string) string {
	return format("no element has id or inkscape:label \"" + key + "\"; column headers have ä ö ü ß replaced and spaces turned into _")
}

// ForMalformedStyle returns a hint for region styles without a fill.
func ForMalformedStyle() string {
	return format("region style attributes need a fill:#rrggbb declaration")
}

// ForTemplate returns a hint when the template file cannot be opened.
func ForTemplate(path string) string {
	if path == "" || fileutil.FileExists(path) {
		return ""
	}
	return format("template " + path + " does not exist; pass --svgfile")
}

// ForDegenerateRange returns a hint for tables whose values are all equal.
func ForDegenerateRange() string {
	return format("every cell holds the same value, so no legend range can be drawn")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
