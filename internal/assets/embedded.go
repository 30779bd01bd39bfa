package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed scales/*.yaml
var scales embed.FS

// EmbeddedLoader loads scale definitions from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadScale loads a built-in scale by name.
func (e *EmbeddedLoader) LoadScale(name string) (*ScaleDef, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := scales.ReadFile("scales/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrScaleNotFound, name)
	}

	return ParseScaleDef(name, content)
}

// ListScales returns the names of all built-in scales.
func (e *EmbeddedLoader) ListScales() ([]string, error) {
	entries, err := fs.ReadDir(scales, "scales")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return scaleNames(entries), nil
}

// scaleNames extracts sorted scale names from .yaml directory entries.
func scaleNames(entries []fs.DirEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
