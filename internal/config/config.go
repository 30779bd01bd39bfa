package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-svgmap/internal/fileutil"
	"github.com/alnah/go-svgmap/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppName is the directory name used under the user config directory.
const AppName = "go-svgmap"

// Defaults carried over from the original map tool.
const (
	DefaultTemplate   = "EMN.svg"
	DefaultData       = "ExampleData.csv"
	DefaultTitle      = "Please add a title to the colorbar!"
	DefaultScale      = "RdYlGn"
	DefaultTickPrefix = "tick_"
	DefaultTitleID    = "colorbar_title"
	DefaultTicks      = 10
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxTitleLength    = 200
	MaxIDLength       = 100 // element ids and id prefixes
	MaxScaleLength    = 64
	MaxSuffixLength   = 100
	MaxEncodingLength = 20
	MaxTicks          = 100
	MaxIndent         = 8
)

// Config holds all configuration for map generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Legend LegendConfig `yaml:"legend"`
	Scale  ScaleConfig  `yaml:"scale"`
	Table  TableConfig  `yaml:"table"`
	Assets AssetsConfig `yaml:"assets"`
}

// InputConfig names the template document and the data table.
type InputConfig struct {
	Template string `yaml:"template"`
	Data     string `yaml:"data"`
}

// OutputConfig defines where and how row documents are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // Empty = beside the template
	Suffix string `yaml:"suffix"` // Empty = "_" + data file base name
	Indent int    `yaml:"indent"` // 0 = keep template whitespace
}

// LegendConfig defines the legend furniture inside the template.
type LegendConfig struct {
	Title      string `yaml:"title"`
	TickPrefix string `yaml:"tickPrefix"`
	TitleID    string `yaml:"titleID"`
	Ticks      int    `yaml:"ticks"` // number of intervals; labels = ticks+1
}

// ScaleConfig selects the color scale.
type ScaleConfig struct {
	Name     string `yaml:"name"`
	Reversed bool   `yaml:"reversed"`
}

// TableConfig controls CSV decoding.
type TableConfig struct {
	Delimiter   string `yaml:"delimiter"`   // single character, default ","
	Encoding    string `yaml:"encoding"`    // "utf-8", "latin1", "windows-1252"
	IndexColumn string `yaml:"indexColumn"` // Empty = rows labeled 0..N-1
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded scales only
}

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.template", c.Input.Template, MaxPathLength},
		{"input.data", c.Input.Data, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"output.suffix", c.Output.Suffix, MaxSuffixLength},
		{"legend.title", c.Legend.Title, MaxTitleLength},
		{"legend.tickPrefix", c.Legend.TickPrefix, MaxIDLength},
		{"legend.titleID", c.Legend.TitleID, MaxIDLength},
		{"scale.name", c.Scale.Name, MaxScaleLength},
		{"table.encoding", c.Table.Encoding, MaxEncodingLength},
		{"table.indexColumn", c.Table.IndexColumn, MaxIDLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Output.Indent < 0 || c.Output.Indent > MaxIndent {
		return fmt.Errorf("%w: output.indent must be between 0 and %d, got %d", ErrInvalidValue, MaxIndent, c.Output.Indent)
	}
	if c.Legend.Ticks < 0 || c.Legend.Ticks > MaxTicks {
		return fmt.Errorf("%w: legend.ticks must be between 1 and %d (0 = default), got %d", ErrInvalidValue, MaxTicks, c.Legend.Ticks)
	}
	if c.Table.Delimiter != "" && utf8.RuneCountInString(c.Table.Delimiter) != 1 {
		return fmt.Errorf("%w: table.delimiter must be a single character, got %q", ErrInvalidValue, c.Table.Delimiter)
	}
	if c.Table.Delimiter == "\"" || c.Table.Delimiter == "\n" || c.Table.Delimiter == "\r" {
		return fmt.Errorf("%w: table.delimiter cannot be %q", ErrInvalidValue, c.Table.Delimiter)
	}
	if c.Table.Encoding != "" {
		switch strings.ToLower(c.Table.Encoding) {
		case "utf-8", "utf8", "latin1", "latin-1", "iso-8859-1", "windows-1252", "cp1252":
			// valid
		default:
			return fmt.Errorf("%w: table.encoding %q (must be utf-8, latin1, or windows-1252)", ErrInvalidValue, c.Table.Encoding)
		}
	}

	return nil
}

// Delimiter returns the table delimiter as a rune, or 0 for the default.
func (c *Config) Delimiter() rune {
	if c.Table.Delimiter == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Table.Delimiter)
	return r
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Template: DefaultTemplate, Data: DefaultData},
		Output: OutputConfig{},
		Legend: LegendConfig{
			Title:      DefaultTitle,
			TickPrefix: DefaultTickPrefix,
			TitleID:    DefaultTitleID,
			Ticks:      DefaultTicks,
		},
		Scale: ScaleConfig{Name: DefaultScale},
		Table: TableConfig{Encoding: "utf-8"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files LoadConfig tries for a config name.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-svgmap/
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
