package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-svgmap/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SVGMAP_CONFIG: config file name or path
	Template   string // SVGMAP_SVGFILE: template document
	Data       string // SVGMAP_DATAFILE: data table
	Title      string // SVGMAP_AXISTITLE: legend title
	Scale      string // SVGMAP_CMAP: color scale name
	Reverse    *bool  // SVGMAP_REVERSE: reversed scale
	OutputDir  string // SVGMAP_OUTPUT_DIR: output directory
	AssetPath  string // SVGMAP_ASSET_PATH: custom scale directory
	Encoding   string // SVGMAP_ENCODING: data table encoding
}

// knownEnvVars lists valid SVGMAP_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SVGMAP_CONFIG":     true,
	"SVGMAP_SVGFILE":    true,
	"SVGMAP_DATAFILE":   true,
	"SVGMAP_AXISTITLE":  true,
	"SVGMAP_CMAP":       true,
	"SVGMAP_REVERSE":    true,
	"SVGMAP_OUTPUT_DIR": true,
	"SVGMAP_ASSET_PATH": true,
	"SVGMAP_ENCODING":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SVGMAP_CONFIG"),
		Template:   os.Getenv("SVGMAP_SVGFILE"),
		Data:       os.Getenv("SVGMAP_DATAFILE"),
		Title:      os.Getenv("SVGMAP_AXISTITLE"),
		Scale:      os.Getenv("SVGMAP_CMAP"),
		OutputDir:  os.Getenv("SVGMAP_OUTPUT_DIR"),
		AssetPath:  os.Getenv("SVGMAP_ASSET_PATH"),
		Encoding:   os.Getenv("SVGMAP_ENCODING"),
	}

	// Unparsable booleans are ignored
	if v := os.Getenv("SVGMAP_REVERSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Reverse = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for every unrecognized SVGMAP_*
// variable. Helps catch typos like SVGMAP_COLORMAP instead of SVGMAP_CMAP.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "SVGMAP_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with set environment variables.
// Flags are merged afterwards, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Template != "" {
		cfg.Input.Template = env.Template
	}
	if env.Data != "" {
		cfg.Input.Data = env.Data
	}
	if env.Title != "" {
		cfg.Legend.Title = env.Title
	}
	if env.Scale != "" {
		cfg.Scale.Name = env.Scale
	}
	if env.Reverse != nil {
		cfg.Scale.Reversed = *env.Reverse
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Encoding != "" {
		cfg.Table.Encoding = env.Encoding
	}
}
