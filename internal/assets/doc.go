// Package assets provides the color scale definitions used to paint maps.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in scales)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the scales whose legends ship with the reference
// map template (RdYlGn, crest, coolwarm, Spectral, icefire, vlag, Blues,
// YlOrBr, seagreen, flare).
//
// FilesystemLoader allows users to provide extra or replacement scales from
// a directory, with path traversal protection and symlink resolution.
//
// # Directory Structure
//
//	{basePath}/
//	└── scales/
//	    └── {name}.yaml
//
// A scale file lists hex color stops spaced evenly over [0, 1]:
//
//	name: RdYlGn
//	description: ColorBrewer diverging red-yellow-green
//	stops: ["#a50026", "#ffffbf", "#006837"]
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
