package svgmap

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-svgmap/internal/fileutil"
)

// DefaultSuffix derives the output suffix from the data file:
// "_" plus its base name without extension.
func DefaultSuffix(dataPath string) string {
	return "_" + filepath.Base(fileutil.TrimExt(dataPath))
}

// OutputPath names the file for one row:
// {template without extension}{suffix}.{label}.svg, placed in outDir
// when it is set and beside the template otherwise.
func OutputPath(template, suffix, label, outDir string) string {
	base := fileutil.TrimExt(template)
	if outDir != "" {
		base = filepath.Join(outDir, filepath.Base(base))
	}
	return base + suffix + "." + safeLabel(label) + ".svg"
}

// safeLabel keeps row labels from introducing path separators.
func safeLabel(label string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(label)
}
