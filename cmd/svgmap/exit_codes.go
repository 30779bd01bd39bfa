package main

import (
	"errors"
	"os"

	svgmap "github.com/alnah/go-svgmap"
	"github.com/alnah/go-svgmap/internal/config"
	"github.com/alnah/go-svgmap/internal/dateutil"
	"github.com/alnah/go-svgmap/internal/table"
)

// Exit codes for svgmap CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All maps written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or data content
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, svgmap.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/content errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, svgmap.ErrParse) ||
		errors.Is(err, svgmap.ErrLegendNotFound) ||
		errors.Is(err, svgmap.ErrTickNotFound) ||
		errors.Is(err, svgmap.ErrTitleNotFound) ||
		errors.Is(err, svgmap.ErrRegionNotFound) ||
		errors.Is(err, svgmap.ErrMalformedStyle) ||
		errors.Is(err, svgmap.ErrUnknownScale) ||
		errors.Is(err, svgmap.ErrInvalidAssetPath) ||
		errors.Is(err, svgmap.ErrEmptyTable) ||
		errors.Is(err, svgmap.ErrDegenerateRange) ||
		errors.Is(err, table.ErrInvalidCell) ||
		errors.Is(err, table.ErrRaggedRow) ||
		errors.Is(err, table.ErrDuplicateColumn) ||
		errors.Is(err, table.ErrIndexColumn) ||
		errors.Is(err, table.ErrDuplicateLabel) ||
		errors.Is(err, table.ErrUnknownEncoding) {
		return ExitUsage
	}

	return ExitGeneral
}
