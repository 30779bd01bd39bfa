package svgmap

import (
	"errors"
	"fmt"

	"github.com/alnah/go-svgmap/internal/colorscale"
	"github.com/alnah/go-svgmap/internal/markup"
	"github.com/alnah/go-svgmap/internal/table"
)

// Sentinel errors for library operations.
var (
	// Template errors.
	ErrParse          = markup.ErrParse
	ErrLegendNotFound = errors.New("legend not found")
	ErrTickNotFound   = errors.New("legend tick not found")
	ErrTitleNotFound  = errors.New("legend title not found")
	ErrRegionNotFound = errors.New("region not found")
	ErrMalformedStyle = errors.New("region style has no fill property")

	// Data errors.
	ErrEmptyTable      = table.ErrEmptyTable
	ErrDegenerateRange = table.ErrDegenerateRange

	// Scale errors.
	ErrUnknownScale     = colorscale.ErrUnknownScale
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Output errors.
	ErrWriteOutput = errors.New("writing output failed")
)

// RegionNotFoundError reports a table column without a matching region.
// Key is the identifier after transliteration.
type RegionNotFoundError struct {
	Column string
	Key    string
}

func (e *RegionNotFoundError) Error() string {
	if e.Column != "" && e.Column != e.Key {
		return fmt.Sprintf("%v: %q (column %q)", ErrRegionNotFound, e.Key, e.Column)
	}
	return fmt.Sprintf("%v: %q", ErrRegionNotFound, e.Key)
}

// Unwrap lets errors.Is match ErrRegionNotFound.
func (e *RegionNotFoundError) Unwrap() error {
	return ErrRegionNotFound
}
