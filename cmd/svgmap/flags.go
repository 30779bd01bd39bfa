package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-svgmap/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	logJSON bool
}

// inputFlags names the template and the data table.
type inputFlags struct {
	svgfile  string
	datafile string
}

// legendFlags holds legend text and element id flags.
type legendFlags struct {
	title      string
	tickPrefix string
	titleID    string
	ticks      int
}

// scaleFlags selects the color scale.
type scaleFlags struct {
	cmap    string
	reverse bool
}

// tableFlags controls CSV decoding.
type tableFlags struct {
	delimiter   string
	encoding    string
	indexColumn string
}

// outputFlags controls where and how maps are written.
type outputFlags struct {
	dir    string
	suffix string
	indent int
}

// assetFlags holds asset-related flags.
type assetFlags struct {
	assetPath string
}

// runFlags holds all flags for the run command.
type runFlags struct {
	common commonFlags
	input  inputFlags
	legend legendFlags
	scale  scaleFlags
	table  tableFlags
	output outputFlags
	assets assetFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
	fs.BoolVar(&f.logJSON, "log-json", false, "log as JSON lines")
}

// addInputFlags adds template and data flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.svgfile, "svgfile", "s", config.DefaultTemplate, "template SVG map")
	fs.StringVarP(&f.datafile, "datafile", "d", config.DefaultData, "CSV data table")
}

// addLegendFlags adds legend flags to a FlagSet.
func addLegendFlags(fs *flag.FlagSet, f *legendFlags) {
	fs.StringVarP(&f.title, "axistitle", "a", config.DefaultTitle, "legend title")
	fs.StringVar(&f.tickPrefix, "tick-prefix", config.DefaultTickPrefix, "id prefix of legend tick labels")
	fs.StringVar(&f.titleID, "title-id", config.DefaultTitleID, "id of the legend title element")
	fs.IntVar(&f.ticks, "ticks", config.DefaultTicks, "number of legend intervals")
}

// addScaleFlags adds color scale flags to a FlagSet.
func addScaleFlags(fs *flag.FlagSet, f *scaleFlags) {
	fs.StringVar(&f.cmap, "cmap", config.DefaultScale, "color scale name")
	fs.BoolVarP(&f.reverse, "reverse", "r", false, "reverse the color scale")
}

// addTableFlags adds CSV flags to a FlagSet.
func addTableFlags(fs *flag.FlagSet, f *tableFlags) {
	fs.StringVar(&f.delimiter, "delimiter", ",", "CSV field delimiter")
	fs.StringVar(&f.encoding, "encoding", "utf-8", "CSV encoding: utf-8, latin1, windows-1252")
	fs.StringVar(&f.indexColumn, "index-column", "", "column holding row labels")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory (default: beside the template)")
	fs.StringVar(&f.suffix, "suffix", "", "output name suffix (default: _<datafile name>)")
	fs.IntVar(&f.indent, "indent", 0, "pretty-print with n spaces (0 = keep template layout)")
}

// addAssetFlags adds asset flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom scales/*.yaml")
}

// buildRunFlagSet registers every run flag on a new FlagSet bound to f.
// Completion reads the same FlagSet.
func buildRunFlagSet(f *runFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	addInputFlags(fs, &f.input)
	addLegendFlags(fs, &f.legend)
	addScaleFlags(fs, &f.scale)
	addTableFlags(fs, &f.table)
	addOutputFlags(fs, &f.output)
	addAssetFlags(fs, &f.assets)
	addCommonFlags(fs, &f.common)
	return fs
}

// parseRunFlags parses args (without the command name).
// Returns flag.ErrHelp unwrapped for -h/--help.
func parseRunFlags(args []string) (*runFlags, *flag.FlagSet, error) {
	f := &runFlags{}
	fs := buildRunFlagSet(f)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return f, fs, nil
}

// mergeFlags copies explicitly set flags into cfg.
func mergeFlags(fs *flag.FlagSet, f *runFlags, cfg *config.Config) {
	set := fs.Changed

	if set("svgfile") {
		cfg.Input.Template = f.input.svgfile
	}
	if set("datafile") {
		cfg.Input.Data = f.input.datafile
	}

	if set("axistitle") {
		cfg.Legend.Title = f.legend.title
	}
	if set("tick-prefix") {
		cfg.Legend.TickPrefix = f.legend.tickPrefix
	}
	if set("title-id") {
		cfg.Legend.TitleID = f.legend.titleID
	}
	if set("ticks") {
		cfg.Legend.Ticks = f.legend.ticks
	}

	if set("cmap") {
		cfg.Scale.Name = f.scale.cmap
	}
	if set("reverse") {
		cfg.Scale.Reversed = f.scale.reverse
	}

	if set("delimiter") {
		cfg.Table.Delimiter = f.table.delimiter
	}
	if set("encoding") {
		cfg.Table.Encoding = f.table.encoding
	}
	if set("index-column") {
		cfg.Table.IndexColumn = f.table.indexColumn
	}

	if set("output") {
		cfg.Output.Dir = f.output.dir
	}
	if set("suffix") {
		cfg.Output.Suffix = f.output.suffix
	}
	if set("indent") {
		cfg.Output.Indent = f.output.indent
	}

	if set("asset-path") {
		cfg.Assets.BasePath = f.assets.assetPath
	}
}
