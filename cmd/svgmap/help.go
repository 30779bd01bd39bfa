package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgmap <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run          Color a template map, one file per data row")
	fmt.Fprintln(w, "  check        Report the legends and regions a template provides")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags given without a command run 'svgmap run'.")
	fmt.Fprintln(w, "Run 'svgmap help <command>' for details on a specific command.")
}

// printRunUsage prints usage for the run command.
func printRunUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgmap run [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Color the regions of a template map from a CSV table and write")
	fmt.Fprintln(w, "{template}{suffix}.{row}.svg for every row.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -s, --svgfile <path>       Template SVG map (default: EMN.svg)")
	fmt.Fprintln(w, "  -d, --datafile <path>      CSV data table (default: ExampleData.csv)")
	fmt.Fprintln(w, "      --delimiter <c>        CSV field delimiter (default: ,)")
	fmt.Fprintln(w, "      --encoding <s>         CSV encoding: utf-8, latin1, windows-1252")
	fmt.Fprintln(w, "      --index-column <s>     Column holding row labels (default: 0..N-1)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Legend:")
	fmt.Fprintln(w, "  -a, --axistitle <s>        Legend title, {date} or {date:FORMAT} expand")
	fmt.Fprintln(w, "      --cmap <name>          Color scale (default: RdYlGn)")
	fmt.Fprintln(w, "  -r, --reverse              Reverse the color scale")
	fmt.Fprintln(w, "      --tick-prefix <s>      Id prefix of tick labels (default: tick_)")
	fmt.Fprintln(w, "      --title-id <s>         Id of the title element (default: colorbar_title)")
	fmt.Fprintln(w, "      --ticks <n>            Legend intervals (default: 10)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <dir>         Output directory (default: beside the template)")
	fmt.Fprintln(w, "      --suffix <s>           Name suffix (default: _<datafile name>)")
	fmt.Fprintln(w, "      --indent <n>           Pretty-print with n spaces")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-path <dir>     Directory with custom scales/*.yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show debug output")
	fmt.Fprintln(w, "      --log-json             Log as JSON lines")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SVGMAP_CONFIG, SVGMAP_SVGFILE, SVGMAP_DATAFILE, SVGMAP_AXISTITLE,")
	fmt.Fprintln(w, "  SVGMAP_CMAP, SVGMAP_REVERSE, SVGMAP_OUTPUT_DIR, SVGMAP_ASSET_PATH,")
	fmt.Fprintln(w, "  SVGMAP_ENCODING")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svgmap check [flags] [template.svg]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report which scale legends, tick labels, title and regions a template has.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --tick-prefix <s>      Id prefix of tick labels (default: tick_)")
	fmt.Fprintln(w, "      --title-id <s>         Id of the title element (default: colorbar_title)")
	fmt.Fprintln(w, "      --ticks <n>            Legend intervals (default: 10)")
	fmt.Fprintln(w, "      --asset-path <dir>     Directory with custom scales/*.yaml")
	fmt.Fprintln(w, "      --json                 Print the report as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status is 0 when the template can be rendered, 1 otherwise.")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "run":
		printRunUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: svgmap version")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		return ExitUsage
	}
	return ExitSuccess
}
