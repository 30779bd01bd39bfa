package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	svgmap "github.com/alnah/go-svgmap"
	"github.com/alnah/go-svgmap/internal/config"
)

// checkFlags holds flags for the check command.
type checkFlags struct {
	legend legendFlags
	assets assetFlags
	json   bool
}

// checkResult is the check command's report plus a verdict.
type checkResult struct {
	Status string `json:"status"` // "ready" or "errors"
	*svgmap.Report
	Errors []string `json:"errors,omitempty"`
}

// buildCheckFlagSet registers the check flags on a new FlagSet bound to f.
func buildCheckFlagSet(f *checkFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.legend.tickPrefix, "tick-prefix", config.DefaultTickPrefix, "id prefix of legend tick labels")
	fs.StringVar(&f.legend.titleID, "title-id", config.DefaultTitleID, "id of the legend title element")
	fs.IntVar(&f.legend.ticks, "ticks", config.DefaultTicks, "number of legend intervals")
	addAssetFlags(fs, &f.assets)
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	return fs
}

// runCheckCmd executes the check command and returns an exit code.
// Exit codes: 0 = template usable, 1 = problems found, 2/3 = usage or I/O.
func runCheckCmd(args []string, env *Environment) int {
	f := &checkFlags{}
	fs := buildCheckFlagSet(f)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCheckUsage(env.Stdout)
			return ExitSuccess
		}
		return reportError(env, fmt.Errorf("%w: %v", ErrUsage, err))
	}
	if fs.NArg() > 1 {
		return reportError(env, fmt.Errorf("%w: check takes one template, got %d", ErrUsage, fs.NArg()))
	}

	template := config.DefaultTemplate
	if fs.NArg() == 1 {
		template = fs.Arg(0)
	}

	opts := []svgmap.Option{
		svgmap.WithTickPrefix(f.legend.tickPrefix),
		svgmap.WithTitleID(f.legend.titleID),
	}
	if f.legend.ticks <= 0 {
		return reportError(env, fmt.Errorf("%w: --ticks must be positive", ErrUsage))
	}
	opts = append(opts, svgmap.WithTicks(f.legend.ticks))
	if f.assets.assetPath != "" {
		opts = append(opts, svgmap.WithAssetPath(f.assets.assetPath))
	}

	r, err := svgmap.New(opts...)
	if err != nil {
		return reportError(env, err)
	}
	rep, err := r.Check(template)
	if err != nil {
		return reportError(env, err)
	}

	result := evaluateReport(rep)
	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return reportError(env, err)
		}
	} else {
		printCheckResult(env.Stdout, result)
	}

	if result.Status != "ready" {
		return ExitGeneral
	}
	return ExitSuccess
}

// evaluateReport turns a report into a verdict with error messages.
func evaluateReport(rep *svgmap.Report) *checkResult {
	res := &checkResult{Report: rep}
	if len(foundLegends(rep)) == 0 {
		res.Errors = append(res.Errors, "no legend element matches a registered scale")
	}
	if len(rep.MissingTicks) > 0 {
		res.Errors = append(res.Errors, "missing tick labels: "+strings.Join(rep.MissingTicks, ", "))
	}
	if !rep.TitleFound {
		res.Errors = append(res.Errors, "legend title element not found")
	}
	if len(rep.Regions) == 0 {
		res.Errors = append(res.Errors, "no element carries a fill style")
	}

	res.Status = "ready"
	if len(res.Errors) > 0 {
		res.Status = "errors"
	}
	return res
}

// foundLegends lists the legend variants present in the template.
func foundLegends(rep *svgmap.Report) []string {
	var found []string
	for _, l := range rep.Legends {
		if l.Normal {
			found = append(found, svgmap.LegendID(l.Scale, false))
		}
		if l.Reversed {
			found = append(found, svgmap.LegendID(l.Scale, true))
		}
	}
	return found
}

func printCheckResult(w io.Writer, r *checkResult) {
	fmt.Fprintf(w, "svgmap check %s\n", r.Template)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Legends")
	if legends := foundLegends(r.Report); len(legends) > 0 {
		for _, id := range legends {
			fmt.Fprintf(w, "  [OK] %s\n", id)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] none found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Legend furniture")
	if len(r.MissingTicks) == 0 {
		fmt.Fprintln(w, "  [OK] Tick labels: complete")
	} else {
		fmt.Fprintf(w, "  [ERROR] Tick labels missing: %s\n", strings.Join(r.MissingTicks, ", "))
	}
	if r.TitleFound {
		fmt.Fprintln(w, "  [OK] Title: found")
	} else {
		fmt.Fprintln(w, "  [ERROR] Title: not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Regions")
	fmt.Fprintf(w, "  [OK] %d elements with a fill\n", len(r.Regions))
	fmt.Fprintln(w)

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", e)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to render")
	default:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
