package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	charmlog "github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	svgmap "github.com/alnah/go-svgmap"
	"github.com/alnah/go-svgmap/internal/config"
	"github.com/alnah/go-svgmap/internal/dateutil"
	"github.com/alnah/go-svgmap/internal/hints"
	"github.com/alnah/go-svgmap/internal/table"
)

// runRun executes the run command: one map per data row.
func runRun(ctx context.Context, args []string, env *Environment) error {
	f, fs, err := parseRunFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printRunUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(fs, f, env)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, f.common)
	r, err := svgmap.New(rendererOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	logger.Debug("starting run",
		"template", cfg.Input.Template,
		"data", cfg.Input.Data,
		"scale", cfg.Scale.Name,
		"reversed", cfg.Scale.Reversed,
	)

	res, err := r.Run(ctx, buildJob(cfg))
	if err != nil {
		return withHint(err, cfg, r)
	}

	logger.Info("done", "maps", len(res.Files), "min", res.Min, "max", res.Max)
	return nil
}

// resolveConfig layers defaults, config file, environment and flags.
func resolveConfig(fs *flag.FlagSet, f *runFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	name := f.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(fs, f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	title, err := dateutil.Expand(cfg.Legend.Title, time.Now())
	if err != nil {
		return nil, fmt.Errorf("legend title: %w", err)
	}
	cfg.Legend.Title = title

	return cfg, nil
}

// rendererOptions maps config onto renderer options.
func rendererOptions(cfg *config.Config, logger *charmlog.Logger) []svgmap.Option {
	opts := []svgmap.Option{
		svgmap.WithLogger(logger),
		svgmap.WithTickPrefix(cfg.Legend.TickPrefix),
		svgmap.WithTitleID(cfg.Legend.TitleID),
	}
	if cfg.Legend.Ticks > 0 {
		opts = append(opts, svgmap.WithTicks(cfg.Legend.Ticks))
	}
	if cfg.Output.Indent > 0 {
		opts = append(opts, svgmap.WithIndent(cfg.Output.Indent))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, svgmap.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts
}

// buildJob maps config onto a run description.
func buildJob(cfg *config.Config) svgmap.Job {
	return svgmap.Job{
		Template:  cfg.Input.Template,
		Data:      cfg.Input.Data,
		Title:     cfg.Legend.Title,
		Scale:     cfg.Scale.Name,
		Reversed:  cfg.Scale.Reversed,
		OutputDir: cfg.Output.Dir,
		Suffix:    cfg.Output.Suffix,
		Table: table.Options{
			Comma:       cfg.Delimiter(),
			Encoding:    cfg.Table.Encoding,
			IndexColumn: cfg.Table.IndexColumn,
		},
	}
}

// withHint appends an actionable hint to run errors.
func withHint(err error, cfg *config.Config, r *svgmap.Renderer) error {
	var hint string
	var rnf *svgmap.RegionNotFoundError

	switch {
	case errors.Is(err, svgmap.ErrUnknownScale):
		hint = hints.ForUnknownScale(r.Scales())
	case errors.Is(err, svgmap.ErrLegendNotFound):
		hint = hints.ForLegendNotFound(cfg.Scale.Name, cfg.Scale.Reversed)
	case errors.Is(err, svgmap.ErrTickNotFound), errors.Is(err, svgmap.ErrTitleNotFound):
		hint = hints.ForLegendFurniture()
	case errors.As(err, &rnf):
		hint = hints.ForRegionNotFound(rnf.Key)
	case errors.Is(err, svgmap.ErrMalformedStyle):
		hint = hints.ForMalformedStyle()
	case errors.Is(err, svgmap.ErrDegenerateRange):
		hint = hints.ForDegenerateRange()
	case errors.Is(err, svgmap.ErrWriteOutput):
		hint = hints.ForOutputDirectory()
	default:
		hint = hints.ForTemplate(cfg.Input.Template)
	}

	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
