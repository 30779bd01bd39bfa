package svgmap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gg/palette"
	"github.com/charmbracelet/log"

	"github.com/alnah/go-svgmap/internal/assets"
	"github.com/alnah/go-svgmap/internal/colorscale"
	"github.com/alnah/go-svgmap/internal/fileutil"
	"github.com/alnah/go-svgmap/internal/markup"
	"github.com/alnah/go-svgmap/internal/table"
)

// outputPerm is the mode of written row documents.
const outputPerm = 0o644

// Renderer colors template maps from data tables.
// A Renderer holds no per-run state and may be reused.
type Renderer struct {
	cfg      rendererConfig
	registry *colorscale.Registry
	logger   *log.Logger
}

// rendererConfig holds options collected before the registry is built.
type rendererConfig struct {
	assetPath string
	indent    int
	legend    Legend
	extra     map[string]palette.Continuous
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for per-row progress.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithAssetPath adds scale definitions from {path}/scales/*.yaml on top of
// the embedded ones. A custom scale replaces an embedded one of the same
// name.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithScale registers a palette under name, replacing any scale loaded
// from assets.
func WithScale(name string, p palette.Continuous) Option {
	if p == nil {
		panic("svgmap: WithScale palette must not be nil")
	}
	return func(r *Renderer) {
		if r.cfg.extra == nil {
			r.cfg.extra = make(map[string]palette.Continuous)
		}
		r.cfg.extra[name] = p
	}
}

// WithIndent pretty-prints output documents with n spaces per level.
// Zero keeps the template's own whitespace.
func WithIndent(n int) Option {
	if n < 0 {
		panic("svgmap: WithIndent must not be negative")
	}
	return func(r *Renderer) {
		r.cfg.indent = n
	}
}

// WithTickPrefix sets the id prefix of legend tick labels.
func WithTickPrefix(prefix string) Option {
	return func(r *Renderer) {
		r.cfg.legend.TickPrefix = prefix
	}
}

// WithTitleID sets the id of the legend title element.
func WithTitleID(id string) Option {
	return func(r *Renderer) {
		r.cfg.legend.TitleID = id
	}
}

// WithTicks sets the number of legend intervals.
func WithTicks(n int) Option {
	if n <= 0 {
		panic("svgmap: WithTicks must be positive")
	}
	return func(r *Renderer) {
		r.cfg.legend.Ticks = n
	}
}

// New creates a Renderer with the embedded color scales.
// Returns ErrInvalidAssetPath if WithAssetPath names an unusable directory.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.cfg.legend = r.cfg.legend.withDefaults()

	var loader assets.AssetLoader = assets.NewEmbeddedLoader()
	if r.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}

	registry, err := colorscale.Builtin(loader)
	if err != nil {
		return nil, fmt.Errorf("loading color scales: %w", err)
	}
	for name, p := range r.cfg.extra {
		registry.Register(name, p)
	}
	r.registry = registry
	return r, nil
}

// Scales returns the registered scale names, sorted.
func (r *Renderer) Scales() []string {
	return r.registry.Names()
}

// Job describes one run: a template, a data table, and how to render them.
type Job struct {
	Template string // template document path
	Data     string // CSV data path
	Title    string // legend title text
	Scale    string
	Reversed bool

	OutputDir string // empty = beside the template
	Suffix    string // empty = DefaultSuffix(Data)

	Table table.Options
}

// Result lists what a run produced.
type Result struct {
	Files []string // written paths, in row order
	Min   float64
	Max   float64
}

// Run renders one output document per table row.
//
// The template is loaded once. The legend is rendered once before any row.
// Each row then recolors its regions on the same document and the whole
// document is written, so regions a row does not name keep the colors of
// earlier rows. Every column is bound to a region before the first write:
// a missing region or a fill-less style produces no files at all. A failure
// during the row loop stops it; files already written stay in place.
// Cancelling ctx stops the loop between rows.
func (r *Renderer) Run(ctx context.Context, job Job) (*Result, error) {
	scale, err := r.registry.Lookup(job.Scale, job.Reversed)
	if err != nil {
		return nil, err
	}

	doc, err := markup.LoadFile(job.Template)
	if err != nil {
		return nil, err
	}

	data, err := table.ReadFile(job.Data, job.Table)
	if err != nil {
		return nil, err
	}

	suffix := job.Suffix
	if suffix == "" {
		suffix = DefaultSuffix(job.Data)
	}
	if job.OutputDir != "" && !fileutil.DirExists(job.OutputDir) {
		return nil, fmt.Errorf("%w: output directory %s: %v", ErrWriteOutput, job.OutputDir, os.ErrNotExist)
	}

	return r.render(ctx, doc, data, job, scale, func(label string) string {
		return OutputPath(job.Template, suffix, label, job.OutputDir)
	})
}

// render runs the row state machine on an already loaded document.
func (r *Renderer) render(
	ctx context.Context,
	doc *markup.Document,
	data *table.Table,
	job Job,
	scale palette.Continuous,
	pathFor func(label string) string,
) (*Result, error) {
	norm, rg, err := table.Normalize(data)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("normalized table", "rows", norm.NumRows(), "columns", len(norm.Columns), "min", rg.Min, "max", rg.Max)

	lg := r.cfg.legend
	lg.Title = job.Title
	if err := RenderLegend(doc, job.Scale, job.Reversed, lg, rg); err != nil {
		return nil, err
	}
	r.logger.Debug("rendered legend", "legend", LegendID(job.Scale, job.Reversed))

	regions, err := BindRegions(doc, norm.Columns)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("bound regions", "regions", regions.Len())

	res := &Result{Min: rg.Min, Max: rg.Max}
	opts := markup.SerializeOptions{Indent: r.cfg.indent}
	for i := 0; i < norm.NumRows(); i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if err := regions.Color(norm.Row(i), scale); err != nil {
			return res, err
		}

		out, err := doc.Serialize(opts)
		if err != nil {
			return res, err
		}

		label := norm.Labels[i]
		path := pathFor(label)
		if err := fileutil.WriteFileAtomic(path, []byte(out), outputPerm); err != nil {
			return res, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		res.Files = append(res.Files, path)
		r.logger.Info("wrote map", "row", label, "file", path)
	}

	return res, nil
}
