package svgmap

// Notes:
// - Most runs use grayPalette registered over RdYlGn through WithScale so
//   expected fills are exact. TestRun_EndToEnd_EmbeddedScale runs the same
//   scenario through the embedded RdYlGn gradient.
// - A write failure in the middle of the row loop is not simulated: it would
//   need a directory that turns read-only between two rows.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/alnah/go-svgmap/internal/markup"
	"github.com/alnah/go-svgmap/internal/table"
)

func newGrayRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	opts = append([]Option{WithScale("RdYlGn", grayPalette{})}, opts...)
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func listSVG(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.*.svg"))
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(matches)
	return matches
}

// ---------------------------------------------------------------------------
// TestNew - construction and options
// ---------------------------------------------------------------------------

func TestNew(t *testing.T) {
	t.Parallel()

	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	names := strings.Join(r.Scales(), ",")
	for _, want := range []string{"RdYlGn", "Blues", "crest", "viridis"} {
		if !strings.Contains(names, want) {
			t.Errorf("Scales() = %s, missing %s", names, want)
		}
	}
}

func TestNew_AssetPath(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "scales"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(base, "scales"), "mono.yaml", "description: test\nstops: [\"#000000\", \"#ffffff\"]\n")

	r, err := New(WithAssetPath(base))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	found := false
	for _, n := range r.Scales() {
		if n == "mono" {
			found = true
		}
	}
	if !found {
		t.Errorf("Scales() = %v, want mono included", r.Scales())
	}

	if _, err := New(WithAssetPath(filepath.Join(base, "missing"))); !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("New(missing path) error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil scale", func() { WithScale("x", nil) }},
		{"negative indent", func() { WithIndent(-1) }},
		{"zero ticks", func() { WithTicks(0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

// ---------------------------------------------------------------------------
// TestRun - end to end
// ---------------------------------------------------------------------------

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmpl := writeFile(t, dir, "EMN.svg", templateSVG(10))
	data := writeFile(t, dir, "ExampleData.csv", "A,B\n0,10\n5,100\n")

	r := newGrayRenderer(t)
	res, err := r.Run(context.Background(), Job{
		Template: tmpl,
		Data:     data,
		Title:    "Population",
		Scale:    "RdYlGn",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Min != 0 || res.Max != 100 {
		t.Errorf("range = [%v, %v], want [0, 100]", res.Min, res.Max)
	}
	wantFiles := []string{
		filepath.Join(dir, "EMN_ExampleData.0.svg"),
		filepath.Join(dir, "EMN_ExampleData.1.svg"),
	}
	if strings.Join(res.Files, "|") != strings.Join(wantFiles, "|") {
		t.Fatalf("Files = %v, want %v", res.Files, wantFiles)
	}
	if got := listSVG(t, dir); len(got) != 2 {
		t.Errorf("files on disk = %v, want 2", got)
	}

	wantFills := []map[string]string{
		{"A": grayHex(0), "B": grayHex(26)},
		{"A": grayHex(13), "B": grayHex(255)},
	}
	ticks := []string{"0.0", "10.0", "20.0", "30.0", "40.0", "50.0", "60.0", "70.0", "80.0", "90.0", "100.0"}

	for i, path := range res.Files {
		doc, err := markup.LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) error = %v", path, err)
		}
		for key, want := range wantFills[i] {
			if got := fillOf(t, doc, key); got != want {
				t.Errorf("row %d: %s fill = %q, want %q", i, key, got, want)
			}
		}
		if !doc.FindByID("RdYlGn").Visible() {
			t.Errorf("row %d: legend not visible", i)
		}
		if doc.FindByID("RdYlGn_reversed").Visible() {
			t.Errorf("row %d: reversed legend visible", i)
		}
		for n, want := range ticks {
			if got := textOf(t, doc, Legend{}.TickID(n)); got != want {
				t.Errorf("row %d: tick_%d = %q, want %q", i, n, got, want)
			}
		}
		if got := textOf(t, doc, "colorbar_title"); got != "Population" {
			t.Errorf("row %d: title = %q", i, got)
		}
		if got := fillOf(t, doc, "Muenchen"); got != "#000000" {
			t.Errorf("row %d: untouched region fill = %q", i, got)
		}
	}
}

func TestRun_EndToEnd_EmbeddedScale(t *testing.T) {
	t.Parallel()

	// Notes:
	// - B=10 normalizes to 0.1, which lands exactly on the second stop.
	// - A=5 normalizes to 0.05, halfway through the first segment; its blue
	//   channel sits on a half step, so one step of rounding is tolerated.
	dir := t.TempDir()
	tmpl := writeFile(t, dir, "EMN.svg", templateSVG(10))
	data := writeFile(t, dir, "ExampleData.csv", "A,B\n0,10\n5,100\n")

	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := r.Run(context.Background(), Job{Template: tmpl, Data: data, Title: "Population", Scale: "RdYlGn"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantFills := []map[string]string{
		{"A": "#a50026", "B": "#d73027"},
		{"A": "#be1827", "B": "#006837"},
	}
	for i, path := range res.Files {
		doc, err := markup.LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) error = %v", path, err)
		}
		for key, want := range wantFills[i] {
			if got := fillOf(t, doc, key); !hexNear(got, want) {
				t.Errorf("row %d: %s fill = %q, want %q", i, key, got, want)
			}
		}
	}
	if len(res.Files) != 2 {
		t.Errorf("Files = %v, want 2", res.Files)
	}
}

func TestRun_OutputKeepsTemplateBytes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmpl := writeFile(t, dir, "map.svg", templateSVG(10))
	data := writeFile(t, dir, "d.csv", "A\n0\n1\n")

	r := newGrayRenderer(t)
	res, err := r.Run(context.Background(), Job{Template: tmpl, Data: data, Title: "T", Scale: "RdYlGn"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out, err := os.ReadFile(res.Files[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{
		`<path id="path7" inkscape:label="B" style="stroke:#111111;fill:#000000;stroke-width:1"/>`,
		`<path id="Bad_Toelz" style="stroke:none"/>`,
		`<text id="tick_7">0.7</text>`,
		`<text id="colorbar_title">T</text>`,
	} {
		if !strings.Contains(string(out), line) {
			t.Errorf("output missing %q", line)
		}
	}
}

func TestRun_Indent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmpl := writeFile(t, dir, "map.svg", strings.ReplaceAll(templateSVG(10), "\n  ", ""))
	data := writeFile(t, dir, "d.csv", "A\n0\n1\n")

	r := newGrayRenderer(t, WithIndent(2))
	res, err := r.Run(context.Background(), Job{Template: tmpl, Data: data, Title: "Legend title", Scale: "RdYlGn"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	out, err := os.ReadFile(res.Files[1])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "\n  <text id=\"tick_10\">1.0</text>") {
		t.Errorf("indented output should keep tick text inline:\n%s", out)
	}
	if !strings.Contains(string(out), `<text id="colorbar_title">Legend title</text>`) {
		t.Errorf("indented output should keep title inline:\n%s", out)
	}
}

func TestRun_OutputDirAndSuffix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.Mkdir(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	tmpl := writeFile(t, dir, "map.svg", templateSVG(10))
	data := writeFile(t, dir, "d.csv", "year,A\n2020,1\n2021,2\n")

	r := newGrayRenderer(t)
	res, err := r.Run(context.Background(), Job{
		Template:  tmpl,
		Data:      data,
		Scale:     "RdYlGn",
		OutputDir: outDir,
		Suffix:    "_pop",
		Table:     table.Options{IndexColumn: "year"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []string{filepath.Join(outDir, "map_pop.2020.svg"), filepath.Join(outDir, "map_pop.2021.svg")}
	if strings.Join(res.Files, "|") != strings.Join(want, "|") {
		t.Errorf("Files = %v, want %v", res.Files, want)
	}
	if got := listSVG(t, dir); len(got) != 0 {
		t.Errorf("nothing should be written beside the template, got %v", got)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		svg     string
		csv     string
		job     Job
		wantErr error
	}{
		{
			name:    "missing region column",
			svg:     templateSVG(10),
			csv:     "A,B,C\n1,2,3\n4,5,6\n",
			wantErr: ErrRegionNotFound,
		},
		{
			name:    "region without fill",
			svg:     templateSVG(10),
			csv:     "A,Bad Tölz\n1,2\n",
			wantErr: ErrMalformedStyle,
		},
		{
			name:    "degenerate range",
			svg:     templateSVG(10),
			csv:     "A,B\n3,3\n3,3\n",
			wantErr: ErrDegenerateRange,
		},
		{
			name:    "empty table",
			svg:     templateSVG(10),
			csv:     "A,B\n",
			wantErr: ErrEmptyTable,
		},
		{
			name:    "invalid cell",
			svg:     templateSVG(10),
			csv:     "A,B\n1,x\n",
			wantErr: table.ErrInvalidCell,
		},
		{
			name:    "malformed template",
			svg:     "<svg><g></svg>",
			csv:     "A\n1\n2\n",
			wantErr: ErrParse,
		},
		{
			name:    "legend missing",
			svg:     templateSVG(10),
			csv:     "A\n1\n2\n",
			job:     Job{Scale: "Blues"},
			wantErr: ErrLegendNotFound,
		},
		{
			name:    "tick missing",
			svg:     templateSVG(8),
			csv:     "A\n1\n2\n",
			wantErr: ErrTickNotFound,
		},
		{
			name:    "unknown scale",
			svg:     templateSVG(10),
			csv:     "A\n1\n2\n",
			job:     Job{Scale: "nope"},
			wantErr: ErrUnknownScale,
		},
		{
			name:    "output directory missing",
			svg:     templateSVG(10),
			csv:     "A\n1\n2\n",
			job:     Job{OutputDir: filepath.Join(os.TempDir(), "svgmap-does-not-exist", "x")},
			wantErr: ErrWriteOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			job := tt.job
			job.Template = writeFile(t, dir, "map.svg", tt.svg)
			job.Data = writeFile(t, dir, "data.csv", tt.csv)
			if job.Scale == "" {
				job.Scale = "RdYlGn"
			}

			r := newGrayRenderer(t)
			_, err := r.Run(context.Background(), job)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if got := listSVG(t, dir); len(got) != 0 {
				t.Errorf("no output expected, got %v", got)
			}
		})
	}
}

func TestRun_MissingRegionNamesKey(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmpl := writeFile(t, dir, "map.svg", templateSVG(10))
	data := writeFile(t, dir, "data.csv", "A,C\n1,2\n")

	_, err := newGrayRenderer(t).Run(context.Background(), Job{Template: tmpl, Data: data, Scale: "RdYlGn"})
	var rnf *RegionNotFoundError
	if !errors.As(err, &rnf) {
		t.Fatalf("Run() error = %v, want *RegionNotFoundError", err)
	}
	if rnf.Key != "C" {
		t.Errorf("Key = %q, want C", rnf.Key)
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmpl := writeFile(t, dir, "map.svg", templateSVG(10))
	data := writeFile(t, dir, "data.csv", "A\n1\n2\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newGrayRenderer(t).Run(ctx, Job{Template: tmpl, Data: data, Scale: "RdYlGn"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if res == nil || len(res.Files) != 0 {
		t.Errorf("Files = %v, want none", res)
	}
	if got := listSVG(t, dir); len(got) != 0 {
		t.Errorf("no output expected, got %v", got)
	}
}
