// Package svgmap colors the regions of an SVG map template from a table of
// numbers, writing one map per table row together with a color legend.
//
// # Quick Start
//
//	r, err := svgmap.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := r.Run(ctx, svgmap.Job{
//	    Template: "EMN.svg",
//	    Data:     "ExampleData.csv",
//	    Title:    "Inhabitants per km²",
//	    Scale:    "RdYlGn",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Files) // [EMN_ExampleData.0.svg EMN_ExampleData.1.svg ...]
//
// # Pipeline
//
//  1. The data table is normalized with one global minimum and maximum, so
//     every column is read against the same legend.
//  2. The legend of the chosen scale (id = scale name, or name + "_reversed")
//     is made visible, its tick labels are rewritten with evenly spaced values
//     and its title text is replaced.
//  3. Each column header is turned into a region key (ä, ö, ü, ß and spaces
//     are substituted) and bound to the element with that id or
//     inkscape:label.
//  4. For each row, the fill of every bound region is rewritten and the whole
//     document is written as {template}{suffix}.{row}.svg.
//
// The document is loaded once and mutated row after row. A region that a
// row does not recolor keeps its previous fill in later files.
//
// # Template Requirements
//
// Use Renderer.Check (or "svgmap check") to see which legends, tick labels
// and regions a template provides.
//
// # Errors
//
// Failures are reported with sentinel errors usable with errors.Is:
// ErrParse, ErrLegendNotFound, ErrTickNotFound, ErrTitleNotFound,
// ErrRegionNotFound (as *RegionNotFoundError), ErrMalformedStyle,
// ErrDegenerateRange, ErrUnknownScale, ErrEmptyTable and ErrWriteOutput.
package svgmap
