// Package pkg provides the core libraries for gridsynth grid synthesis.
//
// # Overview
//
// Gridsynth holds a 2D grid of integer-coded symbols and rewrites it
// through an ordered pipeline of transformations. The pkg directory is
// organized into six main areas:
//
//  1. [synth] - Domain logic (grid, alphabet, transformations, engine)
//  2. [archive] - Versioned JSON serialization of full engine state
//  3. [render] - Visual output (PNG, text, Graphviz pipeline diagrams)
//  4. [store] - Named archive library (file directory or MongoDB)
//  5. [cache] - Rendered-artifact cache (file directory or Redis)
//  6. [errors] / [observability] - Structured errors and instrumentation hooks
//
// # Architecture
//
// The typical data flow through gridsynth:
//
//	Archive document (JSON)
//	         ↓
//	    [archive] package (validate + construct engine)
//	         ↓
//	    [synth] package (run the transformation pipeline)
//	         ↓
//	    [render] package (PNG / text / DOT / SVG)
//	         ↓
//	    File, HTTP response or [cache]
//
// # Quick Start
//
// Build an engine, synthesize and render:
//
//	import (
//	    "github.com/matzehuels/gridsynth/pkg/render"
//	    "github.com/matzehuels/gridsynth/pkg/synth"
//	)
//
//	// 1. Create an engine with a 16x16 empty grid
//	e := synth.New(16, 16, synth.Empty.ID)
//	e.Alphabet().AddSymbol(synth.Symbol{ID: 1, Name: "F"})
//
//	// 2. Configure the pipeline
//	e.AddTransformation(synth.NewRandomFill("fill"))
//
//	// 3. Run it
//	if err := e.Synthesize(); err != nil { ... }
//
//	// 4. Render the result
//	png, _ := render.PNG(e.Grid())
//
// # Main Packages
//
// [synth] - The engine: grids in row-major storage, the symbol alphabet
// with its empty and wildcard sentinels, random-fill and rule-based
// transformations, and the double-buffered pipeline runner.
//
// [archive] - The versioned archive format. An archive captures complete
// engine state (grid, alphabet, pipeline) and restores it atomically;
// structural problems fail with MALFORMED_ARCHIVE.
//
// [render] - Deterministic visual output for grids plus Graphviz diagrams
// of the transformation pipeline.
//
// [store] - A named library of archive documents with file and MongoDB
// backends.
//
// [cache] - Content-addressed caching of rendered artifacts with file,
// Redis and null backends.
//
// [errors] - Structured errors with machine-readable codes shared by the
// CLI and the HTTP API.
//
// [observability] - Hook registration for synthesis and cache events
// without hard dependencies on an observability backend.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/synth/...    # Specific package
//
// [synth]: https://pkg.go.dev/github.com/matzehuels/gridsynth/pkg/synth
// [archive]: https://pkg.go.dev/github.com/matzehuels/gridsynth/pkg/archive
// [render]: https://pkg.go.dev/github.com/matzehuels/gridsynth/pkg/render
// [store]: https://pkg.go.dev/github.com/matzehuels/gridsynth/pkg/store
// [cache]: https://pkg.go.dev/github.com/matzehuels/gridsynth/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/gridsynth/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gridsynth/pkg/observability
package pkg
