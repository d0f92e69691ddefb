package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridsynth/pkg/synth"
)

// PipelineDOT converts an engine's transformation pipeline to Graphviz DOT
// format: the grid as the source node, transformations chained in execution
// order. Disabled transformations are rendered with dashed outlines and
// grey fill.
func PipelineDOT(e *synth.Engine) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pipeline {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	g := e.Grid()
	fmt.Fprintf(&buf, "  grid [label=\"grid %dx%d\", shape=note];\n", g.Width(), g.Height())

	prev := "grid"
	for i, t := range e.Transformations() {
		id := fmt.Sprintf("t%d", i)
		label := fmt.Sprintf("%s\\n(%s)", t.Name(), t.Kind())
		attrs := fmt.Sprintf("label=\"%s\"", label)
		if !t.Enabled() {
			attrs += ", style=\"rounded,filled,dashed\", fillcolor=lightgrey"
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", id, attrs)
		fmt.Fprintf(&buf, "  %s -> %s;\n", prev, id)
		prev = id
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
