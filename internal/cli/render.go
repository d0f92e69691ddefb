package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsynth/pkg/archive"
	"github.com/matzehuels/gridsynth/pkg/cache"
	"github.com/matzehuels/gridsynth/pkg/errors"
	"github.com/matzehuels/gridsynth/pkg/render"
	"github.com/matzehuels/gridsynth/pkg/synth"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string
	format  string
	scale   int
	noCache bool
}

// validRenderFormats is the set of supported artifact formats.
var validRenderFormats = map[string]bool{"png": true, "txt": true, "dot": true, "svg": true}

// renderCommand creates the "render" command that turns an archive into a
// visual artifact.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: "png"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an archive's grid or pipeline",
		Long: `Render an archive to one of:

  png   raster image of the grid, one colored square per cell
  txt   glyph rendering of the grid for terminals
  dot   Graphviz source of the transformation pipeline
  svg   Graphviz rendering of the transformation pipeline

Grid rendering is deterministic, so PNG artifacts are served from the
artifact cache when the same grid was rendered before.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validRenderFormats[opts.format] {
				return errors.New(errors.ErrCodeInvalidInput,
					"invalid format: %s (must be 'png', 'txt', 'dot', or 'svg')", opts.format)
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png (default), txt, dot, svg")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "cell edge length in pixels (png)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

// runRender loads the archive, renders the requested artifact and writes it.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	engine, err := archive.ReadFile(input)
	if err != nil {
		return err
	}

	scale := opts.scale
	if scale == 0 {
		scale = c.Config.Render.Scale
	}

	var artifact []byte
	switch opts.format {
	case "png":
		artifact, err = c.renderPNGCached(ctx, engine, scale, opts.noCache)
	case "txt":
		artifact = []byte(render.Text(engine.Grid()))
	case "dot":
		artifact = []byte(render.PipelineDOT(engine))
	case "svg":
		artifact, err = render.SVG(render.PipelineDOT(engine))
	}
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(output, artifact, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", output)
	}

	printSuccess("Rendered %s", output)
	printDetail("Format: %s, %d bytes", opts.format, len(artifact))
	return nil
}

// renderPNGCached renders the grid to PNG through the artifact cache. An
// unreachable cache backend degrades to an uncached render with a warning
// rather than failing the command.
func (c *CLI) renderPNGCached(ctx context.Context, e *synth.Engine, scale int, noCache bool) ([]byte, error) {
	artifactCache, err := c.newCache(ctx, noCache)
	if err != nil {
		printWarning("Artifact cache unavailable: %v", err)
		artifactCache = cache.NewNullCache()
	}
	defer artifactCache.Close()

	return render.CachedPNG(ctx, artifactCache, cache.NewDefaultKeyer(), e.Grid(), scale)
}
