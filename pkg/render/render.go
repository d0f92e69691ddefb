// Package render produces visual output for grids and pipelines.
//
// Grid rendering is deterministic: the same cells always produce the same
// bytes, which makes rendered artifacts safe to cache by content hash.
//
// Three output families exist:
//   - [PNG]: raster image, one colored square per cell
//   - [Text]: glyph rendering for terminals and logs
//   - [PipelineDOT] / [SVG]: Graphviz diagram of the transformation pipeline
package render

import (
	"bytes"
	"image"
	"image/png"
	"strings"

	"github.com/matzehuels/gridsynth/pkg/errors"
	"github.com/matzehuels/gridsynth/pkg/synth"
)

// DefaultScale is the default edge length of one cell in pixels.
const DefaultScale = 8

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale int
}

// WithScale sets the cell edge length in pixels (default 8).
func WithScale(s int) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// PNG renders the grid as a PNG image, one scale×scale square per cell,
// colored by [CellColor].
func PNG(g *synth.Grid, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scale must be at least 1, got %d", r.scale)
	}

	img := image.NewNRGBA(image.Rect(0, 0, g.Width()*r.scale, g.Height()*r.scale))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := CellColor(g.Get(x, y))
			for dy := 0; dy < r.scale; dy++ {
				for dx := 0; dx < r.scale; dx++ {
					img.SetNRGBA(x*r.scale+dx, y*r.scale+dy, c)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// textGlyphs maps small cell values to single glyphs. Values beyond the
// table render as '#', negatives as '?'.
const textGlyphs = ".123456789abcdef"

// Text renders the grid as newline-separated rows of glyphs, one glyph per
// cell. The empty code renders as '.'.
func Text(g *synth.Grid) string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := g.Get(x, y)
			switch {
			case v < 0:
				sb.WriteByte('?')
			case v < len(textGlyphs):
				sb.WriteByte(textGlyphs[v])
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
