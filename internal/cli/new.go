package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsynth/pkg/archive"
	"github.com/matzehuels/gridsynth/pkg/errors"
	"github.com/matzehuels/gridsynth/pkg/synth"
)

// newOpts holds the command-line flags for the new command.
type newOpts struct {
	width  int
	height int
	blank  bool
}

// newCommand creates the "new" command that writes a starter archive.
func (c *CLI) newCommand() *cobra.Command {
	opts := newOpts{width: 16, height: 16}

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Write a starter archive",
		Long: `Write a starter archive to the given file.

By default the archive carries demo content: two symbols, a random fill
and a rule-based growth transformation, ready for "gridsynth synth".
Use --blank for an empty grid with no symbols or transformations.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateDimensions(opts.width, opts.height); err != nil {
				return err
			}

			engine := synth.New(opts.width, opts.height, synth.Empty.ID)
			if !opts.blank {
				seedDemoContent(engine)
			}

			if err := archive.WriteFile(engine, args[0]); err != nil {
				return err
			}

			printSuccess("Wrote %s", args[0])
			printDetail("Grid: %dx%d", opts.width, opts.height)
			printDetail("Symbols: %d", engine.Alphabet().Len())
			printDetail("Transformations: %d", len(engine.Transformations()))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", opts.width, "grid width in cells")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "grid height in cells")
	cmd.Flags().BoolVar(&opts.blank, "blank", false, "skip demo content")

	return cmd
}

// seedDemoContent populates the engine with the canonical demo setup: two
// symbols, a random fill and a rule that grows plus-shaped clusters of 1s
// around 2s surrounded by 1s.
func seedDemoContent(e *synth.Engine) {
	e.Alphabet().AddSymbol(synth.Symbol{ID: 1, Name: "F"})
	e.Alphabet().AddSymbol(synth.Symbol{ID: 2, Name: "G"})

	e.AddTransformation(synth.NewRandomFill("Random"))

	wc := synth.Wildcard.ID
	search := gridFromRows(3, 3, []int{
		wc, 1, wc,
		1, 2, 1,
		wc, 1, wc,
	})
	replacement := gridFromRows(3, 3, []int{
		wc, 1, wc,
		1, 1, 1,
		wc, 1, wc,
	})

	rule := synth.NewRuleBased("Rule-based")
	rule.SetSearch(search)
	rule.AddReplacement(1.0, replacement)
	e.AddTransformation(rule)
}

// gridFromRows builds a grid from row-major literal values.
func gridFromRows(width, height int, values []int) *synth.Grid {
	g := synth.NewGrid(width, height, synth.Empty.ID)
	copy(g.Cells(), values)
	return g
}
