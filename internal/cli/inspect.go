package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsynth/pkg/archive"
)

// inspectCommand creates the "inspect" command that summarizes an archive.
func (c *CLI) inspectCommand() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize an archive",
		Long: `Print the archive's grid dimensions, registered symbols and
transformation pipeline. With --preview the grid is rendered as colored
blocks using the same palette as the PNG renderer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := archive.ReadFile(args[0])
			if err != nil {
				return err
			}

			g := engine.Grid()
			fmt.Println(StyleTitle.Render(args[0]))
			printInfo("Grid: %s", StyleValue.Render(fmt.Sprintf("%dx%d", g.Width(), g.Height())))

			symbols := engine.Alphabet().Symbols()
			printInfo("Symbols: %d", len(symbols))
			for _, s := range symbols {
				printDetail("%d: %s", s.ID, s.Name)
			}

			transformations := engine.Transformations()
			printInfo("Pipeline: %d transformations", len(transformations))
			for i, t := range transformations {
				state := "enabled"
				if !t.Enabled() {
					state = "disabled"
				}
				detail := fmt.Sprintf("%d: %s (%s, %s)", i, t.Name(), t.Kind(), state)
				if s := t.Search(); s != nil {
					detail += fmt.Sprintf(", search %dx%d, %d replacement(s)",
						s.Width(), s.Height(), len(t.Replacements()))
				}
				printDetail("%s", detail)
			}

			if preview {
				fmt.Print(gridPreview(g))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "print a colored grid preview")

	return cmd
}
