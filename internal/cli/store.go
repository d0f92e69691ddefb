package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsynth/pkg/archive"
	"github.com/matzehuels/gridsynth/pkg/store"
)

// storeCommand creates the store management command. The store is a named
// library of archives; the backend (file directory or MongoDB) comes from
// configuration.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the named archive library",
	}

	cmd.AddCommand(c.storeSaveCommand())
	cmd.AddCommand(c.storeLoadCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeDeleteCommand())

	return cmd
}

// storeSaveCommand creates the "store save" subcommand.
func (c *CLI) storeSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save [name] [file]",
		Short: "Save an archive file under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, file := args[0], args[1]

			// Validate before storing so the library never holds a
			// document the engine would reject on load.
			engine, err := archive.ReadFile(file)
			if err != nil {
				return err
			}
			doc, err := archive.Marshal(engine)
			if err != nil {
				return err
			}

			s, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			sp := newSpinnerWithContext(cmd.Context(), "Saving archive")
			sp.Start()
			id, err := s.Save(cmd.Context(), name, doc)
			if err != nil {
				sp.StopWithError(fmt.Sprintf("Saving %q failed", name))
				return err
			}
			sp.StopWithSuccess(fmt.Sprintf("Saved %q", name))

			printDetail("ID: %s", id)
			printDetail("Size: %d bytes", len(doc))
			return nil
		},
	}
}

// storeLoadCommand creates the "store load" subcommand.
func (c *CLI) storeLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load [name] [file]",
		Short: "Load a named archive to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, file := args[0], args[1]

			s, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := s.Load(cmd.Context(), name)
			if errors.Is(err, store.ErrNotFound) {
				printError("No archive named %q", name)
				return err
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(file, doc, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", file, err)
			}

			printSuccess("Loaded %q to %s", name, file)
			return nil
		},
	}
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored archives",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			entries, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("Store is empty")
				return nil
			}

			for _, e := range entries {
				fmt.Printf("%s %s\n",
					StyleValue.Render(e.Name),
					StyleDim.Render(fmt.Sprintf("(%d bytes, %s)", e.Size, e.UpdatedAt.Format("2006-01-02 15:04"))))
			}
			return nil
		},
	}
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a stored archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.newStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					printError("No archive named %q", args[0])
				}
				return err
			}

			printSuccess("Deleted %q", args[0])
			return nil
		},
	}
}
