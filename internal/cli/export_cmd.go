package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beofficial/commandcenter/internal/export"
	"github.com/beofficial/commandcenter/internal/roster"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the agents JSON and README to disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := outDir
			if dir == "" {
				if err := paths.EnsureDirs(); err != nil {
					return err
				}
				dir = paths.Exports
			} else if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			store := roster.NewDefault()
			if err := export.NewEncoder().WriteFiles(dir, store.List()); err != nil {
				return err
			}

			fmt.Println(filepath.Join(dir, export.AgentsFilename))
			fmt.Println(filepath.Join(dir, export.ReadmeFilename))
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default ~/.beofficial/exports)")
	return cmd
}
