package cli

import (
	"fmt"
	"path/filepath"

	"github.com/beofficial/commandcenter/internal/config"
	"github.com/beofficial/commandcenter/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beofficial",
		Short: "BeOfficial — marketing agent command center",
		Long:  "BeOfficial manages the agent roster, composes the daily brief, and ships it over SMTP.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}

			// SMTP credentials may live in a dotfile instead of the shell
			// environment. Existing variables win.
			_ = godotenv.Load()
			_ = godotenv.Load(filepath.Join(paths.Base, ".env"))

			level := logLevel
			if level == "" {
				level = "info"
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.beofficial/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newAgentsCmd())
	cmd.AddCommand(newDigestCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

// Execute runs the root command. With SilenceErrors set, cobra leaves
// reporting to us: every failure is printed to stderr before it propagates.
func Execute() error {
	return execute(newRootCmd())
}

func execute(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
