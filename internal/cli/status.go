package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/beofficial/commandcenter/internal/config"
	"github.com/beofficial/commandcenter/internal/mail"
	"github.com/beofficial/commandcenter/internal/roster"
	"github.com/beofficial/commandcenter/internal/version"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show BeOfficial status and configuration summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("BeOfficial %s (commit %s)\n\n", version.Version, version.Commit)

			// Show paths
			fmt.Printf("Config:  %s\n", paths.Config)
			fmt.Printf("Exports: %s\n", paths.Exports)
			fmt.Printf("Logs:    %s\n", paths.Logs)
			fmt.Println()

			// Roster
			store := roster.NewDefault()
			codenames := make([]string, 0, store.Len())
			for _, a := range store.List() {
				codenames = append(codenames, a.Codename)
			}
			fmt.Printf("Roster:  %d agents (%s)\n", store.Len(), strings.Join(codenames, ", "))

			// SMTP delivery config
			if _, err := mail.ConfigFromEnv(); err != nil {
				fmt.Printf("SMTP:    not configured (%v)\n", err)
			} else {
				fmt.Printf("SMTP:    configured (%s)\n", os.Getenv("SMTP_HOST"))
			}

			// Load config
			cfg, err := config.Load(paths.Config)
			if err != nil {
				fmt.Printf("Config:  error loading: %v\n", err)
				return nil
			}

			fmt.Printf("Server:  port=%d bind=%s\n", cfg.Server.Port, cfg.Server.Bind)
			fmt.Printf("Brand:   voice=%q cta=%s\n", cfg.Brand.VoiceNotes, cfg.Brand.CTAURL)

			// Validation
			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				fmt.Printf("\nValidation issues (%d):\n", len(issues))
				for _, issue := range issues {
					fmt.Printf("  - %s: %s\n", issue.Path, issue.Message)
				}
			}

			return nil
		},
	}
}
