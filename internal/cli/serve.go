package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/beofficial/commandcenter/internal/config"
	"github.com/beofficial/commandcenter/internal/gateway"
	"github.com/beofficial/commandcenter/internal/logging"
	"github.com/beofficial/commandcenter/internal/mail"
	"github.com/beofficial/commandcenter/internal/roster"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		port int
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the command center HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}

			if port != 0 {
				cfg.Server.Port = port
			}
			if bind != "" {
				cfg.Server.Bind = bind
			}

			issues := config.Validate(&cfg)
			if len(issues) > 0 {
				for _, issue := range issues {
					log.Error().Str("path", issue.Path).Msg(issue.Message)
				}
				return fmt.Errorf("config validation failed with %d issue(s)", len(issues))
			}

			level := cfg.Logging.Level
			if logLevel != "" {
				level = logLevel
			}
			srvLog := logging.NewStyled(nil, level, cfg.Logging.ConsoleStyle)

			store := roster.NewDefault()
			mailer := mail.New(srvLog)
			srv := gateway.New(cfg, store, mailer, srvLog)

			// Block until SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override server port")
	cmd.Flags().StringVar(&bind, "bind", "", "override bind mode (loopback, lan, custom)")

	return cmd
}
