package cli

import (
	"fmt"

	"github.com/beofficial/commandcenter/internal/config"
	"github.com/beofficial/commandcenter/internal/digest"
	"github.com/beofficial/commandcenter/internal/domain"
	"github.com/beofficial/commandcenter/internal/mail"
	"github.com/spf13/cobra"
)

func newDigestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Compose and send the EARLYBIRD daily brief",
	}

	cmd.AddCommand(newDigestPreviewCmd())
	cmd.AddCommand(newDigestSendCmd())
	return cmd
}

// digestFlags registers the draft override flags shared by preview and send.
func digestFlags(cmd *cobra.Command, draft *domain.EmailDraft) {
	cmd.Flags().StringVar(&draft.Subject, "subject", "", "override the digest subject")
	cmd.Flags().StringVar(&draft.Intro, "intro", "", "override the intro line")
	cmd.Flags().StringArrayVar(&draft.Bullets, "bullet", nil, "digest item (repeatable, replaces the defaults)")
	cmd.Flags().StringVar(&draft.Footer, "footer", "", "override the footer line")
}

// resolveDraft layers the stock template, config overrides, and flag
// overrides, in that order.
func resolveDraft(cmd *cobra.Command, flags domain.EmailDraft) domain.EmailDraft {
	draft := digest.DefaultDraft()

	cfg, err := config.Load(paths.Config)
	if err != nil {
		log.Warn().Err(err).Msg("could not load config, digest overrides ignored")
	} else {
		if cfg.Digest.Subject != "" {
			draft.Subject = cfg.Digest.Subject
		}
		if cfg.Digest.Intro != "" {
			draft.Intro = cfg.Digest.Intro
		}
		if len(cfg.Digest.Items) > 0 {
			draft.Bullets = cfg.Digest.Items
		}
		if cfg.Digest.Footer != "" {
			draft.Footer = cfg.Digest.Footer
		}
	}

	if cmd.Flags().Changed("subject") {
		draft.Subject = flags.Subject
	}
	if cmd.Flags().Changed("intro") {
		draft.Intro = flags.Intro
	}
	if cmd.Flags().Changed("bullet") {
		draft.Bullets = flags.Bullets
	}
	if cmd.Flags().Changed("footer") {
		draft.Footer = flags.Footer
	}
	return draft
}

func newDigestPreviewCmd() *cobra.Command {
	var flags domain.EmailDraft

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the digest body without sending it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(digest.Render(resolveDraft(cmd, flags)))
			return nil
		},
	}

	digestFlags(cmd, &flags)
	return cmd
}

func newDigestSendCmd() *cobra.Command {
	var (
		flags domain.EmailDraft
		to    string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send the digest over SMTP (reads SMTP_* from the environment)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := resolveDraft(cmd, flags)
			body := digest.Render(draft)

			mailer := mail.New(log)
			if err := mailer.SendFromEnv(cmd.Context(), to, draft.Subject, body); err != nil {
				return err
			}

			fmt.Printf("Sent %q to %s\n", draft.Subject, to)
			return nil
		},
	}

	digestFlags(cmd, &flags)
	cmd.Flags().StringVar(&to, "to", "", "recipient address")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
