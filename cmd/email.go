package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/startupcalc/internal/report"
)

var (
	flagEmailTo      string
	flagEmailSubject string
	flagEmailHTML    string
	flagEmailPreview bool
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Compose the cost report as an HTML email",
	Long:  "Compose the cost report as an HTML email. Delivery is simulated: the message is logged, not sent.",
	RunE:  runEmail,
}

func init() {
	emailCmd.Flags().StringVar(&flagEmailTo, "to", "", "Recipient address (default: config email.recipient)")
	emailCmd.Flags().StringVar(&flagEmailSubject, "subject", "", "Subject line")
	emailCmd.Flags().StringVar(&flagEmailHTML, "html", "", "Also write the HTML body to this file")
	emailCmd.Flags().BoolVar(&flagEmailPreview, "preview", false, "Print the message body as markdown")
	rootCmd.AddCommand(emailCmd)
}

func runEmail(cmd *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	to := flagEmailTo
	if to == "" {
		to = s.cfg.Email.Recipient
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	e, err := report.SendEmail(ctx, s.report(),
		report.MarkupRenderer{Money: s.money},
		report.StubDispatcher{Logger: log.Default()},
		notifier(), to, flagEmailSubject)
	if err != nil {
		return err
	}

	if flagEmailHTML != "" {
		if err := os.WriteFile(flagEmailHTML, []byte(e.HTML), 0o644); err != nil { //nolint:gosec // report body is not secret
			return fmt.Errorf("writing html: %w", err)
		}
		log.Info("wrote email body", "file", flagEmailHTML)
	}

	if flagEmailPreview {
		body, err := report.MarkdownPreview(e.HTML)
		if err != nil {
			return err
		}
		fmt.Printf("\n  To: %s\n  Subject: %s\n\n%s", e.To, e.Subject, body)
	}
	return nil
}
