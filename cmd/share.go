package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/startupcalc/internal/config"
	"github.com/theirongolddev/startupcalc/internal/report"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Copy the calculator link to the clipboard",
	RunE:  runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
}

func runShare(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	url := cfg.General.ShareURL
	if url == "" {
		url = report.ProductURL
	}
	if err := report.Share(report.SystemClipboard, url, notifier()); err != nil {
		// Still give the user something to paste.
		log.Warn("clipboard unavailable", "err", err)
		fmt.Println(url)
		return err
	}
	return nil
}
