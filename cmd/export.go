package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/startupcalc/internal/config"
	"github.com/theirongolddev/startupcalc/internal/report"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the cost report as a PDF",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output directory (default: config export dir or $STARTUPCALC_EXPORT_DIR)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	dir := flagExportOut
	if dir == "" {
		dir = config.ExportDir(s.cfg)
	}
	sink := &report.FileSink{Dir: dir}

	if _, err := report.ExportPDF(s.report(), report.NewPDFRenderer(s.pdfMoney), sink, notifier()); err != nil {
		return err
	}
	log.Info("exported", "file", sink.LastPath)
	return nil
}
