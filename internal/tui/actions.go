package tui

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/startupcalc/internal/report"
	"github.com/theirongolddev/startupcalc/internal/tui/theme"
)

func (a App) buildReport() report.Report {
	return report.Build(a.business, a.values.Catalog(), a.values.Snapshot(), a.now())
}

// toastNotifier routes report notifications into the status bar.
func (a *App) toastNotifier(cmd *tea.Cmd) report.Notifier {
	return report.NotifierFunc(func(title, message string) {
		*cmd = a.showToast(title, message, false)
	})
}

func (a *App) exportPDF() tea.Cmd {
	if a.sink == nil {
		return a.showToast("Export Failed", "No export destination configured.", true)
	}

	var cmd tea.Cmd
	_, err := report.ExportPDF(a.buildReport(), report.NewPDFRenderer(a.pdfMoney), a.sink, a.toastNotifier(&cmd))
	if err != nil {
		return a.showToast("Export Failed", err.Error(), true)
	}
	if fs, ok := a.sink.(*report.FileSink); ok && fs.LastPath != "" {
		cmd = a.showToast(report.DownloadTitle, "Saved to "+fs.LastPath, false)
	}
	return cmd
}

func (a *App) share() tea.Cmd {
	if a.clipboard == nil {
		return a.showToast("Copy Failed", "No clipboard available.", true)
	}

	var cmd tea.Cmd
	if err := report.Share(a.clipboard, a.cfg.General.ShareURL, a.toastNotifier(&cmd)); err != nil {
		return a.showToast("Copy Failed", err.Error(), true)
	}
	return cmd
}

// emailValues is heap-allocated so the form's bound pointers survive the
// App being copied on every update.
type emailValues struct {
	to      string
	subject string
}

func (a *App) openEmailForm() tea.Cmd {
	a.emailVals = &emailValues{
		to:      a.cfg.Email.Recipient,
		subject: report.DefaultSubject(a.business),
	}

	a.emailForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recipient").
				Placeholder("founder@example.com").
				Value(&a.emailVals.to).
				Validate(validateRecipient),
			huh.NewInput().
				Title("Subject").
				Value(&a.emailVals.subject),
		).
			Title("Email Report").
			Description("Send your startup cost analysis as an HTML email."),
	).WithShowHelp(true)
	if a.width > 0 {
		a.emailForm = a.emailForm.WithWidth(min(a.width, 72))
	}
	return a.emailForm.Init()
}

func validateRecipient(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("a recipient is required")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return errors.New("not a valid email address")
	}
	return nil
}

func (a App) updateEmailForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.emailForm = nil
		return a, nil
	}

	form, cmd := a.emailForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.emailForm = f
	}

	switch a.emailForm.State {
	case huh.StateCompleted:
		a.emailForm = nil
		cmd = a.sendEmail()
		return a, cmd
	case huh.StateAborted:
		a.emailForm = nil
		return a, nil
	}
	return a, cmd
}

func (a *App) sendEmail() tea.Cmd {
	if a.dispatcher == nil {
		return a.showToast("Email Failed", "No mail dispatcher configured.", true)
	}

	var cmd tea.Cmd
	_, err := report.SendEmail(context.Background(), a.buildReport(),
		report.MarkupRenderer{Money: a.money}, a.dispatcher, a.toastNotifier(&cmd),
		a.emailVals.to, a.emailVals.subject)
	if err != nil {
		return a.showToast("Email Failed", err.Error(), true)
	}
	return cmd
}

func (a App) viewEmailForm() string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(a.emailForm.View() + "\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Render("esc to cancel"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
