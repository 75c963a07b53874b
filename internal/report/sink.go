package report

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrNoRecipient is returned when an email has no usable recipient address.
var ErrNoRecipient = errors.New("email recipient is required")

// Toast texts shown after each action completes.
const (
	DownloadTitle   = "Download Started"
	DownloadMessage = "Your PDF is being generated and will download shortly."
	EmailTitle      = "Email Sent"
	ShareTitle      = "Link Copied"
	ShareMessage    = "The link to this calculator has been copied to your clipboard."
)

// EmailMessage is the confirmation body after a dispatch to addr.
func EmailMessage(addr string) string {
	return fmt.Sprintf("Your startup cost analysis has been sent to %s.", addr)
}

// Sink accepts a finished document.
type Sink interface {
	Save(filename string, data []byte) error
}

// FileSink writes documents into Dir, creating it if needed.
type FileSink struct {
	Dir string

	// LastPath is the location of the most recent successful Save.
	LastPath string
}

// Save writes data to Dir/filename.
func (s *FileSink) Save(filename string, data []byte) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // exported documents are meant to be shared
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	s.LastPath = path
	return nil
}

// Notifier shows a short, fire-and-forget message to the user.
type Notifier interface {
	Notify(title, message string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(title, message string)

// Notify calls f.
func (f NotifierFunc) Notify(title, message string) { f(title, message) }

// LogNotifier prints notifications through a structured logger.
type LogNotifier struct {
	Logger *log.Logger
}

// Notify logs the message at info level.
func (n LogNotifier) Notify(title, message string) {
	logger := n.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Info(title, "msg", message)
}

// Email is a composed message ready for dispatch.
type Email struct {
	ID      string // Message-ID local part
	To      string
	Subject string
	HTML    string
}

// DefaultSubject returns the subject line used when the user gives none.
func DefaultSubject(businessName string) string {
	name := strings.TrimSpace(businessName)
	if name == "" {
		name = "Your"
	}
	return name + " Startup Cost Analysis"
}

// NewEmail validates the recipient and fills in a default subject.
func NewEmail(to, subject, businessName, html string) (Email, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return Email{}, ErrNoRecipient
	}
	addr, err := mail.ParseAddress(to)
	if err != nil {
		return Email{}, fmt.Errorf("%w: %q: %v", ErrNoRecipient, to, err)
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = DefaultSubject(businessName)
	}
	return Email{
		ID:      uuid.NewString(),
		To:      addr.Address,
		Subject: subject,
		HTML:    html,
	}, nil
}

// Dispatcher delivers an email.
type Dispatcher interface {
	Dispatch(ctx context.Context, e Email) error
}

// StubDispatcher records the message in the log and reports success.
// No mail server is contacted.
type StubDispatcher struct {
	Logger *log.Logger
}

// Dispatch logs e and returns nil unless ctx is already done.
func (d StubDispatcher) Dispatch(ctx context.Context, e Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := d.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Info("email dispatched", "id", e.ID, "to", e.To, "subject", e.Subject, "bytes", len(e.HTML))
	return nil
}

// Clipboard writes text to the system clipboard.
type Clipboard func(text string) error

// SystemClipboard uses the platform clipboard.
var SystemClipboard Clipboard = clipboard.WriteAll

// Share copies url to the clipboard and notifies on success.
func Share(cb Clipboard, url string, n Notifier) error {
	if url == "" {
		url = ProductURL
	}
	if err := cb(url); err != nil {
		return fmt.Errorf("copying link: %w", err)
	}
	if n != nil {
		n.Notify(ShareTitle, ShareMessage)
	}
	return nil
}
