package report

import (
	"bytes"
	"context"
	"fmt"
)

// ExportPDF renders rep, hands it to sink under the derived filename and
// notifies n. It returns the filename.
func ExportPDF(rep Report, r PDFRenderer, sink Sink, n Notifier) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, rep); err != nil {
		return "", err
	}

	name := Filename(rep.BusinessName)
	if err := sink.Save(name, buf.Bytes()); err != nil {
		return "", fmt.Errorf("saving pdf: %w", err)
	}
	if n != nil {
		n.Notify(DownloadTitle, DownloadMessage)
	}
	return name, nil
}

// SendEmail renders rep as markup, composes the message and dispatches it.
func SendEmail(ctx context.Context, rep Report, r MarkupRenderer, d Dispatcher, n Notifier, to, subject string) (Email, error) {
	html, err := r.String(rep)
	if err != nil {
		return Email{}, err
	}
	e, err := NewEmail(to, subject, rep.BusinessName, html)
	if err != nil {
		return Email{}, err
	}
	if err := d.Dispatch(ctx, e); err != nil {
		return Email{}, fmt.Errorf("dispatching email: %w", err)
	}
	if n != nil {
		n.Notify(EmailTitle, EmailMessage(e.To))
	}
	return e, nil
}
