package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/startupcalc/internal/cli"
)

type recorder struct {
	titles   []string
	messages []string
}

func (r *recorder) Notify(title, message string) {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
}

type captureDispatcher struct {
	sent []Email
	err  error
}

func (c *captureDispatcher) Dispatch(_ context.Context, e Email) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, e)
	return nil
}

func TestNewEmail(t *testing.T) {
	e, err := NewEmail(" Asha <asha@example.com> ", "", "Chai Point", "<p>x</p>")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", e.To)
	assert.Equal(t, "Chai Point Startup Cost Analysis", e.Subject)
	require.NoError(t, uuid.Validate(e.ID))

	e2, err := NewEmail("a@b.co", "  Custom  ", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Custom", e2.Subject)
	assert.NotEqual(t, e.ID, e2.ID)

	assert.Equal(t, "Your Startup Cost Analysis", DefaultSubject(" "))
}

func TestNewEmail_InvalidRecipient(t *testing.T) {
	_, err := NewEmail("", "", "", "")
	assert.ErrorIs(t, err, ErrNoRecipient)

	_, err = NewEmail("not an address", "", "", "")
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	s := &FileSink{Dir: dir}

	require.NoError(t, s.Save("../escape.pdf", []byte("data")))
	assert.Equal(t, filepath.Join(dir, "escape.pdf"), s.LastPath)

	got, err := os.ReadFile(s.LastPath)
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}

func TestExportPDF(t *testing.T) {
	dir := t.TempDir()
	sink := &FileSink{Dir: dir}
	var n recorder

	rep := Build("Chai Point", testCatalog(), testValues(), fixedNow)
	name, err := ExportPDF(rep, NewPDFRenderer(cli.DefaultMoney()), sink, &n)
	require.NoError(t, err)

	assert.Equal(t, "Chai_Point_Startup_Costs.pdf", name)
	assert.FileExists(t, filepath.Join(dir, name))
	assert.Equal(t, []string{DownloadTitle}, n.titles)
}

func TestSendEmail(t *testing.T) {
	var d captureDispatcher
	var n recorder
	rep := Build("", testCatalog(), testValues(), fixedNow)

	e, err := SendEmail(context.Background(), rep, MarkupRenderer{Money: cli.DefaultMoney()}, &d, &n, "x@y.in", "")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, "Your Startup Cost Analysis", e.Subject)
	assert.Contains(t, e.HTML, "Cost Summary")
	assert.Equal(t, []string{"Your startup cost analysis has been sent to x@y.in."}, n.messages)
}

func TestSendEmail_DispatchFailure(t *testing.T) {
	boom := errors.New("boom")
	d := captureDispatcher{err: boom}
	var n recorder

	_, err := SendEmail(context.Background(), Build("", testCatalog(), nil, fixedNow),
		MarkupRenderer{Money: cli.DefaultMoney()}, &d, &n, "x@y.in", "")
	require.ErrorIs(t, err, boom)
	assert.Empty(t, n.titles)
}

func TestStubDispatcher_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, StubDispatcher{}.Dispatch(ctx, Email{To: "a@b.c"}), context.Canceled)
}

func TestShare(t *testing.T) {
	var copied string
	cb := func(s string) error { copied = s; return nil }
	var n recorder

	require.NoError(t, Share(cb, "https://example.com/calc", &n))
	assert.Equal(t, "https://example.com/calc", copied)
	assert.Equal(t, []string{ShareTitle}, n.titles)

	failing := func(string) error { return errors.New("no clipboard") }
	require.Error(t, Share(failing, "", &n))
	assert.Len(t, n.titles, 1)
}
