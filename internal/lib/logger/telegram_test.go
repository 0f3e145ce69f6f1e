package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgendorBridge/internal/lib/sl"
)

type recordingSender struct {
	messages []string
}

func (s *recordingSender) SendMessage(msg string) {
	s.messages = append(s.messages, msg)
}

func newSyncLogger(buf *bytes.Buffer, sender Sender) *slog.Logger {
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tg := NewTelegramHandler(sender, slog.LevelError)
	tg.async = false
	return slog.New(&fanout{primary: base.Handler(), alert: tg})
}

func TestTelegramHandler_ForwardsOnlyErrors(t *testing.T) {
	var buf bytes.Buffer
	sender := &recordingSender{}
	log := newSyncLogger(&buf, sender).With(sl.Module("agendor"))

	log.Info("person created", slog.Int64("id", 10))
	log.Error("create person", sl.Err(errors.New("agendor returned 500")))

	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "ERROR: create person")
	assert.Contains(t, sender.messages[0], "module: agendor")
	assert.Contains(t, sender.messages[0], "error: agendor returned 500")

	assert.Contains(t, buf.String(), "person created")
	assert.Contains(t, buf.String(), "create person")
}

func TestTelegramHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	sender := &recordingSender{}
	log := newSyncLogger(&buf, sender).WithGroup("req")

	log.Error("failed", slog.String("path", "/api/agendor/deal/update"))

	require.Len(t, sender.messages, 1)
	assert.Contains(t, sender.messages[0], "req.path: /api/agendor/deal/update")
}

func TestSetupTelegramHandler_NilSender(t *testing.T) {
	base := slog.Default()
	assert.Same(t, base, SetupTelegramHandler(base, nil, slog.LevelError))
}
