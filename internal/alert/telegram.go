package alert

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"

	"AgendorBridge/internal/lib/sl"
)

const maxMessageLength = 4000

// TgAlert posts service alerts to a single admin chat.
type TgAlert struct {
	log     *slog.Logger
	api     *tgbotapi.Bot
	adminId int64
	prefix  string
}

func NewTgAlert(apiKey string, adminId int64, prefix string, log *slog.Logger) (*TgAlert, error) {
	if adminId == 0 {
		return nil, fmt.Errorf("telegram admin id is not set")
	}

	api, err := tgbotapi.NewBot(apiKey, &tgbotapi.BotOpts{
		RequestOpts: &tgbotapi.RequestOpts{
			Timeout: 10 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}

	return &TgAlert{
		log:     log.With(sl.Module("alert.telegram")),
		api:     api,
		adminId: adminId,
		prefix:  prefix,
	}, nil
}

func (t *TgAlert) BotName() string {
	return t.api.Username
}

// SendMessage posts msg as plain text. Failures are logged at debug level so
// they never turn into alerts themselves.
func (t *TgAlert) SendMessage(msg string) {
	text := Compose(t.prefix, msg)
	if text == "" {
		return
	}
	if _, err := t.api.SendMessage(t.adminId, text, &tgbotapi.SendMessageOpts{}); err != nil {
		t.log.With(
			slog.Int64("id", t.adminId),
		).Debug("sending alert", sl.Err(err))
	}
}

// Compose prefixes msg and trims it to what Telegram accepts.
func Compose(prefix, msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return ""
	}
	if prefix != "" {
		msg = "[" + prefix + "] " + msg
	}
	if len(msg) > maxMessageLength {
		msg = msg[:maxMessageLength] + "…"
	}
	return msg
}
