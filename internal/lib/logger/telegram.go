package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Sender delivers a plain text alert.
type Sender interface {
	SendMessage(msg string)
}

// TelegramHandler formats records as short text messages for an admin chat.
type TelegramHandler struct {
	sender Sender
	level  slog.Level
	attrs  []slog.Attr
	group  string
	async  bool
}

func NewTelegramHandler(sender Sender, level slog.Level) *TelegramHandler {
	return &TelegramHandler{
		sender: sender,
		level:  level,
		async:  true,
	}
}

func (h *TelegramHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *TelegramHandler) Handle(_ context.Context, r slog.Record) error {
	text := h.format(r)
	if h.async {
		go h.sender.SendMessage(text)
	} else {
		h.sender.SendMessage(text)
	}
	return nil
}

func (h *TelegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), h.prefixed(attrs)...)
	return &clone
}

func (h *TelegramHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func (h *TelegramHandler) prefixed(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	out := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, slog.Attr{Key: h.group + "." + a.Key, Value: a.Value})
	}
	return out
}

func (h *TelegramHandler) format(r slog.Record) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s", r.Level.String(), r.Message))
	for _, a := range h.attrs {
		b.WriteString(fmt.Sprintf("\n%s: %s", a.Key, a.Value.String()))
	}
	r.Attrs(func(a slog.Attr) bool {
		for _, p := range h.prefixed([]slog.Attr{a}) {
			b.WriteString(fmt.Sprintf("\n%s: %s", p.Key, p.Value.String()))
		}
		return true
	})
	return b.String()
}
