// Package notify is the user-visible notice surface. Delivery is
// fire-and-forget: callers never learn whether anyone saw the message.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

type Notifier interface {
	Notify(ctx context.Context, message string, kind Kind)
}

type logNotifier struct {
	log *slog.Logger
}

// NewLog returns a Notifier that records notices as structured log lines.
func NewLog(log *slog.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(ctx context.Context, message string, kind Kind) {
	n.log.InfoContext(ctx, "notice", slog.String("kind", string(kind)), slog.String("message", message))
}

type consoleNotifier struct {
	w io.Writer
}

// NewConsole returns a Notifier that prints notices for an interactive user.
func NewConsole(w io.Writer) Notifier {
	return &consoleNotifier{w: w}
}

func (n *consoleNotifier) Notify(_ context.Context, message string, kind Kind) {
	_, _ = fmt.Fprintf(n.w, "[%s] %s\n", kind, message)
}

type noop struct{}

// Noop discards every notice.
func Noop() Notifier { return noop{} }

func (noop) Notify(context.Context, string, Kind) {}
