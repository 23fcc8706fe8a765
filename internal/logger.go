package internal

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// redactedKeys never reach the log output. Card data only passes through as
// gateway tokens, but those are still single-use secrets.
var redactedKeys = map[string]bool{
	"payment_token":  true,
	"authorization":  true,
	"password":       true,
	"secret_key":     true,
	"access_token":   true,
	"refresh_token":  true,
	"twilio_token":   true,
	"openai_api_key": true,
}

// NewLogger builds the process logger. Production logs are JSON with RFC3339Nano
// timestamps; everything else uses the text handler. Both redact secrets and
// mask payment links, which grant access to pay an invoice.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	var h slog.Handler

	var l = new(slog.LevelVar) // Info by default
	switch level {
	case "debug":
		l.Set(slog.LevelDebug)
	case "warn":
		l.Set(slog.LevelWarn)
	case "error":
		l.Set(slog.LevelError)
	case "info":
	default:
		slog.Default().Warn("Invalid log level. Using default level: info", slog.String("value", level))
	}

	switch env {
	case "prod":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: l,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && len(groups) == 0 {
					return slog.String("time", a.Value.Time().Format(time.RFC3339Nano))
				}
				return scrubAttr(groups, a)
			},
		})
	default:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: l, ReplaceAttr: scrubAttr})
	}

	return slog.New(h).With(slog.String("app", "tenancy"))
}

func scrubAttr(_ []string, a slog.Attr) slog.Attr {
	switch {
	case redactedKeys[strings.ToLower(a.Key)]:
		return slog.String(a.Key, "[REDACTED]")
	case a.Key == "payment_link":
		return slog.String(a.Key, maskLink(a.Value.String()))
	}
	return a
}

// maskLink keeps enough of a payment link to correlate log lines.
func maskLink(link string) string {
	if len(link) <= 4 {
		return "****"
	}
	return link[:4] + strings.Repeat("*", len(link)-4)
}
