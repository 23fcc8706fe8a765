package notify

import (
	"context"
	"log/slog"
)

// Email represents an email message to be sent.
type Email struct {
	To       []string          // Recipient email addresses
	From     string            // Sender address, defaults to the sender's configured address
	Subject  string            // Email subject
	TextBody string            // Plain text body
	HTMLBody string            // HTML body (optional)
	Headers  map[string]string // Custom headers (optional)
}

// Sender defines the interface for sending emails.
type Sender interface {
	// Send sends an email message.
	// Returns the message ID from the provider (if available).
	Send(ctx context.Context, email *Email) (string, error)
}

// LogSender logs emails instead of sending them. Used in development when no
// SMTP server is configured.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) Send(_ context.Context, email *Email) (string, error) {
	s.Logger.Info("email (not sent)",
		"to", email.To,
		"subject", email.Subject,
		"body", email.TextBody,
	)
	return "log", nil
}
