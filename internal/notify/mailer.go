package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mailer composes templated emails and hands them to a Sender.
type Mailer struct {
	sender    Sender
	templates *template.Template
}

// NewMailer parses the embedded templates.
func NewMailer(sender Sender) (*Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &Mailer{sender: sender, templates: tmpl}, nil
}

// SendContributionLink emails a contributor their payment link.
func (m *Mailer) SendContributionLink(ctx context.Context, data ContributionLinkEmail) error {
	return m.send(ctx, data.To, data)
}

// SendInvoice emails an invoice to its recipient.
func (m *Mailer) SendInvoice(ctx context.Context, data InvoiceEmail) error {
	return m.send(ctx, data.To, data)
}

func (m *Mailer) send(ctx context.Context, to string, data Template) error {
	if to == "" {
		return ErrInvalidToAddress
	}

	htmlBody, textBody, err := m.render(data.TemplateName(), data)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", data.TemplateName(), err)
	}

	_, err = m.sender.Send(ctx, &Email{
		To:       []string{to},
		Subject:  data.Subject(),
		HTMLBody: htmlBody,
		TextBody: textBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send %s: %w", data.TemplateName(), err)
	}
	return nil
}

func (m *Mailer) render(name string, data any) (string, string, error) {
	if m.templates.Lookup(name) == nil {
		return "", "", ErrTemplateNotFound(name)
	}

	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", "", err
	}

	htmlBody := buf.String()
	return htmlBody, plainText(htmlBody), nil
}

// plainText creates a simple plain text version from HTML.
func plainText(html string) string {
	text := html

	for _, br := range []string{"<br>", "<br/>", "<br />"} {
		text = strings.ReplaceAll(text, br, "\n")
	}
	for _, block := range []string{"</p>", "</h1>", "</h2>", "</h3>"} {
		text = strings.ReplaceAll(text, block, "\n\n")
	}
	text = strings.ReplaceAll(text, "</div>", "\n")

	for strings.Contains(text, "<") && strings.Contains(text, ">") {
		start := strings.Index(text, "<")
		end := strings.Index(text, ">")
		if start < 0 || end <= start {
			break
		}
		text = text[:start] + text[end+1:]
	}

	text = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", "\"",
		"&#34;", "\"",
		"&#39;", "'",
	).Replace(text)

	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
