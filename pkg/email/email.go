package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"recruitpro-backend/config"
	"recruitpro-backend/pkg/logger"
)

// Sender delivers a single outreach email to one recipient.
type Sender interface {
	Send(to, subject, body string) error
	IsConfigured() bool
}

// SMTPService sends campaign emails via SMTP (Brevo relay by default).
type SMTPService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewSMTPService(cfg *config.Config) *SMTPService {
	return &SMTPService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// campaignTemplate wraps the generated body in a plain branded shell.
// The body arrives as plain text from the AI layer; newlines become <br>.
const campaignTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="content">{{.Body}}</div>
        <div class="footer">
            <p>Sent via RecruitPro talent outreach.</p>
        </div>
    </div>
</body>
</html>`

// Send delivers one email. It is a no-op error when SMTP is not
// configured, so campaign flows can log outcomes without special cases.
func (s *SMTPService) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email: SMTP not configured")
	}

	tmpl, err := template.New("campaign").Parse(campaignTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var html bytes.Buffer
	data := struct{ Body template.HTML }{Body: toHTMLBody(body)}
	if err := tmpl.Execute(&html, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		html.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Log.Info("email sent", "to", to, "subject", subject)
	return nil
}

func (s *SMTPService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

func toHTMLBody(body string) template.HTML {
	escaped := template.HTMLEscapeString(body)
	var out bytes.Buffer
	for _, r := range escaped {
		if r == '\n' {
			out.WriteString("<br>")
			continue
		}
		out.WriteRune(r)
	}
	return template.HTML(out.String())
}
