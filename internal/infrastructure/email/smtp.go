package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// CertificateIssued describes the mail sent to a recipient after issue.
type CertificateIssued struct {
	To            string
	RecipientName string
	ProgramName   string
	VerifyURL     string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPEmailService) SendCertificateIssued(ctx context.Context, n CertificateIssued) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(s.certificateIssuedMessage(n)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPEmailService) certificateIssuedMessage(n CertificateIssued) *gomail.Message {
	subject := fmt.Sprintf("Your certificate for %s", n.ProgramName)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Congratulations, %s!</h2>
			<p>Your certificate for <strong>%s</strong> has been issued.</p>
			<p><a href="%s">View and verify your certificate</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
		</body>
		</html>
	`, html.EscapeString(n.RecipientName), html.EscapeString(n.ProgramName),
		html.EscapeString(n.VerifyURL), html.EscapeString(n.VerifyURL))

	plainBody := fmt.Sprintf(`
Congratulations, %s!

Your certificate for %s has been issued.

View and verify it at:
%s
	`, n.RecipientName, n.ProgramName, n.VerifyURL)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}

// NoopEmailService is used when email delivery is disabled.
type NoopEmailService struct{}

func (NoopEmailService) SendCertificateIssued(context.Context, CertificateIssued) error {
	return nil
}
