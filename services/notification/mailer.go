package notification

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPMailer sends mail through an authenticated SMTP relay.
type SMTPMailer struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

func NewSMTPMailer(host string, port int, user, password, fromName string) (*SMTPMailer, error) {
	if host == "" || user == "" {
		return nil, fmt.Errorf("smtp mailer: host and user are required")
	}
	return &SMTPMailer{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: user,
	}, nil
}

func (c *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m := mail.NewMsg()
	if err := m.FromFormat(c.fromName, c.fromEmail); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{ServerName: c.host}),
	)
	if err != nil {
		return fmt.Errorf("smtp client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send (host=%s port=%d): %w", c.host, c.port, err)
	}
	return nil
}
