// Package mailer sends the transactional emails that follow form intake.
// Delivery is best-effort by policy: callers decide what a failed send means,
// this package only reports it.
package mailer

import (
	"context"

	"github.com/wneessen/go-mail"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers one message. Implementations must respect ctx so a slow
// transport cannot hold a request open indefinitely.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender sends through an authenticated SMTP relay (Gmail app password
// in production). Construct once in main and inject where needed.
type SMTPSender struct {
	client   *mail.Client
	from     string
	fromName string
}

func NewSMTPSender(host string, port int, user, password, fromName string) (*SMTPSender, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, err
	}
	return &SMTPSender{client: client, from: user, fromName: fromName}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.FromFormat(s.fromName, s.from); err != nil {
		return err
	}
	if err := m.To(msg.To); err != nil {
		return err
	}
	m.Subject(msg.Subject)
	if msg.HTML != "" {
		m.SetBodyString(mail.TypeTextHTML, msg.HTML)
		if msg.Text != "" {
			m.AddAlternativeString(mail.TypeTextPlain, msg.Text)
		}
	} else {
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
	}
	return s.client.DialAndSendWithContext(ctx, m)
}
