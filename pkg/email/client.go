package email

import (
	"gopkg.in/mail.v2"
)

// Client sends plain text emails through an SMTP relay.
type Client struct {
	dialer *mail.Dialer
	from   string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		dialer: mail.NewDialer(smtpHost, smtpPort, username, password),
		from:   from,
	}
}

// Send delivers msg to the address to with the given subject.
func (c *Client) Send(to, subject, msg string) error {
	return c.dialer.DialAndSend(c.message(to, subject, msg))
}

func (c *Client) message(to, subject, msg string) *mail.Message {
	m := mail.NewMessage()

	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", msg)

	return m
}
