// Package mailer sends notification emails over SMTP. Sending is strictly
// best-effort: an unconfigured mailer is a silent no-op, and STARTTLS is
// attempted only when the server advertises it, falling back to the plain
// channel if the upgrade fails.
package mailer

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

type Settings struct {
	Host     string
	Port     int
	Username string
	Password string

	FromName    string
	FromAddress string
	ToAddress   string

	// DialTimeout bounds the whole SMTP session, not just the dial.
	DialTimeout time.Duration
}

type Mailer struct {
	settings *Settings
}

func New(settings *Settings) *Mailer {
	return &Mailer{settings: settings}
}

// Enabled reports whether enough configuration is present to attempt a send.
// Host and recipient are the two required pieces.
func (m *Mailer) Enabled() bool {
	return m.settings.Host != "" && m.settings.ToAddress != ""
}

// Send delivers a multipart text+HTML message to the configured recipient.
// When the mailer is not configured it does nothing and reports no error.
func (m *Mailer) Send(subject, htmlBody, textBody string) error {
	if !m.Enabled() {
		return nil
	}

	addr := net.JoinHostPort(m.settings.Host, strconv.Itoa(m.settings.Port))

	conn, err := net.DialTimeout("tcp", addr, m.settings.DialTimeout)
	if err != nil {
		return fmt.Errorf("dial smtp server: %w", err)
	}
	defer conn.Close()

	// A single deadline covers handshake, auth, and the message body.
	_ = conn.SetDeadline(time.Now().Add(m.settings.DialTimeout))

	client, err := smtp.NewClient(conn, m.settings.Host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		// Opportunistic upgrade; a failed upgrade is swallowed and the send
		// proceeds on the original channel.
		_ = client.StartTLS(&tls.Config{ServerName: m.settings.Host})
	}

	if m.settings.Username != "" && m.settings.Password != "" {
		auth := smtp.PlainAuth("", m.settings.Username, m.settings.Password, m.settings.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.settings.FromAddress); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}

	if err := client.Rcpt(m.settings.ToAddress); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}

	msg := buildMessage(m.settings, subject, htmlBody, textBody)

	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write message: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}

	return client.Quit()
}
