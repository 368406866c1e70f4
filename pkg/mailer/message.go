package mailer

import (
	"fmt"
	"net/mail"
	"strings"
)

const multipartBoundary = "----=_PsychSphereBoundary"

// buildMessage assembles a multipart/alternative message with a plain-text
// part and, when provided, an HTML part.
func buildMessage(settings *Settings, subject, htmlBody, textBody string) string {
	from := (&mail.Address{Name: settings.FromName, Address: settings.FromAddress}).String()

	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", settings.ToAddress)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", multipartBoundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", multipartBoundary)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")

	if htmlBody != "" {
		fmt.Fprintf(&b, "--%s\r\n", multipartBoundary)
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(htmlBody)
		b.WriteString("\r\n")
	}

	fmt.Fprintf(&b, "--%s--\r\n", multipartBoundary)

	return b.String()
}
