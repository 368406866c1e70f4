package config

import (
	"strconv"

	"github.com/psychsphere/backend/internal/log"
	"github.com/psychsphere/backend/pkg/constants"
	"github.com/psychsphere/backend/pkg/mailer"
)

const defaultFromAddress = "no-reply@psychsphere.local"

// NewMailerSettings reads the notification configuration once at startup.
// Absent host or recipient leaves the mailer disabled, which the Notifier
// treats as a deliberate no-op rather than an error.
func NewMailerSettings(logger *log.Logger) *mailer.Settings {
	username := sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_USER", ""))

	fromAddress := sanitizeEnv(GetValueFromEnvironmentVariable("FROM_EMAIL", ""))
	if fromAddress == "" {
		fromAddress = username
	}
	if fromAddress == "" {
		fromAddress = defaultFromAddress
	}

	toAddress := sanitizeEnv(GetValueFromEnvironmentVariable("TO_EMAIL", ""))
	if toAddress == "" {
		toAddress = sanitizeEnv(GetValueFromEnvironmentVariable("OWNER_EMAIL", ""))
	}

	port := constants.DefaultSMTPPort
	if raw := sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_PORT", "")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			logger.Warn("Invalid SMTP_PORT; using default", "value", raw, "default", constants.DefaultSMTPPort)
		} else {
			port = parsed
		}
	}

	settings := &mailer.Settings{
		Host:        sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_HOST", "")),
		Port:        port,
		Username:    username,
		Password:    GetValueFromEnvironmentVariable("SMTP_PASS", ""),
		FromName:    sanitizeEnv(GetValueFromEnvironmentVariable("FROM_NAME", "PsychSphere Inquiries")),
		FromAddress: fromAddress,
		ToAddress:   toAddress,
		DialTimeout: constants.SMTPDialTimeout,
	}

	if settings.Host == "" || settings.ToAddress == "" {
		logger.Info("SMTP not configured; inquiry notifications disabled")
	} else {
		logger.Info("SMTP notifications configured", "host", settings.Host, "port", settings.Port)
	}

	return settings
}
