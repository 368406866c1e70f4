package constants

import "time"

// Inquiry listing defaults.
const (
	// DefaultListLimit is the number of inquiry records returned when the
	// caller does not pass an explicit limit.
	DefaultListLimit = 50
	// MaxDiagnosticCollections caps how many collection names the /test
	// endpoint reports.
	MaxDiagnosticCollections = 10
)

// DefaultHTTPPort is the listening port used when PORT is not set.
const DefaultHTTPPort = "8000"

// SMTP defaults.
const (
	DefaultSMTPPort = 587
	// SMTPDialTimeout bounds the whole SMTP session so a stuck transport
	// cannot pin the background notification goroutine forever.
	SMTPDialTimeout = 15 * time.Second
)
