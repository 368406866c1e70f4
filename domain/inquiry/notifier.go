package inquiry

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/psychsphere/backend/internal/log"
	"github.com/psychsphere/backend/internal/models"
)

// MailSender is the slice of pkg/mailer the notifier needs.
type MailSender interface {
	Enabled() bool
	Send(subject, htmlBody, textBody string) error
}

// Notifier announces newly stored inquiries. Implementations are best-effort:
// they run on a background goroutine and their failures never reach the
// request that triggered them.
type Notifier interface {
	NotifyNewInquiry(inquiry *models.Inquiry)
}

type mailNotifier struct {
	sender MailSender
	logger *log.Logger
}

func NewMailNotifier(sender MailSender, logger *log.Logger) Notifier {
	return &mailNotifier{sender: sender, logger: logger}
}

func (n *mailNotifier) NotifyNewInquiry(inquiry *models.Inquiry) {
	if n.sender == nil || !n.sender.Enabled() {
		// Notification transport not configured: deliberate no-op.
		return
	}

	subject := fmt.Sprintf("New PsychSphere Inquiry from %s", inquiry.Name)

	if err := n.sender.Send(subject, renderInquiryHTML(inquiry), renderInquiryText(inquiry)); err != nil {
		n.logger.Error("Failed to send inquiry notification", "error", err)
		return
	}

	n.logger.Info("Inquiry notification sent", "name", inquiry.Name)
}

var inquiryEmailTemplate = template.Must(template.New("inquiry_notification").Parse(`<h2>New Inquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Newsletter:</strong> {{.Newsletter}}</p>
<p><strong>Source:</strong> {{.Source}}</p>
<hr/>
<p>{{.Message}}</p>
`))

type inquiryEmailData struct {
	Name       string
	Email      string
	Phone      string
	Newsletter string
	Source     string
	Message    string
}

func newInquiryEmailData(inquiry *models.Inquiry) inquiryEmailData {
	phone := inquiry.Phone
	if phone == "" {
		phone = "-"
	}

	newsletter := "No"
	if inquiry.NewsletterOptIn {
		newsletter = "Yes"
	}

	source := inquiry.Source
	if source == "" {
		source = DefaultSource
	}

	return inquiryEmailData{
		Name:       inquiry.Name,
		Email:      inquiry.Email,
		Phone:      phone,
		Newsletter: newsletter,
		Source:     source,
		Message:    inquiry.Message,
	}
}

func renderInquiryHTML(inquiry *models.Inquiry) string {
	var buf bytes.Buffer
	if err := inquiryEmailTemplate.Execute(&buf, newInquiryEmailData(inquiry)); err != nil {
		return ""
	}
	return buf.String()
}

func renderInquiryText(inquiry *models.Inquiry) string {
	data := newInquiryEmailData(inquiry)

	return fmt.Sprintf(
		"New Inquiry\n\nName: %s\nEmail: %s\nPhone: %s\nNewsletter: %s\nSource: %s\n\n%s\n",
		data.Name, data.Email, data.Phone, data.Newsletter, data.Source, data.Message,
	)
}
