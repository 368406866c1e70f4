package inquiry

import (
	"github.com/psychsphere/backend/internal/models"
)

// DefaultSource is recorded when a submission does not say where it came from.
const DefaultSource = "website"

type CreateInquiryRequest struct {
	Name            string `json:"name" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Message         string `json:"message" binding:"required,min=5"`
	Source          string `json:"source"`
	NewsletterOptIn bool   `json:"newsletter_opt_in"`
}

type SubmitInquiryResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// InquiryRecord is a stored inquiry as rendered for transport: the
// store-assigned identifier is always a plain string, never a driver type.
type InquiryRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Message         string `json:"message"`
	Source          string `json:"source"`
	NewsletterOptIn bool   `json:"newsletter_opt_in"`
}

type ListInquiriesResponse struct {
	Items []InquiryRecord `json:"items"`
}

// ========================================
// Mappers
// ========================================

func ToInquiryModel(req *CreateInquiryRequest) *models.Inquiry {
	if req == nil {
		return nil
	}

	source := req.Source
	if source == "" {
		source = DefaultSource
	}

	return &models.Inquiry{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Message:         req.Message,
		Source:          source,
		NewsletterOptIn: req.NewsletterOptIn,
	}
}

func ToInquiryRecord(inquiry *models.Inquiry) InquiryRecord {
	if inquiry == nil {
		return InquiryRecord{}
	}

	id := ""
	if !inquiry.ID.IsZero() {
		id = inquiry.ID.Hex()
	}

	return InquiryRecord{
		ID:              id,
		Name:            inquiry.Name,
		Email:           inquiry.Email,
		Phone:           inquiry.Phone,
		Message:         inquiry.Message,
		Source:          inquiry.Source,
		NewsletterOptIn: inquiry.NewsletterOptIn,
	}
}
