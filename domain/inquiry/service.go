package inquiry

import (
	"context"

	"github.com/psychsphere/backend/internal/log"
	apperrors "github.com/psychsphere/backend/pkg/errors"
)

type InquiryService interface {
	// Submit validates nothing itself (binding already has), persists the
	// inquiry, and schedules a best-effort notification once the insert
	// succeeded.
	Submit(ctx context.Context, req *CreateInquiryRequest) (*SubmitInquiryResponse, error)

	// List returns up to limit stored inquiries with string identifiers.
	List(ctx context.Context, limit int64) (*ListInquiriesResponse, error)
}

type inquiryService struct {
	logger     *log.Logger
	repository InquiryRepository
	notifier   Notifier
}

func NewInquiryService(logger *log.Logger, repository InquiryRepository, notifier Notifier) InquiryService {
	return &inquiryService{logger: logger, repository: repository, notifier: notifier}
}

func (s *inquiryService) Submit(ctx context.Context, req *CreateInquiryRequest) (*SubmitInquiryResponse, error) {
	logger := log.FromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Submit received empty request")
		return nil, apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	inquiry := ToInquiryModel(req)

	id, err := s.repository.Insert(ctx, inquiry)
	if err != nil {
		logger.Error("Failed to store inquiry", "error", err)
		return nil, err
	}

	logger.Info("Inquiry stored", "id", id)

	if s.notifier != nil {
		// Fire-and-forget: the response never waits on, or observes, the
		// notification outcome.
		go s.notifier.NotifyNewInquiry(inquiry)
	}

	return &SubmitInquiryResponse{Status: "ok", ID: id}, nil
}

func (s *inquiryService) List(ctx context.Context, limit int64) (*ListInquiriesResponse, error) {
	logger := log.FromContext(ctx, s.logger)

	inquiries, err := s.repository.List(ctx, limit)
	if err != nil {
		logger.Error("Failed to list inquiries", "error", err)
		return nil, err
	}

	items := make([]InquiryRecord, 0, len(inquiries))
	for _, inquiry := range inquiries {
		items = append(items, ToInquiryRecord(inquiry))
	}

	return &ListInquiriesResponse{Items: items}, nil
}
