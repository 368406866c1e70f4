package inquiry

import (
	"github.com/psychsphere/backend/config/router"
	"github.com/psychsphere/backend/internal/log"
	"github.com/psychsphere/backend/internal/store"
)

type InquiryServiceFactory interface {
	CreateService() InquiryService
	CreateController() *router.RESTController
}

type DefaultInquiryServiceFactory struct {
	store    *store.Store
	logger   *log.Logger
	notifier Notifier
}

func NewInquiryServiceFactory(st *store.Store, logger *log.Logger, notifier Notifier) InquiryServiceFactory {
	return &DefaultInquiryServiceFactory{
		store:    st,
		logger:   logger,
		notifier: notifier,
	}
}

func (f *DefaultInquiryServiceFactory) CreateService() InquiryService {
	return NewInquiryService(f.logger, NewInquiryRepository(f.store), f.notifier)
}

func (f *DefaultInquiryServiceFactory) CreateController() *router.RESTController {
	return NewInquiryController(f.CreateService())
}
