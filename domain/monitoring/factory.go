package monitoring

import (
	"github.com/psychsphere/backend/config/router"
	"github.com/psychsphere/backend/internal/log"
	"github.com/psychsphere/backend/internal/store"
)

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	store          *store.Store
	databaseURLSet bool
	logger         *log.Logger
	cache          Cache
}

func NewMonitoringControllerFactory(st *store.Store, databaseURLSet bool, logger *log.Logger, cache Cache) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		store:          st,
		databaseURLSet: databaseURLSet,
		logger:         logger,
		cache:          cache,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	// A typed nil pointer must not become a non-nil interface.
	var ds DocumentStore
	if f.store != nil {
		ds = f.store
	}

	return NewMonitoringController(ds, f.databaseURLSet, f.logger, f.cache)
}
