package monitoring

import (
	"context"

	"github.com/psychsphere/backend/config/router"
	"github.com/psychsphere/backend/internal/log"
	"github.com/psychsphere/backend/pkg/constants"
)

// DocumentStore is the introspection surface the diagnostics endpoint needs.
type DocumentStore interface {
	Name() string
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

type Cache interface {
	Ping(ctx context.Context) error
}

type MessageResponse struct {
	Message string `json:"message"`
}

// DiagnosticsReport mirrors what operators expect from /test: human-readable
// status strings, no stable schema beyond that.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Cache            string   `json:"cache,omitempty"`
}

type MonitoringController struct {
	store          DocumentStore
	databaseURLSet bool
	cache          Cache
	logger         *log.Logger
}

func NewMonitoringController(store DocumentStore, databaseURLSet bool, logger *log.Logger, cache Cache) *router.RESTController {
	ctrl := &MonitoringController{
		store:          store,
		databaseURLSet: databaseURLSet,
		cache:          cache,
		logger:         logger,
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			routerService.AddGetHandler(controller, "", func(c *router.RequestContext) *router.Response {
				return ctrl.root(c)
			})

			routerService.AddGetHandler(controller, "api/hello", func(c *router.RequestContext) *router.Response {
				return ctrl.hello(c)
			})

			routerService.AddGetHandler(controller, "test", func(c *router.RequestContext) *router.Response {
				return ctrl.diagnostics(c)
			})
		},
	)
}

func (ctrl *MonitoringController) root(c *router.RequestContext) *router.Response {
	return router.OK(MessageResponse{Message: "PsychSphere API is running"})
}

func (ctrl *MonitoringController) hello(c *router.RequestContext) *router.Response {
	return router.OK(MessageResponse{Message: "Hello from PsychSphere backend!"})
}

func (ctrl *MonitoringController) diagnostics(c *router.RequestContext) *router.Response {
	logger := router.GetLogger(c)
	logger.Info("Diagnostics endpoint called")

	return router.OK(ctrl.buildReport(c.Request.Context(), logger))
}

func (ctrl *MonitoringController) buildReport(ctx context.Context, logger *log.Logger) DiagnosticsReport {
	report := DiagnosticsReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if ctrl.store != nil {
		report.Database = "✅ Available"

		urlStatus := "❌ Not Set"
		if ctrl.databaseURLSet {
			urlStatus = "✅ Set"
		}
		report.DatabaseURL = &urlStatus

		name := ctrl.store.Name()
		report.DatabaseName = &name
		report.ConnectionStatus = "Connected"

		if names, err := ctrl.store.CollectionNames(ctx); err != nil {
			logger.Error("Failed to list collections", "error", err)
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 80)
		} else {
			if len(names) > constants.MaxDiagnosticCollections {
				names = names[:constants.MaxDiagnosticCollections]
			}
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	if ctrl.cache != nil {
		if err := ctrl.cache.Ping(ctx); err != nil {
			logger.Error("Cache ping failed", "error", err)
			report.Cache = "❌ Unreachable"
		} else {
			report.Cache = "✅ Connected"
		}
	}

	return report
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
