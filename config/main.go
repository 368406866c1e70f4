package config

import (
	"context"
	"os"
	"time"

	"github.com/psychsphere/backend/config/router"
	"github.com/psychsphere/backend/internal/log"
	"github.com/psychsphere/backend/internal/store"
	"github.com/psychsphere/backend/pkg/mailer"
)

type ApplicationConfig struct {
	Store           *store.Store
	RouterService   *router.RouterService
	Logger          *log.Logger
	Cache           Cache
	Mailer          *mailer.Mailer
	Settings        *AppSettings
	TracingShutdown func(context.Context) error
}

type AppSettings struct {
	RequestTimeout time.Duration
}

func NewAppSettings() *AppSettings {
	settings := &AppSettings{
		RequestTimeout: 30 * time.Second,
	}

	if timeoutStr := os.Getenv("REQUEST_TIMEOUT"); timeoutStr != "" {
		if parsed, err := time.ParseDuration(timeoutStr); err == nil && parsed > 0 {
			settings.RequestTimeout = parsed
		}
	}

	return settings
}

func (ac *ApplicationConfig) Cleanup() {
	if ac.TracingShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ac.TracingShutdown(ctx); err != nil {
			ac.Logger.Error("Failed to shutdown tracer provider", "error", err)
		}
	}

	if ac.Store != nil {
		CloseDatabase(ac.Store, ac.Logger)
	}

	if ac.Cache != nil {
		CloseCache(ac.Cache, ac.Logger)
	}

	ac.Logger.Info("Application cleanup completed")
}

func LoadApplicationConfiguration(logger *log.Logger) (*ApplicationConfig, error) {
	InitializeEnvFile(logger)

	tracingShutdown, err := SetupTracing(logger)
	if err != nil {
		return nil, err
	}

	st := NewDatabaseOrNil(logger)
	cache := NewCacheConfig().NewCacheOrNil(logger)
	appSettings := NewAppSettings()

	routerService := router.CreateRouterService(logger, &router.RouterConfig{
		RequestTimeout: appSettings.RequestTimeout,
	})

	logger.Info("Application configuration loaded successfully")

	return &ApplicationConfig{
		Store:           st,
		RouterService:   routerService,
		Logger:          logger,
		Cache:           cache,
		Mailer:          mailer.New(NewMailerSettings(logger)),
		Settings:        appSettings,
		TracingShutdown: tracingShutdown,
	}, nil
}

// IsDatabaseURLSet reports whether a document store connection string was
// provided, for the diagnostics endpoint.
func IsDatabaseURLSet() bool {
	return sanitizeEnv(GetValueFromEnvironmentVariable("DATABASE_URL", "")) != ""
}
