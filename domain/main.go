package domain

import (
	"github.com/psychsphere/backend/config"
	"github.com/psychsphere/backend/domain/inquiry"
	"github.com/psychsphere/backend/domain/monitoring"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	var cache monitoring.Cache
	if appConfig.Cache != nil {
		cache = appConfig.Cache
	}

	appConfig.RouterService.MountController(
		monitoring.NewMonitoringControllerFactory(appConfig.Store, config.IsDatabaseURLSet(), appConfig.Logger, cache).CreateController(),
	)

	notifier := inquiry.NewMailNotifier(appConfig.Mailer, appConfig.Logger)
	appConfig.RouterService.MountController(
		inquiry.NewInquiryServiceFactory(appConfig.Store, appConfig.Logger, notifier).CreateController(),
	)
}
