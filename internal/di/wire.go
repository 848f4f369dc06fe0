//go:build wireinject
// +build wireinject

package di

import (
	"FinAdvisor/pkg/config"
	"FinAdvisor/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideCache,
		ProvideYahooClient,
		ProvideRateProvider,

		// Repositories
		ProvidePriceProvider,

		// Domain services
		ProvideProjector,
		ProvideConverter,
		ProvideClassifier,

		// Use cases
		ProvideDashboardUseCase,
		ProvideSeriesUseCase,

		// HTTP
		ProvideRateLimiter,
		ProvideAPIHandler,
		ProvidePageHandler,
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
