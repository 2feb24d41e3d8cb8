//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Igaki12/news-network-api/infrastructure/config"
	"github.com/Igaki12/news-network-api/pkg/auth"
)

// superSet collects every provider in the graph
var superSet = wire.NewSet(
	provideLogger,
	provideTokenConfig,
	auth.NewTokenIssuer,
	auth.NewTokenValidator,
	provideAccountStore,
	provideFetcher,
	provideDatasetService,
	provideQuizService,
	provideAuthService,
	provideRouter,
	newApplication,
)

// InitializeApplication builds the full application graph
func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(superSet)
	return nil, nil, nil
}
