package di

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Igaki12/news-network-api/application/services"
	"github.com/Igaki12/news-network-api/domain/account"
	"github.com/Igaki12/news-network-api/infrastructure/config"
	"github.com/Igaki12/news-network-api/infrastructure/dataset"
	"github.com/Igaki12/news-network-api/infrastructure/persistence/sqlite"
	"github.com/Igaki12/news-network-api/interfaces/http/rest"
	"github.com/Igaki12/news-network-api/interfaces/http/rest/handlers"
	"github.com/Igaki12/news-network-api/pkg/auth"
)

// Application holds the assembled object graph
type Application struct {
	Config  *config.Config
	Logger  *zap.Logger
	Router  http.Handler
	Quizzes *services.QuizService
}

// newApplication bundles the graph roots
func newApplication(
	cfg *config.Config,
	logger *zap.Logger,
	router http.Handler,
	quizzes *services.QuizService,
) *Application {
	return &Application{
		Config:  cfg,
		Logger:  logger,
		Router:  router,
		Quizzes: quizzes,
	}
}

// provideLogger builds the zap logger from config
func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// provideTokenConfig derives signing parameters from config
func provideTokenConfig(cfg *config.Config) auth.TokenConfig {
	return auth.TokenConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
	}
}

// provideAccountStore opens the SQLite store and seeds the demo accounts
func provideAccountStore(cfg *config.Config, logger *zap.Logger) (account.Store, func(), error) {
	store, err := sqlite.NewAccountStore(cfg.AccountsDBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Seed(context.Background(), account.SeedAccounts()); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("seed accounts: %w", err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			logger.Warn("close account store", zap.Error(err))
		}
	}
	return store, cleanup, nil
}

// provideFetcher builds the sample dataset fetcher
func provideFetcher() dataset.Fetcher {
	return dataset.NewHTTPFetcher()
}

// provideDatasetService builds the dataset service
func provideDatasetService(cfg *config.Config, fetcher dataset.Fetcher, logger *zap.Logger) *services.DatasetService {
	return services.NewDatasetService(fetcher, cfg.SampleDatasetURL, cfg.EntityCap, logger)
}

// provideQuizService builds the quiz service
func provideQuizService(cfg *config.Config, datasets *services.DatasetService, logger *zap.Logger) *services.QuizService {
	return services.NewQuizService(datasets, cfg.ExamTimeLimit, logger)
}

// provideAuthService builds the auth service
func provideAuthService(store account.Store, issuer *auth.TokenIssuer, logger *zap.Logger) *services.AuthService {
	return services.NewAuthService(store, issuer, logger)
}

// provideRouter assembles handlers and the routing tree
func provideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	validator *auth.TokenValidator,
	authSvc *services.AuthService,
	datasets *services.DatasetService,
	quizzes *services.QuizService,
) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Config:         cfg,
		Logger:         logger,
		TokenValidator: validator,
		AuthHandler:    handlers.NewAuthHandler(authSvc, logger),
		DatasetHandler: handlers.NewDatasetHandler(datasets, cfg.MaxUploadBytes, logger),
		GraphHandler:   handlers.NewGraphHandler(datasets, logger),
		QuizHandler:    handlers.NewQuizHandler(quizzes, logger),
	})
}
