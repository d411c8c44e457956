package bootstrap

import (
	"github.com/genie-capital/algee-gateway/internal/config"
	"github.com/genie-capital/algee-gateway/internal/core/ports"
	"github.com/genie-capital/algee-gateway/internal/core/usecase"
	"github.com/genie-capital/algee-gateway/internal/infrastructure/resilience"
	"github.com/genie-capital/algee-gateway/internal/infrastructure/scoring"
	"github.com/genie-capital/algee-gateway/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Metrics *metrics.HTTPServerMetrics

	Backend  *scoring.Client
	ResultsQ ports.ResultsQueryService
	LookupQ  ports.ResultLookupService
	Admin    ports.ParameterAdmin
}

func New(cfg config.Config) *App {
	serverMetrics := metrics.NewHTTPServerMetrics(cfg.ServiceName)

	guard := resilience.NewGuard(resilience.Config{
		BreakerEnabled:          cfg.BreakerEnabled,
		BreakerMinRequests:      uint32(cfg.BreakerMinRequests),
		BreakerFailureRatio:     cfg.BreakerFailureRatio,
		BreakerOpenTimeout:      cfg.BreakerOpenTimeout,
		BreakerHalfOpenMaxCalls: uint32(cfg.BreakerHalfOpenMaxCalls),
		RatePerSecond:           cfg.RatePerSecond,
		RateBurst:               cfg.RateBurst,
	})

	backend := scoring.New(cfg.ScoringBaseURL, cfg.ScoringTimeout, guard)

	resultsUC := usecase.NewResultsQueryUseCase(
		backend,
		cfg.WorkingSetLimit,
		serverMetrics.CacheObserver(cfg.ServiceName),
	)
	lookupUC := usecase.NewResultLookupUseCase(backend)

	return &App{
		Config:  cfg,
		Metrics: serverMetrics,

		Backend:  backend,
		ResultsQ: resultsUC,
		LookupQ:  lookupUC,
		Admin:    backend,
	}
}
