package ports

import (
	"context"
	"time"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

// CacheState is the observable state of the result cache orchestrator.
type CacheState struct {
	Loading bool
	Cached  bool
	Err     error
}

// ResultsQueryService is the inbound contract for cached result browsing.
type ResultsQueryService interface {
	Fetch(ctx context.Context, criteria domain.QueryCriteria, forceRefresh bool) (*domain.PageView, error)
	InstantSearch(criteria domain.QueryCriteria) (*domain.PageView, error)
	Refresh(ctx context.Context, criteria domain.QueryCriteria) (*domain.PageView, error)
	FilteredWorkingSet(criteria domain.QueryCriteria) ([]domain.Result, error)
	State() CacheState
}

// ResultLookupService is the inbound contract for reads that bypass the
// cache: per-client accessors, batch-scoped results, comparison, export.
type ResultLookupService interface {
	LatestForClient(ctx context.Context, clientID int) (*domain.Result, error)
	HistoryForClient(ctx context.Context, clientID, page, limit int) (*domain.ResultsPage, error)
	DetailForClient(ctx context.Context, clientID int) (*domain.ClientResultDetail, error)
	ForBatch(ctx context.Context, batchID int, criteria domain.QueryCriteria) (*domain.ResultsPage, error)
	CompareBatches(ctx context.Context, batch1ID, batch2ID int) (*domain.BatchComparison, error)
	Export(ctx context.Context, format string, batchID *int) (data []byte, contentType string, err error)
}

// CacheObserver receives cache and pipeline signals for instrumentation.
type CacheObserver interface {
	CacheHit()
	CacheMiss()
	CacheRefresh()
	FetchDiscarded()
	ObservePipeline(d time.Duration)
	WorkingSetSize(n int)
}
