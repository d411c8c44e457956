package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
	"github.com/genie-capital/algee-gateway/internal/core/ports"
)

// DefaultWorkingSetLimit bounds how many results one backend retrieval
// may bring into the cache.
const DefaultWorkingSetLimit = 1000

var errNewerFetchIssued = errors.New("a newer fetch was issued before this one resolved")

// ResultsQueryUseCase owns the cached working set of scoring results and
// composes filter -> sort -> paginate -> summarize over it. The working
// set is fetched from the backend once and replaced wholesale; every
// query interaction after that runs locally.
//
// Overlapping fetches are fenced with a monotonically increasing token:
// only the response matching the latest issued token may touch the cache,
// stale responses are discarded.
type ResultsQueryUseCase struct {
	backend         ports.ScoringBackend
	observer        ports.CacheObserver
	workingSetLimit int

	mu       sync.Mutex
	cache    []domain.Result
	cached   bool
	loading  bool
	lastErr  error
	fetchSeq uint64
}

func NewResultsQueryUseCase(backend ports.ScoringBackend, workingSetLimit int, observer ports.CacheObserver) *ResultsQueryUseCase {
	if workingSetLimit <= 0 {
		workingSetLimit = DefaultWorkingSetLimit
	}
	if observer == nil {
		observer = NopCacheObserver{}
	}
	return &ResultsQueryUseCase{
		backend:         backend,
		observer:        observer,
		workingSetLimit: workingSetLimit,
	}
}

// Fetch serves the criteria from the cached working set when possible.
// When the cache is cold or forceRefresh is set, it performs exactly one
// backend retrieval (page=1, limit=workingSetLimit, all locally-filterable
// fields unset) and replaces the cache on success. A failed retrieval
// records the error and leaves any previous cache untouched.
func (uc *ResultsQueryUseCase) Fetch(ctx context.Context, criteria domain.QueryCriteria, forceRefresh bool) (*domain.PageView, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	if uc.cached && !forceRefresh {
		view := uc.buildViewLocked(criteria)
		uc.mu.Unlock()
		uc.observer.CacheHit()
		return view, nil
	}
	// A forced refresh drops the stale working set before going to the
	// network; a plain cold fetch has nothing to drop.
	uc.cache = nil
	uc.cached = false
	uc.fetchSeq++
	token := uc.fetchSeq
	uc.loading = true
	uc.lastErr = nil
	uc.mu.Unlock()

	uc.observer.CacheMiss()

	page, err := uc.backend.ListResults(ctx, ports.ListResultsParams{
		Page:  1,
		Limit: uc.workingSetLimit,
	})

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if token != uc.fetchSeq {
		// A newer fetch owns the loading flag and the cache now.
		uc.observer.FetchDiscarded()
		return nil, domain.WrapError(domain.ErrSuperseded, "fetch results", errNewerFetchIssued)
	}
	uc.loading = false

	if err != nil {
		uc.lastErr = err
		return nil, err
	}

	uc.cache = page.Results
	uc.cached = true
	uc.observer.WorkingSetSize(len(uc.cache))
	return uc.buildViewLocked(criteria), nil
}

// InstantSearch runs the pipeline against an already-cached working set.
// It never touches the network; a cold cache is reported as such so the
// caller can tell "not ready" from "no matches".
func (uc *ResultsQueryUseCase) InstantSearch(criteria domain.QueryCriteria) (*domain.PageView, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.cached {
		return nil, domain.WrapError(domain.ErrCacheNotReady, "instant search",
			fmt.Errorf("no working set has been fetched"))
	}
	view := uc.buildViewLocked(criteria)
	uc.observer.CacheHit()
	return view, nil
}

// Refresh invalidates the cache and forces a fresh retrieval.
func (uc *ResultsQueryUseCase) Refresh(ctx context.Context, criteria domain.QueryCriteria) (*domain.PageView, error) {
	uc.mu.Lock()
	uc.cache = nil
	uc.cached = false
	uc.mu.Unlock()
	uc.observer.CacheRefresh()
	return uc.Fetch(ctx, criteria, true)
}

// FilteredWorkingSet returns the filtered and sorted (but not paginated)
// working set, for consumers like export that need the whole match.
func (uc *ResultsQueryUseCase) FilteredWorkingSet(criteria domain.QueryCriteria) ([]domain.Result, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.cached {
		return nil, domain.WrapError(domain.ErrCacheNotReady, "filtered working set",
			fmt.Errorf("no working set has been fetched"))
	}
	filtered := FilterResults(uc.cache, criteria)
	return SortResults(filtered, criteria.SortBy, criteria.SortOrder), nil
}

// State reports the observable cache flags.
func (uc *ResultsQueryUseCase) State() ports.CacheState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return ports.CacheState{
		Loading: uc.loading,
		Cached:  uc.cached,
		Err:     uc.lastErr,
	}
}

// buildViewLocked runs the full pipeline against one consistent snapshot
// of the cache. Summary stats cover the filtered set before pagination.
func (uc *ResultsQueryUseCase) buildViewLocked(criteria domain.QueryCriteria) *domain.PageView {
	start := time.Now()

	filtered := FilterResults(uc.cache, criteria)
	sorted := SortResults(filtered, criteria.SortBy, criteria.SortOrder)
	pageSlice, pagination := Paginate(sorted, criteria.Page, criteria.Limit)
	summary := Summarize(filtered)

	uc.observer.ObservePipeline(time.Since(start))
	return &domain.PageView{
		Results:    pageSlice,
		Pagination: pagination,
		Summary:    summary,
	}
}

// NopCacheObserver drops all signals.
type NopCacheObserver struct{}

func (NopCacheObserver) CacheHit()                     {}
func (NopCacheObserver) CacheMiss()                    {}
func (NopCacheObserver) CacheRefresh()                 {}
func (NopCacheObserver) FetchDiscarded()               {}
func (NopCacheObserver) ObservePipeline(time.Duration) {}
func (NopCacheObserver) WorkingSetSize(int)            {}
