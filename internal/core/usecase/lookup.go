package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
	"github.com/genie-capital/algee-gateway/internal/core/ports"
)

// Export formats the backend can render. XLSX is produced locally by the
// gateway and never reaches this use case.
const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

// ResultLookupUseCase covers the reads that bypass the cache entirely:
// each call is one independent round trip to the backend with no local
// post-processing.
type ResultLookupUseCase struct {
	backend ports.ScoringBackend
}

func NewResultLookupUseCase(backend ports.ScoringBackend) *ResultLookupUseCase {
	return &ResultLookupUseCase{backend: backend}
}

func (uc *ResultLookupUseCase) LatestForClient(ctx context.Context, clientID int) (*domain.Result, error) {
	if err := requirePositiveID("client id", clientID); err != nil {
		return nil, err
	}
	return uc.backend.LatestClientResult(ctx, clientID)
}

func (uc *ResultLookupUseCase) HistoryForClient(ctx context.Context, clientID, page, limit int) (*domain.ResultsPage, error) {
	if err := requirePositiveID("client id", clientID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return uc.backend.ClientResultHistory(ctx, clientID, page, limit)
}

func (uc *ResultLookupUseCase) DetailForClient(ctx context.Context, clientID int) (*domain.ClientResultDetail, error) {
	if err := requirePositiveID("client id", clientID); err != nil {
		return nil, err
	}
	return uc.backend.ClientResultDetail(ctx, clientID)
}

// ForBatch relays the caller's criteria to the backend unchanged; batch
// browsing does not go through the local working set.
func (uc *ResultLookupUseCase) ForBatch(ctx context.Context, batchID int, criteria domain.QueryCriteria) (*domain.ResultsPage, error) {
	if err := requirePositiveID("batch id", batchID); err != nil {
		return nil, err
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	page, limit := criteria.Page, criteria.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return uc.backend.ListResults(ctx, ports.ListResultsParams{
		Page:            page,
		Limit:           limit,
		SortBy:          criteria.SortBy,
		SortOrder:       criteria.SortOrder,
		Search:          criteria.Search,
		UploadBatchID:   &batchID,
		MinCreditLimit:  criteria.MinCreditLimit,
		MaxCreditLimit:  criteria.MaxCreditLimit,
		MinInterestRate: criteria.MinInterestRate,
		MaxInterestRate: criteria.MaxInterestRate,
		DateFrom:        criteria.DateFrom,
		DateTo:          criteria.DateTo,
	})
}

func (uc *ResultLookupUseCase) CompareBatches(ctx context.Context, batch1ID, batch2ID int) (*domain.BatchComparison, error) {
	if err := requirePositiveID("batch1 id", batch1ID); err != nil {
		return nil, err
	}
	if err := requirePositiveID("batch2 id", batch2ID); err != nil {
		return nil, err
	}
	return uc.backend.CompareBatches(ctx, batch1ID, batch2ID)
}

func (uc *ResultLookupUseCase) Export(ctx context.Context, format string, batchID *int) ([]byte, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != ExportFormatCSV && format != ExportFormatJSON {
		return nil, "", domain.WrapError(domain.ErrInvalidInput, "export results",
			fmt.Errorf("unsupported format %q", format))
	}
	if batchID != nil {
		if err := requirePositiveID("batch id", *batchID); err != nil {
			return nil, "", err
		}
	}
	return uc.backend.ExportResults(ctx, ports.ExportParams{Format: format, UploadBatchID: batchID})
}

func requirePositiveID(field string, id int) error {
	if id <= 0 {
		return domain.WrapError(domain.ErrInvalidInput, "lookup results",
			fmt.Errorf("%s must be positive, got %d", field, id))
	}
	return nil
}
