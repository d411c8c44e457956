package usecase

import (
	"context"
	"testing"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
	"github.com/genie-capital/algee-gateway/internal/core/ports"
)

type lookupBackendFake struct {
	backendStub

	listParams   *ports.ListResultsParams
	exportParams *ports.ExportParams
	latestID     int
}

func (b *lookupBackendFake) ListResults(_ context.Context, params ports.ListResultsParams) (*domain.ResultsPage, error) {
	b.listParams = &params
	return &domain.ResultsPage{}, nil
}

func (b *lookupBackendFake) LatestClientResult(_ context.Context, clientID int) (*domain.Result, error) {
	b.latestID = clientID
	return &domain.Result{ID: 42, ClientID: clientID}, nil
}

func (b *lookupBackendFake) ExportResults(_ context.Context, params ports.ExportParams) ([]byte, string, error) {
	b.exportParams = &params
	return []byte("id,client\n"), "text/csv", nil
}

func TestLatestForClientRejectsNonPositiveID(t *testing.T) {
	uc := NewResultLookupUseCase(&lookupBackendFake{})
	_, err := uc.LatestForClient(context.Background(), 0)
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid-input error, got %v", err)
	}
}

func TestForBatchRelaysCriteriaToBackend(t *testing.T) {
	backend := &lookupBackendFake{}
	uc := NewResultLookupUseCase(backend)

	criteria := domain.QueryCriteria{
		Search:         "jane",
		MinCreditLimit: floatPtr(1000),
		SortBy:         domain.SortByInterestRate,
		SortOrder:      domain.SortDesc,
		Page:           0,  // clamped
		Limit:          -5, // clamped
	}
	if _, err := uc.ForBatch(context.Background(), 12, criteria); err != nil {
		t.Fatalf("ForBatch() error = %v", err)
	}

	sent := backend.listParams
	if sent == nil {
		t.Fatalf("expected a backend call")
	}
	if sent.UploadBatchID == nil || *sent.UploadBatchID != 12 {
		t.Fatalf("expected batch id 12, got %+v", sent.UploadBatchID)
	}
	if sent.Search != "jane" || sent.SortBy != domain.SortByInterestRate {
		t.Fatalf("criteria were not relayed: %+v", sent)
	}
	if sent.Page != 1 || sent.Limit != DefaultPageSize {
		t.Fatalf("expected clamped page/limit, got page=%d limit=%d", sent.Page, sent.Limit)
	}
}

func TestExportValidatesFormat(t *testing.T) {
	backend := &lookupBackendFake{}
	uc := NewResultLookupUseCase(backend)

	if _, _, err := uc.Export(context.Background(), "xml", nil); !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid-input for unsupported format, got %v", err)
	}

	data, contentType, err := uc.Export(context.Background(), " CSV ", nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if contentType != "text/csv" || len(data) == 0 {
		t.Fatalf("unexpected export payload: %q %q", contentType, data)
	}
	if backend.exportParams.Format != "csv" {
		t.Fatalf("expected normalised format csv, got %q", backend.exportParams.Format)
	}
}
