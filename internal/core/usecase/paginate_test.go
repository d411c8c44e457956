package usecase

import (
	"testing"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

func TestPaginateSinglePage(t *testing.T) {
	slice, pagination := Paginate(sampleResults(), 1, 10)
	if len(slice) != 3 {
		t.Fatalf("expected all 3 records on page 1, got %d", len(slice))
	}
	if pagination.Total != 3 || pagination.TotalPages != 1 {
		t.Fatalf("expected total=3 totalPages=1, got %+v", pagination)
	}
}

func TestPaginateConcatenationReconstructsInput(t *testing.T) {
	records := sampleResults()
	limit := 2
	var rebuilt []domain.Result
	_, pagination := Paginate(records, 1, limit)
	for page := 1; page <= pagination.TotalPages; page++ {
		slice, _ := Paginate(records, page, limit)
		if len(slice) > limit {
			t.Fatalf("page %d exceeds limit: %d records", page, len(slice))
		}
		rebuilt = append(rebuilt, slice...)
	}
	if !equalIDs(idsOf(rebuilt), idsOf(records)) {
		t.Fatalf("concatenated pages do not reconstruct the input: %v", idsOf(rebuilt))
	}
}

func TestPaginateOutOfRangePageIsEmptyNotError(t *testing.T) {
	slice, pagination := Paginate(sampleResults(), 5, 2)
	if len(slice) != 0 {
		t.Fatalf("expected empty slice for out-of-range page, got %d records", len(slice))
	}
	if pagination.Total != 3 || pagination.TotalPages != 2 {
		t.Fatalf("pagination must still describe the full input, got %+v", pagination)
	}
}

func TestPaginateClampsBadBounds(t *testing.T) {
	slice, pagination := Paginate(sampleResults(), 0, -1)
	if pagination.Page != 1 || pagination.Limit != DefaultPageSize {
		t.Fatalf("expected page and limit clamped, got %+v", pagination)
	}
	if len(slice) != 3 {
		t.Fatalf("expected clamped query to return page 1, got %d records", len(slice))
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	slice, pagination := Paginate(nil, 1, 10)
	if len(slice) != 0 || pagination.Total != 0 || pagination.TotalPages != 0 {
		t.Fatalf("expected zeroed pagination for empty input, got %+v", pagination)
	}
}
