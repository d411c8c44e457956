package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

func TestResultsWorkbookWritesHeaderAndRows(t *testing.T) {
	records := []domain.Result{
		{
			ID:           7,
			ClientID:     101,
			CreditLimit:  750000,
			InterestRate: 12.5,
			CreatedAt:    "2024-03-01T10:00:00Z",
			Client:       domain.ClientSummary{Name: "John Doe", ReferenceNumber: "CL-001"},
			UploadBatch:  domain.BatchSummary{Name: "March Upload"},
		},
		{
			ID:           8,
			ClientID:     102,
			CreditLimit:  1200000,
			InterestRate: 10,
			CreatedAt:    "2024-03-02T10:00:00Z",
			Client:       domain.ClientSummary{Name: "Jane Smith", ReferenceNumber: "CL-002"},
			UploadBatch:  domain.BatchSummary{Name: "March Upload"},
		},
	}

	data, err := ResultsWorkbook(records)
	if err != nil {
		t.Fatalf("ResultsWorkbook() error = %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Results")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != len(records)+1 {
		t.Fatalf("expected %d rows, got %d", len(records)+1, len(rows))
	}
	if rows[0][0] != "Result ID" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][2] != "John Doe" || rows[2][2] != "Jane Smith" {
		t.Fatalf("client names not in expected cells: %v", rows)
	}
}

func TestResultsWorkbookHandlesEmptyInput(t *testing.T) {
	data, err := ResultsWorkbook(nil)
	if err != nil {
		t.Fatalf("ResultsWorkbook(nil) error = %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Results")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
