// Package export renders result working sets into downloadable formats
// that the scoring backend does not produce itself.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

const resultsSheet = "Results"

var resultColumns = []string{
	"Result ID",
	"Client ID",
	"Client Name",
	"Reference Number",
	"Phone Number",
	"Credit Limit",
	"Interest Rate (%)",
	"Batch",
	"Created At",
}

// ResultsWorkbook renders records into a single-sheet xlsx workbook with a
// header row followed by one row per result, in the given order.
func ResultsWorkbook(records []domain.Result) ([]byte, error) {
	const op = "export.ResultsWorkbook"

	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	if err := wb.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, domain.WrapError(domain.ErrBackend, op, err)
	}
	if err := wb.SetSheetRow(resultsSheet, "A1", &resultColumns); err != nil {
		return nil, domain.WrapError(domain.ErrBackend, op, err)
	}

	for i, record := range records {
		row := []any{
			record.ID,
			record.ClientID,
			record.Client.Name,
			record.Client.ReferenceNumber,
			record.Client.PhoneNumber,
			record.CreditLimit,
			record.InterestRate,
			record.UploadBatch.Name,
			record.CreatedAt,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := wb.SetSheetRow(resultsSheet, cell, &row); err != nil {
			return nil, domain.WrapError(domain.ErrBackend, op, err)
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, domain.WrapError(domain.ErrBackend, op, err)
	}
	return buf.Bytes(), nil
}
