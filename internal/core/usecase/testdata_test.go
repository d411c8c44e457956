package usecase

import "github.com/genie-capital/algee-gateway/internal/core/domain"

func sampleResults() []domain.Result {
	return []domain.Result{
		{
			ID:            1,
			ClientID:      101,
			CreditLimit:   750000,
			InterestRate:  12.5,
			UploadBatchID: 12,
			CreatedAt:     "2024-03-01T10:00:00Z",
			Client: domain.ClientSummary{
				Name:            "John Doe",
				ReferenceNumber: "CL-001",
				Email:           "john.doe@example.com",
				PhoneNumber:     "254700111222",
			},
			UploadBatch: domain.BatchSummary{Name: "March Upload", Filename: "march.csv"},
		},
		{
			ID:            2,
			ClientID:      102,
			CreditLimit:   1200000,
			InterestRate:  10,
			UploadBatchID: 12,
			CreatedAt:     "2024-03-02T10:00:00Z",
			Client: domain.ClientSummary{
				Name:            "Jane Smith",
				ReferenceNumber: "CL-002",
				Email:           "jane.smith@example.com",
				PhoneNumber:     "254700333444",
			},
			UploadBatch: domain.BatchSummary{Name: "March Upload", Filename: "march.csv"},
		},
		{
			ID:            3,
			ClientID:      103,
			CreditLimit:   450000,
			InterestRate:  14.25,
			UploadBatchID: 13,
			CreatedAt:     "2024-03-03T10:00:00Z",
			Client: domain.ClientSummary{
				Name:            "Peter Otieno",
				ReferenceNumber: "CL-003",
				Email:           "peter.otieno@example.com",
				PhoneNumber:     "254700555666",
			},
			UploadBatch: domain.BatchSummary{Name: "April Upload", Filename: "april.csv"},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func idsOf(records []domain.Result) []int {
	ids := make([]int, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
