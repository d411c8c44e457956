package usecase

import (
	"strconv"
	"strings"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

// FilterResults returns the subset of records satisfying every active
// criterion, preserving input order. Pure; the input slice is untouched.
func FilterResults(records []domain.Result, criteria domain.QueryCriteria) []domain.Result {
	search := strings.ToLower(strings.TrimSpace(criteria.Search))
	dateFrom, dateTo, fromSet, toSet := criteria.DateBounds()

	out := make([]domain.Result, 0, len(records))
	for _, record := range records {
		if search != "" && !matchesSearch(record, search) {
			continue
		}
		if !withinBound(record.CreditLimit, criteria.MinCreditLimit, criteria.MaxCreditLimit) {
			continue
		}
		if !withinBound(record.InterestRate, criteria.MinInterestRate, criteria.MaxInterestRate) {
			continue
		}
		if fromSet || toSet {
			created, ok := record.CreatedAtTime()
			// A record with a broken timestamp can never satisfy an
			// active date bound.
			if !ok {
				continue
			}
			if fromSet && created.Before(dateFrom) {
				continue
			}
			if toSet && created.After(dateTo) {
				continue
			}
		}
		out = append(out, record)
	}
	return out
}

// matchesSearch is an OR over the client- and batch-facing text fields.
func matchesSearch(record domain.Result, search string) bool {
	candidates := []string{
		record.Client.Name,
		record.Client.ReferenceNumber,
		record.Client.PhoneNumber,
		record.UploadBatch.Name,
		strconv.Itoa(record.UploadBatchID),
	}
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), search) {
			return true
		}
	}
	return false
}

func withinBound(value float64, min, max *float64) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}
