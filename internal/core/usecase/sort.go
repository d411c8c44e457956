package usecase

import (
	"sort"
	"strings"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

// SortResults orders records by the requested field and direction into a
// new slice, leaving the input untouched. The sort is stable, so records
// with equal keys keep their relative input order. An unrecognised field
// falls back to comparing the raw createdAt strings.
func SortResults(records []domain.Result, field, direction string) []domain.Result {
	out := make([]domain.Result, len(records))
	copy(out, records)

	compare := comparatorFor(field)
	descending := strings.EqualFold(direction, domain.SortDesc)

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func comparatorFor(field string) func(a, b domain.Result) int {
	switch field {
	case domain.SortByCreditLimit:
		return func(a, b domain.Result) int {
			return compareFloat(a.CreditLimit, b.CreditLimit)
		}
	case domain.SortByInterestRate:
		return func(a, b domain.Result) int {
			return compareFloat(a.InterestRate, b.InterestRate)
		}
	case domain.SortByCreatedAt:
		return func(a, b domain.Result) int {
			return compareFloat(float64(createdAtMillis(a)), float64(createdAtMillis(b)))
		}
	default:
		return func(a, b domain.Result) int {
			return strings.Compare(a.CreatedAt, b.CreatedAt)
		}
	}
}

func createdAtMillis(r domain.Result) int64 {
	t, ok := r.CreatedAtTime()
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
