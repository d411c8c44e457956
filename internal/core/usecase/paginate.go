package usecase

import "github.com/genie-capital/algee-gateway/internal/core/domain"

// DefaultPageSize is used when a caller supplies no usable limit.
const DefaultPageSize = 10

// Paginate slices an ordered sequence into one 1-based page. Out-of-range
// pages yield an empty slice, never an error; page < 1 clamps to 1 and
// limit <= 0 clamps to DefaultPageSize.
func Paginate(records []domain.Result, page, limit int) ([]domain.Result, domain.Pagination) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	total := len(records)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	pagination := domain.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	start := (page - 1) * limit
	if start >= total {
		return []domain.Result{}, pagination
	}
	end := start + limit
	if end > total {
		end = total
	}

	slice := make([]domain.Result, end-start)
	copy(slice, records[start:end])
	return slice, pagination
}
