package domain

import (
	"fmt"
	"time"
)

const (
	SortByCreatedAt    = "createdAt"
	SortByCreditLimit  = "credit_limit"
	SortByInterestRate = "interest_rate"

	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// QueryCriteria describes one filter/sort/paginate request. It is an
// ephemeral value rebuilt on every interaction and never stored.
type QueryCriteria struct {
	Search string

	MinCreditLimit  *float64
	MaxCreditLimit  *float64
	MinInterestRate *float64
	MaxInterestRate *float64

	DateFrom string
	DateTo   string

	SortBy    string
	SortOrder string

	Page  int
	Limit int
}

// Validate rejects criteria the pipeline cannot honour. Date bounds fail
// loudly here instead of silently matching nothing downstream.
func (c QueryCriteria) Validate() error {
	if err := validateDateBound("dateFrom", c.DateFrom); err != nil {
		return err
	}
	if err := validateDateBound("dateTo", c.DateTo); err != nil {
		return err
	}
	return nil
}

func validateDateBound(field, raw string) error {
	if raw == "" {
		return nil
	}
	if _, ok := parseTimestamp(raw); !ok {
		return WrapError(ErrInvalidInput, "validate criteria",
			fmt.Errorf("%s: cannot parse %q as a date", field, raw))
	}
	return nil
}

// DateBounds returns the parsed date window. A bound that is absent or
// unparseable comes back as the zero time with its flag unset.
func (c QueryCriteria) DateBounds() (from, to time.Time, fromSet, toSet bool) {
	if c.DateFrom != "" {
		from, fromSet = parseTimestamp(c.DateFrom)
	}
	if c.DateTo != "" {
		to, toSet = parseTimestamp(c.DateTo)
	}
	return from, to, fromSet, toSet
}
