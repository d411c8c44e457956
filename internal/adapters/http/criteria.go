package httpadapter

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

// parseCriteria maps query parameters onto pipeline criteria. Numeric
// parameters that do not parse are rejected instead of silently dropped.
func parseCriteria(values url.Values) (domain.QueryCriteria, error) {
	criteria := domain.QueryCriteria{
		Search:    values.Get("search"),
		DateFrom:  values.Get("dateFrom"),
		DateTo:    values.Get("dateTo"),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
	}

	var err error
	if criteria.Page, err = intParam(values, "page"); err != nil {
		return domain.QueryCriteria{}, err
	}
	if criteria.Limit, err = intParam(values, "limit"); err != nil {
		return domain.QueryCriteria{}, err
	}
	if criteria.MinCreditLimit, err = floatParam(values, "minCreditLimit"); err != nil {
		return domain.QueryCriteria{}, err
	}
	if criteria.MaxCreditLimit, err = floatParam(values, "maxCreditLimit"); err != nil {
		return domain.QueryCriteria{}, err
	}
	if criteria.MinInterestRate, err = floatParam(values, "minInterestRate"); err != nil {
		return domain.QueryCriteria{}, err
	}
	if criteria.MaxInterestRate, err = floatParam(values, "maxInterestRate"); err != nil {
		return domain.QueryCriteria{}, err
	}

	if err := criteria.Validate(); err != nil {
		return domain.QueryCriteria{}, err
	}
	return criteria, nil
}

func intParam(values url.Values, name string) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.WrapError(domain.ErrInvalidInput, "parse query",
			fmt.Errorf("%s: %q is not an integer", name, raw))
	}
	return parsed, nil
}

func floatParam(values url.Values, name string) (*float64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.WrapError(domain.ErrInvalidInput, "parse query",
			fmt.Errorf("%s: %q is not a number", name, raw))
	}
	return &parsed, nil
}
