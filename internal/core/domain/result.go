package domain

import "time"

// ClientSummary is the client info denormalised onto each result.
type ClientSummary struct {
	Name            string `json:"name"`
	ReferenceNumber string `json:"reference_number"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
}

// BatchSummary is the upload batch info denormalised onto each result.
type BatchSummary struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
}

// Result is one scoring outcome for one client in one upload batch.
// Results are treated as immutable once fetched; all views over them
// are derived copies.
type Result struct {
	ID                               int           `json:"id"`
	ClientID                         int           `json:"clientId"`
	CreditLimit                      float64       `json:"credit_limit"`
	InterestRate                     float64       `json:"interest_rate"`
	SumNormalisedCreditLimitWeights  float64       `json:"sum_normalised_credit_limit_weights"`
	SumNormalisedInterestRateWeights float64       `json:"sum_normalised_interest_rate_weights"`
	UploadBatchID                    int           `json:"uploadBatchId"`
	CreatedAt                        string        `json:"createdAt"`
	Client                           ClientSummary `json:"client"`
	UploadBatch                      BatchSummary  `json:"uploadBatch"`
}

// CreatedAtTime parses the raw createdAt timestamp. The boolean is false
// when the backend sent something unparseable; callers decide what a
// broken timestamp means for them.
func (r Result) CreatedAtTime() (time.Time, bool) {
	return parseTimestamp(r.CreatedAt)
}

func parseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Pagination describes one page of an ordered result sequence.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ValueRange is an observed min/max over a statistic.
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SummaryStats aggregates a filtered (pre-pagination) result set.
// Zero-valued for an empty set.
type SummaryStats struct {
	TotalResults      int        `json:"totalResults"`
	AvgCreditLimit    float64    `json:"avgCreditLimit"`
	CreditLimitRange  ValueRange `json:"creditLimitRange"`
	AvgInterestRate   float64    `json:"avgInterestRate"`
	InterestRateRange ValueRange `json:"interestRateRange"`
}

// PageView is what one cache query yields: the current page, its
// pagination bookkeeping, and summary stats over the whole filtered set.
// It is always a pure function of (working set, criteria).
type PageView struct {
	Results    []Result     `json:"results"`
	Pagination Pagination   `json:"pagination"`
	Summary    SummaryStats `json:"summary"`
}

// ResultsPage is a page of results as returned by the scoring backend.
type ResultsPage struct {
	Results    []Result   `json:"results"`
	Pagination Pagination `json:"pagination"`
}

// BatchSnapshot is one side of a cross-batch comparison.
type BatchSnapshot struct {
	BatchID int          `json:"batchId"`
	Name    string       `json:"name"`
	Summary SummaryStats `json:"summary"`
}

// BatchComparison compares summary statistics of two upload batches.
type BatchComparison struct {
	Batch1 BatchSnapshot `json:"batch1"`
	Batch2 BatchSnapshot `json:"batch2"`
}

// VariableContribution is one variable's share of a computed result.
type VariableContribution struct {
	VariableName     string  `json:"variableName"`
	Category         string  `json:"category"`
	Weight           float64 `json:"weight"`
	NormalisedWeight float64 `json:"normalisedWeight"`
}

// ClientResultDetail is a result with its per-variable breakdown.
type ClientResultDetail struct {
	Result        Result                 `json:"result"`
	Contributions []VariableContribution `json:"contributions"`
}
