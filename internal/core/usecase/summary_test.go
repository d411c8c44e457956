package usecase

import (
	"testing"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

func TestSummarizeEmptySetIsAllZero(t *testing.T) {
	stats := Summarize(nil)
	if stats.TotalResults != 0 || stats.AvgCreditLimit != 0 || stats.AvgInterestRate != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
	if stats.CreditLimitRange != (domain.ValueRange{}) || stats.InterestRateRange != (domain.ValueRange{}) {
		t.Fatalf("expected {0,0} ranges, got %+v", stats)
	}
}

func TestSummarizeSampleSet(t *testing.T) {
	stats := Summarize(sampleResults())
	if stats.TotalResults != 3 {
		t.Fatalf("expected total 3, got %d", stats.TotalResults)
	}
	if stats.AvgCreditLimit != 800000 {
		t.Fatalf("expected avg credit limit 800000, got %v", stats.AvgCreditLimit)
	}
	if stats.CreditLimitRange.Min != 450000 || stats.CreditLimitRange.Max != 1200000 {
		t.Fatalf("expected credit limit range {450000, 1200000}, got %+v", stats.CreditLimitRange)
	}
}

func TestSummarizeExcludesNonPositiveValuesPerField(t *testing.T) {
	records := sampleResults()
	records[0].CreditLimit = 0     // excluded from credit-limit stats only
	records[2].InterestRate = -1.0 // excluded from interest-rate stats only

	stats := Summarize(records)
	if stats.TotalResults != 3 {
		t.Fatalf("total must count the whole input, got %d", stats.TotalResults)
	}
	if stats.AvgCreditLimit != (1200000+450000)/2.0 {
		t.Fatalf("expected credit-limit average over positive values only, got %v", stats.AvgCreditLimit)
	}
	if stats.CreditLimitRange.Min != 450000 {
		t.Fatalf("zero credit limit leaked into the range: %+v", stats.CreditLimitRange)
	}
	if stats.AvgInterestRate != (12.5+10)/2.0 {
		t.Fatalf("expected interest-rate average over positive values only, got %v", stats.AvgInterestRate)
	}
	if stats.InterestRateRange.Max != 12.5 {
		t.Fatalf("negative interest rate skewed the range: %+v", stats.InterestRateRange)
	}
}
