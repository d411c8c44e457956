package usecase

import "github.com/genie-capital/algee-gateway/internal/core/domain"

// Summarize aggregates credit-limit and interest-rate statistics over a
// filtered set. Values <= 0 are excluded per field, independently, so a
// record with a zero credit limit still contributes its interest rate.
// An empty set yields all-zero stats with {0,0} ranges.
func Summarize(records []domain.Result) domain.SummaryStats {
	stats := domain.SummaryStats{TotalResults: len(records)}

	var (
		clSum, irSum float64
		clN, irN     int
		clMin, clMax float64
		irMin, irMax float64
	)

	for _, record := range records {
		if record.CreditLimit > 0 {
			if clN == 0 || record.CreditLimit < clMin {
				clMin = record.CreditLimit
			}
			if record.CreditLimit > clMax {
				clMax = record.CreditLimit
			}
			clSum += record.CreditLimit
			clN++
		}
		if record.InterestRate > 0 {
			if irN == 0 || record.InterestRate < irMin {
				irMin = record.InterestRate
			}
			if record.InterestRate > irMax {
				irMax = record.InterestRate
			}
			irSum += record.InterestRate
			irN++
		}
	}

	if clN > 0 {
		stats.AvgCreditLimit = clSum / float64(clN)
		stats.CreditLimitRange = domain.ValueRange{Min: clMin, Max: clMax}
	}
	if irN > 0 {
		stats.AvgInterestRate = irSum / float64(irN)
		stats.InterestRateRange = domain.ValueRange{Min: irMin, Max: irMax}
	}
	return stats
}
