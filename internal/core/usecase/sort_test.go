package usecase

import (
	"testing"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

func TestSortResultsByCreditLimitAscending(t *testing.T) {
	got := SortResults(sampleResults(), domain.SortByCreditLimit, domain.SortAsc)
	want := []float64{450000, 750000, 1200000}
	for i, record := range got {
		if record.CreditLimit != want[i] {
			t.Fatalf("position %d: expected credit limit %v, got %v", i, want[i], record.CreditLimit)
		}
	}
}

func TestSortResultsDescendingReversesDistinctKeys(t *testing.T) {
	asc := SortResults(sampleResults(), domain.SortByInterestRate, domain.SortAsc)
	desc := SortResults(sampleResults(), domain.SortByInterestRate, domain.SortDesc)
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("descending order is not the reverse of ascending")
		}
	}
}

func TestSortResultsIsNonMutatingPermutation(t *testing.T) {
	records := sampleResults()
	got := SortResults(records, domain.SortByCreatedAt, domain.SortDesc)

	if !equalIDs(idsOf(records), []int{1, 2, 3}) {
		t.Fatalf("input slice was reordered: %v", idsOf(records))
	}
	if !equalIDs(idsOf(got), []int{3, 2, 1}) {
		t.Fatalf("expected newest-first order, got %v", idsOf(got))
	}

	seen := map[int]bool{}
	for _, r := range got {
		seen[r.ID] = true
	}
	if len(seen) != len(records) {
		t.Fatalf("output is not a permutation of the input")
	}
}

func TestSortResultsStableOnEqualKeys(t *testing.T) {
	records := sampleResults()
	for i := range records {
		records[i].CreditLimit = 500000
	}
	got := SortResults(records, domain.SortByCreditLimit, domain.SortAsc)
	if !equalIDs(idsOf(got), []int{1, 2, 3}) {
		t.Fatalf("equal keys must retain input order, got %v", idsOf(got))
	}
}

func TestSortResultsUnknownFieldFallsBackToRawCreatedAt(t *testing.T) {
	records := sampleResults()
	got := SortResults(records, "client_name", domain.SortAsc)
	// Raw RFC3339 strings compare lexicographically in time order here.
	if !equalIDs(idsOf(got), []int{1, 2, 3}) {
		t.Fatalf("expected raw createdAt ordering, got %v", idsOf(got))
	}
}

func TestSortResultsUnparseableCreatedAtSortsAsZero(t *testing.T) {
	records := sampleResults()
	records[2].CreatedAt = "garbage"
	got := SortResults(records, domain.SortByCreatedAt, domain.SortAsc)
	if got[0].ID != 3 {
		t.Fatalf("expected the unparseable timestamp first in ascending order, got id %d", got[0].ID)
	}
}
