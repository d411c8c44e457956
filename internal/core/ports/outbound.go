package ports

import (
	"context"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

// ListResultsParams are the query parameters the backend results endpoint
// accepts. The cache orchestrator deliberately sets only Page and Limit;
// everything filterable locally stays unset.
type ListResultsParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string

	Search        string
	UploadBatchID *int
	ClientID      *int

	MinCreditLimit  *float64
	MaxCreditLimit  *float64
	MinInterestRate *float64
	MaxInterestRate *float64

	DateFrom string
	DateTo   string
}

// ExportParams select what the export endpoint should render.
type ExportParams struct {
	Format        string
	UploadBatchID *int
}

// ScoringBackend is the upstream results API consumed by the gateway.
type ScoringBackend interface {
	ListResults(ctx context.Context, params ListResultsParams) (*domain.ResultsPage, error)
	LatestClientResult(ctx context.Context, clientID int) (*domain.Result, error)
	ClientResultHistory(ctx context.Context, clientID, page, limit int) (*domain.ResultsPage, error)
	ClientResultDetail(ctx context.Context, clientID int) (*domain.ClientResultDetail, error)
	CompareBatches(ctx context.Context, batch1ID, batch2ID int) (*domain.BatchComparison, error)
	ExportResults(ctx context.Context, params ExportParams) (data []byte, contentType string, err error)
}

// ParameterAdmin is the backend CRUD surface for scoring parameters.
type ParameterAdmin interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, category domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListVariables(ctx context.Context) ([]domain.Variable, error)
	CreateVariable(ctx context.Context, variable domain.Variable) (*domain.Variable, error)
	UpdateVariable(ctx context.Context, id int, variable domain.Variable) (*domain.Variable, error)
	DeleteVariable(ctx context.Context, id int) error

	ListFormulas(ctx context.Context) ([]domain.Formula, error)
	CreateFormula(ctx context.Context, formula domain.Formula) (*domain.Formula, error)
	UpdateFormula(ctx context.Context, id int, formula domain.Formula) (*domain.Formula, error)
	DeleteFormula(ctx context.Context, id int) error
}
