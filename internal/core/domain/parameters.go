package domain

// Scoring parameter shapes for the admin surface. The gateway never
// interprets these; they travel between admin forms and the backend.

type Category struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type Variable struct {
	ID                 int     `json:"id,omitempty"`
	Name               string  `json:"name"`
	UniqueCode         string  `json:"uniqueCode"`
	CategoryID         int     `json:"categoryId"`
	IsRequired         bool    `json:"is_required"`
	VariableProportion float64 `json:"variableProportion"`
	MinValue           float64 `json:"min_value"`
	MaxValue           float64 `json:"max_value"`
	Description        string  `json:"description,omitempty"`
	CreatedAt          string  `json:"createdAt,omitempty"`
}

type Formula struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"`
	Expression string `json:"expression"`
	IsActive   bool   `json:"isActive"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
