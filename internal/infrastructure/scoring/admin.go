package scoring

import (
	"context"
	"fmt"
	"net/http"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

// Scoring parameter CRUD. The gateway relays admin forms verbatim; no
// validation beyond what the backend enforces.

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.getJSON(ctx, "list categories", "/admin/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	var created domain.Category
	if err := c.sendJSON(ctx, "create category", http.MethodPost, "/admin/categories", category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, category domain.Category) (*domain.Category, error) {
	var updated domain.Category
	path := fmt.Sprintf("/admin/categories/%d", id)
	if err := c.sendJSON(ctx, "update category", http.MethodPut, path, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	path := fmt.Sprintf("/admin/categories/%d", id)
	return c.sendJSON(ctx, "delete category", http.MethodDelete, path, nil, nil)
}

func (c *Client) ListVariables(ctx context.Context) ([]domain.Variable, error) {
	var variables []domain.Variable
	if err := c.getJSON(ctx, "list variables", "/admin/variables", nil, &variables); err != nil {
		return nil, err
	}
	return variables, nil
}

func (c *Client) CreateVariable(ctx context.Context, variable domain.Variable) (*domain.Variable, error) {
	var created domain.Variable
	if err := c.sendJSON(ctx, "create variable", http.MethodPost, "/admin/variables", variable, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateVariable(ctx context.Context, id int, variable domain.Variable) (*domain.Variable, error) {
	var updated domain.Variable
	path := fmt.Sprintf("/admin/variables/%d", id)
	if err := c.sendJSON(ctx, "update variable", http.MethodPut, path, variable, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteVariable(ctx context.Context, id int) error {
	path := fmt.Sprintf("/admin/variables/%d", id)
	return c.sendJSON(ctx, "delete variable", http.MethodDelete, path, nil, nil)
}

func (c *Client) ListFormulas(ctx context.Context) ([]domain.Formula, error) {
	var formulas []domain.Formula
	if err := c.getJSON(ctx, "list formulas", "/admin/formulas", nil, &formulas); err != nil {
		return nil, err
	}
	return formulas, nil
}

func (c *Client) CreateFormula(ctx context.Context, formula domain.Formula) (*domain.Formula, error) {
	var created domain.Formula
	if err := c.sendJSON(ctx, "create formula", http.MethodPost, "/admin/formulas", formula, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateFormula(ctx context.Context, id int, formula domain.Formula) (*domain.Formula, error) {
	var updated domain.Formula
	path := fmt.Sprintf("/admin/formulas/%d", id)
	if err := c.sendJSON(ctx, "update formula", http.MethodPut, path, formula, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteFormula(ctx context.Context, id int) error {
	path := fmt.Sprintf("/admin/formulas/%d", id)
	return c.sendJSON(ctx, "delete formula", http.MethodDelete, path, nil, nil)
}
