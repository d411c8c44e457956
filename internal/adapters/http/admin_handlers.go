package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

func (rt *Router) categoryCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		categories, err := rt.admin.ListCategories(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, categories)
	case http.MethodPost:
		var category domain.Category
		if !decodeBody(w, r, &category) {
			return
		}
		created, err := rt.admin.CreateCategory(r.Context(), category)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, created)
	default:
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (rt *Router) categoryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := adminItemID(w, r, "/v1/admin/categories/")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPut:
		var category domain.Category
		if !decodeBody(w, r, &category) {
			return
		}
		updated, err := rt.admin.UpdateCategory(r.Context(), id, category)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := rt.admin.DeleteCategory(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]int{"id": id})
	default:
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (rt *Router) variableCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		variables, err := rt.admin.ListVariables(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, variables)
	case http.MethodPost:
		var variable domain.Variable
		if !decodeBody(w, r, &variable) {
			return
		}
		created, err := rt.admin.CreateVariable(r.Context(), variable)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, created)
	default:
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (rt *Router) variableItem(w http.ResponseWriter, r *http.Request) {
	id, ok := adminItemID(w, r, "/v1/admin/variables/")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPut:
		var variable domain.Variable
		if !decodeBody(w, r, &variable) {
			return
		}
		updated, err := rt.admin.UpdateVariable(r.Context(), id, variable)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := rt.admin.DeleteVariable(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]int{"id": id})
	default:
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (rt *Router) formulaCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		formulas, err := rt.admin.ListFormulas(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, formulas)
	case http.MethodPost:
		var formula domain.Formula
		if !decodeBody(w, r, &formula) {
			return
		}
		created, err := rt.admin.CreateFormula(r.Context(), formula)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusCreated, created)
	default:
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (rt *Router) formulaItem(w http.ResponseWriter, r *http.Request) {
	id, ok := adminItemID(w, r, "/v1/admin/formulas/")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPut:
		var formula domain.Formula
		if !decodeBody(w, r, &formula) {
			return
		}
		updated, err := rt.admin.UpdateFormula(r.Context(), id, formula)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := rt.admin.DeleteFormula(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, map[string]int{"id": id})
	default:
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func adminItemID(w http.ResponseWriter, r *http.Request, prefix string) (int, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, domain.WrapError(domain.ErrInvalidInput, "parse path",
			fmt.Errorf("%q is not a positive id", raw)))
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}
