package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
	"github.com/genie-capital/algee-gateway/internal/infrastructure/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (rt *Router) listResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := rt.results.Fetch(r.Context(), criteria, false)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, http.StatusOK, map[string]any{
		"results": view.Results,
		"summary": view.Summary,
	}, view.Pagination)
}

func (rt *Router) refreshResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := rt.results.Refresh(r.Context(), criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, http.StatusOK, map[string]any{
		"results": view.Results,
		"summary": view.Summary,
	}, view.Pagination)
}

func (rt *Router) instantSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	view, err := rt.results.InstantSearch(criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, http.StatusOK, map[string]any{
		"results": view.Results,
		"summary": view.Summary,
	}, view.Pagination)
}

func (rt *Router) exportResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "xlsx" {
		rt.exportWorkbook(w, r)
		return
	}

	batchID, err := optionalIDParam(r, "uploadBatchId")
	if err != nil {
		writeError(w, err)
		return
	}

	data, contentType, err := rt.lookup.Export(r.Context(), format, batchID)
	if err != nil {
		writeError(w, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="results.`+format+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// exportWorkbook renders the cached, filtered working set locally; the
// scoring backend only exports csv and json.
func (rt *Router) exportWorkbook(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	records, err := rt.results.FilteredWorkingSet(criteria)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := export.ResultsWorkbook(records)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="results.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (rt *Router) compareBatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	batch1, err := requiredIDParam(r, "batch1")
	if err != nil {
		writeError(w, err)
		return
	}
	batch2, err := requiredIDParam(r, "batch2")
	if err != nil {
		writeError(w, err)
		return
	}

	comparison, err := rt.lookup.CompareBatches(r.Context(), batch1, batch2)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, comparison)
}

func requiredIDParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, domain.WrapError(domain.ErrInvalidInput, "parse query",
			fmt.Errorf("%s is required", name))
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, domain.WrapError(domain.ErrInvalidInput, "parse query",
			fmt.Errorf("%s: %q is not a positive id", name, raw))
	}
	return id, nil
}

func optionalIDParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "parse query",
			fmt.Errorf("%s: %q is not a positive id", name, raw))
	}
	return &id, nil
}
