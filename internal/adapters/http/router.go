package httpadapter

import (
	"net/http"

	"github.com/genie-capital/algee-gateway/internal/core/ports"
)

type Router struct {
	results ports.ResultsQueryService
	lookup  ports.ResultLookupService
	admin   ports.ParameterAdmin
}

func NewRouter(
	results ports.ResultsQueryService,
	lookup ports.ResultLookupService,
	admin ports.ParameterAdmin,
) *Router {
	return &Router{
		results: results,
		lookup:  lookup,
		admin:   admin,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)

	mux.HandleFunc("/v1/results", rt.listResults)
	mux.HandleFunc("/v1/results/refresh", rt.refreshResults)
	mux.HandleFunc("/v1/results/search", rt.instantSearch)
	mux.HandleFunc("/v1/results/export", rt.exportResults)
	mux.HandleFunc("/v1/results/comparison", rt.compareBatches)

	mux.HandleFunc("/v1/clients/", rt.clientResults)
	mux.HandleFunc("/v1/batches/", rt.batchResults)

	mux.HandleFunc("/v1/admin/categories", rt.categoryCollection)
	mux.HandleFunc("/v1/admin/categories/", rt.categoryItem)
	mux.HandleFunc("/v1/admin/variables", rt.variableCollection)
	mux.HandleFunc("/v1/admin/variables/", rt.variableItem)
	mux.HandleFunc("/v1/admin/formulas", rt.formulaCollection)
	mux.HandleFunc("/v1/admin/formulas/", rt.formulaItem)

	return requestIDMiddleware(accessLogMiddleware(mux))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	state := rt.results.State()
	payload := map[string]any{
		"status":        "ok",
		"cache_ready":   state.Cached,
		"cache_loading": state.Loading,
	}
	if state.Err != nil {
		payload["last_fetch_error"] = state.Err.Error()
	}
	writeData(w, http.StatusOK, payload)
}
