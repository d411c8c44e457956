package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

func (rt *Router) clientResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	clientID, action, err := splitResourcePath(r.URL.Path, "/v1/clients/")
	if err != nil {
		writeError(w, err)
		return
	}

	switch action {
	case "results/latest":
		result, err := rt.lookup.LatestForClient(r.Context(), clientID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, result)
	case "results/history":
		page, err := intParam(r.URL.Query(), "page")
		if err != nil {
			writeError(w, err)
			return
		}
		limit, err := intParam(r.URL.Query(), "limit")
		if err != nil {
			writeError(w, err)
			return
		}
		history, err := rt.lookup.HistoryForClient(r.Context(), clientID, page, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		writePage(w, http.StatusOK, map[string]any{"results": history.Results}, history.Pagination)
	case "results/detailed":
		detail, err := rt.lookup.DetailForClient(r.Context(), clientID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeData(w, http.StatusOK, detail)
	default:
		writeFailure(w, http.StatusNotFound, "unknown client resource")
	}
}

func (rt *Router) batchResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	batchID, action, err := splitResourcePath(r.URL.Path, "/v1/batches/")
	if err != nil {
		writeError(w, err)
		return
	}
	if action != "results" {
		writeFailure(w, http.StatusNotFound, "unknown batch resource")
		return
	}

	criteria, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	page, err := rt.lookup.ForBatch(r.Context(), batchID, criteria)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, http.StatusOK, map[string]any{"results": page.Results}, page.Pagination)
}

// splitResourcePath extracts the numeric id and the trailing action from
// paths shaped like prefix/{id}/action.
func splitResourcePath(path, prefix string) (int, string, error) {
	rest := strings.TrimPrefix(path, prefix)
	idPart, action, found := strings.Cut(rest, "/")
	if !found || idPart == "" || action == "" {
		return 0, "", domain.WrapError(domain.ErrInvalidInput, "parse path",
			fmt.Errorf("expected %s{id}/..., got %s", prefix, path))
	}
	id, err := strconv.Atoi(idPart)
	if err != nil || id <= 0 {
		return 0, "", domain.WrapError(domain.ErrInvalidInput, "parse path",
			fmt.Errorf("%q is not a positive id", idPart))
	}
	return id, action, nil
}
