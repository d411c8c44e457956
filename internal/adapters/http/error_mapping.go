package httpadapter

import (
	"net/http"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrCacheNotReady), domain.IsKind(err, domain.ErrSuperseded):
		return http.StatusConflict
	case domain.IsKind(err, domain.ErrBackend):
		return http.StatusBadGateway
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
