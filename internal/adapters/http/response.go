package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
)

// apiResponse is the envelope every JSON endpoint answers with, mirroring
// the upstream platform API so front-end consumers see one shape.
type apiResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Data       any                `json:"data,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

func writePage(w http.ResponseWriter, status int, data any, pagination domain.Pagination) {
	writeJSON(w, status, apiResponse{Success: true, Data: data, Pagination: &pagination})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), apiResponse{Success: false, Message: err.Error()})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
