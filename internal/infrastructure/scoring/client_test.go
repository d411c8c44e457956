package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
	"github.com/genie-capital/algee-gateway/internal/core/ports"
)

func newTestClient(serverURL string) *Client {
	return New(serverURL, 5*time.Second, nil)
}

func intPtr(v int) *int { return &v }

func TestListResultsSendsQueryAndDecodesEnvelope(t *testing.T) {
	var capturedQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/results" {
			http.NotFound(w, r)
			return
		}
		capturedQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"results": [{"id": 7, "clientId": 101, "credit_limit": 250000}],
				"pagination": {"page": 1, "limit": 1000, "total": 1, "totalPages": 1}
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	page, err := client.ListResults(context.Background(), ports.ListResultsParams{
		Page:          1,
		Limit:         1000,
		UploadBatchID: intPtr(12),
	})
	if err != nil {
		t.Fatalf("ListResults() error = %v", err)
	}

	if got := capturedQuery["limit"]; len(got) != 1 || got[0] != "1000" {
		t.Fatalf("expected limit=1000 in query, got %v", capturedQuery)
	}
	if got := capturedQuery["uploadBatchId"]; len(got) != 1 || got[0] != "12" {
		t.Fatalf("expected uploadBatchId=12 in query, got %v", capturedQuery)
	}
	if _, present := capturedQuery["search"]; present {
		t.Fatalf("unset fields must not appear in the query: %v", capturedQuery)
	}
	if len(page.Results) != 1 || page.Results[0].ID != 7 {
		t.Fatalf("unexpected decoded page: %+v", page)
	}
	if page.Pagination.Total != 1 {
		t.Fatalf("pagination not decoded: %+v", page.Pagination)
	}
}

func TestLogicalFailureSurfacesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "institution has no results"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListResults(context.Background(), ports.ListResultsParams{Page: 1, Limit: 10})
	if err == nil {
		t.Fatalf("expected error for success=false")
	}
	if !domain.IsKind(err, domain.ErrBackend) {
		t.Fatalf("expected backend kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "institution has no results") {
		t.Fatalf("expected backend message in error, got %v", err)
	}
}

func TestLogicalFailureWithoutMessageGetsGenericOne(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListResults(context.Background(), ports.ListResultsParams{Page: 1, Limit: 10})
	if err == nil || !strings.Contains(err.Error(), "scoring backend reported a failure") {
		t.Fatalf("expected generic fallback message, got %v", err)
	}
}

func TestHTTPStatusMapsToErrorKind(t *testing.T) {
	cases := []struct {
		status int
		kind   error
	}{
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusBadGateway, domain.ErrTemporary},
		{http.StatusUnprocessableEntity, domain.ErrBackend},
	}
	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"message":"nope"}`, tc.status)
		}))
		_, err := newTestClient(server.URL).LatestClientResult(context.Background(), 5)
		server.Close()

		if !domain.IsKind(err, tc.kind) {
			t.Fatalf("status %d: expected kind %v, got %v", tc.status, tc.kind, err)
		}
		if !strings.Contains(err.Error(), "nope") {
			t.Fatalf("status %d: expected body message in error, got %v", tc.status, err)
		}
	}
}

func TestExportResultsReturnsOpaquePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "csv" {
			http.Error(w, `{"message":"bad format"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id,client\n7,Jane Smith\n"))
	}))
	defer server.Close()

	data, contentType, err := newTestClient(server.URL).ExportResults(context.Background(), ports.ExportParams{Format: "csv"})
	if err != nil {
		t.Fatalf("ExportResults() error = %v", err)
	}
	if contentType != "text/csv" {
		t.Fatalf("expected text/csv, got %q", contentType)
	}
	if !strings.Contains(string(data), "Jane Smith") {
		t.Fatalf("unexpected export payload: %q", data)
	}
}

func TestCreateCategoryPostsJSONBody(t *testing.T) {
	var capturedBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/categories" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&capturedBody); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": 3, "name": "Employment"}}`))
	}))
	defer server.Close()

	created, err := newTestClient(server.URL).CreateCategory(context.Background(), domain.Category{Name: "Employment"})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	if capturedBody["name"] != "Employment" {
		t.Fatalf("expected category name in body, got %v", capturedBody)
	}
	if created.ID != 3 {
		t.Fatalf("expected created id 3, got %+v", created)
	}
}

func TestDeleteVariableAcceptsEmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"success": true, "message": "deleted"}`))
	}))
	defer server.Close()

	if err := newTestClient(server.URL).DeleteVariable(context.Background(), 9); err != nil {
		t.Fatalf("DeleteVariable() error = %v", err)
	}
}
