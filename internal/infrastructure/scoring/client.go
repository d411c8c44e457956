// Package scoring is the REST client for the Algee scoring backend. All
// gateway reads and admin writes go through it; it owns envelope
// decoding and error classification, the use cases never see HTTP.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/genie-capital/algee-gateway/internal/core/domain"
	"github.com/genie-capital/algee-gateway/internal/core/ports"
	"github.com/genie-capital/algee-gateway/internal/infrastructure/resilience"
)

type Client struct {
	http  *resty.Client
	guard *resilience.Guard
}

func New(baseURL string, timeout time.Duration, guard *resilience.Guard) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: httpClient, guard: guard}
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) ListResults(ctx context.Context, params ports.ListResultsParams) (*domain.ResultsPage, error) {
	var page domain.ResultsPage
	err := c.getJSON(ctx, "list results", "/results", listQuery(params), &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) LatestClientResult(ctx context.Context, clientID int) (*domain.Result, error) {
	var result domain.Result
	path := fmt.Sprintf("/clients/%d/result", clientID)
	if err := c.getJSON(ctx, "latest client result", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ClientResultHistory(ctx context.Context, clientID, page, limit int) (*domain.ResultsPage, error) {
	var history domain.ResultsPage
	path := fmt.Sprintf("/clients/%d/results", clientID)
	query := map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
	if err := c.getJSON(ctx, "client result history", path, query, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

func (c *Client) ClientResultDetail(ctx context.Context, clientID int) (*domain.ClientResultDetail, error) {
	var detail domain.ClientResultDetail
	path := fmt.Sprintf("/clients/%d/results/detailed", clientID)
	if err := c.getJSON(ctx, "client result detail", path, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) CompareBatches(ctx context.Context, batch1ID, batch2ID int) (*domain.BatchComparison, error) {
	var comparison domain.BatchComparison
	query := map[string]string{
		"batch1": strconv.Itoa(batch1ID),
		"batch2": strconv.Itoa(batch2ID),
	}
	if err := c.getJSON(ctx, "compare batches", "/results/comparison", query, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}

// ExportResults returns the backend's rendered export verbatim. Unlike
// the JSON endpoints the payload is opaque; only failures carry the
// usual envelope.
func (c *Client) ExportResults(ctx context.Context, params ports.ExportParams) ([]byte, string, error) {
	const operation = "export results"

	query := map[string]string{"format": params.Format}
	if params.UploadBatchID != nil {
		query["uploadBatchId"] = strconv.Itoa(*params.UploadBatchID)
	}

	var data []byte
	var contentType string
	err := c.execute(ctx, operation, func(ctx context.Context) error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(query).
			Get("/results/export")
		if err != nil {
			return domain.WrapError(domain.ErrTemporary, operation, err)
		}
		if resp.StatusCode() >= 300 {
			return statusError(operation, resp)
		}
		data = resp.Body()
		contentType = resp.Header().Get("Content-Type")
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

func listQuery(params ports.ListResultsParams) map[string]string {
	query := map[string]string{
		"page":  strconv.Itoa(params.Page),
		"limit": strconv.Itoa(params.Limit),
	}
	if params.SortBy != "" {
		query["sortBy"] = params.SortBy
	}
	if params.SortOrder != "" {
		query["sortOrder"] = params.SortOrder
	}
	if params.Search != "" {
		query["search"] = params.Search
	}
	if params.UploadBatchID != nil {
		query["uploadBatchId"] = strconv.Itoa(*params.UploadBatchID)
	}
	if params.ClientID != nil {
		query["clientId"] = strconv.Itoa(*params.ClientID)
	}
	if params.MinCreditLimit != nil {
		query["minCreditLimit"] = formatFloat(*params.MinCreditLimit)
	}
	if params.MaxCreditLimit != nil {
		query["maxCreditLimit"] = formatFloat(*params.MaxCreditLimit)
	}
	if params.MinInterestRate != nil {
		query["minInterestRate"] = formatFloat(*params.MinInterestRate)
	}
	if params.MaxInterestRate != nil {
		query["maxInterestRate"] = formatFloat(*params.MaxInterestRate)
	}
	if params.DateFrom != "" {
		query["dateFrom"] = params.DateFrom
	}
	if params.DateTo != "" {
		query["dateTo"] = params.DateTo
	}
	return query
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *Client) getJSON(ctx context.Context, operation, path string, query map[string]string, out any) error {
	return c.execute(ctx, operation, func(ctx context.Context) error {
		req := c.http.R().SetContext(ctx)
		if len(query) > 0 {
			req.SetQueryParams(query)
		}
		resp, err := req.Get(path)
		if err != nil {
			return domain.WrapError(domain.ErrTemporary, operation, err)
		}
		return decodeEnvelope(operation, resp, out)
	})
}

func (c *Client) sendJSON(ctx context.Context, operation, method, path string, body any, out any) error {
	return c.execute(ctx, operation, func(ctx context.Context) error {
		req := c.http.R().SetContext(ctx)
		if body != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(body)
		}
		resp, err := req.Execute(method, path)
		if err != nil {
			return domain.WrapError(domain.ErrTemporary, operation, err)
		}
		return decodeEnvelope(operation, resp, out)
	})
}

func (c *Client) execute(ctx context.Context, operation string, fn func(context.Context) error) error {
	if c.guard == nil {
		return fn(ctx)
	}
	err := c.guard.Execute(ctx, operation, fn, classifyBackendError)
	if resilience.IsCircuitOpen(err) {
		return domain.WrapError(domain.ErrTemporary, operation, err)
	}
	return err
}

// classifyBackendError keeps responses the backend actually produced
// (logical failures, 4xx) from tripping the breaker; only transport
// failures and 5xx count against it.
func classifyBackendError(err error) resilience.ErrorClassification {
	return resilience.ErrorClassification{
		RecordFailure: domain.IsKind(err, domain.ErrTemporary),
	}
}

func decodeEnvelope(operation string, resp *resty.Response, out any) error {
	if resp.StatusCode() >= 300 {
		return statusError(operation, resp)
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return domain.WrapError(domain.ErrBackend, operation, fmt.Errorf("decode response envelope: %w", err))
	}
	if !env.Success {
		message := env.Message
		if message == "" {
			message = "scoring backend reported a failure"
		}
		return domain.WrapError(domain.ErrBackend, operation, errors.New(message))
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return domain.WrapError(domain.ErrBackend, operation, fmt.Errorf("decode response data: %w", err))
	}
	return nil
}

func statusError(operation string, resp *resty.Response) error {
	kind := domain.ErrBackend
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		kind = domain.ErrNotFound
	case resp.StatusCode() >= 500:
		kind = domain.ErrTemporary
	}
	return domain.WrapError(kind, operation,
		fmt.Errorf("status %s: %s", resp.Status(), backendMessage(resp.Body())))
}
