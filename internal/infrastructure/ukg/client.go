// Package ukg is the authenticated HTTP client for the UKG
// time-and-attendance API: roster listing, per-employee detail, and saved
// report fetches, with a cached login token.
package ukg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Endpoint labels are logical names, not raw paths, to keep metric
// cardinality bounded (detail paths embed account ids).
var (
	vendorRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vendor_requests_total",
		Help: "Total vendor API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	vendorRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vendor_request_duration_seconds",
		Help:    "Vendor API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	}, []string{"endpoint"})
)

// Client wraps the three vendor operations behind TokenManager auth.
type Client struct {
	httpClient *http.Client
	tokens     *TokenManager
	baseURL    string
	logger     zerolog.Logger
}

func NewClient(httpClient *http.Client, tokens *TokenManager, baseURL string, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		tokens:     tokens,
		baseURL:    normalizeBaseURL(baseURL),
		logger:     logger,
	}
}

// ListEmployees fetches the full vendor roster.
func (c *Client) ListEmployees(ctx context.Context) ([]RosterEntry, error) {
	var out struct {
		Employees []RosterEntry `json:"employees"`
	}
	if err := c.getJSON(ctx, "v1/employees", "employees", &out); err != nil {
		return nil, err
	}
	return out.Employees, nil
}

// GetEmployeeDetail fetches the per-employee detail record.
func (c *Client) GetEmployeeDetail(ctx context.Context, accountID string) (EmployeeDetail, error) {
	var out EmployeeDetail
	path := "v1/employees/" + url.PathEscape(accountID)
	err := c.getJSON(ctx, path, "employee_detail", &out)
	return out, err
}

// FetchSavedReport posts the report request and returns the raw XML
// document.
func (c *Client) FetchSavedReport(ctx context.Context, settingID string, body SavedReportRequest) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal report request: %w", err)
	}

	path := "v1/report/saved/" + url.PathEscape(settingID)
	overrides := map[string]string{"Accept": "application/xml"}

	resp, err := c.do(ctx, http.MethodPost, path, "report_saved", bytes.NewReader(payload), overrides)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read report response: %w", err)
	}
	return doc, nil
}

func (c *Client) getJSON(ctx context.Context, path, endpoint string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, endpoint, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path, endpoint string, body io.Reader, overrides map[string]string) (*http.Response, error) {
	headers, err := c.tokens.AuthHeaders(ctx, overrides)
	if err != nil {
		return nil, fmt.Errorf("auth headers: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+strings.TrimLeft(path, "/"), body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", endpoint, err)
	}
	req.Header = headers

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	vendorRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		vendorRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, fmt.Errorf("vendor %s: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		vendorRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
		message := readErrorBody(resp.Body)
		resp.Body.Close()
		c.logger.Warn().Str("endpoint", endpoint).Int("status", resp.StatusCode).Msg("vendor request failed")
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Message: message}
	}

	vendorRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
	return resp, nil
}
