// Package supabase is a minimal Supabase PostgREST client covering the table
// operations the 4DX store needs: select, insert, upsert, update and delete
// with equality filters.
package supabase

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

	"github.com/tidwall/gjson"
)

// Client is a Supabase REST API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New creates a new Supabase client.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// From starts a query builder for a table.
func (c *Client) From(table string) *QueryBuilder {
	return &QueryBuilder{
		client: c,
		table:  table,
	}
}

// Ping checks that the REST endpoint answers with the configured key.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	return resp.Err()
}

// QueryBuilder builds PostgREST queries.
type QueryBuilder struct {
	client     *Client
	table      string
	columns    string
	filters    url.Values
	orders     []string
	onConflict []string
}

// Select specifies columns to select.
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.columns = columns
	return q
}

// Eq adds an equality filter.
func (q *QueryBuilder) Eq(column string, value any) *QueryBuilder {
	if q.filters == nil {
		q.filters = url.Values{}
	}
	q.filters.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Order adds an ORDER BY clause.
func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.orders = append(q.orders, fmt.Sprintf("%s.%s", column, dir))
	return q
}

// OnConflict turns the next insert into an upsert keyed on columns.
func (q *QueryBuilder) OnConflict(columns ...string) *QueryBuilder {
	q.onConflict = columns
	return q
}

// Execute executes a SELECT query.
func (q *QueryBuilder) Execute(ctx context.Context) (*Response, error) {
	params := q.filterParams()
	if q.columns != "" {
		params.Set("select", q.columns)
	}
	if len(q.orders) > 0 {
		params.Set("order", strings.Join(q.orders, ","))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.url(params), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)

	return q.client.do(req)
}

// ExecuteInsert executes an INSERT, or an upsert when OnConflict was set.
func (q *QueryBuilder) ExecuteInsert(ctx context.Context, data any) (*Response, error) {
	params := url.Values{}
	prefer := "return=representation"
	if len(q.onConflict) > 0 {
		params.Set("on_conflict", strings.Join(q.onConflict, ","))
		prefer = "resolution=merge-duplicates," + prefer
	}

	req, err := q.jsonRequest(ctx, http.MethodPost, q.url(params), data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", prefer)

	return q.client.do(req)
}

// ExecuteUpdate executes an UPDATE operation on the filtered rows.
func (q *QueryBuilder) ExecuteUpdate(ctx context.Context, data any) (*Response, error) {
	req, err := q.jsonRequest(ctx, http.MethodPatch, q.url(q.filterParams()), data)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")

	return q.client.do(req)
}

// ExecuteDelete executes a DELETE operation on the filtered rows.
func (q *QueryBuilder) ExecuteDelete(ctx context.Context) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, q.url(q.filterParams()), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	req.Header.Set("Prefer", "return=representation")

	return q.client.do(req)
}

func (q *QueryBuilder) filterParams() url.Values {
	params := url.Values{}
	for column, values := range q.filters {
		for _, v := range values {
			params.Add(column, v)
		}
	}
	return params
}

func (q *QueryBuilder) url(params url.Values) string {
	reqURL := fmt.Sprintf("%s/rest/v1/%s", q.client.baseURL, url.PathEscape(q.table))
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	return reqURL
}

func (q *QueryBuilder) jsonRequest(ctx context.Context, method, reqURL string, data any) (*http.Request, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q.client.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Response is a raw API response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// Err returns an *APIError if the response indicates failure.
func (r *Response) Err() error {
	if r.StatusCode < 400 {
		return nil
	}
	apiErr := &APIError{StatusCode: r.StatusCode}
	if gjson.ValidBytes(r.Body) {
		parsed := gjson.ParseBytes(r.Body)
		apiErr.Code = parsed.Get("code").String()
		apiErr.Message = parsed.Get("message").String()
		if apiErr.Message == "" {
			apiErr.Message = parsed.Get("error").String()
		}
		apiErr.Details = parsed.Get("details").String()
		apiErr.Hint = parsed.Get("hint").String()
	}
	return apiErr
}

// APIError is a PostgREST error payload.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
	Hint       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("supabase error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("supabase error: status %d", e.StatusCode)
}

// UniqueViolation is the Postgres SQLSTATE for unique constraint violations.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether the error is a duplicate-key rejection.
func (e *APIError) IsUniqueViolation() bool {
	return e.Code == UniqueViolation || (e.StatusCode == http.StatusConflict && e.Code == "")
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

func (c *Client) do(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    resp.Header,
	}, nil
}
