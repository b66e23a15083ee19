package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/terra-clan/interview-coach/internal/models"
)

// Client is a Go SDK for the interview-coach API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new interview-coach client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is an error reported by the server in the response envelope
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s - %s", e.StatusCode, e.Code, e.Message)
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ListByRole returns the question catalog of a role
func (c *Client) ListByRole(ctx context.Context, role models.Role) ([]models.Question, error) {
	return call[[]models.Question](ctx, c, http.MethodGet, "/api/v1/questions/by-role/"+url.PathEscape(role.String()), nil)
}

// GetQuestion returns the SWE question at the zero-based position id
func (c *Client) GetQuestion(ctx context.Context, id int) (*models.Question, error) {
	q, err := call[models.Question](ctx, c, http.MethodGet, fmt.Sprintf("/api/v1/questions/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// SubmitAnswer records a solution for question id and returns it as stored
func (c *Client) SubmitAnswer(ctx context.Context, id string, solution models.Solution) (*models.Solution, error) {
	s, err := call[models.Solution](ctx, c, http.MethodPost, "/api/v1/questions/"+url.PathEscape(id), solution)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Solutions returns every recorded solution in submission order
func (c *Client) Solutions(ctx context.Context) ([]models.Solution, error) {
	return call[[]models.Solution](ctx, c, http.MethodGet, "/api/v1/questions/solutions", nil)
}

// Report builds a report for role. An unset role lets the server choose.
func (c *Client) Report(ctx context.Context, role models.Role) (*models.Report, error) {
	path := "/api/v1/questions/report"
	if role.IsValid() {
		path += "?role=" + url.QueryEscape(role.String())
	}
	r, err := call[models.Report](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FollowUps asks for follow-up questions for report
func (c *Client) FollowUps(ctx context.Context, report models.Report) ([]models.Question, error) {
	return call[[]models.Question](ctx, c, http.MethodPost, "/api/v1/questions/follow-up", report)
}

// Health checks if the service is healthy
func (c *Client) Health(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	return err
}

func call[T any](ctx context.Context, c *Client, method, path string, payload interface{}) (T, error) {
	var zero T

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return zero, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return zero, err
	}

	var result envelope[T]
	if err := json.Unmarshal(resp, &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return result.Data, nil
}

// doRequest performs an HTTP request. Non-2xx responses are returned
// as *APIError.
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "http_error", Message: strings.TrimSpace(string(respBody))}
		var result envelope[json.RawMessage]
		if json.Unmarshal(respBody, &result) == nil && result.Error != nil {
			apiErr.Code = result.Error.Code
			apiErr.Message = result.Error.Message
		}
		return nil, apiErr
	}

	return respBody, nil
}
