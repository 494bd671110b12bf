package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tasktagger/internal/models"
)

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 1024

// ServiceError reports a non-2xx answer from the categorizer service.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("categorizer service returned %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Unwrap maps 422 to models.ErrValidation and everything else to models.ErrServiceFailure.
func (e *ServiceError) Unwrap() error {
	if e.StatusCode == http.StatusUnprocessableEntity {
		return models.ErrValidation
	}
	return models.ErrServiceFailure
}

// Client talks to a running categorizer over HTTP.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*models.HealthResponse, error) {
	var out models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categorize calls POST /categorize with a JSON body.
func (c *Client) Categorize(ctx context.Context, text string) (*models.CategorizeResponse, error) {
	body, err := json.Marshal(models.CategorizeRequest{Text: &text})
	if err != nil {
		return nil, fmt.Errorf("encode categorize request: %w", err)
	}
	var out models.CategorizeResponse
	if err := c.do(ctx, http.MethodPost, "/categorize", body, &out); err != nil {
		return nil, err
	}
	if err := checkLabels(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// checkLabels rejects responses carrying tags or priorities outside the known vocabularies.
func checkLabels(resp *models.CategorizeResponse) error {
	if len(resp.Tags) == 0 {
		return fmt.Errorf("%w: response has no tags", models.ErrServiceFailure)
	}
	for _, t := range resp.Tags {
		if !t.Valid() {
			return fmt.Errorf("%w: unknown tag %q", models.ErrServiceFailure, t)
		}
	}
	if !resp.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", models.ErrServiceFailure, resp.Priority)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s %s: %w", method, path, errors.Join(models.ErrServiceFailure, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		hint, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ServiceError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(hint))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
