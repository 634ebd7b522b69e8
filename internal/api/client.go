// Package api is the HTTP client for the remote assistant backend. The
// backend is an opaque collaborator: two JSON POST endpoints, no retries, no
// idempotency. Validation happens here so a blank field never reaches the
// network.
package api

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

	"go.uber.org/zap"

	"campusmind/internal/sources"
)

// DefaultBaseURL is the production assistant backend.
const DefaultBaseURL = "https://slfagrouche-ai-suny-agent.hf.space"

// DefaultQuestion is substituted when a professor search leaves the
// question blank.
const DefaultQuestion = "What can you tell me about this professor?"

// User identifiers sent with every request, chosen by the consent flag.
const (
	UserIDConsented = "consented-user"
	UserIDAnonymous = "anonymous"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 10 * 1024 * 1024

var (
	// ErrMissingField marks a validation failure caught before any network
	// call was made.
	ErrMissingField = errors.New("required field is empty")

	// ErrQueryFailed marks a transport error or non-2xx status. Callers show
	// a generic remediation message; no status-specific branching exists.
	ErrQueryFailed = errors.New("query failed")
)

// Config holds client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 60 * time.Second,
	}
}

// Client issues queries against the assistant backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client from config, filling in defaults for zero
// values.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     cfg.Logger,
	}
}

// Response is the common shape of both endpoints.
type Response struct {
	Response  string                  `json:"response"`
	AgentType string                  `json:"agent_type"`
	Sources   *sources.SourcesPayload `json:"sources,omitempty"`
}

// queryRequest is the POST /query body.
type queryRequest struct {
	Query  string `json:"query"`
	UserID string `json:"user_id"`
}

// professorRequest is the POST /professor body.
type professorRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CollegeName string `json:"college_name"`
	Question    string `json:"question"`
	UserID      string `json:"user_id"`
}

// ProfessorQuery is the caller-facing professor search input.
type ProfessorQuery struct {
	FirstName   string
	LastName    string
	CollegeName string
	Question    string
}

// SubmitQuery sends a general question. Text must be non-empty after
// trimming.
func (c *Client) SubmitQuery(ctx context.Context, text, userID string) (*Response, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: query text", ErrMissingField)
	}
	return c.post(ctx, "/query", queryRequest{Query: text, UserID: userID})
}

// SubmitProfessorQuery sends a professor search. First name, last name, and
// college are required; a blank question falls back to DefaultQuestion.
func (c *Client) SubmitProfessorQuery(ctx context.Context, q ProfessorQuery, userID string) (*Response, error) {
	q.FirstName = strings.TrimSpace(q.FirstName)
	q.LastName = strings.TrimSpace(q.LastName)
	q.CollegeName = strings.TrimSpace(q.CollegeName)
	q.Question = strings.TrimSpace(q.Question)

	switch {
	case q.FirstName == "":
		return nil, fmt.Errorf("%w: first name", ErrMissingField)
	case q.LastName == "":
		return nil, fmt.Errorf("%w: last name", ErrMissingField)
	case q.CollegeName == "":
		return nil, fmt.Errorf("%w: college name", ErrMissingField)
	}
	if q.Question == "" {
		q.Question = DefaultQuestion
	}

	return c.post(ctx, "/professor", professorRequest{
		FirstName:   q.FirstName,
		LastName:    q.LastName,
		CollegeName: q.CollegeName,
		Question:    q.Question,
		UserID:      userID,
	})
}

func (c *Client) post(ctx context.Context, path string, body any) (*Response, error) {
	// Apply the client timeout when the caller's context has no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrQueryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrQueryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.logger.Debug("submitting query", zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrQueryFailed, err)
	}

	// Any non-2xx status is a failure; the body is not parsed.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("backend returned error status",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: HTTP status %d", ErrQueryFailed, resp.StatusCode)
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrQueryFailed, err)
	}

	c.logger.Debug("query completed",
		zap.String("path", path),
		zap.String("agent_type", out.AgentType),
		zap.Duration("elapsed", time.Since(start)))
	return &out, nil
}
