package search

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

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"usersearch/internal/domain"
)

// RequestIDHeader carries a per-request id so client and server logs can be joined
const RequestIDHeader = "X-Request-ID"

// Searcher looks users up by free text
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.User, error)
}

// Options configures a Client
type Options struct {
	BaseURL     string
	Endpoint    string
	EncodeQuery bool          // escape the query; off sends it as typed
	Timeout     time.Duration // zero leaves timing to the transport
	HTTPClient  *http.Client
}

// Client calls the user search endpoint
type Client struct {
	baseURL     string
	endpoint    string
	encodeQuery bool
	httpClient  *http.Client
}

// NewClient creates a search client
func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		endpoint:    opts.Endpoint,
		encodeQuery: opts.EncodeQuery,
		httpClient:  hc,
	}
}

// URL returns the request URL for query
func (c *Client) URL(query string) string {
	q := query
	if c.encodeQuery {
		q = url.QueryEscape(query)
	}
	return c.baseURL + c.endpoint + "?q=" + q
}

// Search issues one GET for query. A JSON array is returned verbatim in
// server order; a JSON object with an "error" field becomes an *APIError.
func (c *Client) Search(ctx context.Context, query string) ([]domain.User, error) {
	reqURL := c.URL(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	logger := log.With().Str("query", query).Str("request_id", requestID).Logger()
	logger.Debug().Str("url", reqURL).Msg("search request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn().Err(err).Msg("search request failed")
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	users, err := decodeResponse(body, resp.StatusCode)
	if err != nil {
		logger.Warn().Err(err).Int("status", resp.StatusCode).Msg("search response rejected")
		return nil, err
	}

	logger.Debug().Int("status", resp.StatusCode).Int("count", len(users)).Msg("search response")
	return users, nil
}

func decodeResponse(body []byte, status int) ([]domain.User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty search response (status %d)", status)
	}

	switch trimmed[0] {
	case '[':
		var users []domain.User
		if err := json.Unmarshal(trimmed, &users); err != nil {
			return nil, fmt.Errorf("failed to parse search response: %w", err)
		}
		if users == nil {
			users = []domain.User{}
		}
		return users, nil
	case '{':
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse search response: %w", err)
		}
		if payload.Error != "" {
			return nil, &APIError{Message: payload.Error, StatusCode: status}
		}
		return nil, fmt.Errorf("unexpected search response object (status %d)", status)
	default:
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, fmt.Errorf("failed to parse search response: %w", err)
		}
		return nil, fmt.Errorf("unexpected search response %T (status %d)", v, status)
	}
}
