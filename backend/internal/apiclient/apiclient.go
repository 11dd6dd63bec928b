package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/itchan-dev/confluence-bridge/shared/config"
	internal_errors "github.com/itchan-dev/confluence-bridge/shared/errors"
	"github.com/itchan-dev/confluence-bridge/shared/logger"
	"github.com/itchan-dev/confluence-bridge/shared/middleware/metrics"
)

const (
	userAgent = "confluence-bridge"
	// upstream error bodies are quoted back to callers only up to this size
	maxErrorBody = 512
)

// APIClient handles all communication with the Confluence REST API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
	cloud      bool
	creds      config.Private
}

// New creates a client for the configured site. Cloud sites authenticate with
// basic auth (account email + API token), server sites prefer a personal access token.
func New(cfg config.Confluence, creds config.Private) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimRight(cfg.URL, "/"),
		HttpClient: &http.Client{Timeout: cfg.Timeout},
		cloud:      cfg.IsCloud(),
		creds:      creds,
	}
}

// IsCloud reports which payload flavor the site returns.
func (c *APIClient) IsCloud() bool {
	return c.cloud
}

func (c *APIClient) authorize(req *http.Request) {
	if !c.cloud && c.creds.PersonalToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.creds.PersonalToken)
		return
	}
	if c.creds.Username != "" {
		req.SetBasicAuth(c.creds.Username, c.creds.APIToken)
	}
}

// get is the single helper for API requests. resource labels metrics and error
// messages. Non-2xx responses are turned into ErrorWithStatusCode and the body is closed.
func (c *APIClient) get(ctx context.Context, resource, path string, query url.Values) (*http.Response, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", requestID)
	c.authorize(req)

	started := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(resource, 0, started)
		logger.Log.Error("confluence unavailable", "resource", resource, "request_id", requestID, "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("confluence unavailable: %v", err),
			StatusCode: http.StatusBadGateway,
		}
	}
	metrics.ObserveUpstream(resource, resp.StatusCode, started)
	logger.Log.Debug("confluence request", "resource", resource, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, statusError(resource, resp)
	}
	return resp, nil
}

func statusError(resource string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := strings.TrimSpace(string(body))

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &internal_errors.ErrorWithStatusCode{Message: resource + " not found", StatusCode: http.StatusNotFound}
	case http.StatusBadRequest:
		return &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("confluence rejected %s request: %s", resource, detail),
			StatusCode: http.StatusBadRequest,
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		logger.Log.Warn("confluence rejected credentials", "resource", resource, "status", resp.StatusCode)
		return &internal_errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("confluence rejected credentials (status %d)", resp.StatusCode),
			StatusCode: http.StatusBadGateway,
		}
	}
	return &internal_errors.ErrorWithStatusCode{
		Message:    fmt.Sprintf("confluence returned status %d for %s", resp.StatusCode, resource),
		StatusCode: http.StatusBadGateway,
	}
}

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// Ping checks that the site is reachable and accepts the credentials.
func (c *APIClient) Ping(ctx context.Context) error {
	resp, err := c.get(ctx, "ping", "/rest/api/user/current", nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
