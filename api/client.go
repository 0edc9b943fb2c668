package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the base path the backend is mounted under.
	DefaultBaseURL = "/api"
	// DefaultTimeout bounds every request issued by the client.
	DefaultTimeout = 10 * time.Second

	requestIDHeader = "X-Request-Id"
)

// Config holds configuration for a Client.
type Config struct {
	// Absolute base URL of the backend API, e.g. http://localhost:8080/api.
	BaseURL string
	// Timeout applied to each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// Logger receives one line per request. Nil discards.
	Logger *slog.Logger
	// HTTPClient overrides the underlying transport. Its Timeout is replaced by Timeout.
	HTTPClient *http.Client
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	// Message is the error field of the response envelope when present, else the status text.
	Message string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// Client issues requests against the backend. It never retries.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient instantiates and returns a new Client.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, errors.New("base url is required")
	}
	baseURL, err := url.Parse(strings.TrimSuffix(config.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parsing base url")
	}
	if !baseURL.IsAbs() {
		return nil, errors.Errorf("base url %q must be absolute", config.BaseURL)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := &http.Client{}
	if config.HTTPClient != nil {
		copied := *config.HTTPClient
		httpClient = &copied
	}
	httpClient.Timeout = timeout

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        logger,
	}, nil
}

// BaseURL returns the base URL requests are issued against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// do issues one request and decodes the JSON response into out.
// The path is relative to the base URL and must already be escaped.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		requestBody, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "marshaling request")
		}
		body = bytes.NewReader(requestBody)
	}

	endpoint := c.baseURL.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	requestID := uuid.New().String()
	request.Header.Set(requestIDHeader, requestID)
	request.Header.Set("Accept", "application/json")
	if in != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		observe(method, path, 0, start)
		c.log.Warn("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer response.Body.Close()
	observe(method, path, response.StatusCode, start)
	c.log.Debug("request completed", "method", method, "path", path, "request_id", requestID,
		"status", response.StatusCode, "duration", time.Since(start))

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return newStatusError(response.StatusCode, payload)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrap(err, "unmarshaling response")
	}
	return nil
}

func newStatusError(statusCode int, payload []byte) *StatusError {
	statusError := &StatusError{StatusCode: statusCode, Message: http.StatusText(statusCode)}
	envelope := struct {
		Error string `json:"error"`
	}{}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Error != "" {
		statusError.Message = envelope.Error
	}
	return statusError
}
