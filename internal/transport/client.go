// Package transport provides the HTTP plumbing shared by query service
// clients: a client with a default timeout, query-parameter GET requests,
// and JSON response decoding with status checking.
package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ben10dynartio/countryinfo/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests. The batch
// run has no retry policy, so a single request is given generous room.
var DefaultHTTPTimeout = 60 * time.Second

// Client provides HTTP client functionality for query endpoints.
type Client struct {
	http *http.Client
}

// New creates a new transport client.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient creates a transport client around an existing http.Client.
func NewWithHTTPClient(hc *http.Client) *Client {
	if hc == nil {
		return New()
	}
	return &Client{http: hc}
}

// Get performs a GET request against endpoint with the given query parameters.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.NewValidationError("endpoint", endpoint, err.Error())
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WrapRemote("transport", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	return c.http.Do(req)
}

// DecodeResponse decodes a JSON response into the target structure.
// A non-2xx status is surfaced as a RemoteError carrying the body excerpt.
func DecodeResponse(resp *http.Response, service string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &errors.RemoteError{
			Service:    service,
			StatusCode: resp.StatusCode,
			Endpoint:   resp.Request.URL.String(),
			Message:    excerpt(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", service+" response", err)
	}

	return nil
}

// excerpt truncates an error body so it stays readable in logs.
func excerpt(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
