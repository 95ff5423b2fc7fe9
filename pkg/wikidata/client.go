package wikidata

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ben10dynartio/countryinfo/internal/transport"
)

// DefaultEndpoint is the public Wikidata SPARQL query service.
const DefaultEndpoint = "https://query.wikidata.org/sparql"

// serviceName identifies the query service in errors and logs.
const serviceName = "wikidata"

// Querier executes a SPARQL query and returns one binding per result row.
// The reconciler depends on this interface so tests can substitute a fake
// binding source for the live endpoint.
type Querier interface {
	Query(ctx context.Context, sparql string) ([]Binding, error)
}

// Client queries the Wikidata SPARQL endpoint over HTTP.
type Client struct {
	endpoint  string
	transport *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the query service URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.transport = transport.NewWithHTTPClient(hc)
	}
}

// NewClient creates a client for the Wikidata query service.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint:  DefaultEndpoint,
		transport: transport.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the query service URL in use.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// queryResponse is the SPARQL JSON results envelope.
type queryResponse struct {
	Results struct {
		Bindings []map[string]struct {
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

// Query performs a synchronous GET against the query service and flattens
// the response envelope into one Binding per result row. Any non-success
// status aborts with a RemoteError; there are no retries.
func (c *Client) Query(ctx context.Context, sparql string) ([]Binding, error) {
	params := url.Values{}
	params.Set("query", sparql)
	params.Set("format", "json")

	resp, err := c.transport.Get(ctx, c.endpoint, params)
	if err != nil {
		return nil, err
	}

	var envelope queryResponse
	if err := transport.DecodeResponse(resp, serviceName, &envelope); err != nil {
		return nil, err
	}

	rows := make([]Binding, 0, len(envelope.Results.Bindings))
	for _, item := range envelope.Results.Bindings {
		row := make(Binding, len(item))
		for name, wrapper := range item {
			row[name] = wrapper.Value
		}
		rows = append(rows, row)
	}
	return rows, nil
}
