package wikidata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ben10dynartio/countryinfo/pkg/errors"
)

const sampleEnvelope = `{
  "results": {
    "bindings": [
      {
        "country": {"type": "uri", "value": "http://www.wikidata.org/entity/Q40"},
        "countryLabel": {"type": "literal", "value": "Austria"},
        "codeiso2": {"type": "literal", "value": "AT"}
      },
      {
        "country": {"type": "uri", "value": "http://www.wikidata.org/entity/Q228"},
        "countryLabel": {"type": "literal", "value": "Andorra"}
      }
    ]
  }
}`

func TestClientQuery(t *testing.T) {
	var gotQuery, gotFormat string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotFormat = r.URL.Query().Get("format")
		w.Header().Set("Content-Type", "application/sparql-results+json")
		_, _ = w.Write([]byte(sampleEnvelope))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))
	rows, err := client.Query(context.Background(), "SELECT ?country WHERE {}")
	require.NoError(t, err)

	assert.Equal(t, "SELECT ?country WHERE {}", gotQuery)
	assert.Equal(t, "json", gotFormat)

	require.Len(t, rows, 2)
	assert.Equal(t, "AT", rows[0].Get("codeiso2"))
	assert.Equal(t, "Austria", rows[0].Get("countryLabel"))

	// Variables absent from a binding read as empty string, never an error.
	assert.Equal(t, "", rows[1].Get("codeiso2"))
	assert.Equal(t, "Andorra", rows[1].Get("countryLabel"))
}

func TestClientQueryRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "endpoint overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))
	_, err := client.Query(context.Background(), "SELECT ?country WHERE {}")

	var remote *errors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusServiceUnavailable, remote.StatusCode)
	assert.Contains(t, remote.Message, "endpoint overloaded")
	assert.ErrorIs(t, err, errors.ErrServiceUnavailable)
}

func TestClientQueryMalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))
	_, err := client.Query(context.Background(), "SELECT ?country WHERE {}")

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestClientDefaults(t *testing.T) {
	assert.Equal(t, DefaultEndpoint, NewClient().Endpoint())
	// An empty endpoint override keeps the default.
	assert.Equal(t, DefaultEndpoint, NewClient(WithEndpoint("")).Endpoint())
}
