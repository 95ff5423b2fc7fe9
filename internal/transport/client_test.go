package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ben10dynartio/countryinfo/pkg/errors"
)

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "SELECT 1", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	params := url.Values{}
	params.Set("query", "SELECT 1")

	resp, err := New().Get(context.Background(), server.URL, params)
	require.NoError(t, err)

	var payload struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, DecodeResponse(resp, "test", &payload))
	assert.True(t, payload.OK)
}

func TestClientGetInvalidEndpoint(t *testing.T) {
	_, err := New().Get(context.Background(), "://not-a-url", nil)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestDecodeResponseNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer server.Close()

	resp, err := New().Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	var payload any
	err = DecodeResponse(resp, "test", &payload)

	var remote *errors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusTooManyRequests, remote.StatusCode)
	assert.Equal(t, "test", remote.Service)
	assert.Contains(t, remote.Message, "slow down")
	assert.ErrorIs(t, err, errors.ErrRateLimited)
}

func TestDecodeResponseTruncatesLongBodies(t *testing.T) {
	long := make([]byte, 2048)
	for i := range long {
		long[i] = 'x'
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(long)
	}))
	defer server.Close()

	resp, err := New().Get(context.Background(), server.URL, nil)
	require.NoError(t, err)

	var payload any
	err = DecodeResponse(resp, "test", &payload)

	var remote *errors.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Less(t, len(remote.Message), 600)
	assert.True(t, len(remote.Message) > 0)
}
