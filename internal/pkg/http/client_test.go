package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/piresc/flashfood/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Name string `json:"name"`
}

func TestAPIKeyClient_PostJSON(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "orders-key", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in echoPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		w.WriteHeader(nethttp.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": in})
	}))
	defer server.Close()

	client := NewAPIKeyClient("orders-service", server.URL+"/", "orders-key")

	var out struct {
		Data echoPayload `json:"data"`
	}
	err := client.PostJSON(context.Background(), "/orders", echoPayload{Name: "pho"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "pho", out.Data.Name)
}

func TestAPIKeyClient_GetJSON_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(nethttp.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"order not found","code":404}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient("orders-service", server.URL, "")
	err := client.GetJSON(context.Background(), "/orders/x", nil)

	require.Error(t, err)
	assert.Equal(t, nethttp.StatusNotFound, StatusCode(err))
	assert.Contains(t, err.Error(), "order not found")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAPIKeyClient_GetJSON_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if atomic.AddInt32(&calls, 1) < 2 {
			w.WriteHeader(nethttp.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"name":"ok"}}`))
	}))
	defer server.Close()

	client := NewAPIKeyClient("drivers-service", server.URL, "")

	var out struct {
		Data echoPayload `json:"data"`
	}
	require.NoError(t, client.GetJSON(context.Background(), "/internal/drivers/within", &out))
	assert.Equal(t, "ok", out.Data.Name)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestStatusCode_NonHTTPError(t *testing.T) {
	assert.Zero(t, StatusCode(context.Canceled))
	assert.False(t, isRetryable(context.Canceled))
	assert.True(t, isRetryable(&HTTPError{StatusCode: 503}))
	assert.False(t, isRetryable(&HTTPError{StatusCode: 409}))
}

func TestAPIKeyClient_PropagatesRequestID(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "req-789", r.Header.Get(requestcontext.Header))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": echoPayload{Name: "ok"}})
	}))
	defer server.Close()

	client := NewAPIKeyClient("drivers-service", server.URL, "")
	ctx := requestcontext.WithRequestID(context.Background(), "req-789")

	var out struct {
		Data echoPayload `json:"data"`
	}
	require.NoError(t, client.GetJSON(ctx, "/internal/drivers/within", &out))
	assert.Equal(t, "ok", out.Data.Name)
}
