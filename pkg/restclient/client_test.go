package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"golang-trading-insights/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type item struct {
	ID     int     `json:"id"`
	Symbol string  `json:"symbol" validate:"required"`
	Name   *string `json:"name"`
}

func newTestClient(cfg Config) *Client {
	return New(cfg, logger.NewNop())
}

func TestDo_DecodesPayloadAndSendsQuery(t *testing.T) {
	var gotQuery url.Values
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items", r.URL.Path)
		gotQuery = r.URL.Query()
		gotRequestID = r.Header.Get(requestIDHeader)
		_, _ = w.Write([]byte(`{"id": 7, "symbol": "AAPL", "name": null, "extra": "ignored"}`))
	}))
	defer srv.Close()

	c := newTestClient(Config{Name: "test"})
	var out item
	err := c.Do(context.Background(), Request{
		Method:  http.MethodGet,
		BaseURL: srv.URL + "/",
		Path:    "api/items",
		Query:   url.Values{"limit": []string{"50"}},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "AAPL", out.Symbol)
	assert.Nil(t, out.Name)
	assert.Equal(t, "50", gotQuery.Get("limit"))
	assert.NotEmpty(t, gotRequestID)
}

func TestDo_HTTPStatusErrorUsesDetailMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"detail": "Ticker AAPL already exists"}`))
	}))
	defer srv.Close()

	err := newTestClient(Config{}).Do(context.Background(), Request{Method: http.MethodPost, BaseURL: srv.URL, Path: "api/tickers", Body: map[string]string{"ticker": "AAPL"}}, &item{})

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
	assert.Equal(t, "Ticker AAPL already exists", statusErr.Message)
	assert.False(t, IsTransport(err))
	assert.False(t, IsMalformed(err))
}

func TestDo_HTTPStatusErrorFallsBackToReasonPhrase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestClient(Config{}).Do(context.Background(), Request{Method: http.MethodGet, BaseURL: srv.URL, Path: "x"}, &item{})

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.True(t, statusErr.NotFound())
	assert.Equal(t, "Not Found", statusErr.Message)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestDo_MalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing required field", body: `{"id": 1}`},
		{name: "wrong type", body: `{"id": "one", "symbol": "AAPL"}`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestClient(Config{}).Do(context.Background(), Request{Method: http.MethodGet, BaseURL: srv.URL, Path: "x"}, &item{})
			assert.True(t, IsMalformed(err), "got %v", err)
			assert.Equal(t, 0, StatusCode(err))
		})
	}
}

func TestDo_NilOutputDiscardsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestClient(Config{}).Do(context.Background(), Request{Method: http.MethodDelete, BaseURL: srv.URL, Path: "api/tickers/AAPL"}, nil)
	assert.NoError(t, err)
}

func TestDo_TransportErrors(t *testing.T) {
	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()

		err := newTestClient(Config{}).Do(context.Background(), Request{Method: http.MethodGet, BaseURL: base, Path: "x"}, &item{})
		assert.True(t, IsTransport(err), "got %v", err)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		c := newTestClient(Config{ReadTimeout: 50 * time.Millisecond, ConnectTimeout: 50 * time.Millisecond, WriteTimeout: 50 * time.Millisecond})
		err := c.Do(context.Background(), Request{Method: http.MethodGet, BaseURL: srv.URL, Path: "x"}, &item{})

		var transportErr *TransportError
		require.True(t, errors.As(err, &transportErr), "got %v", err)
		assert.True(t, transportErr.Timeout())
	})

	t.Run("invalid base url", func(t *testing.T) {
		err := newTestClient(Config{}).Do(context.Background(), Request{Method: http.MethodGet, BaseURL: "ftp://example.com", Path: "x"}, &item{})
		assert.True(t, IsTransport(err))
	})
}

func TestDo_DebugLogsBodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1, "symbol": "MSFT"}`))
	}))
	defer srv.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	c := New(Config{Name: "trading", Debug: true}, &logger.Logger{Logger: zap.New(core)})

	require.NoError(t, c.Do(context.Background(), Request{Method: http.MethodGet, BaseURL: srv.URL, Path: "x"}, &item{}))

	responses := logs.FilterMessage("<-- HTTP response").All()
	require.Len(t, responses, 1)
	assert.Equal(t, `{"id": 1, "symbol": "MSFT"}`, responses[0].ContextMap()["response_body"])
}

func TestDo_ReleaseDoesNotLogBodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1, "symbol": "MSFT"}`))
	}))
	defer srv.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	c := New(Config{Name: "trading"}, &logger.Logger{Logger: zap.New(core)})

	require.NoError(t, c.Do(context.Background(), Request{Method: http.MethodGet, BaseURL: srv.URL, Path: "x"}, &item{}))
	assert.Equal(t, 0, logs.Len())
}
