package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang-trading-insights/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// Config configures one logical API client.
type Config struct {
	Name                string
	ConnectTimeout      time.Duration
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	Debug               bool
	MaxRequestPerMinute int
}

// Request describes a single JSON call. BaseURL is given per request so a
// client can follow a base URL that changes at runtime.
type Request struct {
	Method  string
	BaseURL string
	Path    string
	Query   url.Values
	Body    interface{}
}

// Client performs JSON requests and classifies their outcome.
type Client struct {
	name       string
	httpClient *http.Client
	log        *logger.Logger
	limiter    *rate.Limiter
	validate   *validator.Validate
}

// New creates a client. Zero timeouts default to 30 seconds each.
func New(cfg Config, log *logger.Logger) *Client {
	connect := orDefault(cfg.ConnectTimeout)
	read := orDefault(cfg.ReadTimeout)
	write := orDefault(cfg.WriteTimeout)

	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connect,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   connect,
		ResponseHeaderTimeout: read,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
	}

	var transport http.RoundTripper = base
	if cfg.Debug {
		transport = &loggingTransport{next: base, log: log, name: cfg.Name}
	}

	var limiter *rate.Limiter
	if cfg.MaxRequestPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.MaxRequestPerMinute)), 1)
	}

	return &Client{
		name: cfg.Name,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   connect + read + write,
		},
		log:      log,
		limiter:  limiter,
		validate: validator.New(),
	}
}

func orDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Do sends req and decodes a successful body into out (nil to discard it).
// The error, if any, is a *TransportError, *HTTPStatusError or
// *MalformedResponseError.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	target, err := buildURL(req.BaseURL, req.Path, req.Query)
	if err != nil {
		return &TransportError{Method: req.Method, URL: req.BaseURL + "/" + req.Path, Err: err}
	}

	requestID := uuid.NewString()
	ctx = logger.ContextWithRequestID(ctx, requestID)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.log.ErrorContext(ctx, "Failed to wait for request limit", logger.StringField("client", c.name), logger.ErrorField(err))
			return &TransportError{Method: req.Method, URL: target, Err: err}
		}
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return &TransportError{Method: req.Method, URL: target, Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.DebugContext(ctx, "Request failed before a response was received",
			logger.StringField("client", c.name), logger.StringField("url", target), logger.ErrorField(err))
		return &TransportError{Method: req.Method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: req.Method, URL: target, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp, respBody),
			Body:       string(respBody),
		}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return &MalformedResponseError{Err: errors.New("empty response body")}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &MalformedResponseError{Err: err}
	}
	if err := c.validate.Struct(out); err != nil {
		var invalid *validator.InvalidValidationError
		if !errors.As(err, &invalid) {
			return &MalformedResponseError{Err: err}
		}
	}
	return nil
}

func buildURL(baseURL, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("base url is empty")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// errorMessage prefers a message carried in a JSON error body and falls back
// to the reason phrase.
func errorMessage(resp *http.Response, body []byte) string {
	var payload struct {
		Detail  interface{} `json:"detail"`
		Message string      `json:"message"`
		Error   string      `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if s, ok := payload.Detail.(string); ok && s != "" {
			return s
		}
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
