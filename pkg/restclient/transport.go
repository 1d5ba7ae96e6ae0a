package restclient

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"golang-trading-insights/pkg/logger"

	"go.uber.org/zap"
)

// loggingTransport logs full request and response bodies. It is only
// installed for debug builds.
type loggingTransport struct {
	next http.RoundTripper
	log  *logger.Logger
	name string
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	fields := []zap.Field{
		logger.StringField("client", t.name),
		logger.StringField("method", req.Method),
		logger.StringField("url", req.URL.String()),
	}

	if req.Body != nil {
		payload, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(payload))
		fields = append(fields, logger.StringField("request_body", string(payload)))
	}
	t.log.DebugContext(ctx, "--> HTTP request", fields...)

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	fields = append(fields, logger.Field("duration", time.Since(start)))
	if err != nil {
		t.log.DebugContext(ctx, "<-- HTTP FAILED", append(fields, logger.ErrorField(err))...)
		return nil, err
	}

	payload, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(payload))

	fields = append(fields,
		logger.IntField("status_code", resp.StatusCode),
		logger.StringField("response_body", string(payload)),
	)
	t.log.DebugContext(ctx, "<-- HTTP response", fields...)
	return resp, nil
}
