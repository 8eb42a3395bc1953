package upstream

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"binance-relay/pkg/logger"
	"binance-relay/pkg/metrics"
	"binance-relay/pkg/signature"

	"resty.dev/v3"
)

// Binance forwards the API key in a dedicated header; it is never part of
// the signed query.
const apiKeyHeader = "X-MBX-APIKEY"

// Overridable clock for tests.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// Client is the REST client for the exchange. One outbound GET per relay
// request, bounded by the configured timeout, no retries.
type Client struct {
	rest    *resty.Client
	metrics *metrics.RelayMetrics
}

// New creates a client against baseURL with the given request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "binance-relay/1.0")

	return &Client{
		rest:    rest,
		metrics: metrics.GetMetrics(),
	}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.rest.Close()
}

// Get performs a public (unsigned) GET against path. Params may be nil for
// endpoints without query parameters.
func (c *Client) Get(ctx context.Context, path string, params *signature.Params) ([]byte, int, error) {
	query := ""
	if params != nil {
		query = params.Encode()
	}
	return c.do(ctx, path, query, "")
}

// GetSigned performs an authenticated GET: a fresh millisecond timestamp is
// appended to params, the set is signed with secret, and the signature is
// appended as the last query parameter. The API key travels in a header; the
// secret never leaves the process.
func (c *Client) GetSigned(ctx context.Context, path, apiKey, secret string, params *signature.Params) ([]byte, int, error) {
	if params == nil {
		params = signature.New()
	}
	params.Set("timestamp", strconv.FormatInt(nowMillis(), 10))

	query, err := signature.SignedQuery(secret, params)
	if err != nil {
		return nil, 0, err
	}
	return c.do(ctx, path, query, apiKey)
}

// do sends the request with the query string attached verbatim. The query is
// never handed to url.Values: that would re-sort and re-encode it, and a
// signed query must hit the wire byte for byte as it was signed.
func (c *Client) do(ctx context.Context, path, query, apiKey string) ([]byte, int, error) {
	url := path
	if query != "" {
		url += "?" + query
	}

	req := c.rest.R().SetContext(ctx)
	if apiKey != "" {
		req.SetHeader(apiKeyHeader, apiKey)
	}

	start := time.Now()
	resp, err := req.Get(url)
	elapsed := time.Since(start).Milliseconds()
	c.metrics.UpstreamDuration.WithLabelValues(path).Observe(float64(elapsed))

	if err != nil {
		c.metrics.UpstreamErrors.WithLabelValues(path, "transport").Inc()
		logger.Errorf("Upstream request to %s failed: %v", path, err)
		return nil, 0, err
	}

	status := resp.StatusCode()
	c.metrics.UpstreamRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()

	body := resp.Bytes()
	if resp.IsSuccess() {
		logger.Debugf("Upstream GET %s: status %d, %d bytes, %dms", path, status, len(body), elapsed)
		return body, status, nil
	}

	c.metrics.UpstreamErrors.WithLabelValues(path, "rejected").Inc()
	return nil, status, parseError(status, body)
}

// parseError maps a non-2xx upstream body to an *Error. Bodies that are not
// the documented {"code","msg"} shape still produce a usable error.
func parseError(status int, body []byte) *Error {
	var payload struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Msg == "" {
		return &Error{StatusCode: status, Message: string(body)}
	}
	return &Error{StatusCode: status, Code: payload.Code, Message: payload.Msg}
}
