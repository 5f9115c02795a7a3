// Package remote loads the same odds documents as package file, fetched over
// HTTP from a bookmaker export or object storage.
package remote

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/fixture-points/internal/platform/logging"
	"github.com/riskibarqy/fixture-points/internal/platform/resilience"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 8 << 20
	errorBodyPreview    = 512
)

var (
	errTransient        = crerr.New("remote source transient failure")
	ErrDocumentTooLarge = crerr.New("remote document exceeds size limit")
)

type ClientConfig struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
	Breaker      resilience.BreakerPolicy
}

// Client downloads documents. Only network errors, timeouts and 5xx/429
// responses count against the breaker.
type Client struct {
	client       *http.Client
	maxBodyBytes int64
	userAgent    string
	breaker      *resilience.Breaker
	logger       *logging.Logger
}

func NewClient(cfg ClientConfig, logger *logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	if logger == nil {
		logger = logging.Default()
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = "fixture-points"
	}

	return &Client{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxBodyBytes: maxBody,
		userAgent:    userAgent,
		breaker:      resilience.NewBreaker(cfg.Breaker),
		logger:       logger,
	}
}

// Fetch returns the document body, or ok=false when the server answers 404.
func (c *Client) Fetch(ctx context.Context, rawURL string) (body []byte, ok bool, err error) {
	target, err := validateHTTPURL(rawURL)
	if err != nil {
		return nil, false, crerr.Wrap(err, "invalid remote source url")
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(attribute.String("remote.url", target))
	}

	var permanent error
	err = c.breaker.Execute(ctx, func(ctx context.Context) error {
		var callErr error
		body, ok, callErr = c.get(ctx, target)
		if callErr != nil && !stderrors.Is(callErr, errTransient) {
			permanent = callErr
			return nil
		}
		return callErr
	})
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "remote source circuit breaker rejected request", "url", target, "state", c.breaker.State())
		}
		return nil, false, err
	}
	if permanent != nil {
		return nil, false, permanent
	}
	return body, ok, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, false, crerr.Wrap(err, "create remote request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, false, ctxErr
		}
		return nil, false, fmt.Errorf("%w: get %s: %v", errTransient, target, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, nil
	case resp.StatusCode/100 != 2:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyPreview))
		if isRetryableStatus(resp.StatusCode) {
			return nil, false, fmt.Errorf("%w: get %s status=%d body=%s", errTransient, target, resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return nil, false, crerr.Newf("get %s status=%d body=%s", target, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, c.maxBodyBytes+1)); err != nil {
		return nil, false, fmt.Errorf("%w: read %s: %v", errTransient, target, err)
	}
	if int64(buf.Len()) > c.maxBodyBytes {
		return nil, false, crerr.Wrapf(ErrDocumentTooLarge, "get %s limit=%d", target, c.maxBodyBytes)
	}

	// buf goes back to the pool, so the caller gets its own copy.
	return append([]byte(nil), buf.B...), true, nil
}

func validateHTTPURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("value is empty")
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}
	return candidate, nil
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
