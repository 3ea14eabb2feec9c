package adapters

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"cran-recipes/internal/ports"
)

// HTTPClientAdapter is the generic GET collaborator. Retry policy for
// transient failures lives here, behind the port; the pipeline core
// never retries.
type HTTPClientAdapter struct {
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

const defaultHTTPTimeout = 60 * time.Second
const defaultHTTPRetries = 3
const defaultHTTPRetryDelay = 200 * time.Millisecond
const maxHTTPRetryDelay = 2 * time.Second

func NewHTTPClientAdapter(timeoutSec int, retries int, retryDelayMs int) HTTPClientAdapter {
	return HTTPClientAdapter{
		Timeout:    normalizeHTTPTimeout(timeoutSec),
		Retries:    normalizeHTTPRetries(retries),
		RetryDelay: normalizeHTTPRetryDelay(retryDelayMs),
	}
}

func (a HTTPClientAdapter) Get(ctx context.Context, url string) (int, []byte, error) {
	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < a.Retries; attempt++ {
		if ctx.Err() != nil {
			return 0, nil, ctx.Err()
		}
		status, body, retry, err := a.getOnce(ctx, url)
		if err == nil && !retry {
			return status, body, nil
		}
		lastStatus, lastBody, lastErr = status, body, err
		if !retry || attempt == a.Retries-1 {
			break
		}
		time.Sleep(a.retryDelay(attempt))
	}
	return lastStatus, lastBody, lastErr
}

func (a HTTPClientAdapter) getOnce(ctx context.Context, url string) (int, []byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to create request").
			WithCause(err)
	}
	client := &http.Client{Timeout: a.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, true, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, true, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("failed to read response body").
			WithCause(err)
	}
	retry := resp.StatusCode >= http.StatusInternalServerError ||
		resp.StatusCode == http.StatusTooManyRequests
	return resp.StatusCode, body, retry, nil
}

func (a HTTPClientAdapter) retryDelay(attempt int) time.Duration {
	delay := a.RetryDelay * time.Duration(1<<attempt)
	if delay > maxHTTPRetryDelay {
		delay = maxHTTPRetryDelay
	}
	return delay
}

func normalizeHTTPTimeout(value int) time.Duration {
	timeout := time.Duration(value) * time.Second
	if timeout <= 0 {
		return defaultHTTPTimeout
	}
	return timeout
}

func normalizeHTTPRetries(value int) int {
	if value <= 0 {
		return defaultHTTPRetries
	}
	return value
}

func normalizeHTTPRetryDelay(value int) time.Duration {
	delay := time.Duration(value) * time.Millisecond
	if delay <= 0 {
		return defaultHTTPRetryDelay
	}
	return delay
}

var _ ports.HTTPPort = HTTPClientAdapter{}
