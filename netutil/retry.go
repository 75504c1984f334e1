package netutil

import (
	"net/http"
	"strconv"
	"time"
)

// RetryTransport wraps an http.RoundTripper with retry logic: exponential
// backoff for transport errors and transient status codes, honoring
// Retry-After when the server sends one.
type RetryTransport struct {
	// Base is the underlying transport.
	// Default: http.DefaultTransport if nil.
	Base http.RoundTripper

	// OnRetry is called before each retry attempt with the 1-based
	// attempt number, the wait duration and the status code (0 on a
	// transport error).
	OnRetry func(attempt int, wait time.Duration, statusCode int)

	// MaxRetries is the maximum number of retry attempts.
	// Default: 3 if zero.
	MaxRetries int

	// InitialBackoff is the first wait duration. Default: 1s if zero.
	InitialBackoff time.Duration

	// MaxBackoff caps the wait duration. Default: 30s if zero.
	MaxBackoff time.Duration
}

// RoundTrip implements http.RoundTripper.
func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	maxRetries := t.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}
	initial := t.InitialBackoff
	if initial == 0 {
		initial = time.Second
	}
	maxBackoff := t.MaxBackoff
	if maxBackoff == 0 {
		maxBackoff = 30 * time.Second
	}

	var lastErr error
	var lastResp *http.Response

	for attempt := 0; attempt <= maxRetries; attempt++ {
		clone := req.Clone(req.Context())
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			clone.Body = body
		}

		resp, err := base.RoundTrip(clone)
		if err != nil {
			lastErr = err
			lastResp = nil
			if attempt < maxRetries {
				t.wait(attempt, initial, maxBackoff, nil, 0)
			}
			continue
		}

		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = nil
		lastResp = resp
		if attempt < maxRetries {
			wait := backoff(attempt, initial, maxBackoff, resp)
			if t.OnRetry != nil {
				t.OnRetry(attempt+1, wait, resp.StatusCode)
			}
			_ = resp.Body.Close()
			time.Sleep(wait)
		}
	}

	if lastResp != nil {
		return lastResp, nil
	}
	return nil, lastErr
}

func (t *RetryTransport) wait(attempt int, initial, maxBackoff time.Duration, resp *http.Response, status int) {
	wait := backoff(attempt, initial, maxBackoff, resp)
	if t.OnRetry != nil {
		t.OnRetry(attempt+1, wait, status)
	}
	time.Sleep(wait)
}

// backoff computes initial * 2^attempt capped at maxBackoff, preferring a
// parseable Retry-After header when present.
func backoff(attempt int, initial, maxBackoff time.Duration, resp *http.Response) time.Duration {
	if resp != nil {
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil {
				return min(time.Duration(seconds)*time.Second, maxBackoff)
			}
			if at, err := http.ParseTime(retryAfter); err == nil {
				if wait := time.Until(at); wait > 0 {
					return min(wait, maxBackoff)
				}
				return initial
			}
		}
	}
	return min(initial*(1<<attempt), maxBackoff)
}

func retryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
