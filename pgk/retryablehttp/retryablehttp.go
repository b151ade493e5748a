package retryablehttp

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const DefaultRetryAfter = 60 * time.Second

var ErrRetriesExhausted = errors.New("retries exhausted")

type RetryConfig struct {
	MaxRetries int           // Максимум повторов (по умолчанию 3)
	BaseDelay  time.Duration // Базовая задержка (по умолчанию 100ms)
	MaxDelay   time.Duration // Максимальная задержка (по умолчанию 5s)
	MaxJitter  time.Duration // Максимальный jitter (по умолчанию 100ms)
	Timeout    time.Duration // На одну попытку (по умолчанию 10s)

	// RateLimit caps outgoing attempts per second. Zero disables limiting.
	RateLimit rate.Limit
	Burst     int
}

type RetryableClient struct {
	client      *http.Client
	limiter     *rate.Limiter
	retryConfig RetryConfig
}

func NewRetryableClient(config RetryConfig) *RetryableClient {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.BaseDelay == 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay == 0 {
		config.MaxDelay = 5 * time.Second
	}
	if config.MaxJitter == 0 {
		config.MaxJitter = 100 * time.Millisecond
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	c := &RetryableClient{
		client:      &http.Client{Timeout: config.Timeout},
		retryConfig: config,
	}

	if config.RateLimit > 0 {
		burst := config.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(config.RateLimit, burst)
	}

	return c
}

// isRetryable reports whether another attempt may succeed.
func (c *RetryableClient) isRetryable(resp *http.Response, err error) bool {
	// Сетевые ошибки всегда retry
	if err != nil {
		return true
	}

	if resp == nil {
		return false
	}

	code := resp.StatusCode
	return code == 0 ||
		(code >= 500 && code <= 599) ||
		code == http.StatusTooManyRequests ||
		code == http.StatusRequestTimeout
}

// Do sends req until it gets a non-retryable answer or runs out of attempts.
// Only idempotent methods are retried; a POST gets exactly one attempt.
//
// When the last attempt still fails with a response, that response is
// returned along with ErrRetriesExhausted and its body is left open for the
// caller to inspect (e.g. Retry-After on a 429).
func (c *RetryableClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)

	maxRetries := c.retryConfig.MaxRetries
	if !idempotent(req.Method) {
		maxRetries = 0
	}

	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		if attempt > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, fmt.Errorf("rewind request body: %w", err)
			}
			req.Body = body
		}

		resp, err := c.client.Do(req)

		if err == nil && !c.isRetryable(resp, nil) {
			return resp, nil
		}

		if ctx.Err() != nil {
			if resp != nil {
				resp.Body.Close()
			}
			return nil, ctx.Err()
		}

		// Последняя попытка - возвращаем ошибку
		if attempt == maxRetries {
			if resp != nil {
				return resp, fmt.Errorf("%w: %s", ErrRetriesExhausted, resp.Status)
			}
			return nil, fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
		}

		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.backoffDelay(attempt)):
		}
	}
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// backoffDelay grows exponentially up to MaxDelay and adds jitter.
func (c *RetryableClient) backoffDelay(attempt int) time.Duration {
	backoff := time.Duration(1<<uint(attempt)) * c.retryConfig.BaseDelay
	if backoff > c.retryConfig.MaxDelay {
		backoff = c.retryConfig.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(c.retryConfig.MaxJitter)))
	return backoff + jitter
}

// RetryAfter reads the Retry-After header as seconds or an HTTP date.
func RetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return DefaultRetryAfter
	}

	value := resp.Header.Get("Retry-After")
	if value == "" {
		return DefaultRetryAfter
	}

	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
		return 0
	}

	return DefaultRetryAfter
}
