package ordinals

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/pgk/retryablehttp"
)

const (
	balanceTTL = 60 * time.Second
	tickerTTL  = 300 * time.Second

	opiPrefix        = "/opi/v1/brc20"
	noBalanceFound   = "no balance found"
	defaultDecimals  = 18
	maxOPIBodyLength = 1 << 20
)

type opiResponse struct {
	Error  string          `json:"error"`
	Result json.RawMessage `json:"result"`
	Data   json.RawMessage `json:"data"`

	payload []byte
}

// BRC20Balances lists the tokens held by address. A wallet without tokens
// yields an empty slice. ErrBRC20AccessLimited means the API key may not
// use the indexer endpoints.
func (c *Client) BRC20Balances(ctx context.Context, address string) ([]model.BRC20Token, error) {
	return cached(c, "balance:"+address, balanceTTL, func() ([]model.BRC20Token, error) {
		resp, err := c.getOPI(ctx, "/get_current_balance_of_wallet?address="+url.QueryEscape(address))
		if err != nil {
			return nil, err
		}

		tokens := []model.BRC20Token{}
		switch {
		case resp.Error == noBalanceFound:
			return tokens, nil
		case resp.Error != "":
			return nil, fmt.Errorf("%w: indexer error: %s", model.ErrUpstreamUnavailable, resp.Error)
		case !present(resp.Result):
			return tokens, nil
		}

		var entries []map[string]any
		if err := json.Unmarshal(resp.Result, &entries); err != nil {
			return nil, fmt.Errorf("%w: invalid balance list: %w", model.ErrUpstreamUnavailable, err)
		}

		for _, e := range entries {
			tokens = append(tokens, model.BRC20Token{
				Ticker:       field(e, "tick", "ticker"),
				Balance:      fieldOr(e, "0", "overall_balance", "balance"),
				Available:    fieldOr(e, "0", "available_balance", "available"),
				Transferable: fieldOr(e, "0", "transferable_balance", "transferable"),
				Decimals:     decimals(e),
			})
		}
		return tokens, nil
	})
}

// BRC20TickerInfo returns the indexer's description of ticker as is.
func (c *Client) BRC20TickerInfo(ctx context.Context, ticker string) (map[string]any, error) {
	return cached(c, "ticker:"+ticker, tickerTTL, func() (map[string]any, error) {
		resp, err := c.getOPI(ctx, "/ticker_info?ticker="+url.QueryEscape(ticker))
		if err != nil {
			return nil, err
		}

		payload := resp.payload
		switch {
		case present(resp.Result):
			payload = resp.Result
		case present(resp.Data):
			payload = resp.Data
		}

		var info map[string]any
		if err := json.Unmarshal(payload, &info); err != nil {
			return nil, fmt.Errorf("%w: invalid ticker info: %w", model.ErrUpstreamUnavailable, err)
		}
		return info, nil
	})
}

func (c *Client) getOPI(ctx context.Context, path string) (opiResponse, error) {
	if c.apiKey == "" {
		return opiResponse{}, model.ErrAPIKeyMissing
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+opiPrefix+path, nil)
	if err != nil {
		return opiResponse{}, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil && resp == nil {
		if ctx.Err() != nil {
			return opiResponse{}, ctx.Err()
		}
		return opiResponse{}, fmt.Errorf("%w: %w", model.ErrUpstreamUnavailable, err)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxOPIBodyLength))
	if err != nil {
		return opiResponse{}, fmt.Errorf("read indexer response: %w", err)
	}

	var out opiResponse
	decodeErr := json.Unmarshal(payload, &out)
	out.payload = payload

	switch {
	case resp.StatusCode == http.StatusBadRequest && decodeErr == nil && out.Error == noBalanceFound:
		return out, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return opiResponse{}, model.ErrBRC20AccessLimited
	case resp.StatusCode == http.StatusTooManyRequests:
		return opiResponse{}, &RateLimitedError{RetryAfter: retryablehttp.RetryAfter(resp)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.lg.Warnf("indexer %s: %d %s", path, resp.StatusCode, truncate(payload, maxErrorBody))
		return opiResponse{}, fmt.Errorf("%w: indexer error %d", model.ErrUpstreamUnavailable, resp.StatusCode)
	case decodeErr != nil:
		return opiResponse{}, fmt.Errorf("%w: invalid JSON response: %w", model.ErrUpstreamUnavailable, decodeErr)
	}

	return out, nil
}

func cached[T any](c *Client, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if v, ok := c.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	c.cache.Set(key, v, ttl)
	return v, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}

// field returns the first key holding a non-empty string or number.
func field(e map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := e[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func fieldOr(e map[string]any, def string, keys ...string) string {
	if v := field(e, keys...); v != "" {
		return v
	}
	return def
}

func decimals(e map[string]any) int {
	if n, err := strconv.Atoi(field(e, "decimals")); err == nil {
		return n
	}
	return defaultDecimals
}
