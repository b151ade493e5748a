// Package price fetches the bitcoin spot price from a CoinGecko compatible API.
package price

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/pgk/retryablehttp"
)

const (
	priceTTL = 60 * time.Second

	priceKey  = "btc-usd"
	marketKey = "btc-market"

	pricePath  = "/simple/price?ids=bitcoin&vs_currencies=usd&include_last_updated_at=true&include_24hr_change=true"
	marketPath = "/coins/bitcoin?localization=false&tickers=false&market_data=true&community_data=false&developer_data=false"

	fallbackMainnetUSD = 45000
	fallbackTestnetUSD = 30000
	fallbackChange     = 2.5
)

type Client struct {
	baseURL string
	network model.Network
	http    *retryablehttp.RetryableClient
	cache   *gocache.Cache
	lg      *zap.SugaredLogger
	now     func() time.Time
}

func New(baseURL string, network model.Network, httpClient *retryablehttp.RetryableClient, lg *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		network: network,
		http:    httpClient,
		// Entries never expire; callers check fetchedAt against priceTTL.
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
		lg:    lg,
		now:   time.Now,
	}
}

type simplePrice struct {
	Bitcoin struct {
		USD           float64 `json:"usd"`
		USD24hChange  float64 `json:"usd_24h_change"`
		LastUpdatedAt int64   `json:"last_updated_at"`
	} `json:"bitcoin"`
}

type cachedPrice struct {
	price     model.BTCPrice
	fetchedAt time.Time
}

// BTCPrice never fails. When the upstream is unreachable it serves the last
// known price, or a fixed per-network fallback, with Stale set.
func (c *Client) BTCPrice(ctx context.Context) model.BTCPrice {
	var last *cachedPrice
	if v, ok := c.cache.Get(priceKey); ok {
		last = v.(*cachedPrice)
		if c.now().Sub(last.fetchedAt) < priceTTL {
			return last.price
		}
	}

	var raw simplePrice
	if err := c.getJSON(ctx, pricePath, &raw); err != nil {
		c.lg.Warnf("btc price: %v", err)

		if last != nil {
			stale := last.price
			stale.Stale = true
			return stale
		}
		return c.fallback()
	}

	p := model.BTCPrice{
		USD:         raw.Bitcoin.USD,
		Change24h:   raw.Bitcoin.USD24hChange,
		LastUpdated: raw.Bitcoin.LastUpdatedAt,
	}
	c.cache.Set(priceKey, &cachedPrice{price: p, fetchedAt: c.now()}, gocache.NoExpiration)

	return p
}

func (c *Client) fallback() model.BTCPrice {
	usd := float64(fallbackMainnetUSD)
	if c.network == model.NetworkTestnet {
		usd = fallbackTestnetUSD
	}

	return model.BTCPrice{
		USD:         usd,
		Change24h:   fallbackChange,
		LastUpdated: c.now().Unix(),
		Stale:       true,
	}
}

// MarketData returns the raw market block for bitcoin.
func (c *Client) MarketData(ctx context.Context) (map[string]any, error) {
	if v, ok := c.cache.Get(marketKey); ok {
		m := v.(*cachedMarket)
		if c.now().Sub(m.fetchedAt) < priceTTL {
			return m.data, nil
		}
	}

	var data map[string]any
	if err := c.getJSON(ctx, marketPath, &data); err != nil {
		return nil, err
	}
	c.cache.Set(marketKey, &cachedMarket{data: data, fetchedAt: c.now()}, gocache.NoExpiration)

	return data, nil
}

type cachedMarket struct {
	data      map[string]any
	fetchedAt time.Time
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "inscribe-dashboard/1.0")

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil && resp == nil {
		return fmt.Errorf("%w: price: %w", model.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: price API error %d", model.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode price response: %w", err)
	}

	return nil
}
