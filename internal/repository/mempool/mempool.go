// Package mempool reads chain and fee data from a mempool.space compatible explorer.
package mempool

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/pgk/retryablehttp"
)

const (
	heightTTL     = 30 * time.Second
	feesTTL       = 60 * time.Second
	mempoolTTL    = 30 * time.Second
	addressTTL    = 15 * time.Second
	blocksTTL     = 60 * time.Second
	difficultyTTL = 5 * time.Minute

	unusedAddressNote = "Address not found - new or unused address"
)

type Client struct {
	baseURL string
	network model.Network
	http    *retryablehttp.RetryableClient
	cache   *gocache.Cache
	lg      *zap.SugaredLogger
}

func New(baseURL string, network model.Network, httpClient *retryablehttp.RetryableClient, lg *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		network: network,
		http:    httpClient,
		cache:   gocache.New(heightTTL, time.Minute),
		lg:      lg,
	}
}

type txoStats struct {
	FundedTxoSum int64 `json:"funded_txo_sum"`
	SpentTxoSum  int64 `json:"spent_txo_sum"`
	TxCount      int64 `json:"tx_count"`
}

type addressResponse struct {
	ChainStats   txoStats `json:"chain_stats"`
	MempoolStats txoStats `json:"mempool_stats"`
}

type mempoolResponse struct {
	Count        int64       `json:"count"`
	VSize        int64       `json:"vsize"`
	TotalFee     int64       `json:"total_fee"`
	FeeHistogram [][]float64 `json:"fee_histogram"`
}

type blockResponse struct {
	ID        string `json:"id"`
	Height    int64  `json:"height"`
	Timestamp int64  `json:"timestamp"`
	TxCount   int64  `json:"tx_count"`
	Size      int64  `json:"size"`
}

func (c *Client) TipHeight(ctx context.Context) (int64, error) {
	return cached(c, "height", heightTTL, func() (int64, error) {
		var height int64
		err := c.getJSON(ctx, "/blocks/tip/height", &height)
		return height, err
	})
}

func (c *Client) RecommendedFees(ctx context.Context) (model.FeeEstimate, error) {
	return cached(c, "fees", feesTTL, func() (model.FeeEstimate, error) {
		var fees model.FeeEstimate
		if err := c.getJSON(ctx, "/v1/fees/recommended", &fees); err != nil {
			return fees, err
		}
		if fees.MinimumFee == 0 {
			fees.MinimumFee = 1
		}
		return fees, nil
	})
}

func (c *Client) MempoolStats(ctx context.Context) (model.MempoolStats, error) {
	return cached(c, "mempool", mempoolTTL, func() (model.MempoolStats, error) {
		var raw mempoolResponse
		if err := c.getJSON(ctx, "/mempool", &raw); err != nil {
			return model.MempoolStats{}, err
		}
		return model.MempoolStats{
			Count:        raw.Count,
			VSize:        raw.VSize,
			TotalFee:     raw.TotalFee,
			FeeHistogram: raw.FeeHistogram,
		}, nil
	})
}

// AddressBalance never fails on upstream errors: an address the explorer
// does not know is reported as an empty, unused one.
func (c *Client) AddressBalance(ctx context.Context, address string) (model.AddressBalance, error) {
	balance, err := cached(c, "address:"+address, addressTTL, func() (model.AddressBalance, error) {
		var raw addressResponse
		if err := c.getJSON(ctx, "/address/"+url.PathEscape(address), &raw); err != nil {
			return model.AddressBalance{}, err
		}
		return c.balanceFrom(address, raw), nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return model.AddressBalance{}, ctx.Err()
		}
		c.lg.Warnf("address %s check failed: %v", address, err)
		return model.AddressBalance{Address: address, Network: c.network, Note: unusedAddressNote}, nil
	}

	return balance, nil
}

func (c *Client) balanceFrom(address string, raw addressResponse) model.AddressBalance {
	confirmed := raw.ChainStats.FundedTxoSum - raw.ChainStats.SpentTxoSum
	unconfirmed := raw.MempoolStats.FundedTxoSum - raw.MempoolStats.SpentTxoSum
	txs := raw.ChainStats.TxCount + raw.MempoolStats.TxCount

	return model.AddressBalance{
		Address:                 address,
		Balance:                 confirmed + unconfirmed,
		ConfirmedBalance:        confirmed,
		UnconfirmedBalance:      unconfirmed,
		Transactions:            txs,
		ConfirmedTransactions:   raw.ChainStats.TxCount,
		UnconfirmedTransactions: raw.MempoolStats.TxCount,
		HasBalance:              confirmed+unconfirmed > 0,
		HasTransactions:         txs > 0,
		Network:                 c.network,
	}
}

func (c *Client) RecentBlocks(ctx context.Context, count int) ([]model.BlockSummary, error) {
	if count <= 0 {
		count = 10
	}

	return cached(c, "blocks:"+strconv.Itoa(count), blocksTTL, func() ([]model.BlockSummary, error) {
		var raw []blockResponse
		if err := c.getJSON(ctx, "/blocks/"+strconv.Itoa(count), &raw); err != nil {
			return nil, err
		}

		blocks := make([]model.BlockSummary, 0, len(raw))
		for _, b := range raw {
			blocks = append(blocks, model.BlockSummary{
				Height:    b.Height,
				Hash:      b.ID,
				Timestamp: b.Timestamp,
				TxCount:   b.TxCount,
				Size:      b.Size,
			})
		}
		return blocks, nil
	})
}

func (c *Client) DifficultyAdjustment(ctx context.Context) (map[string]any, error) {
	return cached(c, "difficulty", difficultyTTL, func() (map[string]any, error) {
		var out map[string]any
		err := c.getJSON(ctx, "/v1/difficulty-adjustment", &out)
		return out, err
	})
}

// Overview fetches height, fees and mempool together. Each part falls back
// on its own default so one failing endpoint does not blank the others.
func (c *Client) Overview(ctx context.Context) model.BlockchainOverview {
	overview := model.BlockchainOverview{
		Fees:    model.DefaultFeeEstimate,
		Network: c.network,
	}

	var g errgroup.Group

	g.Go(func() error {
		if height, err := c.TipHeight(ctx); err == nil {
			overview.BlockHeight = height
		} else {
			c.lg.Warnf("tip height: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		if fees, err := c.RecommendedFees(ctx); err == nil {
			overview.Fees = fees
		} else {
			c.lg.Warnf("recommended fees: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		if stats, err := c.MempoolStats(ctx); err == nil {
			overview.Mempool = stats
		} else {
			c.lg.Warnf("mempool stats: %v", err)
		}
		return nil
	})

	_ = g.Wait()

	return overview
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil && resp == nil {
		return fmt.Errorf("%w: mempool %s: %w", model.ErrUpstreamUnavailable, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: mempool API error %d %s", model.ErrUpstreamUnavailable, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode mempool %s: %w", path, err)
	}

	return nil
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
