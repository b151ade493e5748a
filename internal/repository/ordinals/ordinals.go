// Package ordinals talks to the inscription-order service.
package ordinals

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/pgk/retryablehttp"
)

const (
	defaultFeeRate = 15
	maxErrorBody   = 512
)

// RateLimitedError carries the upstream Retry-After hint. It matches
// model.ErrRateLimited under errors.Is.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s, retry after %s", model.ErrRateLimitedMessage, e.RetryAfter)
}

func (e *RateLimitedError) Is(target error) bool {
	return target == model.ErrRateLimited
}

type Client struct {
	baseURL string
	apiKey  string
	network model.Network
	http    *retryablehttp.RetryableClient
	cache   *gocache.Cache
	lg      *zap.SugaredLogger
	now     func() time.Time
}

func New(baseURL, apiKey string, network model.Network, httpClient *retryablehttp.RetryableClient, lg *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		network: network,
		http:    httpClient,
		cache:   gocache.New(tickerTTL, time.Minute),
		lg:      lg,
		now:     time.Now,
	}
}

// rawOrder is the upstream order with the alternative field names it may use.
type rawOrder struct {
	model.Order
	Timestamp model.Timestamp `json:"timestamp"`
	Fee       int64           `json:"fee"`
}

type rawCreated struct {
	ID             string `json:"id"`
	PaymentAddress string `json:"paymentAddress"`
	Amount         int64  `json:"amount"`
	FeeRate        int64  `json:"feeRate"`
}

// GetOrder fetches one order and fills in the fields the upstream may omit.
func (c *Client) GetOrder(ctx context.Context, id string) (model.Order, error) {
	var raw rawOrder
	if err := c.do(ctx, http.MethodGet, "/order?id="+url.QueryEscape(id), nil, &raw); err != nil {
		return model.Order{}, err
	}

	return c.fillDefaults(id, raw), nil
}

func (c *Client) fillDefaults(id string, raw rawOrder) model.Order {
	o := raw.Order
	now := model.NewTimestamp(c.now().UTC())

	if o.ID == "" {
		o.ID = id
	}
	if o.Type == "" {
		o.Type = model.OrderTypeInscription
	}
	if o.Status == "" {
		o.Status = model.OrderStatus(o.State)
	}
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}

	if o.CreatedAt.IsZero() {
		o.CreatedAt = raw.Timestamp
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}

	for _, charge := range []*model.Charge{o.Charge, o.FeeCharge} {
		if charge == nil {
			continue
		}
		if o.PaymentAddress == "" {
			o.PaymentAddress = charge.Address
		}
		if o.PaymentAmount == 0 {
			o.PaymentAmount = charge.Amount
		}
	}

	if o.FeeRate == 0 {
		o.FeeRate = defaultFeeRate
	}
	if o.TotalFee == 0 {
		o.TotalFee = raw.Fee
	}
	if o.TotalFee == 0 {
		o.TotalFee = o.PaymentAmount
	}
	if o.ReceiveAddress == "" {
		o.ReceiveAddress = o.PaymentAddress
	}

	o.Network = c.network

	return o
}

// CreateOrder submits a ready payload. Amount and fee rate fall back to the
// payload fee when the upstream leaves them out.
func (c *Client) CreateOrder(ctx context.Context, payload model.OrdinalsOrderPayload) (model.CreatedOrder, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return model.CreatedOrder{}, fmt.Errorf("encode order payload: %w", err)
	}

	var raw rawCreated
	if err := c.do(ctx, http.MethodPost, "/order", body, &raw); err != nil {
		return model.CreatedOrder{}, err
	}

	created := model.CreatedOrder{
		OrderID:        raw.ID,
		PaymentAddress: raw.PaymentAddress,
		Amount:         raw.Amount,
		FeeRate:        raw.FeeRate,
		Network:        c.network,
	}
	if created.Amount == 0 {
		created.Amount = payload.Fee
	}
	if created.FeeRate == 0 {
		created.FeeRate = payload.Fee
	}
	if created.OrderID == "" {
		return created, fmt.Errorf("%w: order created without id", model.ErrUpstreamUnavailable)
	}

	return created, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	if c.apiKey == "" {
		return model.ErrAPIKeyMissing
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil && resp == nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", model.ErrUpstreamUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.ErrOrderNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitedError{RetryAfter: retryablehttp.RetryAfter(resp)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.lg.Warnf("ordinals %s %s: %d %s", method, path, resp.StatusCode, text)
		return fmt.Errorf("%w: ordinals API error %d: %s", model.ErrUpstreamUnavailable, resp.StatusCode, text)
	}

	return decodeEnvelope(resp.Body, out)
}

// decodeEnvelope accepts both {"data": {...}} and a bare object.
func decodeEnvelope(r io.Reader, out any) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read ordinals response: %w", err)
	}

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(payload, &wrapper); err != nil {
		return fmt.Errorf("%w: invalid JSON response: %w", model.ErrUpstreamUnavailable, err)
	}

	if len(wrapper.Data) > 0 && !bytes.Equal(wrapper.Data, []byte("null")) && wrapper.Data[0] == '{' {
		payload = wrapper.Data
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: invalid JSON response: %w", model.ErrUpstreamUnavailable, err)
	}

	return nil
}

type confirmResponse struct {
	Status string `json:"status"`
}

// ConfirmPayment reports a wallet payment for an order and returns the
// status the upstream moved it to, which may be empty.
func (c *Client) ConfirmPayment(ctx context.Context, confirmation model.PaymentConfirmation) (string, error) {
	body, err := json.Marshal(confirmation)
	if err != nil {
		return "", fmt.Errorf("encode payment confirmation: %w", err)
	}

	var resp confirmResponse
	if err := c.do(ctx, http.MethodPost, "/payment/confirm", body, &resp); err != nil {
		return "", err
	}

	return resp.Status, nil
}

// IsRateLimited extracts the retry hint from err when it is a rate-limit error.
func IsRateLimited(err error) (time.Duration, bool) {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl.RetryAfter, true
	}
	return 0, false
}
