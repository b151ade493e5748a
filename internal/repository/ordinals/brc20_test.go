package ordinals

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

const walletAddress = "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx"

func TestBRC20Balances(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/opi/v1/brc20/get_current_balance_of_wallet", r.URL.Path)
		assert.Equal(t, walletAddress, r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		w.Write([]byte(`{"error":null,"result":[
			{"tick":"ordi","overall_balance":"1500","available_balance":"1000","transferable_balance":"500","decimals":18},
			{"ticker":"sats","balance":"42","decimals":"8"}
		]}`))
	})

	tokens, err := c.BRC20Balances(context.Background(), walletAddress)
	require.NoError(t, err)

	assert.Equal(t, []model.BRC20Token{
		{Ticker: "ordi", Balance: "1500", Available: "1000", Transferable: "500", Decimals: 18},
		{Ticker: "sats", Balance: "42", Available: "0", Transferable: "0", Decimals: 8},
	}, tokens)

	_, err = c.BRC20Balances(context.Background(), walletAddress)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestBRC20Balances_Empty(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"no balance found", http.StatusBadRequest, `{"error":"no balance found"}`},
		{"null result", http.StatusOK, `{"error":null,"result":null}`},
		{"empty result", http.StatusOK, `{"result":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.payload))
			})

			tokens, err := c.BRC20Balances(context.Background(), walletAddress)

			require.NoError(t, err)
			assert.NotNil(t, tokens)
			assert.Empty(t, tokens)
		})
	}
}

func TestBRC20Balances_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
		want    error
	}{
		{"unauthorized", http.StatusUnauthorized, ``, model.ErrBRC20AccessLimited},
		{"forbidden", http.StatusForbidden, `{"error":"forbidden"}`, model.ErrBRC20AccessLimited},
		{"other bad request", http.StatusBadRequest, `{"error":"bad address"}`, model.ErrUpstreamUnavailable},
		{"indexer error", http.StatusOK, `{"error":"db timeout","result":null}`, model.ErrUpstreamUnavailable},
		{"rate limited", http.StatusTooManyRequests, ``, model.ErrRateLimited},
		{"html", http.StatusOK, `<html>`, model.ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.payload))
			})

			_, err := c.BRC20Balances(context.Background(), walletAddress)
			assert.ErrorIs(t, err, tt.want)

			before := calls
			_, err = c.BRC20Balances(context.Background(), walletAddress)
			assert.Error(t, err)
			assert.Greater(t, calls, before, "failures are not cached")
		})
	}
}

func TestBRC20Balances_MissingAPIKey(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	c.apiKey = ""

	_, err := c.BRC20Balances(context.Background(), walletAddress)

	assert.ErrorIs(t, err, model.ErrAPIKeyMissing)
	assert.False(t, called)
}

func TestBRC20TickerInfo(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"result", `{"error":null,"result":{"tick":"ordi","max_supply":"21000000"}}`},
		{"data", `{"data":{"tick":"ordi","max_supply":"21000000"}}`},
		{"bare", `{"tick":"ordi","max_supply":"21000000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, "/opi/v1/brc20/ticker_info", r.URL.Path)
				assert.Equal(t, "ordi", r.URL.Query().Get("ticker"))
				w.Write([]byte(tt.payload))
			})

			info, err := c.BRC20TickerInfo(context.Background(), "ordi")
			require.NoError(t, err)
			assert.Equal(t, "ordi", info["tick"])
			assert.Equal(t, "21000000", info["max_supply"])

			_, err = c.BRC20TickerInfo(context.Background(), "ordi")
			require.NoError(t, err)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestBRC20TickerInfo_NotAnObject(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":["ordi"]}`))
	})

	_, err := c.BRC20TickerInfo(context.Background(), "ordi")

	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
}
