package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/internal/repository/ordinals"
)

func TestService_BRC20Balances(t *testing.T) {
	tokens := []model.BRC20Token{{Ticker: "ordi", Balance: "10", Available: "10", Transferable: "0", Decimals: 18}}

	tests := []struct {
		name      string
		tokens    []model.BRC20Token
		err       error
		want      []model.BRC20Token
		hasTokens bool
		message   string
		errText   string
	}{
		{
			name:      "tokens",
			tokens:    tokens,
			want:      tokens,
			hasTokens: true,
			message:   "Found 1 BRC-20 tokens",
		},
		{
			name:    "empty wallet",
			tokens:  []model.BRC20Token{},
			want:    []model.BRC20Token{},
			message: "No BRC-20 tokens found for this address",
		},
		{
			name:    "access limited",
			err:     model.ErrBRC20AccessLimited,
			want:    []model.BRC20Token{},
			message: "BRC-20 API access limited on testnet. Order functionality works normally.",
		},
		{
			name:    "rate limited",
			err:     &ordinals.RateLimitedError{RetryAfter: time.Second},
			want:    []model.BRC20Token{},
			message: "Unable to fetch BRC-20 tokens on testnet",
			errText: model.ErrRateLimitedMessage,
		},
		{
			name:    "upstream down",
			err:     model.ErrUpstreamUnavailable,
			want:    []model.BRC20Token{},
			message: "Unable to fetch BRC-20 tokens on testnet",
			errText: model.ErrUpstreamMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t)
			deps.ordinals.EXPECT().BRC20Balances(gomock.Any(), testnetAddress).Return(tt.tokens, tt.err)

			got, apiErr := svc.BRC20Balances(context.Background(), " "+testnetAddress)
			require.Nil(t, apiErr)

			assert.Equal(t, model.BRC20Balances{
				Address:   testnetAddress,
				Tokens:    tt.want,
				HasTokens: tt.hasTokens,
				Message:   tt.message,
				Error:     tt.errText,
			}, got)
		})
	}
}

func TestService_BRC20Balances_InvalidAddress(t *testing.T) {
	svc, _ := newTestService(t)

	_, apiErr := svc.BRC20Balances(context.Background(), mainnetAddress)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func TestService_BRC20Ticker(t *testing.T) {
	svc, deps := newTestService(t)

	info := map[string]any{"tick": "ordi"}
	deps.ordinals.EXPECT().BRC20TickerInfo(gomock.Any(), "ordi").Return(info, nil)

	got, apiErr := svc.BRC20Ticker(context.Background(), "ordi ")
	require.Nil(t, apiErr)
	assert.Equal(t, info, got)
}

func TestService_BRC20Ticker_Errors(t *testing.T) {
	svc, deps := newTestService(t)

	_, apiErr := svc.BRC20Ticker(context.Background(), "toolong")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, model.ErrBRC20InvalidTickerMessage, apiErr.Message)

	deps.ordinals.EXPECT().BRC20TickerInfo(gomock.Any(), "ordi").Return(nil, model.ErrUpstreamUnavailable)
	_, apiErr = svc.BRC20Ticker(context.Background(), "ordi")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Code)
	assert.Equal(t, model.ErrTickerInfoMessage, apiErr.Message)

	deps.ordinals.EXPECT().BRC20TickerInfo(gomock.Any(), "sats").Return(nil, model.ErrBRC20AccessLimited)
	_, apiErr = svc.BRC20Ticker(context.Background(), "sats")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Code)

	deps.ordinals.EXPECT().BRC20TickerInfo(gomock.Any(), "pepe").Return(nil, &ordinals.RateLimitedError{RetryAfter: time.Second})
	_, apiErr = svc.BRC20Ticker(context.Background(), "pepe")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Code)
}
