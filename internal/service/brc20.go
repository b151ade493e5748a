package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/pgk/bitcoin"
)

// BRC20Balances only fails on a bad address. Upstream trouble still
// answers with an empty token list and a message saying why.
func (s *Service) BRC20Balances(ctx context.Context, address string) (model.BRC20Balances, *model.APIError) {
	address = strings.TrimSpace(address)
	if apiErr := validateAddress(address, s.network); apiErr != nil {
		return model.BRC20Balances{}, apiErr
	}

	out := model.BRC20Balances{Address: address, Tokens: []model.BRC20Token{}}

	tokens, err := s.ordinals.BRC20Balances(ctx, address)
	switch {
	case errors.Is(err, model.ErrBRC20AccessLimited):
		out.Message = fmt.Sprintf("BRC-20 API access limited on %s. Order functionality works normally.", s.network)
	case err != nil:
		s.lg.Warnf("brc20 balances %s: %v", address, err)
		out.Message = fmt.Sprintf("Unable to fetch BRC-20 tokens on %s", s.network)
		out.Error = upstreamError(err).Message
	case len(tokens) == 0:
		out.Message = "No BRC-20 tokens found for this address"
	default:
		out.Tokens = tokens
		out.HasTokens = true
		out.Message = fmt.Sprintf("Found %d BRC-20 tokens", len(tokens))
	}

	return out, nil
}

func (s *Service) BRC20Ticker(ctx context.Context, ticker string) (map[string]any, *model.APIError) {
	ticker = strings.TrimSpace(ticker)
	if !bitcoin.ValidBRC20Ticker(ticker) {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrBRC20InvalidTickerMessage,
		}
	}

	info, err := s.ordinals.BRC20TickerInfo(ctx, ticker)
	if err != nil {
		s.lg.Warnf("brc20 ticker %s: %v", ticker, err)

		apiErr := upstreamError(err)
		if apiErr.Code == http.StatusBadGateway || errors.Is(err, model.ErrBRC20AccessLimited) {
			apiErr = &model.APIError{Code: http.StatusBadGateway, Message: model.ErrTickerInfoMessage}
		}
		return nil, apiErr
	}

	return info, nil
}
