package service

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

const (
	BlockchainAll        = "all"
	BlockchainHeight     = "height"
	BlockchainBlock      = "block"
	BlockchainFees       = "fees"
	BlockchainAddress    = "address"
	BlockchainMempool    = "mempool"
	BlockchainDifficulty = "difficulty"
	BlockchainBlocks     = "blocks"

	PriceSpot   = "price"
	PriceMarket = "market"

	maxBlocks = 50
)

type heightResponse struct {
	Height  int64         `json:"height"`
	Network model.Network `json:"network"`
}

// Blockchain answers one explorer query. Height and fees fall back to
// defaults instead of failing; the address lookup needs a valid address.
func (s *Service) Blockchain(ctx context.Context, kind, address, count string) (any, *model.APIError) {
	if kind == "" {
		kind = BlockchainAll
	}

	switch kind {
	case BlockchainAll:
		return s.mempool.Overview(ctx), nil

	case BlockchainHeight, BlockchainBlock:
		height, err := s.mempool.TipHeight(ctx)
		if err != nil {
			s.lg.Warnf("tip height: %v", err)
		}
		return heightResponse{Height: height, Network: s.network}, nil

	case BlockchainFees:
		fees, err := s.mempool.RecommendedFees(ctx)
		if err != nil {
			s.lg.Warnf("recommended fees: %v", err)
			return model.DefaultFeeEstimate, nil
		}
		return fees, nil

	case BlockchainMempool:
		stats, err := s.mempool.MempoolStats(ctx)
		if err != nil {
			return nil, upstreamError(err)
		}
		return stats, nil

	case BlockchainAddress:
		if apiErr := validateAddress(address, s.network); apiErr != nil {
			return nil, apiErr
		}
		balance, err := s.mempool.AddressBalance(ctx, address)
		if err != nil {
			return nil, upstreamError(err)
		}
		return balance, nil

	case BlockchainDifficulty:
		adj, err := s.mempool.DifficultyAdjustment(ctx)
		if err != nil {
			return nil, upstreamError(err)
		}
		return adj, nil

	case BlockchainBlocks:
		n, _ := strconv.Atoi(count)
		if n > maxBlocks {
			n = maxBlocks
		}
		blocks, err := s.mempool.RecentBlocks(ctx, n)
		if err != nil {
			return nil, upstreamError(err)
		}
		return blocks, nil
	}

	return nil, &model.APIError{
		Code:    http.StatusBadRequest,
		Message: model.ErrInvalidTypeMessage,
	}
}

func (s *Service) Price(ctx context.Context, kind string) (any, *model.APIError) {
	switch kind {
	case "", PriceSpot:
		return s.price.BTCPrice(ctx), nil
	case PriceMarket:
		data, err := s.price.MarketData(ctx)
		if err != nil {
			return nil, upstreamError(err)
		}
		return data, nil
	}

	return nil, &model.APIError{
		Code:    http.StatusBadRequest,
		Message: model.ErrInvalidTypeMessage,
	}
}
