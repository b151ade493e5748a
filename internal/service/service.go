package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/internal/ordermanager"
	"github.com/ibeloyar/inscribe-dashboard/internal/orderstatus"
	"github.com/ibeloyar/inscribe-dashboard/pgk/auth"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const fetchConcurrency = 5

type TrackingRepo interface {
	ListTracked(ctx context.Context, network model.Network, owner string) ([]string, error)
	AddTracked(ctx context.Context, network model.Network, owner, orderID string) error
	RemoveTracked(ctx context.Context, network model.Network, owner, orderID string) error
	ReplaceTracked(ctx context.Context, network model.Network, owner string, ids []string) error
	Ping(ctx context.Context) error
}

type OrdinalsClient interface {
	GetOrder(ctx context.Context, id string) (model.Order, error)
	CreateOrder(ctx context.Context, payload model.OrdinalsOrderPayload) (model.CreatedOrder, error)
	ConfirmPayment(ctx context.Context, confirmation model.PaymentConfirmation) (string, error)
	BRC20Balances(ctx context.Context, address string) ([]model.BRC20Token, error)
	BRC20TickerInfo(ctx context.Context, ticker string) (map[string]any, error)
}

type MempoolClient interface {
	Overview(ctx context.Context) model.BlockchainOverview
	TipHeight(ctx context.Context) (int64, error)
	RecommendedFees(ctx context.Context) (model.FeeEstimate, error)
	MempoolStats(ctx context.Context) (model.MempoolStats, error)
	AddressBalance(ctx context.Context, address string) (model.AddressBalance, error)
	RecentBlocks(ctx context.Context, count int) ([]model.BlockSummary, error)
	DifficultyAdjustment(ctx context.Context) (map[string]any, error)
}

type PriceClient interface {
	BTCPrice(ctx context.Context) model.BTCPrice
	MarketData(ctx context.Context) (map[string]any, error)
}

type Config struct {
	Network       model.Network
	TokenSecret   string
	TokenLifetime time.Duration
}

type Service struct {
	tracking TrackingRepo
	ordinals OrdinalsClient
	mempool  MempoolClient
	price    PriceClient
	lg       *zap.SugaredLogger

	network     model.Network
	tokenSecret string
	tokenExp    time.Duration
}

func New(t TrackingRepo, o OrdinalsClient, m MempoolClient, p PriceClient, cfg Config, lg *zap.SugaredLogger) *Service {
	return &Service{
		tracking: t,
		ordinals: o,
		mempool:  m,
		price:    p,
		lg:       lg,

		network:     cfg.Network,
		tokenSecret: cfg.TokenSecret,
		tokenExp:    cfg.TokenLifetime,
	}
}

func internalError() *model.APIError {
	return &model.APIError{
		Code:    http.StatusInternalServerError,
		Message: model.ErrInternalServerMessage,
	}
}

// upstreamError maps client errors onto HTTP answers.
func upstreamError(err error) *model.APIError {
	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		return &model.APIError{Code: http.StatusNotFound, Message: model.ErrOrderNotFoundMessage}
	case errors.Is(err, model.ErrRateLimited):
		return &model.APIError{Code: http.StatusTooManyRequests, Message: model.ErrRateLimitedMessage}
	case errors.Is(err, model.ErrAPIKeyMissing):
		return &model.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
	case errors.Is(err, model.ErrUpstreamUnavailable):
		return &model.APIError{Code: http.StatusBadGateway, Message: model.ErrUpstreamMessage}
	}
	return internalError()
}

func (s *Service) Network() model.Network {
	return s.network
}

func (s *Service) Ping(ctx context.Context) *model.APIError {
	if err := s.tracking.Ping(ctx); err != nil {
		s.lg.Errorf("ping database: %v", err)
		return internalError()
	}
	return nil
}

// ConnectWallet issues a session token bound to a valid address of the
// configured network.
func (s *Service) ConnectWallet(ctx context.Context, input model.ConnectWalletDTO) (string, *model.APIError) {
	address := strings.TrimSpace(input.Address)
	if apiErr := validateAddress(address, s.network); apiErr != nil {
		return "", apiErr
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		Address: address,
		Network: s.network,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		s.lg.Errorf("generate token: %v", err)
		return "", internalError()
	}

	return token, nil
}

// TrackedIDs returns the owner's list, seeding it with the network defaults
// the first time it is empty.
func (s *Service) TrackedIDs(ctx context.Context, owner string) ([]string, *model.APIError) {
	ids, err := s.tracking.ListTracked(ctx, s.network, owner)
	if err != nil {
		s.lg.Errorf("list tracked: %v", err)
		return nil, internalError()
	}

	if len(ids) > 0 {
		return ids, nil
	}

	defaults := ordermanager.DefaultOrderIDs(s.network)
	if err := s.tracking.ReplaceTracked(ctx, s.network, owner, defaults); err != nil {
		s.lg.Errorf("seed tracked: %v", err)
		return nil, internalError()
	}

	return defaults, nil
}

func (s *Service) TrackOrder(ctx context.Context, owner, orderID string) ([]string, *model.APIError) {
	orderID = strings.TrimSpace(orderID)
	if apiErr := validateOrderID(orderID); apiErr != nil {
		return nil, apiErr
	}
	orderID = strings.ToLower(orderID)

	if err := s.tracking.AddTracked(ctx, s.network, owner, orderID); err != nil {
		if errors.Is(err, model.ErrOrderAlreadyTracked) {
			return nil, &model.APIError{
				Code:    http.StatusConflict,
				Message: model.ErrOrderAlreadyTrackedMessage,
			}
		}
		s.lg.Errorf("add tracked: %v", err)
		return nil, internalError()
	}

	return s.TrackedIDs(ctx, owner)
}

func (s *Service) UntrackOrder(ctx context.Context, owner, orderID string) ([]string, *model.APIError) {
	if apiErr := validateOrderID(orderID); apiErr != nil {
		return nil, apiErr
	}

	if err := s.tracking.RemoveTracked(ctx, s.network, owner, orderID); err != nil {
		s.lg.Errorf("remove tracked: %v", err)
		return nil, internalError()
	}

	ids, err := s.tracking.ListTracked(ctx, s.network, owner)
	if err != nil {
		s.lg.Errorf("list tracked: %v", err)
		return nil, internalError()
	}

	return ids, nil
}

func (s *Service) ResetTracked(ctx context.Context, owner string) ([]string, *model.APIError) {
	defaults := ordermanager.DefaultOrderIDs(s.network)
	if err := s.tracking.ReplaceTracked(ctx, s.network, owner, defaults); err != nil {
		s.lg.Errorf("reset tracked: %v", err)
		return nil, internalError()
	}

	return defaults, nil
}

// ListOrders fetches every tracked order, skipping the ones that fail, and
// applies the query on top of the normalized list. Counts and the refetch
// hint always describe the whole list, not the filtered page.
func (s *Service) ListOrders(ctx context.Context, owner string, q model.OrdersQuery) (model.OrdersPage, *model.APIError) {
	ids, apiErr := s.TrackedIDs(ctx, owner)
	if apiErr != nil {
		return model.OrdersPage{}, apiErr
	}

	orders := ordermanager.Normalize(s.fetchOrders(ctx, ids))

	filtered := ordermanager.FilterBySearch(orders, q.Search)
	filtered = ordermanager.FilterByStatus(filtered, q.Status)
	filtered = ordermanager.FilterByCategory(filtered, orderstatus.Category(q.Category))

	sortBy := ordermanager.SortBy(q.SortBy)
	if sortBy == "" {
		sortBy = ordermanager.SortNewest
	}
	filtered = ordermanager.Sort(filtered, sortBy, direction(q.Direction))

	total := len(filtered)
	if q.Limit > 0 && q.Limit < len(filtered) {
		filtered = filtered[:q.Limit]
	}

	views := make([]model.OrderView, 0, len(filtered))
	for _, o := range filtered {
		views = append(views, ordermanager.View(o))
	}

	return model.OrdersPage{
		Orders:          views,
		Total:           total,
		StatusCounts:    orderstatus.CountStatuses(orders),
		ActiveCount:     len(ordermanager.ActiveOrders(orders)),
		RefetchInterval: ordermanager.RefetchInterval(orders).Milliseconds(),
		Network:         s.network,
	}, nil
}

func direction(d string) orderstatus.Direction {
	if strings.EqualFold(d, string(orderstatus.Asc)) {
		return orderstatus.Asc
	}
	return orderstatus.Desc
}

// fetchOrders keeps the input order and drops orders that failed to load.
func (s *Service) fetchOrders(ctx context.Context, ids []string) []model.Order {
	results := make([]*model.Order, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			order, err := s.ordinals.GetOrder(gctx, id)
			if err != nil {
				s.lg.Warnf("fetch order %s: %v", id, err)
				return nil
			}
			results[i] = &order
			return nil
		})
	}
	_ = g.Wait()

	orders := make([]model.Order, 0, len(ids))
	for _, o := range results {
		if o != nil {
			orders = append(orders, *o)
		}
	}

	return orders
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (ordermanager.OrderDetails, *model.APIError) {
	if apiErr := validateOrderID(orderID); apiErr != nil {
		return ordermanager.OrderDetails{}, apiErr
	}

	order, err := s.ordinals.GetOrder(ctx, orderID)
	if err != nil {
		s.lg.Warnf("get order %s: %v", orderID, err)
		return ordermanager.OrderDetails{}, upstreamError(err)
	}

	return ordermanager.Details(order), nil
}

// CreateOrder validates and submits a new order, then tracks it for owner.
func (s *Service) CreateOrder(ctx context.Context, owner string, req model.CreateOrderRequest) (model.CreatedOrder, *model.APIError) {
	if apiErr := validateCreateOrder(req, s.network); apiErr != nil {
		return model.CreatedOrder{}, apiErr
	}

	payload, err := buildPayload(req, s.network)
	if err != nil {
		s.lg.Errorf("build payload: %v", err)
		return model.CreatedOrder{}, internalError()
	}

	created, err := s.ordinals.CreateOrder(ctx, payload)
	if err != nil {
		s.lg.Errorf("create order: %v", err)
		return model.CreatedOrder{}, upstreamError(err)
	}

	if err := s.tracking.AddTracked(ctx, s.network, owner, created.OrderID); err != nil &&
		!errors.Is(err, model.ErrOrderAlreadyTracked) {
		s.lg.Errorf("track created order %s: %v", created.OrderID, err)
	}

	return created, nil
}

// PaymentStatus checks the order's payment address on chain.
func (s *Service) PaymentStatus(ctx context.Context, orderID string) (model.PaymentStatus, *model.APIError) {
	if apiErr := validateOrderID(orderID); apiErr != nil {
		return model.PaymentStatus{}, apiErr
	}

	order, err := s.ordinals.GetOrder(ctx, orderID)
	if err != nil {
		return model.PaymentStatus{}, upstreamError(err)
	}

	status := model.PaymentStatus{
		OrderID:        orderID,
		Address:        order.PaymentAddress,
		RequiredAmount: order.PaymentAmount,
		State:          model.PaymentPending,
	}
	if order.PaymentAddress == "" {
		return status, nil
	}

	balance, err := s.mempool.AddressBalance(ctx, order.PaymentAddress)
	if err != nil {
		return model.PaymentStatus{}, upstreamError(err)
	}

	status.ConfirmedBalance = balance.ConfirmedBalance
	status.Balance = balance.Balance
	status.State = paymentState(balance, order.PaymentAmount)

	return status, nil
}

func paymentState(balance model.AddressBalance, required int64) model.PaymentState {
	switch {
	case required > 0 && balance.ConfirmedBalance >= required:
		return model.PaymentConfirmed
	case balance.Balance > 0 || balance.HasTransactions:
		return model.PaymentSent
	}
	return model.PaymentPending
}

func (s *Service) StatusView(status string) (orderstatus.View, *model.APIError) {
	st := model.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
	if !orderstatus.IsKnown(st) {
		return orderstatus.View{}, &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrUnknownStatusMessage,
		}
	}

	return orderstatus.Describe(st), nil
}
