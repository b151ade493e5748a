package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/internal/ordermanager"
	"github.com/ibeloyar/inscribe-dashboard/internal/orderstatus"
	"github.com/ibeloyar/inscribe-dashboard/pgk/auth"
)

//go:generate mockgen -source=handlers.go -destination=../../service/mocks/controller_mock.go -package=mocks

type Service interface {
	Network() model.Network
	Ping(ctx context.Context) *model.APIError
	ConnectWallet(ctx context.Context, input model.ConnectWalletDTO) (string, *model.APIError)

	TrackedIDs(ctx context.Context, owner string) ([]string, *model.APIError)
	TrackOrder(ctx context.Context, owner, orderID string) ([]string, *model.APIError)
	UntrackOrder(ctx context.Context, owner, orderID string) ([]string, *model.APIError)
	ResetTracked(ctx context.Context, owner string) ([]string, *model.APIError)

	ListOrders(ctx context.Context, owner string, q model.OrdersQuery) (model.OrdersPage, *model.APIError)
	GetOrder(ctx context.Context, orderID string) (ordermanager.OrderDetails, *model.APIError)
	CreateOrder(ctx context.Context, owner string, req model.CreateOrderRequest) (model.CreatedOrder, *model.APIError)
	PaymentStatus(ctx context.Context, orderID string) (model.PaymentStatus, *model.APIError)
	PaymentInfo(ctx context.Context, orderID string) (model.PaymentInfo, *model.APIError)
	ConfirmPayment(ctx context.Context, orderID string, in model.ConfirmPaymentDTO) (model.ConfirmedPayment, *model.APIError)
	StatusView(status string) (orderstatus.View, *model.APIError)

	Blockchain(ctx context.Context, kind, address, count string) (any, *model.APIError)
	Price(ctx context.Context, kind string) (any, *model.APIError)
	BRC20Balances(ctx context.Context, address string) (model.BRC20Balances, *model.APIError)
	BRC20Ticker(ctx context.Context, ticker string) (map[string]any, *model.APIError)
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

type walletResponse struct {
	Token   string        `json:"token"`
	Address string        `json:"address"`
	Network model.Network `json:"network"`
}

type trackedResponse struct {
	OrderIDs []string      `json:"orderIds"`
	Network  model.Network `json:"network"`
}

// owner is the connected wallet address, empty for anonymous requests.
func owner(r *http.Request) string {
	info := auth.GetTokenInfo[model.TokenInfo](r)
	if info == nil {
		return ""
	}
	return info.Address
}

func (c *Controller) badJSON(w http.ResponseWriter, err error) {
	c.lg.Warnf("failed to parse request body: %v", err)
	writeError(w, c.lg, &model.APIError{Code: http.StatusBadRequest, Message: model.ErrInvalidJSONMessage})
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if apiErr := c.service.Ping(r.Context()); apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, map[string]any{"status": "ok", "network": c.service.Network()}, http.StatusOK)
}

func (c *Controller) ConnectWallet(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ConnectWalletDTO](r)
	if err != nil {
		c.badJSON(w, err)
		return
	}

	token, apiErr := c.service.ConnectWallet(r.Context(), body)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	w.Header().Set("Authorization", token)
	writeJSON(w, c.lg, walletResponse{
		Token:   token,
		Address: strings.TrimSpace(body.Address),
		Network: c.service.Network(),
	}, http.StatusOK)
}

func (c *Controller) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	page, apiErr := c.service.ListOrders(r.Context(), owner(r), model.OrdersQuery{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		Category:  q.Get("category"),
		SortBy:    q.Get("sort"),
		Direction: q.Get("dir"),
		Limit:     limit,
	})
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, c.lg, page, http.StatusOK)
}

func (c *Controller) writeTracked(w http.ResponseWriter, ids []string, apiErr *model.APIError, status int) {
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, trackedResponse{OrderIDs: ids, Network: c.service.Network()}, status)
}

func (c *Controller) TrackedIDs(w http.ResponseWriter, r *http.Request) {
	ids, apiErr := c.service.TrackedIDs(r.Context(), owner(r))
	c.writeTracked(w, ids, apiErr, http.StatusOK)
}

// TrackOrder accepts either {"orderId": "..."} or the bare id as text/plain.
func (c *Controller) TrackOrder(w http.ResponseWriter, r *http.Request) {
	var orderID string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		id, err := readBody[string](r)
		if err != nil {
			c.badJSON(w, err)
			return
		}
		orderID = id
	} else {
		body, err := readBody[model.TrackOrderDTO](r)
		if err != nil {
			c.badJSON(w, err)
			return
		}
		orderID = body.OrderID
	}

	ids, apiErr := c.service.TrackOrder(r.Context(), owner(r), orderID)
	c.writeTracked(w, ids, apiErr, http.StatusCreated)
}

func (c *Controller) UntrackOrder(w http.ResponseWriter, r *http.Request) {
	ids, apiErr := c.service.UntrackOrder(r.Context(), owner(r), chi.URLParam(r, "id"))
	c.writeTracked(w, ids, apiErr, http.StatusOK)
}

func (c *Controller) ResetTracked(w http.ResponseWriter, r *http.Request) {
	ids, apiErr := c.service.ResetTracked(r.Context(), owner(r))
	c.writeTracked(w, ids, apiErr, http.StatusOK)
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, apiErr := c.service.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, c.lg, order, http.StatusOK)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateOrderRequest](r)
	if err != nil {
		c.badJSON(w, err)
		return
	}

	created, apiErr := c.service.CreateOrder(r.Context(), owner(r), body)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, created, http.StatusCreated)
}

func (c *Controller) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	status, apiErr := c.service.PaymentStatus(r.Context(), chi.URLParam(r, "id"))
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, status, http.StatusOK)
}

func (c *Controller) PaymentInfo(w http.ResponseWriter, r *http.Request) {
	info, apiErr := c.service.PaymentInfo(r.Context(), chi.URLParam(r, "id"))
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, info, http.StatusOK)
}

func (c *Controller) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ConfirmPaymentDTO](r)
	if err != nil {
		c.badJSON(w, err)
		return
	}

	confirmed, apiErr := c.service.ConfirmPayment(r.Context(), chi.URLParam(r, "id"), body)
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, confirmed, http.StatusOK)
}

func (c *Controller) StatusView(w http.ResponseWriter, r *http.Request) {
	view, apiErr := c.service.StatusView(chi.URLParam(r, "status"))
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, view, http.StatusOK)
}

func (c *Controller) Blockchain(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	data, apiErr := c.service.Blockchain(r.Context(), q.Get("type"), q.Get("address"), q.Get("count"))
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, data, http.StatusOK)
}

func (c *Controller) Price(w http.ResponseWriter, r *http.Request) {
	data, apiErr := c.service.Price(r.Context(), r.URL.Query().Get("type"))
	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, data, http.StatusOK)
}

// BRC20 serves either a wallet balance lookup or a ticker lookup, never both.
func (c *Controller) BRC20(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	address, ticker := q.Get("address"), q.Get("ticker")

	var (
		data   any
		apiErr *model.APIError
	)

	switch {
	case address == "" && ticker == "":
		apiErr = &model.APIError{Code: http.StatusBadRequest, Message: model.ErrBRC20ParamsRequiredMessage}
	case address != "" && ticker != "":
		apiErr = &model.APIError{Code: http.StatusBadRequest, Message: model.ErrBRC20InvalidParamsMessage}
	case address != "":
		data, apiErr = c.service.BRC20Balances(r.Context(), address)
	default:
		data, apiErr = c.service.BRC20Ticker(r.Context(), ticker)
	}

	if apiErr != nil {
		writeError(w, c.lg, apiErr)
		return
	}

	writeJSON(w, c.lg, data, http.StatusOK)
}
