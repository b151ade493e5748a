package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/internal/ordermanager"
	"github.com/ibeloyar/inscribe-dashboard/internal/repository/ordinals"
	"github.com/ibeloyar/inscribe-dashboard/pgk/auth"

	"github.com/ibeloyar/inscribe-dashboard/internal/service/mocks"
)

const (
	orderA = "b1a8e829-5411-4b3e-8b41-c1a2894ee023"
	orderB = "961a4f59-d6e7-4d08-b351-f9872f98b9d5"
	orderC = "d857c9cd-b628-4b8c-8d03-e765563a4e50"

	testSecret = "secret"
)

type testDeps struct {
	tracking *mocks.MockTrackingRepo
	ordinals *mocks.MockOrdinalsClient
	mempool  *mocks.MockMempoolClient
	price    *mocks.MockPriceClient
}

func newTestService(t *testing.T) (*Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		tracking: mocks.NewMockTrackingRepo(ctrl),
		ordinals: mocks.NewMockOrdinalsClient(ctrl),
		mempool:  mocks.NewMockMempoolClient(ctrl),
		price:    mocks.NewMockPriceClient(ctrl),
	}

	svc := New(deps.tracking, deps.ordinals, deps.mempool, deps.price, Config{
		Network:       model.NetworkTestnet,
		TokenSecret:   testSecret,
		TokenLifetime: time.Hour,
	}, zap.NewNop().Sugar())

	return svc, deps
}

func TestService_Ping(t *testing.T) {
	svc, deps := newTestService(t)

	deps.tracking.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.Nil(t, svc.Ping(context.Background()))

	deps.tracking.EXPECT().Ping(gomock.Any()).Return(errors.New("down"))
	apiErr := svc.Ping(context.Background())
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestService_ConnectWallet(t *testing.T) {
	svc, _ := newTestService(t)

	token, apiErr := svc.ConnectWallet(context.Background(), model.ConnectWalletDTO{Address: " " + testnetAddress + " "})
	require.Nil(t, apiErr)

	info, err := auth.VerifyJWTBearerToken[model.TokenInfo](token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, model.TokenInfo{Address: testnetAddress, Network: model.NetworkTestnet}, *info)
}

func TestService_ConnectWallet_WrongNetwork(t *testing.T) {
	svc, _ := newTestService(t)

	token, apiErr := svc.ConnectWallet(context.Background(), model.ConnectWalletDTO{Address: mainnetAddress})

	assert.Empty(t, token)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func TestService_TrackedIDs_SeedsDefaults(t *testing.T) {
	svc, deps := newTestService(t)
	defaults := ordermanager.DefaultOrderIDs(model.NetworkTestnet)

	deps.tracking.EXPECT().ListTracked(gomock.Any(), model.NetworkTestnet, "").Return(nil, nil)
	deps.tracking.EXPECT().ReplaceTracked(gomock.Any(), model.NetworkTestnet, "", defaults).Return(nil)

	ids, apiErr := svc.TrackedIDs(context.Background(), "")

	require.Nil(t, apiErr)
	assert.Equal(t, defaults, ids)
}

func TestService_TrackedIDs_Existing(t *testing.T) {
	svc, deps := newTestService(t)

	deps.tracking.EXPECT().ListTracked(gomock.Any(), model.NetworkTestnet, testnetAddress).Return([]string{orderB}, nil)

	ids, apiErr := svc.TrackedIDs(context.Background(), testnetAddress)

	require.Nil(t, apiErr)
	assert.Equal(t, []string{orderB}, ids)
}

func TestService_TrackOrder(t *testing.T) {
	svc, deps := newTestService(t)

	deps.tracking.EXPECT().AddTracked(gomock.Any(), model.NetworkTestnet, "", orderA).Return(nil)
	deps.tracking.EXPECT().ListTracked(gomock.Any(), model.NetworkTestnet, "").Return([]string{orderA, orderB}, nil)

	ids, apiErr := svc.TrackOrder(context.Background(), "", " "+orderA)

	require.Nil(t, apiErr)
	assert.Equal(t, []string{orderA, orderB}, ids)
}

func TestService_TrackOrder_StoresLowercase(t *testing.T) {
	svc, deps := newTestService(t)

	deps.tracking.EXPECT().AddTracked(gomock.Any(), model.NetworkTestnet, "", orderA).Return(nil)
	deps.tracking.EXPECT().ListTracked(gomock.Any(), model.NetworkTestnet, "").Return([]string{orderA}, nil)

	_, apiErr := svc.TrackOrder(context.Background(), "", strings.ToUpper(orderA))
	require.Nil(t, apiErr)

	_, apiErr = svc.TrackOrder(context.Background(), "", "urn:uuid:"+orderA)
	require.NotNil(t, apiErr)
	assert.Equal(t, model.ErrOrderInvalidIDMessage, apiErr.Message)
}

func TestService_TrackOrder_Errors(t *testing.T) {
	svc, deps := newTestService(t)

	_, apiErr := svc.TrackOrder(context.Background(), "", "nope")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)

	deps.tracking.EXPECT().AddTracked(gomock.Any(), model.NetworkTestnet, "", orderA).
		Return(fmt.Errorf("add: %w", model.ErrOrderAlreadyTracked))
	_, apiErr = svc.TrackOrder(context.Background(), "", orderA)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Code)

	deps.tracking.EXPECT().AddTracked(gomock.Any(), model.NetworkTestnet, "", orderA).Return(errors.New("boom"))
	_, apiErr = svc.TrackOrder(context.Background(), "", orderA)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestService_UntrackAndReset(t *testing.T) {
	svc, deps := newTestService(t)

	deps.tracking.EXPECT().RemoveTracked(gomock.Any(), model.NetworkTestnet, "", orderA).Return(nil)
	deps.tracking.EXPECT().ListTracked(gomock.Any(), model.NetworkTestnet, "").Return([]string{}, nil)

	ids, apiErr := svc.UntrackOrder(context.Background(), "", orderA)
	require.Nil(t, apiErr)
	assert.Empty(t, ids)

	defaults := ordermanager.DefaultOrderIDs(model.NetworkTestnet)
	deps.tracking.EXPECT().ReplaceTracked(gomock.Any(), model.NetworkTestnet, "", defaults).Return(nil)

	ids, apiErr = svc.ResetTracked(context.Background(), "")
	require.Nil(t, apiErr)
	assert.Equal(t, defaults, ids)
}

func expectListFetch(deps testDeps) {
	deps.tracking.EXPECT().ListTracked(gomock.Any(), model.NetworkTestnet, "").Return([]string{orderA, orderB, orderC}, nil)
	deps.ordinals.EXPECT().GetOrder(gomock.Any(), orderA).Return(model.Order{ID: orderA, Status: "ok", State: "inscribing"}, nil)
	deps.ordinals.EXPECT().GetOrder(gomock.Any(), orderB).Return(model.Order{ID: orderB, Status: model.OrderStatusCompleted}, nil)
	deps.ordinals.EXPECT().GetOrder(gomock.Any(), orderC).Return(model.Order{}, model.ErrUpstreamUnavailable)
}

func TestService_ListOrders(t *testing.T) {
	svc, deps := newTestService(t)
	expectListFetch(deps)

	page, apiErr := svc.ListOrders(context.Background(), "", model.OrdersQuery{})
	require.Nil(t, apiErr)

	require.Len(t, page.Orders, 2)
	assert.Equal(t, orderA, page.Orders[0].ID)
	assert.Equal(t, model.OrderStatusInscribing, page.Orders[0].Status)
	assert.Equal(t, orderB, page.Orders[1].ID)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 2, page.StatusCounts.All)
	assert.Equal(t, 1, page.StatusCounts.Inscribing)
	assert.Equal(t, 1, page.StatusCounts.Completed)
	assert.Equal(t, 1, page.ActiveCount)
	assert.Equal(t, ordermanager.ListRefetchInterval.Milliseconds(), page.RefetchInterval)
	assert.Equal(t, model.NetworkTestnet, page.Network)
}

func TestService_ListOrders_DefaultsToNewestFirst(t *testing.T) {
	svc, deps := newTestService(t)

	older := model.NewTimestamp(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := model.NewTimestamp(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	deps.tracking.EXPECT().ListTracked(gomock.Any(), model.NetworkTestnet, "").Return([]string{orderA, orderB}, nil)
	deps.ordinals.EXPECT().GetOrder(gomock.Any(), orderA).
		Return(model.Order{ID: orderA, Status: model.OrderStatusCompleted, CreatedAt: older}, nil)
	deps.ordinals.EXPECT().GetOrder(gomock.Any(), orderB).
		Return(model.Order{ID: orderB, Status: model.OrderStatusCompleted, CreatedAt: newer}, nil)

	page, apiErr := svc.ListOrders(context.Background(), "", model.OrdersQuery{})
	require.Nil(t, apiErr)

	require.Len(t, page.Orders, 2)
	assert.Equal(t, orderB, page.Orders[0].ID)
	assert.Equal(t, orderA, page.Orders[1].ID)
}

func TestService_ListOrders_FilterKeepsWholeListCounts(t *testing.T) {
	svc, deps := newTestService(t)
	expectListFetch(deps)

	page, apiErr := svc.ListOrders(context.Background(), "", model.OrdersQuery{Status: "completed"})
	require.Nil(t, apiErr)

	require.Len(t, page.Orders, 1)
	assert.Equal(t, orderB, page.Orders[0].ID)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 2, page.StatusCounts.All)
	assert.Equal(t, 1, page.ActiveCount)
}

func TestService_ListOrders_Limit(t *testing.T) {
	svc, deps := newTestService(t)
	expectListFetch(deps)

	page, apiErr := svc.ListOrders(context.Background(), "", model.OrdersQuery{Limit: 1})
	require.Nil(t, apiErr)

	assert.Len(t, page.Orders, 1)
	assert.Equal(t, 2, page.Total)
}

func TestService_ListOrders_TrackingError(t *testing.T) {
	svc, deps := newTestService(t)

	deps.tracking.EXPECT().ListTracked(gomock.Any(), model.NetworkTestnet, "").Return(nil, errors.New("db down"))

	_, apiErr := svc.ListOrders(context.Background(), "", model.OrdersQuery{})
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestService_GetOrder(t *testing.T) {
	svc, deps := newTestService(t)

	deps.ordinals.EXPECT().GetOrder(gomock.Any(), orderA).Return(model.Order{ID: orderA, State: "waiting-payment"}, nil)

	details, apiErr := svc.GetOrder(context.Background(), orderA)
	require.Nil(t, apiErr)

	assert.Equal(t, model.OrderStatusPaymentPending, details.Status)
	assert.Equal(t, model.OrderStatusPaymentPending, details.StatusView.Status)
	assert.Equal(t, ordermanager.SingleRefetchInterval.Milliseconds(), details.RefetchInterval)
}

func TestService_GetOrder_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", fmt.Errorf("get: %w", model.ErrOrderNotFound), http.StatusNotFound},
		{"rate limited", &ordinals.RateLimitedError{RetryAfter: time.Second}, http.StatusTooManyRequests},
		{"no api key", model.ErrAPIKeyMissing, http.StatusInternalServerError},
		{"unavailable", model.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"other", errors.New("weird"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t)
			deps.ordinals.EXPECT().GetOrder(gomock.Any(), orderA).Return(model.Order{}, tt.err)

			_, apiErr := svc.GetOrder(context.Background(), orderA)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestService_CreateOrder(t *testing.T) {
	svc, deps := newTestService(t)

	req := model.CreateOrderRequest{
		Type:           model.OrderTypeInscription,
		ReceiveAddress: testnetAddress,
		TextContent:    "gm",
	}
	created := model.CreatedOrder{OrderID: orderC, PaymentAddress: testnetAddress, Amount: 3000}

	deps.ordinals.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload model.OrdinalsOrderPayload) (model.CreatedOrder, error) {
			assert.Equal(t, testnetAddress, payload.ReceiveAddress)
			assert.Equal(t, int64(defaultTestnetFee), payload.Fee)
			assert.Len(t, payload.Files, 1)
			return created, nil
		})
	deps.tracking.EXPECT().AddTracked(gomock.Any(), model.NetworkTestnet, testnetAddress, orderC).Return(model.ErrOrderAlreadyTracked)

	got, apiErr := svc.CreateOrder(context.Background(), testnetAddress, req)

	require.Nil(t, apiErr)
	assert.Equal(t, created, got)
}

func TestService_CreateOrder_InvalidSkipsUpstream(t *testing.T) {
	svc, _ := newTestService(t)

	_, apiErr := svc.CreateOrder(context.Background(), "", model.CreateOrderRequest{Type: model.OrderTypeInscription})

	require.NotNil(t, apiErr)
	assert.Equal(t, model.ErrReceiveAddressRequiredMessage, apiErr.Message)
}

func TestService_CreateOrder_UpstreamError(t *testing.T) {
	svc, deps := newTestService(t)

	deps.ordinals.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(model.CreatedOrder{}, model.ErrAPIKeyMissing)

	_, apiErr := svc.CreateOrder(context.Background(), "", model.CreateOrderRequest{
		Type:           model.OrderTypeInscription,
		ReceiveAddress: testnetAddress,
		TextContent:    "gm",
	})

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, model.ErrAPIKeyMissing.Error(), apiErr.Message)
}

func TestPaymentState(t *testing.T) {
	tests := []struct {
		name     string
		balance  model.AddressBalance
		required int64
		want     model.PaymentState
	}{
		{"nothing yet", model.AddressBalance{}, 1000, model.PaymentPending},
		{"mempool only", model.AddressBalance{Balance: 1000, UnconfirmedBalance: 1000}, 1000, model.PaymentSent},
		{"tx seen", model.AddressBalance{HasTransactions: true}, 1000, model.PaymentSent},
		{"confirmed", model.AddressBalance{Balance: 1200, ConfirmedBalance: 1200}, 1000, model.PaymentConfirmed},
		{"unknown amount", model.AddressBalance{Balance: 5, ConfirmedBalance: 5}, 0, model.PaymentSent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paymentState(tt.balance, tt.required))
		})
	}
}

func TestService_PaymentStatus(t *testing.T) {
	svc, deps := newTestService(t)

	deps.ordinals.EXPECT().GetOrder(gomock.Any(), orderA).
		Return(model.Order{ID: orderA, PaymentAddress: testnetAddress, PaymentAmount: 1000}, nil)
	deps.mempool.EXPECT().AddressBalance(gomock.Any(), testnetAddress).
		Return(model.AddressBalance{Balance: 1000, ConfirmedBalance: 1000}, nil)

	status, apiErr := svc.PaymentStatus(context.Background(), orderA)

	require.Nil(t, apiErr)
	assert.Equal(t, model.PaymentStatus{
		OrderID:          orderA,
		Address:          testnetAddress,
		RequiredAmount:   1000,
		ConfirmedBalance: 1000,
		Balance:          1000,
		State:            model.PaymentConfirmed,
	}, status)
}

func TestService_PaymentStatus_NoAddress(t *testing.T) {
	svc, deps := newTestService(t)

	deps.ordinals.EXPECT().GetOrder(gomock.Any(), orderA).Return(model.Order{ID: orderA}, nil)

	status, apiErr := svc.PaymentStatus(context.Background(), orderA)

	require.Nil(t, apiErr)
	assert.Equal(t, model.PaymentPending, status.State)
}

func TestService_StatusView(t *testing.T) {
	svc, _ := newTestService(t)

	view, apiErr := svc.StatusView(" Failed ")
	require.Nil(t, apiErr)
	assert.Equal(t, model.OrderStatusFailed, view.Status)
	assert.True(t, view.NeedsAttention)

	_, apiErr = svc.StatusView("bogus")
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}
