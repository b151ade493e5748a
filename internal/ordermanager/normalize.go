// Package ordermanager reconciles upstream order shapes into one canonical
// status and derives the list views built on top of it.
package ordermanager

import (
	"time"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/internal/orderstatus"
)

const (
	ListRefetchInterval   = 30 * time.Second
	SingleRefetchInterval = 10 * time.Second
)

// statusSentinel is what the upstream sends in status when state is the real signal.
const statusSentinel = "ok"

var stateSynonyms = map[string]model.OrderStatus{
	"waiting-payment": model.OrderStatusPaymentPending,
	"pending":         model.OrderStatusPending,
	"confirming":      model.OrderStatusConfirming,
	"inscribing":      model.OrderStatusInscribing,
	"completed":       model.OrderStatusCompleted,
	"failed":          model.OrderStatusFailed,
	"cancelled":       model.OrderStatusCancelled,
}

var statusSynonyms = map[model.OrderStatus]model.OrderStatus{
	model.OrderStatusWaitingPayment:   model.OrderStatusPaymentPending,
	model.OrderStatusPaymentConfirmed: model.OrderStatusPaymentReceived,
	model.OrderStatusReady:            model.OrderStatusConfirmed,
	model.OrderStatusProcessing:       model.OrderStatusInscribing,
	model.OrderStatusSuccess:          model.OrderStatusCompleted,
	model.OrderStatusError:            model.OrderStatusFailed,

	model.OrderStatusPending:         model.OrderStatusPending,
	model.OrderStatusPaymentPending:  model.OrderStatusPaymentPending,
	model.OrderStatusPaymentReceived: model.OrderStatusPaymentReceived,
	model.OrderStatusConfirming:      model.OrderStatusConfirming,
	model.OrderStatusConfirmed:       model.OrderStatusConfirmed,
	model.OrderStatusInscribing:      model.OrderStatusInscribing,
	model.OrderStatusCompleted:       model.OrderStatusCompleted,
	model.OrderStatusFailed:          model.OrderStatusFailed,
	model.OrderStatusCancelled:       model.OrderStatusCancelled,
}

// Status resolves the canonical status of an order.
//
// state wins only when it is set and status is empty or "ok". Anything
// unrecognized resolves to pending, never to an error state.
func Status(order model.Order) model.OrderStatus {
	if order.State != "" && (order.Status == "" || order.Status == statusSentinel) {
		if s, ok := stateSynonyms[order.State]; ok {
			return s
		}
		return model.OrderStatusPending
	}

	status := order.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	if s, ok := statusSynonyms[status]; ok {
		return s
	}
	return model.OrderStatusPending
}

// Normalize returns copies of orders with the canonical status filled in.
func Normalize(orders []model.Order) []model.Order {
	out := make([]model.Order, len(orders))
	for i, order := range orders {
		order.Status = Status(order)
		out[i] = order
	}
	return out
}

func IsActive(order model.Order) bool {
	return orderstatus.IsActive(Status(order))
}

func ActiveOrders(orders []model.Order) []model.Order {
	var active []model.Order
	for _, order := range orders {
		if IsActive(order) {
			active = append(active, order)
		}
	}
	return active
}

// StatusCounts aggregates orders by their canonical status.
func StatusCounts(orders []model.Order) model.StatusCounts {
	return orderstatus.CountStatuses(Normalize(orders))
}

// RefetchInterval is how often a list should be reloaded; 0 disables polling.
func RefetchInterval(orders []model.Order) time.Duration {
	for _, order := range orders {
		if IsActive(order) {
			return ListRefetchInterval
		}
	}
	return 0
}

func SingleOrderRefetchInterval(order model.Order) time.Duration {
	if IsActive(order) {
		return SingleRefetchInterval
	}
	return 0
}

// View decorates a normalized order with its display metadata.
func View(order model.Order) model.OrderView {
	order.Status = Status(order)
	cfg := orderstatus.Get(order.Status)

	return model.OrderView{
		Order:        order,
		Description:  Description(order),
		TypeLabel:    TypeDisplay(string(order.Type)),
		StatusLabel:  cfg.Label,
		Category:     string(orderstatus.Categorize(string(order.Status))),
		Progress:     cfg.ProgressWeight,
		IsActive:     cfg.IsActive,
		IsTerminal:   cfg.IsTerminal,
		TimeEstimate: orderstatus.TimeEstimate(order.Status),
	}
}

// OrderDetails is a single order with its status view and polling hint.
type OrderDetails struct {
	model.OrderView
	StatusView      orderstatus.View `json:"statusView"`
	RefetchInterval int64            `json:"refetchIntervalMs"`
}

func Details(order model.Order) OrderDetails {
	view := View(order)

	return OrderDetails{
		OrderView:       view,
		StatusView:      orderstatus.Describe(view.Status),
		RefetchInterval: SingleOrderRefetchInterval(order).Milliseconds(),
	}
}
