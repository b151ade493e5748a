package orderstatus

import (
	"cmp"
	"slices"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// CountStatuses rolls orders up into per-status and per-category counters.
//
// Orders with an empty status are skipped. All counts every other order,
// including ones whose status is not a known tag, so All can exceed the sum
// of the per-status counters while Categorized always sums to All.
func CountStatuses(orders []model.Order) model.StatusCounts {
	var counts model.StatusCounts

	for _, order := range orders {
		if order.Status == "" {
			continue
		}

		counts.All++

		if counter := statusCounter(&counts, order.Status); counter != nil {
			*counter++
		}

		switch Categorize(string(order.Status)) {
		case CategoryPending:
			counts.Categorized.Pending++
		case CategoryConfirmed:
			counts.Categorized.Confirmed++
		default:
			counts.Categorized.Failed++
		}
	}

	return counts
}

func statusCounter(c *model.StatusCounts, status model.OrderStatus) *int {
	switch status {
	case model.OrderStatusPending:
		return &c.Pending
	case model.OrderStatusPaymentPending:
		return &c.PaymentPending
	case model.OrderStatusWaitingPayment:
		return &c.WaitingPayment
	case model.OrderStatusPaymentReceived:
		return &c.PaymentReceived
	case model.OrderStatusPaymentConfirmed:
		return &c.PaymentConfirmed
	case model.OrderStatusConfirming:
		return &c.Confirming
	case model.OrderStatusConfirmed:
		return &c.Confirmed
	case model.OrderStatusReady:
		return &c.Ready
	case model.OrderStatusInscribing:
		return &c.Inscribing
	case model.OrderStatusProcessing:
		return &c.Processing
	case model.OrderStatusCompleted:
		return &c.Completed
	case model.OrderStatusSuccess:
		return &c.Success
	case model.OrderStatusFailed:
		return &c.Failed
	case model.OrderStatusCancelled:
		return &c.Cancelled
	case model.OrderStatusError:
		return &c.Error
	}
	return nil
}

// Count returns the counter for a single status, 0 for unknown ones.
func Count(c model.StatusCounts, status model.OrderStatus) int {
	if counter := statusCounter(&c, status); counter != nil {
		return *counter
	}
	return 0
}

// FilterByCategory keeps orders whose raw status falls into category.
// CategoryAll returns orders unchanged.
func FilterByCategory(orders []model.Order, category Category) []model.Order {
	if category == CategoryAll {
		return orders
	}

	result := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == "" {
			continue
		}
		if Categorize(string(order.Status)) == category {
			result = append(result, order)
		}
	}

	return result
}

// SortByStatus returns a copy ordered by timeline position, then by
// creation time.
func SortByStatus(orders []model.Order, direction Direction) []model.Order {
	sorted := slices.Clone(orders)

	slices.SortStableFunc(sorted, func(a, b model.Order) int {
		res := cmp.Compare(ProgressionOrder(a.Status), ProgressionOrder(b.Status))
		if res == 0 {
			res = cmp.Compare(a.CreatedAt.Millis(), b.CreatedAt.Millis())
		}
		if direction == Asc {
			return res
		}
		return -res
	})

	return sorted
}
