package ordermanager

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/internal/orderstatus"
)

type SortBy string

const (
	SortNewest    SortBy = "newest"
	SortCreatedAt SortBy = "createdAt"
	SortStatus    SortBy = "status"
	SortAmount    SortBy = "amount"
	SortType      SortBy = "type"
)

// Sort returns a stably sorted copy. An unknown key keeps the input order.
func Sort(orders []model.Order, by SortBy, direction orderstatus.Direction) []model.Order {
	sorted := slices.Clone(orders)

	compare := comparator(by)
	if compare == nil {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b model.Order) int {
		if direction == orderstatus.Asc {
			return compare(a, b)
		}
		return compare(b, a)
	})

	return sorted
}

func comparator(by SortBy) func(a, b model.Order) int {
	switch by {
	case SortNewest, SortCreatedAt:
		return func(a, b model.Order) int {
			return cmp.Compare(a.CreatedAt.Millis(), b.CreatedAt.Millis())
		}
	case SortStatus:
		return compareStatus
	case SortAmount:
		return func(a, b model.Order) int {
			return cmp.Compare(a.PaymentAmount, b.PaymentAmount)
		}
	case SortType:
		return func(a, b model.Order) int {
			return strings.Compare(string(a.Type), string(b.Type))
		}
	}
	return nil
}

// compareStatus orders by timeline position, so confirming lands between
// payment-received and completed whatever the tag spelling.
func compareStatus(a, b model.Order) int {
	sa, sb := Status(a), Status(b)

	if res := cmp.Compare(orderstatus.ProgressionOrder(sa), orderstatus.ProgressionOrder(sb)); res != 0 {
		return res
	}
	return cmp.Compare(orderstatus.Progress(sa), orderstatus.Progress(sb))
}
