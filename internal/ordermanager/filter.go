package ordermanager

import (
	"strings"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/internal/orderstatus"
)

const filterAll = "all"

// FilterBySearch matches id, type or BRC-20 ticker, case-insensitively.
func FilterBySearch(orders []model.Order, query string) []model.Order {
	if strings.TrimSpace(query) == "" {
		return orders
	}

	q := strings.ToLower(query)

	return filter(orders, func(o model.Order) bool {
		if strings.Contains(strings.ToLower(o.ID), q) || strings.Contains(strings.ToLower(string(o.Type)), q) {
			return true
		}
		return o.BRC20Details != nil && strings.Contains(strings.ToLower(o.BRC20Details.Ticker), q)
	})
}

// FilterByStatus compares against the canonical status. "all" and "" keep everything.
func FilterByStatus(orders []model.Order, status string) []model.Order {
	if status == "" || status == filterAll {
		return orders
	}

	return filter(orders, func(o model.Order) bool {
		return string(Status(o)) == status
	})
}

func FilterByCategory(orders []model.Order, category orderstatus.Category) []model.Order {
	if category == "" || category == orderstatus.CategoryAll {
		return orders
	}

	return filter(orders, func(o model.Order) bool {
		return orderstatus.Categorize(string(Status(o))) == category
	})
}

func filter(orders []model.Order, keep func(model.Order) bool) []model.Order {
	result := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			result = append(result, o)
		}
	}
	return result
}
