package orderstatus

import (
	"testing"
	"time"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/stretchr/testify/assert"
)

func ordersWith(statuses ...model.OrderStatus) []model.Order {
	orders := make([]model.Order, 0, len(statuses))
	for _, s := range statuses {
		orders = append(orders, model.Order{Status: s})
	}
	return orders
}

func TestCountStatuses_Empty(t *testing.T) {
	assert.Equal(t, model.StatusCounts{}, CountStatuses(nil))
	assert.Equal(t, model.StatusCounts{}, CountStatuses([]model.Order{}))
}

func TestCountStatuses_AllKnown(t *testing.T) {
	orders := ordersWith(Statuses()...)

	counts := CountStatuses(orders)

	assert.Equal(t, len(orders), counts.All)
	for _, s := range Statuses() {
		assert.Equal(t, 1, Count(counts, s), "status %s", s)
	}
	assert.Equal(t, model.CategoryCounts{Pending: 11, Confirmed: 2, Failed: 2}, counts.Categorized)
}

func TestCountStatuses_Conservation(t *testing.T) {
	orders := ordersWith(
		model.OrderStatusPending,
		model.OrderStatusCompleted,
		model.OrderStatusCompleted,
		model.OrderStatusCancelled,
		model.OrderStatusFailed,
		model.OrderStatusInscribing,
	)

	counts := CountStatuses(orders)
	c := counts.Categorized

	assert.Equal(t, len(orders), counts.All)
	assert.Equal(t, len(orders), c.Pending+c.Confirmed+c.Failed)
	assert.Equal(t, 2, counts.Completed)
	assert.Equal(t, 3, c.Pending)
	assert.Equal(t, 2, c.Confirmed)
	assert.Equal(t, 1, c.Failed)
}

func TestCountStatuses_UnknownStatusCountedInAllOnly(t *testing.T) {
	orders := ordersWith("garbage", model.OrderStatusReady, "COMPLETED")

	counts := CountStatuses(orders)

	assert.Equal(t, 3, counts.All)
	assert.Equal(t, 1, counts.Ready)
	assert.Equal(t, 0, counts.Completed)

	named := 0
	for _, s := range Statuses() {
		named += Count(counts, s)
	}
	assert.Equal(t, 1, named)
	assert.Less(t, named, counts.All)

	c := counts.Categorized
	assert.Equal(t, counts.All, c.Pending+c.Confirmed+c.Failed)
	assert.Equal(t, 1, c.Failed)
	assert.Equal(t, 1, c.Confirmed)
}

func TestCountStatuses_SkipsEmptyStatus(t *testing.T) {
	orders := ordersWith("", model.OrderStatusPending, "")

	counts := CountStatuses(orders)

	assert.Equal(t, 1, counts.All)
	assert.Equal(t, 1, counts.Categorized.Pending)
}

func TestCountStatuses_OrderIndependent(t *testing.T) {
	a := ordersWith(model.OrderStatusPending, model.OrderStatusError, "x", model.OrderStatusSuccess)
	b := ordersWith(model.OrderStatusSuccess, "x", model.OrderStatusError, model.OrderStatusPending)

	assert.Equal(t, CountStatuses(a), CountStatuses(b))
	assert.Equal(t, CountStatuses(a), CountStatuses(a))
}

func TestFilterByCategory(t *testing.T) {
	orders := ordersWith(model.OrderStatusPending, model.OrderStatusCompleted, model.OrderStatusError, "")

	assert.Equal(t, orders, FilterByCategory(orders, CategoryAll))
	assert.Equal(t, ordersWith(model.OrderStatusPending), FilterByCategory(orders, CategoryPending))
	assert.Equal(t, ordersWith(model.OrderStatusCompleted), FilterByCategory(orders, CategoryConfirmed))
	assert.Equal(t, ordersWith(model.OrderStatusError), FilterByCategory(orders, CategoryFailed))
}

func TestSortByStatus(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{ID: "a", Status: model.OrderStatusCompleted, CreatedAt: model.NewTimestamp(base)},
		{ID: "b", Status: model.OrderStatusPending, CreatedAt: model.NewTimestamp(base)},
		{ID: "c", Status: model.OrderStatusError, CreatedAt: model.NewTimestamp(base)},
		{ID: "d", Status: model.OrderStatusPending, CreatedAt: model.NewTimestamp(base.Add(time.Hour))},
	}

	ids := func(orders []model.Order) []string {
		out := make([]string, 0, len(orders))
		for _, o := range orders {
			out = append(out, o.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "d", "b", "c"}, ids(SortByStatus(orders, Desc)))
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids(SortByStatus(orders, Asc)))
	assert.Equal(t, "a", orders[0].ID, "input must not be reordered")
}
