// Package worker keeps status snapshots of tracked orders fresh in the background.
package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
	"github.com/ibeloyar/inscribe-dashboard/internal/ordermanager"
	"github.com/ibeloyar/inscribe-dashboard/internal/orderstatus"
	"github.com/ibeloyar/inscribe-dashboard/internal/repository/ordinals"
)

//go:generate mockgen -source=poller.go -destination=mocks/poller_mock.go -package=mocks

type OrderFetcher interface {
	GetOrder(ctx context.Context, id string) (model.Order, error)
}

type SnapshotStore interface {
	OrdersToPoll(ctx context.Context, network model.Network) ([]string, error)
	GetSnapshot(ctx context.Context, network model.Network, orderID string) (model.OrderSnapshot, error)
	UpsertSnapshot(ctx context.Context, snapshot model.OrderSnapshot) error
}

type Poller struct {
	fetcher  OrderFetcher
	store    SnapshotStore
	network  model.Network
	interval time.Duration
	pool     *WorkerPool
	lg       *zap.SugaredLogger
}

func NewPoller(fetcher OrderFetcher, store SnapshotStore, network model.Network, interval time.Duration, workers int, lg *zap.SugaredLogger) *Poller {
	return &Poller{
		fetcher:  fetcher,
		store:    store,
		network:  network,
		interval: interval,
		pool:     NewWorkerPool(workers),
		lg:       lg,
	}
}

// Run polls every interval until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	if p.interval <= 0 {
		p.lg.Info("order poller disabled")
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.lg.Infof("order poller started, interval %s", p.interval)

	for {
		select {
		case <-ctx.Done():
			p.lg.Info("order poller stopped")
			return
		case <-ticker.C:
			if p.pool.Paused() {
				continue
			}
			p.PollOnce(ctx)
		}
	}
}

// PollOnce refreshes every order that is not terminal yet and returns how
// many were listed for polling.
func (p *Poller) PollOnce(ctx context.Context) int {
	ids, err := p.store.OrdersToPoll(ctx, p.network)
	if err != nil {
		p.lg.Errorf("orders to poll: %v", err)
		return 0
	}

	p.pool.Run(ctx, ids, p.pollOrder)

	return len(ids)
}

func (p *Poller) pollOrder(ctx context.Context, id string) {
	order, err := p.fetcher.GetOrder(ctx, id)
	if err != nil {
		if after, ok := ordinals.IsRateLimited(err); ok {
			p.lg.Warnf("ordinals rate limit, pausing poller for %s", after)
			p.pool.PauseFor(after)
			return
		}
		if errors.Is(err, context.Canceled) {
			return
		}
		p.lg.Errorf("poll order %s: %v", id, err)
		return
	}

	next := Snapshot(p.network, id, order)

	prev, err := p.store.GetSnapshot(ctx, p.network, id)
	switch {
	case errors.Is(err, model.ErrOrderNotFound):
	case err != nil:
		p.lg.Errorf("get snapshot %s: %v", id, err)
	case prev.Status != next.Status:
		p.lg.Infof("order %s: %s -> %s", id, prev.Status, next.Status)
	}

	if err := p.store.UpsertSnapshot(ctx, next); err != nil {
		p.lg.Errorf("save snapshot %s: %v", id, err)
	}
}

// Snapshot captures the classified state of an order.
func Snapshot(network model.Network, id string, order model.Order) model.OrderSnapshot {
	status := ordermanager.Status(order)
	cfg := orderstatus.Get(status)

	return model.OrderSnapshot{
		OrderID:    id,
		Network:    network,
		Status:     status,
		Category:   string(orderstatus.Categorize(string(status))),
		Progress:   cfg.ProgressWeight,
		IsTerminal: cfg.IsTerminal,
	}
}
