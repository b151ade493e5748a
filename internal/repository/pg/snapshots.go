package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

const (
	upsertSnapshotQuery = `
		INSERT INTO order_snapshots (order_id, network, status, category, progress, is_terminal, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (order_id, network) DO UPDATE SET
			status = EXCLUDED.status,
			category = EXCLUDED.category,
			progress = EXCLUDED.progress,
			is_terminal = EXCLUDED.is_terminal,
			updated_at = EXCLUDED.updated_at`

	selectOrdersToPollQuery = `
		SELECT DISTINCT t.order_id
		FROM tracked_orders t
			LEFT JOIN order_snapshots s ON s.order_id = t.order_id AND s.network = t.network
		WHERE t.network = $1 AND (s.order_id IS NULL OR NOT s.is_terminal)`

	selectSnapshotQuery = `
		SELECT order_id, network, status, category, progress, is_terminal
		FROM order_snapshots WHERE order_id = $1 AND network = $2`
)

func (r *Repository) UpsertSnapshot(ctx context.Context, s model.OrderSnapshot) error {
	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, upsertSnapshotQuery,
			s.OrderID,
			s.Network,
			s.Status,
			s.Category,
			s.Progress,
			s.IsTerminal,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", s.OrderID, err)
	}

	return nil
}

// OrdersToPoll lists every tracked order on the network that has no snapshot
// yet or whose last snapshot is not terminal.
func (r *Repository) OrdersToPoll(ctx context.Context, network model.Network) ([]string, error) {
	ids := make([]string, 0)

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		ids = ids[:0]

		rows, err := db.QueryContext(ctx, selectOrdersToPollQuery, network)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("orders to poll: %w", err)
	}

	return ids, nil
}

// GetSnapshot returns model.ErrOrderNotFound when the order was never polled.
func (r *Repository) GetSnapshot(ctx context.Context, network model.Network, orderID string) (model.OrderSnapshot, error) {
	var s model.OrderSnapshot

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx, selectSnapshotQuery, orderID, network).
			Scan(&s.OrderID, &s.Network, &s.Status, &s.Category, &s.Progress, &s.IsTerminal)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return s, model.ErrOrderNotFound
	}
	if err != nil {
		return s, fmt.Errorf("get snapshot %s: %w", orderID, err)
	}

	return s, nil
}
