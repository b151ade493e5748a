package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

const (
	selectTrackedQuery = `SELECT order_id FROM tracked_orders WHERE network = $1 AND owner = $2 ORDER BY id DESC`
	insertTrackedQuery = `INSERT INTO tracked_orders (network, owner, order_id) VALUES ($1, $2, $3)`
	seedTrackedQuery   = `INSERT INTO tracked_orders (network, owner, order_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
	deleteTrackedQuery = `DELETE FROM tracked_orders WHERE network = $1 AND owner = $2 AND order_id = $3`
	clearTrackedQuery  = `DELETE FROM tracked_orders WHERE network = $1 AND owner = $2`
)

// ListTracked returns the owner's tracked order IDs, newest first.
func (r *Repository) ListTracked(ctx context.Context, network model.Network, owner string) ([]string, error) {
	ids := make([]string, 0)

	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		ids = ids[:0]

		rows, err := db.QueryContext(ctx, selectTrackedQuery, network, owner)
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
		return nil, fmt.Errorf("list tracked orders: %w", err)
	}

	return ids, nil
}

func (r *Repository) AddTracked(ctx context.Context, network model.Network, owner, orderID string) error {
	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, insertTrackedQuery, network, owner, orderID)
		return err
	})
	if isUniqueViolation(err) {
		return model.ErrOrderAlreadyTracked
	}
	if err != nil {
		return fmt.Errorf("add tracked order: %w", err)
	}

	return nil
}

func (r *Repository) RemoveTracked(ctx context.Context, network model.Network, owner, orderID string) error {
	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, deleteTrackedQuery, network, owner, orderID)
		return err
	})
	if err != nil {
		return fmt.Errorf("remove tracked order: %w", err)
	}

	return nil
}

// ReplaceTracked swaps the owner's whole list for ids, keeping ids[0] newest.
func (r *Repository) ReplaceTracked(ctx context.Context, network model.Network, owner string, ids []string) error {
	err := r.executeWithRetryConnection(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.ExecContext(ctx, clearTrackedQuery, network, owner); err != nil {
			return err
		}

		for i := len(ids) - 1; i >= 0; i-- {
			if _, err := tx.ExecContext(ctx, seedTrackedQuery, network, owner, ids[i]); err != nil {
				return err
			}
		}

		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("replace tracked orders: %w", err)
	}

	return nil
}
