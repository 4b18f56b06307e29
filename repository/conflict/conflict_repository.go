package conflict

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"pos-backend/constant"
	"pos-backend/model"
)

type ConflictRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, c *model.StockConflict) (uint64, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, conflictID uint64) (*model.StockConflict, error)
	MarkResolvedTx(ctx context.Context, tx *sqlx.Tx, conflictID uint64, resolution constant.ConflictResolution, userID *uint64) error
	List(ctx context.Context, status constant.ConflictStatus, limit int) ([]model.StockConflict, error)
	CountBySale(ctx context.Context, saleID uint64) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewConflictRepository(conn *sqlx.DB) ConflictRepository {
	return &SQL{conn: conn}
}

const conflictColumns = "id, sale_id, sync_log_id, product_id, warehouse_id, expected_quantity, actual_quantity, difference, status, resolution, resolved_by, resolved_at, created_at"

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, c *model.StockConflict) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO stock_conflict (sale_id, sync_log_id, product_id, warehouse_id, expected_quantity, actual_quantity, difference, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		c.SaleID, c.SyncLogID, c.ProductID, c.WarehouseID, c.ExpectedQuantity, c.ActualQuantity, c.Difference, constant.ConflictStatusOpen, c.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, conflictID uint64) (*model.StockConflict, error) {
	var c model.StockConflict
	row := tx.QueryRowxContext(ctx,
		"SELECT "+conflictColumns+" FROM stock_conflict WHERE id = ? FOR UPDATE", conflictID)
	if err := row.StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *SQL) MarkResolvedTx(ctx context.Context, tx *sqlx.Tx, conflictID uint64, resolution constant.ConflictResolution, userID *uint64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE stock_conflict SET status = ?, resolution = ?, resolved_by = ?, resolved_at = ? WHERE id = ?",
		constant.ConflictStatusResolved, resolution, userID, time.Now(), conflictID)
	return err
}

func (r *SQL) CountBySale(ctx context.Context, saleID uint64) (int64, error) {
	var count int64
	row := r.conn.QueryRowxContext(ctx, "SELECT COUNT(*) FROM stock_conflict WHERE sale_id = ?", saleID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQL) List(ctx context.Context, status constant.ConflictStatus, limit int) ([]model.StockConflict, error) {
	if limit <= 0 {
		limit = 100
	}
	q := "SELECT " + conflictColumns + " FROM stock_conflict"
	args := []interface{}{}
	if status != "" {
		q += " WHERE status = ?"
		args = append(args, status)
	}
	q += " ORDER BY id LIMIT ?"
	args = append(args, limit)

	rows, err := r.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conflicts := make([]model.StockConflict, 0)
	for rows.Next() {
		var c model.StockConflict
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		conflicts = append(conflicts, c)
	}
	return conflicts, rows.Err()
}
