package stock

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"pos-backend/model"
)

type StockRepository interface {
	// GetLevelForUpdateTx returns the level row locked FOR UPDATE, creating a
	// zeroed row first when the pair has never moved stock.
	GetLevelForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64) (*model.StockLevel, error)
	UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, levelID uint64, quantity int64) error
	UpdateReservedTx(ctx context.Context, tx *sqlx.Tx, levelID uint64, reserved int64) error
	InsertMovementTx(ctx context.Context, tx *sqlx.Tx, mv *model.StockMovement) (uint64, error)
	GetLevel(ctx context.Context, productID, warehouseID uint64) (*model.StockLevel, error)
	ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetLevelForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64) (*model.StockLevel, error) {
	// Lazy create keeps the unique (product_id, warehouse_id) row present so the
	// FOR UPDATE below always has something to lock.
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO stock_level (product_id, warehouse_id, quantity, reserved) VALUES (?, ?, 0, 0) ON DUPLICATE KEY UPDATE id = id",
		productID, warehouseID); err != nil {
		return nil, err
	}

	var level model.StockLevel
	row := tx.QueryRowxContext(ctx,
		"SELECT id, product_id, warehouse_id, quantity, reserved FROM stock_level WHERE product_id = ? AND warehouse_id = ? FOR UPDATE",
		productID, warehouseID)
	if err := row.StructScan(&level); err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *SQL) UpdateQuantityTx(ctx context.Context, tx *sqlx.Tx, levelID uint64, quantity int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE stock_level SET quantity = ? WHERE id = ?", quantity, levelID)
	return err
}

func (r *SQL) UpdateReservedTx(ctx context.Context, tx *sqlx.Tx, levelID uint64, reserved int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE stock_level SET reserved = ? WHERE id = ?", reserved, levelID)
	return err
}

func (r *SQL) InsertMovementTx(ctx context.Context, tx *sqlx.Tx, mv *model.StockMovement) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO stock_movement (product_id, warehouse_id, quantity_change, quantity_before, quantity_after, type, reason, reference_type, reference_id, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		mv.ProductID, mv.WarehouseID, mv.QuantityChange, mv.QuantityBefore, mv.QuantityAfter,
		mv.Type, mv.Reason, mv.ReferenceType, mv.ReferenceID, mv.UserID, mv.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetLevel(ctx context.Context, productID, warehouseID uint64) (*model.StockLevel, error) {
	var level model.StockLevel
	row := r.conn.QueryRowxContext(ctx,
		"SELECT id, product_id, warehouse_id, quantity, reserved FROM stock_level WHERE product_id = ? AND warehouse_id = ?",
		productID, warehouseID)
	if err := row.StructScan(&level); err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *SQL) ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.ProductID != 0 {
		conds = append(conds, "product_id = ?")
		args = append(args, filter.ProductID)
	}
	if filter.WarehouseID != 0 {
		conds = append(conds, "warehouse_id = ?")
		args = append(args, filter.WarehouseID)
	}
	if filter.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, filter.Type)
	}
	if filter.ReferenceType != "" {
		conds = append(conds, "reference_type = ?")
		args = append(args, filter.ReferenceType)
	}
	if filter.ReferenceID != 0 {
		conds = append(conds, "reference_id = ?")
		args = append(args, filter.ReferenceID)
	}
	if !filter.From.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, filter.From)
	}
	if !filter.To.IsZero() {
		conds = append(conds, "created_at < ?")
		args = append(args, filter.To)
	}

	q := "SELECT id, product_id, warehouse_id, quantity_change, quantity_before, quantity_after, type, reason, reference_type, reference_id, user_id, created_at FROM stock_movement"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY id"
	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}
	q += " LIMIT ?"
	args = append(args, limit)

	rows, err := r.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]model.StockMovement, 0)
	for rows.Next() {
		var mv model.StockMovement
		if err := rows.StructScan(&mv); err != nil {
			return nil, err
		}
		movements = append(movements, mv)
	}
	return movements, rows.Err()
}
