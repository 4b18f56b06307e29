package sale

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"pos-backend/constant"
	"pos-backend/model"
)

type SaleRepository interface {
	GetByIdempotencyKey(ctx context.Context, key string) (*model.Sale, error)
	GetSaleTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) (*model.Sale, error)
	GetItems(ctx context.Context, saleID uint64) ([]model.SaleItem, error)
	GetItemsTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) ([]model.SaleItem, error)
	InsertSaleTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertSaleTxItem) (uint64, error)
	InsertSaleItemsTx(ctx context.Context, tx *sqlx.Tx, saleID uint64, items []model.SaleItem) error
	InsertPaymentsTx(ctx context.Context, tx *sqlx.Tx, saleID uint64, payments []model.Payment) error
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, saleID uint64, status constant.SaleStatus) error
	MarkStockConflictTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) error
	SumRefundedQuantities(ctx context.Context, tx *sqlx.Tx, saleID uint64) (map[uint64]int64, error)
	SumPaymentsTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) (decimal.Decimal, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewSaleRepository(conn *sqlx.DB) SaleRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetByIdempotencyKey(ctx context.Context, key string) (*model.Sale, error) {
	var s model.Sale
	row := r.conn.QueryRowxContext(ctx,
		"SELECT id, idempotency_key, invoice_number, client_uuid, warehouse_id, status, is_synced, has_stock_conflict, subtotal, discount, total, user_id, created_at FROM sale WHERE idempotency_key = ?",
		key)
	if err := row.StructScan(&s); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQL) GetSaleTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) (*model.Sale, error) {
	var s model.Sale
	row := tx.QueryRowxContext(ctx,
		"SELECT id, idempotency_key, invoice_number, client_uuid, warehouse_id, status, is_synced, has_stock_conflict, subtotal, discount, total, user_id, created_at FROM sale WHERE id = ? FOR UPDATE",
		saleID)
	if err := row.StructScan(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQL) GetItems(ctx context.Context, saleID uint64) ([]model.SaleItem, error) {
	return r.scanItems(r.conn.QueryxContext(ctx,
		"SELECT id, sale_id, product_id, name, sku, quantity, unit_price, cost_price, discount, line_total FROM sale_item WHERE sale_id = ? ORDER BY id",
		saleID))
}

func (r *SQL) GetItemsTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) ([]model.SaleItem, error) {
	return r.scanItems(tx.QueryxContext(ctx,
		"SELECT id, sale_id, product_id, name, sku, quantity, unit_price, cost_price, discount, line_total FROM sale_item WHERE sale_id = ? ORDER BY id",
		saleID))
}

func (r *SQL) scanItems(rows *sqlx.Rows, err error) ([]model.SaleItem, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SaleItem, 0)
	for rows.Next() {
		var it model.SaleItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *SQL) InsertSaleTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertSaleTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO sale (idempotency_key, invoice_number, client_uuid, warehouse_id, status, is_synced, has_stock_conflict, subtotal, discount, total, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		req.IdempotencyKey, req.InvoiceNumber, req.ClientUUID, req.WarehouseID, req.Status,
		req.IsSynced, req.HasStockConflict, req.Subtotal, req.Discount, req.Total, req.UserID, req.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertSaleItemsTx(ctx context.Context, tx *sqlx.Tx, saleID uint64, items []model.SaleItem) error {
	q := "INSERT INTO sale_item (sale_id, product_id, name, sku, quantity, unit_price, cost_price, discount, line_total) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, saleID, it.ProductID, it.Name, it.SKU, it.Quantity, it.UnitPrice, it.CostPrice, it.Discount, it.LineTotal); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) InsertPaymentsTx(ctx context.Context, tx *sqlx.Tx, saleID uint64, payments []model.Payment) error {
	q := "INSERT INTO payment (sale_id, method, amount, reference) VALUES (?, ?, ?, ?)"
	for _, p := range payments {
		if _, err := tx.ExecContext(ctx, q, saleID, p.Method, p.Amount, p.Reference); err != nil {
			return err
		}
	}
	return nil
}

// MarkStockConflictTx flags the sale; the flag is never cleared automatically.
func (r *SQL) MarkStockConflictTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE sale SET has_stock_conflict = TRUE WHERE id = ?", saleID)
	return err
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, saleID uint64, status constant.SaleStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE sale SET status = ? WHERE id = ?", status, saleID)
	return err
}

func (r *SQL) SumPaymentsTx(ctx context.Context, tx *sqlx.Tx, saleID uint64) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := tx.QueryRowxContext(ctx, "SELECT COALESCE(SUM(amount), 0) FROM payment WHERE sale_id = ?", saleID)
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumRefundedQuantities returns already-refunded units per product for a sale,
// derived from return movements referencing it.
func (r *SQL) SumRefundedQuantities(ctx context.Context, tx *sqlx.Tx, saleID uint64) (map[uint64]int64, error) {
	rows, err := tx.QueryxContext(ctx,
		"SELECT product_id, COALESCE(SUM(quantity_change), 0) AS refunded FROM stock_movement WHERE reference_type = ? AND reference_id = ? AND type = ? GROUP BY product_id",
		constant.ReferenceSale, saleID, constant.MovementReturn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uint64]int64)
	for rows.Next() {
		var (
			productID uint64
			refunded  int64
		)
		if err := rows.Scan(&productID, &refunded); err != nil {
			return nil, err
		}
		out[productID] = refunded
	}
	return out, rows.Err()
}
