package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"pos-backend/model"
)

type ProductRepository interface {
	// GetSnapshotTx reads the live product row so ingestion can copy
	// name/sku/prices onto sale items. Returns nil when the product is gone.
	GetSnapshotTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.ProductSnapshot, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetSnapshotTx(ctx context.Context, tx *sqlx.Tx, productID uint64) (*model.ProductSnapshot, error) {
	var p model.ProductSnapshot
	row := tx.QueryRowxContext(ctx,
		"SELECT id, name, sku, price, cost_price FROM product WHERE id = ? AND deleted_at IS NULL",
		productID)
	if err := row.StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
