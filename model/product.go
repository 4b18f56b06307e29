package model

import "github.com/shopspring/decimal"

// ProductSnapshot is the read view ingestion copies onto sale items.
type ProductSnapshot struct {
	ID        uint64          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	SKU       string          `db:"sku" json:"sku"`
	Price     decimal.Decimal `db:"price" json:"price"`
	CostPrice decimal.Decimal `db:"cost_price" json:"cost_price"`
}
