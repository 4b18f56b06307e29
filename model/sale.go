package model

import (
	"time"

	"github.com/shopspring/decimal"
	"pos-backend/constant"
)

type Sale struct {
	ID               uint64              `db:"id" json:"id"`
	IdempotencyKey   string              `db:"idempotency_key" json:"idempotency_key"`
	InvoiceNumber    string              `db:"invoice_number" json:"invoice_number"`
	ClientUUID       string              `db:"client_uuid" json:"client_uuid,omitempty"`
	WarehouseID      uint64              `db:"warehouse_id" json:"warehouse_id"`
	Status           constant.SaleStatus `db:"status" json:"status"`
	IsSynced         bool                `db:"is_synced" json:"is_synced"`
	HasStockConflict bool                `db:"has_stock_conflict" json:"has_stock_conflict"`
	Subtotal         decimal.Decimal     `db:"subtotal" json:"subtotal"`
	Discount         decimal.Decimal     `db:"discount" json:"discount"`
	Total            decimal.Decimal     `db:"total" json:"total"`
	UserID           *uint64             `db:"user_id" json:"user_id,omitempty"`
	CreatedAt        time.Time           `db:"created_at" json:"created_at"`
}

// SaleItem snapshots the product at sale time so later product edits
// never rewrite sales history.
type SaleItem struct {
	ID        uint64          `db:"id" json:"id"`
	SaleID    uint64          `db:"sale_id" json:"sale_id"`
	ProductID uint64          `db:"product_id" json:"product_id"`
	Name      string          `db:"name" json:"name"`
	SKU       string          `db:"sku" json:"sku"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
	CostPrice decimal.Decimal `db:"cost_price" json:"cost_price"`
	Discount  decimal.Decimal `db:"discount" json:"discount"`
	LineTotal decimal.Decimal `db:"line_total" json:"line_total"`
}

type Payment struct {
	ID        uint64          `db:"id" json:"id"`
	SaleID    uint64          `db:"sale_id" json:"sale_id"`
	Method    string          `db:"method" json:"method"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
	Reference string          `db:"reference" json:"reference,omitempty"`
}

type SaleItemRequest struct {
	ProductID uint64          `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	Discount  decimal.Decimal `json:"discount"`
	// ExpectedStock is the level the submitting terminal assumed. Only offline
	// submissions carry it; it feeds conflict records on replay.
	ExpectedStock *int64 `json:"expected_stock,omitempty"`
}

type PaymentRequest struct {
	Method    string          `json:"method" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Reference string          `json:"reference"`
}

type CreateSaleRequest struct {
	IdempotencyKey string            `json:"idempotency_key" validate:"required"`
	ClientUUID     string            `json:"client_uuid"`
	WarehouseID    uint64            `json:"warehouse_id" validate:"required"`
	Items          []SaleItemRequest `json:"items" validate:"required,min=1,dive,required"`
	Discount       decimal.Decimal   `json:"discount"`
	Payments       []PaymentRequest  `json:"payments" validate:"dive,required"`

	// OfflineReplay relaxes the insufficient-stock hard fail: the sale persists,
	// the level may go negative and each deficit becomes a conflict detail.
	// Set only by the sync coordinator, never from transport.
	OfflineReplay bool `json:"-"`
	// CreatedAt preserves the terminal's original timestamp on offline replays.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ConflictDetail reports one line whose replay found less stock than the
// terminal assumed.
type ConflictDetail struct {
	ProductID        uint64 `json:"product_id"`
	WarehouseID      uint64 `json:"warehouse_id"`
	ExpectedQuantity int64  `json:"expected_quantity"`
	ActualQuantity   int64  `json:"actual_quantity"`
	Difference       int64  `json:"difference"`
}

type SaleResponse struct {
	Sale      *Sale            `json:"sale"`
	Items     []SaleItem       `json:"items"`
	Conflicts []ConflictDetail `json:"conflicts,omitempty"`
	// Duplicate is true when the idempotency key matched an existing sale and
	// that original result is being returned unchanged.
	Duplicate bool `json:"duplicate,omitempty"`
}

type RefundItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type RefundSaleRequest struct {
	Items  []RefundItemRequest `json:"items" validate:"required,min=1,dive,required"`
	Reason string              `json:"reason"`
}

// InsertSaleTxItem carries the server-computed sale row into the repository.
type InsertSaleTxItem struct {
	IdempotencyKey   string
	InvoiceNumber    string
	ClientUUID       string
	WarehouseID      uint64
	Status           constant.SaleStatus
	IsSynced         bool
	HasStockConflict bool
	Subtotal         decimal.Decimal
	Discount         decimal.Decimal
	Total            decimal.Decimal
	UserID           *uint64
	CreatedAt        time.Time
}
