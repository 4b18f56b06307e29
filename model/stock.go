package model

import (
	"time"

	"pos-backend/constant"
)

// StockLevel is the ledger balance for one (product, warehouse) pair.
// Rows are created lazily on first movement and never deleted.
type StockLevel struct {
	ID          uint64 `db:"id" json:"id"`
	ProductID   uint64 `db:"product_id" json:"product_id"`
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	Quantity    int64  `db:"quantity" json:"quantity"`
	Reserved    int64  `db:"reserved" json:"reserved"`
}

// Available is the quantity not held by reservations.
func (l *StockLevel) Available() int64 {
	return l.Quantity - l.Reserved
}

// StockMovement is one immutable ledger entry. QuantityAfter of movement N equals
// QuantityBefore of movement N+1 for the same (product, warehouse) pair.
type StockMovement struct {
	ID             uint64                 `db:"id" json:"id"`
	ProductID      uint64                 `db:"product_id" json:"product_id"`
	WarehouseID    uint64                 `db:"warehouse_id" json:"warehouse_id"`
	QuantityChange int64                  `db:"quantity_change" json:"quantity_change"`
	QuantityBefore int64                  `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  int64                  `db:"quantity_after" json:"quantity_after"`
	Type           constant.MovementType  `db:"type" json:"type"`
	Reason         string                 `db:"reason" json:"reason,omitempty"`
	ReferenceType  constant.ReferenceType `db:"reference_type" json:"reference_type,omitempty"`
	ReferenceID    *uint64                `db:"reference_id" json:"reference_id,omitempty"`
	UserID         *uint64                `db:"user_id" json:"user_id,omitempty"`
	CreatedAt      time.Time              `db:"created_at" json:"created_at"`
}

type AdjustStockRequest struct {
	ProductID   uint64 `json:"product_id" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required"`
	Reason      string `json:"reason"`
}

type SetStockRequest struct {
	ProductID   uint64 `json:"product_id" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"gte=0"`
	Reason      string `json:"reason"`
}

type TransferStockRequest struct {
	ProductID       uint64 `json:"product_id" validate:"required"`
	FromWarehouseID uint64 `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   uint64 `json:"to_warehouse_id" validate:"required"`
	Quantity        int64  `json:"quantity" validate:"required,gt=0"`
	Reason          string `json:"reason"`
}

type TransferStockResponse struct {
	Out *StockMovement `json:"out"`
	In  *StockMovement `json:"in"`
}

type ReserveStockRequest struct {
	ProductID   uint64 `json:"product_id" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
}

type RecordPurchaseRequest struct {
	ProductID   uint64 `json:"product_id" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	InvoiceID   uint64 `json:"invoice_id" validate:"required"`
	Reason      string `json:"reason"`
}

type RecordDamageRequest struct {
	ProductID   uint64 `json:"product_id" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Reason      string `json:"reason"`
}

// MovementFilter narrows movement listings for the reporting boundary.
// Zero values mean "no filter" for that field.
type MovementFilter struct {
	ProductID     uint64
	WarehouseID   uint64
	Type          constant.MovementType
	ReferenceType constant.ReferenceType
	ReferenceID   uint64
	From          time.Time
	To            time.Time
	Limit         int
}
