package model

import (
	"time"

	"pos-backend/constant"
)

// StockConflict records a mismatch between the stock an offline sale assumed
// and the level found at replay time. Open conflicts form the operator queue.
type StockConflict struct {
	ID               uint64                      `db:"id" json:"id"`
	SaleID           uint64                      `db:"sale_id" json:"sale_id"`
	SyncLogID        uint64                      `db:"sync_log_id" json:"sync_log_id"`
	ProductID        uint64                      `db:"product_id" json:"product_id"`
	WarehouseID      uint64                      `db:"warehouse_id" json:"warehouse_id"`
	ExpectedQuantity int64                       `db:"expected_quantity" json:"expected_quantity"`
	ActualQuantity   int64                       `db:"actual_quantity" json:"actual_quantity"`
	Difference       int64                       `db:"difference" json:"difference"`
	Status           constant.ConflictStatus     `db:"status" json:"status"`
	Resolution       constant.ConflictResolution `db:"resolution" json:"resolution,omitempty"`
	ResolvedBy       *uint64                     `db:"resolved_by" json:"resolved_by,omitempty"`
	ResolvedAt       *time.Time                  `db:"resolved_at" json:"resolved_at,omitempty"`
	CreatedAt        time.Time                   `db:"created_at" json:"created_at"`
}

type ResolveConflictRequest struct {
	Action constant.ConflictResolution `json:"action" validate:"required,oneof=accept_actual adjust_to_expected ignore"`
	Note   string                      `json:"note"`
}

type ResolveConflictResponse struct {
	Conflict *StockConflict `json:"conflict"`
	// Movement is set only when the resolution issued a correction.
	Movement *StockMovement `json:"movement,omitempty"`
	// AlreadyResolved marks the idempotent no-op path for retried requests.
	AlreadyResolved bool `json:"already_resolved,omitempty"`
}
