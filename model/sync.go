package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"pos-backend/constant"
)

// OfflineSyncLog is the durable answer to "did we already process this
// submission", keyed uniquely by idempotency key.
type OfflineSyncLog struct {
	ID             uint64              `db:"id" json:"id"`
	IdempotencyKey string              `db:"idempotency_key" json:"idempotency_key"`
	ClientUUID     string              `db:"client_uuid" json:"client_uuid"`
	EntityType     string              `db:"entity_type" json:"entity_type"`
	EntityID       *uint64             `db:"entity_id" json:"entity_id,omitempty"`
	Status         constant.SyncStatus `db:"status" json:"status"`
	RequestPayload json.RawMessage     `db:"request_payload" json:"request_payload,omitempty"`
	ResponseData   json.RawMessage     `db:"response_data" json:"response_data,omitempty"`
	ErrorMessage   string              `db:"error_message" json:"error_message,omitempty"`
	HasConflicts   bool                `db:"has_conflicts" json:"has_conflicts"`
	SyncedAt       *time.Time          `db:"synced_at" json:"synced_at,omitempty"`
	CreatedAt      time.Time           `db:"created_at" json:"created_at"`
}

type SyncBatchRequest struct {
	ClientUUID string          `json:"client_uuid" validate:"required"`
	Sales      []SyncSaleEntry `json:"sales" validate:"required,min=1,dive,required"`
}

type SyncSaleEntry struct {
	IdempotencyKey string            `json:"idempotency_key" validate:"required"`
	WarehouseID    uint64            `json:"warehouse_id" validate:"required"`
	Items          []SaleItemRequest `json:"items" validate:"required,min=1,dive,required"`
	Payments       []PaymentRequest  `json:"payments"`
	Discount       decimal.Decimal   `json:"discount"`
	CreatedAt      *time.Time        `json:"created_at,omitempty"`
}

// SyncResult is the per-submission outcome inside a SyncReport.
type SyncResult struct {
	IdempotencyKey string              `json:"idempotency_key"`
	Status         constant.SyncStatus `json:"status"`
	EntityID       *uint64             `json:"entity_id,omitempty"`
	HasConflicts   bool                `json:"has_conflicts"`
	Error          string              `json:"error,omitempty"`
}

type SyncReport struct {
	ClientUUID string       `json:"client_uuid"`
	Results    []SyncResult `json:"results"`
	Synced     int          `json:"synced"`
	Duplicates int          `json:"duplicates"`
	Failed     int          `json:"failed"`
}
