package synclog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"pos-backend/constant"
	"pos-backend/model"
)

type SyncLogRepository interface {
	GetByIdempotencyKey(ctx context.Context, key string) (*model.OfflineSyncLog, error)
	Insert(ctx context.Context, log *model.OfflineSyncLog) (uint64, error)
	MarkSynced(ctx context.Context, logID uint64, entityID uint64, response json.RawMessage, hasConflicts bool) error
	MarkFailed(ctx context.Context, logID uint64, errMsg string) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewSyncLogRepository(conn *sqlx.DB) SyncLogRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetByIdempotencyKey(ctx context.Context, key string) (*model.OfflineSyncLog, error) {
	var l model.OfflineSyncLog
	row := r.conn.QueryRowxContext(ctx,
		"SELECT id, idempotency_key, client_uuid, entity_type, entity_id, status, request_payload, response_data, error_message, has_conflicts, synced_at, created_at FROM offline_sync_log WHERE idempotency_key = ?",
		key)
	if err := row.StructScan(&l); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *SQL) Insert(ctx context.Context, log *model.OfflineSyncLog) (uint64, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO offline_sync_log (idempotency_key, client_uuid, entity_type, status, request_payload, has_conflicts, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		log.IdempotencyKey, log.ClientUUID, log.EntityType, log.Status, []byte(log.RequestPayload), log.HasConflicts, log.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) MarkSynced(ctx context.Context, logID uint64, entityID uint64, response json.RawMessage, hasConflicts bool) error {
	_, err := r.conn.ExecContext(ctx,
		"UPDATE offline_sync_log SET status = ?, entity_id = ?, response_data = ?, has_conflicts = ?, synced_at = ? WHERE id = ?",
		constant.SyncStatusSynced, entityID, []byte(response), hasConflicts, time.Now(), logID)
	return err
}

func (r *SQL) MarkFailed(ctx context.Context, logID uint64, errMsg string) error {
	_, err := r.conn.ExecContext(ctx,
		"UPDATE offline_sync_log SET status = ?, error_message = ? WHERE id = ?",
		constant.SyncStatusFailed, errMsg, logID)
	return err
}
