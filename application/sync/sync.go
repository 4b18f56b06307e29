package sync

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	conflictapp "pos-backend/application/conflict"
	saleapp "pos-backend/application/sale"
	stockapp "pos-backend/application/stock"
	"pos-backend/constant"
	"pos-backend/model"
	synclogrepo "pos-backend/repository/synclog"
	"pos-backend/thirdparty/rabbitmq"
	"pos-backend/utils/errors"
	"pos-backend/utils/logger"
)

const entityTypeSale = "sale"

// SyncApp replays batches of sales queued by disconnected terminals. Each
// submission is processed independently so one failure never aborts the batch,
// and the terminal always gets an answer: conflicts surface later through the
// reconciliation queue, not through this response.
type SyncApp interface {
	Sync(ctx context.Context, clientUUID string, sales []model.SyncSaleEntry) (*model.SyncReport, error)
}

type syncAppImpl struct {
	syncLogRepo synclogrepo.SyncLogRepository
	saleApp     saleapp.SaleApp
	conflictApp conflictapp.ConflictApp
	stockApp    stockapp.StockApp
	publisher   *rabbitmq.Publisher
}

func NewSyncApp(syncLogRepo synclogrepo.SyncLogRepository, saleApp saleapp.SaleApp, conflictApp conflictapp.ConflictApp, stockApp stockapp.StockApp, publisher *rabbitmq.Publisher) SyncApp {
	return &syncAppImpl{syncLogRepo: syncLogRepo, saleApp: saleApp, conflictApp: conflictApp, stockApp: stockApp, publisher: publisher}
}

// isDuplicateKey reports a MySQL unique-constraint violation (1062) on the
// offline_sync_log idempotency_key column.
func isDuplicateKey(err error) bool {
	me, ok := err.(*mysql.MySQLError)
	return ok && me.Number == 1062
}

func (s *syncAppImpl) Sync(ctx context.Context, clientUUID string, sales []model.SyncSaleEntry) (*model.SyncReport, error) {
	if clientUUID == "" || len(sales) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	report := &model.SyncReport{ClientUUID: clientUUID, Results: make([]model.SyncResult, 0, len(sales))}
	for _, entry := range sales {
		res := s.processOne(ctx, clientUUID, entry)
		report.Results = append(report.Results, res)
		switch res.Status {
		case constant.SyncStatusSynced:
			report.Synced++
		case constant.SyncStatusDuplicate:
			report.Duplicates++
		case constant.SyncStatusFailed:
			report.Failed++
		}
	}
	return report, nil
}

func (s *syncAppImpl) processOne(ctx context.Context, clientUUID string, entry model.SyncSaleEntry) model.SyncResult {
	result := model.SyncResult{IdempotencyKey: entry.IdempotencyKey}

	existing, err := s.syncLogRepo.GetByIdempotencyKey(ctx, entry.IdempotencyKey)
	if err != nil {
		logger.Error("[Sync] lookup sync log", zap.String("idempotency_key", entry.IdempotencyKey), zap.String("error", err.Error()))
		result.Status = constant.SyncStatusFailed
		result.Error = constant.ErrorTypeMessage[constant.ErrInternal]
		return result
	}

	var logID uint64
	if existing != nil {
		switch existing.Status {
		case constant.SyncStatusSynced:
			result.Status = constant.SyncStatusSynced
			result.EntityID = existing.EntityID
			result.HasConflicts = existing.HasConflicts
			return result
		case constant.SyncStatusDuplicate:
			result.Status = constant.SyncStatusDuplicate
			return result
		case constant.SyncStatusFailed:
			// Hard failures need manual intervention, never automatic retry.
			result.Status = constant.SyncStatusFailed
			result.Error = existing.ErrorMessage
			return result
		default:
			// A pending row means a previous attempt died mid-flight. Resume
			// it: sale ingestion is idempotent, so replaying is safe.
			logID = existing.ID
		}
	} else {
		payload, err := json.Marshal(entry)
		if err != nil {
			logger.Error("[Sync] marshal payload", zap.String("error", err.Error()))
			result.Status = constant.SyncStatusFailed
			result.Error = constant.ErrorTypeMessage[constant.ErrInternal]
			return result
		}
		logID, err = s.syncLogRepo.Insert(ctx, &model.OfflineSyncLog{
			IdempotencyKey: entry.IdempotencyKey,
			ClientUUID:     clientUUID,
			EntityType:     entityTypeSale,
			Status:         constant.SyncStatusPending,
			RequestPayload: payload,
			CreatedAt:      time.Now(),
		})
		if err != nil {
			if isDuplicateKey(err) {
				// A concurrent batch with the same key got here first.
				logger.Info("[Sync] sync log insert rejected", zap.String("idempotency_key", entry.IdempotencyKey), zap.String("error", err.Error()))
				result.Status = constant.SyncStatusDuplicate
				return result
			}
			// Anything else is transient; the terminal must keep the sale
			// queued and retry, so never answer duplicate here.
			logger.Error("[Sync] insert sync log", zap.String("idempotency_key", entry.IdempotencyKey), zap.String("error", err.Error()))
			result.Status = constant.SyncStatusFailed
			result.Error = constant.ErrorTypeMessage[constant.ErrInternal]
			return result
		}
	}

	resp, err := s.saleApp.CreateSale(ctx, &model.CreateSaleRequest{
		IdempotencyKey: entry.IdempotencyKey,
		ClientUUID:     clientUUID,
		WarehouseID:    entry.WarehouseID,
		Items:          entry.Items,
		Payments:       entry.Payments,
		Discount:       entry.Discount,
		CreatedAt:      entry.CreatedAt,
		OfflineReplay:  true,
	})
	if err != nil {
		// Fatal for this submission only (e.g. product no longer exists).
		if markErr := s.syncLogRepo.MarkFailed(ctx, logID, err.Error()); markErr != nil {
			logger.Error("[Sync] mark failed", zap.Uint64("log_id", logID), zap.String("error", markErr.Error()))
		}
		result.Status = constant.SyncStatusFailed
		result.Error = err.Error()
		return result
	}

	conflicts := resp.Conflicts
	if resp.Duplicate && resp.Sale.HasStockConflict && len(conflicts) == 0 {
		// The sale committed on an earlier attempt that died before the log
		// was marked. The refetched response carries no conflict details, so
		// rebuild them from the ledger instead of dropping them.
		conflicts = s.rebuildConflicts(ctx, resp.Sale, entry.Items)
	}
	hasConflicts := len(conflicts) > 0 || resp.Sale.HasStockConflict
	if len(conflicts) > 0 {
		if err := s.conflictApp.RecordConflicts(ctx, resp.Sale.ID, logID, conflicts); err != nil {
			logger.Error("[Sync] record conflicts", zap.Uint64("sale_id", resp.Sale.ID), zap.String("error", err.Error()))
		}
		if s.publisher != nil {
			msg := rabbitmq.StockConflictMessage{
				SaleID:     resp.Sale.ID,
				SyncLogID:  logID,
				ClientUUID: clientUUID,
				Conflicts:  len(conflicts),
				DetectedAt: time.Now(),
			}
			if err := s.publisher.PublishStockConflict(msg); err != nil {
				logger.Error("[Sync] publish stock conflict", zap.String("error", err.Error()))
			}
		}
	}

	snapshot, err := json.Marshal(resp)
	if err != nil {
		logger.Error("[Sync] marshal response", zap.String("error", err.Error()))
		snapshot = nil
	}
	if err := s.syncLogRepo.MarkSynced(ctx, logID, resp.Sale.ID, snapshot, hasConflicts); err != nil {
		logger.Error("[Sync] mark synced", zap.Uint64("log_id", logID), zap.String("error", err.Error()))
		result.Status = constant.SyncStatusFailed
		result.Error = constant.ErrorTypeMessage[constant.ErrInternal]
		return result
	}

	saleID := resp.Sale.ID
	result.Status = constant.SyncStatusSynced
	result.EntityID = &saleID
	result.HasConflicts = hasConflicts
	return result
}

// rebuildConflicts reconstructs conflict details for a sale whose replay
// committed but whose bookkeeping was interrupted. Sale movements that drove
// the level negative identify the conflicting lines; the resubmitted entry
// supplies the stock the terminal assumed.
func (s *syncAppImpl) rebuildConflicts(ctx context.Context, sale *model.Sale, items []model.SaleItemRequest) []model.ConflictDetail {
	movements, err := s.stockApp.ListMovements(ctx, &model.MovementFilter{
		Type:          constant.MovementSale,
		ReferenceType: constant.ReferenceSale,
		ReferenceID:   sale.ID,
	})
	if err != nil {
		// The log still gets flagged through has_conflicts; only the
		// per-line details are unavailable right now.
		logger.Error("[Sync] rebuild conflicts", zap.Uint64("sale_id", sale.ID), zap.String("error", err.Error()))
		return nil
	}

	assumedStock := make(map[uint64]int64, len(items))
	for _, it := range items {
		if it.ExpectedStock != nil {
			assumedStock[it.ProductID] = *it.ExpectedStock
		}
	}

	details := make([]model.ConflictDetail, 0)
	for _, mv := range movements {
		if mv.QuantityAfter >= 0 {
			continue
		}
		expected := -mv.QuantityChange
		if assumed, ok := assumedStock[mv.ProductID]; ok {
			expected = assumed
		}
		details = append(details, model.ConflictDetail{
			ProductID:        mv.ProductID,
			WarehouseID:      mv.WarehouseID,
			ExpectedQuantity: expected,
			ActualQuantity:   mv.QuantityBefore,
			Difference:       expected - mv.QuantityBefore,
		})
	}
	return details
}
