package conflict

import (
	"context"
	"time"

	"go.uber.org/zap"
	"pos-backend/application/stock"
	"pos-backend/constant"
	"pos-backend/model"
	conflictrepo "pos-backend/repository/conflict"
	txrepo "pos-backend/repository/tx"
	utilsContext "pos-backend/utils/context"
	"pos-backend/utils/errors"
	"pos-backend/utils/logger"
)

// ConflictApp records stock conflicts found during offline replay and exposes
// the operator reconciliation queue.
type ConflictApp interface {
	RecordConflicts(ctx context.Context, saleID, syncLogID uint64, details []model.ConflictDetail) error
	ListConflicts(ctx context.Context, status constant.ConflictStatus, limit int) ([]model.StockConflict, error)
	Resolve(ctx context.Context, conflictID uint64, req *model.ResolveConflictRequest) (*model.ResolveConflictResponse, error)
}

type conflictAppImpl struct {
	txRepo       txrepo.TxRepository
	conflictRepo conflictrepo.ConflictRepository
	stockApp     stock.StockApp
}

func NewConflictApp(txRepo txrepo.TxRepository, conflictRepo conflictrepo.ConflictRepository, stockApp stock.StockApp) ConflictApp {
	return &conflictAppImpl{txRepo: txRepo, conflictRepo: conflictRepo, stockApp: stockApp}
}

func (s *conflictAppImpl) RecordConflicts(ctx context.Context, saleID, syncLogID uint64, details []model.ConflictDetail) error {
	if len(details) == 0 {
		return nil
	}

	// A resumed sync replays an already-ingested sale; its conflicts may
	// already be on record. Recording is per-sale idempotent.
	existing, err := s.conflictRepo.CountBySale(ctx, saleID)
	if err != nil {
		logger.Error("[RecordConflicts] count by sale", zap.Uint64("sale_id", saleID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing > 0 {
		return nil
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RecordConflicts] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	now := time.Now()
	for _, d := range details {
		if _, err := s.conflictRepo.InsertTx(ctx, tx, &model.StockConflict{
			SaleID:           saleID,
			SyncLogID:        syncLogID,
			ProductID:        d.ProductID,
			WarehouseID:      d.WarehouseID,
			ExpectedQuantity: d.ExpectedQuantity,
			ActualQuantity:   d.ActualQuantity,
			Difference:       d.Difference,
			Status:           constant.ConflictStatusOpen,
			CreatedAt:        now,
		}); err != nil {
			logger.Error("[RecordConflicts] insert conflict", zap.Uint64("sale_id", saleID), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RecordConflicts] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *conflictAppImpl) ListConflicts(ctx context.Context, status constant.ConflictStatus, limit int) ([]model.StockConflict, error) {
	conflicts, err := s.conflictRepo.List(ctx, status, limit)
	if err != nil {
		logger.Error("[ListConflicts] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return conflicts, nil
}

// Resolve applies one of the three operator actions. Resolving an already
// resolved conflict is a no-op so retried requests stay safe.
func (s *conflictAppImpl) Resolve(ctx context.Context, conflictID uint64, req *model.ResolveConflictRequest) (*model.ResolveConflictResponse, error) {
	switch req.Action {
	case constant.ResolutionAcceptActual, constant.ResolutionAdjustToExpected, constant.ResolutionIgnore:
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Resolve] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	c, err := s.conflictRepo.GetForUpdateTx(ctx, tx, conflictID)
	if err != nil {
		logger.Error("[Resolve] lock conflict", zap.Uint64("conflict_id", conflictID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if c.Status == constant.ConflictStatusResolved {
		return &model.ResolveConflictResponse{Conflict: c, AlreadyResolved: true}, nil
	}

	userID := utilsContext.GetUserIDRef(ctx)
	var mv *model.StockMovement
	if req.Action == constant.ResolutionAdjustToExpected {
		// Restore the quantity the offline sale assumed via a correction.
		conflictRef := c.ID
		mv, err = s.stockApp.SetStockTx(ctx, tx, &stock.CorrectionParams{
			ProductID:     c.ProductID,
			WarehouseID:   c.WarehouseID,
			Target:        c.ExpectedQuantity,
			Reason:        req.Note,
			ReferenceType: constant.ReferenceStockConflict,
			ReferenceID:   &conflictRef,
			UserID:        userID,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.conflictRepo.MarkResolvedTx(ctx, tx, conflictID, req.Action, userID); err != nil {
		logger.Error("[Resolve] mark resolved", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Resolve] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	now := time.Now()
	c.Status = constant.ConflictStatusResolved
	c.Resolution = req.Action
	c.ResolvedBy = userID
	c.ResolvedAt = &now
	return &model.ResolveConflictResponse{Conflict: c, Movement: mv}, nil
}
