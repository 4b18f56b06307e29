package stock

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"pos-backend/constant"
	"pos-backend/model"
	stockrepo "pos-backend/repository/stock"
	txrepo "pos-backend/repository/tx"
	utilsContext "pos-backend/utils/context"
	"pos-backend/utils/errors"
	"pos-backend/utils/logger"
)

// StockApp is the stock engine: every quantity change goes through here so the
// level row and its movement commit together under one row lock.
type StockApp interface {
	Adjust(ctx context.Context, req *model.AdjustStockRequest) (*model.StockMovement, error)
	SetStock(ctx context.Context, req *model.SetStockRequest) (*model.StockMovement, error)
	Transfer(ctx context.Context, req *model.TransferStockRequest) (*model.TransferStockResponse, error)
	RecordPurchase(ctx context.Context, productID, warehouseID uint64, quantity int64, invoiceID uint64, reason string) (*model.StockMovement, error)
	RecordDamage(ctx context.Context, productID, warehouseID uint64, quantity int64, reason string) (*model.StockMovement, error)
	ReserveStock(ctx context.Context, req *model.ReserveStockRequest) (bool, error)
	ReleaseReservation(ctx context.Context, req *model.ReserveStockRequest) error
	GetLevel(ctx context.Context, productID, warehouseID uint64) (*model.StockLevel, error)
	ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, error)

	// Tx-scoped entry points for callers that own a transaction (sale
	// ingestion, conflict reconciliation). The caller's lock scope covers the
	// whole read-modify-write.
	RecordSaleTx(ctx context.Context, tx *sqlx.Tx, p *SaleMovementParams) (*model.StockMovement, error)
	RecordReturnTx(ctx context.Context, tx *sqlx.Tx, p *SaleMovementParams) (*model.StockMovement, error)
	SetStockTx(ctx context.Context, tx *sqlx.Tx, p *CorrectionParams) (*model.StockMovement, error)
}

// SaleMovementParams describes one sale (or return) line hitting the ledger.
type SaleMovementParams struct {
	ProductID   uint64
	WarehouseID uint64
	Quantity    int64 // units sold or returned, always positive
	SaleID      uint64
	UserID      *uint64
	// AllowNegative is set only on the offline-replay path: the level may go
	// below zero and the deficit is surfaced as a conflict, never an error.
	AllowNegative bool
}

// CorrectionParams targets an absolute quantity via a correction movement.
type CorrectionParams struct {
	ProductID     uint64
	WarehouseID   uint64
	Target        int64
	Reason        string
	ReferenceType constant.ReferenceType
	ReferenceID   *uint64
	UserID        *uint64
}

type stockAppImpl struct {
	txRepo    txrepo.TxRepository
	stockRepo stockrepo.StockRepository
}

func NewStockApp(txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository) StockApp {
	return &stockAppImpl{txRepo: txRepo, stockRepo: stockRepo}
}

// adjustParams is the single internal shape every mutation reduces to.
type adjustParams struct {
	productID     uint64
	warehouseID   uint64
	delta         int64
	absolute      bool  // when true, target holds the absolute quantity
	target        int64 // used only with absolute
	movementType  constant.MovementType
	reason        string
	referenceType constant.ReferenceType
	referenceID   *uint64
	userID        *uint64
	allowNegative bool
}

// adjustTx performs the locked read-modify-write for one (product, warehouse)
// pair and appends the movement in the same transaction.
func (s *stockAppImpl) adjustTx(ctx context.Context, tx *sqlx.Tx, p *adjustParams) (*model.StockMovement, error) {
	level, err := s.stockRepo.GetLevelForUpdateTx(ctx, tx, p.productID, p.warehouseID)
	if err != nil {
		logger.Error("[Adjust] lock stock level", zap.Uint64("product_id", p.productID), zap.Uint64("warehouse_id", p.warehouseID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	before := level.Quantity
	delta := p.delta
	if p.absolute {
		delta = p.target - before
	}
	after := before + delta

	if after < 0 && !p.allowNegative {
		logger.Info("[Adjust] insufficient stock",
			zap.Uint64("product_id", p.productID), zap.Uint64("warehouse_id", p.warehouseID),
			zap.Int64("have", before), zap.Int64("delta", delta))
		return nil, errors.SetCustomErrorWithDetail(constant.ErrInsufficientStock,
			fmt.Sprintf("product %d in warehouse %d: have %d, short by %d", p.productID, p.warehouseID, before, -after))
	}

	if err := s.stockRepo.UpdateQuantityTx(ctx, tx, level.ID, after); err != nil {
		logger.Error("[Adjust] update quantity", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	mv := &model.StockMovement{
		ProductID:      p.productID,
		WarehouseID:    p.warehouseID,
		QuantityChange: delta,
		QuantityBefore: before,
		QuantityAfter:  after,
		Type:           p.movementType,
		Reason:         p.reason,
		ReferenceType:  p.referenceType,
		ReferenceID:    p.referenceID,
		UserID:         p.userID,
		CreatedAt:      time.Now(),
	}
	id, err := s.stockRepo.InsertMovementTx(ctx, tx, mv)
	if err != nil {
		logger.Error("[Adjust] insert movement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	mv.ID = id
	return mv, nil
}

// runInTx wraps one or more adjustments in a transaction with the usual
// rollback-unless-committed discipline.
func (s *stockAppImpl) runInTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *stockAppImpl) Adjust(ctx context.Context, req *model.AdjustStockRequest) (*model.StockMovement, error) {
	if req.Quantity == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var mv *model.StockMovement
	err := s.runInTx(ctx, "Adjust", func(tx *sqlx.Tx) error {
		var err error
		mv, err = s.adjustTx(ctx, tx, &adjustParams{
			productID:    req.ProductID,
			warehouseID:  req.WarehouseID,
			delta:        req.Quantity,
			movementType: constant.MovementAdjustment,
			reason:       req.Reason,
			userID:       utilsContext.GetUserIDRef(ctx),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mv, nil
}

func (s *stockAppImpl) SetStock(ctx context.Context, req *model.SetStockRequest) (*model.StockMovement, error) {
	var mv *model.StockMovement
	err := s.runInTx(ctx, "SetStock", func(tx *sqlx.Tx) error {
		var err error
		mv, err = s.adjustTx(ctx, tx, &adjustParams{
			productID:    req.ProductID,
			warehouseID:  req.WarehouseID,
			absolute:     true,
			target:       req.Quantity,
			movementType: constant.MovementCorrection,
			reason:       req.Reason,
			userID:       utilsContext.GetUserIDRef(ctx),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mv, nil
}

func (s *stockAppImpl) Transfer(ctx context.Context, req *model.TransferStockRequest) (*model.TransferStockResponse, error) {
	if req.FromWarehouseID == req.ToWarehouseID {
		return nil, errors.SetCustomError(constant.ErrInvalidTransferTarget)
	}

	res := &model.TransferStockResponse{}
	userID := utilsContext.GetUserIDRef(ctx)
	err := s.runInTx(ctx, "Transfer", func(tx *sqlx.Tx) error {
		// Debit leg first. If it fails the credit is never attempted, so a
		// partial transfer cannot commit.
		out, err := s.adjustTx(ctx, tx, &adjustParams{
			productID:    req.ProductID,
			warehouseID:  req.FromWarehouseID,
			delta:        -req.Quantity,
			movementType: constant.MovementTransferOut,
			reason:       req.Reason,
			userID:       userID,
		})
		if err != nil {
			return err
		}
		in, err := s.adjustTx(ctx, tx, &adjustParams{
			productID:    req.ProductID,
			warehouseID:  req.ToWarehouseID,
			delta:        req.Quantity,
			movementType: constant.MovementTransferIn,
			reason:       req.Reason,
			userID:       userID,
		})
		if err != nil {
			return err
		}
		res.Out, res.In = out, in
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *stockAppImpl) RecordPurchase(ctx context.Context, productID, warehouseID uint64, quantity int64, invoiceID uint64, reason string) (*model.StockMovement, error) {
	if quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var mv *model.StockMovement
	err := s.runInTx(ctx, "RecordPurchase", func(tx *sqlx.Tx) error {
		var err error
		mv, err = s.adjustTx(ctx, tx, &adjustParams{
			productID:     productID,
			warehouseID:   warehouseID,
			delta:         quantity,
			movementType:  constant.MovementPurchase,
			reason:        reason,
			referenceType: constant.ReferencePurchaseInvoice,
			referenceID:   &invoiceID,
			userID:        utilsContext.GetUserIDRef(ctx),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mv, nil
}

func (s *stockAppImpl) RecordDamage(ctx context.Context, productID, warehouseID uint64, quantity int64, reason string) (*model.StockMovement, error) {
	if quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var mv *model.StockMovement
	err := s.runInTx(ctx, "RecordDamage", func(tx *sqlx.Tx) error {
		var err error
		mv, err = s.adjustTx(ctx, tx, &adjustParams{
			productID:    productID,
			warehouseID:  warehouseID,
			delta:        -quantity,
			movementType: constant.MovementDamage,
			reason:       reason,
			userID:       utilsContext.GetUserIDRef(ctx),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mv, nil
}

func (s *stockAppImpl) RecordSaleTx(ctx context.Context, tx *sqlx.Tx, p *SaleMovementParams) (*model.StockMovement, error) {
	saleID := p.SaleID
	return s.adjustTx(ctx, tx, &adjustParams{
		productID:     p.ProductID,
		warehouseID:   p.WarehouseID,
		delta:         -p.Quantity,
		movementType:  constant.MovementSale,
		referenceType: constant.ReferenceSale,
		referenceID:   &saleID,
		userID:        p.UserID,
		allowNegative: p.AllowNegative,
	})
}

func (s *stockAppImpl) RecordReturnTx(ctx context.Context, tx *sqlx.Tx, p *SaleMovementParams) (*model.StockMovement, error) {
	saleID := p.SaleID
	return s.adjustTx(ctx, tx, &adjustParams{
		productID:     p.ProductID,
		warehouseID:   p.WarehouseID,
		delta:         p.Quantity,
		movementType:  constant.MovementReturn,
		referenceType: constant.ReferenceSale,
		referenceID:   &saleID,
		userID:        p.UserID,
	})
}

func (s *stockAppImpl) SetStockTx(ctx context.Context, tx *sqlx.Tx, p *CorrectionParams) (*model.StockMovement, error) {
	return s.adjustTx(ctx, tx, &adjustParams{
		productID:     p.ProductID,
		warehouseID:   p.WarehouseID,
		absolute:      true,
		target:        p.Target,
		movementType:  constant.MovementCorrection,
		reason:        p.Reason,
		referenceType: p.ReferenceType,
		referenceID:   p.ReferenceID,
		userID:        p.UserID,
	})
}

// ReserveStock places a soft hold. A false return means not enough available
// stock; callers treat that as advisory, not an error.
func (s *stockAppImpl) ReserveStock(ctx context.Context, req *model.ReserveStockRequest) (bool, error) {
	reserved := false
	err := s.runInTx(ctx, "ReserveStock", func(tx *sqlx.Tx) error {
		level, err := s.stockRepo.GetLevelForUpdateTx(ctx, tx, req.ProductID, req.WarehouseID)
		if err != nil {
			logger.Error("[ReserveStock] lock stock level", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if level.Available() < req.Quantity {
			return nil
		}
		if err := s.stockRepo.UpdateReservedTx(ctx, tx, level.ID, level.Reserved+req.Quantity); err != nil {
			logger.Error("[ReserveStock] update reserved", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		reserved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return reserved, nil
}

func (s *stockAppImpl) ReleaseReservation(ctx context.Context, req *model.ReserveStockRequest) error {
	return s.runInTx(ctx, "ReleaseReservation", func(tx *sqlx.Tx) error {
		level, err := s.stockRepo.GetLevelForUpdateTx(ctx, tx, req.ProductID, req.WarehouseID)
		if err != nil {
			logger.Error("[ReleaseReservation] lock stock level", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		// Releasing more than is held is tolerated: clamp at zero.
		remaining := level.Reserved - req.Quantity
		if remaining < 0 {
			remaining = 0
		}
		if err := s.stockRepo.UpdateReservedTx(ctx, tx, level.ID, remaining); err != nil {
			logger.Error("[ReleaseReservation] update reserved", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return nil
	})
}

func (s *stockAppImpl) GetLevel(ctx context.Context, productID, warehouseID uint64) (*model.StockLevel, error) {
	level, err := s.stockRepo.GetLevel(ctx, productID, warehouseID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[GetLevel] get stock level", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return level, nil
}

func (s *stockAppImpl) ListMovements(ctx context.Context, filter *model.MovementFilter) ([]model.StockMovement, error) {
	movements, err := s.stockRepo.ListMovements(ctx, filter)
	if err != nil {
		logger.Error("[ListMovements] list movements", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return movements, nil
}
