package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"pos-backend/application/stock"
	"pos-backend/constant"
	"pos-backend/model"
	productrepo "pos-backend/repository/product"
	redisrepo "pos-backend/repository/redis"
	salerepo "pos-backend/repository/sale"
	txrepo "pos-backend/repository/tx"
	utilsContext "pos-backend/utils/context"
	"pos-backend/utils/errors"
	"pos-backend/utils/logger"
)

// SaleApp ingests sales exactly once per idempotency key and drives the stock
// engine to decrement inventory.
type SaleApp interface {
	CreateSale(ctx context.Context, req *model.CreateSaleRequest) (*model.SaleResponse, error)
	RefundSale(ctx context.Context, saleID uint64, req *model.RefundSaleRequest) (*model.SaleResponse, error)
}

type saleAppImpl struct {
	txRepo      txrepo.TxRepository
	saleRepo    salerepo.SaleRepository
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
	stockApp    stock.StockApp
}

func NewSaleApp(txRepo txrepo.TxRepository, saleRepo salerepo.SaleRepository, productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository, stockApp stock.StockApp) SaleApp {
	return &saleAppImpl{txRepo: txRepo, saleRepo: saleRepo, productRepo: productRepo, redisRepo: redisRepo, stockApp: stockApp}
}

// isDuplicateKey reports a MySQL unique-constraint violation (1062). The
// unique idempotency_key column is the primary concurrency-safety mechanism
// for retried requests.
func isDuplicateKey(err error) bool {
	me, ok := err.(*mysql.MySQLError)
	return ok && me.Number == 1062
}

func (s *saleAppImpl) CreateSale(ctx context.Context, req *model.CreateSaleRequest) (*model.SaleResponse, error) {
	if req.IdempotencyKey == "" || len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// Fast path: the key has been processed before; this call is a retry.
	if existing, err := s.saleRepo.GetByIdempotencyKey(ctx, req.IdempotencyKey); err != nil {
		logger.Error("[CreateSale] lookup idempotency key", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	} else if existing != nil {
		return s.existingResponse(ctx, existing)
	}

	createdAt := time.Now()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	seq, err := s.redisRepo.NextInvoiceSequence(ctx, createdAt)
	if err != nil {
		logger.Error("[CreateSale] invoice sequence", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	invoiceNumber := fmt.Sprintf("INV-%s-%06d", createdAt.Format("20060102"), seq)

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateSale] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Snapshot products and recompute totals server-side. Client totals are
	// never trusted.
	items := make([]model.SaleItem, 0, len(req.Items))
	subtotal := decimal.Zero
	for _, it := range req.Items {
		p, err := s.productRepo.GetSnapshotTx(ctx, tx, it.ProductID)
		if err != nil {
			logger.Error("[CreateSale] product snapshot", zap.Uint64("product_id", it.ProductID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if p == nil {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrReferenceNotFound,
				fmt.Sprintf("product %d", it.ProductID))
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(it.Quantity)).Sub(it.Discount).Round(3)
		items = append(items, model.SaleItem{
			ProductID: p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
			CostPrice: p.CostPrice,
			Discount:  it.Discount,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	subtotal = subtotal.Round(3)
	total := subtotal.Sub(req.Discount).Round(3)

	userID := utilsContext.GetUserIDRef(ctx)
	saleID, err := s.saleRepo.InsertSaleTx(ctx, tx, &model.InsertSaleTxItem{
		IdempotencyKey: req.IdempotencyKey,
		InvoiceNumber:  invoiceNumber,
		ClientUUID:     req.ClientUUID,
		WarehouseID:    req.WarehouseID,
		Status:         constant.SaleStatusCompleted,
		IsSynced:       true,
		Subtotal:       subtotal,
		Discount:       req.Discount,
		Total:          total,
		UserID:         userID,
		CreatedAt:      createdAt,
	})
	if err != nil {
		if isDuplicateKey(err) {
			// Lost the race against a concurrent retry; roll back and return
			// the original result unchanged.
			_ = s.txRepo.RollbackTx(tx)
			committed = true
			return s.refetchOriginal(ctx, req.IdempotencyKey)
		}
		logger.Error("[CreateSale] insert sale", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.saleRepo.InsertSaleItemsTx(ctx, tx, saleID, items); err != nil {
		logger.Error("[CreateSale] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	payments := make([]model.Payment, 0, len(req.Payments))
	for _, p := range req.Payments {
		payments = append(payments, model.Payment{Method: p.Method, Amount: p.Amount.Round(3), Reference: p.Reference})
	}
	if len(payments) > 0 {
		if err := s.saleRepo.InsertPaymentsTx(ctx, tx, saleID, payments); err != nil {
			logger.Error("[CreateSale] insert payments", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	// Ledger writes, one per line, all under this transaction.
	conflicts := make([]model.ConflictDetail, 0)
	for _, it := range req.Items {
		mv, err := s.stockApp.RecordSaleTx(ctx, tx, &stock.SaleMovementParams{
			ProductID:     it.ProductID,
			WarehouseID:   req.WarehouseID,
			Quantity:      it.Quantity,
			SaleID:        saleID,
			UserID:        userID,
			AllowNegative: req.OfflineReplay,
		})
		if err != nil {
			// Strict mode: insufficient stock aborts the whole sale.
			return nil, err
		}
		if req.OfflineReplay && mv.QuantityAfter < 0 {
			expected := it.Quantity
			if it.ExpectedStock != nil {
				expected = *it.ExpectedStock
			}
			conflicts = append(conflicts, model.ConflictDetail{
				ProductID:        it.ProductID,
				WarehouseID:      req.WarehouseID,
				ExpectedQuantity: expected,
				ActualQuantity:   mv.QuantityBefore,
				Difference:       expected - mv.QuantityBefore,
			})
		}
	}

	if len(conflicts) > 0 {
		if err := s.saleRepo.MarkStockConflictTx(ctx, tx, saleID); err != nil {
			logger.Error("[CreateSale] mark stock conflict", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateSale] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	sale := &model.Sale{
		ID:               saleID,
		IdempotencyKey:   req.IdempotencyKey,
		InvoiceNumber:    invoiceNumber,
		ClientUUID:       req.ClientUUID,
		WarehouseID:      req.WarehouseID,
		Status:           constant.SaleStatusCompleted,
		IsSynced:         true,
		HasStockConflict: len(conflicts) > 0,
		Subtotal:         subtotal,
		Discount:         req.Discount,
		Total:            total,
		UserID:           userID,
		CreatedAt:        createdAt,
	}
	for i := range items {
		items[i].SaleID = saleID
	}
	return &model.SaleResponse{Sale: sale, Items: items, Conflicts: conflicts}, nil
}

// existingResponse rebuilds the original result for an idempotent retry.
func (s *saleAppImpl) existingResponse(ctx context.Context, sale *model.Sale) (*model.SaleResponse, error) {
	items, err := s.saleRepo.GetItems(ctx, sale.ID)
	if err != nil {
		logger.Error("[CreateSale] load existing items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.SaleResponse{Sale: sale, Items: items, Duplicate: true}, nil
}

func (s *saleAppImpl) refetchOriginal(ctx context.Context, key string) (*model.SaleResponse, error) {
	existing, err := s.saleRepo.GetByIdempotencyKey(ctx, key)
	if err != nil || existing == nil {
		logger.Error("[CreateSale] refetch after duplicate key", zap.String("idempotency_key", key))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.existingResponse(ctx, existing)
}

func (s *saleAppImpl) RefundSale(ctx context.Context, saleID uint64, req *model.RefundSaleRequest) (*model.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RefundSale] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	sale, err := s.saleRepo.GetSaleTx(ctx, tx, saleID)
	if err != nil {
		logger.Error("[RefundSale] get sale", zap.Uint64("sale_id", saleID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if sale.Status != constant.SaleStatusCompleted && sale.Status != constant.SaleStatusPartiallyRefunded {
		return nil, errors.SetCustomError(constant.ErrInvalidSaleStatus)
	}

	items, err := s.saleRepo.GetItemsTx(ctx, tx, saleID)
	if err != nil {
		logger.Error("[RefundSale] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	refunded, err := s.saleRepo.SumRefundedQuantities(ctx, tx, saleID)
	if err != nil {
		logger.Error("[RefundSale] sum refunded", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// The same product may appear on several lines of one sale, so refund
	// caps run against the per-product total, not a single line.
	qtyByProduct := make(map[uint64]int64, len(items))
	for _, it := range items {
		qtyByProduct[it.ProductID] += it.Quantity
	}

	userID := utilsContext.GetUserIDRef(ctx)
	for _, r := range req.Items {
		soldQty, ok := qtyByProduct[r.ProductID]
		if !ok {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrReferenceNotFound,
				fmt.Sprintf("product %d not on sale %d", r.ProductID, saleID))
		}
		remaining := soldQty - refunded[r.ProductID]
		if r.Quantity > remaining {
			return nil, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest,
				fmt.Sprintf("product %d: refund %d exceeds remaining %d", r.ProductID, r.Quantity, remaining))
		}
		if _, err := s.stockApp.RecordReturnTx(ctx, tx, &stock.SaleMovementParams{
			ProductID:   r.ProductID,
			WarehouseID: sale.WarehouseID,
			Quantity:    r.Quantity,
			SaleID:      saleID,
			UserID:      userID,
		}); err != nil {
			return nil, err
		}
		refunded[r.ProductID] += r.Quantity
	}

	status := constant.SaleStatusRefunded
	for pid, qty := range qtyByProduct {
		if refunded[pid] < qty {
			status = constant.SaleStatusPartiallyRefunded
			break
		}
	}
	if status == constant.SaleStatusRefunded {
		// The refunded state is reserved for fully paid sales; an underpaid
		// sale stays partially refunded even when every unit came back.
		paid, err := s.saleRepo.SumPaymentsTx(ctx, tx, saleID)
		if err != nil {
			logger.Error("[RefundSale] sum payments", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if paid.LessThan(sale.Total) {
			status = constant.SaleStatusPartiallyRefunded
		}
	}
	if err := s.saleRepo.UpdateStatusTx(ctx, tx, saleID, status); err != nil {
		logger.Error("[RefundSale] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RefundSale] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	sale.Status = status
	return &model.SaleResponse{Sale: sale, Items: items}, nil
}
