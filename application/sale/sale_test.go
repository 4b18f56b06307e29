package sale_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	appsale "pos-backend/application/sale"
	"pos-backend/application/stock"
	"pos-backend/constant"
	stockappmocks "pos-backend/mocks/application/stock"
	productmocks "pos-backend/mocks/repository/product"
	redismocks "pos-backend/mocks/repository/redis"
	salemocks "pos-backend/mocks/repository/sale"
	txmocks "pos-backend/mocks/repository/tx"
	"pos-backend/model"
	cerr "pos-backend/utils/errors"
)

func TestSaleApp_CreateSale(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		saleRepo    *salemocks.SaleRepository
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
		stockApp    *stockappmocks.StockApp
	}
	tests := []struct {
		name          string
		fields        fields
		req           *model.CreateSaleRequest
		mockCall      func(f fields)
		wantErr       bool
		errCode       constant.ErrorType
		wantDuplicate bool
		wantConflicts int
		check         func(t *testing.T, got *model.SaleResponse)
	}{
		{
			name: "success: sale persists completed with server-side totals",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			req: &model.CreateSaleRequest{
				IdempotencyKey: "key-1",
				WarehouseID:    2,
				Items:          []model.SaleItemRequest{{ProductID: 1, Quantity: 2}},
				Payments:       []model.PaymentRequest{{Method: "cash", Amount: decimal.NewFromInt(21)}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.saleRepo.On("GetByIdempotencyKey", mock.Anything, "key-1").Return(nil, nil).Once()
				f.redisRepo.On("NextInvoiceSequence", mock.Anything, mock.Anything).Return(int64(42), nil).Once()

				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.productRepo.On("GetSnapshotTx", mock.Anything, tx, uint64(1)).Return(&model.ProductSnapshot{
					ID: 1, Name: "Kopi Susu", SKU: "KS-01",
					Price: decimal.RequireFromString("10.500"), CostPrice: decimal.RequireFromString("7.000"),
				}, nil).Once()

				f.saleRepo.On("InsertSaleTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertSaleTxItem) bool {
					return req.Status == constant.SaleStatusCompleted && req.IsSynced &&
						req.Subtotal.Equal(decimal.NewFromInt(21)) && req.Total.Equal(decimal.NewFromInt(21))
				})).Return(uint64(9), nil).Once()
				f.saleRepo.On("InsertSaleItemsTx", mock.Anything, tx, uint64(9), mock.Anything).Return(nil).Once()
				f.saleRepo.On("InsertPaymentsTx", mock.Anything, tx, uint64(9), mock.Anything).Return(nil).Once()

				f.stockApp.On("RecordSaleTx", mock.Anything, tx, mock.MatchedBy(func(p *stock.SaleMovementParams) bool {
					return p.ProductID == 1 && p.WarehouseID == 2 && p.Quantity == 2 && p.SaleID == 9 && !p.AllowNegative
				})).Return(&model.StockMovement{QuantityBefore: 10, QuantityAfter: 8}, nil).Once()
			},
			check: func(t *testing.T, got *model.SaleResponse) {
				if !strings.HasPrefix(got.Sale.InvoiceNumber, "INV-") || !strings.HasSuffix(got.Sale.InvoiceNumber, "-000042") {
					t.Fatalf("invoice number = %s, want INV-<date>-000042", got.Sale.InvoiceNumber)
				}
				if got.Sale.HasStockConflict {
					t.Fatal("online sale should not carry a stock conflict")
				}
				if len(got.Items) != 1 || got.Items[0].SaleID != 9 {
					t.Fatalf("items not linked to sale: %+v", got.Items)
				}
			},
		},
		{
			name: "duplicate: retried key returns the original sale",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			req: &model.CreateSaleRequest{
				IdempotencyKey: "key-1",
				WarehouseID:    2,
				Items:          []model.SaleItemRequest{{ProductID: 1, Quantity: 2}},
			},
			mockCall: func(f fields) {
				f.saleRepo.On("GetByIdempotencyKey", mock.Anything, "key-1").Return(&model.Sale{
					ID: 9, IdempotencyKey: "key-1", Status: constant.SaleStatusCompleted,
				}, nil).Once()
				f.saleRepo.On("GetItems", mock.Anything, uint64(9)).Return([]model.SaleItem{{SaleID: 9, ProductID: 1, Quantity: 2}}, nil).Once()
			},
			wantDuplicate: true,
		},
		{
			name: "error: strict mode aborts on insufficient stock",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			req: &model.CreateSaleRequest{
				IdempotencyKey: "key-2",
				WarehouseID:    2,
				Items:          []model.SaleItemRequest{{ProductID: 1, Quantity: 50}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.saleRepo.On("GetByIdempotencyKey", mock.Anything, "key-2").Return(nil, nil).Once()
				f.redisRepo.On("NextInvoiceSequence", mock.Anything, mock.Anything).Return(int64(43), nil).Once()

				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.productRepo.On("GetSnapshotTx", mock.Anything, tx, uint64(1)).Return(&model.ProductSnapshot{
					ID: 1, Price: decimal.NewFromInt(10),
				}, nil).Once()
				f.saleRepo.On("InsertSaleTx", mock.Anything, tx, mock.Anything).Return(uint64(10), nil).Once()
				f.saleRepo.On("InsertSaleItemsTx", mock.Anything, tx, uint64(10), mock.Anything).Return(nil).Once()

				f.stockApp.On("RecordSaleTx", mock.Anything, tx, mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrInsufficientStock)).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "offline replay: deficit becomes a conflict, not an error",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			req: &model.CreateSaleRequest{
				IdempotencyKey: "key-3",
				WarehouseID:    2,
				Items:          []model.SaleItemRequest{{ProductID: 1, Quantity: 2, ExpectedStock: int64Ptr(5)}},
				OfflineReplay:  true,
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.saleRepo.On("GetByIdempotencyKey", mock.Anything, "key-3").Return(nil, nil).Once()
				f.redisRepo.On("NextInvoiceSequence", mock.Anything, mock.Anything).Return(int64(44), nil).Once()

				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.productRepo.On("GetSnapshotTx", mock.Anything, tx, uint64(1)).Return(&model.ProductSnapshot{
					ID: 1, Price: decimal.NewFromInt(10),
				}, nil).Once()
				f.saleRepo.On("InsertSaleTx", mock.Anything, tx, mock.Anything).Return(uint64(11), nil).Once()
				f.saleRepo.On("InsertSaleItemsTx", mock.Anything, tx, uint64(11), mock.Anything).Return(nil).Once()

				f.stockApp.On("RecordSaleTx", mock.Anything, tx, mock.MatchedBy(func(p *stock.SaleMovementParams) bool {
					return p.AllowNegative
				})).Return(&model.StockMovement{QuantityBefore: 1, QuantityAfter: -1}, nil).Once()

				f.saleRepo.On("MarkStockConflictTx", mock.Anything, tx, uint64(11)).Return(nil).Once()
			},
			wantConflicts: 1,
			check: func(t *testing.T, got *model.SaleResponse) {
				c := got.Conflicts[0]
				if c.ExpectedQuantity != 5 || c.ActualQuantity != 1 || c.Difference != 4 {
					t.Fatalf("conflict detail = %+v, want expected=5 actual=1 difference=4", c)
				}
				if !got.Sale.HasStockConflict {
					t.Fatal("sale should be flagged with a stock conflict")
				}
			},
		},
		{
			name: "error: unknown product",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			req: &model.CreateSaleRequest{
				IdempotencyKey: "key-4",
				WarehouseID:    2,
				Items:          []model.SaleItemRequest{{ProductID: 99, Quantity: 1}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.saleRepo.On("GetByIdempotencyKey", mock.Anything, "key-4").Return(nil, nil).Once()
				f.redisRepo.On("NextInvoiceSequence", mock.Anything, mock.Anything).Return(int64(45), nil).Once()

				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.productRepo.On("GetSnapshotTx", mock.Anything, tx, uint64(99)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrReferenceNotFound,
		},
		{
			name: "error: missing idempotency key",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			req: &model.CreateSaleRequest{
				WarehouseID: 2,
				Items:       []model.SaleItemRequest{{ProductID: 1, Quantity: 1}},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appsale.NewSaleApp(tt.fields.txRepo, tt.fields.saleRepo, tt.fields.productRepo, tt.fields.redisRepo, tt.fields.stockApp)

			got, err := app.CreateSale(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateSale() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Duplicate != tt.wantDuplicate {
				t.Fatalf("CreateSale() duplicate = %v, want %v", got.Duplicate, tt.wantDuplicate)
			}
			if len(got.Conflicts) != tt.wantConflicts {
				t.Fatalf("CreateSale() conflicts = %d, want %d", len(got.Conflicts), tt.wantConflicts)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestSaleApp_RefundSale(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		saleRepo    *salemocks.SaleRepository
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.Repository
		stockApp    *stockappmocks.StockApp
	}
	tests := []struct {
		name       string
		fields     fields
		saleID     uint64
		req        *model.RefundSaleRequest
		mockCall   func(f fields)
		wantStatus constant.SaleStatus
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: full refund returns stock and marks the sale refunded",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			saleID: 9,
			req:    &model.RefundSaleRequest{Items: []model.RefundItemRequest{{ProductID: 1, Quantity: 2}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.saleRepo.On("GetSaleTx", mock.Anything, tx, uint64(9)).Return(&model.Sale{
					ID: 9, WarehouseID: 2, Status: constant.SaleStatusCompleted, Total: decimal.NewFromInt(21),
				}, nil).Once()
				f.saleRepo.On("GetItemsTx", mock.Anything, tx, uint64(9)).
					Return([]model.SaleItem{{SaleID: 9, ProductID: 1, Quantity: 2}}, nil).Once()
				f.saleRepo.On("SumRefundedQuantities", mock.Anything, tx, uint64(9)).
					Return(map[uint64]int64{}, nil).Once()

				f.stockApp.On("RecordReturnTx", mock.Anything, tx, mock.MatchedBy(func(p *stock.SaleMovementParams) bool {
					return p.ProductID == 1 && p.WarehouseID == 2 && p.Quantity == 2 && p.SaleID == 9
				})).Return(&model.StockMovement{QuantityChange: 2}, nil).Once()

				f.saleRepo.On("SumPaymentsTx", mock.Anything, tx, uint64(9)).
					Return(decimal.NewFromInt(21), nil).Once()
				f.saleRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(9), constant.SaleStatusRefunded).Return(nil).Once()
			},
			wantStatus: constant.SaleStatusRefunded,
		},
		{
			name: "success: same product on two lines refunds against the combined quantity",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			saleID: 9,
			req:    &model.RefundSaleRequest{Items: []model.RefundItemRequest{{ProductID: 1, Quantity: 3}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.saleRepo.On("GetSaleTx", mock.Anything, tx, uint64(9)).Return(&model.Sale{
					ID: 9, WarehouseID: 2, Status: constant.SaleStatusCompleted, Total: decimal.NewFromInt(30),
				}, nil).Once()
				f.saleRepo.On("GetItemsTx", mock.Anything, tx, uint64(9)).
					Return([]model.SaleItem{
						{SaleID: 9, ProductID: 1, Quantity: 1},
						{SaleID: 9, ProductID: 1, Quantity: 2},
					}, nil).Once()
				f.saleRepo.On("SumRefundedQuantities", mock.Anything, tx, uint64(9)).
					Return(map[uint64]int64{}, nil).Once()

				f.stockApp.On("RecordReturnTx", mock.Anything, tx, mock.MatchedBy(func(p *stock.SaleMovementParams) bool {
					return p.ProductID == 1 && p.Quantity == 3
				})).Return(&model.StockMovement{QuantityChange: 3}, nil).Once()

				f.saleRepo.On("SumPaymentsTx", mock.Anything, tx, uint64(9)).
					Return(decimal.NewFromInt(30), nil).Once()
				f.saleRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(9), constant.SaleStatusRefunded).Return(nil).Once()
			},
			wantStatus: constant.SaleStatusRefunded,
		},
		{
			name: "underpaid sale: refunding every unit still leaves it partially refunded",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			saleID: 9,
			req:    &model.RefundSaleRequest{Items: []model.RefundItemRequest{{ProductID: 1, Quantity: 2}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.saleRepo.On("GetSaleTx", mock.Anything, tx, uint64(9)).Return(&model.Sale{
					ID: 9, WarehouseID: 2, Status: constant.SaleStatusCompleted, Total: decimal.NewFromInt(21),
				}, nil).Once()
				f.saleRepo.On("GetItemsTx", mock.Anything, tx, uint64(9)).
					Return([]model.SaleItem{{SaleID: 9, ProductID: 1, Quantity: 2}}, nil).Once()
				f.saleRepo.On("SumRefundedQuantities", mock.Anything, tx, uint64(9)).
					Return(map[uint64]int64{}, nil).Once()

				f.stockApp.On("RecordReturnTx", mock.Anything, tx, mock.Anything).
					Return(&model.StockMovement{QuantityChange: 2}, nil).Once()

				f.saleRepo.On("SumPaymentsTx", mock.Anything, tx, uint64(9)).
					Return(decimal.NewFromInt(10), nil).Once()
				f.saleRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(9), constant.SaleStatusPartiallyRefunded).Return(nil).Once()
			},
			wantStatus: constant.SaleStatusPartiallyRefunded,
		},
		{
			name: "success: partial refund leaves the sale partially refunded",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			saleID: 9,
			req:    &model.RefundSaleRequest{Items: []model.RefundItemRequest{{ProductID: 1, Quantity: 2}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.saleRepo.On("GetSaleTx", mock.Anything, tx, uint64(9)).Return(&model.Sale{
					ID: 9, WarehouseID: 2, Status: constant.SaleStatusCompleted,
				}, nil).Once()
				f.saleRepo.On("GetItemsTx", mock.Anything, tx, uint64(9)).
					Return([]model.SaleItem{{SaleID: 9, ProductID: 1, Quantity: 5}}, nil).Once()
				f.saleRepo.On("SumRefundedQuantities", mock.Anything, tx, uint64(9)).
					Return(map[uint64]int64{}, nil).Once()

				f.stockApp.On("RecordReturnTx", mock.Anything, tx, mock.Anything).
					Return(&model.StockMovement{QuantityChange: 2}, nil).Once()

				f.saleRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(9), constant.SaleStatusPartiallyRefunded).Return(nil).Once()
			},
			wantStatus: constant.SaleStatusPartiallyRefunded,
		},
		{
			name: "error: refunding an already refunded sale",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			saleID: 9,
			req:    &model.RefundSaleRequest{Items: []model.RefundItemRequest{{ProductID: 1, Quantity: 1}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.saleRepo.On("GetSaleTx", mock.Anything, tx, uint64(9)).Return(&model.Sale{
					ID: 9, Status: constant.SaleStatusRefunded,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidSaleStatus,
		},
		{
			name: "error: refund exceeds remaining quantity",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				saleRepo:    salemocks.NewSaleRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRepository(t),
				stockApp:    stockappmocks.NewStockApp(t),
			},
			saleID: 9,
			req:    &model.RefundSaleRequest{Items: []model.RefundItemRequest{{ProductID: 1, Quantity: 2}}},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.saleRepo.On("GetSaleTx", mock.Anything, tx, uint64(9)).Return(&model.Sale{
					ID: 9, WarehouseID: 2, Status: constant.SaleStatusPartiallyRefunded,
				}, nil).Once()
				f.saleRepo.On("GetItemsTx", mock.Anything, tx, uint64(9)).
					Return([]model.SaleItem{{SaleID: 9, ProductID: 1, Quantity: 2}}, nil).Once()
				f.saleRepo.On("SumRefundedQuantities", mock.Anything, tx, uint64(9)).
					Return(map[uint64]int64{1: 1}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appsale.NewSaleApp(tt.fields.txRepo, tt.fields.saleRepo, tt.fields.productRepo, tt.fields.redisRepo, tt.fields.stockApp)

			got, err := app.RefundSale(context.Background(), tt.saleID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RefundSale() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Sale.Status != tt.wantStatus {
				t.Fatalf("RefundSale() status = %s, want %s", got.Sale.Status, tt.wantStatus)
			}
		})
	}
}

func int64Ptr(v int64) *int64 { return &v }
