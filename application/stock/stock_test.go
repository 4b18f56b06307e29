package stock_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	appstock "pos-backend/application/stock"
	"pos-backend/constant"
	stockmocks "pos-backend/mocks/repository/stock"
	txmocks "pos-backend/mocks/repository/tx"
	"pos-backend/model"
	cerr "pos-backend/utils/errors"
)

func TestStockApp_Adjust(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		stockRepo *stockmocks.StockRepository
	}
	type args struct {
		ctx context.Context
		req *model.AdjustStockRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.StockMovement
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: positive adjustment records before and after",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AdjustStockRequest{ProductID: 1, WarehouseID: 2, Quantity: 5, Reason: "cycle count"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, ProductID: 1, WarehouseID: 2, Quantity: 10}, nil).Once()
				f.stockRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(7), int64(15)).Return(nil).Once()
				f.stockRepo.On("InsertMovementTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.Type == constant.MovementAdjustment &&
						mv.QuantityChange == 5 && mv.QuantityBefore == 10 && mv.QuantityAfter == 15
				})).Return(uint64(100), nil).Once()
			},
			want: &model.StockMovement{ID: 100, QuantityBefore: 10, QuantityAfter: 15},
		},
		{
			name: "error: zero quantity",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AdjustStockRequest{ProductID: 1, WarehouseID: 2, Quantity: 0},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: negative adjustment below zero is rejected",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AdjustStockRequest{ProductID: 1, WarehouseID: 2, Quantity: -5},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, ProductID: 1, WarehouseID: 2, Quantity: 3}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.AdjustStockRequest{ProductID: 1, WarehouseID: 2, Quantity: 5},
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstock.NewStockApp(tt.fields.txRepo, tt.fields.stockRepo)

			got, err := app.Adjust(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Adjust() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.ID != tt.want.ID {
				t.Fatalf("Adjust() movement ID = %v, want %v", got.ID, tt.want.ID)
			}
			if got.QuantityBefore != tt.want.QuantityBefore || got.QuantityAfter != tt.want.QuantityAfter {
				t.Fatalf("Adjust() before/after = %d/%d, want %d/%d",
					got.QuantityBefore, got.QuantityAfter, tt.want.QuantityBefore, tt.want.QuantityAfter)
			}
		})
	}
}

func TestStockApp_SetStock(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		stockRepo *stockmocks.StockRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.SetStockRequest
		mockCall func(f fields)
		want     *model.StockMovement
		wantErr  bool
	}{
		{
			name: "success: correction movement carries the computed delta",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			req: &model.SetStockRequest{ProductID: 1, WarehouseID: 2, Quantity: 10, Reason: "stocktake"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, Quantity: 7}, nil).Once()
				f.stockRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(7), int64(10)).Return(nil).Once()
				f.stockRepo.On("InsertMovementTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.Type == constant.MovementCorrection &&
						mv.QuantityChange == 3 && mv.QuantityBefore == 7 && mv.QuantityAfter == 10
				})).Return(uint64(101), nil).Once()
			},
			want: &model.StockMovement{ID: 101},
		},
		{
			name: "success: setting to current quantity yields a zero-change movement",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			req: &model.SetStockRequest{ProductID: 1, WarehouseID: 2, Quantity: 7},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, Quantity: 7}, nil).Once()
				f.stockRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(7), int64(7)).Return(nil).Once()
				f.stockRepo.On("InsertMovementTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.QuantityChange == 0 && mv.QuantityAfter == 7
				})).Return(uint64(102), nil).Once()
			},
			want: &model.StockMovement{ID: 102},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstock.NewStockApp(tt.fields.txRepo, tt.fields.stockRepo)

			got, err := app.SetStock(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetStock() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.ID != tt.want.ID {
				t.Fatalf("SetStock() movement ID = %v, want %v", got.ID, tt.want.ID)
			}
		})
	}
}

func TestStockApp_Transfer(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		stockRepo *stockmocks.StockRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.TransferStockRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: debit and credit commit together",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			req: &model.TransferStockRequest{ProductID: 1, FromWarehouseID: 2, ToWarehouseID: 3, Quantity: 4},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, Quantity: 10}, nil).Once()
				f.stockRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(7), int64(6)).Return(nil).Once()
				f.stockRepo.On("InsertMovementTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.Type == constant.MovementTransferOut && mv.QuantityChange == -4
				})).Return(uint64(200), nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(3)).
					Return(&model.StockLevel{ID: 8, Quantity: 1}, nil).Once()
				f.stockRepo.On("UpdateQuantityTx", mock.Anything, tx, uint64(8), int64(5)).Return(nil).Once()
				f.stockRepo.On("InsertMovementTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.StockMovement) bool {
					return mv.Type == constant.MovementTransferIn && mv.QuantityChange == 4
				})).Return(uint64(201), nil).Once()
			},
		},
		{
			name: "error: same source and destination warehouse",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			req:      &model.TransferStockRequest{ProductID: 1, FromWarehouseID: 2, ToWarehouseID: 2, Quantity: 4},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidTransferTarget,
		},
		{
			name: "error: insufficient source stock aborts before the credit leg",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			req: &model.TransferStockRequest{ProductID: 1, FromWarehouseID: 2, ToWarehouseID: 3, Quantity: 4},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, Quantity: 3}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstock.NewStockApp(tt.fields.txRepo, tt.fields.stockRepo)

			got, err := app.Transfer(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Transfer() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Out == nil || got.In == nil {
				t.Fatal("Transfer() should return both movement legs")
			}
			if got.Out.ID != 200 || got.In.ID != 201 {
				t.Fatalf("Transfer() legs = %d/%d, want 200/201", got.Out.ID, got.In.ID)
			}
		})
	}
}

func TestStockApp_ReserveStock(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		stockRepo *stockmocks.StockRepository
	}
	tests := []struct {
		name         string
		fields       fields
		req          *model.ReserveStockRequest
		mockCall     func(f fields)
		wantReserved bool
		wantErr      bool
	}{
		{
			name: "success: reservation within available stock",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			req: &model.ReserveStockRequest{ProductID: 1, WarehouseID: 2, Quantity: 3},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, Quantity: 10, Reserved: 2}, nil).Once()
				f.stockRepo.On("UpdateReservedTx", mock.Anything, tx, uint64(7), int64(5)).Return(nil).Once()
			},
			wantReserved: true,
		},
		{
			name: "not reserved: quantity exceeds available",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			req: &model.ReserveStockRequest{ProductID: 1, WarehouseID: 2, Quantity: 9},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, Quantity: 10, Reserved: 2}, nil).Once()
			},
			wantReserved: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstock.NewStockApp(tt.fields.txRepo, tt.fields.stockRepo)

			reserved, err := app.ReserveStock(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReserveStock() error = %v, wantErr %v", err, tt.wantErr)
			}
			if reserved != tt.wantReserved {
				t.Fatalf("ReserveStock() = %v, want %v", reserved, tt.wantReserved)
			}
		})
	}
}

func TestStockApp_ReleaseReservation(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		stockRepo *stockmocks.StockRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.ReserveStockRequest
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name: "success: release part of a reservation",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			req: &model.ReserveStockRequest{ProductID: 1, WarehouseID: 2, Quantity: 2},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, Quantity: 10, Reserved: 5}, nil).Once()
				f.stockRepo.On("UpdateReservedTx", mock.Anything, tx, uint64(7), int64(3)).Return(nil).Once()
			},
		},
		{
			name: "success: over-release clamps reserved at zero",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			req: &model.ReserveStockRequest{ProductID: 1, WarehouseID: 2, Quantity: 9},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetLevelForUpdateTx", mock.Anything, tx, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, Quantity: 10, Reserved: 5}, nil).Once()
				f.stockRepo.On("UpdateReservedTx", mock.Anything, tx, uint64(7), int64(0)).Return(nil).Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstock.NewStockApp(tt.fields.txRepo, tt.fields.stockRepo)

			if err := app.ReleaseReservation(context.Background(), tt.req); (err != nil) != tt.wantErr {
				t.Fatalf("ReleaseReservation() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStockApp_GetLevel(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		stockRepo *stockmocks.StockRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: level row returned",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			mockCall: func(f fields) {
				f.stockRepo.On("GetLevel", mock.Anything, uint64(1), uint64(2)).
					Return(&model.StockLevel{ID: 7, ProductID: 1, WarehouseID: 2, Quantity: 10}, nil).Once()
			},
		},
		{
			name: "error: pair that never moved stock is not found",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			mockCall: func(f fields) {
				f.stockRepo.On("GetLevel", mock.Anything, uint64(1), uint64(2)).
					Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: a connection failure is internal, not not-found",
			fields: fields{
				txRepo:    txmocks.NewTxRepository(t),
				stockRepo: stockmocks.NewStockRepository(t),
			},
			mockCall: func(f fields) {
				f.stockRepo.On("GetLevel", mock.Anything, uint64(1), uint64(2)).
					Return(nil, errors.New("driver: bad connection")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appstock.NewStockApp(tt.fields.txRepo, tt.fields.stockRepo)

			_, err := app.GetLevel(context.Background(), 1, 2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
