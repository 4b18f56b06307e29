package transport

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	conflictapp "pos-backend/application/conflict"
	saleapp "pos-backend/application/sale"
	stockapp "pos-backend/application/stock"
	syncapp "pos-backend/application/sync"
	"pos-backend/constant"
	"pos-backend/model"
	"pos-backend/utils/errors"
	validatorx "pos-backend/utils/validator"
)

type RestHandler struct {
	SaleApp     saleapp.SaleApp
	SyncApp     syncapp.SyncApp
	StockApp    stockapp.StockApp
	ConflictApp conflictapp.ConflictApp
}

func NewTransport(saleApp saleapp.SaleApp, syncApp syncapp.SyncApp, stockApp stockapp.StockApp, conflictApp conflictapp.ConflictApp, jwtSecret, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		SaleApp:     saleApp,
		SyncApp:     syncApp,
		StockApp:    stockApp,
		ConflictApp: conflictApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Sales
	mux.HandleFunc("/sales", rh.CreateSale).Methods(http.MethodPost)
	mux.HandleFunc("/sales/{id}/refund", rh.RefundSale).Methods(http.MethodPost)

	// Offline sync
	mux.HandleFunc("/sync", rh.Sync).Methods(http.MethodPost)

	// Stock
	mux.HandleFunc("/stock/adjust", rh.AdjustStock).Methods(http.MethodPost)
	mux.HandleFunc("/stock/set", rh.SetStock).Methods(http.MethodPost)
	mux.HandleFunc("/stock/transfer", rh.TransferStock).Methods(http.MethodPost)
	mux.HandleFunc("/stock/reserve", rh.ReserveStock).Methods(http.MethodPost)
	mux.HandleFunc("/stock/release", rh.ReleaseReservation).Methods(http.MethodPost)
	mux.HandleFunc("/stock/levels/{productID}/{warehouseID}", rh.GetStockLevel).Methods(http.MethodGet)
	mux.HandleFunc("/stock/movements", rh.ListMovements).Methods(http.MethodGet)

	// Conflict reconciliation
	mux.HandleFunc("/conflicts", rh.ListConflicts).Methods(http.MethodGet)
	mux.HandleFunc("/conflicts/{id}/resolve", rh.ResolveConflict).Methods(http.MethodPost)

	// Internal routes: back-office integrations authenticate with a static
	// API key instead of a terminal JWT.
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/stock/purchase", rh.RecordPurchase).Methods(http.MethodPost)
	internal.HandleFunc("/stock/damage", rh.RecordDamage).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(jwtSecret))

	return mux
}

// CreateSale handler
// @Summary Create sale
// @Description Record a completed sale and decrement stock atomically
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body model.CreateSaleRequest true "Create Sale Request"
// @Success 200 {object} model.SaleResponse
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /sales [post]
func (s *RestHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// Online requests never replay offline semantics, regardless of payload.
	req.OfflineReplay = false
	req.CreatedAt = nil

	res, err := s.SaleApp.CreateSale(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RefundSale handler
// @Summary Refund sale
// @Description Return sold items to stock and update the sale status
// @Tags Sales
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param request body model.RefundSaleRequest true "Refund Request"
// @Success 200 {object} model.SaleResponse
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /sales/{id}/refund [post]
func (s *RestHandler) RefundSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	saleID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.RefundSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SaleApp.RefundSale(ctx, saleID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Sync handler
// @Summary Sync offline sales
// @Description Replay a batch of sales recorded while the terminal was offline
// @Tags Sync
// @Accept json
// @Produce json
// @Param request body model.SyncBatchRequest true "Sync Batch Request"
// @Success 200 {object} model.SyncReport
// @Failure 400 {object} errors.CustomError
// @Router /sync [post]
func (s *RestHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SyncBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if _, err := uuid.Parse(req.ClientUUID); err != nil {
		writeError(w, errors.SetCustomErrorWithDetail(constant.ErrInvalidRequest, "client_uuid must be a valid UUID"))
		return
	}

	res, err := s.SyncApp.Sync(ctx, req.ClientUUID, req.Sales)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdjustStock handler
// @Summary Adjust stock
// @Description Apply a signed manual quantity change to a stock level
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.AdjustStockRequest true "Adjust Request"
// @Success 200 {object} model.StockMovement
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /stock/adjust [post]
func (s *RestHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.Adjust(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SetStock handler
// @Summary Set stock
// @Description Set a stock level to an absolute quantity via a correction movement
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.SetStockRequest true "Set Request"
// @Success 200 {object} model.StockMovement
// @Failure 400 {object} errors.CustomError
// @Router /stock/set [post]
func (s *RestHandler) SetStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SetStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.SetStock(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// TransferStock handler
// @Summary Transfer stock
// @Description Move quantity between warehouses in a single transaction
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.TransferStockRequest true "Transfer Request"
// @Success 200 {object} model.TransferStockResponse
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /stock/transfer [post]
func (s *RestHandler) TransferStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TransferStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.Transfer(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReserveStock handler
// @Summary Reserve stock
// @Description Reserve quantity against available stock; reserved=false when not enough available
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.ReserveStockRequest true "Reserve Request"
// @Success 200 {object} object
// @Failure 400 {object} errors.CustomError
// @Router /stock/reserve [post]
func (s *RestHandler) ReserveStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReserveStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	reserved, err := s.StockApp.ReserveStock(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct {
		Reserved bool `json:"reserved"`
	}{Reserved: reserved})
}

// ReleaseReservation handler
// @Summary Release reservation
// @Description Release previously reserved quantity back to available stock
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.ReserveStockRequest true "Release Request"
// @Success 200 {object} object
// @Failure 400 {object} errors.CustomError
// @Router /stock/release [post]
func (s *RestHandler) ReleaseReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ReserveStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.StockApp.ReleaseReservation(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, struct {
		Released bool `json:"released"`
	}{Released: true})
}

// GetStockLevel handler
// @Summary Get stock level
// @Description Current quantity and reservation for one product in one warehouse
// @Tags Stock
// @Produce json
// @Param productID path int true "Product ID"
// @Param warehouseID path int true "Warehouse ID"
// @Success 200 {object} model.StockLevel
// @Failure 404 {object} errors.CustomError
// @Router /stock/levels/{productID}/{warehouseID} [get]
func (s *RestHandler) GetStockLevel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := pathID(r, "productID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	warehouseID, err := pathID(r, "warehouseID")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.GetLevel(ctx, productID, warehouseID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListMovements handler
// @Summary List stock movements
// @Description Filterable audit trail of every stock change
// @Tags Stock
// @Produce json
// @Param product_id query int false "Product ID"
// @Param warehouse_id query int false "Warehouse ID"
// @Param type query string false "Movement type"
// @Param reference_type query string false "Reference type"
// @Param reference_id query int false "Reference ID"
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Param limit query int false "Page size"
// @Success 200 {array} model.StockMovement
// @Failure 400 {object} errors.CustomError
// @Router /stock/movements [get]
func (s *RestHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := movementFilterFromQuery(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.ListMovements(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListConflicts handler
// @Summary List stock conflicts
// @Description Reconciliation queue of conflicts detected during offline replay
// @Tags Conflicts
// @Produce json
// @Param status query string false "open or resolved (default open)"
// @Param limit query int false "Page size"
// @Success 200 {array} model.StockConflict
// @Failure 400 {object} errors.CustomError
// @Router /conflicts [get]
func (s *RestHandler) ListConflicts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := constant.ConflictStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = constant.ConflictStatusOpen
	}
	if status != constant.ConflictStatusOpen && status != constant.ConflictStatusResolved {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		limit = n
	}

	res, err := s.ConflictApp.ListConflicts(ctx, status, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResolveConflict handler
// @Summary Resolve stock conflict
// @Description Apply an operator decision to an open conflict; resolving twice is a no-op
// @Tags Conflicts
// @Accept json
// @Produce json
// @Param id path int true "Conflict ID"
// @Param request body model.ResolveConflictRequest true "Resolve Request"
// @Success 200 {object} model.ResolveConflictResponse
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Router /conflicts/{id}/resolve [post]
func (s *RestHandler) ResolveConflict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conflictID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ResolveConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ConflictApp.Resolve(ctx, conflictID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RecordPurchase handler
// @Summary Record purchase receipt
// @Description Increase stock from a received purchase invoice
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.RecordPurchaseRequest true "Purchase Request"
// @Success 200 {object} model.StockMovement
// @Failure 400 {object} errors.CustomError
// @Router /internal/stock/purchase [post]
func (s *RestHandler) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RecordPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.RecordPurchase(ctx, req.ProductID, req.WarehouseID, req.Quantity, req.InvoiceID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RecordDamage handler
// @Summary Record damage write-off
// @Description Decrease stock for damaged or expired goods
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.RecordDamageRequest true "Damage Request"
// @Success 200 {object} model.StockMovement
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /internal/stock/damage [post]
func (s *RestHandler) RecordDamage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RecordDamageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.RecordDamage(ctx, req.ProductID, req.WarehouseID, req.Quantity, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func pathID(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}

func movementFilterFromQuery(r *http.Request) (*model.MovementFilter, error) {
	q := r.URL.Query()
	filter := &model.MovementFilter{
		Type:          constant.MovementType(q.Get("type")),
		ReferenceType: constant.ReferenceType(q.Get("reference_type")),
	}

	for key, dst := range map[string]*uint64{
		"product_id":   &filter.ProductID,
		"warehouse_id": &filter.WarehouseID,
		"reference_id": &filter.ReferenceID,
	} {
		if raw := q.Get(key); raw != "" {
			n, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, err
			}
			*dst = n
		}
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, strconv.ErrRange
		}
		filter.Limit = n
	}

	for key, dst := range map[string]*time.Time{
		"from": &filter.From,
		"to":   &filter.To,
	} {
		if raw := q.Get(key); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, err
			}
			*dst = t
		}
	}

	return filter, nil
}
