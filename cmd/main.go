package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	conflictapp "pos-backend/application/conflict"
	saleapp "pos-backend/application/sale"
	stockapp "pos-backend/application/stock"
	syncapp "pos-backend/application/sync"
	"pos-backend/cmd/config"
	redisclient "pos-backend/cmd/redis"
	_ "pos-backend/docs"
	conflictRepo "pos-backend/repository/conflict"
	productRepo "pos-backend/repository/product"
	redisRepo "pos-backend/repository/redis"
	saleRepo "pos-backend/repository/sale"
	stockRepo "pos-backend/repository/stock"
	synclogRepo "pos-backend/repository/synclog"
	txRepo "pos-backend/repository/tx"
	"pos-backend/thirdparty/rabbitmq"
	"pos-backend/transport"
	"pos-backend/utils/logger"
)

// @title POS BACKEND API
// @version 1.0
// @description Point-of-sale backend: stock ledger, sale ingestion, offline sync and conflict reconciliation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Conflict notifications are best-effort: the broker being down must not
	// keep terminals from syncing.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Error("err connect rabbitmq, conflict notifications disabled", zap.Error(err))
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	SaleRepo := saleRepo.NewSaleRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	SyncLogRepo := synclogRepo.NewSyncLogRepository(db)
	ConflictRepo := conflictRepo.NewConflictRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	StockApp := stockapp.NewStockApp(TxRepo, StockRepo)
	SaleApp := saleapp.NewSaleApp(TxRepo, SaleRepo, ProductRepo, RedisRepo, StockApp)
	ConflictApp := conflictapp.NewConflictApp(TxRepo, ConflictRepo, StockApp)
	SyncApp := syncapp.NewSyncApp(SyncLogRepo, SaleApp, ConflictApp, StockApp, publisher)

	httpTransport := transport.NewTransport(SaleApp, SyncApp, StockApp, ConflictApp, cfg.Auth.JWTSecret, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
