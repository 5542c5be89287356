// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/acardosi/stockroom-be/internal/adapters/db"
	redis_a "github.com/acardosi/stockroom-be/internal/adapters/redis_adapter"
	"github.com/acardosi/stockroom-be/internal/adapters/security"
	"github.com/acardosi/stockroom-be/internal/core/ports"
	"github.com/acardosi/stockroom-be/internal/core/services"
	"github.com/acardosi/stockroom-be/internal/handlers"
	"github.com/acardosi/stockroom-be/internal/handlers/middleware"
	"github.com/acardosi/stockroom-be/internal/pkg/config"
	"github.com/acardosi/stockroom-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting stockroom inventory management system",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	if cfg.App.Environment != "production" {
		if err := runMigrations(ctx, cfg, slogger); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	// Load the in-memory stores before accepting traffic, then keep
	// them fresh through cross-replica invalidations.
	warmStores(ctx, deps, slogger)
	if err := deps.invalidator.Subscribe(ctx, deps.dispatchInvalidation); err != nil {
		slogger.Error("failed to subscribe to invalidations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server := setupHTTPServer(cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server", slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database       *db.Database
	redisClient    *redis.Client
	invalidator    *redis_a.Invalidator
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector

	userService      *services.UserService
	categoryService  *services.CategoryService
	productService   *services.ProductService
	locationService  *services.LocationService
	supplierService  *services.SupplierService
	customerService  *services.CustomerService
	inventoryService *services.InventoryService
	orderService     *services.OrderService

	userHandler      *handlers.UserHandler
	categoryHandler  *handlers.CategoryHandler
	productHandler   *handlers.ProductHandler
	locationHandler  *handlers.LocationHandler
	supplierHandler  *handlers.SupplierHandler
	customerHandler  *handlers.CustomerHandler
	inventoryHandler *handlers.InventoryHandler
	orderHandler     *handlers.OrderHandler
	exportHandler    *handlers.ExportHandler
	healthHandler    *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.invalidator != nil {
		d.invalidator.Close()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.database != nil {
		d.database.Close()
	}
}

// dispatchInvalidation routes a pub/sub invalidation to the store it names.
func (d *dependencies) dispatchInvalidation(kind ports.EntityKind) {
	switch kind {
	case ports.KindUsers:
		d.userService.RefreshCache()
	case ports.KindProducts:
		d.productService.RefreshCache()
	case ports.KindLocations:
		d.locationService.RefreshCache()
	case ports.KindOrders:
		d.orderService.RefreshCache()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		StatementCacheMode: cfg.Database.StatementCacheMode,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	logger.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:            cfg.GetRedisAddress(),
		Password:        cfg.Redis.Password,
		DB:              cfg.Redis.DB,
		MaxRetries:      cfg.Redis.MaxRetries,
		MinRetryBackoff: cfg.Redis.MinRetryBackoff,
		MaxRetryBackoff: cfg.Redis.MaxRetryBackoff,
		DialTimeout:     cfg.Redis.DialTimeout,
		ReadTimeout:     cfg.Redis.ReadTimeout,
		WriteTimeout:    cfg.Redis.WriteTimeout,
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		PoolTimeout:     cfg.Redis.PoolTimeout,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient

	deps.invalidator = redis_a.NewInvalidator(redisClient, cfg.Redis.InvalidationChannel, logger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}
	deps.asynqClient = asynq.NewClient(asynqRedisOpt)
	deps.asynqInspector = asynq.NewInspector(asynqRedisOpt)

	// Repositories
	userRepo := db.NewUserRepository(database, logger)
	categoryRepo := db.NewCategoryRepository(database, logger)
	productRepo := db.NewProductRepository(database, logger)
	locationRepo := db.NewLocationRepository(database, logger)
	supplierRepo := db.NewSupplierRepository(database, logger)
	customerRepo := db.NewCustomerRepository(database, logger)
	inventoryRepo := db.NewInventoryRepository(database, logger)
	orderRepo := db.NewOrderRepository(database, logger)

	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)

	// Services
	deps.userService = services.NewUserService(userRepo, hasher, deps.invalidator, logger)
	deps.categoryService = services.NewCategoryService(categoryRepo, logger)
	deps.productService = services.NewProductService(productRepo, categoryRepo, inventoryRepo, deps.invalidator, logger)
	deps.locationService = services.NewLocationService(locationRepo, deps.invalidator, logger)
	deps.supplierService = services.NewSupplierService(supplierRepo, logger)
	deps.customerService = services.NewCustomerService(customerRepo, logger)
	deps.inventoryService = services.NewInventoryService(inventoryRepo, logger)
	deps.orderService = services.NewOrderService(
		orderRepo,
		supplierRepo,
		customerRepo,
		locationRepo,
		productRepo,
		deps.inventoryService,
		deps.invalidator,
		logger,
	)

	// Handlers
	deps.userHandler = handlers.NewUserHandler(deps.userService, logger)
	deps.categoryHandler = handlers.NewCategoryHandler(deps.categoryService, logger)
	deps.productHandler = handlers.NewProductHandler(deps.productService, logger)
	deps.locationHandler = handlers.NewLocationHandler(deps.locationService, logger)
	deps.supplierHandler = handlers.NewSupplierHandler(deps.supplierService, logger)
	deps.customerHandler = handlers.NewCustomerHandler(deps.customerService, logger)
	deps.inventoryHandler = handlers.NewInventoryHandler(deps.inventoryService, logger)
	deps.orderHandler = handlers.NewOrderHandler(deps.orderService, logger)
	deps.exportHandler = handlers.NewExportHandler(deps.asynqClient, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, redisClient, deps.asynqInspector, map[string]handlers.StoreCounter{
		"users":     deps.userService,
		"products":  deps.productService,
		"locations": deps.locationService,
		"orders":    deps.orderService,
	}, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// warmStores loads each in-memory store once at startup. A failed warm
// is logged and left to the periodic refresh to repair.
func warmStores(ctx context.Context, deps *dependencies, logger *slog.Logger) {
	warm := []struct {
		name string
		load func(context.Context) bool
	}{
		{"users", func(ctx context.Context) bool { return deps.userService.GetAllActive(ctx).Success }},
		{"products", func(ctx context.Context) bool { return deps.productService.GetAllActive(ctx).Success }},
		{"locations", func(ctx context.Context) bool { return deps.locationService.GetAllActive(ctx).Success }},
		{"orders", func(ctx context.Context) bool { return deps.orderService.GetAllActive(ctx).Success }},
	}

	for _, w := range warm {
		if !w.load(ctx) {
			logger.Warn("failed to warm store", slog.String("store", w.name))
			continue
		}
		logger.Info("store warmed", slog.String("store", w.name))
	}
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux
	handler = middleware.Compression(handler)

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}
	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logger(logger)(handler)
	handler = middleware.RequestID(handler)

	registerRoutes(mux, deps)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// entityRoutes is the route surface shared by every soft-deletable entity.
type entityRoutes struct {
	create      http.HandlerFunc
	update      http.HandlerFunc
	get         http.HandlerFunc
	list        http.HandlerFunc
	delete      http.HandlerFunc
	restore     http.HandlerFunc
	purge       http.HandlerFunc
	bulkDelete  http.HandlerFunc
	bulkRestore http.HandlerFunc
}

func registerEntityRoutes(mux *http.ServeMux, base string, r entityRoutes) {
	mux.HandleFunc("POST "+base, r.create)
	mux.HandleFunc("GET "+base, r.list)
	mux.HandleFunc("GET "+base+"/{id}", r.get)
	mux.HandleFunc("PUT "+base+"/{id}", r.update)
	mux.HandleFunc("DELETE "+base+"/{id}", r.delete)
	mux.HandleFunc("POST "+base+"/{id}/restore", r.restore)
	mux.HandleFunc("DELETE "+base+"/{id}/purge", r.purge)
	if r.bulkDelete != nil {
		mux.HandleFunc("POST "+base+"/bulk-delete", r.bulkDelete)
	}
	if r.bulkRestore != nil {
		mux.HandleFunc("POST "+base+"/bulk-restore", r.bulkRestore)
	}
}

func registerRoutes(mux *http.ServeMux, deps *dependencies) {
	apiV1 := "/api/v1"

	// Health and readiness
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)

	registerEntityRoutes(mux, apiV1+"/users", entityRoutes{
		create:      deps.userHandler.Create,
		update:      deps.userHandler.Update,
		get:         deps.userHandler.Get,
		list:        deps.userHandler.List,
		delete:      deps.userHandler.Delete,
		restore:     deps.userHandler.Restore,
		purge:       deps.userHandler.Purge,
		bulkDelete:  deps.userHandler.BulkDelete,
		bulkRestore: deps.userHandler.BulkRestore,
	})

	registerEntityRoutes(mux, apiV1+"/products", entityRoutes{
		create:      deps.productHandler.Create,
		update:      deps.productHandler.Update,
		get:         deps.productHandler.Get,
		list:        deps.productHandler.List,
		delete:      deps.productHandler.Delete,
		restore:     deps.productHandler.Restore,
		purge:       deps.productHandler.Purge,
		bulkDelete:  deps.productHandler.BulkDelete,
		bulkRestore: deps.productHandler.BulkRestore,
	})

	registerEntityRoutes(mux, apiV1+"/locations", entityRoutes{
		create:      deps.locationHandler.Create,
		update:      deps.locationHandler.Update,
		get:         deps.locationHandler.Get,
		list:        deps.locationHandler.List,
		delete:      deps.locationHandler.Delete,
		restore:     deps.locationHandler.Restore,
		purge:       deps.locationHandler.Purge,
		bulkDelete:  deps.locationHandler.BulkDelete,
		bulkRestore: deps.locationHandler.BulkRestore,
	})

	registerEntityRoutes(mux, apiV1+"/orders", entityRoutes{
		create:      deps.orderHandler.Create,
		update:      deps.orderHandler.Update,
		get:         deps.orderHandler.Get,
		list:        deps.orderHandler.List,
		delete:      deps.orderHandler.Delete,
		restore:     deps.orderHandler.Restore,
		purge:       deps.orderHandler.Purge,
		bulkDelete:  deps.orderHandler.BulkDelete,
		bulkRestore: deps.orderHandler.BulkRestore,
	})
	mux.HandleFunc("POST "+apiV1+"/orders/{id}/status", deps.orderHandler.ChangeStatus)

	// Categories, suppliers and customers carry the smaller surface
	// without purge or bulk operations.
	mux.HandleFunc("POST "+apiV1+"/categories", deps.categoryHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/categories", deps.categoryHandler.List)
	mux.HandleFunc("GET "+apiV1+"/categories/{id}", deps.categoryHandler.Get)
	mux.HandleFunc("PUT "+apiV1+"/categories/{id}", deps.categoryHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/categories/{id}", deps.categoryHandler.Delete)
	mux.HandleFunc("POST "+apiV1+"/categories/{id}/restore", deps.categoryHandler.Restore)

	mux.HandleFunc("POST "+apiV1+"/suppliers", deps.supplierHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/suppliers", deps.supplierHandler.List)
	mux.HandleFunc("GET "+apiV1+"/suppliers/{id}", deps.supplierHandler.Get)
	mux.HandleFunc("PUT "+apiV1+"/suppliers/{id}", deps.supplierHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/suppliers/{id}", deps.supplierHandler.Delete)
	mux.HandleFunc("POST "+apiV1+"/suppliers/{id}/restore", deps.supplierHandler.Restore)

	mux.HandleFunc("POST "+apiV1+"/customers", deps.customerHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/customers", deps.customerHandler.List)
	mux.HandleFunc("GET "+apiV1+"/customers/{id}", deps.customerHandler.Get)
	mux.HandleFunc("PUT "+apiV1+"/customers/{id}", deps.customerHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/customers/{id}", deps.customerHandler.Delete)
	mux.HandleFunc("POST "+apiV1+"/customers/{id}/restore", deps.customerHandler.Restore)

	// Inventory
	mux.HandleFunc("GET "+apiV1+"/inventory", deps.inventoryHandler.GetAllStock)
	mux.HandleFunc("GET "+apiV1+"/inventory/movements", deps.inventoryHandler.ListMovements)
	mux.HandleFunc("GET "+apiV1+"/inventory/locations/{id}", deps.inventoryHandler.GetLocationStock)
	mux.HandleFunc("GET "+apiV1+"/inventory/{productID}/{locationID}", deps.inventoryHandler.GetStock)
	mux.HandleFunc("POST "+apiV1+"/inventory/adjust", deps.inventoryHandler.AdjustStock)
	mux.HandleFunc("POST "+apiV1+"/inventory/export", deps.exportHandler.ExportStock)
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	return db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}, logger, 3)
}
