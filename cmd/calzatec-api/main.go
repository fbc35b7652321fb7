package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calzatec/calzatec-backend/internal/api/handlers"
	"github.com/calzatec/calzatec-backend/internal/api/middleware"
	"github.com/calzatec/calzatec-backend/internal/cache"
	"github.com/calzatec/calzatec-backend/internal/config"
	"github.com/calzatec/calzatec-backend/internal/health"
	"github.com/calzatec/calzatec-backend/internal/metrics"
	"github.com/calzatec/calzatec-backend/internal/models"
	repository "github.com/calzatec/calzatec-backend/internal/repositories"
	service "github.com/calzatec/calzatec-backend/internal/services"
	"github.com/calzatec/calzatec-backend/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Telemetry)
	if err != nil {
		slog.Error("❌ Error configuring tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	deliverableStore := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer func() {
		if err := deliverableStore.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// Health checks
	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error configuring health checks", "error", err.Error())
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	userService := service.NewUserService(repos.User, jwtKey)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(repos.Product)
	productHandler := handlers.NewProductHandler(productService)
	chatbotService := service.NewChatbotService(productService)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService)
	storeService := service.NewStoreService(repos.Store)
	storeHandler := handlers.NewStoreHandler(storeService)
	deliverableService := service.NewDeliverableService(deliverableStore)
	deliverableHandler := handlers.NewDeliverableHandler(deliverableService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Legacy widget surface, no auth.
	routerMux.HandleFunc("GET /api/productos/filtros", productHandler.Filter())
	routerMux.HandleFunc("POST /api/productos/filtros", productHandler.Filter())
	routerMux.HandleFunc("POST /api/chatbot/mensaje", chatbotHandler.Message())

	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.HandleFunc("GET /api/v1/tiendas", authMiddleware.Authenticate(storeHandler.ListStores()))
	routerMux.HandleFunc("GET /api/v1/tiendas/{id}", authMiddleware.Authenticate(storeHandler.GetStore()))
	routerMux.HandleFunc("POST /api/v1/tiendas", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, storeHandler.CreateStore())))
	routerMux.HandleFunc("PUT /api/v1/tiendas/{id}", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, storeHandler.UpdateStore())))
	routerMux.HandleFunc("DELETE /api/v1/tiendas/{id}", authMiddleware.Authenticate(authMiddleware.RequireRole(models.RoleAdmin, storeHandler.DeleteStore())))

	routerMux.HandleFunc("GET /api/v1/entregables/kpis/alertas", authMiddleware.Authenticate(deliverableHandler.Alerts()))
	routerMux.HandleFunc("GET /api/v1/entregables/{seccion}", authMiddleware.Authenticate(deliverableHandler.Get()))
	routerMux.HandleFunc("PUT /api/v1/entregables/{seccion}", authMiddleware.Authenticate(deliverableHandler.Save()))

	routerMux.Handle("GET /status", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "calzatec-api")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Error("⚠️ Trace exporter shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}

}
