package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"divyaAPI/handlers"
	"divyaAPI/internal/config"
	"divyaAPI/internal/gemini"
	"divyaAPI/internal/logger"
	"divyaAPI/internal/seed"
	"divyaAPI/internal/storage"
	"divyaAPI/internal/storage/memory"
	"divyaAPI/internal/storage/postgres"
	"divyaAPI/middleware"
	"divyaAPI/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer func() {
		zapLogger.Info("Closing storage...")
		store.Close()
	}()

	if cfg.SeedData {
		seedCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := seed.Run(seedCtx, store, zapLogger)
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to seed data", zap.Error(err))
		}
	}

	var generator services.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			zapLogger.Fatal("Failed to initialize Gemini client", zap.Error(err))
		}
		generator = client
		zapLogger.Info("Gemini client initialized", zap.String("model", cfg.GeminiModel))
	} else {
		zapLogger.Warn("GEMINI_API_KEY is not set, chat will serve the fallback answer")
	}

	middleware.InitPrometheus(services.Collectors()...)

	// Initialize services
	taskService := services.NewTaskService(store, zapLogger)
	streakService := services.NewStreakService(store, cfg.Location, zapLogger)
	quoteService := services.NewQuoteService(store, zapLogger)
	bookService := services.NewBookService(store, zapLogger)
	contactService := services.NewContactService(store, zapLogger)
	chatService := services.NewChatService(generator, cfg.ChatTimeout, zapLogger)

	// Initialize handlers
	api := &handlers.API{
		Tasks:    handlers.NewTaskHandler(taskService, zapLogger),
		Settings: handlers.NewSettingsHandler(streakService, zapLogger),
		Library:  handlers.NewLibraryHandler(quoteService, bookService, zapLogger),
		Contact:  handlers.NewContactHandler(contactService, zapLogger),
		Chat:     handlers.NewChatHandler(chatService, zapLogger),
	}
	healthHandler := handlers.NewHealthHandler(store, zapLogger)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Cleanup(ctx)

	r := mux.NewRouter()
	r.Use(limiter.Middleware)
	r.Use(middleware.MonitorMiddleware(zapLogger))

	r.Handle("/metrics", middleware.MetricsBasicAuth(cfg.MetricsUser, cfg.MetricsPass)(promhttp.Handler()))
	r.PathPrefix("/debug/pprof/").Handler(middleware.PprofSecret(cfg.PprofSecret)(http.DefaultServeMux))
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")

	api.Register(r.PathPrefix("/api").Subrouter())

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-Pprof-Secret"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
	)

	server := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.ChatTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zapLogger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server shutdown error", zap.Error(err))
	}

	zapLogger.Info("Server shutdown complete")
}

func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Storage, error) {
	if cfg.UseMemoryStore {
		logger.Info("Using in-memory storage")
		return memory.New(), nil
	}

	db, err := postgres.New(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
