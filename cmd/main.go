// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"wanikani_apprentice/internal/config"
	"wanikani_apprentice/internal/handlers"
	"wanikani_apprentice/internal/middleware"
	"wanikani_apprentice/internal/resources"
	"wanikani_apprentice/internal/service"
	"wanikani_apprentice/internal/store"
	"wanikani_apprentice/internal/wanikani"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := &config.Cfg

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. 共有HTTPクライアント (キャッシュ構築・assignments取得・SVGミラーで共用)
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	// 3. Dependency Injection
	db := store.New()
	api := wanikani.NewClient(cfg.WaniKani.APIKey, cfg, httpClient)

	subjectService := service.NewSubjectService(api, db)
	assignmentService := service.NewAssignmentService(db, cfg, httpClient)
	authService := service.NewAuthService(cfg, httpClient)

	authHandler := handlers.NewAuthHandler(authService, cfg)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	svgHandler := handlers.NewSVGHandler(cfg, httpClient)

	// 4. subjectキャッシュの構築。完了するまでリッスンを開始しない
	// (未構築のストアでassignmentを解決させないため)。
	slog.Info("Populating subject cache...")
	populateStart := time.Now()
	if err := subjectService.Populate(context.Background()); err != nil {
		slog.Error("Error populating subject cache", slog.Any("error", err))
		os.Exit(1)
	}
	radicals, kanji, vocabulary := db.Counts()
	slog.Info("Subject cache populated",
		slog.Int("radicals", radicals),
		slog.Int("kanji", kanji),
		slog.Int("vocabulary", vocabulary),
		slog.Duration("elapsed", time.Since(populateStart)),
	)

	// 5. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.TrustedHostMiddleware(cfg.App.TrustedHosts))
	if cfg.App.HTTPSOnly {
		r.Use(middleware.HTTPSRedirectMiddleware)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.SessionMiddleware(cfg))

	// Routes
	r.Get("/", authHandler.Index)
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)
	r.Get("/assignments", assignmentHandler.List)
	r.Get("/radical-svg/{path}", svgHandler.Get)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(resources.Static)))

	// Health Check (ロードバランサ互換の別名も残す)
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
	r.Get("/health", healthHandler)
	r.Get("/__lbheartbeat__", healthHandler)

	// 6. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
