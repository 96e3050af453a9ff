package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/featureflags"
	"github.com/yourorg/unihaven/internal/handler"
	"github.com/yourorg/unihaven/internal/infrastructure/logger"
	"github.com/yourorg/unihaven/internal/infrastructure/redis"
	"github.com/yourorg/unihaven/internal/observability/metrics"
	"github.com/yourorg/unihaven/internal/observability/tracing"
	"github.com/yourorg/unihaven/internal/repository"
	"github.com/yourorg/unihaven/internal/security/audit"
	"github.com/yourorg/unihaven/internal/security/auth"
	"github.com/yourorg/unihaven/internal/security/middleware"
	"github.com/yourorg/unihaven/internal/security/ratelimit"
	"github.com/yourorg/unihaven/internal/service"
	"github.com/yourorg/unihaven/internal/worker"
	"github.com/yourorg/unihaven/pkg/cache"
	"github.com/yourorg/unihaven/pkg/config"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize structured logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("starting UniHaven server", slog.String("environment", cfg.Environment))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize tracing (no-op unless an OTLP endpoint is configured)
	shutdownTracing, err := tracing.Init(ctx, log, "unihaven", cfg.Environment)
	if err != nil {
		log.Error("failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Initialize repositories. Sessions may live in Redis; everything
	// else is in-memory.
	accountRepo := repository.NewMemoryAccountRepository()
	unitRepo := repository.NewMemoryUnitRepository()
	listingRepo := repository.NewMemoryListingRepository()
	requestRepo := repository.NewMemoryRequestRepository()
	agreementRepo := repository.NewMemoryAgreementRepository()
	boardRepo := repository.NewMemoryBoardRepository()
	reviewRepo := repository.NewMemoryReviewRepository()
	reportRepo := repository.NewMemoryReportRepository()
	notificationRepo := repository.NewMemoryNotificationRepository()
	conversationRepo := repository.NewMemoryConversationRepository()
	bookmarkRepo := repository.NewMemoryBookmarkRepository()
	surveyRepo := repository.NewMemorySurveyRepository()

	var sessionRepo domain.SessionRepository
	var readiness func(context.Context) error
	if cfg.SessionStore == "redis" {
		redisClient, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			log.Error("failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		sessionRepo = repository.NewRedisSessionRepository(redisClient, log)
		readiness = redisClient.Ping
		log.Info("using Redis session store", slog.String("url", cfg.RedisURL))
	} else {
		sessionRepo = repository.NewMemorySessionRepository()
		readiness = func(context.Context) error { return nil }
	}

	// 5. Initialize services
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	authService := service.NewAuthService(accountRepo, sessionRepo, sessionTTL, log)
	listingService := service.NewListingService(listingRepo, unitRepo, accountRepo, log)
	requestService := service.NewRequestService(requestRepo, log)
	agreementService := service.NewAgreementService(agreementRepo, log)
	expenseService := service.NewExpenseService(boardRepo, log)
	reviewService := service.NewReviewService(reviewRepo, log)
	reportService := service.NewReportService(reportRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, log)
	chatService := service.NewChatService(conversationRepo, log)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, log)
	surveyService := service.NewSurveyService(surveyRepo, log)

	// 6. Initialize security components
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, "unihaven")
	rateLimiter := ratelimit.NewLimiter(cfg.RateLimitPerMinute, time.Minute)
	auditLogger := audit.NewLogger(log)

	// 7. Initialize handlers
	listingCache := cache.New()
	cacheTTL := time.Duration(cfg.ListingCacheSeconds) * time.Second

	authHandler := handler.NewAuthHandler(authService, tokenManager, sessionTTL, log)
	listingHandler := handler.NewListingHandler(listingService, listingCache, cacheTTL, log)
	requestHandler := handler.NewRequestHandler(requestService, log)
	agreementHandler := handler.NewAgreementHandler(agreementService, log)
	expenseHandler := handler.NewExpenseHandler(expenseService, log)
	reviewHandler := handler.NewReviewHandler(reviewService, log)
	reportHandler := handler.NewReportHandler(reportService, log)
	notificationHandler := handler.NewNotificationHandler(notificationService, log)
	chatHandler := handler.NewChatHandler(chatService, log)
	chatStreamHandler := handler.NewChatStreamHandler(chatService, log, cfg.CORSAllowedOrigins)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService, log)
	surveyHandler := handler.NewSurveyHandler(surveyService, authService, log)

	// 8. Setup HTTP routes
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/me", authHandler.Me)
	mux.HandleFunc("POST /api/auth/profile", authHandler.CompleteProfile)
	mux.HandleFunc("PUT /api/auth/preferences", authHandler.UpdatePreferences)

	mux.HandleFunc("POST /api/units", listingHandler.CreateUnit)
	mux.HandleFunc("GET /api/units/{id}", listingHandler.GetUnit)
	mux.HandleFunc("POST /api/listings", listingHandler.Create)
	mux.HandleFunc("GET /api/listings", listingHandler.ListAll)
	mux.HandleFunc("GET /api/listings/published", listingHandler.ListPublished)
	mux.HandleFunc("GET /api/listings/{id}", listingHandler.Get)
	mux.HandleFunc("PATCH /api/listings/{id}", listingHandler.Edit)
	mux.HandleFunc("DELETE /api/listings/{id}", listingHandler.Delete)
	mux.HandleFunc("POST /api/listings/{id}/{action}", listingHandler.Transition)
	mux.HandleFunc("GET /api/listings/{id}/requests", requestHandler.ByListing)

	mux.HandleFunc("POST /api/requests", requestHandler.Submit)
	mux.HandleFunc("GET /api/requests/{id}", requestHandler.Get)
	mux.HandleFunc("POST /api/requests/{id}/{decision}", requestHandler.Decide)

	mux.HandleFunc("POST /api/agreements", agreementHandler.Create)
	mux.HandleFunc("GET /api/agreements/{id}", agreementHandler.Get)
	mux.HandleFunc("POST /api/agreements/{id}/send", agreementHandler.Send)
	mux.HandleFunc("POST /api/agreements/{id}/sign", agreementHandler.Sign)
	mux.HandleFunc("POST /api/agreements/{id}/cancel", agreementHandler.Cancel)

	mux.HandleFunc("GET /api/boards/{unitId}", expenseHandler.Board)
	mux.HandleFunc("POST /api/boards/{unitId}/expenses", expenseHandler.Add)
	mux.HandleFunc("GET /api/boards/{unitId}/summary", expenseHandler.Summary)
	mux.HandleFunc("POST /api/boards/{unitId}/shares", expenseHandler.Shares)
	mux.HandleFunc("POST /api/boards/{unitId}/confirm", expenseHandler.Confirm)
	mux.HandleFunc("POST /api/boards/{unitId}/invoice", expenseHandler.Invoice)

	mux.HandleFunc("POST /api/reviews", reviewHandler.Add)
	mux.HandleFunc("GET /api/reviews/{id}", reviewHandler.Get)
	mux.HandleFunc("POST /api/reviews/{id}/flag", reviewHandler.Flag)
	mux.HandleFunc("POST /api/reviews/{id}/respond", reviewHandler.Respond)
	mux.HandleFunc("GET /api/providers/{id}/reviews", reviewHandler.ByProvider)
	mux.HandleFunc("GET /api/accounts/{id}/reviews", reviewHandler.ByReviewer)

	mux.HandleFunc("POST /api/reports", reportHandler.Submit)
	mux.HandleFunc("GET /api/reports", reportHandler.List)
	mux.HandleFunc("GET /api/reports/{id}", reportHandler.Get)
	mux.HandleFunc("PUT /api/reports/{id}/status", reportHandler.UpdateStatus)

	mux.HandleFunc("POST /api/notifications", notificationHandler.Send)
	mux.HandleFunc("POST /api/notifications/{id}/read", notificationHandler.MarkRead)
	mux.HandleFunc("GET /api/accounts/{id}/notifications", notificationHandler.ForRecipient)

	mux.HandleFunc("POST /api/conversations", chatHandler.Start)
	mux.HandleFunc("DELETE /api/conversations/{id}", chatHandler.Close)
	mux.HandleFunc("POST /api/conversations/{id}/messages", chatHandler.Send)
	mux.HandleFunc("GET /api/conversations/{id}/messages", chatHandler.Messages)
	if featureflags.EnabledDefault("chat_stream") {
		mux.Handle("GET /ws/chat/{id}", chatStreamHandler)
	}

	mux.HandleFunc("POST /api/bookmarks", bookmarkHandler.Add)
	mux.HandleFunc("DELETE /api/bookmarks/{id}", bookmarkHandler.Remove)
	mux.HandleFunc("GET /api/accounts/{id}/bookmarks", bookmarkHandler.ForAccount)

	mux.HandleFunc("POST /api/surveys", surveyHandler.Create)
	mux.HandleFunc("POST /api/surveys/{id}/{action}", surveyHandler.SetActive)
	mux.HandleFunc("POST /api/surveys/{id}/responses", surveyHandler.SubmitResponse)
	mux.HandleFunc("GET /api/surveys/{id}/responses", surveyHandler.Responses)
	mux.HandleFunc("POST /api/compatibility", surveyHandler.Compatibility)

	mux.Handle("/metrics", promhttp.Handler())

	// Health and readiness endpoints (no auth required)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		rctx, rcancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer rcancel()
		if err := readiness(rctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("session store not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	// CORS middleware honoring configured origins
	handlerWithCORS := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(cfg.CORSAllowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else if len(cfg.CORSAllowedOrigins) > 0 {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins[0])
		}
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, OPTIONS, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})

	// Chain middleware: request ID -> audit -> rate limit -> session auth ->
	// metrics -> CORS -> mux, the whole stack wrapped in otel instrumentation
	rootHandler := otelhttp.NewHandler(withRequestID(
		middleware.AuditMiddleware(auditLogger)(
			middleware.RateLimitMiddleware(rateLimiter, log)(
				middleware.SessionMiddleware(tokenManager, authService, log)(
					metrics.HTTPMetricsMiddleware(handlerWithCORS),
				),
			),
		),
		log,
	), "unihaven")

	// 9. Start session sweeper in background
	sweeper := worker.NewSessionSweeper(
		sessionRepo,
		accountRepo,
		log,
		time.Duration(cfg.SweepIntervalMinutes)*time.Minute,
	)
	go sweeper.Start(ctx)

	// 10. Start HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      rootHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("server starting",
		slog.Int("port", cfg.ServerPort),
		slog.String("session_store", cfg.SessionStore),
		slog.Int("rate_limit", cfg.RateLimitPerMinute),
		slog.String("rate_limit_window", "1m"),
	)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.String("error", err.Error()))
		}
	}()

	<-sigChan
	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.String("error", err.Error()))
	}

	cancel() // stop the sweeper
	rateLimiter.Stop()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown error", slog.String("error", err.Error()))
	}
	log.Info("server stopped")
}

type requestIDKey struct{}

// withRequestID attaches a request ID to the context and response headers for traceability
func withRequestID(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := generateRequestID()
		w.Header().Set("X-Request-ID", reqID)

		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		start := time.Now()

		next.ServeHTTP(w, r.WithContext(ctx))

		log.Info("request completed",
			slog.String("request_id", reqID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration_ms", time.Since(start)),
		)
	})
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return false
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

func generateRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}
	return fmt.Sprintf("req-%d", time.Now().UnixNano())
}
