package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dodamdoor/casebook/api/internal/config"
	"github.com/dodamdoor/casebook/api/internal/infrastructure/sheets"
	commonhttp "github.com/dodamdoor/casebook/api/internal/interfaces/http/common"
	publichttp "github.com/dodamdoor/casebook/api/internal/interfaces/http/public"
	publicapp "github.com/dodamdoor/casebook/api/internal/public/application"
)

// Server manages the HTTP server lifecycle and acts as the composition
// root: the sheet client, the application services and the handlers are all
// constructed and connected here.
type Server struct {
	logger         *slog.Logger
	sheetClient    *sheets.Client
	caseService    publicapp.CaseQueryService
	searchService  publicapp.SearchService
	addr           string
	allowedOrigins []string
}

// New builds the full dependency graph from configuration.
func New(cfg config.Config) *Server {
	cache := sheets.NewCache(cfg.CacheTTL, nil)
	sheetClient := sheets.NewClient(sheets.ClientConfig{
		Logger:     cfg.Logger,
		HTTPClient: &http.Client{Timeout: cfg.FetchTimeout},
		Cache:      cache,
		BaseURL:    cfg.SheetsBaseURL,
		SheetID:    cfg.SheetID,
	})
	store := sheets.NewStore(sheetClient)

	return &Server{
		logger:         cfg.Logger,
		sheetClient:    sheetClient,
		caseService:    publicapp.NewCaseQueryService(cfg.Logger, store),
		searchService:  publicapp.NewSearchService(cfg.Logger, store),
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger: s.logger,
		Cases:  s.caseService,
		Search: s.searchService,
	})
	router.Route("/api", publicHandler.Register)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	return waitForShutdown(httpServer, errChan, s.logger)
}

// healthHandler reports whether the spreadsheet integration is configured.
// The sheet itself is not probed; reads are fail-soft anyway.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		status := "ok"
		code := http.StatusOK
		if !s.sheetClient.Configured() {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		commonhttp.WriteJSON(s.logger, w, code, map[string]string{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// requestLogger logs one line per request with method, path, status and
// duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}

// waitForShutdown watches for server errors and OS signals and performs a
// graceful shutdown with a timeout.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, logger *slog.Logger) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-sigChan:
		logger.Info("signal received, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", "error", err)
			return err
		}
	}

	return nil
}
