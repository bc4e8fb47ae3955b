package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/engagement-cli/internal/config"
	"github.com/sells-group/engagement-cli/internal/engine"
	"github.com/sells-group/engagement-cli/internal/model"
	"github.com/sells-group/engagement-cli/internal/resilience"
	"github.com/sells-group/engagement-cli/internal/scraper"
	"github.com/sells-group/engagement-cli/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the snapshot and estimator over a read-only HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := openStore(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()

		tables, err := scraper.LoadTables(cfg.Scraper.TablesPath)
		if err != nil {
			return err
		}

		r := newRouter(cfg.Server, st, engine.New(cfg.Engine), scraper.NewEstimator(tables))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter wires the API routes with CORS and rate limiting.
func newRouter(srvCfg config.ServerConfig, st store.Store, eng *engine.Engine, est *scraper.Estimator) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: srvCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(rateLimit(srvCfg.RateLimitPerSec, srvCfg.RateBurst))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/snapshot", func(w http.ResponseWriter, req *http.Request) {
		retryCfg := resilience.DefaultRetryConfig()
		retryCfg.OnRetry = resilience.RetryLogger("fetch snapshot input")
		input, err := store.FetchInputWithRetry(req.Context(), st, retryCfg)
		if err != nil {
			zap.L().Error("snapshot fetch failed", zap.Error(err))
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "snapshot source unavailable"})
			return
		}

		snap, err := eng.ComputeSnapshot(req.Context(), *input, time.Now().UTC())
		if err != nil {
			zap.L().Error("snapshot compute failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "snapshot computation failed"})
			return
		}
		writeJSON(w, http.StatusOK, snap)
	})

	r.Post("/api/estimate", func(w http.ResponseWriter, req *http.Request) {
		var assignment model.ScraperAssignment
		if err := json.NewDecoder(req.Body).Decode(&assignment); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		writeJSON(w, http.StatusOK, est.Estimate(assignment))
	})

	return r
}

// rateLimit applies a global token-bucket limit to the API.
func rateLimit(perSec float64, burst int) func(http.Handler) http.Handler {
	if perSec <= 0 {
		perSec = 10
	}
	if burst <= 0 {
		burst = 20
	}
	limiter := rate.NewLimiter(rate.Limit(perSec), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !limiter.Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
