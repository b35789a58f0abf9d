package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"linfit/internal/config"
	"linfit/internal/data"
	"linfit/internal/session"
	"linfit/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ds, err := data.Generate(cfg.Seed, cfg.GenConfig())
	if err != nil {
		logger.Fatal("generate dataset", zap.Error(err))
	}
	engine, err := session.NewEngine(ds, cfg.Thresholds())
	if err != nil {
		logger.Fatal("build engine", zap.Error(err))
	}
	best := engine.BestLine()
	logger.Info("dataset ready",
		zap.Uint64("seed", cfg.Seed),
		zap.Int("n", ds.Len()),
		zap.Float64("best_slope", best.Slope),
		zap.Float64("best_intercept", best.Intercept),
		zap.Bool("api_key", cfg.APIKey != ""),
	)

	store := session.NewStore()
	store.TTL = cfg.SessionTTL
	store.MaxSessions = cfg.SessionMax
	srv := &server{engine: engine, store: store, log: logger}
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(srv, cfg.APIKey),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if cfg.SessionTTL > 0 {
		go srv.sweepSessions(ctx, cfg.SessionTTL/2)
	}
	go func() {
		logger.Info("listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("stopped")
}
