package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Cheertaboi/catalog-coupon-service/internal/api"
	"github.com/Cheertaboi/catalog-coupon-service/internal/cache"
	"github.com/Cheertaboi/catalog-coupon-service/internal/config"
	"github.com/Cheertaboi/catalog-coupon-service/internal/repository"
	"github.com/Cheertaboi/catalog-coupon-service/internal/service"
	"github.com/Cheertaboi/catalog-coupon-service/pkg/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	conn, err := db.NewPostgresConnection(context.Background(), cfg.Postgres)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer conn.Close()

	// repos & services
	couponRepo := repository.NewCouponRepo(conn)
	categoryRepo := repository.NewCategoryRepo(conn)

	couponService := service.NewCouponService(couponRepo, cache.NewCouponCache(), logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      api.NewRouter(couponService, categoryService, logger),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("http server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting catalog-service", zap.String("addr", cfg.HTTP.Addr), zap.String("env", cfg.Env))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}

	<-idleConnsClosed
	logger.Info("server stopped")
}
