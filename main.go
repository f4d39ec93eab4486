package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seasfinance/internal/cache"
	intconfig "seasfinance/internal/config"
	router "seasfinance/internal/http"
	"seasfinance/internal/http/handlers"
	"seasfinance/internal/services"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := intconfig.NewLogger(gin.Mode())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := intconfig.OpenDataSource(ctx, env, logger)
	cancel()
	if err != nil {
		logger.Fatal("failed to open data source", zap.Error(err))
	}
	logger.Info("data source ready", zap.String("data_source", store.Name()))

	var c *cache.Cache
	if env.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := intconfig.ConnectRedis(ctx, env.RedisAddr)
		cancel()
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", zap.String("addr", env.RedisAddr), zap.Error(err))
		} else {
			defer rdb.Close()
			c = cache.New(rdb, logger)
		}
	}

	auth, err := services.NewAuthService(env.AdminUsername, env.AdminPassword, env.JWTSecret)
	if err != nil {
		logger.Fatal("failed to configure auth", zap.Error(err))
	}

	h := &handlers.Handler{
		Store:              store,
		Cache:              c,
		Auth:               auth,
		NewHireMonthlyCost: env.NewHireMonthlyCost,
		PercentPrecision:   env.PercentPrecision,
		Now:                time.Now,
	}
	r := router.NewRouter(env, h, logger)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Warn("data source close failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
