package main // Entry point of the gate verification service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/airline-boarding/internal/config"
	"github.com/iliyamo/airline-boarding/internal/handler"
	"github.com/iliyamo/airline-boarding/internal/logger"
	"github.com/iliyamo/airline-boarding/internal/middleware"
	"github.com/iliyamo/airline-boarding/internal/pass"
	"github.com/iliyamo/airline-boarding/internal/queue"
	"github.com/iliyamo/airline-boarding/internal/router"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg := config.LoadGate()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	lg := logger.New(os.Stdout, cfg.LogLevel).With("app", "gate", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.NewRedisClient(ctx, cfg.Redis)
	if rdb == nil {
		lg.Warn("redis unreachable, rate limiting disabled", "addr", cfg.Redis.Addr)
	} else {
		defer rdb.Close()
	}

	signer := pass.NewSigner(cfg.PassSecret, cfg.PassIssuer, cfg.PassTTL)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterGate(e, handler.NewGateHandler(signer), middleware.NewTokenBucket(cfg.RateLimit, rdb, lg))

	if cfg.EventsEnabled {
		c := &queue.Consumer{URL: cfg.AMQPURL, Queue: cfg.EventsQueue, Dir: cfg.EventsLogDir, Log: lg}
		go func() {
			if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				lg.Error("event consumer stopped", "err", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		lg.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			lg.Error("shutdown", "err", err)
		}
	}()

	addr := ":" + cfg.GatePort
	lg.Info("listening", "addr", addr, "events", cfg.EventsEnabled)
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
