package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hollis-m/lobby-client/internal/alerts"
	"github.com/hollis-m/lobby-client/internal/comms"
	"github.com/hollis-m/lobby-client/internal/config"
	"github.com/hollis-m/lobby-client/internal/engine"
	"github.com/hollis-m/lobby-client/internal/httpapi"
	"github.com/hollis-m/lobby-client/internal/nav"
	"github.com/hollis-m/lobby-client/internal/session"
)

func main() {
	cfg := config.Load()

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	log, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sess := session.New(log)
	router := nav.NewRouter(sess, log)
	eng := engine.New(sess, alerts.NewLogNotifier(log), router, log)

	cache := httpapi.NewStateCache(sess.Subscribe("diag"))
	go func() {
		log.Info("diagnostics listening", zap.String("addr", cfg.DiagAddr))
		if err := http.ListenAndServe(cfg.DiagAddr, httpapi.SetupRoutes(cache)); err != nil {
			log.Error("diagnostics server stopped", zap.Error(err))
		}
	}()

	client := comms.NewClient(eng, log)
	if err := client.Connect(ctx, cfg.ServerAddr); err != nil {
		log.Fatal("connect failed", zap.Error(err))
	}

	<-ctx.Done()
	if err := client.Disconnect(); err != nil {
		log.Warn("disconnect", zap.Error(err))
	}
}
