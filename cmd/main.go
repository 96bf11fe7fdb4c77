package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/device-sessions/internal/auth"
	"github.com/JMURv/device-sessions/internal/auth/jwt"
	"github.com/JMURv/device-sessions/internal/cache/redis"
	"github.com/JMURv/device-sessions/internal/config"
	"github.com/JMURv/device-sessions/internal/ctrl"
	"github.com/JMURv/device-sessions/internal/geo"
	"github.com/JMURv/device-sessions/internal/hdl/grpc"
	hdl "github.com/JMURv/device-sessions/internal/hdl/http"
	"github.com/JMURv/device-sessions/internal/observability/metrics/prometheus"
	"github.com/JMURv/device-sessions/internal/observability/tracing/jaeger"
	"github.com/JMURv/device-sessions/internal/repo/db"
	"github.com/JMURv/device-sessions/internal/session"
	"github.com/JMURv/device-sessions/internal/smtp"
	"github.com/JMURv/device-sessions/internal/sweep"
	"go.uber.org/zap"
)

const configPath = ".env"

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func newSessionStore(conf config.SessionConfig) session.Store {
	switch conf.Store {
	case "minio":
		store, err := session.NewMinioStore(conf)
		if err != nil {
			zap.L().Fatal("failed to create minio session store", zap.Error(err))
		}
		return store
	default:
		store, err := session.NewFileStore(conf.Path)
		if err != nil {
			zap.L().Fatal("failed to create file session store", zap.Error(err))
		}
		return store
	}
}

func newGeoResolver(conf config.GeoConfig) geo.Resolver {
	if conf.MMDBPath == "" {
		zap.L().Info("GeoIP database not configured, lookups disabled")
		return geo.Noop{}
	}

	res, err := geo.NewMaxMind(conf)
	if err != nil {
		zap.L().Warn("failed to open GeoIP database, lookups disabled", zap.Error(err))
		return geo.Noop{}
	}
	return res
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.MetricsPort).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	store := newSessionStore(conf.Session)
	resolver := newGeoResolver(conf.Geo)

	au := jwt.New(conf.Auth)

	var email ctrl.EmailService
	if conf.Email.Server != "" {
		email = smtp.New(conf)
	}

	svc := ctrl.New(
		repo,
		cache,
		au,
		auth.NewPassword(),
		store,
		resolver,
		auth.NewIdentity(),
		email,
	)

	sweeper := sweep.New(svc, config.SweepInterval)
	go sweeper.Start(ctx)

	h := hdl.New(au, svc, store)
	g := grpc.New(conf.ServiceName, au, svc)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)
	go g.Start(conf.Server.GRPCPort)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing HTTP handler", zap.Error(err))
	}

	if err := g.Close(); err != nil {
		zap.L().Warn("Error closing gRPC handler", zap.Error(err))
	}

	if err := resolver.Close(); err != nil {
		zap.L().Warn("Error closing GeoIP resolver", zap.Error(err))
	}

	if err := cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err := repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}
