package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	grpcdelivery "github.com/Xausdorf/girocode/internal/delivery/grpc"
	httpdelivery "github.com/Xausdorf/girocode/internal/delivery/http"
	"github.com/Xausdorf/girocode/internal/infrastructure/charset"
	"github.com/Xausdorf/girocode/internal/infrastructure/config"
	"github.com/Xausdorf/girocode/internal/infrastructure/logging"
	"github.com/Xausdorf/girocode/internal/infrastructure/metrics"
	"github.com/Xausdorf/girocode/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/girocode/internal/infrastructure/render"
	"github.com/Xausdorf/girocode/internal/usecase/generategirocode"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := metrics.New()
	renderer := render.NewPNGRenderer(render.Caption{Text: cfg.CaptionText, Size: cfg.CaptionSize}, cfg.ModuleSize)
	generateUC := generategirocode.NewUseCase(charset.NewEncoder(), qrgenerator.NewGenerator(), renderer, m, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "error", err)
		cancel()
		return
	}

	grpcSrv := grpc.NewServer()
	grpcdelivery.Register(grpcSrv, grpcdelivery.NewHandler(generateUC, logger))

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpdelivery.NewRouter(httpdelivery.NewHandler(generateUC, logger), m.Handler()),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("gRPC server starting", "addr", cfg.GRPCAddr)
		if serveErr := grpcSrv.Serve(lis); serveErr != nil {
			logger.Error("grpc serve failed", "error", serveErr)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := httpSrv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	grpcSrv.GracefulStop()
}
