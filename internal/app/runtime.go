package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/conjam/conjam-api-go/internal/config"
	"github.com/conjam/conjam-api-go/internal/constants"
)

// Runtime: 조립이 끝난 애플리케이션 실행 단위
type Runtime struct {
	Config *config.Config
	Logger *slog.Logger
	Server *http.Server
}

// BuildRuntime: 설정과 로거로부터 전체 의존성 그래프를 조립한다.
func BuildRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := ProvideKopisClient(cfg, logger)
	svc := ProvidePerformanceService(client, logger)
	handler := ProvideAPIHandler(svc, cfg, logger)

	router, err := ProvideAPIRouter(ctx, logger, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to build router: %w", err)
	}

	return &Runtime{
		Config: cfg,
		Logger: logger,
		Server: ProvideAPIServer(ProvideAPIAddr(cfg), router),
	}, nil
}

// Run: HTTP 서버를 시작하고 종료 시그널을 기다린 뒤 graceful shutdown을 수행한다.
func (r *Runtime) Run() error {
	errCh := make(chan error, 1)

	go func() {
		r.Logger.Info("http_server_started", slog.String("addr", r.Server.Addr))
		if err := r.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		r.Logger.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.AppTimeout.Shutdown)
	defer cancel()

	if err := r.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	r.Logger.Info("server_stopped")
	return nil
}
