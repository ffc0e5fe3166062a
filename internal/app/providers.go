// Package app: 애플리케이션 구성요소 조립 (라우터, 서버, 런타임)
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/conjam/conjam-api-go/internal/config"
	"github.com/conjam/conjam-api-go/internal/constants"
	"github.com/conjam/conjam-api-go/internal/server"
	"github.com/conjam/conjam-api-go/internal/service/kopis"
	"github.com/conjam/conjam-api-go/internal/service/performance"
)

// ProvideAPIAddr: HTTP 서버가 리슨할 주소를 반환합니다.
func ProvideAPIAddr(cfg *config.Config) string {
	return fmt.Sprintf(":%d", cfg.Server.Port)
}

// ProvideKopisClient: KOPIS 업스트림 클라이언트를 생성합니다.
func ProvideKopisClient(cfg *config.Config, logger *slog.Logger) *kopis.Client {
	return kopis.NewClient(kopis.NewHTTPClient(), cfg.Kopis, logger)
}

// ProvidePerformanceService: 공연 조회 서비스를 생성합니다.
func ProvidePerformanceService(client *kopis.Client, logger *slog.Logger) *performance.Service {
	return performance.NewService(client, logger)
}

// ProvideAPIHandler: API 핸들러를 생성합니다.
func ProvideAPIHandler(svc *performance.Service, cfg *config.Config, logger *slog.Logger) *server.APIHandler {
	return server.NewAPIHandler(svc, cfg.Kopis, logger)
}

// ProvideAPIServer: HTTP 서버 인스턴스를 생성합니다.
// H2C(HTTP/2 Cleartext)를 기본으로 사용하여 멀티플렉싱과 헤더 압축 이점을 제공한다.
func ProvideAPIServer(addr string, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           server.WrapH2C(router),
		ReadHeaderTimeout: constants.ServerTimeout.ReadHeader,
		IdleTimeout:       constants.ServerTimeout.Idle,
	}
}
