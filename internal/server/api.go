// Package server: Gin 핸들러와 미들웨어 (HTTP 표면 계층)
package server

import (
	"log/slog"

	"github.com/conjam/conjam-api-go/internal/config"
	"github.com/conjam/conjam-api-go/internal/service/performance"
)

// APIHandler: 공연 정보 API 요청을 처리하는 핸들러
// 핸들러 메서드는 도메인별 파일로 분리됨:
//   - performance.go: 공연 목록/상세 조회 + 헬스체크 + 설정 디버그
type APIHandler struct {
	service  *performance.Service
	kopisCfg config.KopisConfig
	logger   *slog.Logger
}

// NewAPIHandler: 새로운 API 핸들러를 생성합니다.
func NewAPIHandler(service *performance.Service, kopisCfg config.KopisConfig, logger *slog.Logger) *APIHandler {
	return &APIHandler{
		service:  service,
		kopisCfg: kopisCfg,
		logger:   logger,
	}
}
