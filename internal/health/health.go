// Package health: 서비스 상태 정보
package health

import (
	"sync"
	"time"

	"github.com/conjam/conjam-api-go/internal/constants"
)

var (
	startTime time.Time
	version   = "dev"
	initOnce  sync.Once
)

// Init: 서비스 시작 시 호출 (버전 정보 설정)
func Init(v string) {
	initOnce.Do(func() {
		startTime = time.Now()
		if v != "" {
			version = v
		}
	})
}

// Response: 헬스체크 엔드포인트 표준 응답
type Response struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Timestamp   int64  `json:"timestamp"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Uptime      string `json:"uptime"`
}

// Get: 현재 상태 반환
func Get() Response {
	return Response{
		Status:      "UP",
		Service:     constants.ServiceInfo.Name,
		Timestamp:   time.Now().UnixMilli(),
		Description: constants.ServiceInfo.Description,
		Version:     version,
		Uptime:      time.Since(startTime).Round(time.Second).String(),
	}
}
