package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/conjam/conjam-api-go/internal/domain"
	"github.com/conjam/conjam-api-go/internal/health"
	"github.com/conjam/conjam-api-go/pkg/errors"
)

// GetPerformances: 공연 목록을 조회합니다.
// page/size/genre/area/startDate/endDate 모두 선택 파라미터이며 기본값이 적용됩니다.
func (h *APIHandler) GetPerformances(c *gin.Context) {
	page, err := intQuery(c, "page", 1, errors.PageParameterInvalid)
	if err != nil {
		abortWithError(c, err)
		return
	}
	size, err := intQuery(c, "size", 10, errors.SizeParameterInvalid)
	if err != nil {
		abortWithError(c, err)
		return
	}

	query := domain.ListQuery{
		Page:      page,
		Size:      size,
		Genre:     c.Query("genre"),
		Area:      c.Query("area"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	performances, err := h.service.ListPerformances(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, gin.H{"performances": performances})
}

// GetPerformanceDetail: 특정 공연의 상세 정보를 조회합니다.
func (h *APIHandler) GetPerformanceDetail(c *gin.Context) {
	performanceID := c.Param("performanceId")

	detail, err := h.service.GetPerformanceDetail(c.Request.Context(), performanceID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(200, gin.H{"performance": detail})
}

// HealthCheck: API 서버의 상태를 반환합니다.
func (h *APIHandler) HealthCheck(c *gin.Context) {
	c.JSON(200, health.Get())
}

// DebugConfig: KOPIS API 키/URL 설정 상태를 반환합니다. (디버깅용, 키는 마스킹)
func (h *APIHandler) DebugConfig(c *gin.Context) {
	c.JSON(200, gin.H{
		"apiKeyConfigured": h.kopisCfg.APIKey != "",
		"baseUrl":          h.kopisCfg.BaseURL,
		"maskedApiKey":     h.kopisCfg.MaskedAPIKey(),
	})
}

// intQuery: 정수 쿼리 파라미터를 파싱한다. 파싱 불가 값은 파라미터별 코드로 거부한다.
// 범위 밖 숫자는 거부하지 않는다 - 보정은 서비스 계층 책임.
func intQuery(c *gin.Context, name string, defaultValue int, code errors.Code) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewInvalidParameterWithCode(code, code.Message)
	}
	return value, nil
}
