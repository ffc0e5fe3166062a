package server

import (
	stderrors "errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/conjam/conjam-api-go/internal/util"
	"github.com/conjam/conjam-api-go/pkg/errors"
)

const timestampLayout = "2006-01-02 15:04:05"

// ErrorResponse: 모든 실패가 수렴하는 단일 에러 응답 형태
type ErrorResponse struct {
	Success      bool   `json:"success"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	Path         string `json:"path,omitempty"`
	Timestamp    string `json:"timestamp"`
	Details      any    `json:"details,omitempty"`
}

// NewErrorResponse: 에러를 응답 본문과 HTTP 상태로 변환한다.
// 업스트림 원문은 절단된 details로만 노출하고, 메시지에는 포함하지 않는다.
func NewErrorResponse(err error, path string) (ErrorResponse, int) {
	code := errors.Resolve(err)

	resp := ErrorResponse{
		Success:      false,
		ErrorCode:    code.Code,
		ErrorMessage: errors.ResolveMessage(err),
		Path:         path,
		Timestamp:    util.FormatKST(util.NowKST(), timestampLayout),
		Details:      errorDetails(err),
	}
	return resp, code.Status
}

// ErrorMapperMiddleware: 핸들러가 남긴 에러를 하나의 응답 형태로 변환하는 경계 미들웨어
// 어떤 실패도 매핑 없이 빠져나가지 않는다. (매핑 불가 → E001)
func ErrorMapperMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		resp, status := NewErrorResponse(err, c.Request.URL.Path)

		if status >= 500 {
			logger.Error("request_failed",
				slog.String("path", c.Request.URL.Path),
				slog.String("error_code", resp.ErrorCode),
				slog.Any("error", err),
			)
		} else {
			logger.Warn("request_rejected",
				slog.String("path", c.Request.URL.Path),
				slog.String("error_code", resp.ErrorCode),
				slog.Any("error", err),
			)
		}

		c.JSON(status, resp)
	}
}

// RecoveryHandler: 핸들러 패닉을 E001 응답으로 변환한다. (gin.CustomRecovery용)
func RecoveryHandler(logger *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.Error("panic_recovered",
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered),
		)

		code := errors.InternalServerError
		c.AbortWithStatusJSON(code.Status, ErrorResponse{
			Success:      false,
			ErrorCode:    code.Code,
			ErrorMessage: code.Message,
			Path:         c.Request.URL.Path,
			Timestamp:    util.FormatKST(util.NowKST(), timestampLayout),
		})
	}
}

// NoRouteHandler: 미등록 경로 접근을 D001 응답으로 변환한다.
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := errors.DataNotFound
		c.JSON(code.Status, ErrorResponse{
			Success:      false,
			ErrorCode:    code.Code,
			ErrorMessage: code.Message,
			Path:         c.Request.URL.Path,
			Timestamp:    util.FormatKST(util.NowKST(), timestampLayout),
		})
	}
}

// abortWithError: 핸들러 공통 에러 전파 헬퍼 (실제 응답 생성은 ErrorMapperMiddleware 담당)
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// errorDetails: 에러 종류별 구조화 상세 정보 (절단된 업스트림 본문 등)
func errorDetails(err error) any {
	var upstreamErr *errors.UpstreamError
	if stderrors.As(err, &upstreamErr) {
		details := gin.H{}
		if upstreamErr.StatusCode != 0 {
			details["status"] = upstreamErr.StatusCode
		}
		if upstreamErr.Body != "" {
			details["response"] = upstreamErr.Body
		}
		if len(details) == 0 {
			return nil
		}
		return details
	}

	var parseErr *errors.ParseError
	if stderrors.As(err, &parseErr) && parseErr.Snippet != "" {
		return gin.H{"response": parseErr.Snippet}
	}

	return nil
}
