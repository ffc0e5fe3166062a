package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/conjam/conjam-api-go/internal/constants"
	"github.com/conjam/conjam-api-go/internal/server"
)

// ProvideAPIRouter: 공연 정보 API를 서빙하는 Gin 라우터를 설정합니다.
func ProvideAPIRouter(
	ctx context.Context,
	logger *slog.Logger,
	apiHandler *server.APIHandler,
) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	if err := router.SetTrustedProxies(constants.ServerConfig.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	router.Use(gin.CustomRecovery(server.RecoveryHandler(logger)))
	router.Use(server.LoggerMiddleware(ctx, logger,
		"/health",
		"/api/performances/health", // 헬스체크 폴링
	))
	router.Use(cors.New(newCORSConfig()))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(server.SecurityHeadersMiddleware())

	// 에러 경계: 핸들러가 남긴 모든 에러는 여기서 단일 응답 형태로 수렴한다
	router.Use(server.ErrorMapperMiddleware(logger))

	registerRoutes(router, apiHandler)

	return router, nil
}

func newCORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = constants.CORSConfig.AllowOrigins
	corsConfig.AllowMethods = constants.CORSConfig.AllowMethods
	corsConfig.AllowHeaders = constants.CORSConfig.AllowHeaders
	return corsConfig
}

func registerRoutes(router *gin.Engine, apiHandler *server.APIHandler) {
	router.GET("/health", apiHandler.HealthCheck)

	performances := router.Group("/api/performances")
	{
		performances.GET("", apiHandler.GetPerformances)
		performances.GET("/health", apiHandler.HealthCheck)
		performances.GET("/debug/config", apiHandler.DebugConfig)
		performances.GET("/:performanceId", apiHandler.GetPerformanceDetail)
	}

	// 미등록 경로도 택소노미 형태(D001)로 응답
	router.NoRoute(server.NoRouteHandler())
}
