// Package performance: 호출자 파라미터 검증/정규화와 업스트림 위임을 담당하는 서비스 계층
package performance

import (
	"context"
	"log/slog"

	"github.com/conjam/conjam-api-go/internal/constants"
	"github.com/conjam/conjam-api-go/internal/domain"
	"github.com/conjam/conjam-api-go/internal/util"
	"github.com/conjam/conjam-api-go/pkg/errors"
)

// Fetcher: 업스트림 공연 정보 조회 인터페이스 (kopis.Client가 구현)
type Fetcher interface {
	FetchList(ctx context.Context, query domain.ListQuery) ([]domain.PerformanceSummary, error)
	FetchDetail(ctx context.Context, performanceID string) (*domain.PerformanceDetail, error)
}

// Service: 공연 목록/상세 조회 서비스
// 호출 간 상태를 유지하지 않는다. 검증 → 위임 → (부재 → not-found 변환)의 단선 파이프라인.
type Service struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewService: 새로운 공연 서비스 인스턴스를 생성한다.
func NewService(fetcher Fetcher, logger *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		logger:  logger,
	}
}

// ListPerformances: 공연 목록을 조회한다.
// page/size는 거부하지 않고 보정한다: page < 1 → 1, size < 1 → 10, size > 100 → 100.
// 업스트림/파싱 실패는 가공 없이 그대로 전파한다.
func (s *Service) ListPerformances(ctx context.Context, query domain.ListQuery) ([]domain.PerformanceSummary, error) {
	if query.Page < 1 {
		query.Page = constants.Pagination.DefaultPage
	}
	switch {
	case query.Size < 1:
		query.Size = constants.Pagination.DefaultSize
	case query.Size > constants.Pagination.MaxSize:
		query.Size = constants.Pagination.MaxSize
	}

	s.logger.Info("list_performances",
		slog.Int("page", query.Page),
		slog.Int("size", query.Size),
		slog.String("genre", query.Genre),
		slog.String("area", query.Area),
	)

	return s.fetcher.FetchList(ctx, query)
}

// GetPerformanceDetail: 공연 상세 정보를 조회한다.
// 빈 ID는 업스트림 호출 전에 거부하고, 업스트림에 레코드가 없으면 not-found로 변환한다.
func (s *Service) GetPerformanceDetail(ctx context.Context, performanceID string) (*domain.PerformanceDetail, error) {
	if util.IsBlank(performanceID) {
		return nil, errors.NewInvalidParameterWithCode(errors.PerformanceIDInvalid, "공연 ID가 비어있습니다.")
	}

	detail, err := s.fetcher.FetchDetail(ctx, performanceID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, errors.NewPerformanceNotFound(performanceID)
	}

	s.logger.Info("get_performance_detail", slog.String("performance_id", performanceID))
	return detail, nil
}
