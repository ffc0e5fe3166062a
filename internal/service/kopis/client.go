// Package kopis: KOPIS 공연예술통합전산망 Open API 클라이언트
// 쿼리 구성 → 단일 GET 호출 → XML 역직렬화까지의 업스트림 연동 전체를 담당한다.
// 재시도/서킷 브레이커 없이 단일 시도로 실패를 즉시 전파한다. (fail-fast)
package kopis

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"github.com/conjam/conjam-api-go/internal/config"
	"github.com/conjam/conjam-api-go/internal/constants"
	"github.com/conjam/conjam-api-go/internal/domain"
	"github.com/conjam/conjam-api-go/internal/util"
	"github.com/conjam/conjam-api-go/pkg/errors"
)

// Client: KOPIS API 요청을 수행하는 클라이언트
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	logger     *slog.Logger
}

// NewClient: 새로운 KOPIS API 클라이언트를 생성한다.
// httpClient가 nil이면 타임아웃/커넥션 풀이 설정된 기본 클라이언트를 사용한다.
func NewClient(httpClient *http.Client, cfg config.KopisConfig, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		logger:     logger,
	}
}

// NewHTTPClient: KOPIS 호출용 http.Client를 생성한다.
// DefaultTransport 복제: TCP Keep-Alive(30s), TLSHandshakeTimeout(10s), Proxy 지원 등 안전장치 유지
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxConnsPerHost = constants.KopisTransportConfig.MaxConnsPerHost
	transport.MaxIdleConnsPerHost = constants.KopisTransportConfig.MaxIdleConnsPerHost
	transport.IdleConnTimeout = constants.KopisTransportConfig.IdleConnTimeout

	return &http.Client{
		Timeout:   constants.KopisAPI.Timeout,
		Transport: transport,
	}
}

// FetchList: 공연 목록을 조회한다.
func (c *Client) FetchList(ctx context.Context, query domain.ListQuery) ([]domain.PerformanceSummary, error) {
	params := BuildListQuery(query, c.apiKey)

	body, err := c.get(ctx, constants.KopisAPI.PerformancePath, params)
	if err != nil {
		return nil, err
	}

	performances, err := ParseList(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info("kopis_list_fetched", slog.Int("count", len(performances)))
	return performances, nil
}

// FetchDetail: 공연 상세 정보를 조회한다. 레코드가 없으면 (nil, nil)을 반환한다.
func (c *Client) FetchDetail(ctx context.Context, performanceID string) (*domain.PerformanceDetail, error) {
	body, err := c.get(ctx, DetailPath(performanceID), BuildDetailQuery(c.apiKey))
	if err != nil {
		return nil, err
	}

	detail, err := ParseDetail(body)
	if err != nil {
		return nil, err
	}

	c.logger.Info("kopis_detail_fetched",
		slog.String("performance_id", performanceID),
		slog.Bool("found", detail != nil),
	)
	return detail, nil
}

// get: 단일 GET 요청을 수행하고 원시 본문을 반환한다.
// 전송 실패/non-2xx는 타입 에러로 변환한다. 재시도 없음.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	// API 키 노출 방지: 로그에는 경로만 남긴다
	c.logger.Debug("kopis_request", slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, errors.NewUpstreamTimeout("KOPIS API 응답 시간 초과", err)
		}
		return nil, errors.NewUpstreamError(0, "KOPIS API 요청 실패", "", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewUpstreamError(resp.StatusCode, "KOPIS API 응답 읽기 실패", "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("kopis_request_failed",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return nil, errors.NewUpstreamError(
			resp.StatusCode,
			fmt.Sprintf("KOPIS API 호출 실패: %d", resp.StatusCode),
			util.TruncateString(string(body), constants.KopisAPI.BodySnippetMax),
			nil,
		)
	}

	return body, nil
}

func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
