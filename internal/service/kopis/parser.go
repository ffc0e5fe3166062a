package kopis

import (
	"bytes"
	"encoding/xml"

	"github.com/conjam/conjam-api-go/internal/constants"
	"github.com/conjam/conjam-api-go/internal/domain"
	"github.com/conjam/conjam-api-go/internal/util"
	"github.com/conjam/conjam-api-go/pkg/errors"
)

// listEnvelope: KOPIS 목록 응답 루트 (<dbs><db>...</db></dbs>)
type listEnvelope struct {
	XMLName      xml.Name                    `xml:"dbs"`
	Performances []domain.PerformanceSummary `xml:"db"`
}

// detailEnvelope: KOPIS 상세 응답 루트 (<dbs><db>...</db></dbs>, db는 0~1개)
type detailEnvelope struct {
	XMLName     xml.Name                  `xml:"dbs"`
	Performance *domain.PerformanceDetail `xml:"db"`
}

// ParseList: 목록 XML 페이로드를 공연 요약 레코드 슬라이스로 역직렬화한다.
// 빈 본문은 에러가 아니라 0건으로 처리한다.
func ParseList(body []byte) ([]domain.PerformanceSummary, error) {
	if util.IsBlank(string(body)) {
		return []domain.PerformanceSummary{}, nil
	}

	if err := checkErrorBody(body); err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return nil, errors.NewParseError(snippet(body), err)
	}

	if envelope.Performances == nil {
		return []domain.PerformanceSummary{}, nil
	}
	return envelope.Performances, nil
}

// ParseDetail: 상세 XML 페이로드를 공연 상세 레코드로 역직렬화한다.
// 빈 본문 및 db 요소 부재는 에러가 아니라 부재(nil)로 처리한다. (not-found 판정은 서비스 계층 책임)
func ParseDetail(body []byte) (*domain.PerformanceDetail, error) {
	if util.IsBlank(string(body)) {
		return nil, nil
	}

	if err := checkErrorBody(body); err != nil {
		return nil, err
	}

	var envelope detailEnvelope
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return nil, errors.NewParseError(snippet(body), err)
	}

	return envelope.Performance, nil
}

// checkErrorBody: 구조 파싱 전에 업스트림 에러 마커를 검사한다.
// KOPIS는 실패를 HTTP 상태가 아니라 200 + XML 에러 본문으로 알리므로 상태 코드 분기만으로는 부족하다.
func checkErrorBody(body []byte) error {
	if bytes.Contains(body, []byte("<error>")) || bytes.Contains(body, []byte("ERROR")) {
		return errors.NewUpstreamError(0, "KOPIS API 에러 응답", snippet(body), nil)
	}
	return nil
}

func snippet(body []byte) string {
	return util.TruncateString(string(body), constants.KopisAPI.BodySnippetMax)
}
