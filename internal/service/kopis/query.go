package kopis

import (
	"net/url"
	"strconv"

	"github.com/conjam/conjam-api-go/internal/constants"
	"github.com/conjam/conjam-api-go/internal/domain"
	"github.com/conjam/conjam-api-go/internal/util"
)

// BuildListQuery: 공연 목록 조회용 업스트림 쿼리 파라미터를 구성한다.
// KOPIS 필수 파라미터: service, stdate, eddate, cpage, rows
// 날짜 기본값 계산은 호출자가 아니라 여기서 수행하여, 생략과 명시가 동일 경로로 처리되게 한다.
func BuildListQuery(query domain.ListQuery, apiKey string) url.Values {
	startDate := query.StartDate
	endDate := query.EndDate
	if startDate == "" || endDate == "" {
		today := util.NowKST()
		if startDate == "" {
			startDate = today.AddDate(0, -constants.DateWindow.DefaultMonths, 0).Format(constants.DateWindow.Layout)
		}
		if endDate == "" {
			endDate = today.Format(constants.DateWindow.Layout)
		}
	}

	rows := query.Size
	if rows > constants.Pagination.MaxSize {
		rows = constants.Pagination.MaxSize
	}

	params := url.Values{}
	params.Set("service", apiKey)
	params.Set("stdate", startDate)
	params.Set("eddate", endDate)
	params.Set("cpage", strconv.Itoa(query.Page))
	params.Set("rows", strconv.Itoa(rows))

	if query.Genre != "" {
		params.Set("shcate", MapGenre(query.Genre))
	}
	if query.Area != "" {
		// 지역 코드는 검증 없이 그대로 전달
		params.Set("signgucode", query.Area)
	}

	return params
}

// BuildDetailQuery: 공연 상세 조회용 쿼리 파라미터를 구성한다. (service 키만 필요)
// id가 비어있지 않음은 서비스 계층이 보장한다.
func BuildDetailQuery(apiKey string) url.Values {
	params := url.Values{}
	params.Set("service", apiKey)
	return params
}

// DetailPath: 공연 상세 조회 경로를 구성한다. (/pblprfr/{id})
func DetailPath(performanceID string) string {
	return constants.KopisAPI.PerformancePath + "/" + url.PathEscape(performanceID)
}
