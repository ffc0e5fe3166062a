// Package domain: 요청 스코프 공연 정보 값 객체 정의
// 모든 필드는 업스트림이 생략할 수 있으므로 옵셔널이다. 날짜/플래그류는 업스트림 인코딩이
// 일관되지 않아(Y/N/빈 값 혼재) 의미 해석 없이 원시 문자열 그대로 유지한다.
package domain

// PerformanceSummary: 목록 조회용 공연 기본 정보 (KOPIS mt20id 기준)
type PerformanceSummary struct {
	ID           *string `xml:"mt20id" json:"id,omitempty"`
	Title        *string `xml:"prfnm" json:"title,omitempty"`
	StartDate    *string `xml:"prfpdfrom" json:"startDate,omitempty"`
	EndDate      *string `xml:"prfpdto" json:"endDate,omitempty"`
	FacilityName *string `xml:"fcltynm" json:"facilityName,omitempty"`
	Poster       *string `xml:"poster" json:"poster,omitempty"`
	Area         *string `xml:"area" json:"area,omitempty"`
	Genre        *string `xml:"genrenm" json:"genre,omitempty"`
	State        *string `xml:"prfstate" json:"state,omitempty"`
	OpenRun      *string `xml:"openrun" json:"openRun,omitempty"`
}

// PerformanceDetail: 단건 조회용 공연 상세 정보 (Summary의 상위 집합)
type PerformanceDetail struct {
	ID           *string `xml:"mt20id" json:"id,omitempty"`
	FacilityID   *string `xml:"mt10id" json:"facilityId,omitempty"`
	Title        *string `xml:"prfnm" json:"title,omitempty"`
	StartDate    *string `xml:"prfpdfrom" json:"startDate,omitempty"`
	EndDate      *string `xml:"prfpdto" json:"endDate,omitempty"`
	FacilityName *string `xml:"fcltynm" json:"facilityName,omitempty"`
	Cast         *string `xml:"prfcast" json:"cast,omitempty"`
	Crew         *string `xml:"prfcrew" json:"crew,omitempty"`
	Runtime      *string `xml:"prfruntime" json:"runtime,omitempty"`
	AgeLimit     *string `xml:"prfage" json:"ageLimit,omitempty"`
	Producer     *string `xml:"entrpsnmP" json:"producer,omitempty"`
	Planner      *string `xml:"entrpsnmA" json:"planner,omitempty"`
	Host         *string `xml:"entrpsnmH" json:"host,omitempty"`
	Organizer    *string `xml:"entrpsnmS" json:"organizer,omitempty"`
	TicketPrice  *string `xml:"pcseguidance" json:"ticketPrice,omitempty"`
	Poster       *string `xml:"poster" json:"poster,omitempty"`
	Synopsis     *string `xml:"sty" json:"synopsis,omitempty"`
	Area         *string `xml:"area" json:"area,omitempty"`
	Genre        *string `xml:"genrenm" json:"genre,omitempty"`
	State        *string `xml:"prfstate" json:"state,omitempty"`
	OpenRun      *string `xml:"openrun" json:"openRun,omitempty"`

	// Y/N/빈 값이 혼재하는 플래그 필드들 - 원시 문자열 유지
	Visit          *string `xml:"visit" json:"visit,omitempty"`
	Child          *string `xml:"child" json:"child,omitempty"`
	Daehakro       *string `xml:"daehakro" json:"daehakro,omitempty"`
	Festival       *string `xml:"festival" json:"festival,omitempty"`
	MusicalLicense *string `xml:"musicallicense" json:"musicalLicense,omitempty"`
	MusicalCreate  *string `xml:"musicalcreate" json:"musicalCreate,omitempty"`

	UpdateDate      *string  `xml:"updatedate" json:"updateDate,omitempty"`
	PerformanceTime *string  `xml:"dtguidance" json:"performanceTime,omitempty"`
	IntroImages     []string `xml:"styurls>styurl" json:"introImages,omitempty"`
}

// ListQuery: 공연 목록 조회 파라미터 (정규화 이후 값)
// StartDate/EndDate가 비어있으면 쿼리 빌더가 최근 1개월(KST) 구간을 적용한다.
type ListQuery struct {
	Page      int
	Size      int
	Genre     string
	Area      string
	StartDate string
	EndDate   string
}
