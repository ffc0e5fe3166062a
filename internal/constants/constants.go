package constants

import "time"

// KopisAPI 는 KOPIS 공연예술통산망 Open API 호출 설정이다.
// 원본 시스템은 타임아웃을 프레임워크 기본값에 맡기지만, 게이트웨이 특성상 10초 상한을 명시한다.
var KopisAPI = struct {
	DefaultBaseURL  string
	PerformancePath string
	Timeout         time.Duration
	BodySnippetMax  int
}{
	DefaultBaseURL:  "http://www.kopis.or.kr/openApi/restful",
	PerformancePath: "/pblprfr",
	Timeout:         10 * time.Second,
	BodySnippetMax:  200, // 에러 응답에 노출하는 업스트림 본문 스니펫 최대 길이
}

// KopisTransportConfig 는 KOPIS HTTP Transport 설정이다.
// 동시 요청 시 커넥션 풀 고갈 방지를 위해 디폴트(MaxIdleConnsPerHost=2)보다 높게 설정한다.
var KopisTransportConfig = struct {
	MaxConnsPerHost     int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
}{
	MaxConnsPerHost:     50,
	MaxIdleConnsPerHost: 50,
	IdleConnTimeout:     30 * time.Second,
}

// Pagination 는 목록 조회 페이지네이션 기본값/상한이다.
var Pagination = struct {
	DefaultPage int
	DefaultSize int
	MaxSize     int
}{
	DefaultPage: 1,
	DefaultSize: 10,
	MaxSize:     100, // KOPIS rows 파라미터 상한
}

// DateWindow 는 날짜 범위 기본값 설정이다.
// 시작일/종료일 미지정 시 최근 1개월 구간을 사용한다.
var DateWindow = struct {
	DefaultMonths int
	Layout        string
}{
	DefaultMonths: 1,
	Layout:        "20060102", // yyyyMMdd
}

// AppTimeout 는 앱 빌드/종료 타임아웃 설정이다.
var AppTimeout = struct {
	Build    time.Duration
	Shutdown time.Duration
}{
	Build:    30 * time.Second,
	Shutdown: 10 * time.Second,
}

// ServerTimeout 는 HTTP 서버 타임아웃이다.
var ServerTimeout = struct {
	ReadHeader time.Duration
	Idle       time.Duration
}{
	ReadHeader: 5 * time.Second,
	Idle:       60 * time.Second,
}

// ServerConfig 는 서버 기본 설정이다.
var ServerConfig = struct {
	TrustedProxies []string
}{
	TrustedProxies: []string{"127.0.0.1", "::1"},
}

// CORSConfig 는 CORS 기본 설정이다.
var CORSConfig = struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}{
	AllowOrigins: []string{"http://localhost:5173"},
	AllowMethods: []string{"GET", "OPTIONS"},
	AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
}

// ServiceInfo 는 헬스체크 응답에 노출되는 서비스 식별 정보다.
var ServiceInfo = struct {
	Name        string
	Description string
}{
	Name:        "ConJam Performance API",
	Description: "KOPIS 공연예술통합전산망 연동 API",
}
