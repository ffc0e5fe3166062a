// Package errors: 공연 프록시 서비스 전체에서 사용되는 에러 코드 테이블과 타입 에러를 정의한다.
// 코드→HTTP 상태 매핑은 닫힌 집합이며, Resolve는 어떤 에러든 정확히 하나의 코드로 변환한다.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
)

// Code: 안정적인 에러 코드, 기본 메시지, HTTP 상태의 고정 조합
type Code struct {
	Code    string
	Message string
	Status  int
}

// 일반 에러
var (
	InternalServerError = Code{"E001", "서버 내부 오류가 발생했습니다.", http.StatusInternalServerError}
	InvalidParameter    = Code{"E002", "잘못된 요청 파라미터입니다.", http.StatusBadRequest}
)

// 데이터 관련 에러
var (
	DataNotFound        = Code{"D001", "요청한 데이터를 찾을 수 없습니다.", http.StatusNotFound}
	PerformanceNotFound = Code{"D002", "공연 정보를 찾을 수 없습니다.", http.StatusNotFound}
)

// 외부 API 관련 에러
var (
	ExternalAPIError   = Code{"A001", "외부 서비스 연동 중 오류가 발생했습니다.", http.StatusBadGateway}
	KopisAPIError      = Code{"A002", "KOPIS API 호출 중 오류가 발생했습니다.", http.StatusBadGateway}
	KopisAPITimeout    = Code{"A003", "KOPIS API 응답 시간을 초과했습니다.", http.StatusGatewayTimeout}
	KopisAPIKeyInvalid = Code{"A004", "KOPIS API 키가 유효하지 않습니다.", http.StatusUnauthorized}
)

// 파라미터 검증 에러
var (
	PageParameterInvalid  = Code{"P001", "페이지 번호는 1 이상이어야 합니다.", http.StatusBadRequest}
	SizeParameterInvalid  = Code{"P002", "페이지 크기는 1~100 사이여야 합니다.", http.StatusBadRequest}
	DateFormatInvalid     = Code{"P003", "날짜 형식이 올바르지 않습니다. (yyyyMMdd)", http.StatusBadRequest}
	GenreParameterInvalid = Code{"P004", "지원하지 않는 장르입니다.", http.StatusBadRequest}
	PerformanceIDInvalid  = Code{"P005", "공연 ID가 올바르지 않습니다.", http.StatusBadRequest}
)

// AllCodes: 정의된 전체 에러 코드 목록을 반환한다. (매핑 전수 검증용)
func AllCodes() []Code {
	return []Code{
		InternalServerError,
		InvalidParameter,
		DataNotFound,
		PerformanceNotFound,
		ExternalAPIError,
		KopisAPIError,
		KopisAPITimeout,
		KopisAPIKeyInvalid,
		PageParameterInvalid,
		SizeParameterInvalid,
		DateFormatInvalid,
		GenreParameterInvalid,
		PerformanceIDInvalid,
	}
}

// InvalidParameterError: 호출자 입력이 잘못되었을 때 발생하는 에러
type InvalidParameterError struct {
	Code    Code
	Message string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter [%s]: %s", e.Code.Code, e.Message)
}

// NewInvalidParameter: 일반 파라미터 에러를 생성한다.
func NewInvalidParameter(message string) *InvalidParameterError {
	return &InvalidParameterError{Code: InvalidParameter, Message: message}
}

// NewInvalidParameterWithCode: 파라미터별 코드(P001~P005)를 지정하여 에러를 생성한다.
func NewInvalidParameterWithCode(code Code, message string) *InvalidParameterError {
	return &InvalidParameterError{Code: code, Message: message}
}

// NotFoundError: 요청 자체는 유효하나 대상 리소스가 없을 때 발생하는 에러
type NotFoundError struct {
	Code    Code
	Message string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("not found [%s]: %s", e.Code.Code, e.Message)
}

// NewPerformanceNotFound: 공연 ID에 해당하는 레코드가 없을 때의 에러를 생성한다.
func NewPerformanceNotFound(performanceID string) *NotFoundError {
	return &NotFoundError{
		Code:    PerformanceNotFound,
		Message: fmt.Sprintf("공연 정보를 찾을 수 없습니다. ID: %s", performanceID),
	}
}

// NewDataNotFound: 일반 데이터 없음 에러를 생성한다.
func NewDataNotFound(message string) *NotFoundError {
	return &NotFoundError{Code: DataNotFound, Message: message}
}

// UpstreamError: KOPIS 호출의 전송 실패 또는 업스트림이 보고한 에러
// 업스트림은 HTTP 200 + XML 에러 본문으로도 실패를 알리므로 StatusCode가 2xx일 수 있다.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       string // 절단된 응답 본문 스니펫
	Timeout    bool
	Err        error
}

func (e UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("kopis api error status=%d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("kopis api error status=%d: %s: %v", e.StatusCode, e.Message, e.Err)
}

func (e UpstreamError) Unwrap() error { return e.Err }

// NewUpstreamError: 업스트림 호출 실패 에러를 생성한다. body는 호출 전에 절단되어야 한다.
func NewUpstreamError(statusCode int, message, body string, cause error) *UpstreamError {
	return &UpstreamError{
		StatusCode: statusCode,
		Message:    message,
		Body:       body,
		Err:        cause,
	}
}

// NewUpstreamTimeout: 업스트림 응답 시간 초과 에러를 생성한다.
func NewUpstreamTimeout(message string, cause error) *UpstreamError {
	return &UpstreamError{Message: message, Timeout: true, Err: cause}
}

// ParseError: 업스트림 페이로드 역직렬화 실패 에러
type ParseError struct {
	Snippet string // 문제가 된 페이로드의 절단 스니펫 (진단용)
	Err     error
}

func (e ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("xml parse error: %s", e.Snippet)
	}
	return fmt.Sprintf("xml parse error: %v: %s", e.Err, e.Snippet)
}

func (e ParseError) Unwrap() error { return e.Err }

// NewParseError: 파싱 에러를 생성한다. snippet은 호출 전에 절단되어야 한다.
func NewParseError(snippet string, cause error) *ParseError {
	return &ParseError{Snippet: snippet, Err: cause}
}

// Resolve: 임의의 에러를 정확히 하나의 에러 코드로 변환한다. (전역 경계 매퍼의 단일 진입점)
// 매핑되지 않는 에러는 전부 INTERNAL_SERVER_ERROR로 수렴하며, nil이 아닌 한 반드시 코드를 반환한다.
func Resolve(err error) Code {
	var invalidErr *InvalidParameterError
	if stderrors.As(err, &invalidErr) {
		return invalidErr.Code
	}

	var notFoundErr *NotFoundError
	if stderrors.As(err, &notFoundErr) {
		return notFoundErr.Code
	}

	var upstreamErr *UpstreamError
	if stderrors.As(err, &upstreamErr) {
		switch {
		case upstreamErr.Timeout:
			return KopisAPITimeout
		case upstreamErr.StatusCode == http.StatusUnauthorized || upstreamErr.StatusCode == http.StatusForbidden:
			return KopisAPIKeyInvalid
		default:
			return KopisAPIError
		}
	}

	var parseErr *ParseError
	if stderrors.As(err, &parseErr) {
		return KopisAPIError
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return KopisAPITimeout
	}

	return InternalServerError
}

// ResolveMessage: 코드의 기본 메시지 대신 에러별 메시지가 있으면 그것을 반환한다.
// 업스트림/파싱 에러의 원문은 노출하지 않고 기본 메시지로 대체한다.
func ResolveMessage(err error) string {
	var invalidErr *InvalidParameterError
	if stderrors.As(err, &invalidErr) && invalidErr.Message != "" {
		return invalidErr.Message
	}

	var notFoundErr *NotFoundError
	if stderrors.As(err, &notFoundErr) && notFoundErr.Message != "" {
		return notFoundErr.Message
	}

	return Resolve(err).Message
}
