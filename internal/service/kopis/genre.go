package kopis

import "github.com/conjam/conjam-api-go/internal/util"

// genreCodes: 장르 표기 → KOPIS shcate 코드 고정 테이블
// 미등록 값은 호출자가 이미 코드를 넘긴 것으로 보고 그대로 통과시킨다.
var genreCodes = map[string]string{
	"연극":     "AAAA",
	"뮤지컬":    "GGGA",
	"클래식":    "CCCA",
	"국악":     "CCCC",
	"대중음악":   "CCCD",
	"무용":     "BBBC",
	"복합":     "EEEA",
	"서커스/마술": "EEEB",
}

// MapGenre: 장르 표기를 KOPIS 카테고리 코드로 변환한다. (대소문자 무시)
// 알 수 없는 값은 입력 그대로 반환한다. 에러 경로 없음.
func MapGenre(label string) string {
	if code, ok := genreCodes[util.Normalize(label)]; ok {
		return code
	}
	return label
}
