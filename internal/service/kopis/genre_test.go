package kopis

import "testing"

func TestMapGenre(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		label    string
		expected string
	}{
		"연극":        {label: "연극", expected: "AAAA"},
		"뮤지컬":       {label: "뮤지컬", expected: "GGGA"},
		"클래식":       {label: "클래식", expected: "CCCA"},
		"국악":        {label: "국악", expected: "CCCC"},
		"대중음악":      {label: "대중음악", expected: "CCCD"},
		"무용":        {label: "무용", expected: "BBBC"},
		"복합":        {label: "복합", expected: "EEEA"},
		"서커스/마술":    {label: "서커스/마술", expected: "EEEB"},
		"공백 포함":     {label: " 뮤지컬 ", expected: "GGGA"},
		"미등록 라벨":    {label: "오페라", expected: "오페라"},
		"코드 직접 전달":  {label: "AAAA", expected: "AAAA"},
		"빈 문자열 통과":  {label: "", expected: ""},
		"영문 미등록 통과": {label: "musical", expected: "musical"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := MapGenre(tc.label); got != tc.expected {
				t.Fatalf("MapGenre(%q) = %q, expected %q", tc.label, got, tc.expected)
			}
		})
	}
}
