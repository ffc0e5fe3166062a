package util

import "testing"

func TestTruncateString(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input    string
		maxRunes int
		expected string
	}{
		"길이 이내":     {input: "hello", maxRunes: 10, expected: "hello"},
		"경계값":       {input: "hello", maxRunes: 5, expected: "hello"},
		"초과 시 절단":   {input: "hello world", maxRunes: 5, expected: "hello..."},
		"빈 문자열":     {input: "", maxRunes: 5, expected: ""},
		"한글 Rune 절단": {input: "공연예술통합전산망", maxRunes: 4, expected: "공연예술..."},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateString(tc.input, tc.maxRunes); got != tc.expected {
				t.Errorf("TruncateString(%q, %d) = %q, expected %q", tc.input, tc.maxRunes, got, tc.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input    string
		expected string
	}{
		"공백 제거":   {input: "  뮤지컬  ", expected: "뮤지컬"},
		"소문자 변환":  {input: "AAAA", expected: "aaaa"},
		"혼합":      {input: "  Musical  ", expected: "musical"},
		"빈 문자열":   {input: "", expected: ""},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tc.input); got != tc.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input    string
		expected bool
	}{
		"빈 문자열":  {input: "", expected: true},
		"공백만":    {input: "  \t\n", expected: true},
		"내용 있음":  {input: "PF132236", expected: false},
		"공백 포함":  {input: " a ", expected: false},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := IsBlank(tc.input); got != tc.expected {
				t.Errorf("IsBlank(%q) = %v, expected %v", tc.input, got, tc.expected)
			}
		})
	}
}
