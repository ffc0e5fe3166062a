package kopis

import (
	"testing"

	"github.com/conjam/conjam-api-go/internal/constants"
	"github.com/conjam/conjam-api-go/internal/domain"
	"github.com/conjam/conjam-api-go/internal/util"
)

func TestBuildListQueryRequiredParams(t *testing.T) {
	t.Parallel()

	params := BuildListQuery(domain.ListQuery{
		Page:      2,
		Size:      30,
		StartDate: "20250101",
		EndDate:   "20250131",
	}, "test-key")

	expected := map[string]string{
		"service": "test-key",
		"stdate":  "20250101",
		"eddate":  "20250131",
		"cpage":   "2",
		"rows":    "30",
	}
	for key, want := range expected {
		if got := params.Get(key); got != want {
			t.Fatalf("params[%s] = %q, expected %q", key, got, want)
		}
	}

	if params.Has("shcate") || params.Has("signgucode") {
		t.Fatalf("optional params must be absent when not supplied: %v", params)
	}
}

func TestBuildListQueryRowsClamp(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		size     int
		expected string
	}{
		"상한 초과": {size: 500, expected: "100"},
		"상한 경계": {size: 100, expected: "100"},
		"범위 내":  {size: 50, expected: "50"},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			params := BuildListQuery(domain.ListQuery{Page: 1, Size: tc.size, StartDate: "20250101", EndDate: "20250131"}, "k")
			if got := params.Get("rows"); got != tc.expected {
				t.Fatalf("rows = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestBuildListQueryDateDefaults(t *testing.T) {
	t.Parallel()

	params := BuildListQuery(domain.ListQuery{Page: 1, Size: 10}, "k")

	today := util.NowKST()
	expectedEnd := today.Format(constants.DateWindow.Layout)
	expectedStart := today.AddDate(0, -1, 0).Format(constants.DateWindow.Layout)

	if got := params.Get("eddate"); got != expectedEnd {
		t.Fatalf("eddate = %q, expected %q", got, expectedEnd)
	}
	if got := params.Get("stdate"); got != expectedStart {
		t.Fatalf("stdate = %q, expected %q", got, expectedStart)
	}
}

func TestBuildListQueryOptionalParams(t *testing.T) {
	t.Parallel()

	params := BuildListQuery(domain.ListQuery{
		Page:  1,
		Size:  10,
		Genre: "뮤지컬",
		Area:  "11",
	}, "k")

	if got := params.Get("shcate"); got != "GGGA" {
		t.Fatalf("shcate = %q, expected GGGA", got)
	}
	// 지역 코드는 검증 없이 그대로 전달된다
	if got := params.Get("signgucode"); got != "11" {
		t.Fatalf("signgucode = %q, expected 11", got)
	}
}

func TestDetailPath(t *testing.T) {
	t.Parallel()

	if got := DetailPath("PF132236"); got != "/pblprfr/PF132236" {
		t.Fatalf("DetailPath() = %q", got)
	}
	// 경로 구분자가 들어간 ID는 이스케이프되어야 한다
	if got := DetailPath("a/b"); got != "/pblprfr/a%2Fb" {
		t.Fatalf("DetailPath() = %q", got)
	}
}

func TestBuildDetailQuery(t *testing.T) {
	t.Parallel()

	params := BuildDetailQuery("test-key")
	if got := params.Get("service"); got != "test-key" {
		t.Fatalf("service = %q", got)
	}
	if len(params) != 1 {
		t.Fatalf("detail query must carry only the service key: %v", params)
	}
}
