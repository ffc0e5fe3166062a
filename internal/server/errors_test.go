package server

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/conjam/conjam-api-go/pkg/errors"
)

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err         error
		expCode     string
		expStatus   int
		expMessage  string
		wantDetails bool
	}{
		"파라미터 에러": {
			err:        errors.NewInvalidParameterWithCode(errors.PageParameterInvalid, "페이지 번호는 1 이상이어야 합니다."),
			expCode:    "P001",
			expStatus:  http.StatusBadRequest,
			expMessage: "페이지 번호는 1 이상이어야 합니다.",
		},
		"공연 없음": {
			err:        errors.NewPerformanceNotFound("PF132236"),
			expCode:    "D002",
			expStatus:  http.StatusNotFound,
			expMessage: "공연 정보를 찾을 수 없습니다. ID: PF132236",
		},
		"업스트림 실패는 원문 대신 기본 메시지": {
			err:         errors.NewUpstreamError(500, "socket detail", "<error>raw</error>", nil),
			expCode:     "A002",
			expStatus:   http.StatusBadGateway,
			expMessage:  errors.KopisAPIError.Message,
			wantDetails: true,
		},
		"업스트림 타임아웃": {
			err:        errors.NewUpstreamTimeout("시간 초과", nil),
			expCode:    "A003",
			expStatus:  http.StatusGatewayTimeout,
			expMessage: errors.KopisAPITimeout.Message,
		},
		"매핑되지 않은 에러": {
			err:        stderrors.New("boom"),
			expCode:    "E001",
			expStatus:  http.StatusInternalServerError,
			expMessage: errors.InternalServerError.Message,
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			resp, status := NewErrorResponse(tc.err, "/api/performances")

			if resp.Success {
				t.Error("success must be false")
			}
			if resp.ErrorCode != tc.expCode {
				t.Errorf("errorCode = %q, expected %q", resp.ErrorCode, tc.expCode)
			}
			if status != tc.expStatus {
				t.Errorf("status = %d, expected %d", status, tc.expStatus)
			}
			if resp.ErrorMessage != tc.expMessage {
				t.Errorf("errorMessage = %q, expected %q", resp.ErrorMessage, tc.expMessage)
			}
			if resp.Path != "/api/performances" {
				t.Errorf("path = %q", resp.Path)
			}
			if resp.Timestamp == "" {
				t.Error("timestamp must be set")
			}
			if tc.wantDetails && resp.Details == nil {
				t.Error("expected details")
			}
		})
	}
}

func TestErrorDetails(t *testing.T) {
	t.Parallel()

	t.Run("업스트림 상태와 본문", func(t *testing.T) {
		t.Parallel()
		details := errorDetails(errors.NewUpstreamError(502, "실패", "<error>bad</error>", nil))
		m, ok := details.(gin.H)
		if !ok {
			t.Fatalf("unexpected details type %T", details)
		}
		if m["status"] != 502 {
			t.Errorf("status = %v", m["status"])
		}
		if m["response"] != "<error>bad</error>" {
			t.Errorf("response = %v", m["response"])
		}
	})

	t.Run("파싱 에러 스니펫", func(t *testing.T) {
		t.Parallel()
		details := errorDetails(errors.NewParseError("<dbs><db>", stderrors.New("EOF")))
		m, ok := details.(gin.H)
		if !ok {
			t.Fatalf("unexpected details type %T", details)
		}
		if m["response"] != "<dbs><db>" {
			t.Errorf("response = %v", m["response"])
		}
	})

	t.Run("상세 없는 에러는 nil", func(t *testing.T) {
		t.Parallel()
		if details := errorDetails(stderrors.New("boom")); details != nil {
			t.Errorf("expected nil details, got %v", details)
		}
		if details := errorDetails(errors.NewUpstreamTimeout("timeout", nil)); details != nil {
			t.Errorf("expected nil details for timeout, got %v", details)
		}
	})
}
