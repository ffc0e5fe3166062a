package util

import (
	"testing"
	"time"
)

func TestToKST(t *testing.T) {
	t.Parallel()

	utc := time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC)
	kst := ToKST(utc)

	// UTC 20:00 = KST 다음날 05:00
	if kst.Hour() != 5 || kst.Day() != 16 {
		t.Errorf("ToKST() = %v, expected 2025-01-16 05:00 KST", kst)
	}

	_, offset := kst.Zone()
	if offset != 9*60*60 {
		t.Errorf("offset = %d, expected +09:00", offset)
	}
}

func TestNowKST(t *testing.T) {
	t.Parallel()

	now := NowKST()
	_, offset := now.Zone()
	if offset != 9*60*60 {
		t.Errorf("offset = %d, expected +09:00", offset)
	}
}

func TestFormatKST(t *testing.T) {
	t.Parallel()

	utc := time.Date(2025, 1, 15, 20, 30, 45, 0, time.UTC)

	if got := FormatKST(utc, "20060102"); got != "20250116" {
		t.Errorf("FormatKST(yyyyMMdd) = %q", got)
	}
	if got := FormatKST(utc, "2006-01-02 15:04:05"); got != "2025-01-16 05:30:45" {
		t.Errorf("FormatKST(timestamp) = %q", got)
	}
}
