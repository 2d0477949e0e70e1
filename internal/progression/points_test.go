package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		// 2025-01-06 是周一
		{date(2025, 1, 6), date(2025, 1, 6)},
		{date(2025, 1, 7), date(2025, 1, 6)},
		{date(2025, 1, 12), date(2025, 1, 6)}, // 周日归属上一个周一
		{date(2025, 1, 13), date(2025, 1, 13)},
		{time.Date(2025, 1, 8, 23, 59, 59, 0, time.UTC), date(2025, 1, 6)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekStart(tt.in), "WeekStart(%v)", tt.in)
	}
}

func TestWeekStartTimezoneIndependent(t *testing.T) {
	// 不同时区的同一时刻必须归到同一周
	loc := time.FixedZone("UTC+8", 8*3600)
	utc := time.Date(2025, 1, 12, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, WeekStart(utc), WeekStart(utc.In(loc)))
}

func TestSumPoints(t *testing.T) {
	entries := []LedgerEntry{
		{UserID: 1, Points: 25, EarnedAt: date(2025, 1, 6)},
		{UserID: 1, Points: 10, EarnedAt: date(2025, 1, 7)},
		{UserID: 2, Points: 15, EarnedAt: date(2025, 1, 8)},
	}
	totals := SumPoints(entries)
	assert.Equal(t, 35, totals[1])
	assert.Equal(t, 15, totals[2])
	assert.Empty(t, SumPoints(nil))
}

func TestSumPointsInWeek(t *testing.T) {
	entries := []LedgerEntry{
		{UserID: 1, Points: 25, EarnedAt: date(2025, 1, 6)},  // 本周一
		{UserID: 1, Points: 10, EarnedAt: date(2025, 1, 12)}, // 本周日
		{UserID: 1, Points: 99, EarnedAt: date(2025, 1, 13)}, // 下周一，不计
		{UserID: 2, Points: 5, EarnedAt: date(2025, 1, 5)},   // 上周日，不计
	}
	totals := SumPointsInWeek(entries, date(2025, 1, 6))
	assert.Equal(t, 35, totals[1])
	assert.Zero(t, totals[2])
}
