package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leaderpath_backend/internal/model"
)

func TestSummarizeStreak(t *testing.T) {
	today := date(2025, 6, 10)

	t.Run("无记录返回零值", func(t *testing.T) {
		assert.Equal(t, StreakSummary{}, SummarizeStreak(nil, today))
	})

	t.Run("昨天有活动今天没有则有断签风险", func(t *testing.T) {
		rec := &model.StreakRecord{CurrentStreak: 5, LongestStreak: 9, LastActivityDate: date(2025, 6, 9), TotalActiveDays: 30}
		got := SummarizeStreak(rec, today)
		assert.True(t, got.IsAtRisk)
		assert.Equal(t, 5, got.CurrentStreak)
		assert.Equal(t, 9, got.LongestStreak)
		assert.Equal(t, 30, got.TotalActiveDays)
	})

	t.Run("今天已有活动无风险", func(t *testing.T) {
		rec := &model.StreakRecord{CurrentStreak: 6, LastActivityDate: today}
		assert.False(t, SummarizeStreak(rec, today).IsAtRisk)
	})

	t.Run("连续已断无风险", func(t *testing.T) {
		rec := &model.StreakRecord{CurrentStreak: 3, LastActivityDate: date(2025, 6, 1)}
		assert.False(t, SummarizeStreak(rec, today).IsAtRisk)
	})

	t.Run("零连续即使昨天有记录也无风险", func(t *testing.T) {
		rec := &model.StreakRecord{CurrentStreak: 0, LastActivityDate: date(2025, 6, 9)}
		assert.False(t, SummarizeStreak(rec, today).IsAtRisk)
	})
}

func TestAdvanceStreak(t *testing.T) {
	today := date(2025, 6, 10)

	t.Run("当天重复事件不动", func(t *testing.T) {
		rec := &model.StreakRecord{CurrentStreak: 4, LongestStreak: 4, LastActivityDate: today, TotalActiveDays: 10}
		assert.False(t, AdvanceStreak(rec, today))
		assert.Equal(t, 4, rec.CurrentStreak)
		assert.Equal(t, 10, rec.TotalActiveDays)
	})

	t.Run("昨天有活动则递增并刷新最长", func(t *testing.T) {
		rec := &model.StreakRecord{CurrentStreak: 4, LongestStreak: 4, LastActivityDate: date(2025, 6, 9), TotalActiveDays: 10}
		assert.True(t, AdvanceStreak(rec, today))
		assert.Equal(t, 5, rec.CurrentStreak)
		assert.Equal(t, 5, rec.LongestStreak)
		assert.Equal(t, today, rec.LastActivityDate)
		assert.Equal(t, 11, rec.TotalActiveDays)
	})

	t.Run("隔天以上重置为 1", func(t *testing.T) {
		rec := &model.StreakRecord{CurrentStreak: 7, LongestStreak: 9, LastActivityDate: date(2025, 6, 5), TotalActiveDays: 20}
		assert.True(t, AdvanceStreak(rec, today))
		assert.Equal(t, 1, rec.CurrentStreak)
		assert.Equal(t, 9, rec.LongestStreak) // 最长不回退
	})

	t.Run("首次活动从 1 开始", func(t *testing.T) {
		rec := &model.StreakRecord{}
		assert.True(t, AdvanceStreak(rec, today))
		assert.Equal(t, 1, rec.CurrentStreak)
		assert.Equal(t, 1, rec.LongestStreak)
		assert.Equal(t, 1, rec.TotalActiveDays)
	})
}
