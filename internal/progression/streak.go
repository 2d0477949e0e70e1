package progression

import (
	"time"

	"leaderpath_backend/internal/model"
)

// SummarizeStreak 解读连续学习记录。rec 为 nil（用户还没有任何活动）时
// 返回全零摘要。引擎不改写记录，更新由活动记录服务负责。
func SummarizeStreak(rec *model.StreakRecord, today time.Time) StreakSummary {
	if rec == nil {
		return StreakSummary{}
	}

	today = DateOf(today)
	last := DateOf(rec.LastActivityDate)
	yesterday := today.AddDate(0, 0, -1)

	return StreakSummary{
		CurrentStreak:   rec.CurrentStreak,
		LongestStreak:   rec.LongestStreak,
		TotalActiveDays: rec.TotalActiveDays,
		IsAtRisk:        rec.CurrentStreak > 0 && last.Equal(yesterday),
	}
}

// AdvanceStreak 活动记录服务在每次有效学习事件时调用的状态转移：
// 当天已记录则不动；昨天有记录则连续天数 +1；否则重置为 1。
// 返回是否发生了变化（当天重复事件为 false）。
func AdvanceStreak(rec *model.StreakRecord, today time.Time) bool {
	today = DateOf(today)
	last := DateOf(rec.LastActivityDate)

	if last.Equal(today) {
		return false
	}

	if last.Equal(today.AddDate(0, 0, -1)) {
		rec.CurrentStreak++
	} else {
		rec.CurrentStreak = 1
	}
	if rec.CurrentStreak > rec.LongestStreak {
		rec.LongestStreak = rec.CurrentStreak
	}
	rec.LastActivityDate = today
	rec.TotalActiveDays++
	return true
}
