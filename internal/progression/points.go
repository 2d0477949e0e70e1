package progression

import (
	"time"
)

// LedgerEntry 积分流水中参与汇总的最小字段集
type LedgerEntry struct {
	UserID   uint
	Points   int
	EarnedAt time.Time
}

// WeekStart 返回 t 所在周的周一 00:00 UTC。
// 周起始固定为周一，不可配置；写入 PeriodWeek 和查询周榜必须都走这里，
// 否则同一条流水会被归到不同的周。
func WeekStart(t time.Time) time.Time {
	d := DateOf(t)
	// time.Weekday 里周日是 0，换算成周一偏移
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// SumPoints 把流水折叠成 userID → 总分。只做求和，不做衰减或插值；
// 去重是写入边界的责任，这里给什么算什么。
func SumPoints(entries []LedgerEntry) map[uint]int {
	totals := make(map[uint]int, len(entries))
	for _, e := range entries {
		totals[e.UserID] += e.Points
	}
	return totals
}

// SumPointsInWeek 只累计落在指定周（周一 00:00 UTC 起）内的流水
func SumPointsInWeek(entries []LedgerEntry, weekStart time.Time) map[uint]int {
	weekStart = DateOf(weekStart)
	totals := make(map[uint]int)
	for _, e := range entries {
		if WeekStart(e.EarnedAt).Equal(weekStart) {
			totals[e.UserID] += e.Points
		}
	}
	return totals
}
