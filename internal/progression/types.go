// Package progression 实现学习路径推进引擎：解锁判定、模块完成判定、
// 积分汇总、连续学习统计与排行榜计算。
//
// 引擎是纯函数集合：不读时钟（today 由调用方传入）、不做 I/O、不持有
// 共享状态。页面渲染与 API 两条调用链都必须经由本包，避免规则漂移。
package progression

import (
	"time"

	"leaderpath_backend/internal/model"
)

// VideoCompleteThreshold 视频观看进度达到该百分比即视为看完
const VideoCompleteThreshold = 90.0

// CompletionState 某个用户对某个内容的完成状态快照，由调用方装配。
// 缺失的记录用零值表示（全部未完成），不作为错误处理。
type CompletionState struct {
	VideoProgressPercent float64
	WorksheetSubmitted   bool
	CheckinStatus        model.CheckinStatus
	BoldActionStatus     model.BoldActionStatus
}

// VideoComplete 视频是否看完（≥90%）
func (s CompletionState) VideoComplete() bool {
	return s.VideoProgressPercent >= VideoCompleteThreshold
}

// CheckinComplete check-in 是否完成
func (s CompletionState) CheckinComplete() bool {
	return s.CheckinStatus == model.CheckinCompleted
}

// BoldActionComplete bold action 是否完成（completed 或 signed_off）
func (s CompletionState) BoldActionComplete() bool {
	return s.BoldActionStatus == model.BoldActionCompleted ||
		s.BoldActionStatus == model.BoldActionSignedOff
}

// PathConfig 路径级解锁配置
type PathConfig struct {
	UnlockMode            model.UnlockMode
	CompletionRequirement model.CompletionRequirement
	EnrollmentDate        time.Time
	UnlockIntervalDays    int
}

// PathItem 路径条目，SequenceOrder 定义顺序
type PathItem struct {
	ContentID          string
	Title              string
	SequenceOrder      int
	UnlockDate         *time.Time // 显式覆盖日期
	IsOptional         bool
	IsManuallyUnlocked bool
}

// UnlockReason 机器可读的锁定原因。hybrid 模式下三种失败原因必须可区分，
// 调用方不应解析展示文案。
type UnlockReason string

const (
	ReasonNone               UnlockReason = ""
	ReasonAwaitingAdmin      UnlockReason = "awaiting_admin"
	ReasonUnlocksOnDate      UnlockReason = "unlocks_on_date"
	ReasonPreviousIncomplete UnlockReason = "previous_incomplete"
	ReasonDateAndPrevious    UnlockReason = "date_and_previous"
)

// ItemStatus 单个条目的判定结果
type ItemStatus struct {
	ContentID     string       `json:"contentId"`
	Title         string       `json:"title,omitempty"`
	SequenceOrder int          `json:"sequenceOrder"`
	IsUnlocked    bool         `json:"isUnlocked"`
	IsComplete    bool         `json:"isComplete"`
	IsOptional    bool         `json:"isOptional"`
	UnlockDate    time.Time    `json:"unlockDate"`
	UnlockReason  UnlockReason `json:"unlockReason,omitempty"`
	ReasonText    string       `json:"reasonText,omitempty"`
}

// SequenceResult 整条路径的判定结果。HasSequence 为 false 表示组织未配置
// 激活路径，此时不施加任何限制（fail-open）。
type SequenceResult struct {
	HasSequence bool         `json:"hasSequence"`
	Items       []ItemStatus `json:"items"`
}

// MemberInfo 排行榜参与者
type MemberInfo struct {
	UserID      uint
	DisplayName string
}

// LeaderboardEntry 排行榜条目，rank 为投影值，不落库
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        uint   `json:"userId"`
	DisplayName   string `json:"displayName"`
	Points        int    `json:"points"`
	CurrentStreak int    `json:"currentStreak"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}

// LeaderboardResult 排行榜计算结果。Entries 最多 10 条；请求者不在前 10 时
// 以第 11 个元素附加，调用方需单独渲染（不是连续的第 11 名）。
type LeaderboardResult struct {
	Entries           []LeaderboardEntry `json:"entries"`
	CurrentUserRank   int                `json:"currentUserRank"`
	CurrentUserPoints int                `json:"currentUserPoints"`
	TotalParticipants int                `json:"totalParticipants"`
}

// StreakSummary 连续学习摘要。IsAtRisk 表示最后活动在昨天、今天尚无活动，
// 若今天不学习则连续天数在午夜清零。
type StreakSummary struct {
	CurrentStreak   int  `json:"currentStreak"`
	LongestStreak   int  `json:"longestStreak"`
	TotalActiveDays int  `json:"totalActiveDays"`
	IsAtRisk        bool `json:"isAtRisk"`
}
