package model

import (
	"time"
)

const StreakTypeDaily = "daily"

// StreakRecord 用户的连续学习记录，由活动记录服务维护，引擎只读
// swagger:model StreakRecord
type StreakRecord struct {
	BaseModel
	UserID           uint      `gorm:"index:idx_user_streak_type,unique;type:bigint unsigned;not null" json:"userId"`
	StreakType       string    `gorm:"index:idx_user_streak_type,unique;size:20;default:'daily'" json:"streakType"`
	CurrentStreak    int       `gorm:"default:0" json:"currentStreak"`
	LongestStreak    int       `gorm:"default:0" json:"longestStreak"`
	LastActivityDate time.Time `json:"lastActivityDate"` // 按 UTC 日期比较
	TotalActiveDays  int       `gorm:"default:0" json:"totalActiveDays"`
}

func (StreakRecord) TableName() string {
	return "streak_records"
}
