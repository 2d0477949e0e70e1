package model

import (
	"time"
)

// 积分来源，写入边界按 (user_id, content_id, reason) 幂等
const (
	PointsReasonVideoComplete      = "video_complete"
	PointsReasonWorksheetComplete  = "worksheet_complete"
	PointsReasonCheckinComplete    = "checkin_complete"
	PointsReasonBoldActionComplete = "bold_action_complete"
)

// PointsEntry 积分流水，只追加，引擎不更新不删除
// swagger:model PointsEntry
type PointsEntry struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_points_idem,unique;type:bigint unsigned;not null" json:"userId"`
	ContentID  string    `gorm:"index:idx_points_idem,unique;size:64;not null" json:"contentId"`
	Reason     string    `gorm:"index:idx_points_idem,unique;size:50;not null" json:"reason"`
	Points     int       `gorm:"not null" json:"points"`
	EarnedAt   time.Time `gorm:"not null;index" json:"earnedAt"`
	PeriodWeek time.Time `gorm:"not null;index" json:"periodWeek"` // 周一 00:00 UTC，写入和查询共用同一计算函数
}

func (PointsEntry) TableName() string {
	return "points_entries"
}
