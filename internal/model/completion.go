package model

import (
	"time"
)

type CheckinStatus string

const (
	CheckinNone      CheckinStatus = "none"
	CheckinPending   CheckinStatus = "pending"
	CheckinScheduled CheckinStatus = "scheduled"
	CheckinCompleted CheckinStatus = "completed"
)

type BoldActionStatus string

const (
	BoldActionNone            BoldActionStatus = "none"
	BoldActionPending         BoldActionStatus = "pending"
	BoldActionPendingApproval BoldActionStatus = "pending_approval"
	BoldActionCompleted       BoldActionStatus = "completed"
	BoldActionSignedOff       BoldActionStatus = "signed_off"
)

// VideoProgress 记录用户对某个内容视频的观看进度
// swagger:model VideoProgress
type VideoProgress struct {
	BaseModel
	UserID          uint       `gorm:"index:idx_user_content_video,unique;type:bigint unsigned;not null" json:"userId"`
	ContentID       string     `gorm:"index:idx_user_content_video,unique;size:64;not null" json:"contentId"`
	ProgressPercent float64    `gorm:"default:0" json:"progressPercent"` // 0-100
	WatchedAt       *time.Time `json:"watchedAt"`
}

func (VideoProgress) TableName() string {
	return "video_progresses"
}

// WorksheetSubmission 用户对模块工作表的提交，包含 bold action 承诺文本
// swagger:model WorksheetSubmission
type WorksheetSubmission struct {
	BaseModel
	UserID         uint      `gorm:"index:idx_user_content_worksheet,unique;type:bigint unsigned;not null" json:"userId"`
	ContentID      string    `gorm:"index:idx_user_content_worksheet,unique;size:64;not null" json:"contentId"`
	Answers        string    `gorm:"type:longtext" json:"answers"` // JSON 问答内容
	BoldActionText string    `gorm:"type:text" json:"boldActionText"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

func (WorksheetSubmission) TableName() string {
	return "worksheet_submissions"
}

// Checkin 组长与成员就某个模块的进度确认
// swagger:model Checkin
type Checkin struct {
	BaseModel
	UserID      uint          `gorm:"index:idx_user_content_checkin,unique;type:bigint unsigned;not null" json:"userId"`
	ContentID   string        `gorm:"index:idx_user_content_checkin,unique;size:64;not null" json:"contentId"`
	LeaderID    uint          `gorm:"type:bigint unsigned" json:"leaderId"`
	Status      CheckinStatus `gorm:"type:enum('none','pending','scheduled','completed');default:'none'" json:"status"`
	ScheduledAt *time.Time    `json:"scheduledAt"`
	CompletedAt *time.Time    `json:"completedAt"`
	Notes       string        `gorm:"type:text" json:"notes"`
}

func (Checkin) TableName() string {
	return "checkins"
}

// BoldAction 成员在工作表中承诺的行动，完成后由本人或组长签核
// swagger:model BoldAction
type BoldAction struct {
	BaseModel
	UserID      uint             `gorm:"index:idx_user_content_bold,unique;type:bigint unsigned;not null" json:"userId"`
	ContentID   string           `gorm:"index:idx_user_content_bold,unique;size:64;not null" json:"contentId"`
	Description string           `gorm:"type:text" json:"description"`
	Status      BoldActionStatus `gorm:"type:enum('none','pending','pending_approval','completed','signed_off');default:'none'" json:"status"`
	SignedBy    uint             `gorm:"type:bigint unsigned" json:"signedBy"`
	CompletedAt *time.Time       `json:"completedAt"`
}

func (BoldAction) TableName() string {
	return "bold_actions"
}
