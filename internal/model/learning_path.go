package model

import (
	"time"
)

type UnlockMode string

const (
	UnlockManual     UnlockMode = "manual"
	UnlockTimeBased  UnlockMode = "time_based"
	UnlockCompletion UnlockMode = "completion_based"
	UnlockHybrid     UnlockMode = "hybrid"
)

type CompletionRequirement string

const (
	RequireVideoOnly CompletionRequirement = "video_only"
	RequireWorksheet CompletionRequirement = "worksheet"
	RequireFull      CompletionRequirement = "full"
)

// LearningPath 组织的学习路径配置，同一组织最多一条激活路径
// swagger:model LearningPath
type LearningPath struct {
	BaseModel
	OrganizationID        uint                  `gorm:"index;type:bigint unsigned;not null" json:"organizationId"`
	Name                  string                `gorm:"size:255;not null" json:"name"`
	UnlockMode            UnlockMode            `gorm:"type:enum('manual','time_based','completion_based','hybrid');default:'completion_based'" json:"unlockMode"`
	CompletionRequirement CompletionRequirement `gorm:"type:enum('video_only','worksheet','full');default:'full'" json:"completionRequirement"`
	EnrollmentDate        time.Time             `json:"enrollmentDate"`
	UnlockIntervalDays    int                   `gorm:"default:7" json:"unlockIntervalDays"`
	IsActive              bool                  `gorm:"default:false;index" json:"isActive"`
	Items                 []LearningPathItem    `gorm:"foreignKey:LearningPathID" json:"items,omitempty"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

// LearningPathItem 路径中的一个内容条目，SequenceOrder 定义全序
// (learning_path_id, sequence_order) 唯一，顺序 0 的条目永远解锁
// swagger:model LearningPathItem
type LearningPathItem struct {
	BaseModel
	LearningPathID     uint       `gorm:"index:idx_path_order,unique;type:bigint unsigned;not null" json:"learningPathId"`
	ContentID          string     `gorm:"size:64;not null;index" json:"contentId"`
	Title              string     `gorm:"size:255" json:"title"`
	SequenceOrder      int        `gorm:"index:idx_path_order,unique;not null" json:"sequenceOrder"`
	UnlockDate         *time.Time `json:"unlockDate"` // 显式解锁日期，覆盖按间隔推算的日期
	IsOptional         bool       `gorm:"default:false" json:"isOptional"`
	IsManuallyUnlocked bool       `gorm:"default:false" json:"isManuallyUnlocked"`
}

func (LearningPathItem) TableName() string {
	return "learning_path_items"
}
