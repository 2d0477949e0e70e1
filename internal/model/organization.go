package model

// Organization 租户下的组织，每个组织最多拥有一条激活的学习路径
// swagger:model Organization
type Organization struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	TenantID uint   `gorm:"index;type:bigint unsigned" json:"tenantId"`
	Disabled bool   `gorm:"default:false" json:"disabled"`
}

func (Organization) TableName() string {
	return "organizations"
}

// Team 组织内的小组，LeaderID 为组长（负责 check-in 确认）
// swagger:model Team
type Team struct {
	BaseModel
	OrganizationID uint   `gorm:"index;type:bigint unsigned;not null" json:"organizationId"`
	Name           string `gorm:"size:100;not null" json:"name"`
	LeaderID       uint   `gorm:"type:bigint unsigned" json:"leaderId"`
}

func (Team) TableName() string {
	return "teams"
}
