package model

import (
	"time"
)

type UserRole string

const (
	Member UserRole = "member"
	Leader UserRole = "leader"
	Admin  UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name           string    `gorm:"size:100;not null" json:"Name"`
	Email          string    `gorm:"size:100;unique;not null" json:"Email"`
	Password       string    `gorm:"size:100;not null" json:"-"`
	Role           UserRole  `gorm:"type:enum('member','leader','admin');default:'member'" json:"Role"`
	OrganizationID uint      `gorm:"index;type:bigint unsigned" json:"organizationId"`
	TeamID         *uint     `gorm:"index;type:bigint unsigned" json:"teamId"`
	Avatar         string    `gorm:"size:255" json:"avatar"`
	Disabled       bool      `gorm:"default:false" json:"Disabled"`
	LastLogin      time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"LastLogin"`
	LastSeen       time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"LastSeen"`
}

func (User) TableName() string {
	return "users"
}
