package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
)

// User is a dashboard login: the godown owner or one of their managers.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"company_id"`
	Username     string     `gorm:"uniqueIndex;size:120;not null" json:"username"`
	FullName     string     `gorm:"size:180" json:"full_name"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         Role       `gorm:"size:20;not null" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}
