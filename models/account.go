package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountType string

const (
	AccountCash AccountType = "cash" // galla
	AccountBank AccountType = "bank"
)

type Account struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID uuid.UUID   `gorm:"type:uuid;index;not null" json:"company_id"`
	GodownID  uuid.UUID   `gorm:"type:uuid;index;not null" json:"godown_id"`
	Type      AccountType `gorm:"type:text;not null" json:"type"`

	Name    string          `gorm:"size:120;not null" json:"name"`
	Balance decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"balance"`

	// bank only
	BankName  string `gorm:"size:80" json:"bank_name,omitempty"`
	AccountNo string `gorm:"size:64" json:"account_no,omitempty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}
