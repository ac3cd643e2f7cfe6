package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GodownStock is the running weight of one material held in a godown.
type GodownStock struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_owner_material" json:"company_id"`
	GodownID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_owner_material" json:"godown_id"`
	Material  string          `gorm:"size:120;not null;uniqueIndex:idx_stock_owner_material" json:"material"`
	Weight    decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"weight"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type StockHistory struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	GodownStockID uuid.UUID       `gorm:"type:uuid;index;not null" json:"godown_stock_id"`
	OldWeight     decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"old_weight"`
	NewWeight     decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"new_weight"`
	Delta         decimal.Decimal `gorm:"type:decimal(14,3);not null" json:"delta"`
	Reason        string          `gorm:"size:120;not null" json:"reason"`
	RefID         uuid.UUID       `gorm:"type:uuid;index" json:"ref_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (s *GodownStock) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

func (h *StockHistory) BeforeCreate(tx *gorm.DB) error {
	assignID(&h.ID)
	return nil
}
