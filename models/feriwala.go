package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeriwalaRecord is one purchase from a street collector, paid from an account.
type FeriwalaRecord struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID    uuid.UUID       `gorm:"type:uuid;index;not null" json:"company_id"`
	GodownID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"godown_id"`
	Date         datatypes.Date  `gorm:"type:date;index;not null" json:"date"`
	FeriwalaName string          `gorm:"size:180;not null" json:"feriwala_name"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`

	Scraps []FeriwalaScrap `gorm:"foreignKey:FeriwalaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"scraps"`

	CreatedAt time.Time `json:"created_at"`
}

type FeriwalaScrap struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	FeriwalaID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	LineItem
}

func (r *FeriwalaRecord) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}

func (r *FeriwalaRecord) HeaderID() uuid.UUID { return r.ID }

func (s *FeriwalaScrap) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}
