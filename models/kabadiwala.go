package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type KabadiwalaRecord struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"company_id"`
	GodownID       uuid.UUID       `gorm:"type:uuid;index;not null" json:"godown_id"`
	Date           datatypes.Date  `gorm:"type:date;index;not null" json:"date"`
	KabadiwalaName string          `gorm:"size:180;not null" json:"kabadiwala_name"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`

	Scraps []KabadiwalaScrap `gorm:"foreignKey:KabadiwalaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"scraps"`

	CreatedAt time.Time `json:"created_at"`
}

type KabadiwalaScrap struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	KabadiwalaID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	LineItem
}

func (r *KabadiwalaRecord) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}

func (r *KabadiwalaRecord) HeaderID() uuid.UUID { return r.ID }

func (s *KabadiwalaScrap) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}
