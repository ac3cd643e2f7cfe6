package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaalOut is a sale of stock to a buyer.
type MaalOut struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;index;not null" json:"company_id"`
	GodownID    uuid.UUID       `gorm:"type:uuid;index;not null" json:"godown_id"`
	Date        datatypes.Date  `gorm:"type:date;not null" json:"date"`
	Buyer       string          `gorm:"size:180;not null" json:"buyer"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`

	Items []MaalOutItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (MaalOut) TableName() string { return "maal_out" }

type MaalOutItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	MaalOutID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	LineItem
}

func (m *MaalOut) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	return nil
}

func (m *MaalOut) HeaderID() uuid.UUID { return m.ID }

func (i *MaalOutItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&i.ID)
	return nil
}
