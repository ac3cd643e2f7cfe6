// models/maal_in.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MaalInStatus string

const (
	MaalInSubmitted MaalInStatus = "submitted"
	MaalInApproved  MaalInStatus = "approved"
	MaalInRejected  MaalInStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
)

// ClassifyPayment compares what has been paid so far against the bill total.
func ClassifyPayment(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.Sign() <= 0:
		return PaymentPending
	case paid.GreaterThanOrEqual(total):
		return PaymentPaid
	default:
		return PaymentPartiallyPaid
	}
}

// MaalIn is an inbound stock receipt. It starts submitted and is approved or
// rejected once; approval moves its items into godown stock.
type MaalIn struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"company_id"`
	GodownID     uuid.UUID      `gorm:"type:uuid;index;not null" json:"godown_id"`
	Date         datatypes.Date `gorm:"type:date;index;not null" json:"date"`
	SupplierName string         `gorm:"size:180;not null" json:"supplier_name"`
	SellerType   string         `gorm:"size:40" json:"seller_type,omitempty"`
	PaymentMode  string         `gorm:"size:40" json:"payment_mode,omitempty"`
	Meta         datatypes.JSON `json:"meta,omitempty"`

	Status        MaalInStatus    `gorm:"size:12;index;not null" json:"status"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	PaymentStatus PaymentStatus   `gorm:"size:16;not null" json:"payment_status"`

	ApprovedBy *string    `gorm:"size:120" json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`

	Items    []MaalInItem    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Payments []MaalInPayment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MaalIn) TableName() string { return "maal_in" }

type MaalInItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MaalInID uuid.UUID `gorm:"type:uuid;index;not null" json:"maal_in_id"`
	LineItem
	CreatedAt time.Time `json:"created_at"`
}

type MaalInPayment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	MaalInID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"maal_in_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Mode      string          `gorm:"size:20;not null" json:"mode"`
	Date      datatypes.Date  `gorm:"type:date;not null" json:"date"`
	AccountID *uuid.UUID      `gorm:"type:uuid" json:"account_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func (m *MaalIn) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	if m.Status == "" {
		m.Status = MaalInSubmitted
	}
	if m.PaymentStatus == "" {
		m.PaymentStatus = PaymentPending
	}
	return nil
}

func (i *MaalInItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&i.ID)
	return nil
}

func (p *MaalInPayment) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
